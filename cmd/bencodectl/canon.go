package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var canonOutput string

func init() {
	cmd := newCanonCmd()
	cmd.Flags().StringVarP(&canonOutput, "output", "o", "", "Write canonical bytes to file instead of stdout")
	rootCmd.AddCommand(cmd)
}

func newCanonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "canon <file>",
		Short: "Re-encode a bencode file into canonical form",
		Long: `The canon command decodes a bencode file and re-encodes it into its
canonical byte form: dictionary entries sorted by key bytes, integers and
lengths with minimal digits, trailing bytes dropped.

Two files with equal canonical forms carry identical trees, so canon is the
normalization step for hashing or diffing bencode data.

Example:
  bencodectl canon sloppy.torrent -o clean.torrent
  bencodectl canon message.benc | sha1sum`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCanon(args[0])
		},
	}
}

func runCanon(path string) error {
	v, cleanup, err := decodeFile(path, false)
	if err != nil {
		return err
	}
	defer cleanup()

	encoded := v.Encode()
	if canonOutput == "" {
		_, err := os.Stdout.Write(encoded)
		return err
	}
	if err := os.WriteFile(canonOutput, encoded, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", canonOutput, err)
	}
	printVerbose("wrote %d canonical bytes to %s\n", len(encoded), canonOutput)
	return nil
}
