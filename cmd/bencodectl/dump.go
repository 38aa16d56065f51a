package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dumpStrict bool

func init() {
	cmd := newDumpCmd()
	cmd.Flags().BoolVar(&dumpStrict, "strict", false, "Reject trailing bytes after the value")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Human-readable dump of a bencode file",
		Long: `The dump command decodes a bencode file and prints its contents in a
human-readable form: integers in decimal, byte strings quoted when valid
UTF-8 and as hex otherwise, dictionaries in canonical key order.

Example:
  bencodectl dump ubuntu.torrent
  bencodectl dump response.benc --strict`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0])
		},
	}
}

func runDump(path string) error {
	v, cleanup, err := decodeFile(path, dumpStrict)
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Println(v.String())
	return nil
}
