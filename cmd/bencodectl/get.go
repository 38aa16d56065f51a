package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parsekit/bencodekit/bencode"
)

var getRaw bool

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getRaw, "raw", false, "Write byte-string leaves verbatim instead of rendering")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Look up a dictionary path in a bencode file",
		Long: `The get command resolves a dot-separated path of dictionary keys and
prints the value found there.

Example:
  bencodectl get ubuntu.torrent info.name
  bencodectl get ubuntu.torrent info.pieces --raw | xxd | head`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args[0], args[1])
		},
	}
}

func runGet(path, keyPath string) error {
	v, cleanup, err := decodeFile(path, false)
	if err != nil {
		return err
	}
	defer cleanup()

	leaf, ok := resolvePath(&v, keyPath)
	if !ok {
		return fmt.Errorf("path %q not found in %s", keyPath, path)
	}

	if getRaw {
		if b, ok := bencode.To[[]byte](leaf); ok {
			_, err := os.Stdout.Write(b)
			return err
		}
		return fmt.Errorf("path %q is not a byte string", keyPath)
	}
	fmt.Println(leaf.String())
	return nil
}

// resolvePath walks a dot-separated chain of dictionary keys from v.
// Every step requires the current value to be a dictionary holding the key;
// any miss fails the whole lookup.
func resolvePath(v *bencode.Value, keyPath string) (*bencode.Value, bool) {
	cur := v
	for key := range strings.SplitSeq(keyPath, ".") {
		next, ok := bencode.Get[*bencode.Value](cur, key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}
