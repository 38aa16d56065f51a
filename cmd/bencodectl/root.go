package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/parsekit/bencodekit/bencode"
	"github.com/parsekit/bencodekit/internal/mmfile"
)

var (
	// Global flags
	maxAllocs int
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "bencodectl",
	Short: "Inspect and canonicalize bencode files",
	Long: `bencodectl decodes bencode files (torrent metadata, DHT messages,
tracker responses) and prints, re-encodes, or queries their contents.

Decoding is bounded by --max-allocs, which caps the number of list elements
and dictionary entries a malicious input can force into memory.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().
		IntVar(&maxAllocs, "max-allocs", 1<<20, "Allocation budget for decoding (list elements + dict entries)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printVerbose prints a progress message when verbose mode is enabled.
func printVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// decodeFile maps the file at path and decodes one value from it. The
// returned cleanup must be called once the tree is no longer in use; the
// tree borrows the mapped bytes directly.
func decodeFile(path string, strict bool) (bencode.Value, func() error, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return bencode.Value{}, nil, fmt.Errorf("open %s: %w", path, err)
	}
	printVerbose("mapped %s (%d bytes)\n", path, len(data))

	decode := bencode.Decode
	if strict {
		decode = bencode.DecodeExact
	}
	v, err := decode(data, maxAllocs)
	if err != nil {
		_ = cleanup()
		return bencode.Value{}, nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return v, cleanup, nil
}
