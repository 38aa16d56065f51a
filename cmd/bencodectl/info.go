package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parsekit/bencodekit/bencode"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Decode a bencode file and report tree statistics",
		Long: `The info command decodes a bencode file and reports the node counts,
nesting depth, and canonical size of the resulting tree.

Example:
  bencodectl info ubuntu.torrent`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

type treeStats struct {
	Ints     int
	Strs     int
	StrBytes int
	Lists    int
	Dicts    int
	Entries  int
	MaxDepth int
}

func runInfo(path string) error {
	v, cleanup, err := decodeFile(path, false)
	if err != nil {
		return err
	}
	defer cleanup()

	var stats treeStats
	collectStats(&v, 1, &stats)

	fmt.Printf("File:            %s\n", path)
	fmt.Printf("Canonical size:  %d bytes\n", len(v.Encode()))
	fmt.Printf("Max depth:       %d\n", stats.MaxDepth)
	fmt.Printf("Integers:        %d\n", stats.Ints)
	fmt.Printf("Byte strings:    %d (%d bytes)\n", stats.Strs, stats.StrBytes)
	fmt.Printf("Lists:           %d\n", stats.Lists)
	fmt.Printf("Dictionaries:    %d (%d entries)\n", stats.Dicts, stats.Entries)
	return nil
}

func collectStats(v *bencode.Value, depth int, stats *treeStats) {
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	switch v.Kind() {
	case bencode.KindInt:
		stats.Ints++
	case bencode.KindStr:
		stats.Strs++
		b, _ := bencode.To[[]byte](v)
		stats.StrBytes += len(b)
	case bencode.KindList:
		stats.Lists++
		l, _ := bencode.To[bencode.List](v)
		for i := range l {
			collectStats(&l[i], depth+1, stats)
		}
	case bencode.KindDict:
		stats.Dicts++
		d, _ := bencode.To[*bencode.Dict](v)
		for k, val := range d.All() {
			stats.Entries++
			stats.StrBytes += len(k)
			collectStats(val, depth+1, stats)
		}
	}
}
