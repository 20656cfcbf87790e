package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/arloliu/hufftext/codec"
)

var (
	labelColor = color.New(color.Bold).SprintFunc()
	valueColor = color.New(color.FgCyan).SprintfFunc()
	saveColor  = color.New(color.FgGreen).SprintfFunc()
)

// writeReport prints the size summary of a compress run.
func writeReport(w io.Writer, stats codec.Stats) error {
	_, err := fmt.Fprintf(w, "\n%s %s\n%s %s\n%s %s\n",
		labelColor("Original size:"), valueColor("%d bits", stats.OriginalBits),
		labelColor("Compressed size:"), valueColor("%d bits", stats.CompressedBits),
		labelColor("Saved"), saveColor("%.2f%% of space", stats.SpaceSavings()),
	)

	return err
}
