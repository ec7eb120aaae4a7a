package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	learning2mdx "github.com/alnah/go-learning2mdx"
)

// printResults outputs per-row results and returns the number of failures.
func printResults(outputs []RowOutput, quiet, verbose bool, env *Environment) int {
	failed := 0
	for _, o := range outputs {
		if o.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED row %d (%s): %v%s\n", o.Row.Index+1, o.Row.Title, o.Err, hintFor(o.Err, ""))
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "row %d -> %s (%v)\n", o.Row.Index+1, o.OutputPath, o.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", o.OutputPath)
		}
	}

	if !quiet && len(outputs) > 1 {
		fmt.Fprintf(env.Stdout, "\n%s succeeded, %s failed\n",
			humanize.Comma(int64(len(outputs)-failed)), humanize.Comma(int64(failed)))
	}

	return failed
}

// printAssetReport lists the assets that must be fetched by hand.
func printAssetReport(w io.Writer, assets learning2mdx.AssetReport) {
	fmt.Fprintf(w, "%s assets to manually download from Stellent to assets.\n", humanize.Comma(int64(len(assets.Fetch))))
	for _, id := range assets.Fetch {
		fmt.Fprintf(w, " * %s\n", id)
	}

	if len(assets.Unknown) == 0 {
		return
	}
	fmt.Fprintf(w, "%s assets with unknown types.\n", humanize.Comma(int64(len(assets.Unknown))))
	fmt.Fprintln(w, "Extensions for these assets have been set to `.unknown`.")
	for _, id := range assets.Unknown {
		fmt.Fprintf(w, " * %s\n", id)
	}
}
