package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: learning2mdx [flags] <xml-file> <con-code> [out-dir]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert the rows of a Stellent WCM export to MDX or Markdown pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  xml-file    WCM data export")
	fmt.Fprintln(w, "  con-code    Content code of the module, e.g. CON123")
	fmt.Fprintln(w, "  out-dir     Output directory (default: ./<con-code>)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conversion:")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "      --content-prefix <s>    Prefix for links between imported pages")
	fmt.Fprintln(w, "      --asset-prefix <s>      Prefix for rewritten asset links")
	fmt.Fprintln(w, "      --component <s>         Import path of the Expander component")
	fmt.Fprintln(w, "      --format <s>            Output format: mdx, md")
	fmt.Fprintln(w, "  -w, --workers <n>           Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --html                  Also write <stem>.html and <stem>.htmlx")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show detailed timing")
	fmt.Fprintln(w, "      --version               Show version information")
}
