package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags controlling CLI output.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// importFlags holds the flags that override config file values.
type importFlags struct {
	contentPrefix string
	assetPrefix   string
	component     string
	format        string
	workers       int
	html          bool
}

// cliFlags holds every flag of the learning2mdx command.
type cliFlags struct {
	common  commonFlags
	imports importFlags
	version bool

	// set records the flags given on the command line, so that explicit
	// empty or zero values still override the config file.
	set map[string]bool
}

// changed reports whether the named flag was given on the command line.
func (f *cliFlags) changed(name string) bool {
	return f.set[name]
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addImportFlags adds config override flags to a FlagSet.
func addImportFlags(fs *flag.FlagSet, f *importFlags) {
	fs.StringVar(&f.contentPrefix, "content-prefix", "", "prefix for links between imported pages")
	fs.StringVar(&f.assetPrefix, "asset-prefix", "", "prefix for rewritten asset links")
	fs.StringVar(&f.component, "component", "", "import path of the Expander component")
	fs.StringVar(&f.format, "format", "", "output format: mdx, md")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.html, "html", false, "also write source and restructured markup")
}

// parseFlags parses command-line arguments (without the program name) and
// returns the positional arguments.
func parseFlags(args []string, usage io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("learning2mdx", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &cliFlags{set: make(map[string]bool)}

	addCommonFlags(fs, &f.common)
	addImportFlags(fs, &f.imports)
	fs.BoolVar(&f.version, "version", false, "show version information")

	fs.Usage = func() { printUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	fs.Visit(func(fl *flag.Flag) {
		f.set[fl.Name] = true
	})

	return f, fs.Args(), nil
}
