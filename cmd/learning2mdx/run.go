package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	learning2mdx "github.com/alnah/go-learning2mdx"
	"github.com/alnah/go-learning2mdx/internal/config"
	"github.com/alnah/go-learning2mdx/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage       = errors.New("usage: learning2mdx [flags] <xml-file> <con-code> [out-dir]")
	ErrReadExport  = errors.New("failed to read WCM export")
	ErrWriteOutput = errors.New("failed to write output")
	ErrRowsFailed  = errors.New("some rows could not be converted")
)

// importArgs holds the resolved positional arguments.
type importArgs struct {
	xmlFile string
	code    string
	outDir  string
}

// runImport orchestrates an import run: config, export reading, batch
// conversion, output writing and the asset report.
func runImport(ctx context.Context, positional []string, flags *cliFlags, env *Environment) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	args, err := resolveArgs(positional, cfg)
	if err != nil {
		return err
	}

	opts := learning2mdx.Options{
		Code:          args.code,
		ContentPrefix: cfg.ContentPrefix,
		AssetPrefix:   cfg.AssetPrefix,
		Component:     cfg.Component,
		Format:        cfg.Format,
		Redirects:     cfg.Redirects,
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	rows, err := readExport(args.xmlFile)
	if err != nil {
		return err
	}

	created, err := fileutil.EnsureDir(args.outDir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if created && !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Creating output directory %s.\n", args.outDir)
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Rows: %d, pool size: %d\n", len(rows), min(learning2mdx.ResolvePoolSize(cfg.Workers), len(rows)))
	}

	start := env.Now()
	batch, batchErr := learning2mdx.ImportRows(ctx, opts, rows, cfg.Workers)
	if batch == nil {
		return batchErr
	}

	w := &writer{dir: args.outDir, ext: opts.Extension(), html: cfg.Output.HTML}
	outputs := w.writeDocuments(batch.Results)

	if err := w.writeManifest(manifest(outputs)); err != nil {
		return err
	}

	failed := printResults(outputs, flags.common.quiet, flags.common.verbose, env)

	if !flags.common.quiet {
		if flags.common.verbose {
			fmt.Fprintf(env.Stdout, "Done! (%v)\n", env.Now().Sub(start).Round(time.Millisecond))
		} else {
			fmt.Fprintln(env.Stdout, "Done!")
		}
		printAssetReport(env.Stdout, batch.Assets)
	}

	if batchErr != nil {
		return batchErr
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrRowsFailed, failed, len(rows))
	}
	return nil
}

// loadConfig loads the config file (if any) and applies flag overrides.
// CLI flags win over the config file.
func loadConfig(flags *cliFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		var err error
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags copies every flag given on the command line into cfg.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	f := flags.imports
	if flags.changed("content-prefix") {
		cfg.ContentPrefix = f.contentPrefix
	}
	if flags.changed("asset-prefix") {
		cfg.AssetPrefix = f.assetPrefix
	}
	if flags.changed("component") {
		cfg.Component = f.component
	}
	if flags.changed("format") {
		cfg.Format = f.format
	}
	if flags.changed("workers") {
		cfg.Workers = f.workers
	}
	if flags.changed("html") {
		cfg.Output.HTML = f.html
	}
}

// resolveArgs validates positional arguments. The output directory
// defaults to the config value, then to ./<con-code>.
func resolveArgs(positional []string, cfg *config.Config) (importArgs, error) {
	if len(positional) < 2 || len(positional) > 3 {
		return importArgs{}, fmt.Errorf("%w: got %d arguments", ErrUsage, len(positional))
	}

	args := importArgs{xmlFile: positional[0], code: positional[1]}
	if !learning2mdx.ValidCode(args.code) {
		return importArgs{}, fmt.Errorf("%w: %q (must be in the format CON123)", learning2mdx.ErrInvalidCode, args.code)
	}

	switch {
	case len(positional) == 3 && positional[2] != "":
		args.outDir = positional[2]
	case cfg.Output.DefaultDir != "":
		args.outDir = filepath.Join(cfg.Output.DefaultDir, args.code)
	default:
		args.outDir = args.code
	}
	return args, nil
}

// readExport opens and decodes the WCM export.
func readExport(path string) ([]learning2mdx.Row, error) {
	f, err := os.Open(path) // #nosec G304 -- export path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadExport, err)
	}
	defer f.Close()

	rows, err := learning2mdx.ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}
