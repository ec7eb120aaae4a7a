package main

import (
	"errors"
	"os"

	flag "github.com/spf13/pflag"

	learning2mdx "github.com/alnah/go-learning2mdx"
	"github.com/alnah/go-learning2mdx/internal/config"
	"github.com/alnah/go-learning2mdx/internal/fileutil"
)

// Exit codes for the learning2mdx CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess    = 0 // Every row imported
	ExitGeneral    = 1 // General/unexpected error, interrupted run
	ExitUsage      = 2 // Invalid flags, arguments, config, or validation
	ExitIO         = 3 // Unreadable export, unwritable output
	ExitConversion = 4 // At least one row could not be converted
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Row conversion errors (exit 4)
	if errors.Is(err, ErrRowsFailed) ||
		errors.Is(err, learning2mdx.ErrRowImport) ||
		errors.Is(err, learning2mdx.ErrStructure) {
		return ExitConversion
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadExport) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, learning2mdx.ErrXMLDecode) ||
		errors.Is(err, learning2mdx.ErrMalformedRow) ||
		errors.Is(err, learning2mdx.ErrNoRows) ||
		errors.Is(err, fileutil.ErrNotDirectory) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, flag.ErrHelp) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, learning2mdx.ErrInvalidCode) ||
		errors.Is(err, learning2mdx.ErrInvalidFormat) ||
		errors.Is(err, learning2mdx.ErrMissingComponent) {
		return ExitUsage
	}

	return ExitGeneral
}
