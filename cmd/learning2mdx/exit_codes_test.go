package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	learning2mdx "github.com/alnah/go-learning2mdx"
	"github.com/alnah/go-learning2mdx/internal/config"
	"github.com/alnah/go-learning2mdx/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Conversion errors (exit 4)
		{"rows failed", ErrRowsFailed, ExitConversion},
		{"row import", learning2mdx.ErrRowImport, ExitConversion},
		{"structure", learning2mdx.ErrStructure, ExitConversion},
		{"wrapped rows failed", fmt.Errorf("%w: 1 of 3", ErrRowsFailed), ExitConversion},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read export", ErrReadExport, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"xml decode", learning2mdx.ErrXMLDecode, ExitIO},
		{"malformed row", learning2mdx.ErrMalformedRow, ExitIO},
		{"no rows", learning2mdx.ErrNoRows, ExitIO},
		{"not a directory", fileutil.ErrNotDirectory, ExitIO},
		{"wrapped file not exist", fmt.Errorf("%w: %w", ErrReadExport, os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid config value", config.ErrInvalidValue, ExitUsage},
		{"invalid code", learning2mdx.ErrInvalidCode, ExitUsage},
		{"invalid format", learning2mdx.ErrInvalidFormat, ExitUsage},
		{"missing component", learning2mdx.ErrMissingComponent, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"cancelled", context.Canceled, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	codes := []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO, ExitConversion}
	seen := make(map[int]bool)
	for _, c := range codes {
		if c >= 126 {
			t.Errorf("exit code %d is reserved by the shell", c)
		}
		if seen[c] {
			t.Errorf("exit code %d is used twice", c)
		}
		seen[c] = true
	}
	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Error("exit codes 0, 1, 2 must be success, general, usage")
	}
}
