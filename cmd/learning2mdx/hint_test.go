package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	learning2mdx "github.com/alnah/go-learning2mdx"
	"github.com/alnah/go-learning2mdx/internal/config"
	"github.com/alnah/go-learning2mdx/internal/widget"
)

// ---------------------------------------------------------------------------
// TestHintFor - Error hints
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"nil", nil, ""},
		{"unknown", errors.New("boom"), ""},
		{"missing target", fmt.Errorf("%w: %w", learning2mdx.ErrRowImport, widget.ErrWidgetTargetMissing), "showhide"},
		{"duplicate target", widget.ErrWidgetTargetDuplicate, "exactly one"},
		{"close control", widget.ErrCloseControlShape, "Close link"},
		{"content code", learning2mdx.ErrInvalidCode, "CON123"},
		{"no rows", learning2mdx.ErrNoRows, learning2mdx.WCMNamespace},
		{"config not found", config.ErrConfigNotFound, "--config"},
		{"output", ErrWriteOutput, "writable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err, "")
			if tt.contains == "" {
				if got != "" {
					t.Errorf("hintFor(%v) = %q, want empty", tt.err, got)
				}
				return
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("hintFor(%v) = %q, want it to contain %q", tt.err, got, tt.contains)
			}
		})
	}
}
