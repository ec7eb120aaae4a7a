package learning2mdx

import (
	"errors"
	"testing"
)

func TestValidCode(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"CON0":      true,
		"CON123":    true,
		"CON123123": true,
		"NOTCON123": false,
		"CON":       false,
		"CON-1":     false,
		"con123":    false,
		"CON123 ":   false,
		"":          false,
	}

	for code, want := range tests {
		if got := ValidCode(code); got != want {
			t.Errorf("ValidCode(%q) = %v, want %v", code, got, want)
		}
	}
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{
			name: "mdx with component",
			opts: Options{Code: "CON1", Component: "../components/Expander"},
		},
		{
			name: "markdown without component",
			opts: Options{Code: "CON1", Format: FormatMarkdown},
		},
		{
			name:    "invalid code",
			opts:    Options{Code: "CON", Component: "x"},
			wantErr: ErrInvalidCode,
		},
		{
			name:    "invalid format",
			opts:    Options{Code: "CON1", Format: "html"},
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "mdx missing component",
			opts:    Options{Code: "CON1", Format: FormatMDX},
			wantErr: ErrMissingComponent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.opts.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptions_Extension(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":             ".mdx",
		FormatMDX:      ".mdx",
		FormatMarkdown: ".md",
	}
	for format, want := range tests {
		opts := Options{Format: format}
		if got := opts.Extension(); got != want {
			t.Errorf("Extension() with format %q = %q, want %q", format, got, want)
		}
	}
}
