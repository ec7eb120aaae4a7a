// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"
)

// configDirName matches the directory searched by the config package.
const configDirName = "go-learning2mdx"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, for a config name, the user config location.
func ForConfigNotFound(nameOrPath string) string {
	hint := "use --config /path/to/file.yaml"

	if nameOrPath != "" && !strings.ContainsAny(nameOrPath, "/\\") {
		if dir, err := os.UserConfigDir(); err == nil {
			hint += " or create " + filepath.Join(dir, configDirName, nameOrPath+".yaml")
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForContentCode returns hints for malformed content codes.
func ForContentCode() string {
	return format("content codes are CON followed by digits, e.g. CON123")
}

// ForExport returns hints for exports without readable rows.
func ForExport(namespace string) string {
	return format("expected wcm:row elements with Head and Body in namespace " + namespace)
}

// ForWidgetTarget returns hints for toggle widgets whose target element
// cannot be resolved.
func ForWidgetTarget() string {
	return formatHints([]string{
		`each showhide('ID') link needs exactly one element with id="ID"`,
		"fix the page in the CMS and export it again",
	})
}

// ForCloseControl returns hints for misplaced Close links.
func ForCloseControl() string {
	return format("a Close link must be the only content of its enclosing element")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
