package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-learning2mdx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPrefixLength    = 1024 // Link prefixes are relative paths or URLs
	MaxComponentLength = 1024 // Import path of the Expander component
	MaxCodeLength      = 50   // Legacy content code, "CON123123"
	MaxURLLength       = 2048 // Browser limit
	MaxWorkers         = 64
)

// Output formats.
const (
	FormatMDX      = "mdx"
	FormatMarkdown = "md"
)

// configDirName is the directory searched under the user config dir.
const configDirName = "go-learning2mdx"

// Config holds all configuration for an import run.
type Config struct {
	ContentPrefix string            `yaml:"contentPrefix"` // Prepended to links between imported pages
	AssetPrefix   string            `yaml:"assetPrefix"`   // Prepended to rewritten asset links
	Component     string            `yaml:"component"`     // Import path of the Expander component (mdx only)
	Format        string            `yaml:"format"`        // "mdx" or "md"
	Workers       int               `yaml:"workers"`       // 0 = one per CPU, 1 = sequential
	Redirects     map[string]string `yaml:"redirects"`     // Extra content code -> URL redirects
	Output        OutputConfig      `yaml:"output"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Parent of the <con-code> directory; empty = current directory
	HTML       bool   `yaml:"html"`       // Also write source and restructured markup
}

// Validate checks field values and lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("contentPrefix", c.ContentPrefix, MaxPrefixLength); err != nil {
		return err
	}
	if err := validateFieldLength("assetPrefix", c.AssetPrefix, MaxPrefixLength); err != nil {
		return err
	}
	if err := validateFieldLength("component", c.Component, MaxComponentLength); err != nil {
		return err
	}

	switch c.Format {
	case "", FormatMDX, FormatMarkdown:
	default:
		return fmt.Errorf("%w: format %q (must be %s or %s)", ErrInvalidValue, c.Format, FormatMDX, FormatMarkdown)
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	for code, target := range c.Redirects {
		if code == "" {
			return fmt.Errorf("%w: redirects: empty content code", ErrInvalidValue)
		}
		if err := validateFieldLength("redirects."+code, code, MaxCodeLength); err != nil {
			return err
		}
		if err := validateFieldLength("redirects."+code, target, MaxURLLength); err != nil {
			return err
		}
		if u, err := url.Parse(target); err != nil || !u.IsAbs() {
			return fmt.Errorf("%w: redirects.%s: %q is not an absolute URL", ErrInvalidValue, code, target)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		ContentPrefix: "",
		AssetPrefix:   "../assets/",
		Component:     "../components/Expander",
		Format:        FormatMDX,
		Workers:       1,
		Output:        OutputConfig{DefaultDir: "", HTML: false},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-learning2mdx/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
