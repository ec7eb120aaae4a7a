package main

import (
	"errors"

	learning2mdx "github.com/alnah/go-learning2mdx"
	"github.com/alnah/go-learning2mdx/internal/config"
	"github.com/alnah/go-learning2mdx/internal/fileutil"
	"github.com/alnah/go-learning2mdx/internal/hints"
	"github.com/alnah/go-learning2mdx/internal/widget"
)

// hintFor returns an actionable hint for err, or "" when none applies.
// configName is the --config value.
func hintFor(err error, configName string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, widget.ErrWidgetTargetMissing),
		errors.Is(err, widget.ErrWidgetTargetDuplicate),
		errors.Is(err, widget.ErrWidgetTargetNesting):
		return hints.ForWidgetTarget()
	case errors.Is(err, widget.ErrCloseControlShape):
		return hints.ForCloseControl()
	case errors.Is(err, learning2mdx.ErrInvalidCode):
		return hints.ForContentCode()
	case errors.Is(err, learning2mdx.ErrNoRows),
		errors.Is(err, learning2mdx.ErrMalformedRow):
		return hints.ForExport(learning2mdx.WCMNamespace)
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(configName)
	case errors.Is(err, fileutil.ErrNotDirectory),
		errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}
