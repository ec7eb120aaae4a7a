package learning2mdx

import (
	"errors"

	"github.com/alnah/go-learning2mdx/internal/widget"
)

// Sentinel errors for library operations.
var (
	// Options validation errors.
	ErrInvalidCode      = errors.New("invalid content code")
	ErrInvalidFormat    = errors.New("invalid output format")
	ErrMissingComponent = errors.New("component import path required for mdx output")

	// Import errors.
	ErrRowImport = errors.New("row import failed")

	// ErrStructure is wrapped by every widget restructuring failure.
	ErrStructure = widget.ErrStructure

	// Export reading errors.
	ErrXMLDecode    = errors.New("failed to decode WCM export")
	ErrMalformedRow = errors.New("malformed WCM row")
	ErrNoRows       = errors.New("WCM export contains no rows")
)
