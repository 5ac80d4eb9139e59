package textextract

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/types"
)

// UnsupportedFormatError is returned for a document format with no extractor.
// It is terminal: there is no fallback format.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Format == "" {
		return "unsupported document format: unknown"
	}
	return fmt.Sprintf("unsupported document format: %q", e.Format)
}

// DocumentReadError is returned when the bytes of a supported format cannot be read.
// It is terminal for the whole pipeline; no partial text is returned.
type DocumentReadError struct {
	Format  types.Format
	Message string
	Cause   error
}

func (e *DocumentReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to read %s document: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to read %s document: %s", e.Format, e.Message)
}

func (e *DocumentReadError) Unwrap() error {
	return e.Cause
}
