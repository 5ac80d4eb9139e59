// Package textextract converts PDF and Word documents into plain text.
package textextract

import (
	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultMaxBytes bounds the size of a document accepted for extraction
const DefaultMaxBytes int64 = 10 << 20

// Extractor converts document bytes into plain text
type Extractor struct {
	// MaxBytes rejects larger documents before parsing. Zero means DefaultMaxBytes.
	MaxBytes int64
}

// New creates an Extractor with the given size bound
func New(maxBytes int64) *Extractor {
	return &Extractor{MaxBytes: maxBytes}
}

// Extract returns the plain text of a document in the declared format.
// PDF pages are concatenated in page order, one line per text row.
// DOCX paragraphs become lines; styling is discarded.
func (e *Extractor) Extract(data []byte, format types.Format) (string, error) {
	limit := e.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}

	switch format {
	case types.FormatPDF, types.FormatDOCX:
	default:
		return "", &UnsupportedFormatError{Format: string(format)}
	}

	if len(data) == 0 {
		return "", &DocumentReadError{Format: format, Message: "document is empty"}
	}
	if int64(len(data)) > limit {
		return "", &DocumentReadError{
			Format:  format,
			Message: "document exceeds size limit",
		}
	}

	if format == types.FormatPDF {
		return extractPDF(data)
	}
	return extractDOCX(data)
}

// Extract converts a document with the default size bound
func Extract(data []byte, format types.Format) (string, error) {
	return (&Extractor{}).Extract(data, format)
}
