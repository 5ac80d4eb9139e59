package textextract

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// DetectFormat determines the document format from its content, falling back to
// the file extension when the content is not conclusive (e.g. a generic zip).
func DetectFormat(filename string, data []byte) (types.Format, error) {
	if len(data) > 0 {
		mt := mimetype.Detect(data)
		switch {
		case mt.Is(mimePDF):
			return types.FormatPDF, nil
		case mt.Is(mimeDOCX):
			return types.FormatDOCX, nil
		}
	}

	return ParseFormat(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// ParseFormat maps a format name or extension to a Format
func ParseFormat(name string) (types.Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pdf":
		return types.FormatPDF, nil
	case "docx":
		return types.FormatDOCX, nil
	default:
		return "", &UnsupportedFormatError{Format: name}
	}
}
