package textextract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/jonathan/resume-matcher/internal/types"
)

// extractPDF reads every page in order and emits one line per text row.
// The pdf library panics on some malformed inputs, so panics are converted
// into DocumentReadError.
func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &DocumentReadError{
				Format:  types.FormatPDF,
				Message: "malformed PDF",
				Cause:   fmt.Errorf("%v", r),
			}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DocumentReadError{Format: types.FormatPDF, Message: "cannot open PDF", Cause: err}
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return "", &DocumentReadError{
				Format:  types.FormatPDF,
				Message: fmt.Sprintf("cannot read page %d", i),
				Cause:   err,
			}
		}

		for _, row := range rows {
			for _, word := range row.Content {
				sb.WriteString(word.S)
			}
			sb.WriteString("\n")
		}
		// Blank line between pages
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
