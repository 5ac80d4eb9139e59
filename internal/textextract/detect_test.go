package textextract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestDetectFormat_PDFByContent(t *testing.T) {
	format, err := DetectFormat("upload.bin", []byte("%PDF-1.4\n%âãÏÓ\n"))
	require.NoError(t, err)
	assert.Equal(t, types.FormatPDF, format)
}

func TestDetectFormat_DOCX(t *testing.T) {
	format, err := DetectFormat("resume.docx", buildDOCX(t, "Jane Doe"))
	require.NoError(t, err)
	assert.Equal(t, types.FormatDOCX, format)
}

func TestDetectFormat_ExtensionFallback(t *testing.T) {
	format, err := DetectFormat("Resume.PDF", nil)
	require.NoError(t, err)
	assert.Equal(t, types.FormatPDF, format)
}

func TestDetectFormat_Unsupported(t *testing.T) {
	_, err := DetectFormat("notes.txt", []byte("plain text resume"))

	var formatErr *UnsupportedFormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, "txt", formatErr.Format)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    types.Format
		wantErr bool
	}{
		{"pdf", types.FormatPDF, false},
		{"PDF", types.FormatPDF, false},
		{" docx ", types.FormatDOCX, false},
		{"doc", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
