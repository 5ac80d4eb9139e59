package ingestion

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestNewMetadata(t *testing.T) {
	doc := types.RawDocument{Data: []byte("hello"), Format: types.FormatPDF}

	meta := NewMetadata(doc)

	assert.NotEqual(t, uuid.Nil, meta.RunID)
	assert.Equal(t, types.FormatPDF, meta.Format)
	assert.Equal(t, 5, meta.SizeBytes)
	// sha256("hello")
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", meta.Hash)
	assert.NotEmpty(t, meta.Timestamp)
}

func TestMetadata_SetText(t *testing.T) {
	meta := NewMetadata(types.RawDocument{Format: types.FormatDOCX})
	meta.SetText("héllo", true)

	assert.Equal(t, 5, meta.TextChars)
	assert.True(t, meta.Truncated)
}

func TestMetadata_ToJSON(t *testing.T) {
	meta := NewMetadata(types.RawDocument{Data: []byte("x"), Format: types.FormatDOCX})
	meta.Failures = []string{"education"}

	data, err := meta.ToJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "docx", decoded["format"])
	assert.Equal(t, []any{"education"}, decoded["failures"])
	assert.Contains(t, decoded, "run_id")
}
