package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Metadata describes one extraction run over an uploaded document
type Metadata struct {
	RunID      uuid.UUID    `json:"run_id"`
	Timestamp  string       `json:"timestamp"` // RFC3339 format
	Format     types.Format `json:"format"`
	SizeBytes  int          `json:"size_bytes"`
	Hash       string       `json:"hash"` // SHA256 hex digest of the document bytes
	TextChars  int          `json:"text_chars"`
	Truncated  bool         `json:"truncated,omitempty"`
	Failures   []string     `json:"failures,omitempty"` // extractor fields that failed
	DurationMS int64        `json:"duration_ms"`
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(doc types.RawDocument) *Metadata {
	return &Metadata{
		RunID:     uuid.New(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Format:    doc.Format,
		SizeBytes: len(doc.Data),
		Hash:      computeHash(doc.Data),
	}
}

// SetText records the size of the text handed to the extractors
func (m *Metadata) SetText(text string, truncated bool) {
	m.TextChars = utf8.RuneCountInString(text)
	m.Truncated = truncated
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}
