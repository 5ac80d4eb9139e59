package main

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane.doe@example.com | (555) 123-4567

Experience
Python Developer at Acme Corp
Jan 2019 - Jan 2023
- Built APIs in Python and Django

Skills
Python, Django`

const sampleJob = `{
  "title": "Backend Python Engineer",
  "skills": [{"name": "python"}, {"name": "sql"}],
  "experienceLevel": "mid"
}`

// endToEndProfile has python and django with 48 months of relevant experience
const endToEndProfile = `{
  "parsedResumeData": {
    "contact": {},
    "skills": ["python", "django"],
    "experience": [
      {"title": "Python Developer", "startDate": "2019-01", "endDate": "2023-01", "skills": ["python"]}
    ],
    "education": []
  }
}`

// setupCLI isolates a test from config files, the database and flag values left by other tests
func setupCLI(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("RESUME_MATCHER_DATABASE_URL", "")

	cfgFile, logDebug, logJSON = "", false, false
	extractFile, extractFormat, extractOutput, extractVerbose, extractProfileID = "", "", "", false, ""
	scoreProfile, scoreJob, scoreApplication, scoreResume = "", "", "", ""
	scoreProfileID, scoreJobID, scoreApplicationID, scoreOutput, scoreVerbose = "", "", "", "", false
	rankJob, rankCandidates, rankJobID, rankConcurrency, rankOutput, rankVerbose = "", "", "", 0, "", false
	validateSchema, validateSchemaFile, validateFile = "", "", ""
	return dir
}

func newTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetContext(context.Background())
	return cmd, &stdout, &stderr
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// buildDOCX returns a minimal DOCX package with one paragraph per line of text
func buildDOCX(t *testing.T, text string) []byte {
	t.Helper()

	var body strings.Builder
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, line := range strings.Split(text, "\n") {
		body.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		body.WriteString(line)
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(body.String()))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
