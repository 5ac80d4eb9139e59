package textextract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const docxBodyPart = "word/document.xml"

// extractDOCX streams word/document.xml and keeps only run text.
// Paragraph ends and explicit breaks become newlines, tabs become tabs.
func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DocumentReadError{Format: types.FormatDOCX, Message: "not a zip archive", Cause: err}
	}

	var body *zip.File
	for _, f := range zr.File {
		if f.Name == docxBodyPart {
			body = f
			break
		}
	}
	if body == nil {
		return "", &DocumentReadError{Format: types.FormatDOCX, Message: "missing " + docxBodyPart}
	}

	rc, err := body.Open()
	if err != nil {
		return "", &DocumentReadError{Format: types.FormatDOCX, Message: "cannot open " + docxBodyPart, Cause: err}
	}
	defer func() { _ = rc.Close() }()

	text, err := readDocumentXML(rc)
	if err != nil {
		return "", &DocumentReadError{Format: types.FormatDOCX, Message: "malformed " + docxBodyPart, Cause: err}
	}
	return text, nil
}

func readDocumentXML(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var sb strings.Builder
	inText := false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteString("\t")
			case "br", "cr":
				sb.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}

	return sb.String(), nil
}
