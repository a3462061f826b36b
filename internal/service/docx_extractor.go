package service

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"

	"notes-summarizer/internal/domain"
	apperrors "notes-summarizer/pkg/errors"
)

// WordprocessingML main namespace; elements outside it (drawings, math)
// carry no paragraph text we care about.
const wmlNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

var errMissingDocumentPart = errors.New("word/document.xml not found in archive")

// DocxExtractor extracts text from DOCX bytes. A DOCX file is a ZIP
// package whose main document part is WordprocessingML.
type DocxExtractor struct {
	logger domain.Logger
}

// NewDocxExtractor creates a new DOCX extractor
func NewDocxExtractor(logger domain.Logger) *DocxExtractor {
	return &DocxExtractor{logger: logger}
}

// Format returns the document format this extractor handles
func (e *DocxExtractor) Format() domain.DocumentFormat {
	return domain.FormatDocx
}

// Extract emits every paragraph's text followed by a newline, in document
// order. Any parse failure returns an empty string together with an
// extraction error.
func (e *DocxExtractor) Extract(data []byte) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperrors.NewExtractionError("Error extracting text from Word document", err)
	}

	var documentPart *zip.File
	for _, f := range reader.File {
		if f.Name == "word/document.xml" {
			documentPart = f
			break
		}
	}
	if documentPart == nil {
		return "", apperrors.NewExtractionError("Error extracting text from Word document", errMissingDocumentPart)
	}

	rc, err := documentPart.Open()
	if err != nil {
		return "", apperrors.NewExtractionError("Error extracting text from Word document", err)
	}
	defer rc.Close()

	text, err := e.walkDocument(rc)
	if err != nil {
		return "", apperrors.NewExtractionError("Error extracting text from Word document", err)
	}
	return text, nil
}

// walkDocument streams the WordprocessingML tokens and collects run text
// per paragraph. Tabs become "\t", explicit breaks "\n".
func (e *DocxExtractor) walkDocument(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var (
		text        bytes.Buffer
		inParagraph bool
		inText      bool
	)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Space != wmlNamespace {
				continue
			}
			switch el.Name.Local {
			case "p":
				inParagraph = true
			case "t":
				if inParagraph {
					inText = true
				}
			case "tab":
				if inParagraph {
					text.WriteByte('\t')
				}
			case "br", "cr":
				if inParagraph {
					text.WriteByte('\n')
				}
			}
		case xml.EndElement:
			if el.Name.Space != wmlNamespace {
				continue
			}
			switch el.Name.Local {
			case "p":
				if inParagraph {
					text.WriteByte('\n')
					inParagraph = false
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				text.Write(el)
			}
		}
	}

	return text.String(), nil
}
