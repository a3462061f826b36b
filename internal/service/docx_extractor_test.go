package service

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	apperrors "notes-summarizer/pkg/errors"
)

// buildDocx assembles a minimal DOCX package whose body is the given
// WordprocessingML fragment.
func buildDocx(t *testing.T, body string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	f, err := w.Create("word/document.xml")
	if err != nil {
		t.Fatalf("failed to create document part: %v", err)
	}

	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body + `</w:body></w:document>`
	if _, err := f.Write([]byte(document)); err != nil {
		t.Fatalf("failed to write document part: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	return buf.Bytes()
}

func paragraph(text string) string {
	return `<w:p><w:r><w:t>` + text + `</w:t></w:r></w:p>`
}

func TestDocxExtractor_ParagraphsInOrder(t *testing.T) {
	extractor := NewDocxExtractor(NewMockServiceLogger())

	data := buildDocx(t, paragraph("First paragraph.")+paragraph("Second paragraph.")+paragraph("Third paragraph."))

	text, err := extractor.Extract(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "First paragraph.\nSecond paragraph.\nThird paragraph.\n"
	if text != expected {
		t.Fatalf("expected %q, got %q", expected, text)
	}
}

func TestDocxExtractor_EmptyParagraphKeepsNewline(t *testing.T) {
	extractor := NewDocxExtractor(NewMockServiceLogger())

	data := buildDocx(t, paragraph("Before.")+`<w:p/>`+paragraph("After."))

	text, err := extractor.Extract(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if text != "Before.\n\nAfter.\n" {
		t.Fatalf("expected empty paragraph to contribute a bare newline, got %q", text)
	}
}

func TestDocxExtractor_MultipleRunsAndTabs(t *testing.T) {
	extractor := NewDocxExtractor(NewMockServiceLogger())

	body := `<w:p><w:r><w:t>Left</w:t></w:r><w:r><w:tab/><w:t>Right</w:t></w:r></w:p>`
	data := buildDocx(t, body)

	text, err := extractor.Extract(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if text != "Left\tRight\n" {
		t.Fatalf("expected runs joined with tab, got %q", text)
	}
}

func TestDocxExtractor_MalformedBytes(t *testing.T) {
	extractor := NewDocxExtractor(NewMockServiceLogger())

	text, err := extractor.Extract([]byte("this is not a zip archive"))
	if err == nil {
		t.Fatal("expected error for malformed input")
	}
	if text != "" {
		t.Fatalf("expected empty text on failure, got %q", text)
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeExtraction) {
		t.Fatalf("expected extraction error, got %v", err)
	}
}

func TestDocxExtractor_MissingDocumentPart(t *testing.T) {
	extractor := NewDocxExtractor(NewMockServiceLogger())

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/styles.xml")
	if err != nil {
		t.Fatalf("failed to create zip entry: %v", err)
	}
	if _, err := f.Write([]byte("<styles/>")); err != nil {
		t.Fatalf("failed to write zip entry: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}

	text, err := extractor.Extract(buf.Bytes())
	if err == nil {
		t.Fatal("expected error for archive without document part")
	}
	if text != "" {
		t.Fatalf("expected empty text on failure, got %q", text)
	}
	if !strings.Contains(err.Error(), "Word document") {
		t.Fatalf("expected user-facing message to mention Word document, got %v", err)
	}
}

func TestDocxExtractor_Format(t *testing.T) {
	extractor := NewDocxExtractor(NewMockServiceLogger())
	if extractor.Format() != "docx" {
		t.Fatalf("expected docx format, got %s", extractor.Format())
	}
}
