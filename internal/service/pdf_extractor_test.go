package service

import (
	"testing"

	apperrors "notes-summarizer/pkg/errors"
)

func TestPDFExtractor_MalformedBytes(t *testing.T) {
	extractor := NewPDFExtractor(NewMockServiceLogger())

	text, err := extractor.Extract([]byte("this is not a pdf"))
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

func TestPDFExtractor_EmptyBytes(t *testing.T) {
	extractor := NewPDFExtractor(NewMockServiceLogger())

	text, err := extractor.Extract(nil)
	if err == nil {
		t.Fatal("expected error for empty input")
	}
	if text != "" {
		t.Fatalf("expected empty text on failure, got %q", text)
	}
}

func TestPDFExtractor_Format(t *testing.T) {
	extractor := NewPDFExtractor(NewMockServiceLogger())
	if extractor.Format() != "pdf" {
		t.Fatalf("expected pdf format, got %s", extractor.Format())
	}
}
