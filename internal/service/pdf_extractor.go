package service

import (
	"fmt"
	"strings"

	"notes-summarizer/internal/domain"
	apperrors "notes-summarizer/pkg/errors"

	"github.com/gen2brain/go-fitz"
)

// PDFExtractor extracts text from PDF bytes using MuPDF
type PDFExtractor struct {
	logger domain.Logger
}

// NewPDFExtractor creates a new PDF extractor
func NewPDFExtractor(logger domain.Logger) *PDFExtractor {
	return &PDFExtractor{logger: logger}
}

// Format returns the document format this extractor handles
func (e *PDFExtractor) Format() domain.DocumentFormat {
	return domain.FormatPDF
}

// Extract concatenates the text of every page in page order. Any parse
// failure returns an empty string together with an extraction error.
func (e *PDFExtractor) Extract(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", apperrors.NewExtractionError("Error extracting text from PDF", err)
	}
	defer doc.Close()

	var text strings.Builder
	numPages := doc.NumPage()
	for pageNum := 0; pageNum < numPages; pageNum++ {
		e.logger.Debug("Extracting PDF page", "page", pageNum+1, "total", numPages)
		pageText, err := doc.Text(pageNum)
		if err != nil {
			return "", apperrors.NewExtractionError(
				fmt.Sprintf("Error extracting text from PDF page %d", pageNum+1), err)
		}
		text.WriteString(pageText)
	}

	return text.String(), nil
}
