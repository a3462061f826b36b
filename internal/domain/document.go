package domain

import (
	"path/filepath"
	"strings"
)

// DocumentFormat identifies which extractor handles an upload.
type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatDocx DocumentFormat = "docx"
)

// ParseFormat normalizes a user-supplied format string.
func ParseFormat(s string) (DocumentFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf", ".pdf":
		return FormatPDF, nil
	case "docx", ".docx", "word":
		return FormatDocx, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// FormatFromFileName infers the format from the file extension.
func FormatFromFileName(name string) (DocumentFormat, error) {
	return ParseFormat(filepath.Ext(name))
}

// UploadedDocument holds one upload for the duration of a single
// upload-processing cycle.
type UploadedDocument struct {
	FileName string
	Format   DocumentFormat
	Data     []byte
}
