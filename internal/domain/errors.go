package domain

import "errors"

// Domain errors
var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
)
