package service

import "errors"

var (
	ErrInvalidMediaType = errors.New("invalid file type, only PDF files are allowed")
	ErrNoDocument       = errors.New("no PDF content has been processed yet")
)

// ExtractionError is returned when an uploaded PDF cannot be read or decoded.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return "error processing PDF: " + e.Err.Error()
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// GenerationError is returned when the language model call fails.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return "error generating response: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
