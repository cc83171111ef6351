package ingestion

import "fmt"

// ExtractionError represents a failure to extract text from an uploaded file,
// either because the bytes could not be decoded or because the reader for the
// file's format is unavailable.
type ExtractionError struct {
	Filename string
	Message  string
	Cause    error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("could not extract text from %s: %s: %v", e.Filename, e.Message, e.Cause)
	}
	return fmt.Sprintf("could not extract text from %s: %s", e.Filename, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
