package chromaprint

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrFpcalcNotFound   = errors.New("fpcalc binary not found")
	ErrEmptyOutput      = errors.New("fpcalc produced no output")
	ErrEmptyFingerprint = errors.New("fpcalc returned an empty fingerprint")
)

// ProcessingError represents an error during fingerprint calculation
type ProcessingError struct {
	Operation string // The operation that failed (e.g., "fingerprint_calculation")
	File      string // The file being fingerprinted
	Err       error  // The underlying error
	Stderr    string // stderr output from fpcalc
}

func (e *ProcessingError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("fpcalc %s failed for %s: %v (stderr: %s)", e.Operation, e.File, e.Err, e.Stderr)
	}
	return fmt.Sprintf("fpcalc %s failed for %s: %v", e.Operation, e.File, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// NewProcessingError creates a new ProcessingError
func NewProcessingError(operation, file string, err error, stderr string) *ProcessingError {
	return &ProcessingError{
		Operation: operation,
		File:      file,
		Err:       err,
		Stderr:    stderr,
	}
}
