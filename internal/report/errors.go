package report

import "fmt"

const writeFailedErrorTemplateConstant = "unable to write report %s: %v"

// WriteFailedError indicates a report file could not be created or written.
type WriteFailedError struct {
	Path  string
	Cause error
}

// Error describes the failed output path.
func (writeError WriteFailedError) Error() string {
	return fmt.Sprintf(writeFailedErrorTemplateConstant, writeError.Path, writeError.Cause)
}

// Unwrap exposes the underlying filesystem or encoding error.
func (writeError WriteFailedError) Unwrap() error {
	return writeError.Cause
}
