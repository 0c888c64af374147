package workspace

import "fmt"

const (
	pathNotFoundErrorTemplateConstant    = "local path does not exist: %s"
	cloneFailedErrorTemplateConstant     = "clone of %s failed"
	cloneFailedDiagnosticsSuffixTemplate = ": %s"
)

// PathNotFoundError indicates the supplied local path is missing or not a directory.
type PathNotFoundError struct {
	Path string
}

// Error describes the missing path.
func (notFoundError PathNotFoundError) Error() string {
	return fmt.Sprintf(pathNotFoundErrorTemplateConstant, notFoundError.Path)
}

// CloneFailedError indicates the external clone command did not complete successfully.
type CloneFailedError struct {
	RemoteURL   string
	Diagnostics string
	Cause       error
}

// Error describes the clone failure including captured diagnostic output when available.
func (cloneError CloneFailedError) Error() string {
	message := fmt.Sprintf(cloneFailedErrorTemplateConstant, cloneError.RemoteURL)
	if len(cloneError.Diagnostics) > 0 {
		message += fmt.Sprintf(cloneFailedDiagnosticsSuffixTemplate, cloneError.Diagnostics)
	}
	return message
}

// Unwrap exposes the underlying execution error.
func (cloneError CloneFailedError) Unwrap() error {
	return cloneError.Cause
}
