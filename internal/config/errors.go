package config

import "fmt"

// ValidationError is the single error kind produced when a configuration
// document cannot be turned into a [models.Config]. Message always names the
// offending field path (dotted, e.g. "env.tests.port") or, for read and
// parse failures, the file path.
type ValidationError struct {
	Message string

	// Cause holds the underlying error for read/parse failures and source
	// resolution failures, nil for pure field-shape violations. Sentinels
	// such as source.ErrInvalidSource stay reachable through errors.Is.
	Cause error
}

func (e *ValidationError) Error() string {
	switch {
	case e.Cause == nil:
		return e.Message
	case e.Message == "":
		return e.Cause.Error()
	default:
		return e.Message + ": " + e.Cause.Error()
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
