package cli

import "errors"

// systemError marks failures of the environment rather than of the
// user's input.
type systemError struct {
	err error
}

func (e *systemError) Error() string { return e.err.Error() }
func (e *systemError) Unwrap() error { return e.err }

func sysError(err error) error {
	if err == nil {
		return nil
	}
	return &systemError{err: err}
}

// exitCode maps err to the process exit code.
func exitCode(err error) int {
	var se *systemError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}
