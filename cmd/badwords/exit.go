package main

import "errors"

// Process exit codes.
const (
	exitFailure        = 1
	exitUsage          = 2
	exitNotEnoughFiles = 3
	exitDeclined       = 4
)

var (
	errModeConflict   = errors.New("please use only one of --merge or --create_from_file at the same time")
	errNoFiles        = errors.New("at least one input file is required")
	errNotEnoughFiles = errors.New("merging one or less file is not possible or useful")
	errNoWordLists    = errors.New("none of the word-list files could be opened")
	errDeclined       = errors.New("aborted, no output file was written")
)

// exitError carries the process exit code for err. A nil err exits quietly.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func withExitCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

func exitCodeFor(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitFailure
}
