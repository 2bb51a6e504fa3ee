package main

import "fmt"

// UsageError means the command line itself is wrong.
type UsageError struct {
	Msg   string
	Usage string
}

func (e *UsageError) Error() string {
	if e.Usage == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s\nUsage: %s", e.Msg, e.Usage)
}

// InputReadError means the file to embed or inspect could not be read.
type InputReadError struct {
	Path string
	Err  error
}

func (e *InputReadError) Error() string {
	return e.Err.Error()
}

func (e *InputReadError) Unwrap() error {
	return e.Err
}

// OutputWriteError means the object file could not be created or written.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return e.Err.Error()
}

func (e *OutputWriteError) Unwrap() error {
	return e.Err
}
