package jstore

import (
	"fmt"
	"strings"
)

// ReadError reports a file that exists but could not be read.
type ReadError struct {
	Filename string
	Err      error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("jstore: reading %s: %v", e.Filename, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// DecodeError reports stored content the codec could not decode.
type DecodeError struct {
	Filename string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("jstore: malformed content in %s: %v", e.Filename, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// SerializationError reports a value the codec refuses to encode. Paths
// locates every offending sub-value or mapping key, shallowest first.
type SerializationError struct {
	Filename string
	Paths    []string
	Err      error
}

func (e *SerializationError) Error() string {
	if len(e.Paths) == 0 {
		return fmt.Sprintf("jstore: failed to serialize %s: %v", e.Filename, e.Err)
	}
	return fmt.Sprintf("jstore: failed to serialize %s: bad data found at %s",
		e.Filename, strings.Join(e.Paths, ", "))
}

func (e *SerializationError) Unwrap() error { return e.Err }

// WriteError reports a failure while durably writing the file: temp file
// creation, the write itself, the mode change, or the final rename.
type WriteError struct {
	Filename string
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("jstore: saving %s: %v", e.Filename, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
