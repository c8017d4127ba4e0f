package interp

import "errors"

var (
	// ErrNoStream is returned when an Interpreter is constructed without
	// a Stream.
	//
	// This indicates a configuration error. The interpreter has no I/O
	// of its own and cannot operate without a stream collaborator.
	ErrNoStream = errors.New("no stream configured")

	// ErrStreamClosed is returned when an operation is attempted on a
	// stream adapter that has already been closed.
	ErrStreamClosed = errors.New("stream already closed")

	// ErrBadTerminators is returned when Terminators is configured with
	// an empty or too-long terminator set. One or two terminator bytes
	// are supported.
	ErrBadTerminators = errors.New("terminators must be 1 or 2 bytes")
)
