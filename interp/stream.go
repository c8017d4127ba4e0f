package interp

//go:generate go tool mockgen -source=stream.go -destination=mock_stream.go -package=interp

// Stream is the byte stream a command line is interpreted on, typically
// a serial port. Every method must be non-blocking: Available reports
// how many bytes can be read right now, and ReadByte is valid only when
// Available has reported at least one pending byte.
//
// The interpreter performs no I/O outside this interface. Write errors
// are an adapter concern (see ReaderStream.Err); the interpreter itself
// never fails on I/O.
type Stream interface {
	// Available returns the number of bytes that can be read without
	// blocking.
	Available() int

	// ReadByte takes the next pending byte. Calling it when Available
	// returns zero yields an undefined byte.
	ReadByte() byte

	// WriteByte queues a single byte for output, used for echo.
	WriteByte(b byte)

	// WriteString queues text for output, used for diagnostics and
	// command listings. No newline is appended.
	WriteString(s string)
}
