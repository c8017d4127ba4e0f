// Package interp implements a non-blocking, line-oriented command
// interpreter for a byte stream, typically a serial port.
//
// An Interpreter is polled cooperatively: each Poll drains the bytes the
// stream has available right now, assembling them into a line buffer
// with echo and destructive-backspace handling. When a configured
// terminator arrives, the line is split into delimiter-separated tokens,
// the first token is looked up case-insensitively in an injected command
// table, and the matching handler runs with the full token vector.
// Handler results travel as in-band Status codes; the interpreter never
// aborts and always resets cleanly for the next line.
package interp

import "fmt"

const (
	// BufSize is the line buffer capacity. A line holds at most
	// BufSize-1 content bytes; longer input is truncated.
	BufSize = 80

	// MaxArgs is the maximum number of tokens per line, the command
	// itself included.
	MaxArgs = 10

	// maxTerminators is the longest supported terminator set.
	maxTerminators = 2
)

const (
	charBS = 0x08
	charCR = '\r'
	charLF = '\n'

	crlf = "\r\n"
)

// Interpreter assembles command lines from a Stream and dispatches them
// against a Table. One Interpreter owns one stream; multiple instances
// over distinct streams are independent and share no state. A single
// instance must not be polled concurrently.
type Interpreter struct {
	stream Stream
	table  Table

	// buf accumulates the partial line between polls; len(buf) is the
	// write cursor.
	buf []byte

	delimiter   byte
	terminators []byte
	echo        bool
	crlfEcho    bool
	crlfCmd     bool

	defaultHandler Handler
	errorHandler   ErrorHandler
}

// Option configures an Interpreter at construction time. Each option
// maps onto one of the runtime setters.
type Option func(*Interpreter) error

// WithEcho enables or disables echo of incoming characters.
func WithEcho(on bool) Option {
	return func(in *Interpreter) error {
		in.Echo(on)
		return nil
	}
}

// WithCrLfEcho enables or disables echo of incoming CR/LF characters.
func WithCrLfEcho(on bool) Option {
	return func(in *Interpreter) error {
		in.CrLfEcho(on)
		return nil
	}
}

// WithCrLfBeforeDispatch enables or disables sending CRLF to the stream
// before a completed line is dispatched.
func WithCrLfBeforeDispatch(on bool) Option {
	return func(in *Interpreter) error {
		in.CrLfBeforeDispatch(on)
		return nil
	}
}

// WithDelimiter sets the token delimiter character.
func WithDelimiter(d byte) Option {
	return func(in *Interpreter) error {
		in.Delimiter(d)
		return nil
	}
}

// WithTerminators sets the line terminator byte(s).
func WithTerminators(t string) Option {
	return func(in *Interpreter) error {
		return in.Terminators(t)
	}
}

// WithDefaultHandler installs the unknown-command handler.
func WithDefaultHandler(h Handler) Option {
	return func(in *Interpreter) error {
		in.SetDefaultHandler(h)
		return nil
	}
}

// WithErrorHandler installs a custom error handler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(in *Interpreter) error {
		in.SetErrorHandler(h)
		return nil
	}
}

// New creates an Interpreter over stream with the given command table.
//
// Defaults: space delimiter, carriage-return terminator, echo on, CR/LF
// echo off, CRLF-before-dispatch on, no default handler, built-in error
// reporting.
func New(stream Stream, table Table, opts ...Option) (*Interpreter, error) {
	if stream == nil {
		return nil, ErrNoStream
	}
	in := &Interpreter{
		stream:      stream,
		table:       table,
		buf:         make([]byte, 0, BufSize),
		delimiter:   ' ',
		terminators: []byte{charCR},
		echo:        true,
		crlfCmd:     true,
	}
	for _, opt := range opts {
		if err := opt(in); err != nil {
			return nil, err
		}
	}
	return in, nil
}

// Echo enables or disables echo of incoming characters. CR/LF are still
// withheld from the echo unless CrLfEcho is also enabled.
func (in *Interpreter) Echo(on bool) { in.echo = on }

// CrLfEcho enables or disables echo of incoming CR/LF characters. It has
// no effect while Echo is disabled.
func (in *Interpreter) CrLfEcho(on bool) { in.crlfEcho = on }

// CrLfBeforeDispatch enables or disables sending CRLF to the stream
// before a completed line is dispatched.
func (in *Interpreter) CrLfBeforeDispatch(on bool) { in.crlfCmd = on }

// Delimiter sets the token delimiter character. When the delimiter is
// not a space, spaces are ordinary token content.
func (in *Interpreter) Delimiter(d byte) { in.delimiter = d }

// Terminators sets the line terminator byte(s); one or two are
// supported. Terminator bytes other than CR and LF are kept as literal
// line content when they complete a line.
func (in *Interpreter) Terminators(t string) error {
	if len(t) == 0 || len(t) > maxTerminators {
		return ErrBadTerminators
	}
	in.terminators = []byte(t)
	return nil
}

// SetDefaultHandler installs the handler invoked when the first token
// matches no table entry. A nil handler restores the built-in
// StatusBadCommand behavior.
func (in *Interpreter) SetDefaultHandler(h Handler) { in.defaultHandler = h }

// SetErrorHandler installs a custom error handler. While one is set it
// receives the status of every processed line and all built-in error
// text is suppressed. A nil handler restores built-in reporting.
func (in *Interpreter) SetErrorHandler(h ErrorHandler) { in.errorHandler = h }

// Poll drains the bytes currently available on the stream into the line
// buffer and reports whether a line was completed and processed. It
// never blocks: with nothing available it returns false immediately, and
// a partial line is preserved across calls until its terminator arrives.
//
// A line that fills the buffer before a terminator is seen is truncated
// and force-completed: the truncated content is dispatched as-is.
func (in *Interpreter) Poll() bool {
	if in.stream.Available() == 0 {
		return false
	}

	var last byte
	for len(in.buf) < BufSize-1 {
		if in.stream.Available() == 0 {
			return false
		}
		ch := in.stream.ReadByte() & 0x7f
		last = ch

		if in.echo && (in.crlfEcho || (ch != charCR && ch != charLF)) {
			in.stream.WriteByte(ch)
		}

		if in.isTerminator(ch) {
			// Terminators other than CR/LF are literal line content.
			if ch != charCR && ch != charLF {
				in.buf = append(in.buf, ch)
			}
			break
		}

		switch ch {
		case charBS:
			if n := len(in.buf); n > 0 {
				in.buf = in.buf[:n-1]
			}
		case charLF:
			// Bare LF is filler between CR-terminated lines.
		default:
			in.buf = append(in.buf, ch)
		}
	}

	in.process(last)
	return true
}

// Flush discards any partially assembled line. Safe to call repeatedly.
func (in *Interpreter) Flush() {
	in.buf = in.buf[:0]
}

// ShowCommands writes the command table to the stream, one command per
// line. Help text is appended to each name unless hideHelp is set.
// Iteration stops at the end of the table or at a sentinel entry with an
// empty name.
func (in *Interpreter) ShowCommands(hideHelp bool) {
	for _, e := range in.table {
		if e.Name == "" {
			break
		}
		in.stream.WriteString(e.Name)
		if !hideHelp {
			in.stream.WriteString(e.Help)
		}
		in.stream.WriteString(crlf)
	}
}

func (in *Interpreter) isTerminator(ch byte) bool {
	return ch == in.terminators[0] ||
		(len(in.terminators) > 1 && ch == in.terminators[1])
}

// process runs the completed (or truncated) line through the dispatcher
// and resets the buffer. last is the byte that ended accumulation.
func (in *Interpreter) process(last byte) {
	if len(in.buf) > 0 {
		if (last == charCR || last == charLF) && in.crlfCmd {
			in.stream.WriteString(crlf)
		}
		in.report(in.dispatch(string(in.buf)))
	}
	in.buf = in.buf[:0]
}

// dispatch tokenizes line and runs the resolved handler, returning its
// status. See splitArgs for the tokenization rules.
func (in *Interpreter) dispatch(line string) Status {
	args, ok := splitArgs(line, in.delimiter)
	if !ok {
		return StatusTooManyArgs
	}
	if len(args) > 0 {
		if h, found := in.table.lookup(args[0]); found {
			return h(args)
		}
	}
	if in.defaultHandler == nil {
		return StatusBadCommand
	}
	return in.defaultHandler(args)
}

// report surfaces a dispatch status: to the custom error handler when
// one is installed, otherwise as the built-in one-line messages.
func (in *Interpreter) report(status Status) {
	if in.errorHandler != nil {
		in.errorHandler(status)
		return
	}
	if msg := status.message(); msg != "" {
		in.stream.WriteString(msg + crlf)
	} else if status != StatusOK {
		in.stream.WriteString(fmt.Sprintf("Command returned error code: %d%s", int(status), crlf))
	}
}
