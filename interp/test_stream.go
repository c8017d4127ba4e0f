package interp

import (
	"strings"
	"sync"
)

// TestStream is a test helper implementing Stream over in-memory
// buffers. Feed queues input bytes for the interpreter to consume;
// Output collects everything the interpreter echoed or printed.
//
// It lives in a non-test file so embedding applications can use it to
// drive an Interpreter in their own tests.
type TestStream struct {
	mu  sync.Mutex
	in  []byte
	out strings.Builder
}

// NewTestStream returns an empty test stream.
func NewTestStream() *TestStream {
	return &TestStream{}
}

// Feed appends bytes for the interpreter to read.
func (t *TestStream) Feed(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.in = append(t.in, s...)
}

func (t *TestStream) Available() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.in)
}

func (t *TestStream) ReadByte() byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.in) == 0 {
		return 0
	}
	b := t.in[0]
	t.in = t.in[1:]
	return b
}

func (t *TestStream) WriteByte(b byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.out.WriteByte(b)
}

func (t *TestStream) WriteString(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.out.WriteString(s)
}

// Output returns everything written to the stream so far.
func (t *TestStream) Output() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.out.String()
}

// ResetOutput clears the collected output.
func (t *TestStream) ResetOutput() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.out.Reset()
}
