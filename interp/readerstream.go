package interp

import (
	"io"
	"sync"
)

// readBuffer is the capacity of the pump channel between the reader
// goroutine and Poll. Bytes beyond it apply backpressure to the
// underlying reader, not to Poll.
const readBuffer = 4096

// ReaderStream adapts a blocking io.ReadWriter (a serial port, a
// net.Conn, a pty) to the non-blocking Stream contract. A pump goroutine
// reads from rw into a buffered channel; Available and ReadByte only
// touch the channel and never block.
//
// Writes go straight to rw. The first I/O error on either side is
// recorded and exposed through Err; after a read error the pump stops
// and Available eventually reports zero.
type ReaderStream struct {
	rw       io.ReadWriter
	recv     chan byte
	done     chan struct{}
	pumpDone chan struct{}

	closeOnce sync.Once

	mu  sync.Mutex
	err error
}

// NewReaderStream starts pumping rw and returns the adapter. Close the
// stream to stop the pump; if rw is an io.Closer it is closed too, which
// unblocks a pending read.
func NewReaderStream(rw io.ReadWriter) *ReaderStream {
	s := &ReaderStream{
		rw:       rw,
		recv:     make(chan byte, readBuffer),
		done:     make(chan struct{}),
		pumpDone: make(chan struct{}),
	}
	go s.pump()
	return s
}

func (s *ReaderStream) pump() {
	defer close(s.pumpDone)
	buf := make([]byte, 256)
	for {
		n, err := s.rw.Read(buf)
		for _, b := range buf[:n] {
			select {
			case s.recv <- b:
			case <-s.done:
				return
			}
		}
		if err != nil {
			if err != io.EOF {
				s.setErr(err)
			}
			return
		}
		select {
		case <-s.done:
			return
		default:
		}
	}
}

// Available returns the number of bytes that can be read without
// blocking.
func (s *ReaderStream) Available() int {
	return len(s.recv)
}

// ReadByte takes the next pumped byte. It returns 0 when nothing is
// available; callers must gate on Available.
func (s *ReaderStream) ReadByte() byte {
	select {
	case b := <-s.recv:
		return b
	default:
		return 0
	}
}

// WriteByte writes a single byte to the underlying stream.
func (s *ReaderStream) WriteByte(b byte) {
	if _, err := s.rw.Write([]byte{b}); err != nil {
		s.setErr(err)
	}
}

// WriteString writes text to the underlying stream.
func (s *ReaderStream) WriteString(str string) {
	if _, err := io.WriteString(s.rw, str); err != nil {
		s.setErr(err)
	}
}

// Done returns a channel that is closed when the pump stops: on EOF, on
// a read error, or after Close. Buffered bytes can still be drained
// through ReadByte afterwards.
func (s *ReaderStream) Done() <-chan struct{} {
	return s.pumpDone
}

// Err returns the first I/O error seen by the adapter, or nil. A clean
// EOF on the read side is not reported as an error.
func (s *ReaderStream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close stops the pump and closes the underlying stream if it is an
// io.Closer. Safe to call multiple times.
func (s *ReaderStream) Close() error {
	err := ErrStreamClosed
	s.closeOnce.Do(func() {
		close(s.done)
		err = nil
		if c, ok := s.rw.(io.Closer); ok {
			err = c.Close()
		}
	})
	return err
}

func (s *ReaderStream) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = err
	}
}
