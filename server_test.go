package main

import (
	"io"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"
)

// readUntil reads from conn until the collected output contains want.
func readUntil(t *testing.T, conn net.Conn, want string) string {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var out strings.Builder
	buf := make([]byte, 256)
	for {
		n, err := conn.Read(buf)
		out.Write(buf[:n])
		if strings.Contains(out.String(), want) {
			return out.String()
		}
		if err != nil {
			t.Fatalf("waiting for %q, got %q: %v", want, out.String(), err)
		}
	}
}

func TestServerSession(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	stop := make(chan struct{})
	defer close(stop)

	server := &Server{
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		PollInterval: time.Millisecond,
	}
	serveDone := make(chan error, 1)
	go func() { serveDone <- server.Serve(ln, stop) }()

	conn, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	readUntil(t, conn, "help")

	if _, err := conn.Write([]byte("ver\r")); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := readUntil(t, conn, version+"\r\n")
	// The typed command is echoed before the response.
	if !strings.Contains(out, "ver") {
		t.Errorf("output %q missing echo of the command", out)
	}

	if _, err := conn.Write([]byte("add 40 2\r")); err != nil {
		t.Fatalf("write: %v", err)
	}
	readUntil(t, conn, "= 42")

	if _, err := conn.Write([]byte("nope\r")); err != nil {
		t.Fatalf("write: %v", err)
	}
	readUntil(t, conn, "Bad command!")

	if _, err := conn.Write([]byte("exit\r")); err != nil {
		t.Fatalf("write: %v", err)
	}
	readUntil(t, conn, "Bye.")

	// The server closes the connection once the session ends.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	buf := make([]byte, 64)
	for {
		if _, err := conn.Read(buf); err != nil {
			if err != io.EOF {
				t.Logf("connection ended with %v", err)
			}
			break
		}
	}
}
