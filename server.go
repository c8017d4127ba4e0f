package main

import (
	"log/slog"
	"net"
	"time"

	"i4.energy/across/cmdline/interp"
)

// Server serves the command console to TCP clients, telnet-style.
// Connections are handled one at a time; each gets its own interpreter
// instance, so no state leaks between sessions.
type Server struct {
	Logger       *slog.Logger
	PollInterval time.Duration
}

// ListenAndServe accepts connections on addr until stop closes.
func (s *Server) ListenAndServe(addr string, stop <-chan struct{}) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln, stop)
}

// Serve accepts connections on ln until stop closes.
func (s *Server) Serve(ln net.Listener, stop <-chan struct{}) error {
	go func() {
		<-stop
		ln.Close()
	}()

	s.Logger.Info("Console listening", "address", ln.Addr().String())
	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-stop:
				return nil
			default:
				return err
			}
		}
		s.serveConn(conn, stop)
	}
}

func (s *Server) serveConn(conn net.Conn, stop <-chan struct{}) {
	defer conn.Close()
	logger := s.Logger.With("remote", conn.RemoteAddr().String())
	logger.Info("Client connected")

	stream := interp.NewReaderStream(conn)
	defer stream.Close()

	console, err := NewConsole(stream)
	if err != nil {
		logger.Error("Failed to create console", "error", err)
		return
	}
	console.Greet()

	if err := console.Run(s.PollInterval, stop); err != nil {
		logger.Error("Console session failed", "error", err)
		return
	}
	logger.Info("Client disconnected")
}
