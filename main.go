package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"
	"i4.energy/across/cmdline/interp"
)

func main() {
	flag.String("serial-port", "/dev/ttyUSB0", "Serial device to interpret commands on")
	flag.Int("baud-rate", 115200, "Baud rate for serial communication")
	flag.String("listen", "", "Serve the console over TCP on this address instead of a serial device")
	flag.Bool("stdio", false, "Run the console on the local terminal in raw mode")
	flag.Duration("poll-interval", 5*time.Millisecond, "Delay between interpreter polls")
	flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	config, err := LoadConfig(WithDefaults(), WithEnv(), WithFlags(flag.CommandLine))
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	switch config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	// Channel to listen for interrupt signals
	stop := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("Received shutdown signal", "signal", sig)
		close(stop)
	}()

	switch {
	case config.ListenAddress != "":
		server := &Server{
			Logger:       logger.With("component", "server"),
			PollInterval: config.PollInterval,
		}
		if err := server.ListenAndServe(config.ListenAddress, stop); err != nil {
			logger.Error("Console server failed", "error", err)
			os.Exit(1)
		}

	case config.Stdio:
		if err := runStdio(config.PollInterval, stop); err != nil {
			logger.Error("Stdio console failed", "error", err)
			os.Exit(1)
		}

	default:
		logger.Info("Opening serial port", "port", config.SerialPort, "baud", config.BaudRate)
		stream, err := interp.OpenSerial(interp.SerialConfig{
			Port:     config.SerialPort,
			BaudRate: config.BaudRate,
		})
		if err != nil {
			logger.Error("Failed to open serial port", "error", err)
			os.Exit(1)
		}
		defer stream.Close()

		console, err := NewConsole(stream)
		if err != nil {
			logger.Error("Failed to create console", "error", err)
			os.Exit(1)
		}
		if err := console.Run(config.PollInterval, stop); err != nil {
			logger.Error("Console failed", "error", err)
			os.Exit(1)
		}
	}
}

// stdioPipe joins stdin and stdout into the io.ReadWriter a
// ReaderStream expects.
type stdioPipe struct{}

func (stdioPipe) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdioPipe) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

// runStdio runs the console on the local terminal. The terminal is put
// into raw mode so the interpreter sees individual keystrokes and owns
// echo and backspace handling itself.
func runStdio(interval time.Duration, stop <-chan struct{}) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	stream := interp.NewReaderStream(stdioPipe{})
	defer stream.Close()

	console, err := NewConsole(stream)
	if err != nil {
		return err
	}
	console.Greet()
	return console.Run(interval, stop)
}
