package main

import (
	"flag"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration
type Config struct {
	// SerialPort is the path to the serial device to interpret commands
	// on (e.g. "/dev/ttyUSB0")
	SerialPort string
	// BaudRate is the baud rate for serial communication (e.g. 115200)
	BaudRate int
	// ListenAddress, when set, serves the console over TCP instead of a
	// serial device (e.g. "0.0.0.0:2323")
	ListenAddress string
	// Stdio, when set, runs the console on the local terminal in raw mode
	Stdio bool
	// PollInterval is the delay between interpreter polls
	PollInterval time.Duration
	// LogLevel sets the logging level (e.g. "debug", "info", "warn", "error")
	LogLevel string
}

// ConfigOption is a function that modifies a Config
type ConfigOption func(*Config) error

// LoadConfig creates a new config by applying the given options in order
func LoadConfig(opts ...ConfigOption) (*Config, error) {
	config := &Config{}

	for _, opt := range opts {
		if err := opt(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// WithDefaults applies default configuration values
func WithDefaults() ConfigOption {
	return func(c *Config) error {
		c.SerialPort = "/dev/ttyUSB0"
		c.BaudRate = 115200
		c.PollInterval = 5 * time.Millisecond
		c.LogLevel = "info"
		return nil
	}
}

// WithEnv loads configuration from environment variables
func WithEnv() ConfigOption {
	return func(c *Config) error {
		if serial := os.Getenv("SERIAL_PORT"); serial != "" {
			c.SerialPort = serial
		}

		if baud := os.Getenv("BAUD_RATE"); baud != "" {
			if b, err := strconv.Atoi(baud); err == nil {
				c.BaudRate = b
			}
		}

		if addr := os.Getenv("LISTEN_ADDRESS"); addr != "" {
			c.ListenAddress = addr
		}

		if interval := os.Getenv("POLL_INTERVAL"); interval != "" {
			if d, err := time.ParseDuration(interval); err == nil {
				c.PollInterval = d
			}
		}

		if level := os.Getenv("LOG_LEVEL"); level != "" {
			c.LogLevel = level
		}

		return nil
	}
}

// WithFlags loads configuration from command-line flags
func WithFlags(fSet *flag.FlagSet) ConfigOption {
	return func(c *Config) error {
		fSet.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "serial-port":
				c.SerialPort = f.Value.String()
			case "baud-rate":
				if b, err := strconv.Atoi(f.Value.String()); err == nil {
					c.BaudRate = b
				}
			case "listen":
				c.ListenAddress = f.Value.String()
			case "stdio":
				c.Stdio = f.Value.String() == "true"
			case "poll-interval":
				if d, err := time.ParseDuration(f.Value.String()); err == nil {
					c.PollInterval = d
				}
			case "log-level":
				c.LogLevel = f.Value.String()
			}
		})
		return nil
	}
}
