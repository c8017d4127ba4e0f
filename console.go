package main

import (
	"fmt"
	"sync"
	"time"

	"i4.energy/across/cmdline/interp"
	"i4.energy/across/cmdline/param"
)

const version = "cmdline console V1.0"

// Console binds an interpreter with the demo command table to a stream
// and runs the cooperative polling loop.
type Console struct {
	stream   *interp.ReaderStream
	interp   *interp.Interpreter
	quit     chan struct{}
	quitOnce sync.Once
}

// NewConsole builds a console over stream with the built-in command set.
func NewConsole(stream *interp.ReaderStream) (*Console, error) {
	c := &Console{
		stream: stream,
		quit:   make(chan struct{}),
	}
	in, err := interp.New(stream, c.table())
	if err != nil {
		return nil, err
	}
	c.interp = in
	return c, nil
}

func (c *Console) table() interp.Table {
	return interp.Table{
		{Name: "help", Handler: c.cmdHelp, Help: "  : shows this list"},
		{Name: "ver", Handler: c.cmdVer, Help: "   : prints the console version"},
		{Name: "echo", Handler: c.cmdEcho, Help: "  : 'echo on|off' toggles character echo"},
		{Name: "add", Handler: c.cmdAdd, Help: "   : 'add A B' prints A+B (decimal or 0x hex)"},
		{Name: "parse", Handler: c.cmdParse, Help: " : classifies a parameter token"},
		{Name: "exit", Handler: c.cmdExit, Help: "  : ends the session"},
	}
}

// Greet writes the session banner.
func (c *Console) Greet() {
	c.stream.WriteString(version + "\r\n")
	c.stream.WriteString("Type 'help' for a list of commands.\r\n")
}

// Run polls the interpreter until the session ends: the stream hits
// EOF or an error, the user runs 'exit', or stop closes.
func (c *Console) Run(interval time.Duration, stop <-chan struct{}) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			c.interp.Flush()
			return nil
		case <-c.quit:
			return nil
		case <-c.stream.Done():
			// Drain what the pump buffered before it stopped.
			for c.interp.Poll() {
			}
			return c.stream.Err()
		case <-ticker.C:
			for c.interp.Poll() {
			}
		}
	}
}

func (c *Console) cmdHelp(args []string) interp.Status {
	c.interp.ShowCommands(false)
	return interp.StatusOK
}

func (c *Console) cmdVer(args []string) interp.Status {
	c.stream.WriteString(version + "\r\n")
	return interp.StatusOK
}

func (c *Console) cmdEcho(args []string) interp.Status {
	if len(args) < 2 {
		return interp.StatusTooFewArgs
	}
	switch args[1] {
	case "on":
		c.interp.Echo(true)
	case "off":
		c.interp.Echo(false)
	default:
		return interp.StatusInvalidArg
	}
	return interp.StatusOK
}

func (c *Console) cmdAdd(args []string) interp.Status {
	if len(args) < 3 {
		return interp.StatusTooFewArgs
	}
	a, ka := param.Parse(args[1])
	b, kb := param.Parse(args[2])
	if ka == param.Bad || kb == param.Bad {
		return interp.StatusInvalidArg
	}
	c.stream.WriteString(fmt.Sprintf("= %d\r\n", a+b))
	return interp.StatusOK
}

func (c *Console) cmdParse(args []string) interp.Status {
	if len(args) < 2 {
		return interp.StatusTooFewArgs
	}
	val, kind := param.Parse(args[1])
	switch kind {
	case param.Decimal, param.Hex:
		c.stream.WriteString(fmt.Sprintf("%s %d\r\n", kind, val))
	case param.Str:
		c.stream.WriteString(fmt.Sprintf("%s %s\r\n", kind, args[1]))
	default:
		return interp.StatusInvalidArg
	}
	return interp.StatusOK
}

func (c *Console) cmdExit(args []string) interp.Status {
	c.stream.WriteString("Bye.\r\n")
	c.quitOnce.Do(func() { close(c.quit) })
	return interp.StatusOK
}
