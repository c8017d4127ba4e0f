package interp

import "strings"

// Handler executes one command. args holds the full token vector with
// the command name at args[0]; the returned Status is passed back to the
// interpreter verbatim.
type Handler func(args []string) Status

// ErrorHandler receives the status of every processed line. When one is
// installed on an interpreter it entirely replaces the built-in error
// reporting, including the generic numeric-code message.
type ErrorHandler func(status Status)

// Entry is one row of a command table.
type Entry struct {
	// Name is the command word. Matching against the first token of a
	// line is ASCII case-insensitive. An empty Name acts as a sentinel
	// that ends table iteration early.
	Name string

	// Handler is invoked when Name matches the first token.
	Handler Handler

	// Help is an optional one-line description shown by ShowCommands.
	Help string
}

// Table is an ordered, externally owned command table. The interpreter
// never mutates it. Lookup scans from the first entry and stops at the
// first match, so a duplicate name later in the table is never reached.
type Table []Entry

// lookup returns the handler for name, scanning in order up to the end
// of the table or a sentinel entry with an empty name.
func (t Table) lookup(name string) (Handler, bool) {
	for _, e := range t {
		if e.Name == "" {
			break
		}
		if strings.EqualFold(name, e.Name) {
			return e.Handler, true
		}
	}
	return nil, false
}
