package interp

// Status is the in-band result of dispatching one command line. Zero
// means success. The negative values below are reserved for the built-in
// error taxonomy; any other non-zero value is an application-defined
// code that is echoed back to the user numerically.
//
// These are protocol values exchanged with handlers, not Go errors and
// not process exit codes.
type Status int

const (
	// StatusOK indicates the command executed successfully.
	StatusOK Status = 0

	// StatusBadCommand indicates the first token matched no table entry
	// and no default handler is installed.
	StatusBadCommand Status = -1

	// StatusTooManyArgs indicates the line tokenized into more than
	// MaxArgs arguments. The command is never dispatched.
	StatusTooManyArgs Status = -2

	// StatusTooFewArgs is reserved for handlers to report that they
	// received fewer arguments than they require.
	StatusTooFewArgs Status = -3

	// StatusInvalidArg is reserved for handlers to report that an
	// argument failed their own validation.
	StatusInvalidArg Status = -4
)

// message returns the built-in diagnostic line for a status, or "" when
// the status carries no fixed text (success and application codes).
func (s Status) message() string {
	switch s {
	case StatusBadCommand:
		return "Bad command!"
	case StatusTooManyArgs:
		return "Too many arguments for command processor!"
	case StatusTooFewArgs:
		return "Not enough arguments for command processor!"
	case StatusInvalidArg:
		return "Invalid argument for command processor!"
	}
	return ""
}
