// Package param classifies command line parameter tokens.
//
// It implements the narrow numeric contract used by command handlers:
// decimal integers (optionally negative), hex integers with a 0x prefix,
// and double-quoted strings. Values are 32-bit and wrap silently on
// overflow; there are no grouping separators and no floating point.
package param

import "strings"

// Kind identifies what a parameter token was classified as.
type Kind int

const (
	// Bad marks a token that is neither a well-formed quoted string nor
	// a well-formed decimal or hex number.
	Bad Kind = iota
	// Decimal marks a decimal numeric token (e.g. "1234", "-42").
	Decimal
	// Hex marks a hex numeric token with a 0x/0X prefix (e.g. "0x12ab").
	Hex
	// Str marks a double-quoted string token. The token is left as-is,
	// including both quote characters; interpreting the content is up to
	// the caller.
	Str
)

func (k Kind) String() string {
	switch k {
	case Decimal:
		return "decimal"
	case Hex:
		return "hex"
	case Str:
		return "string"
	default:
		return "bad"
	}
}

// isSpace reports whether b is ASCII whitespace, matching C isspace.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func hexDigit(b byte) (int32, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int32(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int32(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int32(b-'A') + 10, true
	}
	return 0, false
}

// Parse classifies token and, for numeric kinds, converts it.
//
// Leading whitespace is skipped. A token starting with a double quote is
// Str only if it also ends with a double quote and is at least two
// characters long after trimming. A 0x/0X prefix selects hex conversion;
// a bare "0x" with no digits is Bad. Anything else must be an optionally
// negated run of decimal digits. The returned value is meaningful only
// for Decimal and Hex.
func Parse(token string) (int32, Kind) {
	i := 0
	for i < len(token) && isSpace(token[i]) {
		i++
	}
	token = token[i:]
	if token == "" {
		return 0, Bad
	}

	// Quoted string. Note that the surrounding tokenizer splits inside
	// quotes, so a Str token is typically a single quoted word or the
	// first/last word of a quoted phrase.
	if token[0] == '"' {
		if len(token) >= 2 && token[len(token)-1] == '"' {
			return 0, Str
		}
		return 0, Bad
	}

	if strings.HasPrefix(token, "0x") || strings.HasPrefix(token, "0X") {
		rest := token[2:]
		if rest == "" {
			return 0, Bad
		}
		var val int32
		for i := 0; i < len(rest); i++ {
			d, ok := hexDigit(rest[i])
			if !ok {
				return 0, Bad
			}
			val = val*16 + d
		}
		return val, Hex
	}

	neg := false
	if token[0] == '-' {
		neg = true
		token = token[1:]
	}
	if len(token) == 0 || !isDigit(token[0]) {
		return 0, Bad
	}
	var val int32
	for i := 0; i < len(token); i++ {
		if !isDigit(token[i]) {
			return 0, Bad
		}
		val = val*10 + int32(token[i]-'0')
	}
	if neg {
		val = -val
	}
	return val, Decimal
}
