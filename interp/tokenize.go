package interp

// splitArgs splits a completed line into delimiter-separated tokens.
// Maximal runs of non-delimiter bytes form one token each, so
// consecutive delimiters collapse and no empty tokens are produced.
// It returns ok=false once the start of a (MaxArgs+1)th token is seen;
// tokens found up to that point are discarded.
//
// Quoted substrings are intentionally not kept intact: each
// delimiter-bounded word inside quotes becomes its own token, the first
// retaining the opening quote and the last the closing quote. Handlers
// depend on this behavior; do not extend it into quoted-phrase support.
func splitArgs(line string, delim byte) (args []string, ok bool) {
	start := -1
	for i := 0; i < len(line); i++ {
		if line[i] == delim {
			if start >= 0 {
				args = append(args, line[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			if len(args) == MaxArgs {
				return nil, false
			}
			start = i
		}
	}
	if start >= 0 {
		args = append(args, line[start:])
	}
	return args, true
}
