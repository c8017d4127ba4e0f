package interp

import (
	"slices"
	"strings"
	"testing"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		delim byte
		want  []string
		ok    bool
	}{
		{
			name:  "Simple command with arguments",
			line:  "add 1 2",
			delim: ' ',
			want:  []string{"add", "1", "2"},
			ok:    true,
		},
		{
			name:  "Consecutive delimiters collapse",
			line:  "set   mode    fast",
			delim: ' ',
			want:  []string{"set", "mode", "fast"},
			ok:    true,
		},
		{
			name:  "Leading and trailing delimiters",
			line:  "  list  ",
			delim: ' ',
			want:  []string{"list"},
			ok:    true,
		},
		{
			name:  "Single token",
			line:  "help",
			delim: ' ',
			want:  []string{"help"},
			ok:    true,
		},
		{
			name:  "Empty line",
			line:  "",
			delim: ' ',
			want:  nil,
			ok:    true,
		},
		{
			name:  "Delimiters only",
			line:  "     ",
			delim: ' ',
			want:  nil,
			ok:    true,
		},
		{
			name:  "Comma delimiter keeps spaces as content",
			line:  "set,1 2,3",
			delim: ',',
			want:  []string{"set", "1 2", "3"},
			ok:    true,
		},
		{
			name:  "Quoted phrase splits into words",
			line:  `say "hello there world"`,
			delim: ' ',
			want:  []string{"say", `"hello`, "there", `world"`},
			ok:    true,
		},
		{
			name:  "Exactly MaxArgs tokens",
			line:  "a b c d e f g h i j",
			delim: ' ',
			want:  []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"},
			ok:    true,
		},
		{
			name:  "One token over MaxArgs",
			line:  "a b c d e f g h i j k",
			delim: ' ',
			want:  nil,
			ok:    false,
		},
		{
			name:  "TAB is ordinary content with space delimiter",
			line:  "dump\t1",
			delim: ' ',
			want:  []string{"dump\t1"},
			ok:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := splitArgs(tt.line, tt.delim)
			if ok != tt.ok {
				t.Fatalf("splitArgs(%q, %q) ok = %v, want %v", tt.line, tt.delim, ok, tt.ok)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("splitArgs(%q, %q) = %q, want %q", tt.line, tt.delim, got, tt.want)
			}
		})
	}
}

func TestSplitArgsLongLine(t *testing.T) {
	// A two-token line of any length stays two tokens.
	line := strings.Repeat("x", 40) + " " + strings.Repeat("y", 30)
	got, ok := splitArgs(line, ' ')
	if !ok {
		t.Fatal("unexpected too-many-args")
	}
	if len(got) != 2 {
		t.Fatalf("got %d tokens, want 2", len(got))
	}
}
