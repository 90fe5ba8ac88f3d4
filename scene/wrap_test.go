package scene

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mono(r rune) float64 {
	if r == '\n' {
		return 0
	}
	return 1
}

func TestWrapLines(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float64
		want  []string
	}{
		{"empty", "", 10, nil},
		{"fits", "hello", 10, []string{"hello"}},
		{"word break", "hello world", 8, []string{"hello ", "world"}},
		{"trailing spaces hang", "ab   cd", 3, []string{"ab   ", "cd"}},
		{"long word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"newlines kept", "a\nb\n", 10, []string{"a\n", "b\n"}},
		{"blank line", "a\n\nb", 10, []string{"a\n", "\n", "b"}},
		{"no wrap", "hello world", 0, []string{"hello world"}},
		{"hyphen", "well-known", 6, []string{"well-", "known"}},
		{"several words", "aa bb cc dd", 5, []string{"aa bb ", "cc dd"}},
		{"closing bracket stays", "(ab)", 3, []string{"(ab", ")"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapLines(tt.text, tt.width, mono)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("wrapLines(%q, %v) mismatch (-want +got):\n%s", tt.text, tt.width, diff)
			}
			if strings.Join(got, "") != tt.text {
				t.Errorf("lines do not join back to the text: %q", got)
			}
		})
	}
}

func TestCanBreakBefore(t *testing.T) {
	runes := []rune("a (b) c")
	// a, ' ', (, b, ), ' ', c
	want := []bool{false, false, true, false, false, false, true}
	for i, w := range want {
		if got := canBreakBefore(runes, i); got != w {
			t.Errorf("canBreakBefore(%d %q) = %v, want %v", i, runes[i], got, w)
		}
	}
}
