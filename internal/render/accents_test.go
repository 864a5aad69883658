package render

import "testing"

func TestLatexToUnicode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`S{\'e}bastien`, "Sébastien"},
		{`Mu{\~n}oz`, "Muñoz"},
		{`Fran{\c{c}}ois`, "François"},
		{"Schr{\\\"o}dinger", "Schrödinger"},
		{"{\\`a} propos", "à propos"},
		{`M{\^e}me`, "Même"},
		{`Smith \& Jones`, "Smith & Jones"},
		{`{Grouped} plain`, "Grouped plain"},
		{"already plain", "already plain"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := LatexToUnicode(tt.in); got != tt.want {
			t.Errorf("LatexToUnicode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLatexToUnicode_Idempotent(t *testing.T) {
	inputs := []string{
		"Sébastien Muñoz & François",
		LatexToUnicode(`S{\'e}bastien Mu{\~n}oz \& Fran{\c{c}}ois`),
	}
	for _, s := range inputs {
		if got := LatexToUnicode(s); got != s {
			t.Errorf("LatexToUnicode(%q) = %q, should be unchanged", s, got)
		}
	}
}

func TestLatexToUnicode_CedillaNotCorrupted(t *testing.T) {
	// {\c{c}} must match as one unit, not leave a mangled inner group.
	if got := LatexToUnicode(`{\c{c}}a`); got != "ça" {
		t.Errorf("LatexToUnicode cedilla = %q, want ça", got)
	}
}
