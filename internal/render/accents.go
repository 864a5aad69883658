package render

import "strings"

// accentReplacer maps common LaTeX accent macros to their Unicode
// equivalents. Keys are full {...} groups so no key is a prefix of
// another; a single pass cannot corrupt a longer macro.
var accentReplacer = strings.NewReplacer(
	"{\\'a}", "á", "{\\'e}", "é", "{\\'i}", "í", "{\\'o}", "ó", "{\\'u}", "ú",
	"{\\`a}", "à", "{\\`e}", "è", "{\\`i}", "ì", "{\\`o}", "ò", "{\\`u}", "ù",
	"{\\^a}", "â", "{\\^e}", "ê", "{\\^i}", "î", "{\\^o}", "ô", "{\\^u}", "û",
	"{\\\"a}", "ä", "{\\\"e}", "ë", "{\\\"i}", "ï", "{\\\"o}", "ö", "{\\\"u}", "ü",
	"{\\~n}", "ñ", "{\\c{c}}", "ç",
	"\\&", "&",
)

// braceStripper removes brace grouping left over after macro substitution.
var braceStripper = strings.NewReplacer("{", "", "}", "")

// LatexToUnicode converts LaTeX accent macros to Unicode characters and
// strips any remaining braces. Idempotent on already-plain input.
func LatexToUnicode(s string) string {
	return braceStripper.Replace(accentReplacer.Replace(s))
}
