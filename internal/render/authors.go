package render

import "strings"

// FormatAuthors formats a BibTeX author field for output.
// Names are split on the literal " and " separator, trimmed, and joined
// with ", ". Names containing the highlight substring are wrapped in
// bold markup; the wrapper carries no braces or backslashes in the HTML
// dialect so it survives the accent substitution that follows it.
func FormatAuthors(raw string, d Dialect, highlight string) string {
	raw = strings.ReplaceAll(raw, "\n", " ")

	names := strings.Split(raw, " and ")
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if highlight != "" && strings.Contains(name, highlight) {
			if d == HTML {
				name = "<strong>" + name + "</strong>"
			} else {
				name = `\textbf{` + name + `}`
			}
		}
		out = append(out, name)
	}

	joined := strings.Join(out, ", ")
	if d == HTML {
		return LatexToUnicode(joined)
	}
	return joined
}
