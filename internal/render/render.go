// Package render formats bibliography entries as LaTeX and HTML fragments.
package render

// Dialect selects which markup style a fragment is rendered in.
type Dialect int

const (
	// LaTeX produces \item lines with macros left for the compiler.
	LaTeX Dialect = iota
	// HTML produces list-entry bodies with accents converted to Unicode.
	HTML
)

// String returns the dialect name.
func (d Dialect) String() string {
	if d == HTML {
		return "html"
	}
	return "latex"
}
