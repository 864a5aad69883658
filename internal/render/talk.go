package render

import "github.com/benali/cvgen/internal/bibtex"

// FormatTalk renders one talk entry in the given dialect.
// The bucket category is the entry's own type field value, defaulting to
// "other" when absent.
func FormatTalk(e bibtex.Entry, d Dialect) (category, line string) {
	title := e.Field("title")
	year := e.Field("year")
	note := e.Field("note")
	url := e.Field("url")

	details := e.Field("address")
	switch {
	case note != "" && year != "":
		details += ", " + note + " " + year
	case note != "":
		details += ", " + note
	case year != "":
		details += ", " + year
	}

	category = e.Field("type")
	if category == "" {
		category = CategoryOther
	}

	if d == HTML {
		line = LatexToUnicode(title) + ", " + LatexToUnicode(details) + "."
		if url != "" {
			line += ` <a href="` + url + `" style="text-decoration:none">↗️</a>`
		}
		return category, line
	}

	line = `\item ` + title + ", " + details + "."
	if url != "" {
		line += ` \url{` + url + `}`
	}
	return category, line
}
