package render

import (
	"strings"

	"github.com/benali/cvgen/internal/bibtex"
)

// Bucket categories.
const (
	CategoryJournal    = "journal"
	CategoryConference = "conference"
	CategoryOther      = "other"
)

// FormatPublication renders one publication entry in the given dialect.
// It returns the bucket category and the formatted line. Entry types other
// than article and inproceedings return ("", "") and are dropped from
// every bucket.
func FormatPublication(e bibtex.Entry, d Dialect, highlight string) (category, line string) {
	authors := FormatAuthors(e.Field("author"), d, highlight)
	title := stripTitleBraces(e.Field("title"))
	if d == HTML {
		title = LatexToUnicode(title)
	}

	doi := e.Field("doi")
	hal := e.Field("hal_id")
	if hal == "" {
		hal = e.Field("url")
	}

	switch e.Type {
	case "article":
		return CategoryJournal, publicationLine(d, authors, title, journalDetails(e), doi, hal, true)
	case "inproceedings":
		return CategoryConference, publicationLine(d, authors, title, proceedingsDetails(e), doi, hal, false)
	}
	return "", ""
}

// publicationLine assembles the full line for a publication.
// Journal and conference entries differ only in how they link out:
// a journal links its DOI (when present) with the raw DOI as label,
// while a conference entry always links, preferring the DOI URL over
// HAL, with the label in \nolinkurl so it is not auto-linked again.
func publicationLine(d Dialect, authors, title, details, doi, hal string, journal bool) string {
	if d == HTML {
		var b strings.Builder
		b.WriteString(authors)
		b.WriteString(". ")
		b.WriteString(title)
		b.WriteString(". <em>")
		b.WriteString(LatexToUnicode(details))
		b.WriteString("</em>.")
		if doi != "" {
			b.WriteString(` <a href="https://doi.org/` + doi + `">DOI</a>`)
		}
		if hal != "" {
			b.WriteString(` <a href="` + hal + `">HAL</a>`)
		}
		return b.String()
	}

	line := `\item ` + authors + ". " + title + `. \textit{` + details + "}."
	if journal {
		if doi != "" {
			line += `: \href{https://doi.org/` + doi + `}{` + doi + `}`
		}
		return line
	}

	target, label := hal, hal
	if doi != "" {
		target = "https://doi.org/" + doi
		label = doi
	}
	return line + `: \href{` + target + `}{\nolinkurl{` + label + `}}`
}

// journalDetails builds "journal[, volume][(number)][, pages][, year]".
func journalDetails(e bibtex.Entry) string {
	var b strings.Builder
	b.WriteString(e.Field("journal"))
	if v := e.Field("volume"); v != "" {
		b.WriteString(", " + v)
	}
	if n := e.Field("number"); n != "" {
		b.WriteString("(" + n + ")")
	}
	if p := e.Field("pages"); p != "" {
		b.WriteString(", " + p)
	}
	if y := e.Field("year"); y != "" {
		b.WriteString(", " + y)
	}
	return b.String()
}

// proceedingsDetails builds "booktitle[, address][, year]".
func proceedingsDetails(e bibtex.Entry) string {
	var b strings.Builder
	b.WriteString(e.Field("booktitle"))
	if a := e.Field("address"); a != "" {
		b.WriteString(", " + a)
	}
	if y := e.Field("year"); y != "" {
		b.WriteString(", " + y)
	}
	return b.String()
}

// stripTitleBraces removes one protective {...} wrapper around a title.
// Not recursive: "{{T}}" becomes "{T}".
func stripTitleBraces(title string) string {
	title = strings.TrimSpace(title)
	if len(title) >= 2 && strings.HasPrefix(title, "{") && strings.HasSuffix(title, "}") {
		return title[1 : len(title)-1]
	}
	return title
}
