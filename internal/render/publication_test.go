package render

import (
	"strings"
	"testing"

	"github.com/benali/cvgen/internal/bibtex"
)

func journalEntry() bibtex.Entry {
	return bibtex.Entry{
		Type: "article",
		Key:  "One2020",
		Fields: map[string]string{
			"author":  "A. One and B. Two",
			"title":   "{Study}",
			"journal": "J",
			"year":    "2020",
			"doi":     "10.1/x",
		},
	}
}

func TestFormatPublication_JournalHTML(t *testing.T) {
	cat, line := FormatPublication(journalEntry(), HTML, "Two")

	if cat != CategoryJournal {
		t.Fatalf("category = %q, want journal", cat)
	}
	if !strings.Contains(line, "A. One, <strong>B. Two</strong>. Study. <em>J, 2020</em>.") {
		t.Errorf("line missing formatted body:\n%s", line)
	}
	if !strings.Contains(line, `<a href="https://doi.org/10.1/x">DOI</a>`) {
		t.Errorf("line missing DOI link:\n%s", line)
	}
}

func TestFormatPublication_JournalLaTeX(t *testing.T) {
	cat, line := FormatPublication(journalEntry(), LaTeX, "Two")

	if cat != CategoryJournal {
		t.Fatalf("category = %q, want journal", cat)
	}
	want := `\item A. One, \textbf{B. Two}. Study. \textit{J, 2020}.: \href{https://doi.org/10.1/x}{10.1/x}`
	if line != want {
		t.Errorf("line = %q\nwant  %q", line, want)
	}
}

func TestFormatPublication_JournalNoDOINoLink(t *testing.T) {
	e := journalEntry()
	delete(e.Fields, "doi")

	_, line := FormatPublication(e, LaTeX, "Two")
	if strings.Contains(line, `\href`) {
		t.Errorf("journal without DOI should not link:\n%s", line)
	}
}

func TestFormatPublication_JournalDetailsOrder(t *testing.T) {
	e := bibtex.Entry{
		Type: "article",
		Fields: map[string]string{
			"author":  "A. One",
			"title":   "T",
			"journal": "J",
			"volume":  "12",
			"number":  "3",
			"pages":   "100--110",
			"year":    "2021",
		},
	}

	_, line := FormatPublication(e, HTML, "")
	if !strings.Contains(line, "<em>J, 12(3), 100--110, 2021</em>") {
		t.Errorf("details order wrong:\n%s", line)
	}
}

func TestFormatPublication_ConferenceLaTeXAlwaysLinks(t *testing.T) {
	e := bibtex.Entry{
		Type: "inproceedings",
		Fields: map[string]string{
			"author":    "A. One",
			"title":     "T",
			"booktitle": "Proc of X",
			"address":   "Lyon",
			"year":      "2019",
			"hal_id":    "https://hal.science/hal-01",
		},
	}

	cat, line := FormatPublication(e, LaTeX, "")
	if cat != CategoryConference {
		t.Fatalf("category = %q, want conference", cat)
	}
	if !strings.Contains(line, `\textit{Proc of X, Lyon, 2019}`) {
		t.Errorf("details wrong:\n%s", line)
	}
	// No DOI: link target and label fall back to HAL.
	if !strings.Contains(line, `: \href{https://hal.science/hal-01}{\nolinkurl{https://hal.science/hal-01}}`) {
		t.Errorf("conference should link HAL when DOI absent:\n%s", line)
	}

	// With a DOI the link prefers the DOI URL and labels with the raw DOI.
	e.Fields["doi"] = "10.9/z"
	_, line = FormatPublication(e, LaTeX, "")
	if !strings.Contains(line, `: \href{https://doi.org/10.9/z}{\nolinkurl{10.9/z}}`) {
		t.Errorf("conference should prefer DOI link:\n%s", line)
	}
}

func TestFormatPublication_HALFallsBackToURL(t *testing.T) {
	e := journalEntry()
	delete(e.Fields, "doi")
	e.Fields["url"] = "https://example.org/paper"

	_, line := FormatPublication(e, HTML, "")
	if !strings.Contains(line, `<a href="https://example.org/paper">HAL</a>`) {
		t.Errorf("url field should serve as HAL fallback:\n%s", line)
	}
}

func TestFormatPublication_UnrecognizedTypeDropped(t *testing.T) {
	e := bibtex.Entry{Type: "phdthesis", Fields: map[string]string{"title": "T"}}

	cat, line := FormatPublication(e, HTML, "")
	if cat != "" || line != "" {
		t.Errorf("unrecognized type should yield empty results, got (%q, %q)", cat, line)
	}
}

func TestFormatPublication_DialectsCarrySameInformation(t *testing.T) {
	e := bibtex.Entry{
		Type: "article",
		Fields: map[string]string{
			"author":  `S{\'e}bastien Martin and B. Two`,
			"title":   `{R{\'e}seaux}`,
			"journal": "Revue",
			"volume":  "4",
			"year":    "2018",
		},
	}

	_, tex := FormatPublication(e, LaTeX, "Two")
	_, html := FormatPublication(e, HTML, "Two")

	if normalizeMarkup(tex) != normalizeMarkup(html) {
		t.Errorf("dialects diverge in content:\nlatex: %q\nhtml:  %q",
			normalizeMarkup(tex), normalizeMarkup(html))
	}
}

// normalizeMarkup strips dialect syntax so the informational content of the
// two renderings can be compared directly.
func normalizeMarkup(s string) string {
	r := strings.NewReplacer(
		`\item `, "",
		`\textit{`, "", `\textbf{`, "",
		"<em>", "", "</em>", "",
		"<strong>", "", "</strong>", "",
	)
	s = r.Replace(s)
	s = LatexToUnicode(s)
	return s
}
