// Package bibtex parses BibTeX bibliography files into entry values.
package bibtex

import (
	"sort"
	"strconv"
	"strings"
)

// Entry represents a single BibTeX entry.
type Entry struct {
	// Type is the lowercased entry type (article, inproceedings, misc, ...)
	Type string
	// Key is the citation key
	Key string
	// Fields maps lowercased field names to their raw values
	Fields map[string]string
}

// Field returns the value of a field, or "" if absent.
func (e Entry) Field(name string) string {
	return e.Fields[strings.ToLower(name)]
}

// Year returns the entry's year as an integer.
// Missing or non-numeric years return 0 so they sort lowest.
func (e Entry) Year() int {
	y, err := strconv.Atoi(strings.TrimSpace(e.Field("year")))
	if err != nil {
		return 0
	}
	return y
}

// SortByYearDesc sorts entries by year, newest first.
// The sort is stable so same-year entries keep their file order.
func SortByYearDesc(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Year() > entries[j].Year()
	})
}
