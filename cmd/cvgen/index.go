package main

import (
	"github.com/spf13/cobra"

	"github.com/benali/cvgen/internal/bibtex"
	"github.com/benali/cvgen/internal/render"
	"github.com/benali/cvgen/internal/storage"
)

func init() {
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the SQLite entry index from the .bib files",
	Long: `Parse both bibliographies and rebuild the entry index database.

The index is a query convenience over the BibTeX sources (for sqlite3
one-liners or the list command); it is replaced wholesale on every run
and is never the source of truth.`,
	RunE: runIndex,
}

// IndexResult is the response for the index command.
type IndexResult struct {
	Status  string         `json:"status"`
	Path    string         `json:"path"`
	Entries int            `json:"entries"`
	ByCat   map[string]int `json:"by_category"`
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg, err := loadSiteConfig()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	pubs, talks, err := loadBibliographies(cfg)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	db, err := storage.Open(cfg.IndexDB)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	defer db.Close()

	n, err := db.Rebuild(indexEntries(pubs, talks))
	if err != nil {
		exitWithError(ExitError, "rebuilding index: %v", err)
	}

	counts, err := db.CountByCategory()
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	result := IndexResult{Status: "ok", Path: cfg.IndexDB, Entries: n, ByCat: counts}
	if humanOutput {
		outputHuman("indexed %d entries into %s\n", n, cfg.IndexDB)
		for cat, c := range counts {
			outputHuman("  %s: %d\n", cat, c)
		}
		return nil
	}
	return outputJSON(result)
}

// indexEntries converts parsed entries to index rows. The category column
// records the render bucket each entry would land in, "" for dropped kinds.
func indexEntries(pubs, talks []bibtex.Entry) []storage.Entry {
	out := make([]storage.Entry, 0, len(pubs)+len(talks))

	for _, e := range pubs {
		cat, _ := render.FormatPublication(e, render.LaTeX, "")
		venue := e.Field("journal")
		if venue == "" {
			venue = e.Field("booktitle")
		}
		out = append(out, storage.Entry{
			Key:      e.Key,
			Source:   storage.SourcePublication,
			Kind:     e.Type,
			Category: cat,
			Title:    e.Field("title"),
			Venue:    venue,
			Year:     e.Year(),
			Fields:   e.Fields,
		})
	}

	for _, e := range talks {
		cat, _ := render.FormatTalk(e, render.LaTeX)
		if cat != render.CategoryConference {
			cat = render.CategoryOther
		}
		out = append(out, storage.Entry{
			Key:      e.Key,
			Source:   storage.SourceTalk,
			Kind:     e.Type,
			Category: cat,
			Title:    e.Field("title"),
			Venue:    e.Field("address"),
			Year:     e.Year(),
			Fields:   e.Fields,
		})
	}

	return out
}
