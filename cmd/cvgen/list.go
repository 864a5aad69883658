package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/benali/cvgen/internal/storage"
)

var listKind string

func init() {
	listCmd.Flags().StringVar(&listKind, "kind", "", "Filter: pub or talk")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List bibliography entries, newest first",
	Long: `List the parsed bibliography entries. Reads the entry index
database when it exists; otherwise parses the .bib files directly.

Examples:
  cvgen list
  cvgen list --kind talk --human`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadSiteConfig()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	var entries []storage.Entry
	if _, statErr := os.Stat(cfg.IndexDB); statErr == nil {
		db, err := storage.Open(cfg.IndexDB)
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
		defer db.Close()

		entries, err = db.ListAll()
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
	} else {
		pubs, talks, err := loadBibliographies(cfg)
		if err != nil {
			exitWithError(ExitDataError, "%v", err)
		}
		entries = indexEntries(pubs, talks)
	}

	if listKind != "" {
		source, ok := map[string]string{
			"pub":  storage.SourcePublication,
			"talk": storage.SourceTalk,
		}[listKind]
		if !ok {
			exitWithError(ExitError, "invalid kind %q (want pub or talk)", listKind)
		}
		filtered := entries[:0:0]
		for _, e := range entries {
			if e.Source == source {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	if humanOutput {
		for _, e := range entries {
			year := "----"
			if e.Year > 0 {
				year = strconv.Itoa(e.Year)
			}
			outputHuman("%s  %-11s %-20s %s\n", year, e.Category, e.Key, truncateString(e.Title, ListTitleMaxLen))
		}
		return nil
	}
	return outputJSON(entries)
}

// ListTitleMaxLen bounds titles in human list output.
const ListTitleMaxLen = 60
