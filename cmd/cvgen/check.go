package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/benali/cvgen/internal/docgen"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify every target document carries its four marker pairs",
	Long: `Check each configured document for the begin/end markers generate
splices into. Run this after editing a CV or the homepage by hand to
catch an accidentally deleted marker before it breaks generation.`,
	RunE: runCheck,
}

// CheckResult is the response for the check command.
type CheckResult struct {
	Status    string          `json:"status"`
	Documents []DocumentCheck `json:"documents"`
}

// DocumentCheck reports marker status for one document.
type DocumentCheck struct {
	Document string   `json:"document"`
	Status   string   `json:"status"` // ok, skipped, missing-markers
	Missing  []string `json:"missing,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadSiteConfig()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	result := CheckResult{Status: "ok"}

	for _, doc := range cfg.TeXDocuments {
		result.Documents = append(result.Documents, checkDocument(doc, docgen.TeXRegions))
	}
	if cfg.HTMLDocument != "" {
		result.Documents = append(result.Documents, checkDocument(cfg.HTMLDocument, docgen.HTMLRegions))
	}

	failed := false
	for _, d := range result.Documents {
		if d.Status == "missing-markers" {
			failed = true
		}
	}
	if failed {
		result.Status = "missing-markers"
	}

	if humanOutput {
		for _, d := range result.Documents {
			if len(d.Missing) > 0 {
				outputHuman("%s: missing %v\n", d.Document, d.Missing)
			} else {
				outputHuman("%s: %s\n", d.Document, d.Status)
			}
		}
	} else {
		outputJSON(result)
	}

	if failed {
		os.Exit(ExitDataError)
	}
	return nil
}

func checkDocument(path string, regions []docgen.Region) DocumentCheck {
	data, err := os.ReadFile(path)
	if err != nil {
		return DocumentCheck{Document: path, Status: "skipped"}
	}

	missing := docgen.CheckMarkers(string(data), regions)
	if len(missing) > 0 {
		return DocumentCheck{Document: path, Status: "missing-markers", Missing: missing}
	}
	return DocumentCheck{Document: path, Status: "ok"}
}
