package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benali/cvgen/internal/bibtex"
	"github.com/benali/cvgen/internal/config"
	"github.com/benali/cvgen/internal/docgen"
	"github.com/benali/cvgen/internal/latex"
	"github.com/benali/cvgen/internal/render"
)

var generateCompile bool

func init() {
	generateCmd.Flags().BoolVar(&generateCompile, "compile", false, "Compile the updated LaTeX documents")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Re-render the bibliography regions of every target document",
	Long: `Load the publication and talk bibliographies, render each entry as
LaTeX and HTML, and splice the resulting blocks into the marker-delimited
regions of the configured documents.

A document whose markers cannot be found is reported and left untouched;
the remaining documents still update. With --compile, each updated LaTeX
document is compiled and the produced PDF verified.

Examples:
  cvgen generate
  cvgen generate --compile
  cvgen generate --config site/cvgen.yml --human`,
	RunE: runGenerate,
}

// DocumentResult reports the outcome for one target document.
type DocumentResult struct {
	Document string `json:"document"`
	Status   string `json:"status"` // updated, compiled, skipped, failed
	Pages    int    `json:"pages,omitempty"`
	Error    string `json:"error,omitempty"`
}

// GenerateResult is the response for the generate command.
type GenerateResult struct {
	Status       string           `json:"status"`
	Publications int              `json:"publications"`
	Talks        int              `json:"talks"`
	Documents    []DocumentResult `json:"documents"`
}

// renderSet holds both dialects' buckets for one run.
type renderSet struct {
	pubTeX, talkTeX   render.Buckets
	pubHTML, talkHTML render.Buckets
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadSiteConfig()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	pubs, talks, err := loadBibliographies(cfg)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	set := renderAll(cfg, pubs, talks)

	result := GenerateResult{
		Status:       "ok",
		Publications: len(pubs),
		Talks:        len(talks),
	}
	failed := false

	for _, doc := range cfg.TeXDocuments {
		res := updateDocument(doc, func(text string) (string, error) {
			return docgen.UpdateTeX(text, set.pubTeX, set.talkTeX)
		})
		if res.Status == "failed" {
			failed = true
		}
		if generateCompile && res.Status == "updated" {
			res = compileDocument(cfg, res)
			if res.Status == "failed" {
				failed = true
			}
		}
		result.Documents = append(result.Documents, res)
	}

	if cfg.HTMLDocument != "" {
		res := updateDocument(cfg.HTMLDocument, func(text string) (string, error) {
			return docgen.UpdateHTML(text, set.pubHTML, set.talkHTML)
		})
		if res.Status == "failed" {
			failed = true
		}
		result.Documents = append(result.Documents, res)
	}

	if failed {
		result.Status = "partial"
	}

	if humanOutput {
		printGenerateHuman(result)
	} else {
		outputJSON(result)
	}

	if failed {
		os.Exit(ExitDataError)
	}
	return nil
}

// loadBibliographies parses both .bib files and sorts them newest first.
func loadBibliographies(cfg *config.Config) (pubs, talks []bibtex.Entry, err error) {
	pubs, err = bibtex.ParseFile(cfg.Publications)
	if err != nil {
		return nil, nil, err
	}
	talks, err = bibtex.ParseFile(cfg.Talks)
	if err != nil {
		return nil, nil, err
	}
	bibtex.SortByYearDesc(pubs)
	bibtex.SortByYearDesc(talks)
	return pubs, talks, nil
}

// renderAll buckets every entry in both dialects.
func renderAll(cfg *config.Config, pubs, talks []bibtex.Entry) renderSet {
	return renderSet{
		pubTeX:   render.CollectPublications(pubs, render.LaTeX, cfg.HighlightAuthor),
		pubHTML:  render.CollectPublications(pubs, render.HTML, cfg.HighlightAuthor),
		talkTeX:  render.CollectTalks(talks, render.LaTeX),
		talkHTML: render.CollectTalks(talks, render.HTML),
	}
}

// updateDocument reads, transforms, and writes back one document.
// A missing document is skipped; a splice failure leaves it untouched.
func updateDocument(path string, transform func(string) (string, error)) DocumentResult {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DocumentResult{Document: path, Status: "skipped", Error: "file not found"}
		}
		return DocumentResult{Document: path, Status: "failed", Error: err.Error()}
	}

	updated, err := transform(string(data))
	if err != nil {
		return DocumentResult{Document: path, Status: "failed", Error: err.Error()}
	}

	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return DocumentResult{Document: path, Status: "failed", Error: fmt.Sprintf("writing %s: %v", path, err)}
	}
	return DocumentResult{Document: path, Status: "updated"}
}

// compileDocument compiles one updated LaTeX document and verifies the PDF.
func compileDocument(cfg *config.Config, res DocumentResult) DocumentResult {
	if err := latex.Compile(cfg.LaTeX.Engine, res.Document, cfg.LaTeX.Passes); err != nil {
		res.Status = "failed"
		res.Error = err.Error()
		return res
	}

	pages, err := latex.VerifyPDF(latex.PDFPath(res.Document))
	if err != nil {
		res.Status = "failed"
		res.Error = err.Error()
		return res
	}

	res.Status = "compiled"
	res.Pages = pages
	return res
}

func printGenerateHuman(result GenerateResult) {
	outputHuman("%d publications, %d talks\n", result.Publications, result.Talks)
	for _, d := range result.Documents {
		switch d.Status {
		case "compiled":
			outputHuman("  %s: %s (%d pages)\n", d.Document, d.Status, d.Pages)
		case "failed", "skipped":
			outputHuman("  %s: %s (%s)\n", d.Document, d.Status, d.Error)
		default:
			outputHuman("  %s: %s\n", d.Document, d.Status)
		}
	}
}
