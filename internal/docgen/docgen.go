// Package docgen splices rendered bibliography blocks into CV documents.
//
// Each target document carries four marker-delimited regions (journal
// papers, conference papers, conference talks, other talks). docgen builds
// the block for each region from the formatter's buckets and threads the
// document text through one splice per region.
package docgen

import (
	"fmt"
	"strings"

	"github.com/benali/cvgen/internal/render"
	"github.com/benali/cvgen/internal/splice"
)

// Region identifies one marker-delimited area of a document.
type Region struct {
	Name  string
	Begin string
	End   string
}

// RegionNames lists the four region names in document order.
var RegionNames = []string{"journals", "confs", "conf-talks", "other-talks"}

// TeXRegions are the marker pairs recognized in LaTeX documents.
var TeXRegions = []Region{
	{Name: "journals", Begin: "% BEGIN JOURNALS", End: "% END JOURNALS"},
	{Name: "confs", Begin: "% BEGIN CONFS", End: "% END CONFS"},
	{Name: "conf-talks", Begin: "% BEGIN CONF TALKS", End: "% END CONF TALKS"},
	{Name: "other-talks", Begin: "% BEGIN OTHER TALKS", End: "% END OTHER TALKS"},
}

// HTMLRegions are the marker pairs recognized in the web page.
var HTMLRegions = []Region{
	{Name: "journals", Begin: "<!-- BEGIN JOURNALS -->", End: "<!-- END JOURNALS -->"},
	{Name: "confs", Begin: "<!-- BEGIN CONFS -->", End: "<!-- END CONFS -->"},
	{Name: "conf-talks", Begin: "<!-- BEGIN CONF TALKS -->", End: "<!-- END CONF TALKS -->"},
	{Name: "other-talks", Begin: "<!-- BEGIN OTHER TALKS -->", End: "<!-- END OTHER TALKS -->"},
}

// TeXBlocks builds the four LaTeX region blocks. Publications go in
// numbered lists, talks in bulleted ones.
func TeXBlocks(pubs, talks render.Buckets) map[string]string {
	return map[string]string{
		"journals":    texList("enumerate", pubs[render.CategoryJournal]),
		"confs":       texList("enumerate", pubs[render.CategoryConference]),
		"conf-talks":  texList("itemize", talks[render.CategoryConference]),
		"other-talks": texList("itemize", talks[render.CategoryOther]),
	}
}

// HTMLBlocks builds the four web region blocks as <li> sequences.
func HTMLBlocks(pubs, talks render.Buckets) map[string]string {
	return map[string]string{
		"journals":    listItems(pubs[render.CategoryJournal]),
		"confs":       listItems(pubs[render.CategoryConference]),
		"conf-talks":  listItems(talks[render.CategoryConference]),
		"other-talks": listItems(talks[render.CategoryOther]),
	}
}

// UpdateTeX re-renders all four regions of a LaTeX document.
// On any error the original text must be kept; nothing is written back.
func UpdateTeX(text string, pubs, talks render.Buckets) (string, error) {
	return update(text, TeXRegions, TeXBlocks(pubs, talks))
}

// UpdateHTML re-renders all four regions of the web page.
func UpdateHTML(text string, pubs, talks render.Buckets) (string, error) {
	return update(text, HTMLRegions, HTMLBlocks(pubs, talks))
}

func update(text string, regions []Region, blocks map[string]string) (string, error) {
	for _, r := range regions {
		var err error
		text, err = splice.Replace(text, r.Begin, r.End, blocks[r.Name])
		if err != nil {
			return "", fmt.Errorf("region %s: %w", r.Name, err)
		}
	}
	return text, nil
}

// CheckMarkers returns the marker tokens missing from text, in region
// order. An end marker only counts when it follows its begin marker.
func CheckMarkers(text string, regions []Region) []string {
	var missing []string
	for _, r := range regions {
		i := strings.Index(text, r.Begin)
		if i < 0 {
			missing = append(missing, r.Begin)
			continue
		}
		if !strings.Contains(text[i+len(r.Begin):], r.End) {
			missing = append(missing, r.End)
		}
	}
	return missing
}

func texList(env string, items []string) string {
	return "\\begin{" + env + "}\n" + strings.Join(items, "\n") + "\n\\end{" + env + "}"
}

func listItems(items []string) string {
	wrapped := make([]string, len(items))
	for i, item := range items {
		wrapped[i] = "<li>" + item + "</li>"
	}
	return strings.Join(wrapped, "\n")
}
