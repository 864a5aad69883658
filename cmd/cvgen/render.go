package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benali/cvgen/internal/docgen"
)

var (
	renderSurface string
	renderRegion  string
)

func init() {
	renderCmd.Flags().StringVar(&renderSurface, "surface", "tex", "Output surface: tex or html")
	renderCmd.Flags().StringVar(&renderRegion, "region", "", "Single region: journals, confs, conf-talks, or other-talks")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print generated region blocks without touching any document",
	Long: `Render the bibliography and print the generated blocks to stdout,
for inspection or manual pasting.

Examples:
  cvgen render --surface html
  cvgen render --surface tex --region journals`,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderSurface != "tex" && renderSurface != "html" {
		exitWithError(ExitError, "invalid surface %q (want tex or html)", renderSurface)
	}

	cfg, err := loadSiteConfig()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	pubs, talks, err := loadBibliographies(cfg)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	set := renderAll(cfg, pubs, talks)

	var blocks map[string]string
	if renderSurface == "tex" {
		blocks = docgen.TeXBlocks(set.pubTeX, set.talkTeX)
	} else {
		blocks = docgen.HTMLBlocks(set.pubHTML, set.talkHTML)
	}

	if renderRegion != "" {
		block, ok := blocks[renderRegion]
		if !ok {
			exitWithError(ExitError, "unknown region %q (want one of %v)", renderRegion, docgen.RegionNames)
		}
		fmt.Println(block)
		return nil
	}

	for _, name := range docgen.RegionNames {
		fmt.Printf("== %s ==\n%s\n", name, blocks[name])
	}
	return nil
}
