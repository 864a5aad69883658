// Package config handles site configuration for the generator.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked for in the working directory.
const DefaultFile = "cvgen.yml"

// Config describes one site: the bibliography sources, the documents to
// update, and the formatting/compile options.
type Config struct {
	Publications string   `yaml:"publications,omitempty"` // publications .bib file
	Talks        string   `yaml:"talks,omitempty"`        // talks .bib file
	TeXDocuments []string `yaml:"tex_documents,omitempty"`
	HTMLDocument string   `yaml:"html_document,omitempty"`

	// HighlightAuthor is the substring marking the site owner's name in
	// author lists; matching names are rendered bold.
	HighlightAuthor string `yaml:"highlight_author,omitempty"`

	IndexDB string `yaml:"index_db,omitempty"` // SQLite entry index path

	LaTeX LaTeXConfig `yaml:"latex,omitempty"`
}

// LaTeXConfig configures the external typesetting run.
type LaTeXConfig struct {
	Engine string `yaml:"engine,omitempty"` // xelatex, pdflatex, lualatex
	Passes int    `yaml:"passes,omitempty"` // compile passes per document
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Publications: "Publications.bib",
		Talks:        "Talks.bib",
		TeXDocuments: []string{"CV.tex", "CV-Full.tex"},
		HTMLDocument: "index.html",
		IndexDB:      "entries.db",
		LaTeX: LaTeXConfig{
			Engine: "xelatex",
			Passes: 2,
		},
	}
}

// Load reads configuration from path, filling unset values with defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// applyEnv applies environment overrides. Values from a .env file loaded
// by the caller feed these too.
func applyEnv(cfg *Config) {
	if author := os.Getenv("CVGEN_AUTHOR"); author != "" {
		cfg.HighlightAuthor = author
	}
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	if c.Publications == "" {
		return fmt.Errorf("publications must name a .bib file")
	}
	if c.Talks == "" {
		return fmt.Errorf("talks must name a .bib file")
	}
	if c.HTMLDocument == "" && len(c.TeXDocuments) == 0 {
		return fmt.Errorf("at least one target document is required")
	}
	for i, doc := range c.TeXDocuments {
		if doc == "" {
			return fmt.Errorf("tex_documents entry %d is empty", i+1)
		}
	}
	if c.LaTeX.Passes < 1 {
		return fmt.Errorf("latex.passes must be at least 1, got %d", c.LaTeX.Passes)
	}
	return nil
}
