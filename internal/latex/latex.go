// Package latex runs the external typesetting compiler over CV documents
// and sanity-checks the PDFs it produces.
package latex

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Report summarizes one document's compile run.
type Report struct {
	Document string `json:"document"`
	PDF      string `json:"pdf"`
	Pages    int    `json:"pages"`
	Passes   int    `json:"passes"`
}

// Compile runs the engine over texPath the given number of passes.
// Cross-references settle on the second pass, so passes is usually 2.
// The engine runs in the document's directory so aux files land there.
func Compile(engine, texPath string, passes int) error {
	dir := filepath.Dir(texPath)
	name := filepath.Base(texPath)

	for i := 1; i <= passes; i++ {
		cmd := exec.Command(engine, "-interaction=nonstopmode", name)
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		if err != nil {
			return fmt.Errorf("%s pass %d on %s: %w\n%s", engine, i, name, err, tail(string(out), 15))
		}
	}
	return nil
}

// PDFPath returns the output PDF path for a .tex document.
func PDFPath(texPath string) string {
	return strings.TrimSuffix(texPath, filepath.Ext(texPath)) + ".pdf"
}

// VerifyPDF opens a produced PDF and returns its page count.
// A PDF that cannot be opened or has no pages is a failed compile even if
// the engine exited zero.
func VerifyPDF(path string) (int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	n := r.NumPage()
	if n < 1 {
		return 0, fmt.Errorf("%s contains no pages", path)
	}
	return n, nil
}

// tail returns the last n lines of s, for compiler error context.
func tail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
