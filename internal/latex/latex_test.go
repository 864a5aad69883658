package latex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPDFPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"CV.tex", "CV.pdf"},
		{"docs/CV-Full.tex", "docs/CV-Full.pdf"},
		{"plain", "plain.pdf"},
	}
	for _, tt := range tests {
		if got := PDFPath(tt.in); got != tt.want {
			t.Errorf("PDFPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCompile_MissingEngine(t *testing.T) {
	err := Compile("definitely-not-a-latex-engine", "CV.tex", 2)
	if err == nil {
		t.Fatal("Compile() should fail when the engine is missing")
	}
	if !strings.Contains(err.Error(), "pass 1") {
		t.Errorf("error should name the failing pass: %v", err)
	}
}

func TestVerifyPDF_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CV.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := VerifyPDF(path); err == nil {
		t.Fatal("VerifyPDF() should fail on a non-PDF file")
	}
}

func TestVerifyPDF_MissingFile(t *testing.T) {
	if _, err := VerifyPDF(filepath.Join(t.TempDir(), "absent.pdf")); err == nil {
		t.Fatal("VerifyPDF() should fail when the file does not exist")
	}
}

func TestTail(t *testing.T) {
	if got := tail("a\nb\nc\nd\n", 2); got != "c\nd" {
		t.Errorf("tail() = %q, want %q", got, "c\nd")
	}
	if got := tail("one line", 5); got != "one line" {
		t.Errorf("tail() = %q", got)
	}
}
