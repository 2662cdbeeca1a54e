// Package pdf renders markdown documents as PDF files.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

// Options control the page layout.
type Options struct {
	Orientation string
	PaperSize   string
	Dark        bool
}

func DefaultOptions() Options {
	return Options{
		Orientation: "P",
		PaperSize:   "A4",
	}
}

// Render writes markdown to pdfPath, creating its directory when missing.
func Render(markdown []byte, pdfPath string, opts Options) error {
	if err := os.MkdirAll(filepath.Dir(pdfPath), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(pdfPath), err)
	}

	theme := mdtopdf.LIGHT
	if opts.Dark {
		theme = mdtopdf.DARK
	}
	renderer := mdtopdf.NewPdfRenderer(opts.Orientation, opts.PaperSize, pdfPath, "", nil, theme)
	if err := renderer.Process(markdown); err != nil {
		return fmt.Errorf("renderer.Process() > %w", err)
	}
	return nil
}

// ConvertMarkdownFile renders a .md file next to itself and returns the absolute PDF path.
func ConvertMarkdownFile(markdownPath string, opts Options) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"
	if err := Render(content, pdfPath, opts); err != nil {
		return "", err
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}
