// Package pdftest builds small PDF documents for tests.
package pdftest

import (
	"bytes"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

// Build returns a PDF with one page per entry. An empty entry produces a blank page.
func Build(t testing.TB, pages ...string) []byte {
	t.Helper()

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetCompression(false)
	doc.SetFont("Helvetica", "", 12)
	for _, text := range pages {
		doc.AddPage()
		if text != "" {
			doc.Cell(0, 10, text)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("build pdf: %v", err)
	}
	return buf.Bytes()
}
