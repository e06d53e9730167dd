// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// openPDF reads a PDF biosketch. Text is extracted page by page and split
// into line-granular paragraphs. PDFs carry no recoverable table structure,
// so the table stream is empty and education extraction degrades to an
// empty list.
func openPDF(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf %s: %w", path, err)
	}
	defer f.Close()

	doc := &Document{}
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Best effort: a page that fails text extraction is skipped.
			continue
		}

		for _, line := range strings.Split(text, "\n") {
			doc.Paragraphs = append(doc.Paragraphs, strings.TrimSpace(line))
		}
	}

	return doc, nil
}
