// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"os"
	"strings"
)

// openText reads a plain-text biosketch, one paragraph per line. Plain text
// carries no table structure.
func openText(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")

	doc := &Document{}
	for _, line := range strings.Split(content, "\n") {
		doc.Paragraphs = append(doc.Paragraphs, strings.TrimSpace(line))
	}

	return doc, nil
}
