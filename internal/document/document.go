// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document reads biosketch source files into an ordered paragraph
// stream and an ordered table stream. Word documents carry both streams;
// PDF and plain-text inputs yield paragraphs only, and downstream table
// extraction degrades to an empty result.
package document

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Table is one tabular structure: rows of cell text, in document order.
type Table [][]string

// Document is the parsed source file.
type Document struct {
	// Paragraphs holds every paragraph's text in document order,
	// including empty paragraphs.
	Paragraphs []string

	// Tables holds every table in document order.
	Tables []Table
}

// Format identifies a supported source file type.
type Format string

const (
	FormatDocx Format = "docx"
	FormatPDF  Format = "pdf"
	FormatText Format = "txt"
)

// Detect returns the document format for a path based on its extension.
func Detect(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return FormatDocx, nil
	case ".pdf":
		return FormatPDF, nil
	case ".txt", ".text":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported document type %q (expected .docx, .pdf, or .txt)", filepath.Ext(path))
	}
}

// Open reads the file at path into a Document, dispatching on the detected
// format. An unreadable or unrecognized file is an error; structural gaps
// (no tables, no sections) are not.
func Open(path string) (*Document, error) {
	format, err := Detect(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatDocx:
		return openDocx(path)
	case FormatPDF:
		return openPDF(path)
	default:
		return openText(path)
	}
}
