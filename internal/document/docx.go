// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// documentXMLPath is the main document part inside a .docx archive.
const documentXMLPath = "word/document.xml"

// openDocx reads a Word document. A .docx file is a ZIP archive whose
// word/document.xml part holds the body as a sequence of w:p (paragraph)
// and w:tbl (table) elements; walking the body children preserves the
// interleaved document order of both streams.
func openDocx(path string) (*Document, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening docx %s: %w", path, err)
	}
	defer archive.Close()

	var part *zip.File
	for _, f := range archive.File {
		if f.Name == documentXMLPath {
			part = f
			break
		}
	}
	if part == nil {
		return nil, fmt.Errorf("docx %s: missing %s", path, documentXMLPath)
	}

	rc, err := part.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", documentXMLPath, err)
	}
	defer rc.Close()

	doc, err := decodeDocumentXML(rc)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", documentXMLPath, err)
	}
	return doc, nil
}

// decodeDocumentXML streams the document XML, collecting body-level
// paragraphs and tables. Table-cell paragraphs are consumed by the table
// decoder and never reach the paragraph stream.
func decodeDocumentXML(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	doc := &Document{}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "p":
			text, err := decodeParagraph(dec, start)
			if err != nil {
				return nil, err
			}
			doc.Paragraphs = append(doc.Paragraphs, text)
		case "tbl":
			table, err := decodeTable(dec, start)
			if err != nil {
				return nil, err
			}
			doc.Tables = append(doc.Tables, table)
		}
	}

	return doc, nil
}

// decodeParagraph collects the w:t text runs of one w:p element. Tabs and
// line breaks become single spaces so downstream regexes see ordinary
// whitespace; character data outside w:t (formatting markup) is ignored.
func decodeParagraph(dec *xml.Decoder, start xml.StartElement) (string, error) {
	var sb strings.Builder
	depth := 1
	inText := false

	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab", "br":
				sb.WriteByte(' ')
			}
		case xml.EndElement:
			depth--
			if t.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}

	return strings.TrimSpace(sb.String()), nil
}

// decodeTable collects one w:tbl element into rows of cell text. Each cell's
// paragraphs are joined with single spaces.
func decodeTable(dec *xml.Decoder, start xml.StartElement) (Table, error) {
	var table Table
	var row []string
	var cell []string
	var para strings.Builder
	inCell := false
	inText := false
	depth := 1

	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "tr":
				row = nil
			case "tc":
				inCell = true
				cell = nil
			case "p":
				para.Reset()
			case "t":
				inText = true
			case "tab", "br":
				para.WriteByte(' ')
			}
		case xml.EndElement:
			depth--
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if inCell {
					cell = append(cell, strings.TrimSpace(para.String()))
				}
			case "tc":
				inCell = false
				row = append(row, strings.TrimSpace(strings.Join(cell, " ")))
			case "tr":
				table = append(table, row)
			}
		case xml.CharData:
			if inCell && inText {
				para.Write(t)
			}
		}
	}

	return table, nil
}
