// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse recovers structured biosketch records from a loosely
// formatted NIH Biographical Sketch document. The document has no schema,
// so recovery is layered: header fields from a bounded prefix, education
// from the first table, and the A/B/C narrative sections segmented by
// header lines and handed to per-section state machines.
//
// Only unreadable input is an error. Missing structure (no table, no
// section headers) yields empty output fields, and line shapes that match
// no pattern are dropped from the structured result; the Diagnostics
// counters record how much of each section was structured.
package parse

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/08wparker/SciENV-biosketch-creator/internal/document"
	"github.com/08wparker/SciENV-biosketch-creator/internal/grant"
	"github.com/08wparker/SciENV-biosketch-creator/pkg/types"
)

// Header field patterns. Each is tried against every scanned line until it
// matches once; first match wins so a later unrelated line cannot overwrite
// a correctly extracted field.
var (
	nameRe          = regexp.MustCompile(`(?i)^NAME:\s*(.+)$`)
	eraCommonsRe    = regexp.MustCompile(`(?i)^eRA\s*COMMONS\s*USER\s*NAME[^:]*:\s*(.+)$`)
	positionTitleRe = regexp.MustCompile(`(?i)^POSITION\s*TITLE:\s*(.+)$`)
)

// Defaults for ParserConfig fields left zero.
const (
	defaultHeaderScanLimit  = 15
	defaultMinHeadingLength = 20
)

// LineStats counts lines seen against lines that produced a structured
// record, for one section of the document.
type LineStats struct {
	Seen       int
	Structured int
}

// Dropped returns the number of lines that matched no pattern.
func (s LineStats) Dropped() int {
	return s.Seen - s.Structured
}

// Diagnostics reports per-section parse coverage. The default structured
// output is unchanged by dropped lines; these counters exist so callers
// can surface how lossy a parse was.
type Diagnostics struct {
	Positions LineStats
	Honors    LineStats
	Grants    LineStats
}

// Parser turns documents into Biosketch records. A Parser is cheap to
// create and safe to reuse sequentially; concurrent parses should each use
// their own Parser because diagnostics accumulate on the instance.
type Parser struct {
	headerScanLimit  int
	minHeadingLength int
	grants           *grant.Recognizer

	diag Diagnostics
}

// New returns a Parser with cfg's knobs, applying defaults for zero fields.
func New(cfg types.ParserConfig) *Parser {
	headerScanLimit := cfg.HeaderScanLimit
	if headerScanLimit <= 0 {
		headerScanLimit = defaultHeaderScanLimit
	}
	minHeadingLength := cfg.MinHeadingLength
	if minHeadingLength <= 0 {
		minHeadingLength = defaultMinHeadingLength
	}

	return &Parser{
		headerScanLimit:  headerScanLimit,
		minHeadingLength: minHeadingLength,
		grants:           grant.NewRecognizer(cfg.ExtraFunders...),
	}
}

// ParseFile opens the document at path and parses it. Only an unreadable
// or unrecognized file returns an error.
func (p *Parser) ParseFile(path string) (*types.Biosketch, error) {
	doc, err := document.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading biosketch: %w", err)
	}
	return p.Parse(doc), nil
}

// Parse extracts one Biosketch from an opened document. Parsing is
// deterministic: the same document always yields the same record.
func (p *Parser) Parse(doc *document.Document) *types.Biosketch {
	p.diag = Diagnostics{}

	b := &types.Biosketch{}
	p.parseHeader(doc.Paragraphs, b)
	b.Education = p.parseEducation(doc.Tables)

	secs := segment(doc.Paragraphs)
	if secs.hasA {
		b.PersonalStatement = p.parseStatement(secs.a)
	}
	if secs.hasB {
		b.Positions, b.Honors = p.parsePositionsHonors(secs.b)
	}
	if secs.hasC {
		b.Contributions = p.parseContributions(secs.c)
	}

	return b
}

// Diagnostics returns the coverage counters from the most recent Parse.
func (p *Parser) Diagnostics() Diagnostics {
	return p.diag
}

// parseHeader scans the bounded document prefix for the three labeled
// identity fields. Order of appearance does not matter.
func (p *Parser) parseHeader(paragraphs []string, b *types.Biosketch) {
	limit := p.headerScanLimit
	if limit > len(paragraphs) {
		limit = len(paragraphs)
	}

	for _, text := range paragraphs[:limit] {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		if b.Name == "" {
			if m := nameRe.FindStringSubmatch(text); m != nil {
				b.Name = strings.TrimSpace(m[1])
				continue
			}
		}
		if b.ERACommonsUsername == "" {
			if m := eraCommonsRe.FindStringSubmatch(text); m != nil {
				b.ERACommonsUsername = strings.TrimSpace(m[1])
				continue
			}
		}
		if b.PositionTitle == "" {
			if m := positionTitleRe.FindStringSubmatch(text); m != nil {
				b.PositionTitle = strings.TrimSpace(m[1])
			}
		}
	}
}

// parseEducation reads the first table into education records. The header
// row is skipped; rows with an empty institution cell are decorative and
// skipped too. Columns map positionally: a 4-column table is institution,
// degree, completion date, field of study; a 5-column table carries the
// start date in column 2 (newer NIH tables).
func (p *Parser) parseEducation(tables []document.Table) []types.Education {
	if len(tables) == 0 {
		return nil
	}

	table := tables[0]
	if len(table) < 2 {
		return nil
	}

	var education []types.Education
	for _, row := range table[1:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		edu := types.Education{Institution: strings.TrimSpace(row[0])}
		cell := func(i int) string {
			if i < len(row) {
				return strings.TrimSpace(row[i])
			}
			return ""
		}

		if len(row) >= 5 {
			edu.Degree = cell(1)
			edu.StartDate = cell(2)
			edu.CompletionDate = cell(3)
			edu.FieldOfStudy = cell(4)
		} else {
			edu.Degree = cell(1)
			edu.CompletionDate = cell(2)
			edu.FieldOfStudy = cell(3)
		}

		education = append(education, edu)
	}

	return education
}
