// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strings"
)

// Section header patterns. Anchored at line start, case-insensitive,
// tolerant of whitespace variation.
var (
	sectionARe = regexp.MustCompile(`(?i)^A\.\s*Personal\s*Statement`)
	sectionBRe = regexp.MustCompile(`(?i)^B\.\s*Positions`)
	sectionCRe = regexp.MustCompile(`(?i)^C\.\s*Contributions?\s*to\s*Science`)
)

// sectionID names the segmenter states.
type sectionID int

const (
	sectionNone sectionID = iota
	sectionA
	sectionB
	sectionC
)

// sections holds the accumulated non-blank lines of each top-level section.
// The has* flags distinguish a section whose header was seen (possibly with
// no content) from one missing entirely.
type sections struct {
	a, b, c          []string
	hasA, hasB, hasC bool
}

// segment partitions the paragraph stream into sections A, B, and C. On
// each header match the accumulator flushes to the previously active
// section and the new section becomes active. Lines before any header are
// discarded; a missing header simply leaves that section empty.
func segment(paragraphs []string) sections {
	var result sections
	active := sectionNone
	var accum []string

	flush := func() {
		switch active {
		case sectionA:
			result.a = accum
		case sectionB:
			result.b = accum
		case sectionC:
			result.c = accum
		}
		accum = nil
	}

	for _, text := range paragraphs {
		text = strings.TrimSpace(text)

		var next sectionID
		switch {
		case sectionARe.MatchString(text):
			next = sectionA
			result.hasA = true
		case sectionBRe.MatchString(text):
			next = sectionB
			result.hasB = true
		case sectionCRe.MatchString(text):
			next = sectionC
			result.hasC = true
		default:
			if active != sectionNone && text != "" {
				accum = append(accum, text)
			}
			continue
		}

		flush()
		active = next
	}
	flush()

	return result
}
