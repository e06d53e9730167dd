// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cite recognizes bibliographic citations in free text and extracts
// standard identifiers (PMID, PMCID, DOI). Recognition is two-tier: an
// explicit identifier token always wins; otherwise a numbered or lettered
// list item counts only when its remainder starts with an author-name shape
// (capitalized surname followed by 1-2 capital initials). The second tier
// keeps ordinary numbered prose out of the citation list.
package cite

import (
	"regexp"
	"strings"

	"github.com/08wparker/SciENV-biosketch-creator/pkg/types"
)

var (
	// pmidRe matches an explicit PubMed identifier token like "PMID: 12345678".
	pmidRe = regexp.MustCompile(`(?i)PMID:\s*(\d+)`)

	// pmcidRe matches a PubMed Central identifier token like "PMCID: PMC7654321".
	pmcidRe = regexp.MustCompile(`(?i)PMCID:\s*(PMC\d+)`)

	// doiRe matches "doi: 10.xxxx/..." or a doi.org URL.
	doiRe = regexp.MustCompile(`(?i)(?:doi:\s*|https?://doi\.org/)(10\.\d{4,}/[^\s]+)`)

	// listMarkerRe matches a numbered or lettered list marker: "1. ", "a. ".
	listMarkerRe = regexp.MustCompile(`^(?:\d+\.|[a-z]\.)\s+`)

	// authorLeadRe matches an author-name shape at the start of text:
	// a capitalized surname followed by 1-2 capital initials.
	authorLeadRe = regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z]{1,2}[\s,.]`)
)

// IDs holds the identifiers found in a piece of text. A field is empty
// when no matching token was present.
type IDs struct {
	PMID  string
	PMCID string
	DOI   string
}

// ExtractIDs scans text for PMID, PMCID, and DOI tokens. It is independent
// of citation classification and works on anything from a single line to a
// full citation list (first match wins per identifier).
func ExtractIDs(text string) IDs {
	var ids IDs
	if m := pmidRe.FindStringSubmatch(text); m != nil {
		ids.PMID = m[1]
	}
	if m := pmcidRe.FindStringSubmatch(text); m != nil {
		ids.PMCID = m[1]
	}
	if m := doiRe.FindStringSubmatch(text); m != nil {
		// DOIs at sentence end drag punctuation along with the suffix.
		ids.DOI = strings.TrimRight(m[1], ".,;)")
	}
	return ids
}

// Parse converts one citation line into a Citation record. The raw text is
// always retained; identifiers are set only when found.
func Parse(line string) types.Citation {
	line = strings.TrimSpace(line)
	ids := ExtractIDs(line)
	return types.Citation{
		Text:  line,
		PMID:  ids.PMID,
		PMCID: ids.PMCID,
		DOI:   ids.DOI,
	}
}

// IsCitation reports whether a line appears to be a bibliographic citation.
func IsCitation(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	if pmidRe.MatchString(line) || pmcidRe.MatchString(line) || doiRe.MatchString(line) {
		return true
	}

	// Numbered/lettered list item whose remainder looks like author names.
	if loc := listMarkerRe.FindStringIndex(line); loc != nil {
		return authorLeadRe.MatchString(line[loc[1]:])
	}

	return false
}

// SplitBlock splits a block of text into individual citations. Consecutive
// non-blank lines belong to one citation until a new list marker starts the
// next; blank lines are hard separators.
func SplitBlock(text string) []types.Citation {
	var citations []types.Citation
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		joined := strings.TrimSpace(strings.Join(current, " "))
		if joined != "" {
			citations = append(citations, Parse(joined))
		}
		current = nil
	}

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		if listMarkerRe.MatchString(line) {
			flush()
		}
		current = append(current, line)
	}
	flush()

	return citations
}
