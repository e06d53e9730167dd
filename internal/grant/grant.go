// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package grant parses "research support" blocks into structured grant
// records. A line that opens with a recognized funder token starts a new
// grant; "Role:" lines set the role on the grant in progress; everything
// else accumulates into the title. Header lines are tried against a single
// combined pattern first, then a piecewise fallback, so a recognized-funder
// line is never silently dropped.
package grant

import (
	"regexp"
	"strings"

	"github.com/08wparker/SciENV-biosketch-creator/pkg/types"
)

// defaultFunders is the built-in set of tokens that open a grant header
// line. Matching is by prefix with a token boundary, so "NIH/NHLBI ..."
// matches on "NIH".
var defaultFunders = []string{
	"NIH",
	"NHLBI",
	"NIDDK",
	"NIAID",
	"NCI",
	"NIA",
	"NLM",
	"NIGMS",
	"NICHD",
	"NIMH",
	"AHRQ",
	"NSF",
	"PCORI",
	"CDC",
	"HRSA",
	"VA",
	"DOD",
	"DoD",
	"AHA",
	"ACS",
	"HHMI",
	"Greenwall Foundation",
	"Doris Duke Charitable Foundation",
	"Burroughs Wellcome Fund",
	"Robert Wood Johnson Foundation",
}

// dateRangePat matches a grant date range: month/day/year, month/year, or
// bare year on each side, with "Present" allowed as the end.
const dateRangePat = `(?:\d{1,2}/)?(?:\d{1,2}/)?\d{4}\s*[-–]\s*(?:(?:\d{1,2}/)?(?:\d{1,2}/)?\d{4}|[Pp]resent)`

var (
	// combinedRe captures funder, award number, PI name, parenthesized
	// role, and date range from a well-formed header line in one pass,
	// e.g. "NIH/NHLBI K08 HL150291, Parker (PI), 02/01/2020 - 01/31/2025".
	combinedRe = regexp.MustCompile(
		`^(\S+)\s+([A-Z0-9][A-Za-z0-9 \-]*?)[,;]?\s+([A-Za-z][A-Za-z .'\-]*?)\s*\(([^)]+)\)[,;]?\s+(` + dateRangePat + `)\s*$`)

	// dateRangeRe finds a date-range substring anywhere in a line, for the
	// fallback path.
	dateRangeRe = regexp.MustCompile(dateRangePat)

	// piRoleRe finds a "Name (Role)" pair for the fallback path. The name
	// is optional so a bare "(Co-investigator)" still yields the role.
	piRoleRe = regexp.MustCompile(`(?:([A-Za-z][A-Za-z .'\-]*)\s*)?\(([^)]+)\)`)

	// roleLineRe matches a standalone role line like "Role: Co-investigator".
	roleLineRe = regexp.MustCompile(`^Role:\s*(.+)$`)
)

// Recognizer parses research-support lines using a configurable funder set.
type Recognizer struct {
	funders []string
}

// NewRecognizer returns a Recognizer accepting the built-in funder tokens
// plus any extras.
func NewRecognizer(extra ...string) *Recognizer {
	funders := make([]string, 0, len(defaultFunders)+len(extra))
	funders = append(funders, defaultFunders...)
	funders = append(funders, extra...)
	return &Recognizer{funders: funders}
}

// ParseBlock runs the line state machine over a research-support block and
// returns the grants found, in document order. Lines before the first
// funder line (including stray "Role:" lines) have nothing to attach to
// and are dropped.
func (r *Recognizer) ParseBlock(lines []string) []types.Grant {
	var grants []types.Grant
	var current *types.Grant

	flush := func() {
		if current == nil {
			return
		}
		if current.Role == "" {
			current.Role = "PI"
		}
		grants = append(grants, *current)
		current = nil
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case r.startsWithFunder(line):
			flush()
			g := r.parseHeader(line)
			current = &g

		case roleLineRe.MatchString(line):
			if current != nil {
				current.Role = strings.TrimSpace(roleLineRe.FindStringSubmatch(line)[1])
			}

		default:
			if current != nil {
				if current.Title != "" {
					current.Title += " "
				}
				current.Title += line
			}
		}
	}
	flush()

	return grants
}

// startsWithFunder reports whether the line opens with a recognized funder
// token followed by a token boundary.
func (r *Recognizer) startsWithFunder(line string) bool {
	for _, f := range r.funders {
		if !strings.HasPrefix(line, f) {
			continue
		}
		rest := line[len(f):]
		if rest == "" || strings.ContainsRune(" \t/,:;-–", rune(rest[0])) {
			return true
		}
	}
	return false
}

// parseHeader extracts grant fields from a funder header line. The combined
// pattern handles the common well-formed shape; anything else goes through
// the piecewise fallback so the line still yields a grant.
func (r *Recognizer) parseHeader(line string) types.Grant {
	if m := combinedRe.FindStringSubmatch(line); m != nil {
		return types.Grant{
			Funder: m[1],
			Number: strings.TrimSpace(m[2]),
			PI:     strings.TrimSpace(m[3]),
			Role:   strings.TrimSpace(m[4]),
			Dates:  strings.TrimSpace(m[5]),
		}
	}
	return r.parseHeaderFallback(line)
}

// parseHeaderFallback recovers what it can from a header line that the
// combined pattern rejected: the last date-range substring, then the
// "PI (role)" pair, then funder and number from the remainder by
// first-whitespace split.
func (r *Recognizer) parseHeaderFallback(line string) types.Grant {
	var g types.Grant
	rest := line

	if locs := dateRangeRe.FindAllStringIndex(rest, -1); len(locs) > 0 {
		last := locs[len(locs)-1]
		g.Dates = strings.TrimSpace(rest[last[0]:last[1]])
		rest = rest[:last[0]] + rest[last[1]:]
	}

	if m := piRoleRe.FindStringSubmatch(rest); m != nil {
		g.PI = strings.TrimSpace(m[1])
		g.Role = strings.TrimSpace(m[2])
		rest = strings.Replace(rest, m[0], "", 1)
	}

	rest = strings.Trim(rest, " \t,;–-")
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		g.Funder = rest[:i]
		g.Number = strings.Trim(rest[i+1:], " \t,;")
	} else {
		g.Funder = rest
	}

	return g
}
