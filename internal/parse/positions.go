// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strings"

	"github.com/08wparker/SciENV-biosketch-creator/pkg/types"
)

// Section B patterns.
var (
	// honorsHeaderRe switches the parser into honors mode for the rest of
	// the section.
	honorsHeaderRe = regexp.MustCompile(`(?i)^Honors?\s*$`)

	// positionsHeaderRe matches the positions sub-header, a pure label.
	positionsHeaderRe = regexp.MustCompile(`(?i)^Positions?\s*(and\s*Scientific\s*Appointments?)?\s*$`)

	// positionRe matches a dated position entry:
	// "2021-Present   Assistant Professor of Medicine, University of Chicago".
	// Hyphen and en dash are both accepted as the range separator.
	positionRe = regexp.MustCompile(`(?i)^(\d{4}[-–]\d{4}|\d{4}[-–]Present)\s+(.+)$`)

	// honorRe matches a dated honor entry: "2020   Young Physician-Scientist Award".
	honorRe = regexp.MustCompile(`^(\d{4})\s+(.+)$`)
)

// bMode names the states of the section B parser.
type bMode int

const (
	bPositions bMode = iota
	bHonors
)

// parsePositionsHonors walks section B, starting in positions mode and
// switching permanently to honors mode at the Honors sub-header. Lines that
// match no entry pattern carry no reliable structure (continuation text,
// unusual dashes) and are dropped from the structured output; the drop is
// recorded in Diagnostics.
func (p *Parser) parsePositionsHonors(lines []string) ([]types.Position, []types.Honor) {
	mode := bPositions

	var positions []types.Position
	var honors []types.Honor

	for _, line := range lines {
		if honorsHeaderRe.MatchString(line) {
			mode = bHonors
			continue
		}
		if positionsHeaderRe.MatchString(line) {
			continue
		}

		switch mode {
		case bHonors:
			p.diag.Honors.Seen++
			if h, ok := parseHonorLine(line); ok {
				honors = append(honors, h)
				p.diag.Honors.Structured++
			}
		default:
			p.diag.Positions.Seen++
			if pos, ok := parsePositionLine(line); ok {
				positions = append(positions, pos)
				p.diag.Positions.Structured++
			}
		}
	}

	return positions, honors
}

// parsePositionLine parses one dated position entry. The remainder after
// the date range splits on commas: with two or more parts the last is the
// institution and the rest rejoin as the title; otherwise the whole
// remainder is the title. A range ending in "Present" marks the current
// appointment.
func parsePositionLine(line string) (types.Position, bool) {
	m := positionRe.FindStringSubmatch(line)
	if m == nil {
		return types.Position{}, false
	}

	dates := m[1]
	rest := strings.TrimSpace(m[2])

	var title, institution string
	parts := strings.Split(rest, ",")
	if len(parts) >= 2 {
		institution = strings.TrimSpace(parts[len(parts)-1])
		title = strings.TrimSpace(strings.Join(parts[:len(parts)-1], ","))
	} else {
		title = rest
	}

	return types.Position{
		Dates:       dates,
		Title:       title,
		Institution: institution,
		Primary:     strings.HasSuffix(strings.ToLower(dates), "present"),
	}, true
}

// parseHonorLine parses one dated honor entry. When the description carries
// a trailing comma-separated segment, that segment is the awarding
// organization ("Young Physician-Scientist Award, American Society for
// Clinical Investigation").
func parseHonorLine(line string) (types.Honor, bool) {
	m := honorRe.FindStringSubmatch(line)
	if m == nil {
		return types.Honor{}, false
	}

	description := strings.TrimSpace(m[2])
	var organization string
	if i := strings.LastIndex(description, ","); i >= 0 {
		organization = strings.TrimSpace(description[i+1:])
		description = strings.TrimSpace(description[:i])
	}

	return types.Honor{
		Year:         m[1],
		Description:  description,
		Organization: organization,
	}, true
}
