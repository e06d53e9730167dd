// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strings"

	"github.com/08wparker/SciENV-biosketch-creator/internal/cite"
	"github.com/08wparker/SciENV-biosketch-creator/pkg/types"
)

// contributionHeadRe is the loose heading shape that can start a new
// contribution: an optional ordinal then a capital letter.
var contributionHeadRe = regexp.MustCompile(`^(\d+\.?\s+)?[A-Z]`)

// publishedWorkBoilerplate is the literal trailer line NIH templates append
// after the last contribution; it is never content.
const publishedWorkBoilerplate = "Complete List of Published Work"

// contribKind tags each section C line with the single classification that
// drives the state machine.
type contribKind int

const (
	contribBoilerplate contribKind = iota
	contribCitation
	contribHeading
	contribNarrative
)

// classifyContribution assigns a line its kind. The checks run in strict
// priority order:
//
//  1. boilerplate trailer (always skipped)
//  2. citation, which must precede heading detection since a numbered citation
//     also matches the loose heading shape
//  3. new-contribution heading: heading shape, longer than the minimum
//     heading length, and not a "Role:" continuation
//  4. narrative continuation (everything else)
func (p *Parser) classifyContribution(line string) contribKind {
	if strings.Contains(line, publishedWorkBoilerplate) {
		return contribBoilerplate
	}
	if cite.IsCitation(line) {
		return contribCitation
	}
	if contributionHeadRe.MatchString(line) &&
		len(line) > p.minHeadingLength &&
		!strings.HasPrefix(line, "Role:") {
		return contribHeading
	}
	return contribNarrative
}

// parseContributions splits section C into discrete contribution entries.
// A heading line flushes the contribution in progress; citation lines
// attach to the current entry's citation buffer; everything else extends
// the current narrative.
func (p *Parser) parseContributions(lines []string) []types.Contribution {
	var contributions []types.Contribution
	var narrative []string
	var citations []types.Citation

	flush := func() {
		if len(narrative) == 0 && len(citations) == 0 {
			return
		}
		contributions = append(contributions, types.Contribution{
			Narrative: strings.Join(narrative, " "),
			Citations: citations,
		})
		narrative = nil
		citations = nil
	}

	for _, line := range lines {
		switch p.classifyContribution(line) {
		case contribBoilerplate:
			continue
		case contribCitation:
			citations = append(citations, cite.Parse(line))
		case contribHeading:
			flush()
			narrative = append(narrative, line)
		default:
			narrative = append(narrative, line)
		}
	}
	flush()

	return contributions
}
