// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strings"

	"github.com/08wparker/SciENV-biosketch-creator/internal/cite"
	"github.com/08wparker/SciENV-biosketch-creator/pkg/types"
)

// Sub-header patterns inside section A.
var (
	researchSupportRe = regexp.MustCompile(`(?i)^Current\s*(and\s*recently\s*completed\s*)?research\s*support`)
	citationsHeaderRe = regexp.MustCompile(`(?i)^Citations?:?\s*$`)
)

// stmtMode names the states of the section A line classifier.
type stmtMode int

const (
	stmtNarrative stmtMode = iota
	stmtGrants
	stmtCitations
)

// parseStatement walks section A with a three-mode classifier. Sub-header
// lines switch mode and are consumed. Narrative lines join into the
// statement text; grant lines are buffered for the grant recognizer;
// citation lines parse individually. A research-support header after the
// citations block re-enters grants mode, matching documents that
// interleave the two.
func (p *Parser) parseStatement(lines []string) *types.PersonalStatement {
	mode := stmtNarrative

	var narrative []string
	var grantLines []string
	var citations []types.Citation

	for _, line := range lines {
		switch {
		case researchSupportRe.MatchString(line):
			mode = stmtGrants
			continue
		case citationsHeaderRe.MatchString(line):
			mode = stmtCitations
			continue
		}

		switch mode {
		case stmtCitations:
			citations = append(citations, cite.Parse(line))
		case stmtGrants:
			grantLines = append(grantLines, line)
		default:
			narrative = append(narrative, line)
		}
	}

	grants := p.grants.ParseBlock(grantLines)
	p.diag.Grants.Seen += len(grantLines)
	p.diag.Grants.Structured += len(grants)

	return &types.PersonalStatement{
		Text:      strings.Join(narrative, " "),
		Grants:    grants,
		Citations: citations,
	}
}
