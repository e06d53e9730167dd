// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"testing"

	"github.com/08wparker/SciENV-biosketch-creator/pkg/types"
)

func TestParsePositionLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want types.Position
		ok   bool
	}{
		{
			name: "title and institution",
			line: "2021-Present   Assistant Professor of Medicine, University of Chicago",
			want: types.Position{
				Dates:       "2021-Present",
				Title:       "Assistant Professor of Medicine",
				Institution: "University of Chicago",
				Primary:     true,
			},
			ok: true,
		},
		{
			name: "title with internal comma",
			line: "2015-2019      Fellow, Pulmonary and Critical Care Medicine, University of Chicago",
			want: types.Position{
				Dates:       "2015-2019",
				Title:       "Fellow, Pulmonary and Critical Care Medicine",
				Institution: "University of Chicago",
			},
			ok: true,
		},
		{
			name: "no institution",
			line: "2013-2015 Resident Physician",
			want: types.Position{Dates: "2013-2015", Title: "Resident Physician"},
			ok:   true,
		},
		{
			name: "en dash range",
			line: "2019–2021 Instructor of Medicine, University of Chicago",
			want: types.Position{
				Dates:       "2019–2021",
				Title:       "Instructor of Medicine",
				Institution: "University of Chicago",
			},
			ok: true,
		},
		{
			name: "lowercase present",
			line: "2021-present Clinical Director, MICU",
			want: types.Position{
				Dates:       "2021-present",
				Title:       "Clinical Director",
				Institution: "MICU",
				Primary:     true,
			},
			ok: true,
		},
		{name: "continuation text", line: "with a joint appointment in Public Health Sciences", ok: false},
		{name: "single year", line: "2020 Visiting Scholar, Oxford", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parsePositionLine(tt.line)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("position = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseHonorLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want types.Honor
		ok   bool
	}{
		{
			name: "description only",
			line: "2020   Young Physician-Scientist Award",
			want: types.Honor{Year: "2020", Description: "Young Physician-Scientist Award"},
			ok:   true,
		},
		{
			name: "trailing organization",
			line: "2018 Ziskind Clinical Research Scholar Award, American Thoracic Society",
			want: types.Honor{
				Year:         "2018",
				Description:  "Ziskind Clinical Research Scholar Award",
				Organization: "American Thoracic Society",
			},
			ok: true,
		},
		{name: "no leading year", line: "Young Physician-Scientist Award", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseHonorLine(tt.line)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("honor = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParsePositionsHonors_ModeSwitch(t *testing.T) {
	p := newTestParser(t)
	positions, honors := p.parsePositionsHonors([]string{
		"Positions and Scientific Appointments",
		"2015-2019 Fellow, University of Chicago",
		"2021-Present Assistant Professor of Medicine, University of Chicago",
		"Honors",
		"2020 Young Physician-Scientist Award",
		"2018 Ziskind Clinical Research Scholar Award, American Thoracic Society",
	})

	if len(positions) != 2 {
		t.Fatalf("positions = %+v, want 2", positions)
	}
	if len(honors) != 2 {
		t.Fatalf("honors = %+v, want 2", honors)
	}

	// The Honors switch is permanent: a dated position line after the
	// sub-header parses as an honor, not a position.
	if honors[0].Year != "2020" {
		t.Errorf("honors[0] = %+v", honors[0])
	}
}

func TestParsePositionsHonors_DroppedLinesCounted(t *testing.T) {
	p := newTestParser(t)
	positions, _ := p.parsePositionsHonors([]string{
		"2021-Present Assistant Professor, University of Chicago",
		"continuation line without a date range",
	})

	if len(positions) != 1 {
		t.Fatalf("positions = %+v", positions)
	}

	diag := p.Diagnostics()
	if diag.Positions.Seen != 2 || diag.Positions.Structured != 1 {
		t.Errorf("Positions stats = %+v", diag.Positions)
	}
	if diag.Positions.Dropped() != 1 {
		t.Errorf("Dropped() = %d, want 1", diag.Positions.Dropped())
	}
}
