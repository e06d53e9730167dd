// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/08wparker/SciENV-biosketch-creator/internal/document"
	"github.com/08wparker/SciENV-biosketch-creator/pkg/types"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	return New(types.ParserConfig{})
}

// --- header extraction ---

func TestParseHeader(t *testing.T) {
	doc := &document.Document{Paragraphs: []string{
		"OMB No. 0925-0001",
		"",
		"NAME: William F Parker",
		"eRA COMMONS USER NAME (credential, e.g., agency login): WILLIAMFPARKER",
		"POSITION TITLE: Assistant Professor of Medicine",
	}}

	b := newTestParser(t).Parse(doc)

	if b.Name != "William F Parker" {
		t.Errorf("Name = %q", b.Name)
	}
	if b.ERACommonsUsername != "WILLIAMFPARKER" {
		t.Errorf("ERACommonsUsername = %q", b.ERACommonsUsername)
	}
	if b.PositionTitle != "Assistant Professor of Medicine" {
		t.Errorf("PositionTitle = %q", b.PositionTitle)
	}
}

func TestParseHeader_FirstMatchWins(t *testing.T) {
	doc := &document.Document{Paragraphs: []string{
		"NAME: First Name",
		"NAME: Second Name",
	}}

	b := newTestParser(t).Parse(doc)

	if b.Name != "First Name" {
		t.Errorf("Name = %q, want first match retained", b.Name)
	}
}

func TestParseHeader_CaseInsensitive(t *testing.T) {
	doc := &document.Document{Paragraphs: []string{
		"Name: Jane Doe",
		"position title: Professor",
	}}

	b := newTestParser(t).Parse(doc)

	if b.Name != "Jane Doe" || b.PositionTitle != "Professor" {
		t.Errorf("got Name=%q PositionTitle=%q", b.Name, b.PositionTitle)
	}
}

func TestParseHeader_BoundedPrefix(t *testing.T) {
	paragraphs := make([]string, 20)
	for i := range paragraphs {
		paragraphs[i] = "filler paragraph"
	}
	paragraphs[19] = "NAME: Too Late"

	b := newTestParser(t).Parse(&document.Document{Paragraphs: paragraphs})

	if b.Name != "" {
		t.Errorf("Name = %q, want empty: field appears past the scan limit", b.Name)
	}
}

// --- education table ---

func TestParseEducation_FourColumns(t *testing.T) {
	doc := &document.Document{Tables: []document.Table{{
		{"INSTITUTION AND LOCATION", "DEGREE", "Completion Date", "FIELD OF STUDY"},
		{"Princeton University", "BA", "06/2009", "Economics"},
		{"", "", "", ""},
		{"University of Chicago", "MD", "06/2013", "Medicine"},
	}}}

	got := newTestParser(t).Parse(doc).Education

	want := []types.Education{
		{Institution: "Princeton University", Degree: "BA", CompletionDate: "06/2009", FieldOfStudy: "Economics"},
		{Institution: "University of Chicago", Degree: "MD", CompletionDate: "06/2013", FieldOfStudy: "Medicine"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Education = %#v, want %#v", got, want)
	}
}

func TestParseEducation_FiveColumnsCarryStartDate(t *testing.T) {
	doc := &document.Document{Tables: []document.Table{{
		{"INSTITUTION AND LOCATION", "DEGREE", "Start Date", "Completion Date", "FIELD OF STUDY"},
		{"University of Chicago", "PhD", "09/2016", "06/2020", "Public Health Sciences"},
	}}}

	got := newTestParser(t).Parse(doc).Education

	want := []types.Education{{
		Institution:    "University of Chicago",
		Degree:         "PhD",
		StartDate:      "09/2016",
		CompletionDate: "06/2020",
		FieldOfStudy:   "Public Health Sciences",
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Education = %#v, want %#v", got, want)
	}
}

func TestParseEducation_ShortRows(t *testing.T) {
	doc := &document.Document{Tables: []document.Table{{
		{"INSTITUTION", "DEGREE"},
		{"MIT", "BS"},
	}}}

	got := newTestParser(t).Parse(doc).Education

	want := []types.Education{{Institution: "MIT", Degree: "BS"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Education = %#v, want %#v", got, want)
	}
}

func TestParseEducation_NoTables(t *testing.T) {
	if got := newTestParser(t).Parse(&document.Document{}).Education; len(got) != 0 {
		t.Errorf("Education = %#v, want empty", got)
	}
}

// --- whole-document behavior ---

func TestParse_EmptyDocument(t *testing.T) {
	b := newTestParser(t).Parse(&document.Document{})

	if b.Name != "" || b.ERACommonsUsername != "" || b.PositionTitle != "" {
		t.Errorf("header fields should be empty, got %+v", b)
	}
	if b.PersonalStatement != nil {
		t.Error("PersonalStatement should be nil for a document without section A")
	}
	if len(b.Education)+len(b.Positions)+len(b.Honors)+len(b.Contributions) != 0 {
		t.Errorf("list fields should be empty, got %+v", b)
	}
}

func TestParse_Deterministic(t *testing.T) {
	doc := &document.Document{
		Paragraphs: []string{
			"NAME: Jane Doe",
			"A. Personal Statement",
			"I am a researcher studying outcomes.",
			"B. Positions and Honors",
			"2015-2019 Fellow, Pulmonary and Critical Care Medicine, University of Chicago",
			"Honors",
			"2020 Young Physician-Scientist Award",
			"C. Contributions to Science",
			"Developed novel machine learning approaches to allocation.",
			"1. Smith AB, Jones CD. Paper. JAMA. 2020. PMID: 111",
		},
		Tables: []document.Table{{
			{"INSTITUTION", "DEGREE", "Completion Date", "FIELD"},
			{"MIT", "BS", "06/2010", "Biology"},
		}},
	}

	p := newTestParser(t)
	first := p.Parse(doc)
	second := p.Parse(doc)

	if !reflect.DeepEqual(first, second) {
		t.Error("parsing the same document twice produced different results")
	}
}

func TestParseFile_TextDocument(t *testing.T) {
	content := `NAME: Jane Doe
eRA COMMONS USER NAME: JDOE
POSITION TITLE: Professor

A. Personal Statement
I am a researcher studying critical care outcomes.

B. Positions and Honors
Positions and Scientific Appointments
2021-Present Assistant Professor of Medicine, University of Chicago
Honors
2020 Young Physician-Scientist Award, American Society for Clinical Investigation

C. Contributions to Science
Developed novel approaches to organ allocation in the United States.
1. Doe J, Smith AB. Allocation paper. JAMA. 2021. PMID: 333
`
	path := filepath.Join(t.TempDir(), "biosketch.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := newTestParser(t).ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if b.Name != "Jane Doe" || b.ERACommonsUsername != "JDOE" {
		t.Errorf("header = %q / %q", b.Name, b.ERACommonsUsername)
	}
	if b.PersonalStatement == nil || b.PersonalStatement.Text == "" {
		t.Fatal("expected a personal statement")
	}
	if len(b.Positions) != 1 || b.Positions[0].Institution != "University of Chicago" {
		t.Errorf("Positions = %+v", b.Positions)
	}
	if len(b.Honors) != 1 || b.Honors[0].Organization != "American Society for Clinical Investigation" {
		t.Errorf("Honors = %+v", b.Honors)
	}
	if len(b.Contributions) != 1 {
		t.Fatalf("Contributions = %+v", b.Contributions)
	}
	if len(b.Contributions[0].Citations) != 1 || b.Contributions[0].Citations[0].PMID != "333" {
		t.Errorf("contribution citations = %+v", b.Contributions[0].Citations)
	}
}

func TestParseFile_MissingFile(t *testing.T) {
	if _, err := newTestParser(t).ParseFile(filepath.Join(t.TempDir(), "absent.docx")); err == nil {
		t.Fatal("expected error for unreadable input")
	}
}
