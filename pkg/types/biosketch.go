// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the structured records produced by biosketch parsing.
// All types are plain values with json and yaml tags; they carry no behavior
// beyond serialization, so callers (CLI, web handlers, form fillers) can
// transport them without importing the parser.
package types

import "encoding/json"

// Citation is a single bibliographic reference. At minimum Text is set;
// identifier fields are populated only when a matching token was found
// in the source line.
type Citation struct {
	// Text is the full citation line as it appeared in the document.
	Text string `json:"text" yaml:"text"`

	// PMID is the PubMed identifier (digits only), if present.
	PMID string `json:"pmid,omitempty" yaml:"pmid,omitempty"`

	// PMCID is the PubMed Central identifier ("PMC" + digits), if present.
	PMCID string `json:"pmcid,omitempty" yaml:"pmcid,omitempty"`

	// DOI is the Digital Object Identifier ("10." + registrant/suffix), if present.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`
}

// Education is one row of the education/training table. Fields are free-form
// strings exactly as they appear in the table; source formatting varies too
// much to normalize safely.
type Education struct {
	Institution    string `json:"institution" yaml:"institution"`
	Degree         string `json:"degree" yaml:"degree"`
	StartDate      string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	CompletionDate string `json:"completion_date" yaml:"completion_date"`
	FieldOfStudy   string `json:"field_of_study" yaml:"field_of_study"`
	Location       string `json:"location,omitempty" yaml:"location,omitempty"`
}

// Position is one dated appointment from section B.
type Position struct {
	// Dates is the raw date-range string (may contain "Present").
	Dates string `json:"dates" yaml:"dates"`

	Title       string `json:"title" yaml:"title"`
	Institution string `json:"institution" yaml:"institution"`
	Location    string `json:"location,omitempty" yaml:"location,omitempty"`

	// Primary marks the subject's current/principal appointment.
	Primary bool `json:"primary,omitempty" yaml:"primary,omitempty"`
}

// Honor is one dated award from section B.
type Honor struct {
	// Year is the four-digit year string.
	Year string `json:"year" yaml:"year"`

	Description  string `json:"description" yaml:"description"`
	Organization string `json:"organization,omitempty" yaml:"organization,omitempty"`
}

// Grant is one research-support entry. All fields intentionally default to
// the empty string: a grant is valid with partial information, and callers
// should not treat "" as missing-vs-null.
type Grant struct {
	Funder string `json:"funder" yaml:"funder"`
	Number string `json:"number" yaml:"number"`
	PI     string `json:"pi" yaml:"pi"`

	// Role is the subject's role on the grant (e.g. "PI", "Co-investigator").
	Role string `json:"role" yaml:"role"`

	Dates string `json:"dates" yaml:"dates"`
	Title string `json:"title" yaml:"title"`
}

// PersonalStatement holds section A: the narrative text plus the embedded
// research-support and citation sub-blocks.
type PersonalStatement struct {
	Text      string     `json:"text" yaml:"text"`
	Grants    []Grant    `json:"grants" yaml:"grants"`
	Citations []Citation `json:"citations" yaml:"citations"`
}

// Contribution is one contribution-to-science entry from section C, with the
// citation lines that followed its narrative attached in order.
type Contribution struct {
	Narrative string     `json:"narrative" yaml:"narrative"`
	Citations []Citation `json:"citations" yaml:"citations"`
}

// Biosketch is the root record produced by one parse pass. PersonalStatement
// is nil when the document has no section A at all.
type Biosketch struct {
	Name               string `json:"name" yaml:"name"`
	ERACommonsUsername string `json:"era_commons_username" yaml:"era_commons_username"`
	PositionTitle      string `json:"position_title" yaml:"position_title"`

	Education         []Education        `json:"education" yaml:"education"`
	PersonalStatement *PersonalStatement `json:"personal_statement" yaml:"personal_statement"`
	Positions         []Position         `json:"positions" yaml:"positions"`
	Honors            []Honor            `json:"honors" yaml:"honors"`
	Contributions     []Contribution     `json:"contributions" yaml:"contributions"`
}

// ToPlain converts the biosketch to its plain key/value form. Field names
// match the json tags; list order is preserved.
func (b *Biosketch) ToPlain() (map[string]any, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	var plain map[string]any
	if err := json.Unmarshal(data, &plain); err != nil {
		return nil, err
	}
	return plain, nil
}

// FromPlain reconstructs a Biosketch from its plain key/value form.
// ToPlain followed by FromPlain yields an equal value.
func FromPlain(plain map[string]any) (*Biosketch, error) {
	data, err := json.Marshal(plain)
	if err != nil {
		return nil, err
	}
	var b Biosketch
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// ToJSON renders the biosketch as indented JSON.
func (b *Biosketch) ToJSON() ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}

// FromJSON parses a biosketch from JSON produced by ToJSON.
func FromJSON(data []byte) (*Biosketch, error) {
	var b Biosketch
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	return &b, nil
}
