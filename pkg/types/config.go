// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ParserConfig holds tunable knobs for the biosketch parser. The zero value
// is usable; consumers apply the documented defaults for unset fields.
type ParserConfig struct {
	// HeaderScanLimit is the number of leading paragraphs scanned for the
	// NAME / eRA COMMONS / POSITION TITLE fields (default 15).
	HeaderScanLimit int `json:"header_scan_limit" yaml:"header_scan_limit"`

	// MinHeadingLength is the minimum character length for a section C line
	// to count as the start of a new contribution (default 20). Shorter
	// lines are treated as narrative continuation.
	MinHeadingLength int `json:"min_heading_length" yaml:"min_heading_length"`

	// ExtraFunders lists additional funder tokens the grant recognizer
	// should accept beyond the built-in set (e.g. institutional awards).
	ExtraFunders []string `json:"extra_funders,omitempty" yaml:"extra_funders,omitempty"`
}
