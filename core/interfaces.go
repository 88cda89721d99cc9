// Package core defines the pipeline types and interfaces for charsgen.
// Each stage of the pipeline is a clean, testable interface.
package core

// EntityGroup is one row of the character reference table: a code point
// and every entity name that refers to it.
type EntityGroup struct {
	Title     string   `json:"title"`
	Codepoint string   `json:"codepoint"` // hex, without the "U+" marker
	Block     string   `json:"block"`
	Category  string   `json:"category"`
	Sets      []string `json:"sets"`
	Entities  []string `json:"entities"` // delimited form, e.g. "&nbsp;"
}

// Extractor parses the source table into entity groups, in document order.
type Extractor interface {
	Extract(html string) ([]EntityGroup, error)
}

// Emitter renders the full record sequence into one output artifact.
// Emitters must not modify the records they are given.
type Emitter interface {
	Emit(groups []EntityGroup) ([]byte, error)
	// Extension returns the file extension for this emitter (e.g. ".json", ".less").
	Extension() string
}
