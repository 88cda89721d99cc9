// Package render — JSON emitter.
// Serializes the extracted entity groups verbatim as a JSON array,
// in extraction order, with no re-sorting or re-casing of any field.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/charsgen/core"
)

// JSONEmitter produces the structured data file.
type JSONEmitter struct{}

// NewJSONEmitter creates a JSONEmitter.
func NewJSONEmitter() *JSONEmitter {
	return &JSONEmitter{}
}

// Emit encodes groups as an indented JSON array.
// HTML escaping is off so entity names stay readable ("&nbsp;").
func (r *JSONEmitter) Emit(groups []core.EntityGroup) ([]byte, error) {
	if groups == nil {
		groups = []core.EntityGroup{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(groups); err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONEmitter) Extension() string {
	return ".json"
}
