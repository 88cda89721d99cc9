// Package render — LESS stylesheet emitter.
// Expands every entity group into one variable per entity name:
//
//	@html_nbsp     = "\000000a0"; // <glyph>
//
// Lines are aligned on "=" and sorted case-insensitively.
package render

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gaurav-prasanna/charsgen/core"
)

const (
	// VariablePrefix is prepended to every entity name after its delimiters
	// are stripped.
	VariablePrefix = "@html_"
	// nameMargin is added to the longest raw entity name when sizing the
	// variable column.
	nameMargin = 3
	// escapeWidth is the number of hex digits in an escaped code point.
	escapeWidth = 8
	// glyphSeparator introduces the trailing glyph comment.
	glyphSeparator = " // "
)

// VariableLine is one entity-to-codepoint assignment before formatting.
type VariableLine struct {
	Name   string // e.g. "@html_nbsp"
	Escape string // e.g. `\000000a0`
	Glyph  string
}

// Format renders the line with the variable name padded to width runes.
func (v VariableLine) Format(width int) string {
	return fmt.Sprintf("%-*s = \"%s\";%s%s", width, v.Name, v.Escape, glyphSeparator, v.Glyph)
}

// LessEmitter produces the stylesheet-variable file.
type LessEmitter struct{}

// NewLessEmitter creates a LessEmitter.
func NewLessEmitter() *LessEmitter {
	return &LessEmitter{}
}

// Emit builds, sorts and joins one line per (group, entity) pair.
// Any invalid code point fails the whole emission.
func (r *LessEmitter) Emit(groups []core.EntityGroup) ([]byte, error) {
	lines, err := Lines(groups)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return []byte{}, nil
	}
	return []byte(strings.Join(lines, "\n") + "\n"), nil
}

// Extension returns the file extension for LESS output.
func (r *LessEmitter) Extension() string {
	return ".less"
}

// Lines returns the formatted, sorted stylesheet lines for groups.
func Lines(groups []core.EntityGroup) ([]string, error) {
	width := ColumnWidth(groups)

	var lines []string
	for _, g := range groups {
		for _, entity := range g.Entities {
			v, err := NewVariableLine(entity, g.Codepoint)
			if err != nil {
				return nil, err
			}
			lines = append(lines, v.Format(width))
		}
	}

	slices.SortStableFunc(lines, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return lines, nil
}

// ColumnWidth sizes the variable-name column from the longest raw entity
// token ("&NotNestedGreaterGreater;", delimiters included) plus the margin
// and the prefix length. Since the delimiters count toward the raw length
// but not toward the variable name, the longest name ends up with
// nameMargin+2 padding spaces rather than none.
func ColumnWidth(groups []core.EntityGroup) int {
	longest := 0
	for _, g := range groups {
		for _, entity := range g.Entities {
			longest = max(longest, utf8.RuneCountInString(entity))
		}
	}
	return longest + nameMargin + utf8.RuneCountInString(VariablePrefix)
}

// NewVariableLine builds the assignment for a single entity name.
func NewVariableLine(entity, codepoint string) (VariableLine, error) {
	invalid := func(err error) error {
		return &core.InvalidCodepointError{Entity: entity, Codepoint: codepoint, Err: err}
	}

	if codepoint == "" {
		return VariableLine{}, invalid(fmt.Errorf("empty"))
	}
	if len(codepoint) > escapeWidth {
		return VariableLine{}, invalid(fmt.Errorf("more than %d hex digits", escapeWidth))
	}
	n, err := strconv.ParseUint(codepoint, 16, 32)
	if err != nil {
		return VariableLine{}, invalid(err)
	}
	r := rune(n)
	if !utf8.ValidRune(r) {
		return VariableLine{}, invalid(fmt.Errorf("not a Unicode scalar value"))
	}

	padded := strings.Repeat("0", escapeWidth-len(codepoint)) + strings.ToLower(codepoint)
	return VariableLine{
		Name:   VariablePrefix + stripDelimiters(entity),
		Escape: `\` + padded,
		Glyph:  glyph(r),
	}, nil
}

// stripDelimiters drops the first and last rune: "&nbsp;" -> "nbsp".
func stripDelimiters(entity string) string {
	_, first := utf8.DecodeRuneInString(entity)
	_, last := utf8.DecodeLastRuneInString(entity)
	if first+last >= len(entity) {
		return ""
	}
	return entity[first : len(entity)-last]
}

// glyph renders r literally, except control characters, which are written
// as Go escapes so the annotation stays on its own line.
func glyph(r rune) string {
	if unicode.IsControl(r) {
		q := strconv.QuoteRune(r)
		return q[1 : len(q)-1]
	}
	return string(r)
}
