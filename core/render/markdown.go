// Package render provides output emitters for the charsgen pipeline.
// This file implements the Markdown reference sheet. It lays the groups out
// as HTML and lets html-to-markdown handle Markdown escaping.
package render

import (
	"fmt"
	"html"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/gaurav-prasanna/charsgen/core"
)

const sheetTitle = "HTML character entities"

// MarkdownEmitter writes a human-readable reference sheet, one section
// per Unicode block.
type MarkdownEmitter struct{}

// NewMarkdownEmitter creates a MarkdownEmitter.
func NewMarkdownEmitter() *MarkdownEmitter {
	return &MarkdownEmitter{}
}

// Emit renders groups as Markdown. Blocks appear in the order they are first
// seen; groups keep extraction order within a block.
func (r *MarkdownEmitter) Emit(groups []core.EntityGroup) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1>%s</h1>\n", sheetTitle)

	for _, block := range groupByBlock(groups) {
		fmt.Fprintf(&b, "<h2>%s</h2>\n<ul>\n", html.EscapeString(blockHeading(block.name)))
		for _, g := range block.groups {
			b.WriteString("<li>")
			writeItem(&b, g)
			b.WriteString("</li>\n")
		}
		b.WriteString("</ul>\n")
	}

	markdown, err := htmltomarkdown.ConvertString(b.String())
	if err != nil {
		return nil, fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return []byte(strings.TrimSpace(markdown) + "\n"), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownEmitter) Extension() string {
	return ".md"
}

type blockSection struct {
	name   string
	groups []core.EntityGroup
}

func groupByBlock(groups []core.EntityGroup) []blockSection {
	var sections []blockSection
	index := make(map[string]int)
	for _, g := range groups {
		i, ok := index[g.Block]
		if !ok {
			i = len(sections)
			index[g.Block] = i
			sections = append(sections, blockSection{name: g.Block})
		}
		sections[i].groups = append(sections[i].groups, g)
	}
	return sections
}

func blockHeading(name string) string {
	if name == "" {
		return "Unassigned block"
	}
	return name
}

// writeItem lays out one group: names, code point, title, then metadata.
func writeItem(b *strings.Builder, g core.EntityGroup) {
	for i, entity := range g.Entities {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(b, "<code>%s</code>", html.EscapeString(entity))
	}
	fmt.Fprintf(b, " U+%s", html.EscapeString(g.Codepoint))
	if g.Title != "" {
		fmt.Fprintf(b, " %s", html.EscapeString(g.Title))
	}

	var meta []string
	if g.Category != "" {
		meta = append(meta, g.Category)
	}
	if len(g.Sets) > 0 {
		meta = append(meta, strings.Join(g.Sets, ", "))
	}
	if len(meta) > 0 {
		fmt.Fprintf(b, " <em>(%s)</em>", html.EscapeString(strings.Join(meta, "; ")))
	}
}
