// Package extract implements the Extractor interface.
// It turns the W3C character reference table into entity groups by:
//  1. Walking every <tr> element in document order
//  2. Reading the composite title and data-* attributes of the row
//  3. Splitting the text of the row's first <code> element into entity names
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/charsgen/core"
)

const (
	codepointMarker = "U+"
	entityOpen      = '&'
	entityClose     = ';'
)

// Row-level attributes carrying the group metadata.
const (
	attrTitle    = "title"
	attrBlock    = "data-block"
	attrCategory = "data-category"
	attrSet      = "data-set"
)

var (
	rowSelector  = cascadia.MustCompile("tr")
	codeSelector = cascadia.MustCompile("code")
)

// TableExtractor parses the character reference table.
type TableExtractor struct{}

// New creates a TableExtractor.
func New() *TableExtractor {
	return &TableExtractor{}
}

// Extract returns one EntityGroup per <tr>, preserving document order.
// The first malformed row aborts extraction with a *core.MalformedRecordError.
func (e *TableExtractor) Extract(src string) ([]core.EntityGroup, error) {
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	rows := doc.FindMatcher(rowSelector)
	groups := make([]core.EntityGroup, 0, rows.Length())

	var rowErr error
	rows.EachWithBreak(func(i int, tr *goquery.Selection) bool {
		group, err := parseRow(i, tr)
		if err != nil {
			rowErr = err
			return false
		}
		groups = append(groups, group)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return groups, nil
}

func parseRow(i int, tr *goquery.Selection) (core.EntityGroup, error) {
	malformed := func(format string, args ...any) error {
		return &core.MalformedRecordError{Row: i, Reason: fmt.Sprintf(format, args...)}
	}

	title, ok := tr.Attr(attrTitle)
	if !ok {
		return core.EntityGroup{}, malformed("missing %s attribute", attrTitle)
	}
	words := strings.Fields(title)
	if len(words) == 0 {
		return core.EntityGroup{}, malformed("empty %s attribute", attrTitle)
	}
	codepoint, ok := parseCodepointToken(words[0])
	if !ok {
		return core.EntityGroup{}, malformed("title token %q is not %s followed by hex digits", words[0], codepointMarker)
	}

	// Metadata is copied verbatim; an absent attribute is never defaulted.
	attrs := make(map[string]string, 3)
	for _, name := range []string{attrBlock, attrCategory, attrSet} {
		v, ok := tr.Attr(name)
		if !ok {
			return core.EntityGroup{}, malformed("missing %s attribute", name)
		}
		attrs[name] = v
	}

	code := tr.FindMatcher(codeSelector).First()
	if code.Length() == 0 {
		return core.EntityGroup{}, malformed("missing <code> element")
	}
	entities := strings.Fields(code.Text())
	if len(entities) == 0 {
		return core.EntityGroup{}, malformed("<code> element lists no entities")
	}
	for _, name := range entities {
		if !isDelimited(name) {
			return core.EntityGroup{}, malformed("entity %q is not of the form &name;", name)
		}
	}

	return core.EntityGroup{
		Title:     strings.Join(words[1:], " "),
		Codepoint: codepoint,
		Block:     attrs[attrBlock],
		Category:  attrs[attrCategory],
		Sets:      strings.Fields(attrs[attrSet]),
		Entities:  entities,
	}, nil
}

// parseCodepointToken strips the "U+" marker and checks the rest is hex.
func parseCodepointToken(tok string) (string, bool) {
	if len(tok) <= len(codepointMarker) || !strings.HasPrefix(tok, codepointMarker) {
		return "", false
	}
	cp := tok[len(codepointMarker):]
	for _, ch := range cp {
		if !isHexDigit(ch) {
			return "", false
		}
	}
	return cp, true
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// isDelimited reports whether name has the "&...;" shape with a non-empty body.
func isDelimited(name string) bool {
	return len(name) > 2 && name[0] == entityOpen && name[len(name)-1] == entityClose
}
