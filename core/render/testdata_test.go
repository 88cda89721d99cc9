package render

import "github.com/gaurav-prasanna/charsgen/core"

func nbspGroup() core.EntityGroup {
	return core.EntityGroup{
		Title:     "NO-BREAK SPACE",
		Codepoint: "000A0",
		Block:     "Latin-1 Supplement",
		Category:  "space",
		Sets:      []string{"html4", "html5"},
		Entities:  []string{"&nbsp;", "&NonBreakingSpace;"},
	}
}

func sampleGroups() []core.EntityGroup {
	return []core.EntityGroup{
		nbspGroup(),
		{
			Title:     "LATIN CAPITAL LETTER Y WITH ACUTE",
			Codepoint: "000DD",
			Block:     "Latin-1 Supplement",
			Category:  "letter",
			Sets:      []string{"html4", "html5"},
			Entities:  []string{"&Yacute;"},
		},
		{
			Title:     "LATIN SMALL LETTER Y WITH ACUTE",
			Codepoint: "000FD",
			Block:     "Latin-1 Supplement",
			Category:  "letter",
			Sets:      []string{"html4", "html5"},
			Entities:  []string{"&yacute;"},
		},
		{
			Title:     "AMPERSAND",
			Codepoint: "00026",
			Block:     "Basic Latin",
			Category:  "symbol",
			Sets:      []string{"html4", "html5", "xml"},
			Entities:  []string{"&amp;", "&AMP;"},
		},
		{
			Title:     "MATHEMATICAL FRAKTUR CAPITAL A",
			Codepoint: "1D504",
			Block:     "Mathematical Alphanumeric Symbols",
			Category:  "letter",
			Sets:      []string{"html5"},
			Entities:  []string{"&Afr;"},
		},
	}
}
