package query

import (
	"strings"

	"github.com/amaranand360/enterprise-search/internal/catalog"
)

const maxSuggestions = 5

// Suggestions derives up to five follow-up query strings for the given
// input. Entity-derived suggestions come first, in entity order, followed
// by fixed templates when the intent is a plain search. Duplicates are not
// removed.
func Suggestions(raw string, reg *catalog.Registry) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parsed := Parse(raw, reg)
	q := parsed.CleanQuery

	var out []string
	for _, e := range parsed.Entities {
		switch e.Type {
		case EntityTool:
			out = append(out, q+" in "+e.Value)
		case EntityContentType:
			out = append(out, e.Value+" about "+q)
		case EntityPerson:
			out = append(out, q+" from "+e.Value)
		}
	}

	if parsed.Intent.Type == IntentSearch {
		out = append(out,
			q+" from last week",
			q+" documents",
			q+" meetings",
			"recent "+q,
		)
	}

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
