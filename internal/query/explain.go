package query

import (
	"strings"

	"github.com/amaranand360/enterprise-search/internal/catalog"
)

// Explain renders a one-line, human-readable description of a parsed
// query's terms and filters. An empty parse yields an empty string.
func Explain(p ParsedQuery, reg *catalog.Registry) string {
	var parts []string

	if p.CleanQuery != "" {
		parts = append(parts, `Searching for "`+p.CleanQuery+`"`)
	}

	if len(p.Filters.Tools) > 0 {
		names := make([]string, 0, len(p.Filters.Tools))
		for _, id := range p.Filters.Tools {
			names = append(names, reg.Name(id))
		}
		parts = append(parts, "in "+strings.Join(names, ", "))
	}

	if len(p.Filters.ContentTypes) > 0 {
		types := make([]string, 0, len(p.Filters.ContentTypes))
		for _, ct := range p.Filters.ContentTypes {
			types = append(types, string(ct))
		}
		parts = append(parts, "for "+strings.Join(types, ", "))
	}

	if p.Filters.Author != "" {
		parts = append(parts, "by "+p.Filters.Author)
	}

	return strings.Join(parts, " ")
}
