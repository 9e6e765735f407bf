package query

import (
	"strings"

	"github.com/amaranand360/enterprise-search/internal/catalog"
)

// Parse interprets a free-text query against the given tool registry and
// returns its structured form. It never fails: unmatched queries come back
// with empty filters, no entities and a default search intent. A nil
// registry behaves like an empty one.
func Parse(raw string, reg *catalog.Registry) ParsedQuery {
	original := raw
	working := strings.ToLower(raw)

	parsed := ParsedQuery{OriginalQuery: original}

	working = matchTools(working, reg, &parsed)
	working = matchContentTypes(working, &parsed)
	working = matchDates(original, working, &parsed)
	working = matchPersons(original, working, &parsed)
	parsed.Intent = classifyIntent(original)
	parsed.CleanQuery = normalize(working)

	return parsed
}

// matchTools scans the working query for registry tool names and ids.
// Matched tool ids are reported in registry order, and every occurrence of
// a matched display name is stripped from the working copy. Ids are never
// stripped: a tool matched only by id (such as "google-drive") still
// contributes its filter but the id text stays in the clean query.
func matchTools(working string, reg *catalog.Registry, parsed *ParsedQuery) string {
	for _, t := range reg.All() {
		name := strings.ToLower(t.Name)
		byName := name != "" && strings.Contains(working, name)
		byID := t.ID != "" && strings.Contains(working, t.ID)
		if !byName && !byID {
			continue
		}
		parsed.Filters.Tools = append(parsed.Filters.Tools, t.ID)
		parsed.Entities = append(parsed.Entities, Entity{
			Type:       EntityTool,
			Value:      t.Name,
			Confidence: toolConfidence,
		})
		if name != "" {
			working = strings.ReplaceAll(working, name, "")
		}
	}
	return working
}

// matchContentTypes scans keyword families in declaration order. Each
// matched keyword emits an entity; the content-type filter itself is
// deduplicated. Matching and stripping are whole-word, unlike the tool
// matcher's substring behavior.
func matchContentTypes(working string, parsed *ParsedQuery) string {
	seen := make(map[ContentType]bool)
	for _, fam := range contentTypeFamilies {
		for _, kw := range fam.keywords {
			re := keywordPatterns[kw]
			if !re.MatchString(working) {
				continue
			}
			if !seen[fam.ctype] {
				seen[fam.ctype] = true
				parsed.Filters.ContentTypes = append(parsed.Filters.ContentTypes, fam.ctype)
			}
			parsed.Entities = append(parsed.Entities, Entity{
				Type:       EntityContentType,
				Value:      string(fam.ctype),
				Confidence: contentTypeConfidence,
			})
			working = re.ReplaceAllString(working, "")
		}
	}
	return working
}

// matchDates runs the date patterns against the original query so that
// earlier matchers cannot eat date phrases. Entity values keep the
// original casing; the lowercased span is stripped from the working copy.
func matchDates(original, working string, parsed *ParsedQuery) string {
	for _, re := range datePatterns {
		for _, m := range re.FindAllString(original, -1) {
			parsed.Entities = append(parsed.Entities, Entity{
				Type:       EntityDate,
				Value:      m,
				Confidence: dateConfidence,
			})
			working = strings.ReplaceAll(working, strings.ToLower(m), "")
		}
	}
	return working
}

// matchPersons runs the person patterns against the original query. The
// author filter is overwritten on every match, so the pattern evaluated
// last wins when several reference forms appear in one query.
func matchPersons(original, working string, parsed *ParsedQuery) string {
	for _, re := range personPatterns {
		for _, m := range re.FindAllStringSubmatch(original, -1) {
			parsed.Entities = append(parsed.Entities, Entity{
				Type:       EntityPerson,
				Value:      m[1],
				Confidence: personConfidence,
			})
			parsed.Filters.Author = m[1]
			working = strings.ReplaceAll(working, strings.ToLower(m[0]), "")
		}
	}
	return working
}

// classifyIntent reads only the original query. Action categories are
// checked before question words, so "what should I send" is an action.
func classifyIntent(original string) Intent {
	lower := strings.ToLower(original)
	for _, cat := range actionCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				return Intent{Type: IntentAction, Action: cat.action, Confidence: actionConfidence}
			}
		}
	}
	trimmed := strings.TrimLeft(lower, " \t")
	for _, w := range questionWords {
		if strings.HasPrefix(trimmed, w) {
			return Intent{Type: IntentQuestion, Confidence: questionConfidence}
		}
	}
	return Intent{Type: IntentSearch, Confidence: searchConfidence}
}

// normalize collapses whitespace, drops stop words and trims the result.
func normalize(s string) string {
	fields := strings.Fields(s)
	kept := fields[:0]
	for _, f := range fields {
		if stopWords[strings.ToLower(f)] {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}
