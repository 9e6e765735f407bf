// Package ingest converts raw HTML pushed by connectors into indexable
// documents.
package ingest

import (
	"fmt"
	nurl "net/url"
	"regexp"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"
	"github.com/google/uuid"

	"github.com/amaranand360/enterprise-search/internal/index"
	"github.com/amaranand360/enterprise-search/internal/query"
)

var reSpaces = regexp.MustCompile(`\s+`)

// FromHTML extracts the readable title and text from rawHTML and returns
// an indexable document attributed to the given tool. Fields left empty
// by the extractor fall back to the provided title/author.
func FromHTML(rawHTML, pageURL, toolID, title, author string, ctype query.ContentType) (index.Document, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return index.Document{}, fmt.Errorf("empty html body")
	}
	if ctype == "" {
		ctype = query.ContentDocument
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), parseURL(pageURL))
	if err != nil {
		return index.Document{}, fmt.Errorf("extract: %w", err)
	}

	if t := strings.TrimSpace(article.Title); t != "" {
		title = t
	}
	if b := strings.TrimSpace(article.Byline); b != "" {
		author = b
	}
	body := strings.TrimSpace(reSpaces.ReplaceAllString(article.TextContent, " "))

	return index.Document{
		ID:        uuid.New().String(),
		Tool:      toolID,
		Type:      ctype,
		Title:     title,
		Body:      body,
		Author:    author,
		URL:       pageURL,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func parseURL(raw string) *nurl.URL {
	u, err := nurl.Parse(raw)
	if err != nil {
		return &nurl.URL{}
	}
	return u
}
