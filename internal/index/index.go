// Package index executes parsed queries against an in-memory bleve index
// of workplace documents. Structured filters derived by the interpreter
// (tools, content types, author) are applied on top of bleve's full-text
// relevance.
package index

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/blevesearch/bleve"

	"github.com/amaranand360/enterprise-search/internal/query"
)

// Document is one searchable item pulled from an integration. Tool is a
// catalog tool id; Type is one of the interpreter's content types.
type Document struct {
	ID        string            `json:"id"`
	Tool      string            `json:"tool"`
	Type      query.ContentType `json:"type"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Author    string            `json:"author"`
	URL       string            `json:"url,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// Hit is a scored search result with an optional highlighted fragment.
type Hit struct {
	Document
	Score    float64 `json:"score"`
	Fragment string  `json:"fragment,omitempty"`
}

// Engine wraps a bleve index plus document metadata. Safe for concurrent
// use; Rebuild swaps the whole corpus atomically.
type Engine struct {
	mu   sync.RWMutex
	idx  bleve.Index
	meta map[string]Document
}

// NewEngine creates an empty in-memory engine.
func NewEngine() (*Engine, error) {
	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}
	return &Engine{idx: idx, meta: make(map[string]Document)}, nil
}

// Index adds documents to the engine. A document with an existing id
// replaces the previous version.
func (e *Engine) Index(docs ...Document) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, d := range docs {
		if d.ID == "" {
			return fmt.Errorf("document %q has no id", d.Title)
		}
		if err := e.idx.Index(d.ID, indexFields(d)); err != nil {
			return fmt.Errorf("index %s: %w", d.ID, err)
		}
		e.meta[d.ID] = d
	}
	return nil
}

// Rebuild replaces the entire corpus with docs.
func (e *Engine) Rebuild(docs []Document) error {
	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	meta := make(map[string]Document, len(docs))
	for _, d := range docs {
		if d.ID == "" {
			return fmt.Errorf("document %q has no id", d.Title)
		}
		if err := idx.Index(d.ID, indexFields(d)); err != nil {
			return fmt.Errorf("index %s: %w", d.ID, err)
		}
		meta[d.ID] = d
	}

	e.mu.Lock()
	old := e.idx
	e.idx = idx
	e.meta = meta
	e.mu.Unlock()
	_ = old.Close()
	return nil
}

// Size reports the number of indexed documents.
func (e *Engine) Size() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.meta)
}

// Search runs the parsed query. With an empty clean query it degrades to
// a filter-only scan ordered by recency; otherwise bleve ranks by
// relevance and the structured filters are applied to the hits.
func (e *Engine) Search(p query.ParsedQuery, limit int) ([]Hit, error) {
	if limit <= 0 {
		limit = 20
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	if strings.TrimSpace(p.CleanQuery) == "" {
		return e.scan(p.Filters, limit), nil
	}

	q := bleve.NewMatchQuery(p.CleanQuery)
	// Overshoot so post-filtering still fills the page.
	req := bleve.NewSearchRequestOptions(q, limit*3, 0, false)
	req.Highlight = bleve.NewHighlightWithStyle("html")
	res, err := e.idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	out := make([]Hit, 0, limit)
	for _, h := range res.Hits {
		doc, ok := e.meta[h.ID]
		if !ok || !matchesFilters(doc, p.Filters) {
			continue
		}
		hit := Hit{Document: doc, Score: h.Score}
		if frags, ok := h.Fragments["body"]; ok && len(frags) > 0 {
			hit.Fragment = frags[0]
		}
		out = append(out, hit)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// scan returns filter-matching documents newest first.
func (e *Engine) scan(f query.Filters, limit int) []Hit {
	out := make([]Hit, 0, limit)
	for _, doc := range e.meta {
		if matchesFilters(doc, f) {
			out = append(out, Hit{Document: doc})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func matchesFilters(d Document, f query.Filters) bool {
	if len(f.Tools) > 0 && !containsString(f.Tools, d.Tool) {
		return false
	}
	if len(f.ContentTypes) > 0 {
		var ok bool
		for _, ct := range f.ContentTypes {
			if ct == d.Type {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if f.Author != "" && !strings.EqualFold(f.Author, d.Author) {
		return false
	}
	return true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// indexFields flattens a document into the fields bleve scores on.
func indexFields(d Document) map[string]interface{} {
	return map[string]interface{}{
		"title":  d.Title,
		"body":   d.Body,
		"author": d.Author,
		"tool":   d.Tool,
		"type":   string(d.Type),
	}
}
