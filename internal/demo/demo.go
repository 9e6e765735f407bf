// Package demo generates a deterministic corpus of workplace documents so
// the search service has something to answer against without live
// connector data. The same seed always produces the same corpus.
package demo

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/amaranand360/enterprise-search/internal/index"
	"github.com/amaranand360/enterprise-search/internal/query"
)

// source pairs a tool with the content types it produces.
type source struct {
	tool  string
	types []query.ContentType
}

var sources = []source{
	{"slack", []query.ContentType{query.ContentMessage}},
	{"gmail", []query.ContentType{query.ContentEmail}},
	{"google-drive", []query.ContentType{query.ContentDocument, query.ContentFile}},
	{"google-calendar", []query.ContentType{query.ContentCalendarEvent}},
	{"jira", []query.ContentType{query.ContentIssue, query.ContentTask}},
	{"github", []query.ContentType{query.ContentCode, query.ContentIssue}},
	{"notion", []query.ContentType{query.ContentNote, query.ContentDocument}},
	{"confluence", []query.ContentType{query.ContentDocument}},
	{"asana", []query.ContentType{query.ContentTask}},
	{"salesforce", []query.ContentType{query.ContentContact}},
}

var topics = []string{
	"quarterly planning", "deployment", "budget review", "onboarding",
	"incident response", "design system", "customer feedback", "roadmap",
	"hiring", "security audit", "release notes", "retrospective",
}

var authors = []string{
	"Jane Doe", "John Smith", "Ada Park", "Bob Lee",
	"Maria Garcia", "Wei Chen", "Priya Patel", "Tom Baker",
}

var bodyPhrases = []string{
	"summary of the discussion and agreed next steps",
	"please review before the end of the week",
	"blocked on the upstream change, needs a decision",
	"draft shared for early feedback",
	"final version approved by the team",
	"follow-up from the last sync meeting",
}

// Corpus returns n deterministic documents for the given seed. Document
// ids are name-based UUIDs so reseeding with the same inputs yields
// identical ids.
func Corpus(seed int64, n int) []index.Document {
	rng := rand.New(rand.NewSource(seed))
	base := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)

	docs := make([]index.Document, 0, n)
	for i := 0; i < n; i++ {
		src := sources[rng.Intn(len(sources))]
		ctype := src.types[rng.Intn(len(src.types))]
		topic := topics[rng.Intn(len(topics))]
		author := authors[rng.Intn(len(authors))]
		body := bodyPhrases[rng.Intn(len(bodyPhrases))]

		name := fmt.Sprintf("demo-%d-%d", seed, i)
		docs = append(docs, index.Document{
			ID:        uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String(),
			Tool:      src.tool,
			Type:      ctype,
			Title:     fmt.Sprintf("%s %s", topic, ctype),
			Body:      fmt.Sprintf("%s: %s", topic, body),
			Author:    author,
			URL:       fmt.Sprintf("https://example.com/%s/%s", src.tool, name),
			CreatedAt: base.Add(time.Duration(rng.Intn(90*24)) * time.Hour),
		})
	}
	return docs
}
