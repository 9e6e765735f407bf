package query

import (
	"reflect"
	"strings"
	"testing"

	"github.com/amaranand360/enterprise-search/internal/catalog"
)

func TestParse_PlainSearch(t *testing.T) {
	p := Parse("project alpha status", catalog.Default())
	if p.Intent.Type != IntentSearch {
		t.Fatalf("expected search intent, got %q", p.Intent.Type)
	}
	if p.Intent.Confidence != 0.7 {
		t.Fatalf("expected confidence 0.7, got %v", p.Intent.Confidence)
	}
	if p.CleanQuery != "project alpha status" {
		t.Fatalf("expected clean query unchanged, got %q", p.CleanQuery)
	}
	if len(p.Entities) != 0 || len(p.Filters.Tools) != 0 {
		t.Fatalf("expected no entities or filters, got %+v", p)
	}
}

func TestParse_ActionIntent(t *testing.T) {
	p := Parse("send email to team about deployment", catalog.Default())
	if p.Intent.Type != IntentAction {
		t.Fatalf("expected action intent, got %q", p.Intent.Type)
	}
	if p.Intent.Action != ActionSend {
		t.Fatalf("expected send action, got %q", p.Intent.Action)
	}
	if p.Intent.Confidence != 0.8 {
		t.Fatalf("expected confidence 0.8, got %v", p.Intent.Confidence)
	}
}

func TestParse_QuestionIntent(t *testing.T) {
	p := Parse("what is the status of project alpha?", catalog.Default())
	if p.Intent.Type != IntentQuestion {
		t.Fatalf("expected question intent, got %q", p.Intent.Type)
	}
	if p.Intent.Confidence != 0.9 {
		t.Fatalf("expected confidence 0.9, got %v", p.Intent.Confidence)
	}
}

func TestParse_ActionBeatsQuestion(t *testing.T) {
	// Action keywords are scanned before question words.
	p := Parse("what should I send", catalog.Default())
	if p.Intent.Type != IntentAction || p.Intent.Action != ActionSend {
		t.Fatalf("expected send action, got %+v", p.Intent)
	}
}

func TestParse_EmptyQuery(t *testing.T) {
	p := Parse("", catalog.Default())
	if p.Intent.Type != IntentSearch || p.Intent.Confidence != 0.7 {
		t.Fatalf("expected default search intent, got %+v", p.Intent)
	}
	if p.CleanQuery != "" || len(p.Entities) != 0 {
		t.Fatalf("expected empty result, got %+v", p)
	}
}

func TestParse_ContentType(t *testing.T) {
	p := Parse("find emails about budget review", catalog.Default())
	if len(p.Filters.ContentTypes) != 1 || p.Filters.ContentTypes[0] != ContentEmail {
		t.Fatalf("expected email content type, got %+v", p.Filters.ContentTypes)
	}
	want := Entity{Type: EntityContentType, Value: "email", Confidence: 0.8}
	if len(p.Entities) != 1 || p.Entities[0] != want {
		t.Fatalf("expected %+v, got %+v", want, p.Entities)
	}
	if strings.Contains(p.CleanQuery, "emails") {
		t.Fatalf("matched keyword not stripped: %q", p.CleanQuery)
	}
}

func TestParse_ContentTypeWholeWord(t *testing.T) {
	// "emailed" must not trigger the email keyword.
	p := Parse("notes she emailed over", catalog.Default())
	for _, ct := range p.Filters.ContentTypes {
		if ct == ContentEmail {
			t.Fatalf("emailed should not match email keyword: %+v", p.Filters.ContentTypes)
		}
	}
	if len(p.Filters.ContentTypes) != 1 || p.Filters.ContentTypes[0] != ContentNote {
		t.Fatalf("expected note content type, got %+v", p.Filters.ContentTypes)
	}
}

func TestParse_ContentTypeDeduplicated(t *testing.T) {
	p := Parse("email in my inbox", catalog.Default())
	if len(p.Filters.ContentTypes) != 1 || p.Filters.ContentTypes[0] != ContentEmail {
		t.Fatalf("expected deduplicated [email], got %+v", p.Filters.ContentTypes)
	}
	// Both keywords still emit their own entity.
	if len(p.Entities) != 2 {
		t.Fatalf("expected two content_type entities, got %+v", p.Entities)
	}
}

func TestParse_ToolByName(t *testing.T) {
	p := Parse("search in slack for team updates", catalog.Default())
	if len(p.Filters.Tools) != 1 || p.Filters.Tools[0] != "slack" {
		t.Fatalf("expected slack tool filter, got %+v", p.Filters.Tools)
	}
	want := Entity{Type: EntityTool, Value: "Slack", Confidence: 0.9}
	if len(p.Entities) != 1 || p.Entities[0] != want {
		t.Fatalf("expected %+v, got %+v", want, p.Entities)
	}
	if strings.Contains(strings.ToLower(p.CleanQuery), "slack") {
		t.Fatalf("tool name not stripped: %q", p.CleanQuery)
	}
	if p.CleanQuery != "search for team updates" {
		t.Fatalf("unexpected clean query %q", p.CleanQuery)
	}
}

func TestParse_ToolByID(t *testing.T) {
	p := Parse("standup notes in google-drive", catalog.Default())
	if len(p.Filters.Tools) != 1 || p.Filters.Tools[0] != "google-drive" {
		t.Fatalf("expected google-drive tool filter, got %+v", p.Filters.Tools)
	}
	if p.Entities[0].Value != "Google Drive" {
		t.Fatalf("tool entity should carry the display name, got %q", p.Entities[0].Value)
	}
	// only display names are stripped, an id-only match stays in the query
	if p.CleanQuery != "standup google-drive" {
		t.Fatalf("unexpected clean query %q", p.CleanQuery)
	}
}

func TestParse_ToolsInRegistryOrder(t *testing.T) {
	reg := catalog.NewRegistry([]catalog.Tool{
		{ID: "jira", Name: "Jira"},
		{ID: "slack", Name: "Slack"},
	})
	p := Parse("slack and jira tickets", reg)
	if !reflect.DeepEqual(p.Filters.Tools, []string{"jira", "slack"}) {
		t.Fatalf("expected registry order [jira slack], got %+v", p.Filters.Tools)
	}
}

func TestParse_NilRegistry(t *testing.T) {
	p := Parse("slack messages", nil)
	if len(p.Filters.Tools) != 0 {
		t.Fatalf("nil registry must yield no tool matches, got %+v", p.Filters.Tools)
	}
}

func TestParse_DateEntities(t *testing.T) {
	cases := []struct {
		query string
		value string
	}{
		{"meetings scheduled for tomorrow", "tomorrow"},
		{"reports from last week", "last week"},
		{"invoice dated 7/15/2024", "7/15/2024"},
		{"notes from January 15", "January 15"},
		{"commits 3 days ago", "3 days ago"},
	}
	for _, tc := range cases {
		p := Parse(tc.query, catalog.Default())
		var found bool
		for _, e := range p.Entities {
			if e.Type == EntityDate && e.Value == tc.value {
				if e.Confidence != 0.7 {
					t.Fatalf("%q: expected date confidence 0.7, got %v", tc.query, e.Confidence)
				}
				found = true
			}
		}
		if !found {
			t.Fatalf("%q: missing date entity %q in %+v", tc.query, tc.value, p.Entities)
		}
		if strings.Contains(strings.ToLower(p.CleanQuery), strings.ToLower(tc.value)) {
			t.Fatalf("%q: date phrase not stripped from %q", tc.query, p.CleanQuery)
		}
	}
}

func TestParse_DateRangeNeverDerived(t *testing.T) {
	p := Parse("emails from yesterday", catalog.Default())
	if p.Filters.DateRange != nil {
		t.Fatalf("date range must stay nil, got %+v", p.Filters.DateRange)
	}
}

func TestParse_PersonEntity(t *testing.T) {
	p := Parse("documents from Alice Johnson", catalog.Default())
	if p.Filters.Author != "Alice Johnson" {
		t.Fatalf("expected author Alice Johnson, got %q", p.Filters.Author)
	}
	var found bool
	for _, e := range p.Entities {
		if e.Type == EntityPerson && e.Value == "Alice Johnson" && e.Confidence == 0.6 {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing person entity in %+v", p.Entities)
	}
	if strings.Contains(strings.ToLower(p.CleanQuery), "alice") {
		t.Fatalf("person span not stripped from %q", p.CleanQuery)
	}
}

func TestParse_PersonHandle(t *testing.T) {
	p := Parse("mentions of @jdoe", catalog.Default())
	if p.Filters.Author != "jdoe" {
		t.Fatalf("expected author jdoe, got %q", p.Filters.Author)
	}
}

func TestParse_AuthorLastPatternWins(t *testing.T) {
	// The "by" pattern runs after the "from" pattern, so Jane Doe wins.
	p := Parse("emails from John Smith by Jane Doe", catalog.Default())
	if p.Filters.Author != "Jane Doe" {
		t.Fatalf("expected Jane Doe, got %q", p.Filters.Author)
	}
	var values []string
	for _, e := range p.Entities {
		if e.Type == EntityPerson {
			values = append(values, e.Value)
		}
	}
	if !reflect.DeepEqual(values, []string{"John Smith", "Jane Doe"}) {
		t.Fatalf("expected both persons in order, got %+v", values)
	}
}

func TestParse_EntityOrder(t *testing.T) {
	// Detection order is tools, then content types, then dates, then persons.
	p := Parse("slack messages from yesterday by Jane Doe", catalog.Default())
	var types []EntityType
	for _, e := range p.Entities {
		types = append(types, e.Type)
	}
	want := []EntityType{EntityTool, EntityContentType, EntityDate, EntityPerson}
	if !reflect.DeepEqual(types, want) {
		t.Fatalf("expected entity order %v, got %v", want, types)
	}
}

func TestParse_StopWordsRemoved(t *testing.T) {
	p := Parse("the report on revenue at a glance", catalog.Default())
	for _, f := range strings.Fields(p.CleanQuery) {
		switch strings.ToLower(f) {
		case "in", "from", "by", "on", "at", "the", "a", "an":
			t.Fatalf("stop word %q survived in %q", f, p.CleanQuery)
		}
	}
}

func TestParse_Deterministic(t *testing.T) {
	const q = "find emails from John Smith in slack from last week"
	reg := catalog.Default()
	first := Parse(q, reg)
	for i := 0; i < 3; i++ {
		if next := Parse(q, reg); !reflect.DeepEqual(first, next) {
			t.Fatalf("parse not deterministic: %+v vs %+v", first, next)
		}
	}
}

func TestParse_HostileInput(t *testing.T) {
	// Regex-significant characters and control bytes are data, not syntax.
	inputs := []string{
		"report (draft] {unclosed",
		"a+b*c?d\\e",
		"\x00\x01\x02",
		strings.Repeat("slack ", 500),
	}
	for _, in := range inputs {
		p := Parse(in, catalog.Default())
		if p.OriginalQuery != in {
			t.Fatalf("original query mutated for %q", in)
		}
	}
}

func TestParse_FilterEntityConsistency(t *testing.T) {
	p := Parse("jira issues and slack messages from Bob Lee", catalog.Default())
	for _, id := range p.Filters.Tools {
		var ok bool
		for _, e := range p.Entities {
			if e.Type == EntityTool && strings.EqualFold(strings.ReplaceAll(e.Value, " ", "-"), id) {
				ok = true
			}
		}
		if !ok {
			t.Fatalf("tool filter %q has no matching entity: %+v", id, p.Entities)
		}
	}
	for _, ct := range p.Filters.ContentTypes {
		var ok bool
		for _, e := range p.Entities {
			if e.Type == EntityContentType && e.Value == string(ct) {
				ok = true
			}
		}
		if !ok {
			t.Fatalf("content type %q has no matching entity", ct)
		}
	}
}
