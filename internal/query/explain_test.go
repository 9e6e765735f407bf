package query

import (
	"testing"

	"github.com/amaranand360/enterprise-search/internal/catalog"
)

func TestExplain_AllSegments(t *testing.T) {
	reg := catalog.Default()
	p := Parse("budget emails from John Smith in slack", reg)
	got := Explain(p, reg)
	want := `Searching for "budget" in Slack for email by John Smith`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestExplain_EmptyQuery(t *testing.T) {
	reg := catalog.Default()
	if got := Explain(Parse("", reg), reg); got != "" {
		t.Fatalf("expected empty explanation, got %q", got)
	}
}

func TestExplain_OmitsEmptySegments(t *testing.T) {
	reg := catalog.Default()
	p := Parse("quarterly roadmap", reg)
	got := Explain(p, reg)
	want := `Searching for "quarterly roadmap"`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestExplain_MultipleToolsAndTypes(t *testing.T) {
	reg := catalog.Default()
	p := Parse("slack and jira issues and messages", reg)
	got := Explain(p, reg)
	// content types report in family declaration order, not query order
	want := `Searching for "and and" in Slack, Jira for message, issue`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestExplain_UnknownToolIDFallsBack(t *testing.T) {
	reg := catalog.Default()
	p := ParsedQuery{
		CleanQuery: "roadmap",
		Filters:    Filters{Tools: []string{"linear"}},
	}
	if got := Explain(p, reg); got != `Searching for "roadmap" in linear` {
		t.Fatalf("unexpected explanation %q", got)
	}
}
