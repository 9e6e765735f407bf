package ingest

import (
	"strings"
	"testing"

	"github.com/amaranand360/enterprise-search/internal/query"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Deployment runbook</title></head>
<body>
<article>
<h1>Deployment runbook</h1>
<p>Roll the canary first, then promote to the full fleet once error
rates hold steady for thirty minutes. Rollback is a single click.</p>
<p>Escalate to the on-call lead if the dashboard shows sustained
elevated latency after promotion.</p>
</article>
</body>
</html>`

func TestFromHTML_ExtractsReadableText(t *testing.T) {
	doc, err := FromHTML(samplePage, "https://wiki.example.com/runbook", "confluence", "", "Ops Team", query.ContentDocument)
	if err != nil {
		t.Fatalf("FromHTML: %v", err)
	}
	if doc.Title != "Deployment runbook" {
		t.Fatalf("expected extracted title, got %q", doc.Title)
	}
	if !strings.Contains(doc.Body, "canary") {
		t.Fatalf("body missing article text: %q", doc.Body)
	}
	if strings.Contains(doc.Body, "<p>") {
		t.Fatalf("body still contains markup: %q", doc.Body)
	}
	if doc.Tool != "confluence" || doc.Type != query.ContentDocument {
		t.Fatalf("attribution lost: %+v", doc)
	}
	if doc.ID == "" {
		t.Fatal("document must get an id")
	}
}

func TestFromHTML_EmptyBody(t *testing.T) {
	if _, err := FromHTML("   ", "https://example.com", "slack", "", "", ""); err == nil {
		t.Fatal("expected error for empty html")
	}
}

func TestFromHTML_DefaultsContentType(t *testing.T) {
	doc, err := FromHTML(samplePage, "https://example.com/x", "notion", "", "", "")
	if err != nil {
		t.Fatalf("FromHTML: %v", err)
	}
	if doc.Type != query.ContentDocument {
		t.Fatalf("expected document default, got %q", doc.Type)
	}
}
