package query

import "regexp"

// contentTypeFamily maps one content type to the keywords that signal it.
// Families are scanned in declaration order, keywords in listed order, so
// duplicate detection and stripping are deterministic.
type contentTypeFamily struct {
	ctype    ContentType
	keywords []string
}

var contentTypeFamilies = []contentTypeFamily{
	{ContentEmail, []string{"email", "emails", "mail", "inbox"}},
	{ContentDocument, []string{"document", "documents", "doc", "docs"}},
	{ContentMessage, []string{"message", "messages", "chat", "conversation"}},
	{ContentTask, []string{"task", "tasks", "todo", "todos", "assignment"}},
	{ContentIssue, []string{"issue", "issues", "bug", "bugs", "ticket", "tickets"}},
	{ContentFile, []string{"file", "files", "attachment", "attachments"}},
	{ContentCalendarEvent, []string{"meeting", "meetings", "event", "events", "appointment", "calendar"}},
	{ContentContact, []string{"contact", "contacts"}},
	{ContentNote, []string{"note", "notes", "memo"}},
	{ContentCode, []string{"code", "snippet", "pull request", "commit", "repository"}},
}

// keywordPatterns holds one whole-word pattern per content-type keyword,
// compiled once. Word boundaries keep "emailed" from matching "email".
var keywordPatterns = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp)
	for _, fam := range contentTypeFamilies {
		for _, kw := range fam.keywords {
			m[kw] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
		}
	}
	return m
}()

// datePatterns are tried in order against the original query. Matched
// spans become date entities verbatim; no calendar normalization happens
// here.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:today|yesterday|tomorrow)\b`),
	regexp.MustCompile(`(?i)\b(?:this|last|next)\s+(?:week|month|year)\b`),
	regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
	regexp.MustCompile(`(?i)\b(?:january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)\s+\d{1,2}\b`),
	regexp.MustCompile(`(?i)\b\d+\s+(?:day|week|month)s?\s+ago\b`),
}

// personPatterns are tried in order; a later pattern's match overwrites
// the author filter set by an earlier one. Name shapes require capitalized
// word sequences, so these stay case-sensitive except for the handle form.
var personPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bfrom\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	regexp.MustCompile(`\bby\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\s+sent\b`),
	regexp.MustCompile(`@(\w+)`),
}

// actionCategory pairs an action verb category with the keywords that
// trigger it. Categories are scanned in declaration order and the first
// category with any keyword present in the query wins.
type actionCategory struct {
	action   ActionType
	keywords []string
}

var actionCategories = []actionCategory{
	{ActionCreate, []string{"create", "make", "compose", "draft", "add"}},
	{ActionSend, []string{"send", "share", "forward", "reply"}},
	{ActionSchedule, []string{"schedule", "book", "arrange", "set up"}},
	{ActionFind, []string{"find", "search", "look for", "locate", "show me"}},
	{ActionUpdate, []string{"update", "edit", "modify", "change"}},
	{ActionDelete, []string{"delete", "remove", "cancel", "clear"}},
}

var questionWords = []string{"what", "when", "where", "who", "why", "how"}

var stopWords = map[string]bool{
	"in": true, "from": true, "by": true, "on": true,
	"at": true, "the": true, "a": true, "an": true,
}
