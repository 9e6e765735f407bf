// Package query turns free-text search queries into a structured
// representation: cleaned terms, a classified intent, extracted entities
// and derived search filters. It is a rule/keyword/regex engine with no
// I/O and no state between calls; every function is total over its input.
package query

// IntentType is the coarse purpose of a query.
type IntentType string

const (
	IntentSearch   IntentType = "search"
	IntentAction   IntentType = "action"
	IntentQuestion IntentType = "question"
)

// ActionType is the verb category detected for action intents.
type ActionType string

const (
	ActionCreate   ActionType = "create"
	ActionSend     ActionType = "send"
	ActionSchedule ActionType = "schedule"
	ActionFind     ActionType = "find"
	ActionUpdate   ActionType = "update"
	ActionDelete   ActionType = "delete"
)

// EntityType classifies an extracted span of meaning.
type EntityType string

const (
	EntityPerson      EntityType = "person"
	EntityDate        EntityType = "date"
	EntityTool        EntityType = "tool"
	EntityContentType EntityType = "content_type"
	EntityTag         EntityType = "tag"
	EntityLocation    EntityType = "location"
)

// ContentType is the closed enumeration of document kinds the matcher
// recognizes.
type ContentType string

const (
	ContentEmail         ContentType = "email"
	ContentDocument      ContentType = "document"
	ContentMessage       ContentType = "message"
	ContentTask          ContentType = "task"
	ContentIssue         ContentType = "issue"
	ContentFile          ContentType = "file"
	ContentCalendarEvent ContentType = "calendar-event"
	ContentContact       ContentType = "contact"
	ContentNote          ContentType = "note"
	ContentCode          ContentType = "code"
)

// Intent is the classified purpose of a query. Action is set only when
// Type is IntentAction.
type Intent struct {
	Type       IntentType `json:"type"`
	Action     ActionType `json:"action,omitempty"`
	Confidence float64    `json:"confidence"`
}

// Entity is a typed span extracted from the query text. Confidence is a
// fixed constant per detection method, not a scored value.
type Entity struct {
	Type       EntityType `json:"type"`
	Value      string     `json:"value"`
	Confidence float64    `json:"confidence"`
}

// DateRange bounds a search window. The interpreter never populates it;
// date phrases are surfaced as entities only and range derivation is left
// to a downstream component.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Filters are the structured constraints derived from entities. Tools
// holds catalog tool ids in registry order; ContentTypes is deduplicated;
// Author holds the last matched person reference.
type Filters struct {
	Tools        []string      `json:"tools,omitempty"`
	ContentTypes []ContentType `json:"contentTypes,omitempty"`
	DateRange    *DateRange    `json:"dateRange,omitempty"`
	Author       string        `json:"author,omitempty"`
}

// ParsedQuery is the immutable result of one Parse call.
type ParsedQuery struct {
	OriginalQuery string   `json:"originalQuery"`
	CleanQuery    string   `json:"cleanQuery"`
	Filters       Filters  `json:"filters"`
	Intent        Intent   `json:"intent"`
	Entities      []Entity `json:"entities"`
}

// Fixed per-method entity confidences.
const (
	toolConfidence        = 0.9
	contentTypeConfidence = 0.8
	dateConfidence        = 0.7
	personConfidence      = 0.6

	actionConfidence   = 0.8
	questionConfidence = 0.9
	searchConfidence   = 0.7
)
