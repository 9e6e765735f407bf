package catalog

// Tool describes a connected workplace integration that documents can
// originate from. The query interpreter matches tool names and ids against
// free-text queries, so both should stay short and lowercase-stable.
type Tool struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Registry is an ordered, read-only collection of tools. Order is the
// insertion order and is observable: the query interpreter reports matched
// tool ids in registry order. A Registry is safe for concurrent use after
// construction.
type Registry struct {
	tools []Tool
	byID  map[string]Tool
}

// NewRegistry builds a registry from the given tools, preserving order.
// Tools with an empty id are skipped; a duplicate id keeps the first entry.
func NewRegistry(tools []Tool) *Registry {
	reg := &Registry{byID: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		if t.ID == "" {
			continue
		}
		if _, ok := reg.byID[t.ID]; ok {
			continue
		}
		reg.tools = append(reg.tools, t)
		reg.byID[t.ID] = t
	}
	return reg
}

// All returns the tools in registry order. Callers must not mutate the
// returned slice.
func (r *Registry) All() []Tool {
	if r == nil {
		return nil
	}
	return r.tools
}

// Get returns the tool with the given id.
func (r *Registry) Get(id string) (Tool, bool) {
	if r == nil {
		return Tool{}, false
	}
	t, ok := r.byID[id]
	return t, ok
}

// Name resolves a tool id to its display name, falling back to the id
// itself when the tool is unknown.
func (r *Registry) Name(id string) string {
	if t, ok := r.Get(id); ok {
		return t.Name
	}
	return id
}

// Default returns the built-in integration catalog.
func Default() *Registry {
	return NewRegistry([]Tool{
		{ID: "slack", Name: "Slack", Category: "communication"},
		{ID: "gmail", Name: "Gmail", Category: "email"},
		{ID: "google-drive", Name: "Google Drive", Category: "storage"},
		{ID: "google-calendar", Name: "Google Calendar", Category: "calendar"},
		{ID: "jira", Name: "Jira", Category: "project-management"},
		{ID: "github", Name: "GitHub", Category: "development"},
		{ID: "notion", Name: "Notion", Category: "docs"},
		{ID: "confluence", Name: "Confluence", Category: "docs"},
		{ID: "zoom", Name: "Zoom", Category: "communication"},
		{ID: "asana", Name: "Asana", Category: "project-management"},
		{ID: "figma", Name: "Figma", Category: "design"},
		{ID: "salesforce", Name: "Salesforce", Category: "crm"},
	})
}
