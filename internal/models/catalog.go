package models

// ToolDefinition describes one remotely invocable tool for the
// GET /api/mcp/tools catalog endpoint.
type ToolDefinition struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Params      []ParamDefinition `json:"params,omitempty"`
}

// ParamDefinition describes a single tool parameter.
type ParamDefinition struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Required    bool     `json:"required,omitempty"`
	Default     string   `json:"default,omitempty"`
	Enum        []string `json:"enum,omitempty"`
}
