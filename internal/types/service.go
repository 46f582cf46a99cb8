package types

// Category groups services for listing and discovery.
type Category string

const (
	CategoryAlgebra Category = "algebra"
	CategorySystem  Category = "system"
)

// Service describes a registered provider and the tools it exposes.
type Service struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     Category `json:"category"`
	Capabilities []string `json:"capabilities"`
	Tools        []Tool   `json:"tools"`
}

// Tool is one callable operation. IDs are namespaced "<service>.<tool>".
type Tool struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
	Returns     string      `json:"returns"`
}

// Parameter describes one tool argument.
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// Context carries per-request metadata into tool execution.
type Context struct {
	RequestID *string `json:"request_id,omitempty"`
}

// Result is the outcome of a tool call. Data carries the encoded symbolic
// value under "result"; Error is set only when Success is false.
type Result struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *string                `json:"error,omitempty"`
}
