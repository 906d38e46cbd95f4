package model

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Endpoint represents one documented API operation as produced by apiDoc (api_data.json)
type Endpoint struct {
	// HTTP Method in any case (get, POST, ...)
	Type string `json:"type"`

	// Request path, with or without a leading slash (e.g., "user/:id")
	URL string `json:"url"`

	// Short title from @api
	Title string `json:"title,omitempty"`

	// Detailed description from @apiDescription
	Description string `json:"description,omitempty"`

	// apiDoc bookkeeping, not rendered in Blueprint output
	Group   string `json:"group,omitempty"`
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`

	// Request parameters grouped by apiDoc group name
	Parameter *ParameterSection `json:"parameter,omitempty"`

	// Response definitions
	Success *ResponseSpec `json:"success,omitempty"`
	Error   *ResponseSpec `json:"error,omitempty"`
}

// ParameterSection holds the @apiParam groups of an endpoint
type ParameterSection struct {
	Fields map[string][]ParameterField `json:"fields,omitempty"`
}

// DefaultParameterGroup is the group apiDoc assigns to @apiParam without an explicit group
const DefaultParameterGroup = "Parameter"

// Params returns the default parameter group, or nil when absent
func (e *Endpoint) Params() []ParameterField {
	if e.Parameter == nil || e.Parameter.Fields == nil {
		return nil
	}
	return e.Parameter.Fields[DefaultParameterGroup]
}

// ParameterField represents a path or query parameter
type ParameterField struct {
	// Parameter name, may carry a leading colon (":id")
	Field string `json:"field"`

	// Parameter type (Number, String, ...)
	Type string `json:"type,omitempty"`

	Optional     bool   `json:"optional,omitempty"`
	DefaultValue string `json:"defaultValue,omitempty"`
	Description  string `json:"description"`
}

// ResponseSpec represents a success or error response definition.
// Fields keeps the group labels ("200 OK", "Error 4xx") in document order.
type ResponseSpec struct {
	Fields   *orderedmap.OrderedMap[string, []AttributeField] `json:"fields,omitempty"`
	Examples []Example                                       `json:"examples,omitempty"`
}

// Groups returns the number of response groups
func (r *ResponseSpec) Groups() int {
	if r == nil || r.Fields == nil {
		return 0
	}
	return r.Fields.Len()
}

// AttributeField represents one response field addressed by a dotted path
type AttributeField struct {
	// Dot-delimited path (e.g., "data.user.id")
	Field string `json:"field"`

	Type        string `json:"type,omitempty"`
	Description string `json:"description"`
}

// Example represents a literal body example
type Example struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
	Type    string `json:"type,omitempty"`
}

// NewResponseSpec creates an empty response definition
func NewResponseSpec() *ResponseSpec {
	return &ResponseSpec{
		Fields: orderedmap.New[string, []AttributeField](),
	}
}

// AddGroup appends a response group, keeping insertion order
func (r *ResponseSpec) AddGroup(label string, fields []AttributeField) *ResponseSpec {
	if r.Fields == nil {
		r.Fields = orderedmap.New[string, []AttributeField]()
	}
	r.Fields.Set(label, fields)
	return r
}
