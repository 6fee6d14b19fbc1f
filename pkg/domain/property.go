package domain

type ToolPropertyType string

const (
	ToolPropertyType_String  ToolPropertyType = "string"
	ToolPropertyType_Text    ToolPropertyType = "text"
	ToolPropertyType_Integer ToolPropertyType = "integer"
	ToolPropertyType_Boolean ToolPropertyType = "boolean"
	ToolPropertyType_Select  ToolPropertyType = "select"
	ToolPropertyType_File    ToolPropertyType = "file"
)

type ToolProperty struct {
	Key         string           `json:"key"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Required    bool             `json:"required"`
	Type        ToolPropertyType `json:"type"`
	Default     any              `json:"default,omitempty"`
	Placeholder string           `json:"placeholder,omitempty"`

	// For select types
	Options []ToolPropertyOption `json:"options,omitempty"`

	// For integer types
	NumberOpts *NumberPropertyOptions `json:"number_opts,omitempty"`
}

type ToolPropertyOption struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

type NumberPropertyOptions struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
