package domain

import (
	"context"
)

type ToolType string
type ToolActionType string
type Category string

const (
	Category_All        Category = "all"
	Category_JSON       Category = "json"
	Category_Encoding   Category = "encoding"
	Category_Text       Category = "text"
	Category_Generators Category = "generators"
	Category_Crypto     Category = "crypto"
	Category_Converters Category = "converters"
	Category_DateTime   Category = "datetime"
	Category_Web        Category = "web"
	Category_Image      Category = "image"
	Category_Developer  Category = "developer"
)

// CategoryInfo describes one entry of the catalog's category bar.
type CategoryInfo struct {
	ID   Category `json:"id"`
	Name string   `json:"name"`
}

// Categories lists every concrete category in display order.
var Categories = []CategoryInfo{
	{ID: Category_JSON, Name: "JSON"},
	{ID: Category_Encoding, Name: "Encoding"},
	{ID: Category_Text, Name: "Text"},
	{ID: Category_Generators, Name: "Generators"},
	{ID: Category_Crypto, Name: "Crypto"},
	{ID: Category_Converters, Name: "Converters"},
	{ID: Category_DateTime, Name: "Date & Time"},
	{ID: Category_Web, Name: "Web"},
	{ID: Category_Image, Name: "Image"},
	{ID: Category_Developer, Name: "Developer"},
}

func (c Category) IsValid() bool {
	if c == Category_All {
		return true
	}

	for _, info := range Categories {
		if info.ID == c {
			return true
		}
	}

	return false
}

const (
	ToolType_JSONFormatter       ToolType = "json-formatter"
	ToolType_JSONPath            ToolType = "json-path"
	ToolType_JQ                  ToolType = "jq"
	ToolType_JSONToTypeScript    ToolType = "json-to-typescript"
	ToolType_JSONToGo            ToolType = "json-to-go"
	ToolType_JSONToRust          ToolType = "json-to-rust"
	ToolType_JSONToZod           ToolType = "json-to-zod"
	ToolType_JSONToJSONSchema    ToolType = "json-to-json-schema"
	ToolType_JSONSchemaValidator ToolType = "json-schema-validator"

	ToolType_Base64       ToolType = "base64"
	ToolType_URLEncoder   ToolType = "url-encoder"
	ToolType_HTMLEntities ToolType = "html-entities"
	ToolType_JWTDecoder   ToolType = "jwt-decoder"
	ToolType_ROT13        ToolType = "rot13"
	ToolType_ImageBase64  ToolType = "image-base64"

	ToolType_CaseConverter ToolType = "case-converter"
	ToolType_Slugify       ToolType = "slugify"
	ToolType_TextStats     ToolType = "text-stats"
	ToolType_TextDiff      ToolType = "text-diff"
	ToolType_RegexTester   ToolType = "regex-tester"
	ToolType_LoremIpsum    ToolType = "lorem-ipsum"
	ToolType_StringEscape  ToolType = "string-escape"

	ToolType_UUIDGenerator     ToolType = "uuid-generator"
	ToolType_ULIDGenerator     ToolType = "ulid-generator"
	ToolType_NanoIDGenerator   ToolType = "nanoid-generator"
	ToolType_XIDGenerator      ToolType = "xid-generator"
	ToolType_APIKeyGenerator   ToolType = "api-key-generator"
	ToolType_PasswordGenerator ToolType = "password-generator"

	ToolType_HashGenerator   ToolType = "hash-generator"
	ToolType_Bcrypt          ToolType = "bcrypt"
	ToolType_RSAKeyGenerator ToolType = "rsa-key-generator"

	ToolType_JSONToYAML     ToolType = "json-to-yaml"
	ToolType_YAMLToJSON     ToolType = "yaml-to-json"
	ToolType_JSONToXML      ToolType = "json-to-xml"
	ToolType_XMLToJSON      ToolType = "xml-to-json"
	ToolType_CSVToJSON      ToolType = "csv-to-json"
	ToolType_JSONToCSV      ToolType = "json-to-csv"
	ToolType_JSONToTOML     ToolType = "json-to-toml"
	ToolType_TOMLToJSON     ToolType = "toml-to-json"
	ToolType_ExcelToJSON    ToolType = "excel-to-json"
	ToolType_NumberBase     ToolType = "number-base"
	ToolType_ColorConverter ToolType = "color-converter"
	ToolType_MarkdownHTML   ToolType = "markdown-preview"
	ToolType_HTMLToMarkdown ToolType = "html-to-markdown"

	ToolType_CronParser         ToolType = "cron-parser"
	ToolType_TimestampConverter ToolType = "timestamp-converter"

	ToolType_QRCodeGenerator ToolType = "qr-code-generator"
	ToolType_ImageResizer    ToolType = "image-resizer"
)

type Tool struct {
	ID          ToolType     `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    Category     `json:"category"`
	Keywords    []string     `json:"keywords"`
	Actions     []ToolAction `json:"actions"`
}

type ToolAction struct {
	ID          string         `json:"id"`
	ActionType  ToolActionType `json:"action_type"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Properties  []ToolProperty `json:"properties"`
	IsRandom    bool           `json:"is_random,omitempty"` // Output differs between invocations with equal input
}

// Action returns the action registered under actionType.
func (t Tool) Action(actionType ToolActionType) (ToolAction, bool) {
	for _, action := range t.Actions {
		if action.ActionType == actionType {
			return action, true
		}
	}

	return ToolAction{}, false
}

// Properties returns the declared inputs of an action, or nil if it does not exist.
func (t Tool) Properties(actionType ToolActionType) []ToolProperty {
	action, ok := t.Action(actionType)
	if !ok {
		return nil
	}

	return action.Properties
}

// DefaultAction is the first declared action, used by front ends when none is picked.
func (t Tool) DefaultAction() ToolAction {
	if len(t.Actions) == 0 {
		return ToolAction{}
	}

	return t.Actions[0]
}

// Item is one set of visible input fields, or one computed result.
type Item map[string]any

type ToolInput struct {
	ToolID     ToolType       `json:"tool_id"`
	ActionType ToolActionType `json:"action_type"`
	Items      []Item         `json:"items"`
}

type ToolOutput struct {
	Items []Item `json:"items"`
}

// First returns the first result item, or nil when the output is empty.
func (o ToolOutput) First() Item {
	if len(o.Items) == 0 {
		return nil
	}

	return o.Items[0]
}

type ToolExecutor interface {
	Execute(ctx context.Context, input ToolInput) (ToolOutput, error)
}

type ToolDeps struct {
	ParameterBinder ToolParameterBinder
}

type ToolCreator func(deps ToolDeps) ToolExecutor
