package idgenerator

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

const (
	ToolActionType_Generate domain.ToolActionType = "generate"
	ToolActionType_Inspect  domain.ToolActionType = "inspect"
)

const DefaultNanoIDAlphabet = "_-0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var countProperty = domain.ToolProperty{
	Key:         "count",
	Name:        "Count",
	Description: "How many identifiers to generate",
	Type:        domain.ToolPropertyType_Integer,
	Default:     1,
	NumberOpts:  &domain.NumberPropertyOptions{Min: 1, Max: 500},
}

func inspectAction(what string) domain.ToolAction {
	return domain.ToolAction{
		ID:          string(ToolActionType_Inspect),
		Name:        "Inspect",
		ActionType:  ToolActionType_Inspect,
		Description: "Validates " + what + " and shows the information encoded in it",
		Properties: []domain.ToolProperty{
			{
				Key:         "id",
				Name:        "Identifier",
				Description: "The identifier to inspect",
				Required:    true,
				Type:        domain.ToolPropertyType_String,
			},
		},
	}
}

var (
	UUIDSchema = domain.Tool{
		ID:          domain.ToolType_UUIDGenerator,
		Name:        "UUID Generator",
		Description: "Generate random (v4) or time-ordered (v7) UUIDs",
		Category:    domain.Category_Generators,
		Keywords:    []string{"uuid", "guid", "v4", "v7", "unique", "identifier", "random"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Generate),
				Name:        "Generate",
				ActionType:  ToolActionType_Generate,
				Description: "Generates one or more UUIDs",
				IsRandom:    true,
				Properties: []domain.ToolProperty{
					{
						Key:         "version",
						Name:        "Version",
						Description: "UUID version",
						Type:        domain.ToolPropertyType_Select,
						Default:     "4",
						Options: []domain.ToolPropertyOption{
							{Label: "v4 (random)", Value: "4"},
							{Label: "v7 (time ordered)", Value: "7"},
						},
					},
					countProperty,
					{
						Key:         "uppercase",
						Name:        "Uppercase",
						Description: "Use upper-case hex digits",
						Type:        domain.ToolPropertyType_Boolean,
						Default:     false,
					},
					{
						Key:         "hyphens",
						Name:        "Hyphens",
						Description: "Keep the hyphens between groups",
						Type:        domain.ToolPropertyType_Boolean,
						Default:     true,
					},
				},
			},
			inspectAction("a UUID"),
		},
	}

	ULIDSchema = domain.Tool{
		ID:          domain.ToolType_ULIDGenerator,
		Name:        "ULID Generator",
		Description: "Generate lexicographically sortable ULIDs",
		Category:    domain.Category_Generators,
		Keywords:    []string{"ulid", "sortable", "unique", "identifier", "crockford", "base32"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Generate),
				Name:        "Generate",
				ActionType:  ToolActionType_Generate,
				Description: "Generates 26 character Crockford base32 ULIDs",
				IsRandom:    true,
				Properties:  []domain.ToolProperty{countProperty},
			},
			inspectAction("a ULID"),
		},
	}

	NanoIDSchema = domain.Tool{
		ID:          domain.ToolType_NanoIDGenerator,
		Name:        "NanoID Generator",
		Description: "Generate compact URL friendly identifiers with a custom alphabet and size",
		Category:    domain.Category_Generators,
		Keywords:    []string{"nanoid", "nano", "id", "short", "unique", "identifier", "url"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Generate),
				Name:        "Generate",
				ActionType:  ToolActionType_Generate,
				Description: "Generates identifiers of exactly the requested size",
				IsRandom:    true,
				Properties: []domain.ToolProperty{
					{
						Key:         "size",
						Name:        "Size",
						Description: "Number of characters",
						Type:        domain.ToolPropertyType_Integer,
						Default:     21,
						NumberOpts:  &domain.NumberPropertyOptions{Min: 2, Max: 256},
					},
					{
						Key:         "alphabet",
						Name:        "Alphabet",
						Description: "Characters to draw from",
						Type:        domain.ToolPropertyType_String,
						Default:     DefaultNanoIDAlphabet,
					},
					countProperty,
				},
			},
		},
	}

	XIDSchema = domain.Tool{
		ID:          domain.ToolType_XIDGenerator,
		Name:        "XID Generator",
		Description: "Generate globally unique, sortable 20 character XIDs",
		Category:    domain.Category_Generators,
		Keywords:    []string{"xid", "mongo", "objectid", "unique", "identifier", "sortable"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Generate),
				Name:        "Generate",
				ActionType:  ToolActionType_Generate,
				Description: "Generates XIDs",
				IsRandom:    true,
				Properties:  []domain.ToolProperty{countProperty},
			},
			inspectAction("an XID"),
		},
	}
)
