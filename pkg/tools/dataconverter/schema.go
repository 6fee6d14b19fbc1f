package dataconverter

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/devtoolbox/devtoolbox/pkg/tools/dataconverter/formats"
)

const (
	ToolActionType_Convert domain.ToolActionType = "convert"
)

var inputFormats = []formats.Format{
	formats.FormatAuto,
	formats.FormatJSON,
	formats.FormatNDJSON,
	formats.FormatCSV,
	formats.FormatTSV,
	formats.FormatYAML,
	formats.FormatXML,
	formats.FormatXLSX,
	formats.FormatTOML,
}

var outputFormats = []formats.Format{
	formats.FormatJSON,
	formats.FormatYAML,
	formats.FormatXML,
	formats.FormatCSV,
	formats.FormatTSV,
	formats.FormatTOML,
}

var (
	JSONToYAMLSchema  = converterSchema(domain.ToolType_JSONToYAML, "JSON to YAML", formats.FormatJSON, formats.FormatYAML)
	YAMLToJSONSchema  = converterSchema(domain.ToolType_YAMLToJSON, "YAML to JSON", formats.FormatYAML, formats.FormatJSON)
	JSONToXMLSchema   = converterSchema(domain.ToolType_JSONToXML, "JSON to XML", formats.FormatJSON, formats.FormatXML)
	XMLToJSONSchema   = converterSchema(domain.ToolType_XMLToJSON, "XML to JSON", formats.FormatXML, formats.FormatJSON)
	CSVToJSONSchema   = converterSchema(domain.ToolType_CSVToJSON, "CSV to JSON", formats.FormatCSV, formats.FormatJSON)
	JSONToCSVSchema   = converterSchema(domain.ToolType_JSONToCSV, "JSON to CSV", formats.FormatJSON, formats.FormatCSV)
	JSONToTOMLSchema  = converterSchema(domain.ToolType_JSONToTOML, "JSON to TOML", formats.FormatJSON, formats.FormatTOML)
	TOMLToJSONSchema  = converterSchema(domain.ToolType_TOMLToJSON, "TOML to JSON", formats.FormatTOML, formats.FormatJSON)
	ExcelToJSONSchema = converterSchema(domain.ToolType_ExcelToJSON, "Excel to JSON", formats.FormatXLSX, formats.FormatJSON)

	Schemas = []domain.Tool{
		JSONToYAMLSchema,
		YAMLToJSONSchema,
		JSONToXMLSchema,
		XMLToJSONSchema,
		CSVToJSONSchema,
		JSONToCSVSchema,
		JSONToTOMLSchema,
		TOMLToJSONSchema,
		ExcelToJSONSchema,
	}
)

var formatLabels = map[formats.Format]string{
	formats.FormatAuto:   "Detect automatically",
	formats.FormatJSON:   "JSON",
	formats.FormatNDJSON: "NDJSON",
	formats.FormatCSV:    "CSV",
	formats.FormatTSV:    "TSV",
	formats.FormatYAML:   "YAML",
	formats.FormatXML:    "XML",
	formats.FormatXLSX:   "Excel (xlsx)",
	formats.FormatTOML:   "TOML",
}

func formatOptions(list []formats.Format) []domain.ToolPropertyOption {
	options := make([]domain.ToolPropertyOption, len(list))
	for i, format := range list {
		options[i] = domain.ToolPropertyOption{Label: formatLabels[format], Value: string(format)}
	}
	return options
}

// converterSchema describes one converter page. All of them share the same
// action; only the default formats differ.
func converterSchema(id domain.ToolType, name string, from, to formats.Format) domain.Tool {
	input := domain.ToolProperty{
		Key:         "input",
		Name:        "Input",
		Description: formatLabels[from] + " document to convert",
		Required:    true,
		Type:        domain.ToolPropertyType_Text,
	}

	properties := []domain.ToolProperty{input}

	if from == formats.FormatXLSX {
		properties[0].Type = domain.ToolPropertyType_File
		properties[0].Description = "Excel workbook"
		properties = append(properties, domain.ToolProperty{
			Key:         "sheet",
			Name:        "Sheet",
			Description: "Worksheet to read; the first one when empty",
			Type:        domain.ToolPropertyType_String,
		})
	}

	properties = append(properties,
		domain.ToolProperty{
			Key:         "from",
			Name:        "From",
			Description: "Input format",
			Type:        domain.ToolPropertyType_Select,
			Default:     string(from),
			Options:     formatOptions(inputFormats),
		},
		domain.ToolProperty{
			Key:         "to",
			Name:        "To",
			Description: "Output format",
			Type:        domain.ToolPropertyType_Select,
			Default:     string(to),
			Options:     formatOptions(outputFormats),
		},
	)

	return domain.Tool{
		ID:          id,
		Name:        name,
		Description: "Convert " + formatLabels[from] + " to " + formatLabels[to] + " and between other structured data formats",
		Category:    domain.Category_Converters,
		Keywords:    []string{"convert", "converter", string(from), string(to), "data", "format"},
		Actions: []domain.ToolAction{
			{
				ID:          string(ToolActionType_Convert),
				Name:        "Convert",
				ActionType:  ToolActionType_Convert,
				Description: "Converts the input document to the output format",
				Properties:  properties,
			},
		},
	}
}
