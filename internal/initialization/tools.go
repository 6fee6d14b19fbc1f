package initialization

import (
	"fmt"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/devtoolbox/devtoolbox/pkg/tools/base64"
	"github.com/devtoolbox/devtoolbox/pkg/tools/bcrypthash"
	"github.com/devtoolbox/devtoolbox/pkg/tools/caseconverter"
	"github.com/devtoolbox/devtoolbox/pkg/tools/colorconverter"
	"github.com/devtoolbox/devtoolbox/pkg/tools/cronparser"
	"github.com/devtoolbox/devtoolbox/pkg/tools/dataconverter"
	"github.com/devtoolbox/devtoolbox/pkg/tools/hashgenerator"
	"github.com/devtoolbox/devtoolbox/pkg/tools/htmlentities"
	"github.com/devtoolbox/devtoolbox/pkg/tools/htmlmarkdown"
	"github.com/devtoolbox/devtoolbox/pkg/tools/idgenerator"
	"github.com/devtoolbox/devtoolbox/pkg/tools/imagebase64"
	"github.com/devtoolbox/devtoolbox/pkg/tools/imageresizer"
	"github.com/devtoolbox/devtoolbox/pkg/tools/jq"
	"github.com/devtoolbox/devtoolbox/pkg/tools/jsonformatter"
	"github.com/devtoolbox/devtoolbox/pkg/tools/jsonpath"
	"github.com/devtoolbox/devtoolbox/pkg/tools/jwtdecoder"
	"github.com/devtoolbox/devtoolbox/pkg/tools/keygenerator"
	"github.com/devtoolbox/devtoolbox/pkg/tools/loremipsum"
	"github.com/devtoolbox/devtoolbox/pkg/tools/markdownpreview"
	"github.com/devtoolbox/devtoolbox/pkg/tools/numberbase"
	"github.com/devtoolbox/devtoolbox/pkg/tools/qrcode"
	"github.com/devtoolbox/devtoolbox/pkg/tools/regextester"
	"github.com/devtoolbox/devtoolbox/pkg/tools/rot13"
	"github.com/devtoolbox/devtoolbox/pkg/tools/rsakeygen"
	"github.com/devtoolbox/devtoolbox/pkg/tools/schemavalidator"
	"github.com/devtoolbox/devtoolbox/pkg/tools/slugify"
	"github.com/devtoolbox/devtoolbox/pkg/tools/stringescape"
	"github.com/devtoolbox/devtoolbox/pkg/tools/textdiff"
	"github.com/devtoolbox/devtoolbox/pkg/tools/textstats"
	"github.com/devtoolbox/devtoolbox/pkg/tools/timestamp"
	"github.com/devtoolbox/devtoolbox/pkg/tools/typegen"
	"github.com/devtoolbox/devtoolbox/pkg/tools/urlencoder"
)

type toolRegisterParams struct {
	Schema     domain.Tool
	NewCreator domain.ToolCreator
}

// toolRegisterParamsList is the catalog in display order.
var toolRegisterParamsList = []toolRegisterParams{
	// JSON
	{Schema: jsonformatter.Schema, NewCreator: jsonformatter.NewJSONFormatterTool},
	{Schema: jsonpath.Schema, NewCreator: jsonpath.NewJSONPathTool},
	{Schema: jq.Schema, NewCreator: jq.NewJQTool},
	{Schema: typegen.TypeScriptSchema, NewCreator: typegen.NewTypeScriptTool},
	{Schema: typegen.GoSchema, NewCreator: typegen.NewGoTool},
	{Schema: typegen.RustSchema, NewCreator: typegen.NewRustTool},
	{Schema: typegen.ZodSchema, NewCreator: typegen.NewZodTool},
	{Schema: typegen.JSONSchemaSchema, NewCreator: typegen.NewJSONSchemaTool},
	{Schema: schemavalidator.Schema, NewCreator: schemavalidator.NewSchemaValidatorTool},

	// Encoding
	{Schema: base64.Schema, NewCreator: base64.NewBase64Tool},
	{Schema: urlencoder.Schema, NewCreator: urlencoder.NewURLEncoderTool},
	{Schema: htmlentities.Schema, NewCreator: htmlentities.NewHTMLEntitiesTool},
	{Schema: jwtdecoder.Schema, NewCreator: jwtdecoder.NewJWTDecoderTool},
	{Schema: rot13.Schema, NewCreator: rot13.NewROT13Tool},
	{Schema: imagebase64.Schema, NewCreator: imagebase64.NewImageBase64Tool},

	// Text
	{Schema: caseconverter.Schema, NewCreator: caseconverter.NewCaseConverterTool},
	{Schema: slugify.Schema, NewCreator: slugify.NewSlugifyTool},
	{Schema: textstats.Schema, NewCreator: textstats.NewTextStatsTool},
	{Schema: textdiff.Schema, NewCreator: textdiff.NewTextDiffTool},
	{Schema: regextester.Schema, NewCreator: regextester.NewRegexTesterTool},
	{Schema: loremipsum.Schema, NewCreator: loremipsum.NewLoremIpsumTool},
	{Schema: stringescape.Schema, NewCreator: stringescape.NewStringEscapeTool},

	// Generators
	{Schema: idgenerator.UUIDSchema, NewCreator: idgenerator.NewUUIDTool},
	{Schema: idgenerator.ULIDSchema, NewCreator: idgenerator.NewULIDTool},
	{Schema: idgenerator.NanoIDSchema, NewCreator: idgenerator.NewNanoIDTool},
	{Schema: idgenerator.XIDSchema, NewCreator: idgenerator.NewXIDTool},
	{Schema: keygenerator.APIKeySchema, NewCreator: keygenerator.NewAPIKeyTool},
	{Schema: keygenerator.PasswordSchema, NewCreator: keygenerator.NewPasswordTool},

	// Crypto
	{Schema: hashgenerator.Schema, NewCreator: hashgenerator.NewHashGeneratorTool},
	{Schema: bcrypthash.Schema, NewCreator: bcrypthash.NewBcryptTool},
	{Schema: rsakeygen.Schema, NewCreator: rsakeygen.NewRSAKeyGeneratorTool},

	// Converters
	{Schema: dataconverter.JSONToYAMLSchema, NewCreator: dataconverter.NewDataConverterTool(dataconverter.JSONToYAMLSchema)},
	{Schema: dataconverter.YAMLToJSONSchema, NewCreator: dataconverter.NewDataConverterTool(dataconverter.YAMLToJSONSchema)},
	{Schema: dataconverter.JSONToXMLSchema, NewCreator: dataconverter.NewDataConverterTool(dataconverter.JSONToXMLSchema)},
	{Schema: dataconverter.XMLToJSONSchema, NewCreator: dataconverter.NewDataConverterTool(dataconverter.XMLToJSONSchema)},
	{Schema: dataconverter.CSVToJSONSchema, NewCreator: dataconverter.NewDataConverterTool(dataconverter.CSVToJSONSchema)},
	{Schema: dataconverter.JSONToCSVSchema, NewCreator: dataconverter.NewDataConverterTool(dataconverter.JSONToCSVSchema)},
	{Schema: dataconverter.JSONToTOMLSchema, NewCreator: dataconverter.NewDataConverterTool(dataconverter.JSONToTOMLSchema)},
	{Schema: dataconverter.TOMLToJSONSchema, NewCreator: dataconverter.NewDataConverterTool(dataconverter.TOMLToJSONSchema)},
	{Schema: dataconverter.ExcelToJSONSchema, NewCreator: dataconverter.NewDataConverterTool(dataconverter.ExcelToJSONSchema)},
	{Schema: numberbase.Schema, NewCreator: numberbase.NewNumberBaseTool},
	{Schema: colorconverter.Schema, NewCreator: colorconverter.NewColorConverterTool},
	{Schema: markdownpreview.Schema, NewCreator: markdownpreview.NewMarkdownPreviewTool},
	{Schema: htmlmarkdown.Schema, NewCreator: htmlmarkdown.NewHTMLMarkdownTool},

	// Date & Time
	{Schema: cronparser.Schema, NewCreator: cronparser.NewCronParserTool},
	{Schema: timestamp.Schema, NewCreator: timestamp.NewTimestampTool},

	// Web and image
	{Schema: qrcode.Schema, NewCreator: qrcode.NewQRCodeTool},
	{Schema: imageresizer.Schema, NewCreator: imageresizer.NewImageResizerTool},
}

func registerTools(registry domain.ToolRegistry, commonDeps domain.ToolDeps) error {
	for _, params := range toolRegisterParamsList {
		executor := params.NewCreator(commonDeps)

		if err := registry.Register(params.Schema, executor); err != nil {
			return fmt.Errorf("failed to register tool %s: %w", params.Schema.ID, err)
		}
	}

	return nil
}
