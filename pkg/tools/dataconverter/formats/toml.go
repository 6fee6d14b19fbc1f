package formats

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

var tomlLinePattern = regexp.MustCompile(`^(\[\[?[A-Za-z0-9_.\-" ]+\]\]?|[A-Za-z0-9_\-"]+(\.[A-Za-z0-9_\-"]+)*\s*=)`)

type TOMLParser struct{}

func NewTOMLParser() *TOMLParser {
	return &TOMLParser{}
}

func (p *TOMLParser) FormatName() Format {
	return FormatTOML
}

// CanParse looks at the first line that is not a comment: it must be a
// table header or a key/value assignment, and the whole input must decode.
func (p *TOMLParser) CanParse(input string) bool {
	for line := range strings.SplitSeq(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !tomlLinePattern.MatchString(line) {
			return false
		}

		var document map[string]any
		_, err := toml.Decode(input, &document)
		return err == nil
	}

	return false
}

func (p *TOMLParser) Parse(input string, opts ParseOptions) (any, error) {
	var document map[string]any

	if _, err := toml.Decode(input, &document); err != nil {
		return nil, domain.WrapInvalidInput(err, "Invalid TOML: "+strings.TrimPrefix(err.Error(), "toml: "))
	}

	return FromPlain(document), nil
}

type TOMLEncoder struct{}

func NewTOMLEncoder() *TOMLEncoder {
	return &TOMLEncoder{}
}

func (e *TOMLEncoder) FormatName() Format {
	return FormatTOML
}

func (e *TOMLEncoder) Encode(document any) (string, error) {
	table, ok := Plain(document).(map[string]any)
	if !ok {
		return "", domain.NewInvalidInputError("TOML output requires a top-level object")
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(table); err != nil {
		return "", domain.WrapInvalidInput(err, "TOML cannot represent this document: "+strings.TrimPrefix(err.Error(), "toml: "))
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}
