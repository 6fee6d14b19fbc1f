package formats

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

// DelimitedParser reads CSV-like text. The first record holds the column
// names and every following record becomes an object.
type DelimitedParser struct {
	format    Format
	delimiter rune
}

func NewDelimitedParser(format Format, delimiter rune) *DelimitedParser {
	return &DelimitedParser{format: format, delimiter: delimiter}
}

func (p *DelimitedParser) FormatName() Format {
	return p.format
}

func (p *DelimitedParser) CanParse(input string) bool {
	header := firstLine(input)
	if !strings.ContainsRune(header, p.delimiter) {
		return false
	}

	switch header[0] {
	case '{', '[', '<', '-', '#':
		return false
	}

	if strings.Contains(header, ": ") {
		return false
	}

	records, err := p.reader(input).ReadAll()
	return err == nil && len(records) > 1
}

func (p *DelimitedParser) Parse(input string, opts ParseOptions) (any, error) {
	reader := p.reader(input)

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, p.invalid(nil, "input is empty")
		}
		return nil, p.invalid(err, "failed to read header: %s", err)
	}

	headers = normalizeHeaders(headers)

	rows := make([]any, 0)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, p.invalid(err, "failed to parse line %d: %s", line, err)
		}

		rows = append(rows, rowObject(headers, record))
	}

	if len(rows) == 0 {
		return nil, p.invalid(nil, "no data rows")
	}

	return rows, nil
}

func (p *DelimitedParser) reader(input string) *csv.Reader {
	reader := csv.NewReader(strings.NewReader(input))
	reader.Comma = p.delimiter
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	return reader
}

func (p *DelimitedParser) invalid(err error, format string, args ...any) error {
	message := fmt.Sprintf("Invalid %s: %s", strings.ToUpper(string(p.format)), fmt.Sprintf(format, args...))
	if err == nil {
		return domain.NewInvalidInputError("%s", message)
	}
	return domain.WrapInvalidInput(err, message)
}

func normalizeHeaders(headers []string) []string {
	normalized := make([]string, len(headers))
	for i, header := range headers {
		header = strings.TrimSpace(strings.TrimPrefix(header, "\ufeff"))
		if header == "" {
			header = fmt.Sprintf("column_%d", i+1)
		}
		normalized[i] = header
	}
	return normalized
}

func rowObject(headers, record []string) *Object {
	row := NewObject()
	for i, value := range record {
		if i < len(headers) {
			row.Set(headers[i], strings.TrimSpace(value))
		}
	}
	return row
}

type DelimitedEncoder struct {
	format    Format
	delimiter rune
}

func NewDelimitedEncoder(format Format, delimiter rune) *DelimitedEncoder {
	return &DelimitedEncoder{format: format, delimiter: delimiter}
}

func (e *DelimitedEncoder) FormatName() Format {
	return e.format
}

// Encode writes an array of objects, or a single object, as a table. The
// columns are the union of all keys in first-seen order.
func (e *DelimitedEncoder) Encode(document any) (string, error) {
	var records []any

	switch v := document.(type) {
	case []any:
		records = v
	case *Object:
		records = []any{v}
	default:
		return "", domain.NewInvalidInputError("%s output requires an array of objects", strings.ToUpper(string(e.format)))
	}

	columns := make([]string, 0)
	seen := make(map[string]bool)

	rows := make([]*Object, 0, len(records))
	for i, record := range records {
		row, ok := record.(*Object)
		if !ok {
			return "", domain.NewInvalidInputError("%s output requires an array of objects: element %d is not an object", strings.ToUpper(string(e.format)), i)
		}

		for _, key := range row.Keys() {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}

		rows = append(rows, row)
	}

	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)
	writer.Comma = e.delimiter

	if err := writer.Write(columns); err != nil {
		return "", domain.NewComputationError(err, "Failed to write header: %s", err)
	}

	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, column := range columns {
			value, _ := row.Get(column)
			cells[i] = cellText(value)
		}

		if err := writer.Write(cells); err != nil {
			return "", domain.NewComputationError(err, "Failed to write row: %s", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", domain.NewComputationError(err, "Failed to write rows: %s", err)
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}

// cellText renders a scalar as text and nested values as compact JSON.
func cellText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case *Object, []any:
		raw, err := marshalJSON(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(raw)
	}
	return fmt.Sprint(value)
}
