package formats

import (
	"bytes"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/devtoolbox/devtoolbox/pkg/tools/toolkit"
	"github.com/xuri/excelize/v2"
)

// base64 of the "PK\x03\x04" zip signature every xlsx file starts with
const xlsxBase64Signature = "UEsDB"

// XLSXParser reads one worksheet of a base64 encoded workbook. The first
// row holds the column names.
type XLSXParser struct{}

func NewXLSXParser() *XLSXParser {
	return &XLSXParser{}
}

func (p *XLSXParser) FormatName() Format {
	return FormatXLSX
}

func (p *XLSXParser) CanParse(input string) bool {
	trimmed := strings.TrimSpace(input)

	if strings.HasPrefix(trimmed, "data:application/vnd.openxmlformats-officedocument.spreadsheetml") {
		return true
	}

	return strings.HasPrefix(trimmed, xlsxBase64Signature)
}

func (p *XLSXParser) Parse(input string, opts ParseOptions) (any, error) {
	content, err := toolkit.DecodeFile(input)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, domain.WrapInvalidInput(err, "Invalid Excel file: "+err.Error())
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, domain.NewInvalidInputError("Invalid Excel file: workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, domain.WrapInvalidInput(err, "Invalid Excel file: "+err.Error())
	}

	if len(rows) == 0 {
		return nil, domain.NewInvalidInputError("Invalid Excel file: sheet %s is empty", sheet)
	}

	headers := normalizeHeaders(rows[0])

	records := make([]any, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := rowObject(headers, row)
		if record.Len() > 0 {
			records = append(records, record)
		}
	}

	if len(records) == 0 {
		return nil, domain.NewInvalidInputError("Invalid Excel file: sheet %s has no data rows", sheet)
	}

	return records, nil
}
