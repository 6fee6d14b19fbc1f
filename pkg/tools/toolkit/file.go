package toolkit

import (
	"encoding/base64"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
)

// DataURI is a parsed "data:" URI with a base64 payload.
type DataURI struct {
	MIMEType string
	Data     []byte
}

func (d DataURI) String() string {
	return "data:" + d.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(d.Data)
}

// DecodeFile reads the content of a file property. Front ends send files as
// standard base64, optionally wrapped in a data URI.
func DecodeFile(value string) ([]byte, error) {
	value = strings.TrimSpace(value)

	if strings.HasPrefix(value, "data:") {
		uri, err := ParseDataURI(value)
		if err != nil {
			return nil, err
		}
		return uri.Data, nil
	}

	data, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, domain.WrapInvalidInput(err, "Invalid file: content must be base64 encoded")
	}

	return data, nil
}

func ParseDataURI(value string) (DataURI, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(value), "data:")
	if !ok {
		return DataURI{}, domain.NewInvalidInputError("Invalid data URI: must start with data:")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return DataURI{}, domain.NewInvalidInputError("Invalid data URI: missing comma before the data")
	}

	mimeType, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return DataURI{}, domain.NewInvalidInputError("Invalid data URI: only base64 data is supported")
	}

	data, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(payload), ""))
	if err != nil {
		return DataURI{}, domain.WrapInvalidInput(err, "Invalid data URI: payload is not valid base64")
	}

	if mimeType == "" {
		mimeType = "text/plain"
	}

	return DataURI{MIMEType: mimeType, Data: data}, nil
}
