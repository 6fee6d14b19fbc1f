package imagebase64

import (
	"bytes"
	"context"
	"encoding/base64"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/devtoolbox/devtoolbox/pkg/tools/toolkit"
	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

type ImageBase64Tool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewImageBase64Tool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &ImageBase64Tool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Encode, tool.Encode).
		AddPerItem(ToolActionType_Decode, tool.Decode)

	return tool
}

func (t *ImageBase64Tool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type EncodeParams struct {
	File string `json:"file"`
}

type DecodeParams struct {
	DataURI string `json:"data_uri"`
}

func (t *ImageBase64Tool) Encode(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := EncodeParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Encode))
	if err != nil {
		return nil, err
	}

	data, err := toolkit.DecodeFile(p.File)
	if err != nil {
		return nil, err
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return nil, domain.NewInvalidInputError("Unsupported file type %s: expected an image", mime.String())
	}

	uri := toolkit.DataURI{MIMEType: mime.String(), Data: data}

	result := domain.Item{
		"output":    uri.String(),
		"mime_type": mime.String(),
		"extension": mime.Extension(),
		"size":      len(data),
		"base64":    base64.StdEncoding.EncodeToString(data),
	}

	addDimensions(result, data)

	return result, nil
}

func (t *ImageBase64Tool) Decode(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := DecodeParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Decode))
	if err != nil {
		return nil, err
	}

	uri, err := toolkit.ParseDataURI(p.DataURI)
	if err != nil {
		return nil, err
	}

	detected := mimetype.Detect(uri.Data)

	result := domain.Item{
		"output":        uri.String(),
		"mime_type":     uri.MIMEType,
		"detected_type": detected.String(),
		"matches":       detected.Is(uri.MIMEType),
		"size":          len(uri.Data),
	}

	addDimensions(result, uri.Data)

	return result, nil
}

// addDimensions sets width and height when the data is an image the
// decoder understands. SVG and other vector formats are left without them.
func addDimensions(result domain.Item, data []byte) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return
	}

	bounds := img.Bounds()
	result["width"] = bounds.Dx()
	result["height"] = bounds.Dy()
}
