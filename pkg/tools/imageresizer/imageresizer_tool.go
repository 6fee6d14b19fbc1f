package imageresizer

import (
	"bytes"
	"context"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/devtoolbox/devtoolbox/pkg/tools/toolkit"
	"github.com/disintegration/imaging"
)

type ImageResizerTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewImageResizerTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &ImageResizerTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Resize, tool.Resize)

	return tool
}

func (t *ImageResizerTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type ResizeParams struct {
	File    string `json:"file"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Format  string `json:"format"`
	Quality int    `json:"quality"`
}

func (t *ImageResizerTool) Resize(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := ResizeParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Resize))
	if err != nil {
		return nil, err
	}

	if p.Width == 0 && p.Height == 0 {
		return nil, domain.NewInvalidInputError("Width or height must be greater than 0")
	}

	data, err := toolkit.DecodeFile(p.File)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, domain.WrapInvalidInput(err, "Invalid image: "+err.Error())
	}

	original := img.Bounds()

	resized := imaging.Resize(img, p.Width, p.Height, imaging.Lanczos)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format, mimeType := imaging.PNG, "image/png"
	if p.Format == FormatJPEG {
		format, mimeType = imaging.JPEG, "image/jpeg"
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(p.Quality)); err != nil {
		return nil, domain.NewComputationError(err, "Failed to encode image: %s", err)
	}

	bounds := resized.Bounds()

	return domain.Item{
		"output":          toolkit.DataURI{MIMEType: mimeType, Data: buf.Bytes()}.String(),
		"width":           bounds.Dx(),
		"height":          bounds.Dy(),
		"original_width":  original.Dx(),
		"original_height": original.Dy(),
		"format":          p.Format,
		"size":            buf.Len(),
	}, nil
}
