package imageresizer

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/devtoolbox/devtoolbox/pkg/tools/toolkit"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(t *testing.T, width, height int) string {
	t.Helper()

	img := imaging.New(width, height, color.NRGBA{R: 200, G: 40, B: 90, A: 255})

	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))

	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func resize(t *testing.T, item domain.Item) (domain.Item, error) {
	t.Helper()

	tool := NewImageResizerTool(domain.ToolDeps{ParameterBinder: domain.NewJSONParameterBinder()})

	output, err := tool.Execute(context.Background(), domain.ToolInput{
		ToolID:     Schema.ID,
		ActionType: ToolActionType_Resize,
		Items:      []domain.Item{item},
	})
	if err != nil {
		return nil, err
	}

	return output.First(), nil
}

func TestImageResizer_Dimensions(t *testing.T) {
	file := testImage(t, 200, 100)

	tests := []struct {
		name          string
		width, height int
		expectedW     int
		expectedH     int
	}{
		{name: "width only keeps aspect", width: 100, expectedW: 100, expectedH: 50},
		{name: "height only keeps aspect", height: 25, expectedW: 50, expectedH: 25},
		{name: "both", width: 40, height: 40, expectedW: 40, expectedH: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := resize(t, domain.Item{"file": file, "width": tt.width, "height": tt.height})
			require.NoError(t, err)

			assert.Equal(t, tt.expectedW, result["width"])
			assert.Equal(t, tt.expectedH, result["height"])
			assert.Equal(t, 200, result["original_width"])
			assert.Equal(t, 100, result["original_height"])

			uri, err := toolkit.ParseDataURI(result["output"].(string))
			require.NoError(t, err)
			assert.Equal(t, "image/png", uri.MIMEType)

			decoded, _, err := image.Decode(bytes.NewReader(uri.Data))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedW, decoded.Bounds().Dx())
		})
	}
}

func TestImageResizer_JPEG(t *testing.T) {
	file := "data:image/png;base64," + testImage(t, 64, 64)

	result, err := resize(t, domain.Item{"file": file, "width": 32, "format": "jpeg", "quality": 80})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result["output"].(string), "data:image/jpeg;base64,"))
	assert.Equal(t, 32, result["height"])
}

func TestImageResizer_Errors(t *testing.T) {
	_, err := resize(t, domain.Item{"file": testImage(t, 10, 10)})
	assert.EqualError(t, err, "Width or height must be greater than 0")

	_, err = resize(t, domain.Item{"file": base64.StdEncoding.EncodeToString([]byte("not an image")), "width": 10})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, strings.HasPrefix(err.Error(), "Invalid image: "))

	_, err = resize(t, domain.Item{"file": testImage(t, 10, 10), "width": 9000})
	assert.EqualError(t, err, "Width must be between 0 and 8192")
}
