package colorconverter

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/devtoolbox/devtoolbox/pkg/domain"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	hexPattern      = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	functionPattern = regexp.MustCompile(`^(?i)(rgba?|hsla?|hsva?)\(\s*([^)]*?)\s*\)$`)
	argSeparator    = regexp.MustCompile(`\s*[,/]\s*|\s+`)
)

type ColorConverterTool struct {
	binder        domain.ToolParameterBinder
	actionManager *domain.ToolActionManager
}

func NewColorConverterTool(deps domain.ToolDeps) domain.ToolExecutor {
	tool := &ColorConverterTool{
		binder: deps.ParameterBinder,
	}

	tool.actionManager = domain.NewToolActionManager().
		AddPerItem(ToolActionType_Convert, tool.Convert)

	return tool
}

func (t *ColorConverterTool) Execute(ctx context.Context, input domain.ToolInput) (domain.ToolOutput, error) {
	return t.actionManager.Run(ctx, input.ActionType, input)
}

type ConvertParams struct {
	Color string `json:"color"`
}

// ParsedColor is a color with its opacity in [0, 1].
type ParsedColor struct {
	Color colorful.Color
	Alpha float64
}

func (t *ColorConverterTool) Convert(ctx context.Context, input domain.ToolInput, item domain.Item) (domain.Item, error) {
	p := ConvertParams{}

	err := t.binder.BindToStruct(ctx, item, &p, Schema.Properties(ToolActionType_Convert))
	if err != nil {
		return nil, err
	}

	parsed, err := Parse(p.Color)
	if err != nil {
		return nil, err
	}

	c := parsed.Color.Clamped()
	r, g, b := c.RGB255()
	h, s, l := c.Hsl()
	hv, sv, v := c.Hsv()

	hex := c.Hex()
	rgb := fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	hsl := fmt.Sprintf("hsl(%s, %s%%, %s%%)", round(h), round(s*100), round(l*100))
	hsv := fmt.Sprintf("hsv(%s, %s%%, %s%%)", round(hv), round(sv*100), round(v*100))

	result := domain.Item{
		"hex":            hex,
		"rgb":            rgb,
		"hsl":            hsl,
		"hsv":            hsv,
		"alpha":          parsed.Alpha,
		"contrast_white": contrast(c, colorful.Color{R: 1, G: 1, B: 1}),
		"contrast_black": contrast(c, colorful.Color{}),
		"output":         strings.Join([]string{"HEX: " + hex, "RGB: " + rgb, "HSL: " + hsl, "HSV: " + hsv}, "\n"),
	}

	if parsed.Alpha < 1 {
		result["hex_alpha"] = fmt.Sprintf("%s%02x", hex, uint8(parsed.Alpha*255+0.5))
	}

	return result, nil
}

// Parse reads hex notation (with or without #, 3 to 8 digits) or the CSS
// rgb(), rgba(), hsl(), hsla() functions and hsv().
func Parse(input string) (ParsedColor, error) {
	s := strings.TrimSpace(input)

	if m := hexPattern.FindStringSubmatch(s); m != nil {
		return parseHex(m[1])
	}

	m := functionPattern.FindStringSubmatch(s)
	if m == nil {
		return ParsedColor{}, domain.NewInvalidInputError("Invalid color: use hex, rgb(), hsl() or hsv() notation")
	}

	name := strings.TrimSuffix(strings.ToLower(m[1]), "a")
	args := argSeparator.Split(m[2], -1)
	if len(args) != 3 && len(args) != 4 {
		return ParsedColor{}, domain.NewInvalidInputError("Invalid color: %s() takes 3 or 4 values", name)
	}

	alpha := 1.0
	if len(args) == 4 {
		a, err := component(args[3], 1, 1)
		if err != nil {
			return ParsedColor{}, err
		}
		alpha = a
	}

	switch name {
	case "rgb":
		var values [3]float64
		for i := range values {
			v, err := component(args[i], 255, 255)
			if err != nil {
				return ParsedColor{}, err
			}
			values[i] = v / 255
		}
		return ParsedColor{Color: colorful.Color{R: values[0], G: values[1], B: values[2]}, Alpha: alpha}, nil
	default:
		hue, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
		if err != nil {
			return ParsedColor{}, domain.NewInvalidInputError("Invalid color: %q is not a hue", args[0])
		}
		hue = math.Mod(math.Mod(hue, 360)+360, 360)

		a, err := component(args[1], 100, 1)
		if err != nil {
			return ParsedColor{}, err
		}
		b, err := component(args[2], 100, 1)
		if err != nil {
			return ParsedColor{}, err
		}

		if name == "hsl" {
			return ParsedColor{Color: colorful.Hsl(hue, a, b), Alpha: alpha}, nil
		}
		return ParsedColor{Color: colorful.Hsv(hue, a, b), Alpha: alpha}, nil
	}
}

func parseHex(digits string) (ParsedColor, error) {
	alpha := 1.0

	switch len(digits) {
	case 4:
		a, _ := strconv.ParseUint(digits[3:], 16, 8)
		alpha = float64(a) / 15
		digits = digits[:3]
	case 8:
		a, _ := strconv.ParseUint(digits[6:], 16, 8)
		alpha = float64(a) / 255
		digits = digits[:6]
	}

	c, err := colorful.Hex("#" + strings.ToLower(digits))
	if err != nil {
		return ParsedColor{}, domain.WrapInvalidInput(err, "Invalid color: "+err.Error())
	}

	return ParsedColor{Color: c, Alpha: alpha}, nil
}

// component parses a number, or a percentage of max, and scales it to [0, scale].
func component(arg string, max, scale float64) (float64, error) {
	percent := strings.HasSuffix(arg, "%")

	v, err := strconv.ParseFloat(strings.TrimSuffix(arg, "%"), 64)
	if err != nil {
		return 0, domain.NewInvalidInputError("Invalid color: %q is not a number", arg)
	}

	if percent {
		v = v / 100 * max
	}

	if v < 0 || v > max {
		return 0, domain.NewInvalidInputError("Invalid color: %q is out of range", arg)
	}

	return v / max * scale, nil
}

// contrast is the WCAG 2 contrast ratio of two colors, rounded to two decimals.
func contrast(a, b colorful.Color) float64 {
	la, lb := luminance(a), luminance(b)
	if la < lb {
		la, lb = lb, la
	}

	return math.Round((la+0.05)/(lb+0.05)*100) / 100
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func round(v float64) string {
	return strconv.FormatFloat(math.Round(v), 'f', -1, 64)
}
