package outline

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"
)

// Canvas draws the outline in process with gg. It honors the same contract
// as the external tool: open the source, stroke the segments, save the result.
type Canvas struct{}

// Render strokes the outline over the source image and saves it to the
// destination, in the format implied by the destination extension.
func (c *Canvas) Render(cfg Config) error {
	strokeColor, err := ParseColor(cfg.LineColor)
	if err != nil {
		return err
	}
	width, err := strconv.ParseFloat(strings.TrimSpace(cfg.LineWidth), 64)
	if err != nil {
		return fmt.Errorf("invalid stroke width %q: %w", cfg.LineWidth, err)
	}

	src, err := imaging.Open(cfg.Source)
	if err != nil {
		return fmt.Errorf("unable to open the source image: %w", err)
	}

	dc := gg.NewContextForImage(src)
	dc.SetLineWidth(width)
	dc.SetLineCapButt()
	dc.SetStrokeStyle(gg.NewSolidPattern(strokeColor))

	for _, s := range cfg.Segments() {
		dc.DrawLine(s.StartX, s.StartY, s.EndX, s.EndY)
		dc.Stroke()
	}

	if err := imaging.Save(dc.Image(), cfg.Destination); err != nil {
		return fmt.Errorf("unable to save the destination image: %w", err)
	}
	return nil
}

// ParseColor resolves an SVG color keyword (e.g. "black", "darkgreen") or a
// hex triplet in the #rgb, #rrggbb or #rrggbbaa form.
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") {
		return parseHex(name[1:])
	}
	return nil, fmt.Errorf("unknown color %q", s)
}

func parseHex(hex string) (color.Color, error) {
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		fallthrough
	case 6:
		hex += "ff"
	case 8:
	default:
		return nil, errors.New("hex color must have 3, 6 or 8 digits")
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
