package outline

// BuiltinTool selects the in-process gg renderer instead of an external program.
const BuiltinTool = "builtin"

// Config holds the outline generator settings. It is read once and never mutated.
type Config struct {
	// ImageSize is the side of the square texture, in pixels.
	ImageSize int
	// LineWidth is handed verbatim to the renderer as the stroke width.
	LineWidth string
	// LineColor is any color name or hex value the renderer accepts.
	LineColor string
	// CountOfLines is the number of radial segments drawn around the circle.
	CountOfLines int

	Source      string
	Destination string

	// Tool is the external image program to invoke, or BuiltinTool.
	Tool string
}

// DefaultConfig returns the settings used for the snowmen tree texture,
// which expects exactly 16 outline segments.
func DefaultConfig() Config {
	return Config{
		ImageSize:    512,
		LineWidth:    "16",
		LineColor:    "black",
		CountOfLines: 16,
		Source:       "orig_treeTexture.png",
		Destination:  "treeTexture.png",
		Tool:         "convert",
	}
}
