package outline

import (
	"fmt"
	"math"
	"strconv"
)

// drawMarker precedes every line geometry in the tool's argument list.
const drawMarker = "-draw"

// Segment is one radial line of the outline, in both angle and pixel space.
type Segment struct {
	StartAngle, EndAngle float64
	StartX, StartY       float64
	EndX, EndY           float64
}

// Normalize maps a value in [-1, 1] linearly onto [0, ImageSize].
// Values outside that range are not clamped.
func (c Config) Normalize(n float64) float64 {
	return (n + 1) * float64(c.ImageSize) / 2
}

// Segments divides a full turn into CountOfLines equal arcs and projects
// the end points of every arc into pixel space. The end angle of a segment
// is computed from the same integer step as the start angle of the next one,
// so consecutive segments share their boundary exactly.
func (c Config) Segments() []Segment {
	n := c.CountOfLines
	if n <= 0 {
		return nil
	}
	segs := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		start := angle(i, n)
		end := angle(i+1, n)

		segs = append(segs, Segment{
			StartAngle: start,
			EndAngle:   end,
			StartX:     c.Normalize(math.Sin(start)),
			StartY:     c.Normalize(math.Cos(start)),
			EndX:       c.Normalize(math.Sin(end)),
			EndY:       c.Normalize(math.Cos(end)),
		})
	}
	return segs
}

// angle returns the k-th of n equal divisions of a full turn.
func angle(k, n int) float64 {
	return 2 * math.Pi * float64(k) / float64(n)
}

// Line returns the segment geometry in the "line X1,Y1 X2,Y2" draw syntax.
func (s Segment) Line() string {
	return fmt.Sprintf("line %s,%s %s,%s",
		formatCoord(s.StartX), formatCoord(s.StartY),
		formatCoord(s.EndX), formatCoord(s.EndY),
	)
}

// DrawInstruction returns the marker/geometry token pair for the segment.
func (s Segment) DrawInstruction() []string {
	return []string{drawMarker, s.Line()}
}

// formatCoord prints the shortest decimal that round-trips to v.
// Coordinates are never rounded to whole pixels.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
