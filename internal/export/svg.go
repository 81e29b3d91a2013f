package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/vthrow/internal/trajectory"
)

// SVG writes the height-over-time curve of tr as an SVG document.
func SVG(w io.Writer, tr *trajectory.Trajectory, width, height int, strokeColor string) error {
	if tr.Len() < 2 {
		return ErrTooFewPoints
	}

	minX, maxX := tr.At(0).T, tr.At(0).T
	minY, maxY := tr.At(0).Y, tr.At(0).Y
	for _, p := range tr.Points {
		minX, maxX = min(minX, p.T), max(maxX, p.T)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	// keep the ground in view
	minY = min(minY, 0)

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	sy := func(y float64) float64 { return float64(height) - (y-minY)/rangeY*float64(height) }

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#444466" stroke-width="1"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, sy(0), width, sy(0), strokeColor)

	for i, p := range tr.Points {
		x := (p.T - minX) / rangeX * float64(width)
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, sy(p.Y))
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, sy(p.Y))
		}
	}

	sb.WriteString(`"/>
</svg>
`)
	_, err := io.WriteString(w, sb.String())
	return err
}
