// Package plot renders a completed run: stacked terminal charts via
// asciigraph and stacked PNG/SVG panels via gonum/plot.
package plot

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

const (
	graphHeight = 10
	graphWidth  = 80
)

// Ascii renders the current and voltage series as two stacked terminal
// charts sharing the time axis.
func Ascii(times, current, voltage []float64) string {
	var b strings.Builder

	b.WriteString(asciigraph.Plot(current,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption("capacitor current I(t), A"),
	))
	b.WriteString("\n\n")
	b.WriteString(asciigraph.Plot(voltage,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption("capacitor voltage U(t), V"),
	))
	b.WriteString("\n")

	if len(times) > 0 {
		fmt.Fprintf(&b, "t = %g .. %g s, %d samples\n", times[0], times[len(times)-1], len(times))
	}

	return b.String()
}
