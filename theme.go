package plot

import (
	"fmt"
	"strconv"
)

// Gradient samples colors between two stops. Hue scales (scatter hue
// grouping) map category indexes onto it.
type Gradient struct {
	start [3]float64
	end   [3]float64
}

// Rocket is the default hue gradient, warm to violet.
var Rocket = NewGradient("#e56a54", "#6f42c1")

func NewGradient(start, end string) Gradient {
	return Gradient{
		start: parseHex(start),
		end:   parseHex(end),
	}
}

// Sample interpolates at t clamped to [0, 1] and returns a hex color.
func (g Gradient) Sample(t float64) string {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	var rgb [3]uint8
	for i := range rgb {
		v := g.start[i] + (g.end[i]-g.start[i])*t
		rgb[i] = uint8(v*255 + 0.5)
	}
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}

func parseHex(color string) [3]float64 {
	var rgb [3]float64
	if len(color) != 7 || color[0] != '#' {
		return rgb
	}
	for i := range rgb {
		v, err := strconv.ParseUint(color[1+i*2:3+i*2], 16, 8)
		if err != nil {
			return [3]float64{}
		}
		rgb[i] = float64(v) / 255
	}
	return rgb
}
