package plot

import (
	"math"
)

// Marker is the glyph drawn at each scatter point. Paths are built on
// the unit square centered at the origin and scaled per point.
type Marker int

const (
	MarkerCircle Marker = iota
	MarkerPlus
	MarkerCross
	MarkerStar
	MarkerSquare
	MarkerTriangle
	MarkerDiamond
	MarkerHexagon
	MarkerOctagon
)

// sqrt(3)/4, half height of the unit equilateral triangle.
const triY = 1.7320508075688772 / 4

func (m Marker) Path() Path {
	const inset = 0.15
	var p Path
	switch m {
	case MarkerPlus:
		p.MoveTo(-inset, -0.5)
		p.LineTo(inset, -0.5)
		p.LineTo(inset, -inset)
		p.LineTo(0.5, -inset)
		p.LineTo(0.5, inset)
		p.LineTo(inset, inset)
		p.LineTo(inset, 0.5)
		p.LineTo(-inset, 0.5)
		p.LineTo(-inset, inset)
		p.LineTo(-0.5, inset)
		p.LineTo(-0.5, -inset)
		p.LineTo(-inset, -inset)
		p.Close()
	case MarkerCross:
		p.MoveTo(-0.5+inset, -0.5)
		p.LineTo(0, -inset)
		p.LineTo(0.5-inset, -0.5)
		p.LineTo(0.5, -0.5+inset)
		p.LineTo(inset, 0)
		p.LineTo(0.5, 0.5-inset)
		p.LineTo(0.5-inset, 0.5)
		p.LineTo(0, inset)
		p.LineTo(-0.5+inset, 0.5)
		p.LineTo(-0.5, 0.5-inset)
		p.LineTo(-inset, 0)
		p.LineTo(-0.5, -0.5+inset)
		p.Close()
	case MarkerStar:
		p = polygonPath(10, func(i int) float64 {
			if i%2 == 0 {
				return 0.5
			}
			return 0.2
		})
	case MarkerSquare:
		p = RectPath(-0.5, -0.5, 0.5, 0.5)
	case MarkerTriangle:
		p.MoveTo(0, -triY)
		p.LineTo(0.5, triY)
		p.LineTo(-0.5, triY)
		p.Close()
	case MarkerDiamond:
		p.MoveTo(0, -0.5)
		p.LineTo(0.5, 0)
		p.LineTo(0, 0.5)
		p.LineTo(-0.5, 0)
		p.Close()
	case MarkerHexagon:
		p.MoveTo(-0.25, -triY)
		p.LineTo(0.25, -triY)
		p.LineTo(0.5, 0)
		p.LineTo(0.25, triY)
		p.LineTo(-0.25, triY)
		p.LineTo(-0.5, 0)
		p.Close()
	case MarkerOctagon:
		p = polygonPath(8, func(int) float64 { return 0.5 })
	default:
		p.Circle(0, 0, 0.5)
	}
	return p
}

func polygonPath(n int, radius func(int) float64) Path {
	var p Path
	for i := 0; i < n; i++ {
		var (
			a = -math.Pi/2 + float64(i)*2*math.Pi/float64(n)
			r = radius(i)
			x = r * math.Cos(a)
			y = r * math.Sin(a)
		)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	return p
}
