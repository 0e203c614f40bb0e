package plot

// Align anchors text relative to its position.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Stroke carries the pen settings of a single stroke call.
type Stroke struct {
	Width float64
	Dash  []float64
}

func NewStroke(width float64) Stroke {
	return Stroke{
		Width: width,
	}
}

// DrawText is one glyph run in pixel space. Angle rotates the run
// around its position, in degrees.
type DrawText struct {
	Text   string
	Size   float64
	Bold   bool
	Color  string
	X      float64
	Y      float64
	Angle  float64
	HAlign Align
	VAlign Align
}

// Renderer is the drawing sink the plot emits to. Calls are pixel
// space, side effecting, and accumulate into a backend scene consumed
// once per frame; presentation (surface, file) is not this package's
// concern. Colors are hex strings like the rest of the API.
type Renderer interface {
	// Size reports the logical canvas in pixels.
	Size() (float64, float64)
	Fill(p Path, tr Affine, color string)
	Stroke(p Path, tr Affine, color string, stroke Stroke)
	Text(txt DrawText)
}

type OpKind int

const (
	OpMove OpKind = iota
	OpLine
	OpClose
	OpCircle
)

// PathOp is one command of a path. Circle ops use X, Y as center and R
// as radius; close ops carry no coordinates.
type PathOp struct {
	Kind OpKind
	X    float64
	Y    float64
	R    float64
}

// Path is a small command list shared by every backend.
type Path struct {
	ops []PathOp
}

func (p *Path) MoveTo(x, y float64) {
	p.ops = append(p.ops, PathOp{Kind: OpMove, X: x, Y: y})
}

func (p *Path) LineTo(x, y float64) {
	p.ops = append(p.ops, PathOp{Kind: OpLine, X: x, Y: y})
}

func (p *Path) Close() {
	p.ops = append(p.ops, PathOp{Kind: OpClose})
}

func (p *Path) Circle(x, y, r float64) {
	p.ops = append(p.ops, PathOp{Kind: OpCircle, X: x, Y: y, R: r})
}

func (p Path) Ops() []PathOp {
	return p.ops
}

// Transform returns the path with the affine applied to every point.
// Circle radii scale by the mean absolute axis scale.
func (p Path) Transform(a Affine) Path {
	var out Path
	rs := (abs(a.XX) + abs(a.YY)) / 2
	for _, op := range p.ops {
		switch op.Kind {
		case OpClose:
			out.Close()
		case OpCircle:
			x, y := a.Apply(op.X, op.Y)
			out.Circle(x, y, op.R*rs)
		case OpMove:
			x, y := a.Apply(op.X, op.Y)
			out.MoveTo(x, y)
		case OpLine:
			x, y := a.Apply(op.X, op.Y)
			out.LineTo(x, y)
		}
	}
	return out
}

// LinePath is the path of a single segment.
func LinePath(x1, y1, x2, y2 float64) Path {
	var p Path
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	return p
}

// RectPath is the closed path of an axis aligned rectangle.
func RectPath(x0, y0, x1, y1 float64) Path {
	var p Path
	p.MoveTo(x0, y0)
	p.LineTo(x1, y0)
	p.LineTo(x1, y1)
	p.LineTo(x0, y1)
	p.Close()
	return p
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
