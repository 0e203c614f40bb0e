// Package svg renders plots as standalone SVG documents.
package svg

import (
	"bufio"
	"io"

	msvg "github.com/midbel/svg"

	"github.com/midbel/plot"
)

var _ plot.Renderer = (*Renderer)(nil)

// Renderer accumulates draw calls as SVG elements. Coordinates are
// transformed numerically before they reach the document, so the
// output carries no nested transform except for rotated text.
type Renderer struct {
	elements []msvg.Element

	width  float64
	height float64
}

func New(width, height float64) *Renderer {
	return &Renderer{
		width:  width,
		height: height,
	}
}

func (r *Renderer) Size() (float64, float64) {
	return r.width, r.height
}

func (r *Renderer) Fill(p plot.Path, tr plot.Affine, col string) {
	r.appendPath(p.Transform(tr), func(pat *msvg.Path) {
		pat.Fill = msvg.NewFill(col)
	}, func(ci *msvg.Circle) {
		ci.Fill = msvg.NewFill(col)
	})
}

func (r *Renderer) Stroke(p plot.Path, tr plot.Affine, col string, stroke plot.Stroke) {
	decorate := func(sk *msvg.Stroke) {
		*sk = msvg.NewStroke(col, stroke.Width)
		if len(stroke.Dash) > 0 {
			dash := make([]int, len(stroke.Dash))
			for i, d := range stroke.Dash {
				dash[i] = int(d)
			}
			sk.DashArray = dash
		}
	}
	r.appendPath(p.Transform(tr), func(pat *msvg.Path) {
		pat.Fill = msvg.NewFill("none")
		decorate(&pat.Stroke)
	}, func(ci *msvg.Circle) {
		ci.Fill = msvg.NewFill("none")
		decorate(&ci.Stroke)
	})
}

func (r *Renderer) Text(txt plot.DrawText) {
	tx := msvg.NewText(txt.Text)
	tx.Font = msvg.NewFont(txt.Size)
	tx.Anchor = anchor(txt.HAlign)
	tx.Baseline = baseline(txt.VAlign)

	var grp msvg.Group
	grp.Transform.TX = txt.X
	grp.Transform.TY = txt.Y
	grp.Transform.RA = txt.Angle
	grp.Append(tx.AsElement())
	r.elements = append(r.elements, grp.AsElement())
}

// Render writes the accumulated document.
func (r *Renderer) Render(w io.Writer) {
	el := msvg.NewSVG()
	el.Dim = msvg.NewDim(r.width, r.height)
	for _, e := range r.elements {
		el.Append(e)
	}
	buf := bufio.NewWriter(w)
	el.Render(buf)
	buf.Flush()
}

// appendPath splits the op list into line segments and circles: SVG
// has no arc-free circle path command worth the trouble, circles come
// out as their own elements.
func (r *Renderer) appendPath(p plot.Path, onPath func(*msvg.Path), onCircle func(*msvg.Circle)) {
	var (
		pat   msvg.Path
		empty = true
	)
	for _, op := range p.Ops() {
		switch op.Kind {
		case plot.OpMove:
			pat.AbsMoveTo(msvg.NewPos(op.X, op.Y))
			empty = false
		case plot.OpLine:
			pat.AbsLineTo(msvg.NewPos(op.X, op.Y))
			empty = false
		case plot.OpClose:
			pat.ClosePath()
		case plot.OpCircle:
			var ci msvg.Circle
			ci.Pos = msvg.NewPos(op.X, op.Y)
			ci.Radius = op.R
			onCircle(&ci)
			r.elements = append(r.elements, ci.AsElement())
		}
	}
	if !empty {
		onPath(&pat)
		r.elements = append(r.elements, pat.AsElement())
	}
}

func anchor(a plot.Align) string {
	switch a {
	case plot.AlignCenter:
		return "middle"
	case plot.AlignEnd:
		return "end"
	default:
		return "start"
	}
}

func baseline(a plot.Align) string {
	switch a {
	case plot.AlignStart:
		return "hanging"
	case plot.AlignCenter:
		return "middle"
	default:
		return "auto"
	}
}
