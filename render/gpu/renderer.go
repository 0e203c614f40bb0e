// Package gpu renders plots through the gogpu/gg canvas, rasterizing
// on the GPU when an accelerator is available and falling back to the
// software pipeline otherwise.
package gpu

import (
	"image"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/midbel/plot"
)

var _ plot.Renderer = (*Renderer)(nil)

type faceKey struct {
	size float64
	bold bool
}

// Renderer accumulates draw calls into a gg context. One renderer
// serves one frame; create a fresh one per draw pass.
type Renderer struct {
	ctx     *gg.Context
	regular *text.FontSource
	bold    *text.FontSource
	faces   map[faceKey]text.Face

	width  int
	height int
}

func New(width, height int) (*Renderer, error) {
	regular, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		return nil, err
	}
	ctx := gg.NewContext(width, height)
	ctx.ClearWithColor(gg.RGB(1, 1, 1))
	return &Renderer{
		ctx:     ctx,
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]text.Face),
		width:   width,
		height:  height,
	}, nil
}

func (r *Renderer) Size() (float64, float64) {
	return float64(r.width), float64(r.height)
}

func (r *Renderer) Fill(p plot.Path, tr plot.Affine, col string) {
	r.buildPath(p.Transform(tr))
	r.ctx.SetHexColor(col)
	r.ctx.Fill()
}

func (r *Renderer) Stroke(p plot.Path, tr plot.Affine, col string, stroke plot.Stroke) {
	r.buildPath(p.Transform(tr))
	r.ctx.SetHexColor(col)
	r.ctx.SetLineWidth(stroke.Width)
	if len(stroke.Dash) > 0 {
		r.ctx.SetDash(stroke.Dash...)
	}
	r.ctx.Stroke()
	r.ctx.ClearDash()
}

func (r *Renderer) Text(txt plot.DrawText) {
	face := r.face(txt.Size, txt.Bold)
	if txt.Angle != 0 {
		r.drawRotated(txt, face)
		return
	}
	// The anchored draw adds h*ay to the baseline: ay 1 puts the run
	// below the point, ay 0 above it.
	var (
		ax = anchor(txt.HAlign)
		ay = 1 - anchor(txt.VAlign)
	)
	r.ctx.SetFont(face)
	r.ctx.SetHexColor(txt.Color)
	r.ctx.DrawStringAnchored(txt.Text, txt.X, txt.Y, ax, ay)
}

// SavePNG writes the finished frame to a file.
func (r *Renderer) SavePNG(path string) error {
	return r.ctx.SavePNG(path)
}

// EncodePNG writes the finished frame to a stream.
func (r *Renderer) EncodePNG(w io.Writer) error {
	return r.ctx.EncodePNG(w)
}

// EncodeJPEG writes the finished frame to a stream with the given
// quality (1-100).
func (r *Renderer) EncodeJPEG(w io.Writer, quality int) error {
	return r.ctx.EncodeJPEG(w, quality)
}

// Image exposes the rasterized frame.
func (r *Renderer) Image() image.Image {
	return r.ctx.Image()
}

func (r *Renderer) face(size float64, bold bool) text.Face {
	key := faceKey{size: size, bold: bold}
	if f, ok := r.faces[key]; ok {
		return f
	}
	src := r.regular
	if bold {
		src = r.bold
	}
	f := src.Face(size)
	r.faces[key] = f
	return f
}

func (r *Renderer) buildPath(p plot.Path) {
	r.ctx.ClearPath()
	for _, op := range p.Ops() {
		switch op.Kind {
		case plot.OpMove:
			r.ctx.MoveTo(op.X, op.Y)
		case plot.OpLine:
			r.ctx.LineTo(op.X, op.Y)
		case plot.OpClose:
			r.ctx.ClosePath()
		case plot.OpCircle:
			r.ctx.NewSubPath()
			r.ctx.DrawCircle(op.X, op.Y, op.R)
		}
	}
}

// drawRotated rasterizes the run into a scratch image and blits it
// pixel by pixel through the rotation; gg draws glyphs straight to the
// pixmap and ignores the transform stack.
func (r *Renderer) drawRotated(txt plot.DrawText, face text.Face) {
	w, h := text.Measure(txt.Text, face)
	if w <= 0 || h <= 0 {
		return
	}
	var (
		iw      = int(math.Ceil(w))
		ih      = int(math.Ceil(h))
		scratch = image.NewRGBA(image.Rect(0, 0, iw, ih))
	)
	// Baseline sits roughly at four fifths of the line height.
	text.Draw(scratch, txt.Text, face, 0, h*0.8, hexColor(txt.Color))

	var dy float64
	switch txt.VAlign {
	case plot.AlignCenter:
		dy = -h / 2
	case plot.AlignEnd:
		dy = -h
	}
	var (
		rad = txt.Angle * math.Pi / 180
		rot = plot.Affine{
			XX: math.Cos(rad), XY: -math.Sin(rad),
			YX: math.Sin(rad), YY: math.Cos(rad),
		}
		place = plot.Translation(txt.X, txt.Y).
			Mul(rot).
			Mul(plot.Translation(-w*anchor(txt.HAlign), dy))
	)
	for j := 0; j < ih; j++ {
		for i := 0; i < iw; i++ {
			c := scratch.RGBAAt(i, j)
			if c.A == 0 {
				continue
			}
			x, y := place.Apply(float64(i), float64(j))
			r.ctx.SetPixel(int(math.Round(x)), int(math.Round(y)), gg.FromColor(c))
		}
	}
}

func anchor(a plot.Align) float64 {
	switch a {
	case plot.AlignCenter:
		return 0.5
	case plot.AlignEnd:
		return 1
	default:
		return 0
	}
}

func hexColor(col string) color.Color {
	if len(col) != 7 || col[0] != '#' {
		return color.Black
	}
	var rgb [3]uint8
	for i := range rgb {
		v, err := strconv.ParseUint(col[1+i*2:3+i*2], 16, 8)
		if err != nil {
			return color.Black
		}
		rgb[i] = uint8(v)
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}
