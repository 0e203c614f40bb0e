package plot

import (
	"fmt"
)

const (
	// DefaultPadding is the pixel border kept around the viewport for
	// titles and tick labels.
	DefaultPadding = 80

	textColor = "#202020"
	lineColor = "#808080"
)

// Plot owns the axes and the plotted series for one chart. Configure
// it through its fields and the serie constructors, then call Draw
// once per frame; nothing is cached between draws.
type Plot struct {
	X *Axis
	Y *Axis

	Title   string
	Padding float64

	border  *StrokeStyle
	grid    *StrokeStyle
	legend  bool
	palette Palette

	series []Series
}

func New() *Plot {
	return &Plot{
		X:       NewAxis(),
		Y:       NewAxis(),
		Padding: DefaultPadding,
		border:  NewStrokeStyle(1),
		palette: Category10,
	}
}

// SetPalette replaces the palette that default serie colors cycle over.
func (p *Plot) SetPalette(pal Palette) *Plot {
	p.palette = pal
	return p
}

// nextColor picks the default color of the serie about to be added.
func (p *Plot) nextColor() string {
	return p.palette.Color(len(p.series))
}

func (p *Plot) SetTitle(title string) *Plot {
	p.Title = title
	return p
}

func (p *Plot) NoBorder() {
	p.border = nil
}

// Border enables the frame border and returns its style.
func (p *Plot) Border() *StrokeStyle {
	if p.border == nil {
		p.border = NewStrokeStyle(1)
	}
	return p.border
}

// Grid enables grid lines across the viewport and returns their style.
func (p *Plot) Grid() *StrokeStyle {
	if p.grid == nil {
		p.grid = NewStrokeStyle(1)
	}
	return p.grid
}

// ShowLegend draws a legend box for the titled series.
func (p *Plot) ShowLegend() {
	p.legend = true
}

// Add appends a custom serie. The usual chart types go through
// Scatter, Line, Histogram and Bar instead.
func (p *Plot) Add(s Series) {
	p.series = append(p.series, s)
}

// DataBounds folds the bounds of every plotted serie. A serie whose
// bounds can not be computed or merged is skipped with a warning, one
// bad serie should not blank the chart. An empty plot falls back to
// the unit square so the axis frame still renders.
func (p *Plot) DataBounds() DataBounds {
	var acc *DataBounds
	for _, s := range p.series {
		db, err := s.DataBounds()
		if err != nil {
			logger().Warn("serie skipped from bounds", "error", err)
			continue
		}
		if acc == nil {
			acc = &db
			continue
		}
		u, err := acc.Union(db)
		if err != nil {
			logger().Warn("serie skipped from bounds", "error", err)
			continue
		}
		acc = &u
	}
	if acc == nil {
		db := defaultBounds()
		return db
	}
	return *acc
}

// PrettyBounds applies each axis pretty range independently.
func (p *Plot) PrettyBounds(db DataBounds) Bounds {
	return NewBounds(p.X.PrettyRange(db.X), p.Y.PrettyRange(db.Y))
}

// ViewportTransform derives the single data to pixel map of one draw
// pass. The pretty bounds are taken to scale space first, so the
// affine of a logarithmic axis operates on log10 coordinates.
func (p *Plot) ViewportTransform(db DataBounds, viewport Bounds) (ViewportTransform, error) {
	var (
		pretty = p.PrettyBounds(db)
		scaled = NewBounds(
			scaleRange(p.X.Scale, pretty.X),
			scaleRange(p.Y.Scale, pretty.Y),
		)
	)
	if scaled.X.Size() == 0 || scaled.Y.Size() == 0 {
		return ViewportTransform{}, fmt.Errorf("degenerate bounds %gx%g", scaled.X.Size(), scaled.Y.Size())
	}
	return ViewportTransform{
		Affine: scaled.TransformTo(viewport),
		XScale: p.X.Scale,
		YScale: p.Y.Scale,
	}, nil
}

func scaleRange(s Scale, rg Range) Range {
	return NewRange(s.Apply(rg.Min), s.Apply(rg.Max))
}

// Draw runs one full pass: gather bounds, compute ticks and the
// viewport transform, then emit the frame, the ticks and every serie
// to the renderer. Axis level failures abort the pass, there is no
// meaningful chart without a valid transform.
func (p *Plot) Draw(r Renderer) error {
	width, height := r.Size()
	var (
		outer    = NewBounds(NewRange(0, width), NewRange(height, 0))
		viewport = outer.Shrink(p.Padding)
	)

	p.drawTitles(r, outer, viewport)
	p.drawBorder(r, viewport)

	db := p.DataBounds()
	vt, err := p.ViewportTransform(db, viewport)
	if err != nil {
		return err
	}
	if err := p.drawTicks(r, db, vt, viewport); err != nil {
		return err
	}
	for _, s := range p.series {
		s.Draw(r, vt)
	}
	if p.legend {
		p.drawLegend(r, viewport)
	}
	return nil
}

func (p *Plot) drawTitles(r Renderer, outer, viewport Bounds) {
	if p.Title != "" {
		r.Text(DrawText{
			Text:   p.Title,
			Size:   32,
			Bold:   true,
			Color:  textColor,
			X:      outer.Width() / 2,
			Y:      viewport.Y.Max - 10,
			HAlign: AlignCenter,
			VAlign: AlignEnd,
		})
	}
	if p.X.Title != "" {
		r.Text(DrawText{
			Text:   p.X.Title,
			Size:   24,
			Color:  textColor,
			X:      outer.Width() / 2,
			Y:      viewport.Y.Min + 40,
			HAlign: AlignCenter,
			VAlign: AlignStart,
		})
	}
	if p.Y.Title != "" {
		r.Text(DrawText{
			Text:   p.Y.Title,
			Size:   24,
			Color:  textColor,
			X:      viewport.X.Min - 40,
			Y:      (viewport.Y.Min + viewport.Y.Max) / 2,
			Angle:  -90,
			HAlign: AlignCenter,
			VAlign: AlignEnd,
		})
	}
}

func (p *Plot) drawBorder(r Renderer, viewport Bounds) {
	if p.border == nil {
		return
	}
	var (
		color  = p.border.fill(lineColor)
		stroke = p.border.stroke()
	)
	r.Stroke(LinePath(viewport.X.Min, viewport.Y.Min, viewport.X.Max, viewport.Y.Min), Identity(), color, stroke)
	r.Stroke(LinePath(viewport.X.Min, viewport.Y.Min, viewport.X.Min, viewport.Y.Max), Identity(), color, stroke)
}

func (p *Plot) drawTicks(r Renderer, db DataBounds, vt ViewportTransform, viewport Bounds) error {
	const (
		markLen     = 10
		labelOffset = 15
	)
	tickStroke := NewStroke(1)

	ticks, err := p.Y.TickValues(db.Y)
	if err != nil {
		return fmt.Errorf("y axis: %w", err)
	}
	for _, t := range ticks {
		_, py := vt.Apply(0, t.Value)
		if !viewport.Y.Contains(py) {
			continue
		}
		r.Stroke(LinePath(viewport.X.Min, py, viewport.X.Min-markLen, py), Identity(), lineColor, tickStroke)
		if p.grid != nil {
			line := LinePath(viewport.X.Min, py, viewport.X.Max, py)
			r.Stroke(line, Identity(), p.grid.fill(lineColor), p.grid.stroke())
		}
		r.Text(DrawText{
			Text:   t.Text(),
			Size:   12,
			Color:  textColor,
			X:      viewport.X.Min - labelOffset,
			Y:      py,
			HAlign: AlignEnd,
			VAlign: AlignCenter,
		})
	}

	ticks, err = p.X.TickValues(db.X)
	if err != nil {
		return fmt.Errorf("x axis: %w", err)
	}
	for _, t := range ticks {
		px, _ := vt.Apply(t.Value, 0)
		if !viewport.X.Contains(px) {
			continue
		}
		r.Stroke(LinePath(px, viewport.Y.Min, px, viewport.Y.Min+markLen), Identity(), lineColor, tickStroke)
		if p.grid != nil {
			line := LinePath(px, viewport.Y.Min, px, viewport.Y.Max)
			r.Stroke(line, Identity(), p.grid.fill(lineColor), p.grid.stroke())
		}
		r.Text(DrawText{
			Text:   t.Text(),
			Size:   12,
			Color:  textColor,
			X:      px,
			Y:      viewport.Y.Min + labelOffset,
			HAlign: AlignCenter,
			VAlign: AlignStart,
		})
	}
	return nil
}
