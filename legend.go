package plot

const (
	legendMargin     = 20.0
	legendPadding    = 10.0
	legendFontSize   = 20.0
	legendLineHeight = 20.0
	legendSwatch     = 40.0
)

// drawLegend lays out one row per titled serie in a box anchored to
// the bottom right corner of the viewport. Text width is estimated
// from the label length, the renderer seam has no measuring call.
func (p *Plot) drawLegend(r Renderer, viewport Bounds) {
	var items []LegendItem
	for _, s := range p.series {
		if lg, ok := s.(legender); ok {
			items = append(items, lg.legendItems()...)
		}
	}
	if len(items) == 0 {
		return
	}

	var widest string
	for _, it := range items {
		if len(it.Label) > len(widest) {
			widest = it.Label
		}
	}
	var (
		innerWidth  = float64(len(widest))*legendFontSize*0.6 + legendSwatch
		innerHeight = float64(len(items)) * legendLineHeight

		x1 = viewport.X.Max - legendMargin
		y1 = viewport.Y.Min - legendMargin
		x0 = x1 - innerWidth - legendPadding*2
		y0 = y1 - innerHeight - legendPadding*2
	)
	box := RectPath(x0, y0, x1, y1)
	r.Fill(box, Identity(), "#ffffff")
	r.Stroke(box, Identity(), lineColor, NewStroke(2))

	for i, it := range items {
		var (
			x = x0 + legendPadding
			y = y0 + legendPadding + float64(i)*legendLineHeight + legendLineHeight/2
		)
		swatch := RectPath(x, y-1, x+legendSwatch-5, y+1)
		r.Fill(swatch, Identity(), it.Color)
		r.Text(DrawText{
			Text:   it.Label,
			Size:   legendFontSize,
			Color:  textColor,
			X:      x + legendSwatch,
			Y:      y,
			HAlign: AlignStart,
			VAlign: AlignCenter,
		})
	}
}
