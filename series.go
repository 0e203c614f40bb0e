package plot

import (
	"fmt"
	"math"
)

const trendColor = "#c83232"

// Series is one plotted set of data: it reports its extent in data
// units once per draw and renders itself through the shared viewport
// transform. Row level failures are recovered inside Draw, a bad row
// is skipped with a warning.
type Series interface {
	DataBounds() (DataBounds, error)
	Draw(Renderer, ViewportTransform)
}

// LegendItem is one legend row contributed by a serie.
type LegendItem struct {
	Label string
	Color string
}

type legender interface {
	legendItems() []LegendItem
}

// Scatter draws a marker at every (x, y) row pair.
type Scatter struct {
	x Column
	y Column

	Title  string
	Size   float64
	Marker Marker
	Color  string

	hue     Column
	hueKeys []string
	trend   *Trendline
}

func (p *Plot) Scatter(x, y Column) *Scatter {
	s := &Scatter{
		x:      x,
		y:      y,
		Size:   12,
		Marker: MarkerCircle,
		Color:  p.nextColor(),
	}
	p.series = append(p.series, s)
	return s
}

func (s *Scatter) SetTitle(title string) *Scatter {
	s.Title = title
	return s
}

func (s *Scatter) SetMarker(m Marker) *Scatter {
	s.Marker = m
	return s
}

func (s *Scatter) SetSize(size float64) *Scatter {
	s.Size = size
	return s
}

func (s *Scatter) SetColor(color string) *Scatter {
	s.Color = color
	return s
}

// HueFrom colors each point by the value of a third column, mapping
// its distinct labels in first seen order onto the Rocket gradient.
func (s *Scatter) HueFrom(col Column) *Scatter {
	s.hue = col
	s.hueKeys = nil
	return s
}

// HueFromKeys is HueFrom with an explicit label order.
func (s *Scatter) HueFromKeys(col Column, keys ...string) *Scatter {
	s.hue = col
	s.hueKeys = keys
	return s
}

// TrendLine overlays a least squares line and returns it for styling.
func (s *Scatter) TrendLine() *Trendline {
	s.trend = &Trendline{
		Color: trendColor,
		Width: 2,
	}
	return s.trend
}

func (s *Scatter) DataBounds() (DataBounds, error) {
	x, err := DataRangeFrom(s.x)
	if err != nil {
		return DataBounds{}, err
	}
	y, err := DataRangeFrom(s.y)
	if err != nil {
		return DataBounds{}, err
	}
	return DataBounds{X: x, Y: y}, nil
}

func (s *Scatter) Draw(r Renderer, vt ViewportTransform) {
	var hues map[string]int
	if s.hue != nil {
		keys := s.hueKeys
		if keys == nil {
			keys = s.hue.UniqueStable()
		}
		hues = make(map[string]int, len(keys))
		for i, k := range keys {
			hues[k] = i
		}
	}
	shape := s.Marker.Path()
	for i := 0; i < s.x.Len(); i++ {
		x, y, err := rowAt(s.x, s.y, i)
		if err != nil {
			logger().Warn("scatter point skipped", "row", i, "error", err)
			continue
		}
		px, py := vt.Apply(x, y)
		color := s.Color
		if hues != nil {
			idx := hues[s.hue.Label(i)]
			color = Rocket.Sample(float64(idx) / float64(len(hues)))
		}
		r.Fill(shape, ScaleAffine(s.Size).ThenTranslate(px, py), color)
	}
	if s.trend != nil {
		if err := s.trend.draw(s.x, s.y, r, vt); err != nil {
			logger().Warn("trendline skipped", "error", err)
		}
	}
}

func (s *Scatter) legendItems() []LegendItem {
	var items []LegendItem
	if s.Title != "" {
		items = append(items, LegendItem{Label: s.Title, Color: s.Color})
	}
	if s.trend != nil && s.trend.Title != "" {
		items = append(items, LegendItem{Label: s.trend.Title, Color: s.trend.Color})
	}
	return items
}

// Trendline is the least squares line of a scatter serie, fitted from
// the covariance over the x variance.
type Trendline struct {
	Title string
	Color string
	Width float64
}

func (t *Trendline) SetTitle(title string) *Trendline {
	t.Title = title
	return t
}

func (t *Trendline) SetColor(color string) *Trendline {
	t.Color = color
	return t
}

func (t *Trendline) SetWidth(width float64) *Trendline {
	t.Width = width
	return t
}

func (t *Trendline) draw(x, y Column, r Renderer, vt ViewportTransform) error {
	slope, intercept, err := linearFit(x, y)
	if err != nil {
		return err
	}
	lo, err := x.Min()
	if err != nil {
		return err
	}
	hi, err := x.Max()
	if err != nil {
		return err
	}
	var (
		x0, y0 = vt.Apply(lo, lo*slope+intercept)
		x1, y1 = vt.Apply(hi, hi*slope+intercept)
	)
	r.Stroke(LinePath(x0, y0, x1, y1), Identity(), t.Color, NewStroke(t.Width))
	return nil
}

func linearFit(x, y Column) (slope, intercept float64, err error) {
	n := x.Len()
	if n < 2 {
		return 0, 0, fmt.Errorf("trendline needs at least two points: %w", ErrEmptyRange)
	}
	var sumX, sumY float64
	for i := 0; i < n; i++ {
		xv, yv, err := rowAt(x, y, i)
		if err != nil {
			return 0, 0, err
		}
		sumX += xv
		sumY += yv
	}
	var (
		meanX = sumX / float64(n)
		meanY = sumY / float64(n)
		cov   float64
		varX  float64
	)
	for i := 0; i < n; i++ {
		xv, yv, _ := rowAt(x, y, i)
		cov += (xv - meanX) * (yv - meanY)
		varX += (xv - meanX) * (xv - meanX)
	}
	if varX == 0 {
		return 0, 0, fmt.Errorf("trendline on constant x: %w", ErrEmptyRange)
	}
	slope = cov / varX
	return slope, meanY - slope*meanX, nil
}

// Line draws the rows as a connected polyline in column order.
type Line struct {
	x Column
	y Column

	Title string
	Width float64
	Color string
	Dash  []float64
}

func (p *Plot) Line(x, y Column) *Line {
	l := &Line{
		x:     x,
		y:     y,
		Width: 2,
		Color: p.nextColor(),
	}
	p.series = append(p.series, l)
	return l
}

func (l *Line) SetTitle(title string) *Line {
	l.Title = title
	return l
}

func (l *Line) SetColor(color string) *Line {
	l.Color = color
	return l
}

func (l *Line) SetWidth(width float64) *Line {
	l.Width = width
	return l
}

func (l *Line) SetDash(dashes ...float64) *Line {
	l.Dash = append(l.Dash[:0], dashes...)
	return l
}

func (l *Line) DataBounds() (DataBounds, error) {
	x, err := DataRangeFrom(l.x)
	if err != nil {
		return DataBounds{}, err
	}
	y, err := DataRangeFrom(l.y)
	if err != nil {
		return DataBounds{}, err
	}
	return DataBounds{X: x, Y: y}, nil
}

func (l *Line) Draw(r Renderer, vt ViewportTransform) {
	var (
		path  Path
		first = true
	)
	for i := 0; i < l.x.Len(); i++ {
		x, y, err := rowAt(l.x, l.y, i)
		if err != nil {
			logger().Warn("line point skipped", "row", i, "error", err)
			continue
		}
		px, py := vt.Apply(x, y)
		if first {
			path.MoveTo(px, py)
			first = false
		} else {
			path.LineTo(px, py)
		}
	}
	stroke := Stroke{Width: l.Width, Dash: l.Dash}
	r.Stroke(path, Identity(), l.Color, stroke)
}

func (l *Line) legendItems() []LegendItem {
	if l.Title == "" {
		return nil
	}
	return []LegendItem{{Label: l.Title, Color: l.Color}}
}

// Histogram draws per bin counts as a filled step outline. In binned
// mode the counts come from bucketing a value column; in counted mode
// each row of the column is already a count.
type Histogram struct {
	values Column
	counts Column
	bins   int

	Title string
	Color string
}

// Histogram buckets the values column into the given number of bins.
// The x axis gets one fixed tick per bin edge.
func (p *Plot) Histogram(values Column, bins int) *Histogram {
	p.X.Ticks = FixedTicks(bins + 1)
	h := &Histogram{
		values: values,
		bins:   bins,
		Color:  Rocket.Sample(0),
	}
	p.series = append(p.series, h)
	return h
}

// HistogramCounted plots pre-counted buckets, one per row.
func (p *Plot) HistogramCounted(counts Column) *Histogram {
	h := &Histogram{
		counts: counts,
		Color:  Rocket.Sample(0),
	}
	p.series = append(p.series, h)
	return h
}

func (h *Histogram) SetTitle(title string) *Histogram {
	h.Title = title
	return h
}

func (h *Histogram) SetColor(color string) *Histogram {
	h.Color = color
	return h
}

// buckets resolves both modes to bin edges and counts.
func (h *Histogram) buckets() (Range, []float64, error) {
	if h.counts != nil {
		counts := make([]float64, h.counts.Len())
		for i := range counts {
			v, err := h.counts.Get(i)
			if err != nil {
				return Range{}, nil, err
			}
			counts[i] = v
		}
		return NewRange(0, float64(len(counts))), counts, nil
	}
	lo, err := h.values.Min()
	if err != nil {
		return Range{}, nil, err
	}
	hi, err := h.values.Max()
	if err != nil {
		return Range{}, nil, err
	}
	var (
		counts = make([]float64, h.bins)
		width  = (hi - lo) / float64(h.bins)
	)
	if width == 0 {
		return Range{}, nil, fmt.Errorf("histogram over zero span: %w", ErrEmptyRange)
	}
	for i := 0; i < h.values.Len(); i++ {
		v, err := h.values.Get(i)
		if err != nil {
			logger().Warn("histogram value skipped", "row", i, "error", err)
			continue
		}
		b := int((v - lo) / width)
		if b >= h.bins {
			b = h.bins - 1
		}
		if b < 0 {
			b = 0
		}
		counts[b]++
	}
	return NewRange(lo, hi), counts, nil
}

func (h *Histogram) DataBounds() (DataBounds, error) {
	edges, counts, err := h.buckets()
	if err != nil {
		return DataBounds{}, err
	}
	top := 0.0
	for _, c := range counts {
		top = math.Max(top, c)
	}
	return DataBounds{
		X: AbsoluteRange(edges),
		Y: BaselineRange(NewRange(0, top), Absolute),
	}, nil
}

func (h *Histogram) Draw(r Renderer, vt ViewportTransform) {
	edges, counts, err := h.buckets()
	if err != nil {
		logger().Warn("histogram skipped", "error", err)
		return
	}
	var (
		path  Path
		width = edges.Size() / float64(len(counts))
	)
	x, y := vt.Apply(edges.Min, 0)
	path.MoveTo(x, y)
	for i, c := range counts {
		var (
			x0, cy = vt.Apply(edges.Min+float64(i)*width, c)
			x1, _  = vt.Apply(edges.Min+float64(i+1)*width, c)
		)
		path.LineTo(x0, cy)
		path.LineTo(x1, cy)
	}
	x, y = vt.Apply(edges.Max, 0)
	path.LineTo(x, y)
	path.Close()
	r.Fill(path, Identity(), h.Color)
}

func (h *Histogram) legendItems() []LegendItem {
	if h.Title == "" {
		return nil
	}
	return []LegendItem{{Label: h.Title, Color: h.Color}}
}

// Bar draws one vertical bar per category label. The y baseline is
// anchored at zero: the bottom margin flag is off so bars never float.
type Bar struct {
	labels Column
	values Column

	Title string
	Width float64
	Color string
}

func (p *Plot) Bar(labels, values Column) *Bar {
	b := &Bar{
		labels: labels,
		values: values,
		Width:  0.3,
		Color:  Rocket.Sample(0),
	}
	p.series = append(p.series, b)
	return b
}

func (b *Bar) SetTitle(title string) *Bar {
	b.Title = title
	return b
}

func (b *Bar) SetColor(color string) *Bar {
	b.Color = color
	return b
}

// SetWidth sets the bar half width in category cells, 0.5 meaning
// touching bars.
func (b *Bar) SetWidth(width float64) *Bar {
	b.Width = width
	return b
}

func (b *Bar) DataBounds() (DataBounds, error) {
	top, err := b.values.Max()
	if err != nil {
		return DataBounds{}, err
	}
	return DataBounds{
		X: CategoricalRange(b.labels),
		Y: BaselineRange(NewRange(0, top), Absolute),
	}, nil
}

func (b *Bar) Draw(r Renderer, vt ViewportTransform) {
	var path Path
	for i := 0; i < b.labels.Len(); i++ {
		v, err := b.values.Get(i)
		if err != nil {
			logger().Warn("bar skipped", "row", i, "error", err)
			continue
		}
		var (
			x      = float64(i)
			x0, y0 = vt.Apply(x-b.Width, 0)
			x1, y1 = vt.Apply(x+b.Width, v)
		)
		path.MoveTo(x0, y0)
		path.LineTo(x0, y1)
		path.LineTo(x1, y1)
		path.LineTo(x1, y0)
		path.Close()
	}
	r.Fill(path, Identity(), b.Color)
}

func (b *Bar) legendItems() []LegendItem {
	if b.Title == "" {
		return nil
	}
	return []LegendItem{{Label: b.Title, Color: b.Color}}
}

func rowAt(x, y Column, i int) (float64, float64, error) {
	xv, err := x.Get(i)
	if err != nil {
		return 0, 0, err
	}
	yv, err := y.Get(i)
	if err != nil {
		return 0, 0, err
	}
	return xv, yv, nil
}
