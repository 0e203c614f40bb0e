package plot

// StrokeStyle configures a decorative line of the plot frame, like the
// border or the grid.
type StrokeStyle struct {
	width float64
	color string
	dash  []float64
}

func NewStrokeStyle(width float64) *StrokeStyle {
	return &StrokeStyle{
		width: width,
	}
}

func (s *StrokeStyle) SetWidth(width float64) *StrokeStyle {
	s.width = width
	return s
}

func (s *StrokeStyle) SetColor(color string) *StrokeStyle {
	s.color = color
	return s
}

func (s *StrokeStyle) Dashed() *StrokeStyle {
	return s.DashStyle(4)
}

func (s *StrokeStyle) DashStyle(dashes ...float64) *StrokeStyle {
	s.dash = append(s.dash[:0], dashes...)
	return s
}

func (s *StrokeStyle) stroke() Stroke {
	return Stroke{
		Width: s.width,
		Dash:  s.dash,
	}
}

func (s *StrokeStyle) fill(fallback string) string {
	if s.color == "" {
		return fallback
	}
	return s.color
}
