package plot

import (
	"fmt"
	"math"
)

// DefaultTicks is the tick count the automatic strategy aims for.
const DefaultTicks = 10

// DefaultMargin is the fraction of the data extent added around the
// observed bounds before drawing.
const DefaultMargin = 0.1

// Scale selects the axis scale function.
type Scale int

const (
	ScaleLinear Scale = iota
	ScaleLog
)

// Apply maps a data value to scale space.
func (s Scale) Apply(v float64) float64 {
	if s == ScaleLog {
		return math.Log10(v)
	}
	return v
}

// Unapply maps a scale space value back to data space.
func (s Scale) Unapply(v float64) float64 {
	if s == ScaleLog {
		return math.Pow(10, v)
	}
	return v
}

// TickStrategy selects how an axis turns its data range into ticks.
// The zero value is the automatic strategy.
type TickStrategy struct {
	fixed bool
	count int
}

func AutoTicks() TickStrategy {
	return TickStrategy{}
}

// FixedTicks emits exactly count evenly spaced ticks over the pretty
// range, whatever the range holds.
func FixedTicks(count int) TickStrategy {
	return TickStrategy{
		fixed: true,
		count: count,
	}
}

// Axis configures one axis of a plot. It is mutated through its
// exported fields and setters before Draw and never during it.
type Axis struct {
	Title  string
	Scale  Scale
	Margin float64
	Ticks  TickStrategy

	min float64
	max float64
}

func NewAxis() *Axis {
	return &Axis{
		Margin: DefaultMargin,
		min:    math.NaN(),
		max:    math.NaN(),
	}
}

// SetMin pins the lower bound, overriding the computed margin.
func (a *Axis) SetMin(min float64) *Axis {
	a.min = min
	return a
}

// SetMax pins the upper bound, overriding the computed margin.
func (a *Axis) SetMax(max float64) *Axis {
	a.max = max
	return a
}

// SetTitle labels the axis.
func (a *Axis) SetTitle(title string) *Axis {
	a.Title = title
	return a
}

// Logarithmic switches the axis to a log10 scale.
func (a *Axis) Logarithmic() *Axis {
	a.Scale = ScaleLog
	return a
}

// PrettyRange widens the observed range into the displayed one.
// Continuous ranges get a margin only on the sides whose flag is set;
// the margin amount is |size*margin| on a linear scale and
// 10^(|log10(max)-log10(min)|*margin) on a logarithmic one. Explicit
// bounds set on the axis win unconditionally. Categorical ranges
// always map to [-0.5, n-0.5], centering each category in its cell.
func (a *Axis) PrettyRange(dr DataRange) Range {
	if dr.IsCategorical() {
		n := float64(dr.labels.Len())
		return NewRange(-0.5, n-0.5)
	}
	var (
		rg     = dr.rg
		sign   = signum(rg.Size())
		amount float64
	)
	if a.Scale == ScaleLog {
		span := math.Abs(math.Log10(rg.Max) - math.Log10(rg.Min))
		amount = math.Pow(10, span*a.Margin)
	} else {
		amount = math.Abs(rg.Size() * a.Margin)
	}
	if dr.marginMin {
		rg.Min -= amount * sign
	}
	if dr.marginMax {
		rg.Max += amount * sign
	}
	if !math.IsNaN(a.min) {
		rg.Min = a.min
	}
	if !math.IsNaN(a.max) {
		rg.Max = a.max
	}
	return rg
}

// TickValues turns the unioned data range of the axis into the ticks
// to display. The automatic strategy emits one label tick per category
// on categorical ranges, and nice ticks computed in scale space on
// continuous ones. The fixed strategy spaces its count evenly over the
// pretty range regardless of the range kind.
func (a *Axis) TickValues(dr DataRange) ([]Tick, error) {
	if a.Ticks.fixed {
		var (
			ticks []Tick
			it    = NewFixedTicksIter(a.PrettyRange(dr), a.Ticks.count)
		)
		for {
			v, ok := it.Next()
			if !ok {
				break
			}
			ticks = append(ticks, Tick{Kind: TickFixed, Value: v})
		}
		return ticks, nil
	}
	if dr.IsCategorical() {
		var (
			labels = dr.labels
			ticks  = make([]Tick, 0, labels.Len())
		)
		for i := 0; i < labels.Len(); i++ {
			ticks = append(ticks, Tick{
				Kind:  TickLabel,
				Value: float64(i),
				Label: labels.Label(i),
				Index: i,
			})
		}
		return ticks, nil
	}
	rg := dr.rg
	if a.Scale == ScaleLog {
		if rg.Min <= 0 || rg.Max <= 0 {
			return nil, fmt.Errorf("logarithmic axis needs positive bounds, got [%g, %g]", rg.Min, rg.Max)
		}
		rg = NewRange(math.Log10(rg.Min), math.Log10(rg.Max))
	}
	var (
		ticks []Tick
		it    = rg.NiceTicks(DefaultTicks)
	)
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		ticks = append(ticks, Tick{
			Kind:      TickAuto,
			Value:     a.Scale.Unapply(v),
			Precision: it.Precision(),
			Unit:      dr.unit,
		})
	}
	return ticks, nil
}
