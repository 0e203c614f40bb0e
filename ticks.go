package plot

import (
	"math"
	"strconv"
	"time"
)

// Unit tags what the raw float values of a continuous range stand for.
type Unit int

const (
	// Absolute values are plain numbers.
	Absolute Unit = iota
	// Duration values are nanosecond counts.
	Duration
	// Date values are day counts since the Unix epoch.
	Date
)

type TickKind int

const (
	// TickAuto comes from the nice-tick generator.
	TickAuto TickKind = iota
	// TickFixed comes from an evenly spaced fixed-count strategy.
	TickFixed
	// TickLabel carries a category label at an integer position.
	TickLabel
)

// Tick is one displayable axis mark. Ticks are generated lazily and
// consumed immediately by the drawing loop, never kept across draws.
type Tick struct {
	Kind      TickKind
	Value     float64
	Precision int
	Unit      Unit
	Label     string
	Index     int
}

// Text renders the tick the way the axis shows it. Auto ticks recover
// from the generator's generous default precision by dropping three
// digits, fixed ticks always show two digits, label ticks are verbatim.
func (t Tick) Text() string {
	switch t.Kind {
	case TickLabel:
		return t.Label
	case TickFixed:
		return strconv.FormatFloat(t.Value, 'f', 2, 64)
	}
	switch t.Unit {
	case Duration:
		return time.Duration(t.Value).String()
	case Date:
		day := time.Unix(0, 0).UTC().AddDate(0, 0, int(math.Floor(t.Value)))
		return day.Format("2006-01-02")
	default:
		prec := t.Precision - 3
		if prec < 0 {
			prec = 0
		}
		return strconv.FormatFloat(t.Value, 'f', prec, 64)
	}
}

// NiceTicksIter walks the values chosen by Range.NiceTicks. Each call
// to NiceTicks returns a fresh iterator, there is no shared state.
type NiceTicksIter struct {
	current   float64
	step      float64
	hi        float64
	precision int
}

func newNiceTicks(lo, hi, step float64, precision int) *NiceTicksIter {
	return &NiceTicksIter{
		current:   lo,
		step:      step,
		hi:        hi,
		precision: precision,
	}
}

// Precision reports the decimal precision the values are rounded to,
// for downstream label formatting.
func (it *NiceTicksIter) Precision() int {
	return it.precision
}

// Step reports the chosen nice step.
func (it *NiceTicksIter) Step() float64 {
	return it.step
}

// Next returns the next tick value. The loop guard leaves half a step
// of slack past the upper bound against float rounding. It is phrased
// positively so the NaN bounds of a zero-size range terminate the
// iterator instead of yielding forever.
func (it *NiceTicksIter) Next() (float64, bool) {
	if !(it.current < it.hi+it.step*0.5) {
		return 0, false
	}
	p := math.Pow(10, float64(it.precision))
	v := math.Round(it.current*p) / p
	it.current += it.step
	return v, true
}

// Values drains the iterator.
func (it *NiceTicksIter) Values() []float64 {
	var all []float64
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		all = append(all, v)
	}
	return all
}

// FixedTicksIter emits exactly count evenly spaced values from rg.Min
// to rg.Max inclusive. A count of one degenerates to the single lower
// bound, zero or less emits nothing.
type FixedTicksIter struct {
	rg    Range
	count int
	next  int
}

func NewFixedTicksIter(rg Range, count int) *FixedTicksIter {
	return &FixedTicksIter{
		rg:    rg,
		count: count,
	}
}

func (it *FixedTicksIter) Next() (float64, bool) {
	if it.next >= it.count {
		return 0, false
	}
	i := it.next
	it.next++
	if it.count == 1 {
		return it.rg.Min, true
	}
	step := it.rg.Size() / float64(it.count-1)
	return it.rg.Min + float64(i)*step, true
}

func (it *FixedTicksIter) Values() []float64 {
	var all []float64
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		all = append(all, v)
	}
	return all
}
