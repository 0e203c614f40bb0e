package plot

import (
	"math"
)

// Range is a closed interval of real values. No ordering is enforced:
// Min may exceed Max to describe an inverted axis (pixel y axes grow
// downward), and operations stay direction aware through the sign of
// Size.
type Range struct {
	Min float64
	Max float64
}

func NewRange(min, max float64) Range {
	return Range{
		Min: min,
		Max: max,
	}
}

func EmptyRange() Range {
	return Range{}
}

// Size may be negative for inverted ranges.
func (r Range) Size() float64 {
	return r.Max - r.Min
}

func (r Range) Expand(amount float64) Range {
	sign := signum(r.Size())
	return Range{
		Min: r.Min - amount*sign,
		Max: r.Max + amount*sign,
	}
}

func (r Range) Shrink(amount float64) Range {
	return r.Expand(-amount)
}

func (r Range) ExpandBy(fract float64) Range {
	return r.Expand(r.Size() * fract)
}

func (r Range) ShrinkBy(fract float64) Range {
	return r.Shrink(r.Size() * fract)
}

// Contains accepts both ascending and descending ranges.
func (r Range) Contains(value float64) bool {
	if value >= r.Min && value <= r.Max {
		return true
	}
	return value <= r.Min && value >= r.Max
}

// Union returns the smallest range covering both operands. A zero-size
// operand defers to the other one, so a single-point serie does not
// collapse an otherwise valid union.
func (r Range) Union(other Range) Range {
	if r.Size() == 0 {
		return other
	}
	if other.Size() == 0 {
		return r
	}
	return Range{
		Min: math.Min(r.Min, other.Min),
		Max: math.Max(r.Max, other.Max),
	}
}

// NiceTicks chooses human friendly tick positions for the range. The
// raw step size/count is snapped to the first canonical multiplier of
// {1, 2, 2.5, 5, 10}x10^k not smaller than it, and the produced values
// are rounded to a precision derived from the step magnitude so labels
// do not carry float noise.
func (r Range) NiceTicks(count int) *NiceTicksIter {
	var (
		step = r.Size() / float64(count)
		k    = math.Floor(math.Log10(step))
		base = step / math.Pow(10, k)
	)
	var nice float64
	switch {
	case base < 1:
		nice = 1
	case base < 2:
		nice = 2
	case base < 2.5:
		nice = 2.5
	case base < 5:
		nice = 5
	default:
		nice = 10
	}
	step = nice * math.Pow(10, k)

	var (
		lo        = math.Floor(r.Min/step) * step
		hi        = math.Ceil(r.Max/step) * step
		precision = int(-k) + 4
	)
	if precision < 0 {
		precision = 0
	}
	return newNiceTicks(lo, hi, step, precision)
}

func signum(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
