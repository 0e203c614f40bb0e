package plot

import (
	"fmt"
)

// Bounds is a plain rectangle made of two ranges. It serves for the
// outer canvas, the shrunk viewport, and the margined data bounds.
type Bounds struct {
	X Range
	Y Range
}

func NewBounds(x, y Range) Bounds {
	return Bounds{
		X: x,
		Y: y,
	}
}

func EmptyBounds() Bounds {
	return Bounds{}
}

func (b Bounds) Width() float64 {
	return b.X.Size()
}

func (b Bounds) Height() float64 {
	return b.Y.Size()
}

func (b Bounds) Shrink(amount float64) Bounds {
	return Bounds{
		X: b.X.Shrink(amount),
		Y: b.Y.Shrink(amount),
	}
}

func (b Bounds) Expand(amount float64) Bounds {
	return Bounds{
		X: b.X.Expand(amount),
		Y: b.Y.Expand(amount),
	}
}

func (b Bounds) ShrinkBy(fract float64) Bounds {
	return Bounds{
		X: b.X.ShrinkBy(fract),
		Y: b.Y.ShrinkBy(fract),
	}
}

func (b Bounds) ExpandBy(fract float64) Bounds {
	return Bounds{
		X: b.X.ExpandBy(fract),
		Y: b.Y.ExpandBy(fract),
	}
}

func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		X: b.X.Union(other.X),
		Y: b.Y.Union(other.Y),
	}
}

// TransformTo derives the affine mapping this rectangle onto the given
// viewport through independent per axis scale and translate.
func (b Bounds) TransformTo(viewport Bounds) Affine {
	var (
		sx = viewport.X.Size() / b.X.Size()
		sy = viewport.Y.Size() / b.Y.Size()
	)
	return Affine{
		XX: sx,
		YY: sy,
		TX: viewport.X.Min - b.X.Min*sx,
		TY: viewport.Y.Min - b.Y.Min*sy,
	}
}

// DataRange is one axis raw observed extent from one serie. It is
// either a continuous range with a unit, or categorical positions
// driven by a label column (category i sits at position i).
type DataRange struct {
	rg        Range
	unit      Unit
	marginMin bool
	marginMax bool
	labels    Column
}

// ContinuousRange wraps a plain range; both margins default on.
func ContinuousRange(rg Range, unit Unit) DataRange {
	return DataRange{
		rg:        rg,
		unit:      unit,
		marginMin: true,
		marginMax: true,
	}
}

// AbsoluteRange is ContinuousRange with the Absolute unit.
func AbsoluteRange(rg Range) DataRange {
	return ContinuousRange(rg, Absolute)
}

// BaselineRange is a continuous range anchored at its lower bound:
// bar and histogram baselines opt out of the bottom margin so bars do
// not float above zero.
func BaselineRange(rg Range, unit Unit) DataRange {
	d := ContinuousRange(rg, unit)
	d.marginMin = false
	return d
}

// CategoricalRange positions each distinct label of the column at its
// integer index.
func CategoricalRange(labels Column) DataRange {
	return DataRange{
		labels: labels,
	}
}

// DataRangeFrom builds a continuous range from the column reductions,
// tagging the unit from the declared dtype.
func DataRangeFrom(col Column) (DataRange, error) {
	min, err := col.Min()
	if err != nil {
		return DataRange{}, err
	}
	max, err := col.Max()
	if err != nil {
		return DataRange{}, err
	}
	unit := Absolute
	switch col.Dtype() {
	case DtypeDuration:
		unit = Duration
	case DtypeDate:
		unit = Date
	}
	return ContinuousRange(NewRange(min, max), unit), nil
}

func (d DataRange) IsCategorical() bool {
	return d.labels != nil
}

// Range reports the continuous extent. For categorical ranges it is
// the index span [0, n-1].
func (d DataRange) Range() Range {
	if d.IsCategorical() {
		return NewRange(0, float64(d.labels.Len()-1))
	}
	return d.rg
}

func (d DataRange) Unit() Unit {
	return d.unit
}

// Labels reports the category column, nil for continuous ranges.
func (d DataRange) Labels() Column {
	return d.labels
}

// Union merges two ranges observed on the same axis. Categorical
// ranges are not commensurable with anything, not even each other, and
// fail fast. Margin flags are or'ed per side: if any contributing
// serie wants a margin, the union keeps it. Units must agree unless
// one operand is degenerate, in which case it defers entirely to the
// other.
func (d DataRange) Union(other DataRange) (DataRange, error) {
	if d.IsCategorical() || other.IsCategorical() {
		return DataRange{}, fmt.Errorf("categorical: %w", ErrIncompatibleRange)
	}
	unit := d.unit
	switch {
	case d.unit == other.unit:
	case d.rg.Size() == 0:
		unit = other.unit
	case other.rg.Size() == 0:
	default:
		return DataRange{}, fmt.Errorf("%s with %s: %w", d.unit, other.unit, ErrIncompatibleRange)
	}
	return DataRange{
		rg:        d.rg.Union(other.rg),
		unit:      unit,
		marginMin: d.marginMin || other.marginMin,
		marginMax: d.marginMax || other.marginMax,
	}, nil
}

func (u Unit) String() string {
	switch u {
	case Duration:
		return "duration"
	case Date:
		return "date"
	default:
		return "absolute"
	}
}

// DataBounds is one serie's bounding box in data units.
type DataBounds struct {
	X DataRange
	Y DataRange
}

func (b DataBounds) Union(other DataBounds) (DataBounds, error) {
	x, err := b.X.Union(other.X)
	if err != nil {
		return DataBounds{}, err
	}
	y, err := b.Y.Union(other.Y)
	if err != nil {
		return DataBounds{}, err
	}
	return DataBounds{X: x, Y: y}, nil
}

// defaultBounds is the identity an empty plot still renders with.
func defaultBounds() DataBounds {
	unit := DataRange{
		rg: NewRange(0, 1),
	}
	return DataBounds{X: unit, Y: unit}
}
