package plot

import (
	"errors"
	"math"
	"testing"
)

func TestBoundsTransformTo(t *testing.T) {
	var (
		data     = NewBounds(NewRange(0, 10), NewRange(0, 5))
		viewport = NewBounds(NewRange(100, 700), NewRange(500, 100))
		a        = data.TransformTo(viewport)
	)
	x, y := a.Apply(0, 0)
	if x != 100 || y != 500 {
		t.Fatalf("origin: got (%g, %g)", x, y)
	}
	x, y = a.Apply(10, 5)
	if x != 700 || y != 100 {
		t.Fatalf("corner: got (%g, %g)", x, y)
	}
	x, y = a.Apply(5, 2.5)
	if x != 400 || y != 300 {
		t.Fatalf("center: got (%g, %g)", x, y)
	}
}

func TestDataRangeUnionMargins(t *testing.T) {
	var (
		base = BaselineRange(NewRange(0, 10), Absolute)
		cont = AbsoluteRange(NewRange(-5, 5))
	)
	got, err := base.Union(cont)
	if err != nil {
		t.Fatal(err)
	}
	if rg := got.Range(); rg.Min != -5 || rg.Max != 10 {
		t.Fatalf("got [%g, %g]", rg.Min, rg.Max)
	}
	// Margin flags are or'ed per side.
	if !got.marginMin || !got.marginMax {
		t.Fatalf("margins: got (%v, %v)", got.marginMin, got.marginMax)
	}

	got, err = base.Union(BaselineRange(NewRange(0, 3), Absolute))
	if err != nil {
		t.Fatal(err)
	}
	if got.marginMin {
		t.Fatal("two baselines should keep the bottom pinned")
	}
}

func TestDataRangeUnionUnits(t *testing.T) {
	var (
		dur = ContinuousRange(NewRange(0, 100), Duration)
		abs = AbsoluteRange(NewRange(0, 5))
	)
	_, err := dur.Union(abs)
	if !errors.Is(err, ErrIncompatibleRange) {
		t.Fatalf("got %v, want ErrIncompatibleRange", err)
	}

	// A degenerate operand defers its unit entirely.
	point := AbsoluteRange(NewRange(2, 2))
	got, err := point.Union(dur)
	if err != nil {
		t.Fatal(err)
	}
	if got.Unit() != Duration {
		t.Fatalf("unit: got %s", got.Unit())
	}
	if rg := got.Range(); rg.Min != 0 || rg.Max != 100 {
		t.Fatalf("got [%g, %g]", rg.Min, rg.Max)
	}
}

func TestDataRangeUnionCategorical(t *testing.T) {
	var (
		cat = CategoricalRange(labelCol("a", "b", "c"))
		abs = AbsoluteRange(NewRange(0, 5))
	)
	if _, err := cat.Union(abs); !errors.Is(err, ErrIncompatibleRange) {
		t.Fatal("categorical with continuous should not merge")
	}
	if _, err := cat.Union(cat); !errors.Is(err, ErrIncompatibleRange) {
		t.Fatal("two categorical ranges should not merge")
	}
}

func TestDataRangeFrom(t *testing.T) {
	dr, err := DataRangeFrom(durationCol(100, 50, 300))
	if err != nil {
		t.Fatal(err)
	}
	if dr.Unit() != Duration {
		t.Fatalf("unit: got %s", dr.Unit())
	}
	if rg := dr.Range(); rg.Min != 50 || rg.Max != 300 {
		t.Fatalf("got [%g, %g]", rg.Min, rg.Max)
	}

	if _, err := DataRangeFrom(labelCol("a", "b")); err == nil {
		t.Fatal("string column should not reduce")
	}
}

func TestDefaultBounds(t *testing.T) {
	db := defaultBounds()
	for _, rg := range []Range{db.X.Range(), db.Y.Range()} {
		if rg.Min != 0 || rg.Max != 1 {
			t.Fatalf("got [%g, %g]", rg.Min, rg.Max)
		}
	}
	if math.IsNaN(db.X.Range().Size()) {
		t.Fatal("default bounds should be finite")
	}
}
