package plot

import (
	"errors"
	"math"
	"testing"
)

func TestLinearFit(t *testing.T) {
	var (
		x = numCol(1, 2, 3, 4, 5)
		y = numCol(3, 5, 7, 9, 11)
	)
	slope, intercept, err := linearFit(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(slope-2) > 1e-9 || math.Abs(intercept-1) > 1e-9 {
		t.Fatalf("got y = %gx + %g", slope, intercept)
	}
}

func TestLinearFitErrors(t *testing.T) {
	if _, _, err := linearFit(numCol(1), numCol(2)); !errors.Is(err, ErrEmptyRange) {
		t.Fatalf("single point: got %v", err)
	}
	if _, _, err := linearFit(numCol(3, 3, 3), numCol(1, 2, 3)); !errors.Is(err, ErrEmptyRange) {
		t.Fatalf("constant x: got %v", err)
	}
}

func TestHistogramBuckets(t *testing.T) {
	p := New()
	h := p.Histogram(numCol(0, 1, 2, 3, 4, 5, 6, 7, 8, 9), 5)

	edges, counts, err := h.buckets()
	if err != nil {
		t.Fatal(err)
	}
	if edges.Min != 0 || edges.Max != 9 {
		t.Fatalf("edges: got [%g, %g]", edges.Min, edges.Max)
	}
	if len(counts) != 5 {
		t.Fatalf("got %d bins", len(counts))
	}
	for i, c := range counts {
		if c != 2 {
			t.Errorf("bin %d: got %g, want 2", i, c)
		}
	}
	// Binned mode pins one fixed tick per bin edge on the x axis.
	if !p.X.Ticks.fixed || p.X.Ticks.count != 6 {
		t.Fatalf("x ticks: got %+v", p.X.Ticks)
	}
}

func TestHistogramZeroSpan(t *testing.T) {
	h := New().Histogram(numCol(4, 4, 4), 5)
	if _, _, err := h.buckets(); !errors.Is(err, ErrEmptyRange) {
		t.Fatalf("got %v", err)
	}
}

func TestHistogramCounted(t *testing.T) {
	h := New().HistogramCounted(numCol(1, 4, 2))
	db, err := h.DataBounds()
	if err != nil {
		t.Fatal(err)
	}
	if rg := db.X.Range(); rg.Min != 0 || rg.Max != 3 {
		t.Fatalf("x: got [%g, %g]", rg.Min, rg.Max)
	}
	if rg := db.Y.Range(); rg.Min != 0 || rg.Max != 4 {
		t.Fatalf("y: got [%g, %g]", rg.Min, rg.Max)
	}
}

func TestBarDataBounds(t *testing.T) {
	b := New().Bar(labelCol("a", "b", "c"), numCol(10, 20, 15))
	db, err := b.DataBounds()
	if err != nil {
		t.Fatal(err)
	}
	if !db.X.IsCategorical() {
		t.Fatal("bar x should be categorical")
	}
	if rg := db.Y.Range(); rg.Min != 0 || rg.Max != 20 {
		t.Fatalf("y: got [%g, %g]", rg.Min, rg.Max)
	}
}

func TestScatterSkipsBadRows(t *testing.T) {
	var (
		p   = New()
		rec recorder
	)
	// The y column is shorter than x: the extra rows fail and are
	// skipped instead of aborting the draw.
	p.Scatter(numCol(1, 2, 3, 4), numCol(1, 2))
	if err := p.Draw(&rec); err != nil {
		t.Fatal(err)
	}
	if rec.fills != 2 {
		t.Fatalf("got %d fills, want 2", rec.fills)
	}
}

func TestScatterHue(t *testing.T) {
	var (
		p   = New()
		rec recorder
	)
	p.Scatter(numCol(1, 2, 3), numCol(1, 2, 3)).HueFrom(labelCol("a", "b", "a"))
	if err := p.Draw(&rec); err != nil {
		t.Fatal(err)
	}
	if rec.fills != 3 {
		t.Fatalf("got %d fills", rec.fills)
	}
}
