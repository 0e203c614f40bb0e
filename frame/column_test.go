package frame

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/midbel/plot"
)

func TestFloatsNulls(t *testing.T) {
	c := NewFloats("v", []float64{1, math.NaN(), 3})
	if _, err := c.Get(1); !errors.Is(err, plot.ErrExtract) {
		t.Fatalf("null row: got %v", err)
	}
	min, err := c.Min()
	if err != nil {
		t.Fatal(err)
	}
	max, err := c.Max()
	if err != nil {
		t.Fatal(err)
	}
	if min != 1 || max != 3 {
		t.Fatalf("got [%g, %g]", min, max)
	}
}

func TestFloatsAllNull(t *testing.T) {
	c := NewFloats("v", []float64{math.NaN(), math.NaN()})
	if _, err := c.Min(); !errors.Is(err, plot.ErrEmptyRange) {
		t.Fatalf("got %v", err)
	}
}

func TestStringsNotNumeric(t *testing.T) {
	c := NewStrings("s", []string{"a", "b"})
	if _, err := c.Get(0); !errors.Is(err, plot.ErrExtract) {
		t.Fatalf("got %v", err)
	}
	if _, err := c.Max(); !errors.Is(err, plot.ErrExtract) {
		t.Fatalf("got %v", err)
	}
	if c.Label(1) != "b" {
		t.Fatalf("label: got %q", c.Label(1))
	}
}

func TestTimesDayCount(t *testing.T) {
	var (
		epoch = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
		later = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		c     = NewTimes("d", []time.Time{later, epoch})
	)
	v, err := c.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0 {
		t.Fatalf("epoch: got %g", v)
	}
	min, err := c.Min()
	if err != nil {
		t.Fatal(err)
	}
	if min != 0 {
		t.Fatalf("min: got %g", min)
	}
	max, err := c.Max()
	if err != nil {
		t.Fatal(err)
	}
	if max != 19723 {
		t.Fatalf("max: got %g", max)
	}
	if c.Label(0) != "2024-01-01" {
		t.Fatalf("label: got %q", c.Label(0))
	}
}

func TestDurations(t *testing.T) {
	c := NewDurations("d", []time.Duration{time.Minute, time.Second})
	v, err := c.Get(0)
	if err != nil {
		t.Fatal(err)
	}
	if v != float64(time.Minute) {
		t.Fatalf("got %g", v)
	}
	min, err := c.Min()
	if err != nil {
		t.Fatal(err)
	}
	if min != float64(time.Second) {
		t.Fatalf("min: got %g", min)
	}
	if c.Label(1) != "1s" {
		t.Fatalf("label: got %q", c.Label(1))
	}
	if c.Dtype() != plot.DtypeDuration {
		t.Fatalf("dtype: got %v", c.Dtype())
	}
}

func TestUniqueStable(t *testing.T) {
	c := NewStrings("s", []string{"b", "a", "b", "c", "a"})
	got := c.UniqueStable()
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFrameValidation(t *testing.T) {
	_, err := New(
		NewFloats("a", []float64{1, 2}),
		NewFloats("b", []float64{1, 2, 3}),
	)
	if err == nil {
		t.Fatal("uneven columns should not build a frame")
	}

	f, err := New(
		NewFloats("a", []float64{1, 2}),
		NewStrings("b", []string{"x", "y"}),
	)
	if err != nil {
		t.Fatal(err)
	}
	if f.Len() != 2 {
		t.Fatalf("rows: got %d", f.Len())
	}
	if !reflect.DeepEqual(f.Names(), []string{"a", "b"}) {
		t.Fatalf("names: got %v", f.Names())
	}
	if _, err := f.Column("missing"); err == nil {
		t.Fatal("missing column should fail")
	}
	c, err := f.At(1)
	if err != nil {
		t.Fatal(err)
	}
	if c.Name() != "b" {
		t.Fatalf("got %q", c.Name())
	}
}
