package plot

import (
	"math"
	"testing"
)

func TestAffineMul(t *testing.T) {
	// Scale first, translate last.
	a := Translation(1, 0).Mul(ScaleAffine(2))
	x, y := a.Apply(1, 1)
	if x != 3 || y != 2 {
		t.Fatalf("got (%g, %g), want (3, 2)", x, y)
	}
	b := ScaleAffine(2).ThenTranslate(1, 0)
	if a != b {
		t.Fatalf("ThenTranslate differs from Mul: %+v vs %+v", b, a)
	}
}

func TestAffineInvert(t *testing.T) {
	a := ScaleXY(2, -3).ThenTranslate(10, 40)
	inv := a.Invert()
	for _, pt := range [][2]float64{{0, 0}, {1, 1}, {-7, 13}} {
		var (
			fx, fy = a.Apply(pt[0], pt[1])
			bx, by = inv.Apply(fx, fy)
		)
		if math.Abs(bx-pt[0]) > 1e-9 || math.Abs(by-pt[1]) > 1e-9 {
			t.Fatalf("(%g, %g) round trips to (%g, %g)", pt[0], pt[1], bx, by)
		}
	}
}

func TestPathTransform(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(1, 1)
	p.Circle(1, 0, 0.5)

	out := p.Transform(ScaleXY(2, 4).ThenTranslate(10, 0)).Ops()
	if len(out) != 3 {
		t.Fatalf("got %d ops", len(out))
	}
	if out[1].X != 12 || out[1].Y != 4 {
		t.Errorf("line: got (%g, %g)", out[1].X, out[1].Y)
	}
	// Radius scales by the mean absolute axis scale.
	if out[2].R != 1.5 {
		t.Errorf("radius: got %g, want 1.5", out[2].R)
	}
}

func TestViewportTransformLog(t *testing.T) {
	vt := ViewportTransform{
		Affine: ScaleXY(100, 1),
		XScale: ScaleLog,
	}
	x, _ := vt.Apply(100, 0)
	if math.Abs(x-200) > 1e-9 {
		t.Fatalf("got %g, want 200", x)
	}
}
