package plot

// Affine is a 2D affine map. Coefficients follow the usual column
// convention: x' = XX*x + XY*y + TX, y' = YX*x + YY*y + TY.
type Affine struct {
	XX, YX, XY, YY, TX, TY float64
}

func Identity() Affine {
	return Affine{XX: 1, YY: 1}
}

func Translation(tx, ty float64) Affine {
	return Affine{XX: 1, YY: 1, TX: tx, TY: ty}
}

func ScaleAffine(s float64) Affine {
	return ScaleXY(s, s)
}

func ScaleXY(sx, sy float64) Affine {
	return Affine{XX: sx, YY: sy}
}

func (a Affine) Apply(x, y float64) (float64, float64) {
	return a.XX*x + a.XY*y + a.TX, a.YX*x + a.YY*y + a.TY
}

// Mul composes two maps: the receiver is applied after b.
func (a Affine) Mul(b Affine) Affine {
	return Affine{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		TX: a.XX*b.TX + a.XY*b.TY + a.TX,
		TY: a.YX*b.TX + a.YY*b.TY + a.TY,
	}
}

// ThenTranslate applies the receiver first, the translation last.
func (a Affine) ThenTranslate(tx, ty float64) Affine {
	return Translation(tx, ty).Mul(a)
}

// Invert returns the inverse map. Only valid for maps with a non zero
// determinant, which is all the axis transforms this package derives.
func (a Affine) Invert() Affine {
	det := a.XX*a.YY - a.XY*a.YX
	inv := 1 / det
	return Affine{
		XX: a.YY * inv,
		XY: -a.XY * inv,
		YX: -a.YX * inv,
		YY: a.XX * inv,
		TX: (a.XY*a.TY - a.YY*a.TX) * inv,
		TY: (a.YX*a.TX - a.XX*a.TY) * inv,
	}
}

// ViewportTransform is the single source of truth mapping a data point
// to a pixel point for one draw pass. The affine part operates in scale
// space: logarithmic axes take log10 of the coordinate before the
// affine applies.
type ViewportTransform struct {
	Affine Affine
	XScale Scale
	YScale Scale
}

// Apply maps a data space point to pixel space.
func (vt ViewportTransform) Apply(x, y float64) (float64, float64) {
	return vt.Affine.Apply(vt.XScale.Apply(x), vt.YScale.Apply(y))
}
