package plot

import "testing"

func TestMarkerPaths(t *testing.T) {
	markers := []Marker{
		MarkerCircle, MarkerPlus, MarkerCross, MarkerStar, MarkerSquare,
		MarkerTriangle, MarkerDiamond, MarkerHexagon, MarkerOctagon,
	}
	for _, m := range markers {
		ops := m.Path().Ops()
		if len(ops) == 0 {
			t.Errorf("marker %d has an empty path", m)
		}
	}
}

func TestMarkerCircle(t *testing.T) {
	ops := MarkerCircle.Path().Ops()
	if len(ops) != 1 || ops[0].Kind != OpCircle {
		t.Fatalf("got %+v", ops)
	}
	if ops[0].R != 0.5 {
		t.Fatalf("radius: got %g", ops[0].R)
	}
}
