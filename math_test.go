package impact

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestNormUnit(t *testing.T) {
	v := []float64{3, 4, 0}
	if !floats.EqualWithinAbs(norm(v), 5, testε) {
		t.Fatalf("|v| = %f", norm(v))
	}
	if !vectorsEqual(unit(v), []float64{0.6, 0.8, 0}) {
		t.Fatalf("unit %+v", unit(v))
	}
	if !vectorsEqual(unit([]float64{0, 0, 0}), []float64{0, 0, 0}) {
		t.Fatal("zero vector must have a zero unit vector")
	}
}

func TestSign(t *testing.T) {
	if sign(-3) != -1 || sign(3) != 1 || sign(0) != 1 {
		t.Fatal("sign broken")
	}
}

func TestDotCross(t *testing.T) {
	i := []float64{1, 0, 0}
	j := []float64{0, 1, 0}
	k := []float64{0, 0, 1}
	if dot(i, j) != 0 || dot(i, i) != 1 {
		t.Fatal("dot broken")
	}
	if !vectorsEqual(cross(i, j), k) || !vectorsEqual(cross(j, k), i) || !vectorsEqual(cross(k, i), j) {
		t.Fatal("cross products do not cycle")
	}
}

func TestSphericalRoundTrip(t *testing.T) {
	for _, v := range [][]float64{{1, 2, 3}, {-4, 0.5, -2}, {0, 0, 7}} {
		if got := Spherical2Cartesian(Cartesian2Spherical(v)); !vectorsEqual(got, v) {
			t.Fatalf("round trip of %+v gave %+v", v, got)
		}
	}
	if !vectorsEqual(Cartesian2Spherical([]float64{0, 0, 0}), []float64{0, 0, 0}) {
		t.Fatal("spherical of zero vector")
	}
}

func TestDegRad(t *testing.T) {
	if ok, err := anglesEqual(math.Pi, Deg2rad(180)); !ok {
		t.Fatal(err)
	}
	if ok, err := anglesEqual(1.5*math.Pi, Deg2rad(-90)); !ok {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(Rad2deg(math.Pi), 180, testε) {
		t.Fatal("Rad2deg(π)")
	}
	if !floats.EqualWithinAbs(Rad2deg(-math.Pi/2), 270, testε) {
		t.Fatal("Rad2deg must wrap negatives positive")
	}
}

func TestWrapLongitude(t *testing.T) {
	cases := map[float64]float64{0: 0, 180: 180, -180: 180, 190: -170, -190: 170, 360: 0, 540: 180}
	for in, want := range cases {
		if got := wrapLongitudeDeg(in); !floats.EqualWithinAbs(got, want, testε) {
			t.Fatalf("wrap(%f) = %f, expected %f", in, got, want)
		}
	}
}
