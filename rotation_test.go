package impact

import (
	"math"
	"testing"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

func TestR3QuarterTurn(t *testing.T) {
	got := MxV33(R3(math.Pi/2), []float64{1, 0, 0})
	if !vectorsEqual(got, []float64{0, -1, 0}) {
		t.Fatalf("R3(π/2)·x̂ = %+v", got)
	}
}

func TestRotationsOrthonormal(t *testing.T) {
	for name, rot := range map[string]func(float64) *mat64.Dense{"R1": R1, "R2": R2, "R3": R3} {
		for _, θ := range []float64{0, 0.3, math.Pi / 2, 2.1, math.Pi} {
			m := rot(θ)
			var mt mat64.Dense
			mt.Mul(m.T(), m)
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					want := 0.0
					if i == j {
						want = 1
					}
					if !floats.EqualWithinAbs(mt.At(i, j), want, testε) {
						t.Fatalf("%s(%f) is not orthonormal", name, θ)
					}
				}
			}
		}
	}
}

func TestR3R1R3Composition(t *testing.T) {
	θ1, θ2, θ3 := 0.7, 1.1, -0.4
	var inner, expected mat64.Dense
	inner.Mul(R3(θ3), R1(θ2))
	expected.Mul(&inner, R3(θ1))
	got := R3R1R3(θ1, θ2, θ3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !floats.EqualWithinAbs(got.At(i, j), expected.At(i, j), testε) {
				t.Fatalf("R3R1R3 differs from R3·R1·R3 at (%d,%d)", i, j)
			}
		}
	}
}

func TestPQW2EclipticNodeRotation(t *testing.T) {
	// With zero inclination and argument of periapsis, the periapsis direction
	// ends up at ecliptic longitude Ω.
	Ω := Deg2rad(60)
	got := PQW2Ecliptic(0, 0, Ω, []float64{1, 0, 0})
	if !vectorsEqual(got, []float64{math.Cos(Ω), math.Sin(Ω), 0}) {
		t.Fatalf("node rotation gave %+v", got)
	}
}

func TestPQW2EclipticPolarMomentum(t *testing.T) {
	// For a 90° inclined orbit with Ω=0 the orbit normal lies along -ŷ.
	got := PQW2Ecliptic(math.Pi/2, 0, 0, []float64{0, 0, 1})
	if !vectorsEqual(got, []float64{0, -1, 0}) {
		t.Fatalf("orbit normal %+v", got)
	}
}

func TestECIECEFRoundTrip(t *testing.T) {
	v := []float64{7000, -1200, 300}
	θ := 1.234
	if got := ECEF2ECI(ECI2ECEF(v, θ), θ); !vectorsEqual(got, v) {
		t.Fatalf("frame round trip gave %+v", got)
	}
}
