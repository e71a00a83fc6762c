package impact

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestSolveKeplerCircular(t *testing.T) {
	for M := 0.0; M < 4*math.Pi; M += 0.1 {
		if E := SolveKepler(M, 0); E != M {
			t.Fatalf("E != M for a circular orbit: M=%f E=%f", M, E)
		}
	}
}

func TestSolveKeplerResidual(t *testing.T) {
	for e := 0.0; e <= 0.9; e += 0.1 {
		for M := 0.0; M < 2*math.Pi; M += 0.05 {
			E := SolveKepler(M, e)
			if resid := math.Abs(E - e*math.Sin(E) - M); resid >= 1e-7 {
				t.Fatalf("residual %e too large for M=%f e=%f", resid, M, e)
			}
		}
	}
}

func TestSolveKeplerReference(t *testing.T) {
	E := SolveKepler(math.Pi/2, 0.5)
	if resid := math.Abs(E - 0.5*math.Sin(E) - math.Pi/2); resid >= 1e-8 {
		t.Fatalf("residual %e for M=π/2 e=0.5", resid)
	}
}

func TestTrueAnomalyCircular(t *testing.T) {
	for E := 0.1; E < math.Pi; E += 0.2 {
		if ok, err := anglesEqual(E, TrueAnomaly(E, 0)); !ok {
			t.Fatalf("circular true anomaly: %s", err)
		}
	}
}

func TestConicRadiusIdentity(t *testing.T) {
	oe := NewOrbitalElements(1.2*AU, 0.35, 7.2, 112.3, 54.9, 20.0, MeanMotion(1.2*AU), J2000)
	for days := 0.0; days < 500; days += 13.7 {
		jd := J2000 + days
		M := oe.M0 + oe.n*(jd-oe.Epoch)*86400
		E := SolveKepler(M, oe.e)
		ν := TrueAnomaly(E, oe.e)
		r := oe.ConicRadius(ν)
		if got := norm(oe.StateAt(jd)); !floats.EqualWithinAbs(got, r, 1e-3) {
			t.Fatalf("|R|=%f != conic radius %f at jd=%f", got, r, jd)
		}
	}
}

func TestStateAtPerihelion(t *testing.T) {
	// M0 = 0 at epoch puts the object exactly at perihelion.
	oe := NewOrbitalElements(AU, 0.2, 5.0, 40.0, 10.0, 0, MeanMotion(AU), J2000)
	if got, want := norm(oe.StateAt(J2000)), AU*(1-0.2); !floats.EqualWithinAbs(got, want, 1) {
		t.Fatalf("perihelion distance %f, expected %f", got, want)
	}
}

func TestOrbitalPeriod(t *testing.T) {
	oe := NewOrbitalElements(AU, 0.0167, 0, 0, 0, 0, MeanMotion(AU), J2000)
	yearSec := 365.25 * 86400
	if p := oe.Period(); math.Abs(p-yearSec)/yearSec > 0.01 {
		t.Fatalf("1 AU period %f s is not a year", p)
	}
}

func TestStateAtPlaneRotation(t *testing.T) {
	// Zero inclination keeps the orbit in the ecliptic plane.
	flat := NewOrbitalElements(AU, 0.1, 0, 30, 60, 45, MeanMotion(AU), J2000)
	if z := flat.StateAt(J2000 + 100)[2]; !floats.EqualWithinAbs(z, 0, 1e-3) {
		t.Fatalf("flat orbit left the plane: z=%f", z)
	}
	// A polar orbit reaches out of the plane.
	polar := NewOrbitalElements(AU, 0.1, 90, 0, 0, 90, MeanMotion(AU), J2000)
	if z := math.Abs(polar.StateAt(J2000)[2]); z < 1e6 {
		t.Fatalf("polar orbit stayed in the plane: z=%f", z)
	}
}
