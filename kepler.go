package impact

import (
	"math"
)

const (
	// keplerTolerance is the Newton-Raphson convergence tolerance in radians.
	keplerTolerance = 1e-8
	// keplerMaxIterations caps the Newton-Raphson iterations.
	keplerMaxIterations = 20
)

// OrbitalElements defines a closed elliptical orbit at an epoch. Angles are
// stored in radians, the semi-major axis in km and the mean motion in rad/s.
// Values are immutable once loaded: propagation returns new state, it never
// updates the elements.
type OrbitalElements struct {
	a, e, i, Ω, ω float64
	M0            float64 // mean anomaly at epoch
	n             float64 // mean motion, rad/s
	Epoch         float64 // Julian date
}

// NewOrbitalElements returns the elements from caller-validated values.
// WARNING: angles must be in degrees, not radians (matching ephemerides as
// published); the mean motion is in rad/s.
func NewOrbitalElements(a, e, i, Ω, ω, M0 float64, n, epoch float64) OrbitalElements {
	return OrbitalElements{a, e, Deg2rad(i), Deg2rad(Ω), Deg2rad(ω), Deg2rad(M0), n, epoch}
}

// SemiMajorAxis returns a in km.
func (oe OrbitalElements) SemiMajorAxis() float64 { return oe.a }

// Eccentricity returns e.
func (oe OrbitalElements) Eccentricity() float64 { return oe.e }

// SemiParameter returns the semi parameter p = a(1-e²).
func (oe OrbitalElements) SemiParameter() float64 {
	return oe.a * (1 - oe.e*oe.e)
}

// Period returns the orbital period in seconds.
func (oe OrbitalElements) Period() float64 {
	return 2 * math.Pi / oe.n
}

// SolveKepler solves Kepler's equation M = E - e·sin(E) for the eccentric
// anomaly E via Newton-Raphson with E₀ = M. If the iteration has not converged
// after keplerMaxIterations, the last iterate is returned as is: at the
// eccentricities this package supports the residual stays small enough for an
// educational model, and callers prefer a best-effort answer over an error.
func SolveKepler(M, e float64) float64 {
	E := M
	for iter := 0; iter < keplerMaxIterations; iter++ {
		f := E - e*math.Sin(E) - M
		if math.Abs(f) < keplerTolerance {
			break
		}
		E -= f / (1 - e*math.Cos(E))
	}
	return E
}

// TrueAnomaly converts an eccentric anomaly to the true anomaly via the
// half-angle form, which is quadrant-safe.
func TrueAnomaly(E, e float64) float64 {
	sE2, cE2 := math.Sincos(E / 2)
	return 2 * math.Atan2(math.Sqrt(1+e)*sE2, math.Sqrt(1-e)*cE2)
}

// ConicRadius returns the orbit radius in km at the provided true anomaly.
func (oe OrbitalElements) ConicRadius(ν float64) float64 {
	return oe.SemiParameter() / (1 + oe.e*math.Cos(ν))
}

// StateAt returns the heliocentric ecliptic position in km at the provided
// Julian date. The mean anomaly is advanced linearly from the epoch with no
// modulo reduction, so very long propagation spans slowly lose precision as M
// grows; at the approach timescales this package serves the effect is nil.
func (oe OrbitalElements) StateAt(jd float64) []float64 {
	M := oe.M0 + oe.n*(jd-oe.Epoch)*86400
	E := SolveKepler(M, oe.e)
	ν := TrueAnomaly(E, oe.e)
	r := oe.ConicRadius(ν)
	sν, cν := math.Sincos(ν)
	return PQW2Ecliptic(oe.i, oe.ω, oe.Ω, []float64{r * cν, r * sν, 0})
}

// MeanMotion returns the two-body mean motion in rad/s for a heliocentric
// semi-major axis in km.
func MeanMotion(a float64) float64 {
	return math.Sqrt(Sun.μ / (a * a * a))
}
