package impact

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/julian"
)

const (
	// AU is one astronomical unit in kilometers.
	AU = 1.49597870700e8
	// J2000 is the Julian date of the J2000.0 epoch.
	J2000 = 2451545.0
	// SiderealDay is the duration of one Earth rotation in seconds.
	SiderealDay = 86164.0
)

// CelestialBody defines a massive rotating body. The rotation angle is the only
// mutable field; it is advanced by the integration loop of the simulation which
// owns the body.
type CelestialBody struct {
	Name          string
	Radius        float64 // km
	Mass          float64 // kg
	μ             float64 // km³/s²
	RotationRate  float64 // rad/s
	RotationAngle float64 // rad, accumulated since simulation start
}

// GM returns μ (which is unexported because it's a lowercase letter).
func (c CelestialBody) GM() float64 {
	return c.μ
}

// String implements the Stringer interface.
func (c CelestialBody) String() string {
	return c.Name + " body"
}

// EscapeVelocity returns the surface escape velocity in km/s.
func (c CelestialBody) EscapeVelocity() float64 {
	return math.Sqrt(2 * c.μ / c.Radius)
}

// EarthBody returns a fresh Earth with its rotation angle at zero. Each
// simulation run must own its copy since the angle mutates during integration.
func EarthBody() *CelestialBody {
	e := earth
	return &e
}

/* Definitions */

// Sun is our closest star.
var Sun = CelestialBody{"Sun", 695700, 1.98892e30, 1.32712440017987e11, 0, 0}

var earth = CelestialBody{"Earth", 6378.1363, 5.97237e24, 3.98600433e5, 2 * math.Pi / SiderealDay, 0}

// UnixMillisToJD converts Unix epoch milliseconds to a Julian date. This is a
// plain linear offset; calendar subtleties are delegated to meeus/julian when
// starting from a time.Time.
func UnixMillisToJD(ms float64) float64 {
	return ms/86400000.0 + 2440587.5
}

// TimeToJD converts a time.Time to a Julian date.
func TimeToJD(dt time.Time) float64 {
	return julian.TimeToJD(dt.UTC())
}

// JDToTime converts a Julian date to a time.Time in UTC.
func JDToTime(jd float64) time.Time {
	return julian.JDToTime(jd).UTC()
}

// EarthHeliocentricPosition returns the heliocentric ecliptic position of the
// Earth in km at the provided Julian date. The model is the low-precision
// solar ephemeris of the Astronomical Almanac: mean longitude, a two-term
// equation of center and an eccentricity-based distance series. Expect errors
// below 15,000 km; this is deliberately not a VSOP87-grade model.
func EarthHeliocentricPosition(jd float64) []float64 {
	d := jd - J2000
	// Mean longitude and mean anomaly of the Sun, in degrees.
	L := 280.460 + 0.9856474*d
	g := Deg2rad(math.Mod(357.528+0.9856003*d, 360))
	// Geocentric apparent longitude of the Sun.
	λ := Deg2rad(math.Mod(L+1.915*math.Sin(g)+0.020*math.Sin(2*g), 360))
	// Sun-Earth distance in AU.
	r := 1.00014 - 0.01671*math.Cos(g) - 0.00014*math.Cos(2*g)
	// The heliocentric longitude of the Earth is the geocentric longitude of
	// the Sun plus half a turn.
	sλ, cλ := math.Sincos(λ + math.Pi)
	return []float64{r * AU * cλ, r * AU * sλ, 0}
}
