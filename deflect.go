package impact

import (
	"fmt"
	"strings"
)

// DeflectionMethod enumerates the supported deflection techniques.
type DeflectionMethod uint8

const (
	// Kinetic is a kinetic impactor (DART-style).
	Kinetic DeflectionMethod = iota + 1
	// GravityTractor is a station-keeping gravity tractor.
	GravityTractor
	// Nuclear is a standoff nuclear detonation.
	Nuclear
)

func (m DeflectionMethod) String() string {
	switch m {
	case Kinetic:
		return "kinetic"
	case GravityTractor:
		return "gravity"
	case Nuclear:
		return "nuclear"
	}
	panic("cannot stringify unknown deflection method")
}

// efficiency returns the method-specific momentum transfer constant.
func (m DeflectionMethod) efficiency() float64 {
	switch m {
	case Kinetic:
		return 0.5
	case GravityTractor:
		return 0.01
	case Nuclear:
		return 10
	}
	panic("no efficiency for unknown deflection method")
}

// DeflectionMethodFromString returns the method from its name.
func DeflectionMethodFromString(name string) (DeflectionMethod, error) {
	switch strings.ToLower(name) {
	case "kinetic":
		return Kinetic, nil
	case "gravity", "gravity-tractor":
		return GravityTractor, nil
	case "nuclear":
		return Nuclear, nil
	default:
		return 0, fmt.Errorf("undefined deflection method '%s'", name)
	}
}

// DeflectionScenario are the caller-validated inputs of the feasibility model.
type DeflectionScenario struct {
	Method          DeflectionMethod
	AsteroidMass    float64 // kg
	WarningTimeDays float64
	MissDistanceKm  float64 // required miss distance at closest approach
}

// DeflectionResult is the feasibility estimate. RequiredDeltaV is in m/s.
type DeflectionResult struct {
	RequiredDeltaV     float64
	ImpactorMass       float64 // kg
	Feasible           bool
	SuccessProbability float64
}

// Deflect evaluates the first-order deflection feasibility model. The Δv is
// the linear miss-distance-over-warning-time approximation, only valid for
// small deflections over spans short relative to an orbital period. The
// impactor mass scales the Δv (in km/s) by the asteroid mass over the method
// efficiency. Success probability is a step function of warning time,
// deliberately discrete rather than a smoothed curve.
func Deflect(s DeflectionScenario) DeflectionResult {
	warningSec := s.WarningTimeDays * 86400
	deltaV := s.MissDistanceKm * 1e3 / warningSec // m/s
	impactorMass := s.AsteroidMass * (deltaV / 1e3) / (s.Method.efficiency() * 1e3)

	var p float64
	switch {
	case s.WarningTimeDays > 365:
		p = 0.9
	case s.WarningTimeDays > 180:
		p = 0.7
	case s.WarningTimeDays > 90:
		p = 0.5
	default:
		p = 0.2
	}
	return DeflectionResult{
		RequiredDeltaV:     deltaV,
		ImpactorMass:       impactorMass,
		Feasible:           s.WarningTimeDays > 30 && impactorMass < 50000,
		SuccessProbability: p,
	}
}
