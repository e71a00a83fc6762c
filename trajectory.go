package impact

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"runtime"
	"time"

	kitlog "github.com/go-kit/kit/log"
)

const (
	// escapeCheckSteps is the number of steps after which the escape heuristic kicks in.
	escapeCheckSteps = 1000
	// escapeDistance is the geocentric distance in km past which a run is declared escaped.
	escapeDistance = 2e6
	// progressEverySteps is how often the progress callback fires.
	progressEverySteps = 500
	// yieldEverySteps is how often the run loop yields to its host and polls for cancellation.
	yieldEverySteps = 2048
)

// ErrNumericalFailure reports that a non-finite value propagated through a
// computation. It is deliberately distinct from a no-collision outcome so that
// callers cannot confuse the two.
var ErrNumericalFailure = errors.New("numerical computation failed")

// Asteroid is a point mass with an append-only trajectory history. An Asteroid
// is exclusively owned by one simulation run and discarded at run end.
type Asteroid struct {
	Radius  float64 // km
	Mass    float64 // kg
	R, V    []float64 // km and km/s, geocentric inertial
	History [][]float64
}

// NewAsteroid returns an asteroid from its radius in km, mass in kg and
// initial geocentric state in km and km/s.
func NewAsteroid(radius, mass float64, R, V []float64) *Asteroid {
	return &Asteroid{radius, mass, R, V, nil}
}

// NewAsteroidFromDiameter returns an asteroid from its diameter in meters and
// bulk density in kg/m³.
func NewAsteroidFromDiameter(diameter, density float64, R, V []float64) *Asteroid {
	return NewAsteroid(diameter/2/1e3, MassFromDiameter(diameter, density), R, V)
}

// ThrustControl defines an additional force applied to the asteroid during
// integration, e.g. a deflection burn.
type ThrustControl interface {
	// Control returns the applied force in newtons, inertial frame.
	Control(elapsed float64) []float64
	Reason() string
}

// Coast is a thrust control which does not thrust.
type Coast struct{}

// Control implements the ThrustControl interface.
func (cl Coast) Control(elapsed float64) []float64 { return []float64{0, 0, 0} }

// Reason implements the ThrustControl interface.
func (cl Coast) Reason() string { return "coast" }

// ConstantThrust applies a fixed force for a bounded duration.
type ConstantThrust struct {
	F      []float64 // newtons, inertial frame
	Until  float64   // seconds of elapsed simulation time; 0 means unbounded
	reason string
}

// NewConstantThrust returns a constant deflection thrust.
func NewConstantThrust(F []float64, until float64, reason string) ConstantThrust {
	return ConstantThrust{F, until, reason}
}

// Control implements the ThrustControl interface.
func (cl ConstantThrust) Control(elapsed float64) []float64 {
	if cl.Until > 0 && elapsed > cl.Until {
		return []float64{0, 0, 0}
	}
	return cl.F
}

// Reason implements the ThrustControl interface.
func (cl ConstantThrust) Reason() string { return cl.reason }

// Outcome is the tagged result variant of a trajectory run.
type Outcome uint8

const (
	// Collided means the asteroid reached the body surface.
	Collided Outcome = iota + 1
	// NoCollision means the step budget was exhausted or the run was cancelled.
	NoCollision
	// Escaped means the escape heuristic aborted the run.
	Escaped
)

func (o Outcome) String() string {
	switch o {
	case Collided:
		return "collided"
	case NoCollision:
		return "no-collision"
	case Escaped:
		return "escaped"
	}
	panic("cannot stringify unknown outcome")
}

// ImpactGeometry describes where and how the asteroid struck the body.
type ImpactGeometry struct {
	Latitude  float64 // degrees
	Longitude float64 // degrees, corrected for accumulated body rotation
	Angle     float64 // degrees from local horizontal
	Speed     float64 // km/s at contact
	Elapsed   float64 // seconds since simulation start
}

func (g ImpactGeometry) String() string {
	return fmt.Sprintf("impact at (%.3f, %.3f) angle=%.1f° v=%.2f km/s t+%.0fs", g.Latitude, g.Longitude, g.Angle, g.Speed, g.Elapsed)
}

// RunResult is the result of a trajectory run. Impact is nil unless the
// outcome is Collided.
type RunResult struct {
	Outcome Outcome
	Impact  *ImpactGeometry
	Steps   int
	Elapsed float64 // seconds
}

// Simulation integrates one asteroid under the Newtonian gravity of one
// massive rotating body. All state is exclusively owned by the run: distinct
// simulations are safe to execute concurrently.
type Simulation struct {
	Body    *CelestialBody
	Ast     *Asteroid
	ctrl    ThrustControl
	elapsed float64
	steps   int
	logger  kitlog.Logger
}

// NewSimulation returns a simulation of the asteroid around the body. A nil
// control coasts.
func NewSimulation(body *CelestialBody, ast *Asteroid, ctrl ThrustControl) *Simulation {
	if ctrl == nil {
		ctrl = Coast{}
	}
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "subsys", "trajectory")
	return &Simulation{body, ast, ctrl, 0, 0, logger}
}

// SetLogger overrides the default logfmt stdout logger.
func (s *Simulation) SetLogger(logger kitlog.Logger) {
	s.logger = logger
}

// Elapsed returns the simulated seconds since start.
func (s *Simulation) Elapsed() float64 { return s.elapsed }

// Steps returns the number of integration steps taken.
func (s *Simulation) Steps() int { return s.steps }

// Acceleration returns the gravitational plus thrust acceleration in km/s² at
// the asteroid's current state. A zero separation yields zero gravity rather
// than a division fault.
func (s *Simulation) Acceleration() []float64 {
	acc := make([]float64, 3)
	r := norm(s.Ast.R)
	if r > 0 {
		bodyAcc := -s.Body.μ / (r * r * r)
		for i := 0; i < 3; i++ {
			acc[i] = bodyAcc * s.Ast.R[i]
		}
	}
	F := s.ctrl.Control(s.elapsed)
	for i := 0; i < 3; i++ {
		// N/kg is m/s²; state is in km.
		acc[i] += F[i] / s.Ast.Mass / 1e3
	}
	return acc
}

// Step advances the state by dt seconds using semi-implicit Euler with a
// position correction term, appends the new position to the trajectory
// history and advances the body rotation. Adequate at sub-day timescales;
// this is not a long-horizon symplectic integrator.
func (s *Simulation) Step(dt float64) {
	acc := s.Acceleration()
	for i := 0; i < 3; i++ {
		s.Ast.V[i] += acc[i] * dt
		s.Ast.R[i] += s.Ast.V[i]*dt + 0.5*acc[i]*dt*dt
	}
	s.Ast.History = append(s.Ast.History, []float64{s.Ast.R[0], s.Ast.R[1], s.Ast.R[2]})
	s.Body.RotationAngle = math.Mod(s.Body.RotationAngle+s.Body.RotationRate*dt, 2*math.Pi)
	s.elapsed += dt
	s.steps++
	stepsTotal.Inc()
}

// Collided returns whether the asteroid has reached the body surface. The
// boundary is inclusive.
func (s *Simulation) Collided() bool {
	return norm(s.Ast.R) <= s.Body.Radius+s.Ast.Radius
}

// Geometry derives the impact geometry from the current state: the angle from
// local horizontal via the position/velocity dot product, and the sub-impact
// point from the position vector rotated into the body-fixed frame.
func (s *Simulation) Geometry() ImpactGeometry {
	rHat := unit(s.Ast.R)
	vHat := unit(s.Ast.V)
	angle := math.Acos(dot(rHat, vHat))*rad2deg - 90
	rECEF := ECI2ECEF(s.Ast.R, s.Body.RotationAngle)
	sph := Cartesian2Spherical(rECEF)
	lat := 90 - sph[1]*rad2deg
	lon := wrapLongitudeDeg(sph[2] * rad2deg)
	return ImpactGeometry{lat, lon, angle, norm(s.Ast.V), s.elapsed}
}

// Run integrates until collision, the step budget is exhausted, or the escape
// heuristic aborts. Progress is reported every 500 steps as a percentage of
// maxSteps; the loop yields to its host every few thousand steps so a
// single-threaded caller stays responsive. Cancelling the context produces a
// well-formed NoCollision result, never an error. Only a non-finite state
// surfaces as an error, wrapped around ErrNumericalFailure.
func (s *Simulation) Run(ctx context.Context, maxSteps int, dt float64, onProgress func(pct float64)) (RunResult, error) {
	start := time.Now()
	s.logger.Log("level", "info", "status", "started", "maxSteps", maxSteps, "dt(s)", dt, "thrust", s.ctrl.Reason())
	for step := 0; step < maxSteps; step++ {
		if s.Collided() {
			geom := s.Geometry()
			s.finish(Collided, start)
			return RunResult{Collided, &geom, s.steps, s.elapsed}, nil
		}
		if step > escapeCheckSteps && norm(s.Ast.R) > escapeDistance {
			s.finish(Escaped, start)
			return RunResult{Escaped, nil, s.steps, s.elapsed}, nil
		}
		if step%yieldEverySteps == 0 {
			select {
			case <-ctx.Done():
				s.logger.Log("level", "warning", "status", "cancelled", "steps", s.steps)
				s.finish(NoCollision, start)
				return RunResult{NoCollision, nil, s.steps, s.elapsed}, nil
			default:
				runtime.Gosched()
			}
		}
		if step > 0 && step%progressEverySteps == 0 && onProgress != nil {
			onProgress(100 * float64(step) / float64(maxSteps))
		}
		s.Step(dt)
		if !stateFinite(s.Ast) {
			s.logger.Log("level", "critical", "status", "diverged", "steps", s.steps)
			runsTotal.WithLabelValues("failed").Inc()
			runDuration.Observe(time.Since(start).Seconds())
			return RunResult{}, fmt.Errorf("%w: non-finite state after %d steps", ErrNumericalFailure, s.steps)
		}
	}
	s.finish(NoCollision, start)
	return RunResult{NoCollision, nil, s.steps, s.elapsed}, nil
}

func (s *Simulation) finish(o Outcome, start time.Time) {
	runsTotal.WithLabelValues(o.String()).Inc()
	runDuration.Observe(time.Since(start).Seconds())
	s.logger.Log("level", "info", "status", "finished", "outcome", o, "steps", s.steps, "elapsed(s)", s.elapsed)
}

func stateFinite(a *Asteroid) bool {
	for i := 0; i < 3; i++ {
		if math.IsNaN(a.R[i]) || math.IsInf(a.R[i], 0) || math.IsNaN(a.V[i]) || math.IsInf(a.V[i], 0) {
			return false
		}
	}
	return true
}
