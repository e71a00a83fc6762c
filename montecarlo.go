package impact

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/gonum/matrix/mat64"
	"github.com/gonum/stat/distmv"
)

// CorridorSpec configures a Monte Carlo impact-corridor estimate. The sigmas
// are 1-σ Gaussian uncertainties applied independently to each position and
// velocity component of the nominal state.
type CorridorSpec struct {
	Samples  int
	PosSigma float64 // km
	VelSigma float64 // km/s
	MaxSteps int
	Dt       float64 // seconds
	Seed     int64
}

// CorridorResult aggregates the sampled outcomes. The mean longitude is the
// circular (vector) mean and the longitude spread is measured around it, so a
// corridor straddling the antimeridian reports its true extent.
type CorridorResult struct {
	Samples           int
	Impacts           int
	ImpactProbability float64
	MeanLatitude      float64
	MeanLongitude     float64
	LatSpread         float64 // max-min of sampled impact latitudes
	LonSpread         float64
}

// ImpactCorridor samples Gaussian perturbations of the nominal asteroid state
// and integrates each realization independently. Every run owns its own body
// and asteroid, so the samples execute in parallel without locks on the
// shared inputs. Cancelling the context stops in-flight runs; their samples
// count as misses.
func ImpactCorridor(ctx context.Context, nominal *Asteroid, spec CorridorSpec) (CorridorResult, error) {
	if spec.Samples <= 0 {
		return CorridorResult{}, fmt.Errorf("corridor needs at least one sample, got %d", spec.Samples)
	}
	σ2 := make([]float64, 6)
	for i := 0; i < 3; i++ {
		σ2[i] = spec.PosSigma * spec.PosSigma
		σ2[i+3] = spec.VelSigma * spec.VelSigma
	}
	cov := mat64.NewSymDense(6, nil)
	for i, v := range σ2 {
		cov.SetSym(i, i, v)
	}
	mean := []float64{nominal.R[0], nominal.R[1], nominal.R[2], nominal.V[0], nominal.V[1], nominal.V[2]}
	noise, ok := distmv.NewNormal(mean, cov, rand.New(rand.NewSource(spec.Seed)))
	if !ok {
		return CorridorResult{}, fmt.Errorf("could not build state distribution")
	}

	// Sampling from distmv.Normal is not safe concurrently, so draw all the
	// states up front and only parallelize the integrations.
	states := make([][]float64, spec.Samples)
	for i := range states {
		states[i] = noise.Rand(nil)
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	res := CorridorResult{Samples: spec.Samples}
	var firstErr error
	var lats, lons []float64
	for _, s := range states {
		wg.Add(1)
		go func(s []float64) {
			defer wg.Done()
			ast := NewAsteroid(nominal.Radius, nominal.Mass, []float64{s[0], s[1], s[2]}, []float64{s[3], s[4], s[5]})
			sim := NewSimulation(EarthBody(), ast, nil)
			sim.SetLogger(discardLogger{})
			run, err := sim.Run(ctx, spec.MaxSteps, spec.Dt, nil)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			if run.Outcome != Collided {
				return
			}
			res.Impacts++
			lats = append(lats, run.Impact.Latitude)
			lons = append(lons, run.Impact.Longitude)
		}(s)
	}
	wg.Wait()
	if firstErr != nil {
		return CorridorResult{}, firstErr
	}
	if res.Impacts > 0 {
		latMin, latMax := lats[0], lats[0]
		var sumLat, sumSin, sumCos float64
		for i, lat := range lats {
			sumLat += lat
			if lat < latMin {
				latMin = lat
			}
			if lat > latMax {
				latMax = lat
			}
			sλ, cλ := math.Sincos(lons[i] * deg2rad)
			sumSin += sλ
			sumCos += cλ
		}
		res.MeanLatitude = sumLat / float64(res.Impacts)
		// Longitudes live on a circle: a per-component mean of points either
		// side of ±180° would land on the wrong side of the globe.
		res.MeanLongitude = wrapLongitudeDeg(math.Atan2(sumSin, sumCos) * rad2deg)
		res.LatSpread = latMax - latMin
		devMin, devMax := 0.0, 0.0
		for i, lon := range lons {
			dev := wrapLongitudeDeg(lon - res.MeanLongitude)
			if i == 0 || dev < devMin {
				devMin = dev
			}
			if i == 0 || dev > devMax {
				devMax = dev
			}
		}
		res.LonSpread = devMax - devMin
	}
	res.ImpactProbability = float64(res.Impacts) / float64(res.Samples)
	return res, nil
}

// discardLogger silences the per-sample run logs which would otherwise flood
// the output of a large corridor estimate.
type discardLogger struct{}

func (discardLogger) Log(keyvals ...interface{}) error { return nil }
