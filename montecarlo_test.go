package impact

import (
	"context"
	"math"
	"testing"
)

func TestImpactCorridorCertainHit(t *testing.T) {
	body := EarthBody()
	nominal := NewAsteroid(0.05, 1e9, []float64{body.Radius + 100, 0, 0}, []float64{-5, 0, 0})
	res, err := ImpactCorridor(context.Background(), nominal, CorridorSpec{
		Samples:  8,
		PosSigma: 1e-9,
		VelSigma: 1e-9,
		MaxSteps: 1000,
		Dt:       1,
		Seed:     42,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Impacts != 8 || res.ImpactProbability != 1 {
		t.Fatalf("%d/%d impacts", res.Impacts, res.Samples)
	}
	// A radial fall with negligible scatter lands at the sub-body point, less
	// the fraction of a degree the body rotates during the fall.
	if math.Abs(res.MeanLatitude) > 0.2 || math.Abs(res.MeanLongitude) > 0.2 {
		t.Fatalf("corridor centered at (%f, %f)", res.MeanLatitude, res.MeanLongitude)
	}
	if res.LatSpread > 0.1 || res.LonSpread > 0.1 {
		t.Fatalf("corridor spread (%f, %f) with near-zero scatter", res.LatSpread, res.LonSpread)
	}
}

func TestImpactCorridorCertainMiss(t *testing.T) {
	nominal := NewAsteroid(0.05, 1e9, []float64{3e6, 0, 0}, []float64{20, 0, 0})
	res, err := ImpactCorridor(context.Background(), nominal, CorridorSpec{
		Samples:  4,
		PosSigma: 1,
		VelSigma: 0.001,
		MaxSteps: 2000,
		Dt:       1,
		Seed:     1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Impacts != 0 || res.ImpactProbability != 0 {
		t.Fatalf("%d impacts on an escaping nominal", res.Impacts)
	}
	if res.LatSpread != 0 || res.LonSpread != 0 {
		t.Fatal("spread without impacts")
	}
}

func TestImpactCorridorAntimeridian(t *testing.T) {
	// A radial fall onto longitude 180: the scatter splits the samples across
	// the ±180° seam, yet the corridor must stay a tight cluster there rather
	// than a 360°-wide band with its mean near Greenwich.
	body := EarthBody()
	nominal := NewAsteroid(0.05, 1e9, []float64{-(body.Radius + 100), 0, 0}, []float64{5, 0, 0})
	res, err := ImpactCorridor(context.Background(), nominal, CorridorSpec{
		Samples:  16,
		PosSigma: 1e-9,
		VelSigma: 1e-9,
		MaxSteps: 1000,
		Dt:       1,
		Seed:     3,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Impacts != 16 {
		t.Fatalf("%d/%d impacts", res.Impacts, res.Samples)
	}
	if math.Abs(res.MeanLongitude) < 179 {
		t.Fatalf("corridor mean longitude %f, expected near ±180", res.MeanLongitude)
	}
	if res.LonSpread > 1 {
		t.Fatalf("corridor spread %f° across the antimeridian", res.LonSpread)
	}
}

func TestImpactCorridorRejectsEmpty(t *testing.T) {
	nominal := NewAsteroid(0.05, 1e9, []float64{1e5, 0, 0}, []float64{0, 0, 0})
	if _, err := ImpactCorridor(context.Background(), nominal, CorridorSpec{Samples: 0}); err == nil {
		t.Fatal("zero samples must be rejected")
	}
}

func TestImpactCorridorCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	nominal := NewAsteroid(0.05, 1e9, []float64{1e5, 0, 0}, []float64{0, 1, 0})
	res, err := ImpactCorridor(ctx, nominal, CorridorSpec{Samples: 4, PosSigma: 1, VelSigma: 0.001, MaxSteps: 100000, Dt: 1, Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	if res.Impacts != 0 {
		t.Fatalf("cancelled runs counted %d impacts", res.Impacts)
	}
}
