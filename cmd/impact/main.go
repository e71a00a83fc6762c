package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/asterope/impact"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// This binary only reads a scenario file and runs the requested studies.

const defaultScenario = "~~unset~~"

var (
	scenario string
	verbose  bool
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "scenario TOML file")
	flag.BoolVar(&verbose, "verbose", false, "print run progress")
}

func main() {
	flag.Parse()
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	scenario = strings.Replace(scenario, ".toml", "", 1)
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("./%s.toml: Error %s", scenario, err)
	}

	ran := false
	if viper.IsSet("impact") {
		runImpact()
		ran = true
	}
	if viper.IsSet("deflection") {
		runDeflection()
		ran = true
	}
	if viper.IsSet("approach") {
		runApproach()
		ran = true
	}
	if !ran {
		log.Fatal("scenario defines no [impact], [deflection] or [approach] table")
	}
}

func runImpact() {
	p := impact.ImpactParameters{
		Diameter: viper.GetFloat64("impact.diameter"),
		Velocity: viper.GetFloat64("impact.velocity"),
		Angle:    viper.GetFloat64("impact.angle"),
		Density:  viper.GetFloat64("impact.density"),
		Location: impact.ImpactLocation{
			Latitude:   viper.GetFloat64("impact.lat"),
			Longitude:  viper.GetFloat64("impact.lon"),
			IsOcean:    viper.GetBool("impact.ocean"),
			WaterDepth: viper.GetFloat64("impact.depth"),
		},
	}
	res, err := impact.CalculateImpact(p, impact.WorldCities)
	if err != nil {
		log.Fatalf("impact pipeline failed: %s", err)
	}
	fmt.Printf("=== IMPACT ===\nenergy: %.3g J (%.2f Mt TNT)\n", res.Energy.Joules, res.Energy.Megatons)
	if res.Crater != nil {
		fmt.Printf("crater: %.0f m wide, %.0f m deep\n", res.Crater.Diameter, res.Crater.Depth)
	}
	if res.Tsunami != nil {
		fmt.Printf("tsunami: %.1f m wave, %.0f m/s, %.0f km radius\n", res.Tsunami.WaveHeightM, res.Tsunami.SpeedMS, res.Tsunami.RadiusKm)
	}
	fmt.Printf("seismic: M%.1f felt to %.0f km\n", res.Seismic.Magnitude, res.Seismic.RadiusKm)
	fmt.Printf("blast (km): fireball=%.1f thermal=%.1f airblast=%.1f radiation=%.1f\n",
		res.Blast.FireballKm, res.Blast.ThermalKm, res.Blast.AirblastKm, res.Blast.RadiationKm)
	fmt.Printf("casualties: %d dead, %d injured (%s)\n", res.Casualties.Deaths, res.Casualties.Injured, res.Casualties.Severity)
	for _, c := range res.Casualties.AffectedCities {
		fmt.Printf("  %s: %.0f affected at %.0f km\n", c.Name, c.Affected, c.DistanceKm)
	}
}

func runDeflection() {
	method, err := impact.DeflectionMethodFromString(viper.GetString("deflection.method"))
	if err != nil {
		log.Fatalf("could not understand method: %s", err)
	}
	mass := impact.MassFromDiameter(viper.GetFloat64("deflection.diameter"), viper.GetFloat64("deflection.density"))
	res := impact.Deflect(impact.DeflectionScenario{
		Method:          method,
		AsteroidMass:    mass,
		WarningTimeDays: viper.GetFloat64("deflection.warning_days"),
		MissDistanceKm:  viper.GetFloat64("deflection.miss_km"),
	})
	fmt.Printf("=== DEFLECTION (%s) ===\nΔv: %.4f m/s\nimpactor: %.0f kg\nfeasible: %v\nsuccess probability: %.0f%%\n",
		method, res.RequiredDeltaV, res.ImpactorMass, res.Feasible, res.SuccessProbability*100)
}

func runApproach() {
	R := cast.ToFloat64Slice(viper.Get("approach.position"))
	V := cast.ToFloat64Slice(viper.Get("approach.velocity"))
	if len(R) != 3 || len(V) != 3 {
		log.Fatal("approach.position and approach.velocity must be 3-vectors (km, km/s)")
	}
	ast := impact.NewAsteroidFromDiameter(
		viper.GetFloat64("approach.diameter"),
		viper.GetFloat64("approach.density"),
		R, V)
	sim := impact.NewSimulation(impact.EarthBody(), ast, nil)
	maxSteps := viper.GetInt("approach.max_steps")
	if maxSteps == 0 {
		maxSteps = 100000
	}
	dt := viper.GetFloat64("approach.step")
	if dt == 0 {
		dt = 1
	}
	var onProgress func(float64)
	if verbose {
		onProgress = func(pct float64) { log.Printf("progress: %.1f%%", pct) }
	}
	res, err := sim.Run(context.Background(), maxSteps, dt, onProgress)
	if err != nil {
		log.Fatalf("trajectory run failed: %s", err)
	}
	fmt.Printf("=== APPROACH ===\noutcome: %s after %d steps (%.0f s)\n", res.Outcome, res.Steps, res.Elapsed)
	if res.Impact != nil {
		fmt.Println(res.Impact)
	}
	if name := viper.GetString("approach.export"); name != "" {
		startJD := viper.GetFloat64("approach.epoch_jd")
		if err := impact.ExportHistory(impact.ExportConfig{Filename: name}, startJD, dt, ast.History); err != nil {
			log.Fatalf("could not export trajectory: %s", err)
		}
	}
}
