package impact

import (
	"fmt"
	"math"
)

const (
	// TNTTonJoules is the energy of one ton of TNT.
	TNTTonJoules = 4.184e9
	// craterScaling is the crater diameter scaling constant, calibrated so a
	// 100 m stony impactor at 20 km/s and 45° opens a ~1.2 km crater.
	craterScaling = 10.0
	// g0 is the surface gravity in m/s².
	g0 = 9.81
)

// Blast radius power laws, radii in km from yields in megatons. The four
// zones carry independent coefficient/exponent pairs; their relative ordering
// is not guaranteed by construction at small yields.
const (
	fireballCoef  = 1.0
	fireballExp   = 0.33
	thermalCoef   = 1.6
	thermalExp    = 0.41
	airblastCoef  = 2.4
	airblastExp   = 0.33
	radiationCoef = 2.0
	radiationExp  = 0.41
)

// Tsunami scalings (ocean impacts only).
const (
	tsunamiHeightCoef = 5.0  // m per √Mt
	tsunamiRadiusCoef = 20.0 // km per Mt
)

// ImpactLocation is the surface point hit, with the terrain attributes the
// elevation collaborator supplies as opaque values.
type ImpactLocation struct {
	Latitude   float64
	Longitude  float64
	IsOcean    bool
	WaterDepth float64 // m, only meaningful when IsOcean
}

// ImpactParameters are the caller-validated inputs of the effects pipeline.
type ImpactParameters struct {
	Diameter float64 // m
	Velocity float64 // m/s, approach speed
	Angle    float64 // degrees from local horizontal, 0-90
	Density  float64 // kg/m³
	Location ImpactLocation
}

// Energy holds the kinetic energy of the impact in its three usual units.
type Energy struct {
	Joules   float64
	TNTTons  float64
	Megatons float64
}

// Crater describes the transient crater of a land impact, in meters (m³ for
// the volume).
type Crater struct {
	Diameter float64
	Depth    float64
	Volume   float64
}

// Seismic describes the earthquake-equivalent shaking.
type Seismic struct {
	Magnitude float64
	RadiusKm  float64
}

// Blast holds the four blast zone radii in km.
type Blast struct {
	FireballKm  float64
	ThermalKm   float64
	AirblastKm  float64
	RadiationKm float64
}

// Tsunami describes the wave generated by an ocean impact.
type Tsunami struct {
	WaveHeightM float64
	SpeedMS     float64
	RadiusKm    float64
}

// ImpactResult is the synchronous output of the pipeline. Crater is nil for
// ocean impacts and Tsunami is nil for land impacts.
type ImpactResult struct {
	Energy     Energy
	Crater     *Crater
	Seismic    Seismic
	Blast      Blast
	Tsunami    *Tsunami
	Casualties CasualtyResult
}

// MassFromDiameter returns the mass in kg of a spherical impactor of the
// provided diameter in m and density in kg/m³.
func MassFromDiameter(diameter, density float64) float64 {
	r := diameter / 2
	return density * (4.0 / 3.0) * math.Pi * r * r * r
}

// ImpactVelocity combines the approach speed with Earth's escape velocity.
// The composition splits the approach speed across vertical and horizontal
// components at the impact angle and only boosts the vertical one:
//
//	vVert  = v·sin(θ)            vHoriz = v·cos(θ)
//	vVert' = √(vVert² + vEsc·sinθ)
//	v'     = √(vVert'² + vHoriz²)
//
// The vEsc·sinθ term mixes km²/s² with km/s, so this is knowingly not
// dimensionally rigorous. Downstream reference yields were calibrated against
// this exact form, computed in km/s; do not "fix" it.
func ImpactVelocity(velocityMS, angleDeg float64) float64 {
	const vEsc = 11.2 // km/s
	v := velocityMS / 1e3
	sinθ, cosθ := math.Sincos(angleDeg * deg2rad)
	vVert2 := v * sinθ * v * sinθ
	vHoriz := v * cosθ
	vVert2 += vEsc * sinθ
	return math.Sqrt(vVert2+vHoriz*vHoriz) * 1e3
}

// CalculateImpact runs the deterministic effects pipeline: mass → energy →
// crater → seismic → blast → tsunami → casualties. The city registry is a
// read-only table shared freely across concurrent calls.
func CalculateImpact(p ImpactParameters, cities []CityRecord) (ImpactResult, error) {
	effectsTotal.Inc()
	mass := MassFromDiameter(p.Diameter, p.Density)
	v := ImpactVelocity(p.Velocity, p.Angle)
	energy := energyFrom(mass, v)
	if math.IsNaN(energy.Joules) || math.IsInf(energy.Joules, 0) {
		return ImpactResult{}, fmt.Errorf("%w: non-finite impact energy", ErrNumericalFailure)
	}
	res := ImpactResult{
		Energy:  energy,
		Seismic: seismicFrom(energy.Joules),
		Blast:   blastFrom(energy.Megatons),
	}
	if p.Location.IsOcean {
		t := tsunamiFrom(energy.Megatons, p.Location.WaterDepth)
		res.Tsunami = &t
	} else {
		c := craterFrom(p.Diameter, v/1e3, p.Angle)
		res.Crater = &c
	}
	res.Casualties = EstimateCasualties(p.Location.Latitude, p.Location.Longitude, res.Blast, cities)
	return res, nil
}

func energyFrom(mass, velocityMS float64) Energy {
	j := 0.5 * mass * velocityMS * velocityMS
	tons := j / TNTTonJoules
	return Energy{j, tons, tons / 1e6}
}

// craterFrom scales the crater from the impactor diameter in m, impact speed
// in km/s and angle in degrees. A grazing angle of zero collapses the
// diameter to zero via the sin term; that is a valid degenerate input.
func craterFrom(diameter, vKms, angleDeg float64) Crater {
	d := craterScaling * math.Pow(diameter, 0.78) * math.Pow(vKms, 0.44) * math.Pow(math.Sin(angleDeg*deg2rad), 0.33)
	depth := d / 5
	return Crater{d, depth, (math.Pi / 3) * (d / 2) * (d / 2) * depth}
}

func seismicFrom(joules float64) Seismic {
	m := 0.67*math.Log10(joules) - 5.87
	if m < 0 {
		m = 0
	}
	return Seismic{m, math.Pow(10, m-1)}
}

func blastFrom(megatons float64) Blast {
	return Blast{
		FireballKm:  fireballCoef * math.Pow(megatons, fireballExp),
		ThermalKm:   thermalCoef * math.Pow(megatons, thermalExp),
		AirblastKm:  airblastCoef * math.Pow(megatons, airblastExp),
		RadiationKm: radiationCoef * math.Pow(megatons, radiationExp),
	}
}

func tsunamiFrom(megatons, waterDepthM float64) Tsunami {
	return Tsunami{
		WaveHeightM: tsunamiHeightCoef * math.Sqrt(megatons),
		SpeedMS:     math.Sqrt(g0 * waterDepthM),
		RadiusKm:    tsunamiRadiusCoef * megatons,
	}
}
