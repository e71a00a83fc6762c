package impact

import (
	"math"
	"sort"
)

const (
	// meanEarthRadius is the mean Earth radius in km used for great-circle distances.
	meanEarthRadius = 6371.0

	// Nearest-city fallback constants, applied when no city disc intersects
	// any blast zone.
	fallbackDecayKm     = 20.0  // e-folding distance of the urban density decay
	fallbackUrbanReach  = 50.0  // km within which the decayed city density applies
	fallbackRuralReach  = 200.0 // km within which the rural constant applies
	ruralDensity        = 25.0  // people per km²
	remoteDensity       = 2.0   // people per km²
	injuryRateOfExposed = 0.8   // share of the surviving exposed population injured
)

// blastZone couples a zone radius with its mortality rate. Zones are
// concentric discs around the impact point.
type blastZone struct {
	name      string
	radiusKm  float64
	mortality float64
}

func zonesFrom(b Blast) []blastZone {
	return []blastZone{
		{"fireball", b.FireballKm, 1.0},
		{"thermal", b.ThermalKm, 0.9},
		{"airblast", b.AirblastKm, 0.7},
		{"radiation", b.RadiationKm, 0.3},
	}
}

// CityImpact is the per-city exposure within the largest blast zone.
type CityImpact struct {
	Name       string
	DistanceKm float64
	Affected   float64
	Deaths     int64
	Injured    int64
}

// CasualtyResult sums exposure across all cities and zones.
type CasualtyResult struct {
	Deaths         int64
	Injured        int64
	Severity       string
	AffectedCities []CityImpact
}

// Haversine returns the great-circle distance in km between two points given
// in degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	φ1 := lat1 * deg2rad
	φ2 := lat2 * deg2rad
	Δφ := (lat2 - lat1) * deg2rad
	Δλ := (lon2 - lon1) * deg2rad
	sΔφ := math.Sin(Δφ / 2)
	sΔλ := math.Sin(Δλ / 2)
	a := sΔφ*sΔφ + math.Cos(φ1)*math.Cos(φ2)*sΔλ*sΔλ
	return meanEarthRadius * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// circleOverlapArea returns the intersection area of two discs whose centers
// are d apart. Handles full containment either way, the disjoint case, and
// the lens-shaped partial overlap via circular-segment decomposition.
func circleOverlapArea(d, r1, r2 float64) float64 {
	if r1 <= 0 || r2 <= 0 {
		return 0
	}
	if d >= r1+r2 {
		return 0
	}
	if d <= math.Abs(r1-r2) {
		r := math.Min(r1, r2)
		return math.Pi * r * r
	}
	d2 := d * d
	a1 := r1 * r1 * math.Acos((d2+r1*r1-r2*r2)/(2*d*r1))
	a2 := r2 * r2 * math.Acos((d2+r2*r2-r1*r1)/(2*d*r2))
	k := 0.5 * math.Sqrt((-d+r1+r2)*(d+r1-r2)*(d-r1+r2)*(d+r1+r2))
	return a1 + a2 - k
}

// EstimateCasualties exposes the city registry to the four concentric blast
// discs. Each zone contributes round(affected·mortality) deaths and
// round(affected·(1-mortality)·0.8) injuries, summed across cities and zones.
// When no city disc intersects any zone, the estimate falls back to a density
// model anchored on the single nearest city.
func EstimateCasualties(lat, lon float64, blast Blast, cities []CityRecord) CasualtyResult {
	zones := zonesFrom(blast)
	largest := zones[0]
	for _, z := range zones[1:] {
		if z.radiusKm > largest.radiusKm {
			largest = z
		}
	}

	var res CasualtyResult
	anyOverlap := false
	for _, z := range zones {
		for _, city := range cities {
			d := Haversine(lat, lon, city.Latitude, city.Longitude)
			overlap := circleOverlapArea(d, z.radiusKm, city.RadiusKm)
			if overlap <= 0 {
				continue
			}
			anyOverlap = true
			affected := overlap * city.Density()
			deaths := math.Round(affected * z.mortality)
			injured := math.Round(affected * (1 - z.mortality) * injuryRateOfExposed)
			res.Deaths += int64(deaths)
			res.Injured += int64(injured)
			// The largest zone contains the others, so its breakdown is the
			// overall affected-cities summary.
			if z.name == largest.name {
				res.AffectedCities = append(res.AffectedCities, CityImpact{city.Name, d, affected, int64(deaths), int64(injured)})
			}
		}
	}

	if !anyOverlap {
		res = fallbackEstimate(lat, lon, zones, cities)
	}
	sort.Slice(res.AffectedCities, func(i, j int) bool {
		return res.AffectedCities[i].Affected > res.AffectedCities[j].Affected
	})
	res.Severity = classifySeverity(res.Deaths)
	return res
}

// fallbackEstimate derives a uniform density from the nearest city: its own
// density decayed exponentially within 50 km, a flat rural constant within
// 200 km, remote constant beyond. The density applies over each zone's full
// disc area.
func fallbackEstimate(lat, lon float64, zones []blastZone, cities []CityRecord) CasualtyResult {
	var res CasualtyResult
	if len(cities) == 0 {
		res.Severity = classifySeverity(0)
		return res
	}
	nearest := cities[0]
	nearestD := Haversine(lat, lon, nearest.Latitude, nearest.Longitude)
	for _, city := range cities[1:] {
		if d := Haversine(lat, lon, city.Latitude, city.Longitude); d < nearestD {
			nearest, nearestD = city, d
		}
	}
	var density float64
	switch {
	case nearestD < fallbackUrbanReach:
		density = nearest.Density() * math.Exp(-nearestD/fallbackDecayKm)
	case nearestD < fallbackRuralReach:
		density = ruralDensity
	default:
		density = remoteDensity
	}
	for _, z := range zones {
		affected := math.Pi * z.radiusKm * z.radiusKm * density
		res.Deaths += int64(math.Round(affected * z.mortality))
		res.Injured += int64(math.Round(affected * (1 - z.mortality) * injuryRateOfExposed))
	}
	return res
}

// classifySeverity buckets the death toll into the reporting ladder.
func classifySeverity(deaths int64) string {
	switch {
	case deaths < 100:
		return "Minor"
	case deaths < 1000:
		return "Moderate"
	case deaths < 10000:
		return "Serious"
	case deaths < 100000:
		return "Severe"
	case deaths < 1000000:
		return "Catastrophic"
	case deaths < 10000000:
		return "Mass Casualty Event"
	default:
		return "Extinction-Level Event"
	}
}
