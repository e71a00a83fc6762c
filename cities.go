package impact

import "math"

// CityRecord models a city as a disc of uniform population density.
type CityRecord struct {
	Name       string
	Latitude   float64
	Longitude  float64
	Population float64
	RadiusKm   float64 // effective radius of the urban disc
}

// Area returns the disc area in km².
func (c CityRecord) Area() float64 {
	return math.Pi * c.RadiusKm * c.RadiusKm
}

// Density returns the uniform population density in people per km².
func (c CityRecord) Density() float64 {
	return c.Population / c.Area()
}

// WorldCities is the static registry of the 45 largest metropolitan areas,
// loaded once and shared read-only across concurrent runs. Populations are
// metro-area estimates; the effective radii approximate the built-up disc.
var WorldCities = []CityRecord{
	{"Tokyo", 35.68, 139.65, 37400000, 45},
	{"Delhi", 28.70, 77.10, 31200000, 30},
	{"Shanghai", 31.23, 121.47, 27100000, 35},
	{"São Paulo", -23.55, -46.63, 22400000, 30},
	{"Mexico City", 19.43, -99.13, 21800000, 28},
	{"Cairo", 30.04, 31.24, 20900000, 25},
	{"Dhaka", 23.81, 90.41, 21000000, 15},
	{"Mumbai", 19.08, 72.88, 20700000, 20},
	{"Beijing", 39.90, 116.41, 20400000, 35},
	{"Osaka", 34.69, 135.50, 19100000, 28},
	{"New York", 40.71, -74.01, 18800000, 35},
	{"Karachi", 24.86, 67.00, 16100000, 20},
	{"Chongqing", 29.43, 106.91, 15800000, 30},
	{"Istanbul", 41.01, 28.98, 15400000, 25},
	{"Buenos Aires", -34.60, -58.38, 15200000, 25},
	{"Kolkata", 22.57, 88.36, 14900000, 18},
	{"Lagos", 6.52, 3.38, 14800000, 20},
	{"Kinshasa", -4.44, 15.27, 14300000, 18},
	{"Manila", 14.60, 120.98, 13900000, 18},
	{"Tianjin", 39.34, 117.36, 13600000, 25},
	{"Rio de Janeiro", -22.91, -43.17, 13500000, 22},
	{"Guangzhou", 23.13, 113.26, 13300000, 28},
	{"Lahore", 31.55, 74.34, 13100000, 18},
	{"Shenzhen", 22.54, 114.06, 12600000, 20},
	{"Los Angeles", 34.05, -118.24, 12500000, 40},
	{"Moscow", 55.76, 37.62, 12500000, 25},
	{"Bangalore", 12.97, 77.59, 12300000, 18},
	{"Paris", 48.86, 2.35, 11100000, 25},
	{"Chennai", 13.08, 80.27, 11000000, 15},
	{"Bogotá", 4.71, -74.07, 10900000, 15},
	{"Lima", -12.05, -77.04, 10700000, 18},
	{"Jakarta", -6.21, 106.85, 10600000, 20},
	{"Bangkok", 13.76, 100.50, 10500000, 22},
	{"Hyderabad", 17.39, 78.49, 10000000, 16},
	{"Seoul", 37.57, 126.98, 9960000, 18},
	{"Nagoya", 35.18, 136.91, 9550000, 20},
	{"London", 51.51, -0.13, 9300000, 22},
	{"Chengdu", 30.57, 104.07, 9300000, 22},
	{"Tehran", 35.69, 51.39, 9100000, 18},
	{"Chicago", 41.88, -87.63, 8900000, 28},
	{"Nanjing", 32.06, 118.80, 8850000, 20},
	{"Ho Chi Minh City", 10.82, 106.63, 8800000, 18},
	{"Wuhan", 30.59, 114.31, 8360000, 20},
	{"Luanda", -8.84, 13.23, 8330000, 15},
	{"Ahmedabad", 23.02, 72.57, 8050000, 14},
}
