package utils

import "math"

// EarthRadiusMiles is the mean earth radius used for great-circle math; the
// same constant appears in the SQL distance expression.
const EarthRadiusMiles = 3958.8

// HaversineMiles returns the great-circle distance in miles between two
// (lat, lng) points.
func HaversineMiles(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * EarthRadiusMiles * math.Asin(math.Sqrt(a))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
