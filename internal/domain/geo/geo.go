// Package geo provides great-circle distance and activity clustering
// used by location scoring.
package geo

import "math"

// earthRadiusMeters is the spherical-earth radius used by the
// haversine formula. City-scale accuracy is all we need.
const earthRadiusMeters = 6371000.0

// DistanceMeters returns the haversine distance in meters between two
// WGS84 lat/lng points given in degrees. Symmetric, zero for identical
// points. No special-casing near poles or the date line.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)

	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}
