package services

import "math"

const earthRadiusKm = 6371.0

// haversineDistanceKm is the great-circle distance between two points.
func haversineDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// distanceKm returns nil when either point lacks coordinates.
func distanceKm(fromLat, fromLon, toLat, toLon *float64) *float64 {
	if fromLat == nil || fromLon == nil || toLat == nil || toLon == nil {
		return nil
	}
	d := math.Round(haversineDistanceKm(*fromLat, *fromLon, *toLat, *toLon)*100) / 100
	return &d
}
