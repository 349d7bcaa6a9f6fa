package geo

import (
	"math"

	"github.com/okian/roam/internal/domain/model"
)

// minClusterRadiusMeters floors the derived radius so a pair of
// adjacent picks still yields a walkable neighborhood, not a point.
const minClusterRadiusMeters = 2000.0

// BuildClusters derives activity clusters from the traveler's selected
// activity locations. Fewer than two points carry no locality signal
// and yield no clusters.
//
// The center is the arithmetic mean of lat and lng (planar
// approximation, acceptable at city scale), and the radius is
// mean(distance to center) + stddev(distance to center), floored at
// minClusterRadiusMeters. A single cluster is returned; splitting into
// multiple clusters (k-means, DBSCAN) is a future extension.
func BuildClusters(points []model.GeoPoint) []model.ActivityCluster {
	if len(points) < 2 {
		return nil
	}

	var sumLat, sumLng float64
	for _, p := range points {
		sumLat += p.Lat
		sumLng += p.Lng
	}
	center := model.GeoPoint{
		Lat: sumLat / float64(len(points)),
		Lng: sumLng / float64(len(points)),
	}

	dists := make([]float64, len(points))
	var sum float64
	for i, p := range points {
		dists[i] = DistanceMeters(center.Lat, center.Lng, p.Lat, p.Lng)
		sum += dists[i]
	}
	mean := sum / float64(len(dists))

	var variance float64
	for _, d := range dists {
		variance += (d - mean) * (d - mean)
	}
	stddev := math.Sqrt(variance / float64(len(dists)))

	radius := mean + stddev
	if radius < minClusterRadiusMeters {
		radius = minClusterRadiusMeters
	}

	return []model.ActivityCluster{{Center: center, RadiusMeters: radius}}
}
