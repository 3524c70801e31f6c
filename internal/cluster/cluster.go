// Package cluster groups a single person's location samples into spatial
// clusters for map display. The algorithm is local and greedy, tuned for
// interactive rendering at city scale; it is not a general GIS clustering
// library and does not attempt geodesic exactness.
package cluster

import (
	"github.com/omerga/whereabouts-backend-go/internal/models"
	"github.com/omerga/whereabouts-backend-go/internal/spatial"
)

// DefaultThresholdMeters is the membership distance used when no threshold
// is configured.
const DefaultThresholdMeters = 50.0

// Cluster is a transient grouping of one person's samples. Center is the
// seed sample's coordinate, fixed when the cluster is created; it is not a
// centroid and does not move as members join.
type Cluster struct {
	Person  string
	Lat     float64
	Lng     float64
	Samples []models.LocationSample
}

// Size returns the number of member samples.
func (c Cluster) Size() int {
	return len(c.Samples)
}

// Group clusters samples for one person with a greedy single pass. The
// first unassigned sample in input order seeds a cluster; every remaining
// unassigned sample within thresholdMeters of the seed (the seed, not
// other members) joins it. Every sample lands in exactly one cluster.
// O(n²) in the sample count, which is fine at the single-day volumes the
// map displays.
func Group(person string, samples []models.LocationSample, thresholdMeters float64) []Cluster {
	if len(samples) == 0 {
		return nil
	}

	assigned := make([]bool, len(samples))
	var clusters []Cluster

	for i, seed := range samples {
		if assigned[i] {
			continue
		}
		assigned[i] = true

		c := Cluster{
			Person:  person,
			Lat:     seed.Latitude,
			Lng:     seed.Longitude,
			Samples: []models.LocationSample{seed},
		}

		for j := i + 1; j < len(samples); j++ {
			if assigned[j] {
				continue
			}
			d := spatial.PlanarDistance(seed.Latitude, seed.Longitude, samples[j].Latitude, samples[j].Longitude)
			if d <= thresholdMeters {
				assigned[j] = true
				c.Samples = append(c.Samples, samples[j])
			}
		}

		clusters = append(clusters, c)
	}

	return clusters
}

// Passthrough wraps each sample in its own single-member cluster. Used
// when clustering is toggled off; equivalent to a zero threshold without
// the pairwise scan.
func Passthrough(person string, samples []models.LocationSample) []Cluster {
	if len(samples) == 0 {
		return nil
	}

	clusters := make([]Cluster, 0, len(samples))
	for _, s := range samples {
		clusters = append(clusters, Cluster{
			Person:  person,
			Lat:     s.Latitude,
			Lng:     s.Longitude,
			Samples: []models.LocationSample{s},
		})
	}
	return clusters
}
