// Package render derives the full map scene — markers, cluster badges,
// polylines, direction arrows, control panel, viewport — from a query
// result and the current visibility state. Everything here is a pure
// recomputation; no rendering state survives between calls.
package render

import (
	"github.com/omerga/whereabouts-backend-go/internal/cluster"
	"github.com/omerga/whereabouts-backend-go/internal/models"
	"github.com/omerga/whereabouts-backend-go/internal/palette"
	"github.com/omerga/whereabouts-backend-go/internal/spatial"
	"github.com/omerga/whereabouts-backend-go/internal/state"
)

// Default viewport over central Tel Aviv, used when a result has no
// drawable points.
const (
	DefaultCenterLat = 32.0809
	DefaultCenterLng = 34.7806

	DefaultZoom = 13
	FixedZoom   = 14 // multi-point results
	TightZoom   = 17 // single-point results
)

// Options tunes scene derivation.
type Options struct {
	ClusterThresholdMeters float64
}

// BuildScene computes the scene for a result under the given visibility
// state. Malformed samples (out-of-range coordinate, unparseable
// timestamp) are skipped and counted rather than failing the render.
func BuildScene(result *models.QueryResult, vis state.VisibilityState, opts Options) models.Scene {
	scene := models.Scene{
		Controls: models.ControlPanel{
			ShowPaths:    vis.ShowPaths,
			ShowArrows:   vis.ShowArrows,
			ShowClusters: vis.ShowClusters,
		},
		Viewport: models.Viewport{Lat: DefaultCenterLat, Lng: DefaultCenterLng, Zoom: DefaultZoom},
	}
	if result == nil {
		return scene
	}
	scene.Summary = result.Summary

	threshold := opts.ClusterThresholdMeters
	if threshold <= 0 {
		threshold = cluster.DefaultThresholdMeters
	}

	valid, skipped := splitValid(result.Locations)
	scene.SkippedSamples = skipped

	filtered := models.QueryResult{Person: result.Person, Locations: valid}
	groups, order := filtered.GroupByPerson()

	colors := personColors(result.PersonColors, order)

	latest, hasLatest := latestSample(valid)

	var viewportPoints []spatial.Point
	for _, person := range order {
		samples := groups[person]
		color := palette.NeutralGray
		if person != models.UnknownPerson {
			color = palette.ForPerson(person, colors)
		}

		scene.Controls.Persons = append(scene.Controls.Persons, models.PersonControl{
			Person:      person,
			Visible:     vis.Visible(person),
			SampleCount: len(samples),
			Color:       color,
		})

		if !vis.Visible(person) {
			continue
		}

		for _, s := range samples {
			viewportPoints = append(viewportPoints, spatial.Point{Lat: s.Latitude, Lon: s.Longitude})
		}

		ranker := newSizeRanker(timestampsOf(samples))

		var clusters []cluster.Cluster
		if vis.ShowClusters {
			clusters = cluster.Group(person, samples, threshold)
		} else {
			clusters = cluster.Passthrough(person, samples)
		}

		for _, c := range clusters {
			if c.Size() == 1 {
				s := c.Samples[0]
				scene.Markers = append(scene.Markers, models.Marker{
					Person: person,
					Lat:    s.Latitude,
					Lng:    s.Longitude,
					Size:   ranker.SizeFor(s.Timestamp),
					Latest: hasLatest && s == latest,
					Color:  color,
					Sample: s,
				})
			} else {
				scene.Badges = append(scene.Badges, models.ClusterBadge{
					Person:  person,
					Lat:     c.Lat,
					Lng:     c.Lng,
					Count:   c.Size(),
					Color:   color,
					Members: c.Samples,
				})
			}
		}

		if vis.ShowPaths && len(samples) >= 2 {
			scene.Paths = append(scene.Paths, buildPath(person, color, samples))
		}
		if vis.ShowArrows && len(samples) >= 2 {
			scene.Arrows = append(scene.Arrows, buildArrows(person, color, samples)...)
		}
	}

	scene.Controls.VisibleCount = visibleCount(scene.Controls.Persons)
	scene.Viewport = suggestViewport(viewportPoints)
	return scene
}

// personColors picks the override table for the scene. When the query
// service omits person_colors on a multi-person result, the same table it
// would have built is reconstructed locally. Anonymous samples stay out of
// the table; they are drawn in NeutralGray regardless.
func personColors(overrides map[string]string, order []string) map[string]string {
	if len(overrides) > 0 {
		return overrides
	}
	named := make([]string, 0, len(order))
	for _, p := range order {
		if p != models.UnknownPerson {
			named = append(named, p)
		}
	}
	return palette.Assign(named)
}

// splitValid separates drawable samples from malformed ones.
func splitValid(samples []models.LocationSample) ([]models.LocationSample, int) {
	valid := make([]models.LocationSample, 0, len(samples))
	skipped := 0
	for _, s := range samples {
		if s.Valid() {
			valid = append(valid, s)
		} else {
			skipped++
		}
	}
	return valid, skipped
}

func timestampsOf(samples []models.LocationSample) []string {
	ts := make([]string, len(samples))
	for i, s := range samples {
		ts[i] = s.Timestamp
	}
	return ts
}

func buildPath(person, color string, samples []models.LocationSample) models.Path {
	points := make([]models.Coordinate, len(samples))
	for i, s := range samples {
		points[i] = models.Coordinate{Lat: s.Latitude, Lng: s.Longitude, Person: person}
	}
	return models.Path{Person: person, Color: color, Points: points}
}

// buildArrows places one direction indicator per consecutive sample pair,
// at the planar midpoint, oriented along the computed inter-sample bearing.
func buildArrows(person, color string, samples []models.LocationSample) []models.Arrow {
	arrows := make([]models.Arrow, 0, len(samples)-1)
	for i := 1; i < len(samples); i++ {
		a, b := samples[i-1], samples[i]
		lat, lng := spatial.Midpoint(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
		arrows = append(arrows, models.Arrow{
			Person:         person,
			Lat:            lat,
			Lng:            lng,
			BearingDegrees: spatial.Bearing(a.Latitude, a.Longitude, b.Latitude, b.Longitude),
			Color:          color,
		})
	}
	return arrows
}

func visibleCount(persons []models.PersonControl) int {
	n := 0
	for _, p := range persons {
		if p.Visible {
			n++
		}
	}
	return n
}

// suggestViewport picks the map region: nothing → the fixed default,
// one point → that point zoomed tight, several → the bounding-box center
// at a fixed zoom.
func suggestViewport(points []spatial.Point) models.Viewport {
	switch len(points) {
	case 0:
		return models.Viewport{Lat: DefaultCenterLat, Lng: DefaultCenterLng, Zoom: DefaultZoom}
	case 1:
		return models.Viewport{Lat: points[0].Lat, Lng: points[0].Lon, Zoom: TightZoom}
	default:
		center := spatial.BoundingRect(points).Center()
		return models.Viewport{
			Lat:  center.Lat.Degrees(),
			Lng:  center.Lng.Degrees(),
			Zoom: FixedZoom,
		}
	}
}
