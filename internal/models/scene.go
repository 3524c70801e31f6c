package models

// Marker size tiers, a coarse early/middle/late-in-the-day classification.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// Marker is a single-sample map marker.
type Marker struct {
	Person string         `json:"person"`
	Lat    float64        `json:"lat"`
	Lng    float64        `json:"lng"`
	Size   string         `json:"size"`   // small | medium | large
	Latest bool           `json:"latest"` // chronologically last sample in the whole result
	Color  string         `json:"color"`
	Sample LocationSample `json:"sample"`
}

// ClusterBadge is an aggregate marker for a multi-member cluster. The badge
// sits on the cluster seed coordinate and expands to its member list.
type ClusterBadge struct {
	Person  string           `json:"person"`
	Lat     float64          `json:"lat"`
	Lng     float64          `json:"lng"`
	Count   int              `json:"count"`
	Color   string           `json:"color"`
	Members []LocationSample `json:"members"`
}

// Path is the ordered polyline for one visible person.
type Path struct {
	Person string       `json:"person"`
	Color  string       `json:"color"`
	Points []Coordinate `json:"points"`
}

// Arrow is a direction indicator placed at the midpoint of two consecutive
// samples, oriented along the computed inter-sample bearing.
type Arrow struct {
	Person         string  `json:"person"`
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
	BearingDegrees float64 `json:"bearing_degrees"`
	Color          string  `json:"color"`
}

// PersonControl is one row of the map control panel.
type PersonControl struct {
	Person      string `json:"person"`
	Visible     bool   `json:"visible"`
	SampleCount int    `json:"sample_count"`
	Color       string `json:"color"`
}

// ControlPanel exposes the toggle surface and live counts.
type ControlPanel struct {
	ShowPaths    bool            `json:"show_paths"`
	ShowArrows   bool            `json:"show_arrows"`
	ShowClusters bool            `json:"show_clusters"`
	Persons      []PersonControl `json:"persons"`
	VisibleCount int             `json:"visible_count"`
}

// Viewport is the suggested map region: a center point and a zoom level.
type Viewport struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Zoom int     `json:"zoom"`
}

// Scene is the full derived rendering state for the current query result
// and visibility state. It is recomputed from scratch on every change; no
// rendering-only state lives outside it.
type Scene struct {
	Markers        []Marker       `json:"markers"`
	Badges         []ClusterBadge `json:"badges"`
	Paths          []Path         `json:"paths"`
	Arrows         []Arrow        `json:"arrows"`
	Controls       ControlPanel   `json:"controls"`
	Viewport       Viewport       `json:"viewport"`
	Summary        string         `json:"summary"`
	SkippedSamples int            `json:"skipped_samples"`
}
