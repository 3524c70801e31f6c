package models

import "time"

// UnknownPerson is the identifier samples fall back to when neither the
// sample nor the query result names a subject.
const UnknownPerson = "unknown"

// LocationSample represents a single GPS observation for a person.
// Field names follow the query service's JSON contract. BearingDegrees is
// the heading reported by the source device, distinct from the
// inter-sample bearing computed for direction arrows.
type LocationSample struct {
	Timestamp                string  `json:"timestamp" db:"timestamp"` // ISO 8601, e.g. "2025-07-29T08:15:00Z"
	Latitude                 float64 `json:"latitude" db:"latitude"`
	Longitude                float64 `json:"longitude" db:"longitude"`
	Altitude                 float64 `json:"altitude,omitempty" db:"altitude"`
	HorizontalAccuracyMeters float64 `json:"horizontal_accuracy_meters,omitempty" db:"horizontal_accuracy_meters"`
	VerticalAccuracyMeters   float64 `json:"vertical_accuracy_meters,omitempty" db:"vertical_accuracy_meters"`
	SpeedMPS                 float64 `json:"speed_mps,omitempty" db:"speed_mps"`
	BearingDegrees           float64 `json:"bearing_degrees,omitempty" db:"bearing_degrees"`
	Provider                 string  `json:"provider,omitempty" db:"provider"`
	Person                   string  `json:"person,omitempty" db:"person"`
}

// Valid reports whether the sample has an in-range coordinate and a
// parseable timestamp. Invalid samples are skipped (and counted) rather
// than failing the whole render.
func (s LocationSample) Valid() bool {
	if s.Latitude < -90 || s.Latitude > 90 {
		return false
	}
	if s.Longitude < -180 || s.Longitude > 180 {
		return false
	}
	_, err := time.Parse(time.RFC3339, s.Timestamp)
	return err == nil
}

// Time parses the sample timestamp. Returns the zero time on failure;
// callers that care should have filtered with Valid first.
func (s LocationSample) Time() time.Time {
	t, err := time.Parse(time.RFC3339, s.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// AttributedPerson resolves the person a sample belongs to: the sample's
// own person field, then the query's single-subject person, then
// UnknownPerson.
func (s LocationSample) AttributedPerson(resultPerson string) string {
	if s.Person != "" {
		return s.Person
	}
	if resultPerson != "" {
		return resultPerson
	}
	return UnknownPerson
}
