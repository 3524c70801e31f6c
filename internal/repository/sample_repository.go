package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/omerga/whereabouts-backend-go/internal/models"
)

// SampleRepository handles database operations for location samples
type SampleRepository struct {
	db *sql.DB
}

// NewSampleRepository creates a new sample repository
func NewSampleRepository(db *sql.DB) *SampleRepository {
	return &SampleRepository{db: db}
}

// SampleFilter represents filter parameters for querying samples
type SampleFilter struct {
	Person    string `form:"person"`
	StartTime string `form:"startTime"` // ISO 8601, inclusive
	EndTime   string `form:"endTime"`   // ISO 8601, inclusive
	Limit     int    `form:"limit"`
}

// GetSamples retrieves location samples ordered by timestamp
func (r *SampleRepository) GetSamples(filter SampleFilter) ([]models.LocationSample, error) {
	query := `SELECT timestamp, latitude, longitude, altitude, horizontal_accuracy_meters,
		vertical_accuracy_meters, speed_mps, bearing_degrees, provider, person
		FROM location_samples`

	var conditions []string
	var args []interface{}

	if filter.Person != "" {
		conditions = append(conditions, "person = ?")
		args = append(args, filter.Person)
	}
	// ISO 8601 timestamps with a shared offset compare correctly as strings
	if filter.StartTime != "" {
		conditions = append(conditions, "timestamp >= ?")
		args = append(args, filter.StartTime)
	}
	if filter.EndTime != "" {
		conditions = append(conditions, "timestamp <= ?")
		args = append(args, filter.EndTime)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY timestamp ASC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query samples: %w", err)
	}
	defer rows.Close()

	var samples []models.LocationSample
	for rows.Next() {
		var s models.LocationSample
		if err := rows.Scan(&s.Timestamp, &s.Latitude, &s.Longitude, &s.Altitude,
			&s.HorizontalAccuracyMeters, &s.VerticalAccuracyMeters, &s.SpeedMPS,
			&s.BearingDegrees, &s.Provider, &s.Person); err != nil {
			return nil, fmt.Errorf("failed to scan sample: %w", err)
		}
		samples = append(samples, s)
	}

	return samples, rows.Err()
}

// InsertSamples bulk-inserts samples in a single transaction
func (r *SampleRepository) InsertSamples(samples []models.LocationSample) (int, error) {
	if len(samples) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO location_samples
		(timestamp, latitude, longitude, altitude, horizontal_accuracy_meters,
		 vertical_accuracy_meters, speed_mps, bearing_degrees, provider, person)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, s := range samples {
		if _, err := stmt.Exec(s.Timestamp, s.Latitude, s.Longitude, s.Altitude,
			s.HorizontalAccuracyMeters, s.VerticalAccuracyMeters, s.SpeedMPS,
			s.BearingDegrees, s.Provider, s.Person); err != nil {
			return 0, fmt.Errorf("failed to insert sample: %w", err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return inserted, nil
}

// ListPersons returns the distinct person identifiers with samples, sorted
func (r *SampleRepository) ListPersons() ([]string, error) {
	rows, err := r.db.Query(`SELECT DISTINCT person FROM location_samples
		WHERE person != '' ORDER BY person ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query persons: %w", err)
	}
	defer rows.Close()

	var persons []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		persons = append(persons, p)
	}

	return persons, rows.Err()
}
