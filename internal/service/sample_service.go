package service

import (
	"github.com/omerga/whereabouts-backend-go/internal/models"
	"github.com/omerga/whereabouts-backend-go/internal/repository"
)

// SampleService handles business logic for the location sample store.
type SampleService struct {
	repo *repository.SampleRepository
}

// NewSampleService creates a new sample service
func NewSampleService(repo *repository.SampleRepository) *SampleService {
	return &SampleService{repo: repo}
}

// IngestResult reports the outcome of a bulk ingest.
type IngestResult struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

// Ingest stores valid samples and counts the malformed ones it skipped
// (out-of-range coordinates, unparseable timestamps).
func (s *SampleService) Ingest(samples []models.LocationSample) (IngestResult, error) {
	valid := make([]models.LocationSample, 0, len(samples))
	skipped := 0
	for _, sample := range samples {
		if sample.Valid() {
			valid = append(valid, sample)
		} else {
			skipped++
		}
	}

	inserted, err := s.repo.InsertSamples(valid)
	if err != nil {
		return IngestResult{}, err
	}
	return IngestResult{Inserted: inserted, Skipped: skipped}, nil
}

// GetSamples retrieves stored samples matching the filter
func (s *SampleService) GetSamples(filter repository.SampleFilter) ([]models.LocationSample, error) {
	return s.repo.GetSamples(filter)
}
