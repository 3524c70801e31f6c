package service

import (
	"context"
	"log"

	"github.com/omerga/whereabouts-backend-go/internal/nlquery"
	"github.com/omerga/whereabouts-backend-go/internal/repository"
)

// DefaultPersons is the fallback directory used when both the sample store
// and the query service are unavailable, so example-query affordances keep
// working.
var DefaultPersons = []string{"person1", "person2"}

// DirectoryService lists the known person identifiers. The sample store is
// authoritative; when it has nothing to offer, the query service (which
// keeps its own per-person data files) is consulted.
type DirectoryService struct {
	repo   *repository.SampleRepository
	client *nlquery.Client
}

// NewDirectoryService creates a new directory service. client may be nil,
// in which case only the store and the static fallback are used.
func NewDirectoryService(repo *repository.SampleRepository, client *nlquery.Client) *DirectoryService {
	return &DirectoryService{repo: repo, client: client}
}

// Persons resolves the person directory: stored samples first, then the
// query service, then the static defaults when the store itself failed. An
// empty but healthy store with no remote persons legitimately lists nobody.
func (s *DirectoryService) Persons(ctx context.Context) []string {
	persons, storeErr := s.repo.ListPersons()
	if storeErr == nil && len(persons) > 0 {
		return persons
	}
	if storeErr != nil {
		log.Printf("person store unavailable: %v", storeErr)
	}

	if s.client != nil {
		remote, err := s.client.Persons(ctx)
		if err != nil {
			log.Printf("query service person directory unavailable: %v", err)
		} else if len(remote) > 0 {
			return remote
		}
	}

	if storeErr != nil {
		return append([]string(nil), DefaultPersons...)
	}
	return persons
}
