// Package session holds the latest query result and the visibility state
// it is rendered under. Results are replaced wholesale, never merged, and a
// sequence-number guard keeps a slow superseded response from overwriting a
// newer one.
package session

import (
	"errors"
	"sync"

	"github.com/omerga/whereabouts-backend-go/internal/models"
	"github.com/omerga/whereabouts-backend-go/internal/state"
)

// ErrStaleResult is returned by Commit when the result belongs to a request
// that has been superseded by a newer one.
var ErrStaleResult = errors.New("session: stale query result discarded")

// Session is the single source of truth for one query cycle. The engine is
// logically single-writer, but gin serves requests concurrently, so access
// goes through a mutex.
type Session struct {
	mu     sync.Mutex
	seq    uint64 // last issued request sequence
	result *models.QueryResult
	vis    *state.VisibilityState
}

// New returns an empty session with default display modes.
func New() *Session {
	return &Session{vis: state.New()}
}

// Begin registers a new outstanding query and returns its sequence number.
// Issuing a new query implicitly supersedes any in-flight one: only the
// highest sequence may commit.
func (s *Session) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// Commit installs a query result if seq is still the latest issued
// sequence, resetting the visible-person set to the result's persons.
// A stale seq leaves the session untouched and returns ErrStaleResult.
func (s *Session) Commit(seq uint64, result *models.QueryResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return ErrStaleResult
	}

	s.result = result
	_, persons := result.GroupByPerson()
	s.vis.OnNewResult(persons)
	return nil
}

// Snapshot returns the current result and a copy of the visibility state
// for scene derivation. The result pointer is shared but never mutated
// after commit.
func (s *Session) Snapshot() (*models.QueryResult, state.VisibilityState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.vis.Snapshot()
}

// ToggleVisibility flips one person's visibility.
func (s *Session) ToggleVisibility(person string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vis.ToggleVisibility(person)
}

// SetMode sets a display-mode flag; reports false for unknown modes.
func (s *Session) SetMode(mode string, enabled bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vis.SetMode(mode, enabled)
}
