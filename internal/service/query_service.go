package service

import (
	"context"
	"fmt"

	"github.com/omerga/whereabouts-backend-go/internal/models"
	"github.com/omerga/whereabouts-backend-go/internal/nlquery"
	"github.com/omerga/whereabouts-backend-go/internal/render"
	"github.com/omerga/whereabouts-backend-go/internal/session"
)

// QueryService runs natural language queries against the external query
// service and keeps the resulting map state in the session.
type QueryService struct {
	client  *nlquery.Client
	session *session.Session
	opts    render.Options
}

// NewQueryService creates a new query service
func NewQueryService(client *nlquery.Client, sess *session.Session, opts render.Options) *QueryService {
	return &QueryService{client: client, session: sess, opts: opts}
}

// Query submits a free-text query. On success the result replaces the
// session's current one and the derived scene is returned. On failure, or
// when a newer query superseded this one while it was in flight, the prior
// state stays displayed and an error is returned.
func (s *QueryService) Query(ctx context.Context, query string) (*models.QueryResult, models.Scene, error) {
	seq := s.session.Begin()

	result, err := s.client.Query(ctx, query)
	if err != nil {
		return nil, models.Scene{}, fmt.Errorf("query failed: %w", err)
	}

	if err := s.session.Commit(seq, result); err != nil {
		return nil, models.Scene{}, err
	}

	return result, s.Scene(), nil
}

// Scene derives the current scene from the session state.
func (s *QueryService) Scene() models.Scene {
	result, vis := s.session.Snapshot()
	return render.BuildScene(result, vis, s.opts)
}

// ToggleVisibility flips one person's visibility and returns the updated scene.
func (s *QueryService) ToggleVisibility(person string) models.Scene {
	s.session.ToggleVisibility(person)
	return s.Scene()
}

// SetMode sets a display mode flag and returns the updated scene. The
// second return value is false for an unknown mode.
func (s *QueryService) SetMode(mode string, enabled bool) (models.Scene, bool) {
	if !s.session.SetMode(mode, enabled) {
		return models.Scene{}, false
	}
	return s.Scene(), true
}
