package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/omerga/whereabouts-backend-go/internal/api"
	"github.com/omerga/whereabouts-backend-go/internal/config"
	"github.com/omerga/whereabouts-backend-go/internal/database"
	"github.com/omerga/whereabouts-backend-go/internal/handler"
	"github.com/omerga/whereabouts-backend-go/internal/nlquery"
	"github.com/omerga/whereabouts-backend-go/internal/render"
	"github.com/omerga/whereabouts-backend-go/internal/repository"
	"github.com/omerga/whereabouts-backend-go/internal/service"
	"github.com/omerga/whereabouts-backend-go/internal/session"
)

// failNext lets a test flip the fake query service into failure mode.
var failNext atomic.Bool

func fakeQueryService(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failNext.Load() {
			http.Error(w, "model overloaded", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"person": "person1",
			"locations": [
				{"timestamp": "2025-07-29T08:00:00Z", "latitude": 32.08, "longitude": 34.78, "person": "person1"},
				{"timestamp": "2025-07-29T09:00:00Z", "latitude": 32.09, "longitude": 34.79, "person": "person1"}
			],
			"summary": "person1 moved north through central Tel Aviv."
		}`))
	}))
}

func testRouter(t *testing.T, queryURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Load()
	cfg.QueryServiceURL = queryURL

	db, err := database.Open(database.Config{Path: t.TempDir() + "/test.db"})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	sampleRepo := repository.NewSampleRepository(db)
	queryClient := nlquery.NewClient(queryURL, 5*time.Second)
	queryService := service.NewQueryService(
		queryClient,
		session.New(),
		render.Options{ClusterThresholdMeters: cfg.ClusterThresholdMeters},
	)

	return api.SetupRouter(cfg, api.Handlers{
		Query:  handler.NewQueryHandler(queryService),
		Person: handler.NewPersonHandler(service.NewDirectoryService(sampleRepo, queryClient)),
		Sample: handler.NewSampleHandler(service.NewSampleService(sampleRepo)),
		Auth:   handler.NewAuthHandler(cfg),
	})
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string, header http.Header) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: bad envelope: %v (%s)", method, path, err, w.Body.String())
	}
	return w, env
}

func TestQueryEndpointBuildsScene(t *testing.T) {
	srv := fakeQueryService(t)
	defer srv.Close()
	failNext.Store(false)
	r := testRouter(t, srv.URL)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/query", `{"query": "where was person1?"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	var data struct {
		Result struct {
			Summary string `json:"summary"`
		} `json:"result"`
		Scene struct {
			Markers  []json.RawMessage `json:"markers"`
			Controls struct {
				VisibleCount int `json:"visible_count"`
			} `json:"controls"`
		} `json:"scene"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("bad data: %v", err)
	}
	if data.Result.Summary == "" {
		t.Error("summary missing")
	}
	if len(data.Scene.Markers) != 2 {
		t.Errorf("got %d markers, want 2", len(data.Scene.Markers))
	}
	if data.Scene.Controls.VisibleCount != 1 {
		t.Errorf("visible count %d, want 1", data.Scene.Controls.VisibleCount)
	}
}

func TestQueryFailureKeepsPriorScene(t *testing.T) {
	srv := fakeQueryService(t)
	defer srv.Close()
	failNext.Store(false)
	r := testRouter(t, srv.URL)

	if w, _ := doJSON(t, r, http.MethodPost, "/api/v1/query", `{"query": "first"}`, nil); w.Code != http.StatusOK {
		t.Fatalf("first query failed: %d", w.Code)
	}

	failNext.Store(true)
	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/query", `{"query": "second"}`, nil)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("failed query: status %d, want 502", w.Code)
	}

	// The prior result must still be rendered.
	w, env := doJSON(t, r, http.MethodGet, "/api/v1/scene", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("scene: %d", w.Code)
	}
	var scene struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal(env.Data, &scene); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(scene.Summary, "person1 moved north") {
		t.Errorf("prior scene lost: summary = %q", scene.Summary)
	}
}

func TestSceneModeEndpoint(t *testing.T) {
	srv := fakeQueryService(t)
	defer srv.Close()
	failNext.Store(false)
	r := testRouter(t, srv.URL)

	doJSON(t, r, http.MethodPost, "/api/v1/query", `{"query": "where was person1?"}`, nil)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/scene/mode", `{"mode": "paths", "enabled": false}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("mode: %d", w.Code)
	}
	var scene struct {
		Paths    []json.RawMessage `json:"paths"`
		Controls struct {
			ShowPaths bool `json:"show_paths"`
		} `json:"controls"`
	}
	if err := json.Unmarshal(env.Data, &scene); err != nil {
		t.Fatal(err)
	}
	if scene.Controls.ShowPaths || len(scene.Paths) != 0 {
		t.Error("paths still drawn after disabling the mode")
	}

	if w, _ := doJSON(t, r, http.MethodPost, "/api/v1/scene/mode", `{"mode": "satellite", "enabled": true}`, nil); w.Code != http.StatusBadRequest {
		t.Errorf("unknown mode: status %d, want 400", w.Code)
	}
}

func TestPersonsEmptyStore(t *testing.T) {
	srv := fakeQueryService(t)
	defer srv.Close()
	r := testRouter(t, srv.URL)

	// Empty store lists no persons but responds fine.
	w, env := doJSON(t, r, http.MethodGet, "/api/v1/persons", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("persons: %d", w.Code)
	}
	var data struct {
		Persons []string `json:"persons"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	if len(data.Persons) != 0 {
		t.Errorf("persons = %v, want none for an empty store", data.Persons)
	}
}

func TestSampleIngestRequiresAuth(t *testing.T) {
	srv := fakeQueryService(t)
	defer srv.Close()
	r := testRouter(t, srv.URL)

	body := `[{"timestamp": "2025-07-29T08:00:00Z", "latitude": 32.08, "longitude": 34.78, "person": "person1"}]`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/samples", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated ingest: status %d, want 401", w.Code)
	}

	// Login, then ingest with the token.
	_, env := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", `{"username": "admin", "password": "admin"}`, nil)
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &login); err != nil || login.Token == "" {
		t.Fatalf("login failed: %v (%s)", err, env.Message)
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+login.Token)
	w2, env := doJSON(t, r, http.MethodPost, "/api/v1/samples", body, header)
	if w2.Code != http.StatusOK {
		t.Fatalf("authenticated ingest: status %d (%s)", w2.Code, env.Message)
	}
	var ingest struct {
		Inserted int `json:"inserted"`
		Skipped  int `json:"skipped"`
	}
	if err := json.Unmarshal(env.Data, &ingest); err != nil {
		t.Fatal(err)
	}
	if ingest.Inserted != 1 || ingest.Skipped != 0 {
		t.Errorf("ingest = %+v, want 1 inserted", ingest)
	}

	// Now the person directory reflects the stored sample.
	_, env = doJSON(t, r, http.MethodGet, "/api/v1/persons", "", nil)
	var data struct {
		Persons []string `json:"persons"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	if len(data.Persons) != 1 || data.Persons[0] != "person1" {
		t.Errorf("persons = %v, want [person1]", data.Persons)
	}
}
