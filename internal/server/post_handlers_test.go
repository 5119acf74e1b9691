package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"postdeck/internal/blob"
	"postdeck/internal/config"
	"postdeck/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp builds a server over an in-memory store with routes mounted.
func newTestApp(t *testing.T) (*fiber.App, *Server) {
	t.Helper()
	cfg := &config.Config{Port: "0", Env: "test", StoreBackend: config.StoreMemory}

	srv, err := NewServerWithDeps(cfg, blob.NewMemoryStore(), nil)
	require.NoError(t, err)

	app := fiber.New()
	srv.SetupRoutes(app)
	return app, srv
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCreatePostHandler(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/posts", fiber.Map{
		"content":   "Hello #world",
		"platforms": []string{"twitter"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	post := decode[models.Post](t, resp)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, models.PostStatusDraft, post.Status)
	assert.Equal(t, []string{"#world"}, post.Hashtags)
}

func TestCreatePostHandler_Scheduled(t *testing.T) {
	app, _ := newTestApp(t)

	day := time.Now().AddDate(0, 0, 2).UTC().Truncate(24 * time.Hour)
	resp := doJSON(t, app, http.MethodPost, "/api/posts", fiber.Map{
		"content":       "Scheduled post",
		"status":        "scheduled",
		"platforms":     []string{"twitter", "linkedin"},
		"scheduledDay":  day.Format(time.RFC3339),
		"scheduledTime": "14:30",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	post := decode[models.Post](t, resp)
	assert.Equal(t, models.PostStatusScheduled, post.Status)
	require.NotNil(t, post.ScheduledDate)
}

func TestCreatePostHandler_Validation(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name string
		body fiber.Map
	}{
		{"missing content", fiber.Map{"platforms": []string{"twitter"}}},
		{"missing platforms", fiber.Map{"content": "hi"}},
		{"unknown platform", fiber.Map{"content": "hi", "platforms": []string{"myspace"}}},
		{"bad status", fiber.Map{"content": "hi", "status": "archived", "platforms": []string{"twitter"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/posts", tt.body)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestGetPostsHandler(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/posts", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	posts := decode[[]models.Post](t, resp)
	// The seed collection backs the first read.
	assert.NotEmpty(t, posts)

	resp = doJSON(t, app, http.MethodGet, "/api/posts?status=draft", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	drafts := decode[[]models.Post](t, resp)
	for _, p := range drafts {
		assert.Equal(t, models.PostStatusDraft, p.Status)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/posts?status=bogus", nil)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetPostHandler_NotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/posts/no-such-id", nil)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPublishPostHandler(t *testing.T) {
	app, _ := newTestApp(t)

	created := decode[models.Post](t, doJSON(t, app, http.MethodPost, "/api/posts", fiber.Map{
		"content":   "to publish",
		"platforms": []string{"twitter"},
	}))

	resp := doJSON(t, app, http.MethodPost, "/api/posts/"+created.ID+"/publish", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	published := decode[models.Post](t, resp)
	assert.Equal(t, models.PostStatusPublished, published.Status)
	require.NotNil(t, published.PublishedDate)

	// Publishing again is rejected.
	resp = doJSON(t, app, http.MethodPost, "/api/posts/"+created.ID+"/publish", nil)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdatePostHandler(t *testing.T) {
	app, _ := newTestApp(t)

	created := decode[models.Post](t, doJSON(t, app, http.MethodPost, "/api/posts", fiber.Map{
		"content":   "original #tag",
		"platforms": []string{"twitter"},
	}))

	resp := doJSON(t, app, http.MethodPut, "/api/posts/"+created.ID, fiber.Map{
		"content": "edited content",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[models.Post](t, resp)
	assert.Equal(t, "edited content", updated.Content)
	assert.Equal(t, []string{"#tag"}, updated.Hashtags)
}

func TestDeletePostHandler(t *testing.T) {
	app, _ := newTestApp(t)

	created := decode[models.Post](t, doJSON(t, app, http.MethodPost, "/api/posts", fiber.Map{
		"content":   "doomed",
		"platforms": []string{"twitter"},
	}))

	resp := doJSON(t, app, http.MethodDelete, "/api/posts/"+created.ID, nil)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/posts/"+created.ID, nil)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
