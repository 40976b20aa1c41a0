package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogdash/internal/config"
	"blogdash/internal/database"
)

// MockDBService never reaches MongoDB: Connect fails with connectErr.
type MockDBService struct {
	database.Service
	connectErr error
}

func (m *MockDBService) Connect(ctx context.Context) error { return m.connectErr }

func (m *MockDBService) Health() map[string]string {
	return map[string]string{"message": "It's healthy"}
}

func testServer(t *testing.T, db database.Service) *httptest.Server {
	t.Helper()
	cfg := &config.Config{
		Server: config.Server{Port: 8080, AllowedOrigins: "http://localhost:3000"},
		API:    config.API{DefaultPageSize: 10, MaxPageSize: 100},
	}
	s := NewServer(cfg, db, zerolog.Nop())
	ts := httptest.NewServer(s.RegisterRoutes())
	t.Cleanup(ts.Close)
	return ts
}

func decodeMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body["message"]
}

func TestHealthHandler(t *testing.T) {
	ts := testServer(t, &MockDBService{})

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "It's healthy", decodeMessage(t, resp))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	ts := testServer(t, &MockDBService{})

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestAPIRoutes(t *testing.T) {
	ts := testServer(t, &MockDBService{connectErr: errors.New("no reachable servers")})
	id := "65f1c0a2b3c4d5e6f7a8b9c0"

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantMsg    string
	}{
		{"blog list validates ids", http.MethodGet, "/api/blogs?userId=1", http.StatusBadRequest, "Invalid or missing user id"},
		{"blog read validates path id", http.MethodGet, "/api/blogs/nope?userId=" + id + "&categoryId=" + id, http.StatusBadRequest, "Invalid or missing blog id"},
		{"category delete validates path id", http.MethodDelete, "/api/categories/nope?userId=" + id, http.StatusBadRequest, "Invalid or missing category id"},
		{"user delete validates id", http.MethodDelete, "/api/users", http.StatusBadRequest, "Invalid or missing user id"},
		{"database down", http.MethodGet, "/api/users", http.StatusInternalServerError, "Error: no reachable servers"},
		{"database down on category list", http.MethodGet, "/api/categories?userId=" + id, http.StatusInternalServerError, "Error: no reachable servers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, ts.URL+tt.path, nil)
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, resp))
		})
	}
}

func TestPreflight(t *testing.T) {
	ts := testServer(t, &MockDBService{})

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/blogs", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
}
