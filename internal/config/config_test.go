package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "mongodb-restapis", cfg.Mongo.Database)
	assert.Equal(t, 10*time.Second, cfg.Mongo.ConnectTimeout)
	assert.False(t, cfg.API.UnifyNotFound)
	assert.Equal(t, int64(10), cfg.API.DefaultPageSize)
	assert.Equal(t, int64(100), cfg.API.MaxPageSize)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_DATABASE", "blogs_test")
	t.Setenv("API_UNIFY_NOT_FOUND", "true")
	t.Setenv("API_MAX_PAGE_SIZE", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "blogs_test", cfg.Mongo.Database)
	assert.True(t, cfg.API.UnifyNotFound)
	assert.Equal(t, int64(25), cfg.API.MaxPageSize)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "port out of range", env: map[string]string{"PORT": "70000"}},
		{name: "max page below default", env: map[string]string{"API_DEFAULT_PAGE_SIZE": "20", "API_MAX_PAGE_SIZE": "5"}},
		{name: "zero burst", env: map[string]string{"RATE_LIMIT_BURST": "0"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("MONGO_URI", "mongodb://localhost:27017")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestOrigins(t *testing.T) {
	s := Server{AllowedOrigins: " http://a.test , ,http://b.test"}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, s.Origins())
	assert.Empty(t, Server{}.Origins())
}
