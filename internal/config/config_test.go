package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		t.Setenv("GOOGLE_MAPS_API_KEY", "")

		cfg, err := Load()
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "GOOGLE_MAPS_API_KEY")
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("GOOGLE_MAPS_API_KEY", "test_key")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0:8000", cfg.GetServerAddr())
		assert.Equal(t, 25*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, "https://maps.googleapis.com", cfg.Google.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.Google.RequestTimeout)
		assert.Equal(t, 5000.0, cfg.Scenic.SearchRadiusM)
		assert.Equal(t, 10000.0, cfg.Scenic.SampleSpacingM)
		assert.Equal(t, 5, cfg.Scenic.MaxPoints)
		assert.Equal(t, 4, cfg.Scenic.MaxTrims)
		assert.False(t, cfg.Cache.Enabled)
		assert.Nil(t, cfg.Scenic.Categories)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("GOOGLE_MAPS_API_KEY", "test_key")
		t.Setenv("API_PORT", "9090")
		t.Setenv("GOOGLE_MAPS_BASE_URL", "http://localhost:1234/")
		t.Setenv("SCENIC_CATEGORIES", "coastal, forest ,")
		t.Setenv("CACHE_ENABLED", "true")
		t.Setenv("NEARBY_CACHE_TTL", "60")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "http://localhost:1234", cfg.Google.BaseURL)
		assert.Equal(t, []string{"coastal", "forest"}, cfg.Scenic.Categories)
		assert.True(t, cfg.Cache.Enabled)
		assert.Equal(t, time.Minute, cfg.Cache.NearbyTTL)
	})

	t.Run("trim limit follows the point cap", func(t *testing.T) {
		t.Setenv("GOOGLE_MAPS_API_KEY", "test_key")
		t.Setenv("SCENIC_MAX_POINTS", "3")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Scenic.MaxTrims)
	})

	t.Run("explicit trim limit", func(t *testing.T) {
		t.Setenv("GOOGLE_MAPS_API_KEY", "test_key")
		t.Setenv("SCENIC_MAX_TRIMS", "1")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 1, cfg.Scenic.MaxTrims)
	})
}
