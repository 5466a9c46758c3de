package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envFile = ".env"

type Config struct {
	Server ServerConfig
	Google GoogleConfig
	Scenic ScenicConfig
	Redis  RedisConfig
	Cache  CacheConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host           string
	Port           int
	Env            string
	AllowOrigins   string
	RequestTimeout time.Duration
}

// GoogleConfig - settings of the Google Maps web services adapter
type GoogleConfig struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	MaxRetries     int
	RateLimit      float64
	RateBurst      int
	Concurrency    int
}

// ScenicConfig - policy constants of scenic route synthesis
type ScenicConfig struct {
	SearchRadiusM  float64
	SampleSpacingM float64
	MaxSamples     int
	MaxPoints      int
	MaxTrims       int
	Categories     []string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	Enabled    bool
	NearbyTTL  time.Duration
	DetailsTTL time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	if _, err := os.Stat(envFile); err == nil {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8000)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("TOUR_REQUEST_TIMEOUT", 25)
	v.SetDefault("GOOGLE_MAPS_BASE_URL", "https://maps.googleapis.com")
	v.SetDefault("PROVIDER_REQUEST_TIMEOUT", 5)
	v.SetDefault("PROVIDER_MAX_RETRIES", 2)
	v.SetDefault("PROVIDER_RATE_LIMIT", 20)
	v.SetDefault("PROVIDER_RATE_BURST", 10)
	v.SetDefault("PROVIDER_CONCURRENCY", 6)
	v.SetDefault("SCENIC_SEARCH_RADIUS_M", 5000)
	v.SetDefault("SCENIC_MAX_SAMPLES", 8)
	v.SetDefault("SCENIC_MAX_POINTS", 5)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("NEARBY_CACHE_TTL", 6*60*60)
	v.SetDefault("DETAILS_CACHE_TTL", 24*60*60)
	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Server: ServerConfig{
			Host:           v.GetString("API_HOST"),
			Port:           v.GetInt("API_PORT"),
			Env:            v.GetString("API_ENV"),
			AllowOrigins:   v.GetString("CORS_ALLOW_ORIGINS"),
			RequestTimeout: time.Duration(v.GetInt("TOUR_REQUEST_TIMEOUT")) * time.Second,
		},
		Google: GoogleConfig{
			APIKey:         v.GetString("GOOGLE_MAPS_API_KEY"),
			BaseURL:        strings.TrimRight(v.GetString("GOOGLE_MAPS_BASE_URL"), "/"),
			RequestTimeout: time.Duration(v.GetInt("PROVIDER_REQUEST_TIMEOUT")) * time.Second,
			MaxRetries:     v.GetInt("PROVIDER_MAX_RETRIES"),
			RateLimit:      v.GetFloat64("PROVIDER_RATE_LIMIT"),
			RateBurst:      v.GetInt("PROVIDER_RATE_BURST"),
			Concurrency:    v.GetInt("PROVIDER_CONCURRENCY"),
		},
		Scenic: ScenicConfig{
			SearchRadiusM:  v.GetFloat64("SCENIC_SEARCH_RADIUS_M"),
			SampleSpacingM: v.GetFloat64("SCENIC_SAMPLE_SPACING_M"),
			MaxSamples:     v.GetInt("SCENIC_MAX_SAMPLES"),
			MaxPoints:      v.GetInt("SCENIC_MAX_POINTS"),
			MaxTrims:       v.GetInt("SCENIC_MAX_TRIMS"),
			Categories:     parseList(v.GetString("SCENIC_CATEGORIES")),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			Enabled:    v.GetBool("CACHE_ENABLED"),
			NearbyTTL:  time.Duration(v.GetInt("NEARBY_CACHE_TTL")) * time.Second,
			DetailsTTL: time.Duration(v.GetInt("DETAILS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if cfg.Google.APIKey == "" {
		return nil, fmt.Errorf("GOOGLE_MAPS_API_KEY environment variable is not set")
	}

	// Sample spacing follows the search radius unless set explicitly
	if cfg.Scenic.SampleSpacingM == 0 {
		cfg.Scenic.SampleSpacingM = 2 * cfg.Scenic.SearchRadiusM
	}
	// Over-budget scenic routes may shed every candidate but one unless limited explicitly
	if !v.IsSet("SCENIC_MAX_TRIMS") {
		cfg.Scenic.MaxTrims = max(cfg.Scenic.MaxPoints-1, 0)
	}
	if cfg.Google.Concurrency <= 0 {
		cfg.Google.Concurrency = 1
	}

	return cfg, nil
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
