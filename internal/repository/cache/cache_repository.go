package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/scenic-tour/internal/domain"
	"github.com/scenic-tour/internal/domain/repository"
	"go.uber.org/zap"
)

const (
	nearbyKeyPrefix  = "scenic:nearby:"
	detailsKeyPrefix = "scenic:details:"
)

type cacheRepository struct {
	redis  *Redis
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(r *Redis) repository.CacheRepository {
	return &cacheRepository{
		redis:  r,
		client: r.Client(),
		logger: r.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetNearby получает результаты поиска мест; the bool is false on miss.
// An empty cached result is a hit.
func (r *cacheRepository) GetNearby(ctx context.Context, key string) ([]domain.Candidate, bool, error) {
	data, err := r.Get(ctx, nearbyKeyPrefix+key)
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		return nil, false, nil
	}

	var places []domain.Candidate
	if err := json.Unmarshal(data, &places); err != nil {
		r.logger.Error("Failed to unmarshal nearby places from cache", zap.String("key", key), zap.Error(err))
		return nil, false, fmt.Errorf("unmarshal nearby places: %w", err)
	}
	return places, true, nil
}

// SetNearby сохраняет результаты поиска мест
func (r *cacheRepository) SetNearby(ctx context.Context, key string, places []domain.Candidate, ttl time.Duration) error {
	if places == nil {
		places = []domain.Candidate{}
	}
	data, err := json.Marshal(places)
	if err != nil {
		return fmt.Errorf("marshal nearby places: %w", err)
	}
	return r.Set(ctx, nearbyKeyPrefix+key, data, ttl)
}

// GetPlaceDetails получает детали места; nil, nil on miss
func (r *cacheRepository) GetPlaceDetails(ctx context.Context, placeID string) (*domain.PlaceDetails, error) {
	data, err := r.Get(ctx, detailsKeyPrefix+placeID)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var details domain.PlaceDetails
	if err := json.Unmarshal(data, &details); err != nil {
		r.logger.Error("Failed to unmarshal place details from cache", zap.String("place_id", placeID), zap.Error(err))
		return nil, fmt.Errorf("unmarshal place details: %w", err)
	}
	return &details, nil
}

// SetPlaceDetails сохраняет детали места
func (r *cacheRepository) SetPlaceDetails(ctx context.Context, details *domain.PlaceDetails, ttl time.Duration) error {
	if details == nil || details.PlaceID == "" {
		return fmt.Errorf("place details without place id")
	}
	data, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("marshal place details: %w", err)
	}
	return r.Set(ctx, detailsKeyPrefix+details.PlaceID, data, ttl)
}

func (r *cacheRepository) Health(ctx context.Context) error {
	return r.redis.Health(ctx)
}
