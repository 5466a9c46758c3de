package repository

import (
	"context"
	"time"

	"github.com/scenic-tour/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу; nil, nil on miss
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetNearby получает результаты поиска мест из кеша
	GetNearby(ctx context.Context, key string) ([]domain.Candidate, bool, error)

	// SetNearby сохраняет результаты поиска мест
	SetNearby(ctx context.Context, key string, places []domain.Candidate, ttl time.Duration) error

	// GetPlaceDetails получает детали места из кеша
	GetPlaceDetails(ctx context.Context, placeID string) (*domain.PlaceDetails, error)

	// SetPlaceDetails сохраняет детали места
	SetPlaceDetails(ctx context.Context, details *domain.PlaceDetails, ttl time.Duration) error

	// Health проверяет доступность кеша
	Health(ctx context.Context) error
}
