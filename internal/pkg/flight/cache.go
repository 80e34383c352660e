package flight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/exception"
	"github.com/redis/go-redis/v9"
)

var ErrSelectionNotFound = exception.ApplicationError{
	StatusCode: http.StatusNotFound,
	Message:    "No flight data found. Please select a flight to proceed with booking.",
}

type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// SelectionCache keeps the offer chosen on the results list until checkout picks it up.
type SelectionCache struct {
	redis RedisClient
}

func NewSelectionCache(redis RedisClient) *SelectionCache {
	return &SelectionCache{
		redis: redis,
	}
}

func (c *SelectionCache) GetSelectionKey(id string) string {
	return fmt.Sprintf("checkout:selection:%s", id)
}

func (c *SelectionCache) GetLockKey(id string) string {
	return fmt.Sprintf("checkout:lock:%s", id)
}

// AcquireLock guards a selection while its booking is in flight.
func (c *SelectionCache) AcquireLock(ctx context.Context, id string, timeout time.Duration) (bool, error) {
	return c.redis.SetNX(ctx, c.GetLockKey(id), "1", timeout).Result()
}

func (c *SelectionCache) ReleaseLock(ctx context.Context, id string) error {
	return c.redis.Del(ctx, c.GetLockKey(id)).Err()
}

func (c *SelectionCache) SaveSelection(ctx context.Context, selection dto.CheckoutSelection, expiration time.Duration) error {
	data, err := json.Marshal(selection)
	if err != nil {
		return fmt.Errorf("failed to marshal selection: %w", err)
	}

	err = c.redis.Set(ctx, c.GetSelectionKey(selection.ID), data, expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to set selection: %w", err)
	}

	return nil
}

// GetSelection returns ErrSelectionNotFound when the selection never existed or has expired.
func (c *SelectionCache) GetSelection(ctx context.Context, id string) (dto.CheckoutSelection, error) {
	data, err := c.redis.Get(ctx, c.GetSelectionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return dto.CheckoutSelection{}, ErrSelectionNotFound
	}

	if err != nil {
		return dto.CheckoutSelection{}, fmt.Errorf("failed to get selection: %w", err)
	}

	var selection dto.CheckoutSelection
	if err := json.Unmarshal(data, &selection); err != nil {
		return dto.CheckoutSelection{}, fmt.Errorf("failed to unmarshal selection: %w", err)
	}

	return selection, nil
}
