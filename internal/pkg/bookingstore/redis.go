package bookingstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/redis/go-redis/v9"
)

type RedisListClient interface {
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
}

// RedisStore keeps records as JSON entries of a single list.
type RedisStore struct {
	redis RedisListClient
	key   string
}

func NewRedisStore(redis RedisListClient, key string) *RedisStore {
	return &RedisStore{
		redis: redis,
		key:   key,
	}
}

func (s *RedisStore) Append(ctx context.Context, record dto.BookingRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal booking record: %w", err)
	}

	if err := s.redis.RPush(ctx, s.key, data).Err(); err != nil {
		return fmt.Errorf("failed to append booking record: %w", err)
	}

	return nil
}

func (s *RedisStore) GetAll(ctx context.Context) ([]dto.BookingRecord, error) {
	entries, err := s.redis.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list booking records: %w", err)
	}

	records := make([]dto.BookingRecord, 0, len(entries))
	for _, entry := range entries {
		var record dto.BookingRecord
		if err := json.Unmarshal([]byte(entry), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal booking record: %w", err)
		}

		records = append(records, record)
	}

	return records, nil
}
