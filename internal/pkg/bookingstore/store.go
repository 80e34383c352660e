// Package bookingstore keeps the append-only list of booking pointers shown on the
// my-bookings page. Records only point at orders held by the GDS.
package bookingstore

import (
	"context"
	"sync"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
)

const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

// Store appends and lists booking records in insertion order. There is no dedup.
type Store interface {
	Append(ctx context.Context, record dto.BookingRecord) error
	GetAll(ctx context.Context) ([]dto.BookingRecord, error)
}

type MemoryStore struct {
	mu      sync.RWMutex
	records []dto.BookingRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, record dto.BookingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)

	return nil
}

func (s *MemoryStore) GetAll(_ context.Context) ([]dto.BookingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]dto.BookingRecord, len(s.records))
	copy(records, s.records)

	return records, nil
}
