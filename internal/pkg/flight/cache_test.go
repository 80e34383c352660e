package flight

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/gds"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/gds/gdstest"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testSelection(t *testing.T) dto.CheckoutSelection {
	t.Helper()

	var offer gds.FlightOffer
	require.NoError(t, json.Unmarshal([]byte(gdstest.OfferJSON("1", "BOM", "DXB", "25000.00")), &offer))

	return dto.CheckoutSelection{
		ID:        "sel-1",
		Offer:     offer,
		FareClass: "BUSINESS",
		Adults:    1,
		TripType:  dto.TripTypeOneWay,
		CreatedAt: time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestSelectionCache_Keys(t *testing.T) {
	c := &SelectionCache{}

	assert.Equal(t, "checkout:selection:abc", c.GetSelectionKey("abc"))
	assert.Equal(t, "checkout:lock:abc", c.GetLockKey("abc"))
}

func TestSelectionCache_AcquireLock_Closure(t *testing.T) {
	acquireLockRequest := func(mockSetup func(m *MockRedisClient), want bool) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRedisClient(t)
			mockSetup(m)
			c := NewSelectionCache(m)

			got, err := c.AcquireLock(context.Background(), "sel-1", time.Minute)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}

	t.Run("lock_acquired", acquireLockRequest(func(m *MockRedisClient) {
		m.On("SetNX", mock.Anything, "checkout:lock:sel-1", "1", time.Minute).Return(redis.NewBoolResult(true, nil))
	}, true))

	t.Run("booking_in_flight", acquireLockRequest(func(m *MockRedisClient) {
		m.On("SetNX", mock.Anything, "checkout:lock:sel-1", "1", time.Minute).Return(redis.NewBoolResult(false, nil))
	}, false))
}

func TestSelectionCache_ReleaseLock(t *testing.T) {
	m := NewMockRedisClient(t)
	m.On("Del", mock.Anything, "checkout:lock:sel-1").Return(redis.NewIntResult(1, nil))

	require.NoError(t, NewSelectionCache(m).ReleaseLock(context.Background(), "sel-1"))
}

func TestSelectionCache_SaveAndGet(t *testing.T) {
	selection := testSelection(t)

	var stored []byte

	m := NewMockRedisClient(t)
	m.On("Set", mock.Anything, "checkout:selection:sel-1", mock.Anything, 30*time.Minute).
		Run(func(args mock.Arguments) {
			stored = args.Get(2).([]byte)
		}).
		Return(redis.NewStatusResult("OK", nil))

	c := NewSelectionCache(m)
	require.NoError(t, c.SaveSelection(context.Background(), selection, 30*time.Minute))
	require.NotEmpty(t, stored)

	m.On("Get", mock.Anything, "checkout:selection:sel-1").Return(redis.NewStringResult(string(stored), nil))

	got, err := c.GetSelection(context.Background(), "sel-1")
	require.NoError(t, err)

	assert.Equal(t, selection.ID, got.ID)
	assert.Equal(t, selection.FareClass, got.FareClass)
	assert.Equal(t, selection.Adults, got.Adults)
	assert.True(t, selection.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, selection.Offer.ID, got.Offer.ID)
	assert.JSONEq(t, string(selection.Offer.Raw()), string(got.Offer.Raw()))
}

func TestSelectionCache_GetSelection_Errors(t *testing.T) {
	t.Run("expired", func(t *testing.T) {
		m := NewMockRedisClient(t)
		m.On("Get", mock.Anything, "checkout:selection:gone").Return(redis.NewStringResult("", redis.Nil))

		_, err := NewSelectionCache(m).GetSelection(context.Background(), "gone")
		assert.ErrorIs(t, err, ErrSelectionNotFound)
	})

	t.Run("redis_down", func(t *testing.T) {
		m := NewMockRedisClient(t)
		m.On("Get", mock.Anything, "checkout:selection:sel-1").Return(redis.NewStringResult("", errors.New("connection refused")))

		_, err := NewSelectionCache(m).GetSelection(context.Background(), "sel-1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrSelectionNotFound)
	})
}
