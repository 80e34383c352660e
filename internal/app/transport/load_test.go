//go:build unit

package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/gds"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/gds/gdstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Stats struct {
	Succeeded int
	Failed    int
	Statuses  map[int]int
}

func (s *Stats) Add(status int) {
	if s.Statuses == nil {
		s.Statuses = make(map[int]int)
	}

	s.Statuses[status]++

	if status < http.StatusBadRequest {
		s.Succeeded++
	} else {
		s.Failed++
	}
}

// budgetLimiter allows a fixed number of calls in total.
type budgetLimiter struct {
	mu     sync.Mutex
	budget int
}

func (b *budgetLimiter) Allow(_ context.Context, _ string, _ redis_rate.Limit) (*redis_rate.Result, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.budget <= 0 {
		return &redis_rate.Result{Allowed: 0}, nil
	}

	b.budget--

	return &redis_rate.Result{Allowed: 1}, nil
}

func post(router http.Handler, path string, body interface{}) (int, []byte) {
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec.Code, rec.Body.Bytes()
}

func runScenario(vus int, fn func(id int) int) Stats {
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		stats Stats
	)

	for i := 0; i < vus; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			status := fn(id)

			mu.Lock()
			stats.Add(status)
			mu.Unlock()
		}(i)
	}

	wg.Wait()

	return stats
}

func TestFunnelLoad(t *testing.T) {
	departure := time.Now().AddDate(0, 1, 0).Format(dto.DateLayout)

	criteria := map[string]interface{}{
		"trip_type":      "one-way",
		"origin":         "BOM",
		"destination":    "DXB",
		"departure_date": departure,
		"adults":         1,
		"fare_class":     "ECONOMY",
	}

	t.Run("concurrent_checkouts_each_store_one_record", func(t *testing.T) {
		app := newTestApp(t)
		vus := 10

		status, body := post(app.router, "/api/v1/flights/search", criteria)
		require.Equal(t, http.StatusOK, status)

		var search dto.SearchFlightResponse
		require.NoError(t, json.Unmarshal(body, &search))
		require.NotEmpty(t, search.Offers)

		stats := runScenario(vus, func(id int) int {
			status, body := post(app.router, "/api/v1/checkout/selections", map[string]interface{}{
				"offer":      search.Offers[0].GDSOffer,
				"fare_class": "ECONOMY",
				"adults":     1,
				"trip_type":  "one-way",
			})
			if status != http.StatusCreated {
				return status
			}

			var selection dto.CheckoutSelectionResponse
			if err := json.Unmarshal(body, &selection); err != nil {
				return http.StatusInternalServerError
			}

			status, _ = post(app.router, "/api/v1/checkout/selections/"+selection.SelectionID+"/bookings",
				map[string]interface{}{
					"travelers": []map[string]interface{}{{
						"first_name":    "Load",
						"last_name":     fmt.Sprintf("User%d", id),
						"date_of_birth": "1990-04-12",
						"gender":        "MALE",
						"email":         fmt.Sprintf("vu%d@example.com", id),
						"phone":         map[string]string{"number": "9876543210"},
					}},
				})

			return status
		})

		assert.Equal(t, vus, stats.Succeeded, "statuses: %v", stats.Statuses)
		assert.Equal(t, vus, app.gds.Calls(gdstest.OpOrder))

		records, err := app.bookings.GetAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, records, vus)
	})

	t.Run("rate_limited_searches_fail_upstream", func(t *testing.T) {
		limiter := &budgetLimiter{budget: 5}
		app := newTestApp(t, func(cfg *gds.Config) {
			cfg.RateLimitRPS = 5
			cfg.Limiter = limiter
		})

		vus := 20
		stats := runScenario(vus, func(int) int {
			status, _ := post(app.router, "/api/v1/flights/search", criteria)
			return status
		})

		assert.Equal(t, vus, stats.Succeeded+stats.Failed)
		assert.Greater(t, stats.Failed, 0, "statuses: %v", stats.Statuses)
		assert.Equal(t, stats.Failed, stats.Statuses[http.StatusBadGateway])
		assert.LessOrEqual(t, app.gds.Calls(gdstest.OpSearch), 5)
	})
}
