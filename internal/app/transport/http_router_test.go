//go:build unit

package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ijalalfrz/travel-booking-service/internal/app/config"
	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/app/endpoints"
	"github.com/ijalalfrz/travel-booking-service/internal/app/service"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/airport"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/bookingstore"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/flight"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/gds"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/gds/gdstest"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/metrics"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis keeps string keys in memory. Expirations are ignored.
type fakeRedis struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string)}
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value interface{}, _ time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.data[key]; ok {
		return redis.NewBoolResult(false, nil)
	}

	f.data[key] = toString(value)

	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int64
	for _, key := range keys {
		if _, ok := f.data[key]; ok {
			delete(f.data, key)
			n++
		}
	}

	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.data[key] = toString(value)

	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	value, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(value, nil)
}

func toString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		b, _ := json.Marshal(v)
		return string(b)
	}
}

type testApp struct {
	router   http.Handler
	gds      *gdstest.Server
	mailer   *service.MockMailer
	visa     *service.MockVisaProvider
	bookings *bookingstore.MemoryStore
}

func newTestApp(t *testing.T, mutate ...func(cfg *gds.Config)) *testApp {
	t.Helper()

	_ = dto.InitValidator()

	srv := gdstest.NewServer()
	t.Cleanup(srv.Close)

	app := &testApp{
		gds:      srv,
		mailer:   service.NewMockMailer(t),
		visa:     service.NewMockVisaProvider(t),
		bookings: bookingstore.NewMemoryStore(),
	}

	m := metrics.NewMetrics("test")

	gdsConfig := gds.Config{
		BaseURL:      srv.URL,
		ClientID:     "id",
		ClientSecret: "secret",
		Currency:     "INR",
		ResultCap:    10,
		Timeout:      5 * time.Second,
	}
	for _, fn := range mutate {
		fn(&gdsConfig)
	}

	gateway := gds.NewClient(gdsConfig, m)

	catalogue, err := airport.NewCatalogue()
	require.NoError(t, err)

	checkoutService := service.NewCheckoutService(gateway, flight.NewSelectionCache(newFakeRedis()), app.bookings,
		service.CheckoutConfig{
			SelectionTTL:  30 * time.Minute,
			RedirectDelay: 3 * time.Second,
			CountryCode:   "91",
		}, m)

	endpts := endpoints.Endpoints{
		FlightEndpoint:   endpoints.MakeFlightEndpoint(service.NewFlightService(gateway)),
		CheckoutEndpoint: endpoints.MakeCheckoutEndpoint(checkoutService),
		BookingEndpoint:  endpoints.MakeBookingEndpoint(service.NewBookingService(gateway, app.bookings)),
		VisaEndpoint:     endpoints.MakeVisaEndpoint(service.NewVisaService(app.visa)),
		TripEndpoint: endpoints.MakeTripEndpoint(service.NewTripService(app.mailer, service.TripConfig{
			TeamEmail:     "sales@example.com",
			WhatsAppPhone: "919856664440",
		}, m)),
		AirportEndpoint: endpoints.MakeAirportEndpoint(service.NewAirportService(catalogue)),
	}

	cfg := &config.Config{HTTP: config.HTTP{CORSAllowedOrigins: []string{"https://example.com"}}}
	app.router = MakeHTTPRouter(cfg, endpts, m)

	return app
}

func (a *testApp) do(t *testing.T, method, path string, body interface{}, out interface{}) int {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}

	return rec.Code
}

func TestRouter_BookingFunnel(t *testing.T) {
	app := newTestApp(t)
	departure := time.Now().AddDate(0, 1, 0).Format(dto.DateLayout)

	var search dto.SearchFlightResponse
	status := app.do(t, http.MethodPost, "/api/v1/flights/search", map[string]interface{}{
		"trip_type":      "one-way",
		"origin":         "BOM",
		"destination":    "DXB",
		"departure_date": departure,
		"adults":         1,
		"fare_class":     "BUSINESS",
	}, &search)

	require.Equal(t, http.StatusOK, status)
	require.Len(t, search.Offers, 1)
	assert.Equal(t, 50000.0, search.Offers[0].SelectedFare.AdjustedPrice.Amount)
	assert.Equal(t, "BOM", app.gds.SearchQueries()[0].Get("originLocationCode"))

	var selection dto.CheckoutSelectionResponse
	status = app.do(t, http.MethodPost, "/api/v1/checkout/selections", map[string]interface{}{
		"offer":      search.Offers[0].GDSOffer,
		"fare_class": "BUSINESS",
		"adults":     1,
		"trip_type":  "one-way",
	}, &selection)

	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, selection.SelectionID)
	assert.Len(t, selection.Travelers, 1)

	var loaded dto.CheckoutSelectionResponse
	status = app.do(t, http.MethodGet, "/api/v1/checkout/selections/"+selection.SelectionID, nil, &loaded)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, selection.SelectionID, loaded.SelectionID)

	var booking dto.BookingResponse
	status = app.do(t, http.MethodPost, "/api/v1/checkout/selections/"+selection.SelectionID+"/bookings",
		map[string]interface{}{
			"travelers": []map[string]interface{}{{
				"first_name":    "Asha",
				"last_name":     "Rao",
				"date_of_birth": "1990-04-12",
				"gender":        "FEMALE",
				"email":         "asha@example.com",
				"phone":         map[string]string{"number": "9876543210"},
			}},
		}, &booking)

	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, gdstest.OrderID, booking.BookingID)
	assert.Equal(t, "/my-bookings", booking.RedirectTo)
	assert.Equal(t, int64(3000), booking.RedirectAfterMs)
	assert.Equal(t, 1, app.gds.Calls(gdstest.OpPricing))
	assert.Equal(t, 1, app.gds.Calls(gdstest.OpOrder))

	var list dto.BookingListResponse
	status = app.do(t, http.MethodGet, "/api/v1/bookings", nil, &list)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []dto.BookingRecord{{BookingID: gdstest.OrderID, Email: "asha@example.com"}}, list.Bookings)

	var detail dto.BookingDetail
	status = app.do(t, http.MethodGet, "/api/v1/bookings/"+gdstest.OrderID, nil, &detail)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, detail.Travelers, 1)
	assert.Equal(t, "ASHA", detail.Travelers[0].FirstName)
}

func TestRouter_Errors(t *testing.T) {
	app := newTestApp(t)

	t.Run("unknown_selection_redirects", func(t *testing.T) {
		var body dto.ErrorResponse
		status := app.do(t, http.MethodPost, "/api/v1/checkout/selections/missing/bookings",
			map[string]interface{}{"travelers": []interface{}{}}, &body)

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "/flights", body.RedirectTo)
		assert.Equal(t, int64(3000), body.RedirectAfterMs)
		assert.Zero(t, app.gds.Calls(gdstest.OpOrder))
	})

	t.Run("invalid_trip_lead_sends_nothing", func(t *testing.T) {
		var body dto.ErrorResponse
		status := app.do(t, http.MethodPost, "/api/v1/trips/plan", map[string]interface{}{
			"name":  "Asha",
			"email": "not-an-email",
			"phone": "9876543210",
		}, &body)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Please enter a valid email", body.Error)
		assert.Empty(t, app.mailer.Calls)
	})

	t.Run("visa_same_country", func(t *testing.T) {
		var body dto.ErrorResponse
		status := app.do(t, http.MethodPost, "/api/v1/visa/check", map[string]string{
			"passport":    "IN",
			"destination": "IN",
		}, &body)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "passport and destination countries must be different", body.Error)
		assert.Empty(t, app.visa.Calls)
	})

	t.Run("malformed_json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/flights/search", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		app.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_Ambient(t *testing.T) {
	app := newTestApp(t)

	t.Run("health", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, app.do(t, http.MethodGet, "/health", nil, nil))
	})

	t.Run("visa_countries", func(t *testing.T) {
		var body dto.CountryListResponse
		assert.Equal(t, http.StatusOK, app.do(t, http.MethodGet, "/api/v1/visa/countries", nil, &body))
		assert.Len(t, body.Countries, 25)
	})

	t.Run("airports", func(t *testing.T) {
		var body dto.AirportListResponse
		assert.Equal(t, http.StatusOK, app.do(t, http.MethodGet, "/api/v1/airports?q=DXB", nil, &body))
		require.NotEmpty(t, body.Airports)
		assert.Equal(t, "DXB", body.Airports[0].Code)
	})

	t.Run("metrics_exposed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec := httptest.NewRecorder()

		app.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "test_http_requests_total")
	})
}
