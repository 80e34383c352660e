package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/exception"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	t.Run("generated", func(t *testing.T) {
		var got string

		h := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got = logger.RequestID(r.Context())
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, got)
		assert.Equal(t, got, rec.Header().Get("X-Request-Id"))
	})

	t.Run("propagated", func(t *testing.T) {
		h := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", "req-123")

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Header().Get("X-Request-Id"))
	})
}

func TestRecoverer(t *testing.T) {
	h := Recoverer(logger.New(&strings.Builder{}, slog.LevelError, "test"))(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPublicCORSMiddleware(t *testing.T) {
	h := PublicCORSMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://agency.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "apikey, content-type")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, strings.ToLower(rec.Header().Get("Access-Control-Allow-Headers")), "apikey")
}

func TestErrorResponse_Closure(t *testing.T) {
	errorRequest := func(err error, wantStatus int, want dto.ErrorResponse) func(t *testing.T) {
		return func(t *testing.T) {
			rec := httptest.NewRecorder()
			ErrorResponse(context.Background(), err, rec)

			assert.Equal(t, wantStatus, rec.Code)
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

			var got dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, want, got)
		}
	}

	notFound := exception.ApplicationError{
		StatusCode:    http.StatusNotFound,
		Message:       "No flight data found. Please select a flight to proceed with booking.",
		RedirectTo:    "/flights",
		RedirectAfter: 3 * time.Second,
	}

	t.Run("application_error_with_redirect", errorRequest(notFound, http.StatusNotFound, dto.ErrorResponse{
		Error:           notFound.Message,
		RedirectTo:      "/flights",
		RedirectAfterMs: 3000,
	}))

	invalid := exception.ApplicationError{
		StatusCode: http.StatusUnprocessableEntity,
		Message:    "Please fix the errors in the form before proceeding.",
	}.WithDetails([]string{"A valid email is required for Traveler 1"})

	t.Run("wrapped_application_error_with_details", errorRequest(errors.Join(errors.New("checkout"), invalid),
		http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:   "Please fix the errors in the form before proceeding.",
			Details: []string{"A valid email is required for Traveler 1"},
		}))

	t.Run("unknown_error", errorRequest(errors.New("boom"), http.StatusInternalServerError, dto.ErrorResponse{
		Error: "boom",
	}))
}

type bindProbe struct {
	Name string `json:"name"`
	ID   string `json:"-"`
}

func (b *bindProbe) Bind(r *http.Request) error {
	b.ID = chi.URLParam(r, "id")
	if b.Name == "invalid" {
		return exception.ApplicationError{StatusCode: http.StatusBadRequest, Message: "name is invalid"}
	}

	return nil
}

func TestMakeHandlerFunc(t *testing.T) {
	echo := func(_ context.Context, req interface{}) (interface{}, error) {
		return req, nil
	}

	router := chi.NewRouter()
	router.Use(render.SetContentType(render.ContentTypeJSON))
	router.Post("/items/{id}", MakeHandlerFunc(echo, DecodeRequest[bindProbe], ResponseWithBody))
	router.Get("/items/{id}", MakeHandlerFunc(echo, DecodeParams[bindProbe], ResponseWithBody))

	t.Run("body_and_path", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/items/42", strings.NewReader(`{"name":"asha"}`)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"name":"asha"}`, rec.Body.String())
	})

	t.Run("bind_error_keeps_status", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/items/42", strings.NewReader(`{"name":"invalid"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "name is invalid")
	})

	t.Run("malformed_body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/items/42", strings.NewReader(`{`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid request body")
	})

	t.Run("params_only", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/42", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
