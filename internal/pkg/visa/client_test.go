package visa_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ijalalfrz/travel-booking-service/internal/pkg/exception"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/visa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const requirementJSON = `{
	"passport_of": "India",
	"passport_code": "IN",
	"destination": "Thailand",
	"continent": "Asia",
	"capital": "Bangkok",
	"currency": "Thai baht",
	"pass_valid": "6 months",
	"phone_code": "+66",
	"timezone": "+07:00",
	"except_text": "",
	"visa": "Visa on arrival",
	"color": "blue",
	"stay_of": "15 days",
	"link": "https://www.thaiembdc.org",
	"embassy": "https://www.thaiembassy.com"
}`

func newProvider(t *testing.T, status int, body string) (*httptest.Server, *[]*http.Request) {
	t.Helper()

	var received []*http.Request

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		received = append(received, r)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv, &received
}

func newClient(url, key string) *visa.Client {
	return visa.NewClient(visa.Config{
		APIURL:  url,
		APIHost: "visa-requirement.p.rapidapi.com",
		APIKey:  key,
		Timeout: 5 * time.Second,
	}, nil)
}

func TestClient_Check(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv, received := newProvider(t, http.StatusOK, requirementJSON)

		req, err := newClient(srv.URL, "secret").Check(context.Background(), "IN", "TH")
		require.NoError(t, err)

		assert.Equal(t, "Visa on arrival", req.Visa)
		assert.Equal(t, "15 days", req.StayOf)
		assert.Equal(t, "IN", req.PassportCode)

		require.Len(t, *received, 1)
		r := (*received)[0]
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "secret", r.Header.Get("X-RapidAPI-Key"))
		assert.Equal(t, "visa-requirement.p.rapidapi.com", r.Header.Get("X-RapidAPI-Host"))
		assert.Equal(t, "IN", r.FormValue("passport"))
		assert.Equal(t, "TH", r.FormValue("destination"))
	})

	t.Run("missing_api_key", func(t *testing.T) {
		srv, received := newProvider(t, http.StatusOK, requirementJSON)

		_, err := newClient(srv.URL, "").Check(context.Background(), "IN", "TH")
		require.ErrorIs(t, err, visa.ErrMissingAPIKey)
		assert.Empty(t, *received)
	})

	t.Run("provider_status_is_forwarded", func(t *testing.T) {
		srv, _ := newProvider(t, http.StatusTooManyRequests, `{"message":"quota"}`)

		_, err := newClient(srv.URL, "secret").Check(context.Background(), "IN", "TH")
		require.ErrorIs(t, err, visa.ErrRequirementsUnavailable)

		var appErr exception.ApplicationError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusTooManyRequests, appErr.StatusCode)
	})

	t.Run("provider_flags_error", func(t *testing.T) {
		srv, _ := newProvider(t, http.StatusOK, `{"error": true}`)

		_, err := newClient(srv.URL, "secret").Check(context.Background(), "IN", "TH")
		require.ErrorIs(t, err, visa.ErrRequirementsUnavailable)

		var appErr exception.ApplicationError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadGateway, appErr.StatusCode)
	})

	t.Run("malformed_body", func(t *testing.T) {
		srv, _ := newProvider(t, http.StatusOK, `not json`)

		_, err := newClient(srv.URL, "secret").Check(context.Background(), "IN", "TH")
		require.ErrorIs(t, err, visa.ErrInternal)
	})
}
