package mailer

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func leadParams() map[string]string {
	return map[string]string{
		"from_name":    "Asha Rao",
		"from_email":   "asha@example.com",
		"phone":        "9876543210",
		"destination":  "Bali",
		"travel_dates": "March 2027",
		"travelers":    "2 Adults",
		"budget":       "₹1,50,000",
		"trip_type":    "Honeymoon",
		"requirements": "Flights, Hotel",
		"notes":        "None",
	}
}

func TestRender_Closure(t *testing.T) {
	renderRequest := func(kind Kind, wantSubject string, wantBody []string, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			subject, body, err := render(Email{Kind: kind, Params: leadParams()})
			if wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, wantSubject, subject)
			for _, line := range wantBody {
				assert.Contains(t, body, line)
			}
		}
	}

	t.Run("team_notification", renderRequest(KindTeamNotification,
		"New Trip Planning Request from Asha Rao",
		[]string{"Email: asha@example.com", "Budget: ₹1,50,000", "Requirements: Flights, Hotel"}, false))

	t.Run("customer_confirmation", renderRequest(KindCustomerConfirmation,
		"We received your trip request, Asha Rao",
		[]string{"Hi Asha Rao,", "Destination: Bali"}, false))

	t.Run("unknown_kind", renderRequest(Kind("newsletter"), "", nil, true))
}

type emailJSRecorder struct {
	mu       sync.Mutex
	requests []emailJSRequest
}

func newEmailJSServer(t *testing.T, status int) (*httptest.Server, *emailJSRecorder) {
	t.Helper()

	rec := &emailJSRecorder{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req emailJSRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		rec.mu.Lock()
		rec.requests = append(rec.requests, req)
		rec.mu.Unlock()

		w.WriteHeader(status)
		_, _ = io.WriteString(w, "OK")
	}))
	t.Cleanup(srv.Close)

	return srv, rec
}

func newEmailJSMailer(url string) *EmailJSMailer {
	return NewEmailJSMailer(EmailJSConfig{
		APIURL:             url,
		ServiceID:          "service_travel",
		PublicKey:          "public-key",
		AccessToken:        "private-token",
		TeamTemplateID:     "template_team",
		CustomerTemplateID: "template_customer",
		Timeout:            5 * time.Second,
	}, nil)
}

func TestEmailJSMailer_Send(t *testing.T) {
	t.Run("team_notification", func(t *testing.T) {
		srv, rec := newEmailJSServer(t, http.StatusOK)

		err := newEmailJSMailer(srv.URL).Send(context.Background(), Email{
			Kind:    KindTeamNotification,
			To:      "sales@example.com",
			ReplyTo: "asha@example.com",
			Params:  leadParams(),
		})
		require.NoError(t, err)

		require.Len(t, rec.requests, 1)
		got := rec.requests[0]
		assert.Equal(t, "service_travel", got.ServiceID)
		assert.Equal(t, "template_team", got.TemplateID)
		assert.Equal(t, "public-key", got.UserID)
		assert.Equal(t, "private-token", got.AccessToken)
		assert.Equal(t, "sales@example.com", got.TemplateParams["to_email"])
		assert.Equal(t, "asha@example.com", got.TemplateParams["reply_to"])
		assert.Equal(t, "Bali", got.TemplateParams["destination"])
	})

	t.Run("customer_template", func(t *testing.T) {
		srv, rec := newEmailJSServer(t, http.StatusOK)

		err := newEmailJSMailer(srv.URL).Send(context.Background(), Email{
			Kind:   KindCustomerConfirmation,
			To:     "asha@example.com",
			ToName: "Asha Rao",
			Params: leadParams(),
		})
		require.NoError(t, err)

		require.Len(t, rec.requests, 1)
		assert.Equal(t, "template_customer", rec.requests[0].TemplateID)
		assert.Equal(t, "Asha Rao", rec.requests[0].TemplateParams["to_name"])
	})

	t.Run("rejected", func(t *testing.T) {
		srv, _ := newEmailJSServer(t, http.StatusBadRequest)

		err := newEmailJSMailer(srv.URL).Send(context.Background(), Email{
			Kind:   KindTeamNotification,
			To:     "sales@example.com",
			Params: leadParams(),
		})
		assert.ErrorIs(t, err, ErrSendFailed)
	})

	t.Run("missing_template_makes_no_call", func(t *testing.T) {
		srv, rec := newEmailJSServer(t, http.StatusOK)

		m := newEmailJSMailer(srv.URL)
		m.cfg.CustomerTemplateID = ""

		err := m.Send(context.Background(), Email{Kind: KindCustomerConfirmation, To: "asha@example.com"})
		assert.ErrorIs(t, err, ErrSendFailed)
		assert.Empty(t, rec.requests)
	})
}

func TestGmailMailer_Send(t *testing.T) {
	var (
		gotPath string
		gotRaw  string
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		var msg struct {
			Raw string `json:"raw"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		gotRaw = msg.Raw

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"msg-1","threadId":"thread-1"}`)
	}))
	defer srv.Close()

	m, err := NewGmailMailer(context.Background(), GmailConfig{
		ClientID:     "client",
		ClientSecret: "secret",
		RefreshToken: "refresh",
		Sender:       "Travel Desk <desk@example.com>",
	}, nil, option.WithEndpoint(srv.URL+"/"), option.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	err = m.Send(context.Background(), Email{
		Kind:    KindTeamNotification,
		To:      "sales@example.com",
		ReplyTo: "asha@example.com",
		Params:  leadParams(),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(gotPath, "/users/me/messages/send"), gotPath)

	decoded, err := base64.URLEncoding.DecodeString(gotRaw)
	require.NoError(t, err)

	message := string(decoded)
	assert.Contains(t, message, "From: Travel Desk <desk@example.com>\r\n")
	assert.Contains(t, message, "To: sales@example.com\r\n")
	assert.Contains(t, message, "Reply-To: asha@example.com\r\n")
	assert.Contains(t, message, "Subject: New Trip Planning Request from Asha Rao\r\n")
	assert.Contains(t, message, "Phone: 9876543210")
}

func TestLogMailer_Send(t *testing.T) {
	assert.NoError(t, NewLogMailer().Send(context.Background(), Email{
		Kind:   KindCustomerConfirmation,
		To:     "asha@example.com",
		Params: leadParams(),
	}))

	assert.ErrorIs(t, NewLogMailer().Send(context.Background(), Email{Kind: "unknown"}), ErrSendFailed)
}
