//go:build unit

package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/mailer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTripService_PlanTrip(t *testing.T) {
	cfg := TripConfig{
		TeamEmail:     "sales@example.com",
		WhatsAppPhone: "+91 98566 64440",
	}

	adults, children := 2, 1
	budget := int64(150000)

	req := dto.TripPlanRequest{
		Name:         "Asha Rao",
		Email:        "asha@example.com",
		Phone:        "9876543210",
		Destination:  "Bali",
		TravelDates:  "March 2031",
		Adults:       &adults,
		Children:     &children,
		Budget:       &budget,
		TripType:     "Honeymoon",
		Requirements: []string{"Flights", "Hotel"},
	}

	wantParams := map[string]string{
		"from_name":    "Asha Rao",
		"from_email":   "asha@example.com",
		"phone":        "9876543210",
		"destination":  "Bali",
		"travel_dates": "March 2031",
		"adults":       "2",
		"children":     "1",
		"travelers":    "2 Adults, 1 Children",
		"budget":       "₹1,50,000",
		"trip_type":    "Honeymoon",
		"requirements": "Flights, Hotel",
		"notes":        "None",
	}

	t.Run("sends_both_emails_and_returns_link", func(t *testing.T) {
		m := NewMockMailer(t)

		team := m.On("Send", mock.Anything, mailer.Email{
			Kind:    mailer.KindTeamNotification,
			To:      "sales@example.com",
			ReplyTo: "asha@example.com",
			Params:  wantParams,
		}).Return(nil).Once()

		m.On("Send", mock.Anything, mailer.Email{
			Kind:   mailer.KindCustomerConfirmation,
			To:     "asha@example.com",
			ToName: "Asha Rao",
			Params: wantParams,
		}).Return(nil).Once().NotBefore(team)

		got, err := NewTripService(m, cfg, nil).PlanTrip(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "Trip request submitted successfully! We'll get back to you soon.", got.Message)
		require.True(t, strings.HasPrefix(got.WhatsAppURL, "https://wa.me/919856664440?text="))

		link, err := url.Parse(got.WhatsAppURL)
		require.NoError(t, err)

		want := "*New Trip Planning Request*\n\n" +
			"*Name:* Asha Rao\n" +
			"*Email:* asha@example.com\n" +
			"*Phone:* 9876543210\n" +
			"*Destination:* Bali\n" +
			"*Travel Dates:* March 2031\n" +
			"*Travelers:* 2 Adults, 1 Children\n" +
			"*Budget:* ₹1,50,000\n" +
			"*Trip Type:* Honeymoon\n" +
			"*Requirements:* Flights, Hotel\n"

		if diff := cmp.Diff(want, link.Query().Get("text")); diff != "" {
			t.Fatalf("whatsapp message mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("minimal_lead_uses_defaults", func(t *testing.T) {
		m := NewMockMailer(t)
		m.On("Send", mock.Anything, mock.MatchedBy(func(e mailer.Email) bool {
			return e.Params["destination"] == "Not specified" &&
				e.Params["travelers"] == "Not specified" &&
				e.Params["budget"] == "Not specified" &&
				e.Params["requirements"] == "None"
		})).Return(nil).Twice()

		_, err := NewTripService(m, cfg, nil).PlanTrip(context.Background(), dto.TripPlanRequest{
			Name:  "Ravi",
			Email: "ravi@example.com",
			Phone: "9876543210",
		})

		require.NoError(t, err)
	})

	t.Run("team_email_failure_stops", func(t *testing.T) {
		m := NewMockMailer(t)
		m.On("Send", mock.Anything, mock.MatchedBy(func(e mailer.Email) bool {
			return e.Kind == mailer.KindTeamNotification
		})).Return(errors.New("status 400")).Once()

		got, err := NewTripService(m, cfg, nil).PlanTrip(context.Background(), req)

		assert.ErrorIs(t, err, mailer.ErrSendFailed)
		assert.Empty(t, got.WhatsAppURL)
	})

	t.Run("customer_email_failure", func(t *testing.T) {
		m := NewMockMailer(t)
		m.On("Send", mock.Anything, mock.MatchedBy(func(e mailer.Email) bool {
			return e.Kind == mailer.KindTeamNotification
		})).Return(nil).Once()
		m.On("Send", mock.Anything, mock.MatchedBy(func(e mailer.Email) bool {
			return e.Kind == mailer.KindCustomerConfirmation
		})).Return(mailer.ErrSendFailed).Once()

		got, err := NewTripService(m, cfg, nil).PlanTrip(context.Background(), req)

		assert.ErrorIs(t, err, mailer.ErrSendFailed)
		assert.Empty(t, got.WhatsAppURL)
	})
}
