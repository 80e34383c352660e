package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/exception"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/mailer"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/metrics"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/utils"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/whatsapp"
)

const (
	notSpecified = "Not specified"

	tripPlanSubmitted = "Trip request submitted successfully! We'll get back to you soon."
)

type TripConfig struct {
	TeamEmail     string
	WhatsAppPhone string
}

// TripService forwards trip-planning leads to the sales team by email and hands
// back a WhatsApp link for a follow-up chat.
type TripService struct {
	Mailer  Mailer
	Config  TripConfig
	Metrics *metrics.Metrics
}

func NewTripService(m Mailer, cfg TripConfig, mtr *metrics.Metrics) *TripService {
	return &TripService{
		Mailer:  m,
		Config:  cfg,
		Metrics: mtr,
	}
}

// PlanTrip godoc
// @Summary      Submit a trip-planning request
// @Tags         Trips
// @Param        request  body      dto.TripPlanRequest  true  "Lead"
// @Success      200      {object}  dto.TripPlanResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Router       /api/v1/trips/plan [post]
func (s *TripService) PlanTrip(ctx context.Context, req dto.TripPlanRequest) (dto.TripPlanResponse, error) {
	params := leadParams(req)

	emails := []mailer.Email{
		{
			Kind:    mailer.KindTeamNotification,
			To:      s.Config.TeamEmail,
			ReplyTo: req.Email,
			Params:  params,
		},
		{
			Kind:   mailer.KindCustomerConfirmation,
			To:     req.Email,
			ToName: req.Name,
			Params: params,
		},
	}

	for _, email := range emails {
		if err := s.Mailer.Send(ctx, email); err != nil {
			slog.ErrorContext(ctx, "failed to send trip planning email",
				slog.String("kind", string(email.Kind)),
				slog.Any("error", err),
			)

			var appErr exception.ApplicationError
			if errors.As(err, &appErr) {
				return dto.TripPlanResponse{}, err
			}

			return dto.TripPlanResponse{}, mailer.ErrSendFailed.WithCause(err)
		}
	}

	s.Metrics.IncLeadsSubmitted()

	return dto.TripPlanResponse{
		Message:     tripPlanSubmitted,
		WhatsAppURL: whatsapp.DeepLink(s.Config.WhatsAppPhone, whatsAppMessage(req)),
	}, nil
}

func travelersLabel(req dto.TripPlanRequest) string {
	adults, children := 0, 0
	if req.Adults != nil {
		adults = *req.Adults
	}

	if req.Children != nil {
		children = *req.Children
	}

	if adults == 0 && children == 0 {
		return ""
	}

	label := fmt.Sprintf("%d Adults", adults)
	if children > 0 {
		label += fmt.Sprintf(", %d Children", children)
	}

	return label
}

func budgetLabel(req dto.TripPlanRequest) string {
	if req.Budget == nil || *req.Budget == 0 {
		return ""
	}

	return utils.FormatRupee(*req.Budget)
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func leadParams(req dto.TripPlanRequest) map[string]string {
	adults, children := 0, 0
	if req.Adults != nil {
		adults = *req.Adults
	}

	if req.Children != nil {
		children = *req.Children
	}

	return map[string]string{
		"from_name":    req.Name,
		"from_email":   req.Email,
		"phone":        req.Phone,
		"destination":  orDefault(req.Destination, notSpecified),
		"travel_dates": orDefault(req.TravelDates, notSpecified),
		"adults":       strconv.Itoa(adults),
		"children":     strconv.Itoa(children),
		"travelers":    orDefault(travelersLabel(req), notSpecified),
		"budget":       orDefault(budgetLabel(req), notSpecified),
		"trip_type":    orDefault(req.TripType, notSpecified),
		"requirements": orDefault(strings.Join(req.Requirements, ", "), "None"),
		"notes":        orDefault(req.Notes, "None"),
	}
}

func whatsAppMessage(req dto.TripPlanRequest) string {
	return whatsapp.NewMessage("New Trip Planning Request").
		Field("Name", req.Name).
		Field("Email", req.Email).
		Field("Phone", req.Phone).
		Field("Destination", req.Destination).
		Field("Travel Dates", req.TravelDates).
		Field("Travelers", travelersLabel(req)).
		Field("Budget", budgetLabel(req)).
		Field("Trip Type", req.TripType).
		Field("Requirements", strings.Join(req.Requirements, ", ")).
		Field("Additional Notes", req.Notes).
		String()
}
