package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/flight"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/gds"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/logger"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/metrics"
)

const myBookingsPath = "/my-bookings"

type CheckoutConfig struct {
	SelectionTTL  time.Duration
	RedirectDelay time.Duration
	CountryCode   string
	LockTimeout   time.Duration
}

// CheckoutService turns a selected offer into a GDS order:
// awaiting-context, collecting-traveler-details, validating, confirming-price,
// creating-order, then booked or failed.
type CheckoutService struct {
	Gateway    FlightGateway
	Selections SelectionStore
	Bookings   BookingStore
	Config     CheckoutConfig
	Metrics    *metrics.Metrics

	newID func() string
	now   func() time.Time
}

func NewCheckoutService(
	gateway FlightGateway,
	selections SelectionStore,
	bookings BookingStore,
	cfg CheckoutConfig,
	m *metrics.Metrics,
) *CheckoutService {
	if cfg.LockTimeout == 0 {
		cfg.LockTimeout = 2 * time.Minute
	}

	return &CheckoutService{
		Gateway:    gateway,
		Selections: selections,
		Bookings:   bookings,
		Config:     cfg,
		Metrics:    m,
		newID:      uuid.NewString,
		now:        time.Now,
	}
}

// CreateSelection godoc
// @Summary      Hand a selected offer to checkout
// @Tags         Checkout
// @Param        request  body      dto.CheckoutSelectionRequest  true  "Selected offer"
// @Success      201      {object}  dto.CheckoutSelectionResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/v1/checkout/selections [post]
func (s *CheckoutService) CreateSelection(
	ctx context.Context,
	req dto.CheckoutSelectionRequest,
) (dto.CheckoutSelectionResponse, error) {
	selection := dto.CheckoutSelection{
		ID:        s.newID(),
		Offer:     req.Offer,
		FareClass: req.FareClass,
		Adults:    req.Adults,
		TripType:  req.TripType,
		CreatedAt: s.now().UTC(),
	}

	if err := s.Selections.SaveSelection(ctx, selection, s.Config.SelectionTTL); err != nil {
		return dto.CheckoutSelectionResponse{}, ErrCheckoutUnavailable.WithCause(err)
	}

	slog.DebugContext(ctx, "checkout selection saved", slog.String("selection_id", selection.ID))

	return s.toSelectionResponse(selection), nil
}

// GetSelection godoc
// @Summary      Load checkout context
// @Tags         Checkout
// @Param        selectionID  path      string  true  "Selection ID"
// @Success      200          {object}  dto.CheckoutSelectionResponse
// @Failure      404          {object}  dto.ErrorResponse
// @Router       /api/v1/checkout/selections/{selectionID} [get]
func (s *CheckoutService) GetSelection(
	ctx context.Context,
	req dto.CheckoutSelectionLookup,
) (dto.CheckoutSelectionResponse, error) {
	selection, err := s.loadSelection(ctx, req.SelectionID)
	if err != nil {
		return dto.CheckoutSelectionResponse{}, err
	}

	return s.toSelectionResponse(selection), nil
}

// Book godoc
// @Summary      Book the selected offer
// @Tags         Checkout
// @Param        selectionID  path      string              true  "Selection ID"
// @Param        request      body      dto.BookingRequest  true  "Travelers"
// @Success      201          {object}  dto.BookingResponse
// @Failure      404          {object}  dto.ErrorResponse
// @Failure      409          {object}  dto.ErrorResponse
// @Failure      422          {object}  dto.ErrorResponse
// @Failure      502          {object}  dto.ErrorResponse
// @Router       /api/v1/checkout/selections/{selectionID}/bookings [post]
func (s *CheckoutService) Book(ctx context.Context, req dto.BookingRequest) (dto.BookingResponse, error) {
	state := dto.StateAwaitingContext

	selection, err := s.loadSelection(ctx, req.SelectionID)
	if err != nil {
		return dto.BookingResponse{}, s.fail(ctx, state, err)
	}

	state = s.transition(ctx, selection.ID, state, dto.StateCollectingTravelerDetails)
	state = s.transition(ctx, selection.ID, state, dto.StateValidating)

	if problems := travelerProblems(req.Travelers, selection.Adults); len(problems) > 0 {
		return dto.BookingResponse{}, s.fail(ctx, state, ErrInvalidTravelerDetails.WithDetails(problems))
	}

	locked, err := s.Selections.AcquireLock(ctx, selection.ID, s.Config.LockTimeout)
	if err != nil {
		return dto.BookingResponse{}, s.fail(ctx, state, ErrCheckoutUnavailable.WithCause(err))
	}

	if !locked {
		return dto.BookingResponse{}, s.fail(ctx, state, ErrBookingInProgress)
	}

	defer func() {
		if err := s.Selections.ReleaseLock(context.WithoutCancel(ctx), selection.ID); err != nil {
			slog.WarnContext(ctx, "failed to release checkout lock",
				slog.String("selection_id", selection.ID),
				slog.Any("error", err),
			)
		}
	}()

	state = s.transition(ctx, selection.ID, state, dto.StateConfirmingPrice)

	token, err := s.Gateway.Authenticate(ctx)
	if err != nil {
		if !errors.Is(err, gds.ErrAuthFailed) {
			err = gds.ErrAuthFailed.WithCause(err)
		}

		return dto.BookingResponse{}, s.fail(ctx, state, err)
	}

	confirmed, err := s.Gateway.ConfirmPrice(ctx, token, selection.Offer)
	if err != nil {
		return dto.BookingResponse{}, s.fail(ctx, state, ErrPriceConfirmationFailed.WithCause(err))
	}

	state = s.transition(ctx, selection.ID, state, dto.StateCreatingOrder)

	order, err := s.Gateway.CreateOrder(ctx, token, confirmed, s.toGDSTravelers(req.Travelers))
	if err != nil {
		return dto.BookingResponse{}, s.fail(ctx, state, ErrOrderCreationFailed.WithCause(err))
	}

	ctx = logger.WithBookingID(ctx, order.ID)
	s.transition(ctx, selection.ID, state, dto.StateBooked)
	s.Metrics.IncBookingsCreated()

	email := req.Travelers[0].Email
	record := dto.BookingRecord{BookingID: order.ID, Email: email}

	// the order exists upstream whatever happens here; failing the request would
	// only invite a resubmission and a second order
	if err := s.Bookings.Append(ctx, record); err != nil {
		slog.ErrorContext(ctx, "failed to store booking record", slog.Any("error", err))
	}

	return dto.BookingResponse{
		BookingID: order.ID,
		State:     dto.StateBooked,
		Email:     email,
		Message: fmt.Sprintf(
			`Your booking is confirmed! Booking ID: %s. View all your bookings in the "My Bookings" section.`, order.ID),
		RedirectTo:      myBookingsPath,
		RedirectAfterMs: s.Config.RedirectDelay.Milliseconds(),
	}, nil
}

func (s *CheckoutService) loadSelection(ctx context.Context, id string) (dto.CheckoutSelection, error) {
	if id == "" {
		return dto.CheckoutSelection{}, s.noFlightData()
	}

	selection, err := s.Selections.GetSelection(ctx, id)
	if errors.Is(err, flight.ErrSelectionNotFound) {
		return dto.CheckoutSelection{}, s.noFlightData()
	}

	if err != nil {
		return dto.CheckoutSelection{}, ErrCheckoutUnavailable.WithCause(err)
	}

	if len(selection.Offer.Itineraries) == 0 || len(selection.Offer.Itineraries[0].Segments) == 0 {
		return dto.CheckoutSelection{}, dto.ErrInvalidFlightData
	}

	return selection, nil
}

func (s *CheckoutService) noFlightData() error {
	err := ErrNoFlightData
	err.RedirectAfter = s.Config.RedirectDelay

	return err
}

func (s *CheckoutService) transition(ctx context.Context, selectionID string, from, to dto.CheckoutState) dto.CheckoutState {
	slog.InfoContext(ctx, "checkout state changed",
		slog.String("selection_id", selectionID),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
	)

	return to
}

func (s *CheckoutService) fail(ctx context.Context, state dto.CheckoutState, err error) error {
	slog.WarnContext(ctx, "checkout failed",
		slog.String("state", string(state)),
		slog.String("to", string(dto.StateFailed)),
		slog.Any("error", err),
	)
	s.Metrics.IncCheckoutFailure(string(state))

	return err
}

func (s *CheckoutService) toGDSTravelers(travelers []dto.Traveler) []gds.Traveler {
	result := make([]gds.Traveler, len(travelers))
	for i, t := range travelers {
		result[i] = t.ToGDS(strconv.Itoa(i+1), s.Config.CountryCode)
	}

	return result
}

func (s *CheckoutService) toSelectionResponse(selection dto.CheckoutSelection) dto.CheckoutSelectionResponse {
	offer := toFareOffer(selection.Offer, 0, selection.FareClass, selection.Adults)

	return dto.CheckoutSelectionResponse{
		SelectionID:  selection.ID,
		State:        dto.StateCollectingTravelerDetails,
		FareClass:    selection.FareClass,
		Adults:       selection.Adults,
		TripType:     selection.TripType,
		Offer:        offer,
		PriceSummary: toFareOption(selection.Offer.TotalPrice(), offerCurrency(selection.Offer), selection.FareClass, selection.Adults),
		Travelers:    dto.NewTravelerTemplates(selection.Adults, s.Config.CountryCode),
		ExpiresAt:    selection.CreatedAt.Add(s.Config.SelectionTTL),
	}
}

// travelerProblems lists every problem of every traveler, numbered from 1.
func travelerProblems(travelers []dto.Traveler, adults int) []string {
	var problems []string

	if len(travelers) != adults {
		problems = append(problems, fmt.Sprintf("Details are required for %d travelers, got %d", adults, len(travelers)))
	}

	for i, t := range travelers {
		problems = append(problems, t.Problems(i+1)...)
	}

	return problems
}
