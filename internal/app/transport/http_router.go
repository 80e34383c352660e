package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/ijalalfrz/travel-booking-service/internal/app/config"
	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/app/endpoints"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/metrics"
	httptransport "github.com/ijalalfrz/travel-booking-service/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
	m *metrics.Metrics,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()
	router.Use(m.Middleware())

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	if m != nil {
		router.Method(http.MethodGet, "/metrics", m.Handler())
	}

	// the visa lookup is called cross-origin from any page, so it gets its own CORS policy
	router.Route("/api/v1/visa", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.PublicCORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Get("/countries", httptransport.MakeHandlerFunc(
			endpts.VisaEndpoint.ListCountries,
			kithttp.NopRequestDecoder,
			httptransport.ResponseWithBody,
		))

		router.Post("/check", httptransport.MakeHandlerFunc(
			endpts.VisaEndpoint.CheckRequirement,
			httptransport.DecodeRequest[dto.VisaCheckRequest],
			httptransport.ResponseWithBody,
		))
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(cfg.HTTP.CORSAllowedOrigins),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Get("/airports", httptransport.MakeHandlerFunc(
			endpts.AirportEndpoint.SearchAirports,
			httptransport.DecodeParams[dto.AirportSearchRequest],
			httptransport.ResponseWithBody,
		))

		router.Route("/flights", func(router chi.Router) {
			router.Post("/search", httptransport.MakeHandlerFunc(
				endpts.FlightEndpoint.SearchFlights,
				httptransport.DecodeRequest[dto.SearchCriteria],
				httptransport.ResponseWithBody,
			))

			router.Post("/fare-quote", httptransport.MakeHandlerFunc(
				endpts.FlightEndpoint.QuoteFare,
				httptransport.DecodeRequest[dto.FareQuoteRequest],
				httptransport.ResponseWithBody,
			))
		})

		router.Route("/checkout/selections", func(router chi.Router) {
			router.Post("/", httptransport.MakeHandlerFunc(
				endpts.CheckoutEndpoint.CreateSelection,
				httptransport.DecodeRequest[dto.CheckoutSelectionRequest],
				httptransport.CreatedResponseWithBody,
			))

			router.Get("/{selectionID}", httptransport.MakeHandlerFunc(
				endpts.CheckoutEndpoint.GetSelection,
				httptransport.DecodeParams[dto.CheckoutSelectionLookup],
				httptransport.ResponseWithBody,
			))

			router.Post("/{selectionID}/bookings", httptransport.MakeHandlerFunc(
				endpts.CheckoutEndpoint.Book,
				httptransport.DecodeRequest[dto.BookingRequest],
				httptransport.CreatedResponseWithBody,
			))
		})

		router.Route("/bookings", func(router chi.Router) {
			router.Get("/", httptransport.MakeHandlerFunc(
				endpts.BookingEndpoint.ListBookings,
				kithttp.NopRequestDecoder,
				httptransport.ResponseWithBody,
			))

			router.Get("/{bookingID}", httptransport.MakeHandlerFunc(
				endpts.BookingEndpoint.GetBooking,
				httptransport.DecodeParams[dto.BookingLookup],
				httptransport.ResponseWithBody,
			))
		})

		router.Post("/trips/plan", httptransport.MakeHandlerFunc(
			endpts.TripEndpoint.PlanTrip,
			httptransport.DecodeRequest[dto.TripPlanRequest],
			httptransport.ResponseWithBody,
		))
	})

	return router
}
