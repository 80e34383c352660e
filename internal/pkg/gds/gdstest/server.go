// Package gdstest provides an in-process fake of the flight distribution API for tests.
package gdstest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
)

const (
	OpToken    = "token"
	OpSearch   = "search"
	OpPricing  = "pricing"
	OpOrder    = "create_order"
	OpGetOrder = "get_order"

	AccessToken = "test-access-token"
	OrderID     = "eJzTd9f3MjIwsDQ2AQALhgJN"
)

// Server answers the token, fare-search, pricing and order endpoints.
// Response funcs may be replaced before the first request to simulate failures.
type Server struct {
	*httptest.Server

	mu            sync.Mutex
	calls         map[string]int
	searchQueries []url.Values
	orderBodies   [][]byte

	TokenStatus      int
	SearchResponse   func(query url.Values) (int, string)
	PricingResponse  func(body []byte) (int, string)
	OrderResponse    func(body []byte) (int, string)
	GetOrderResponse func(orderID string) (int, string)
}

func NewServer() *Server {
	s := &Server{
		calls:       make(map[string]int),
		TokenStatus: http.StatusOK,
		SearchResponse: func(query url.Values) (int, string) {
			return http.StatusOK, SearchResponseJSON(OfferJSON("1",
				query.Get("originLocationCode"), query.Get("destinationLocationCode"), "25000.00"))
		},
		PricingResponse: func(body []byte) (int, string) {
			var req struct {
				Data struct {
					FlightOffers []json.RawMessage `json:"flightOffers"`
				} `json:"data"`
			}
			_ = json.Unmarshal(body, &req)

			offers, _ := json.Marshal(req.Data.FlightOffers)
			return http.StatusOK, fmt.Sprintf(`{"data":{"type":"flight-offers-pricing","flightOffers":%s}}`, offers)
		},
		OrderResponse: func(body []byte) (int, string) {
			var req struct {
				Data struct {
					FlightOffers []json.RawMessage `json:"flightOffers"`
					Travelers    []json.RawMessage `json:"travelers"`
				} `json:"data"`
			}
			_ = json.Unmarshal(body, &req)

			offers, _ := json.Marshal(req.Data.FlightOffers)
			travelers, _ := json.Marshal(req.Data.Travelers)
			return http.StatusCreated, fmt.Sprintf(`{"data":{"type":"flight-order","id":%q,"flightOffers":%s,"travelers":%s}}`,
				OrderID, offers, travelers)
		},
		GetOrderResponse: func(orderID string) (int, string) {
			return http.StatusOK, OrderJSON(orderID)
		},
	}

	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))

	return s
}

// Calls returns how many times the operation was requested.
func (s *Server) Calls(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calls[op]
}

// SearchQueries returns the query strings of every fare search, in order.
func (s *Server) SearchQueries() []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]url.Values(nil), s.searchQueries...)
}

// OrderBodies returns the raw bodies of every order creation request.
func (s *Server) OrderBodies() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([][]byte(nil), s.orderBodies...)
}

func (s *Server) record(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls[op]++
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	if r.URL.Path == "/v1/security/oauth2/token" {
		s.record(OpToken)

		if s.TokenStatus != http.StatusOK {
			writeJSON(w, s.TokenStatus, `{"error":"invalid_client","error_description":"Client credentials are invalid"}`)
			return
		}

		writeJSON(w, http.StatusOK, fmt.Sprintf(
			`{"type":"amadeusOAuth2Token","access_token":%q,"token_type":"Bearer","expires_in":1799,"state":"approved"}`,
			AccessToken))
		return
	}

	if r.Header.Get("Authorization") != "Bearer "+AccessToken {
		writeJSON(w, http.StatusUnauthorized, ErrorJSON(http.StatusUnauthorized, "Access token invalid"))
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/v2/shopping/flight-offers":
		s.record(OpSearch)
		s.mu.Lock()
		s.searchQueries = append(s.searchQueries, r.URL.Query())
		s.mu.Unlock()

		status, resp := s.SearchResponse(r.URL.Query())
		writeJSON(w, status, resp)
	case r.Method == http.MethodPost && r.URL.Path == "/v1/shopping/flight-offers/pricing":
		s.record(OpPricing)

		status, resp := s.PricingResponse(body)
		writeJSON(w, status, resp)
	case r.Method == http.MethodPost && r.URL.Path == "/v1/booking/flight-orders":
		s.record(OpOrder)
		s.mu.Lock()
		s.orderBodies = append(s.orderBodies, body)
		s.mu.Unlock()

		status, resp := s.OrderResponse(body)
		writeJSON(w, status, resp)
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/v1/booking/flight-orders/"):
		s.record(OpGetOrder)

		status, resp := s.GetOrderResponse(strings.TrimPrefix(r.URL.Path, "/v1/booking/flight-orders/"))
		writeJSON(w, status, resp)
	default:
		writeJSON(w, http.StatusNotFound, ErrorJSON(http.StatusNotFound, "Resource not found"))
	}
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// OfferJSON builds a one-way, single segment offer priced in INR.
func OfferJSON(id, origin, destination, total string) string {
	return fmt.Sprintf(`{
  "type": "flight-offer",
  "id": %q,
  "source": "GDS",
  "validatingAirlineCodes": ["AI"],
  "itineraries": [{
    "duration": "PT3H5M",
    "segments": [{
      "id": "1",
      "carrierCode": "AI",
      "number": "983",
      "departure": {"iataCode": %q, "at": "2030-01-15T07:10:00"},
      "arrival": {"iataCode": %q, "terminal": "1", "at": "2030-01-15T08:45:00"},
      "duration": "PT3H5M",
      "numberOfStops": 0
    }]
  }],
  "price": {"currency": "INR", "total": %q, "base": %q, "grandTotal": %q},
  "travelerPricings": [{
    "travelerId": "1",
    "fareOption": "STANDARD",
    "travelerType": "ADULT",
    "fareDetailsBySegment": [{"segmentId": "1", "cabin": "ECONOMY", "includedCheckedBags": {"weight": 25, "weightUnit": "KG"}}]
  }]
}`, id, origin, destination, total, total, total)
}

// SearchResponseJSON wraps offers in the fare-search envelope.
func SearchResponseJSON(offers ...string) string {
	return fmt.Sprintf(`{"meta":{"count":%d},"data":[%s]}`, len(offers), strings.Join(offers, ","))
}

// OrderJSON builds a retrieved order with one traveler and one offer.
func OrderJSON(orderID string) string {
	return fmt.Sprintf(`{"data":{"type":"flight-order","id":%q,"flightOffers":[%s],"travelers":[{
  "id": "1",
  "dateOfBirth": "1990-04-12",
  "name": {"firstName": "ASHA", "lastName": "RAO"},
  "gender": "FEMALE",
  "contact": {"emailAddress": "asha@example.com", "phones": [{"deviceType": "MOBILE", "countryCallingCode": "91", "number": "9876543210"}]}
}]}}`, orderID, OfferJSON("1", "BOM", "DXB", "25000.00"))
}

// ErrorJSON builds a GDS error envelope.
func ErrorJSON(status int, detail string) string {
	return fmt.Sprintf(`{"errors":[{"status":%d,"code":%d,"title":"ERROR","detail":%q}]}`, status, status*10, detail)
}
