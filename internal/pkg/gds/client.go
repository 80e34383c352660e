package gds

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/metrics"
)

const (
	upstreamName = "gds"

	searchPath  = "/v2/shopping/flight-offers"
	pricingPath = "/v1/shopping/flight-offers/pricing"
	ordersPath  = "/v1/booking/flight-orders"
)

// Config for the GDS client
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	TokenCache   bool
	Currency     string
	ResultCap    int
	Timeout      time.Duration
	RateLimitRPS int
	Limiter      RateLimiter
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// Client talks to the flight distribution API: fare search, price confirmation,
// order creation and order retrieval. Every operation takes the bearer token
// explicitly so callers decide when to authenticate.
type Client struct {
	baseURL      string
	currency     string
	resultCap    int
	httpClient   *http.Client
	auth         *Authenticator
	limiter      RateLimiter
	rateLimitRPS int
	metrics      *metrics.Metrics
}

func NewClient(cfg Config, m *metrics.Metrics) *Client {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		currency:     cfg.Currency,
		resultCap:    cfg.ResultCap,
		httpClient:   httpClient,
		auth:         NewAuthenticator(cfg, httpClient, m),
		limiter:      cfg.Limiter,
		rateLimitRPS: cfg.RateLimitRPS,
		metrics:      m,
	}
}

// Authenticate performs the client-credentials exchange and returns a bearer token.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	return c.auth.Token(ctx)
}

// SearchOffers runs one fare search for a single origin/destination pair.
func (c *Client) SearchOffers(ctx context.Context, token string, query SearchQuery) ([]FlightOffer, error) {
	params := url.Values{}
	params.Set("originLocationCode", query.Origin)
	params.Set("destinationLocationCode", query.Destination)
	params.Set("departureDate", query.DepartureDate)
	if query.ReturnDate != "" {
		params.Set("returnDate", query.ReturnDate)
	}
	params.Set("adults", strconv.Itoa(query.Adults))
	if query.TravelClass != "" {
		params.Set("travelClass", query.TravelClass)
	}
	params.Set("nonStop", strconv.FormatBool(query.NonStop))
	if c.currency != "" {
		params.Set("currencyCode", c.currency)
	}
	if c.resultCap > 0 {
		params.Set("max", strconv.Itoa(c.resultCap))
	}

	var resp searchResponse
	if err := c.do(ctx, "search", http.MethodGet, searchPath+"?"+params.Encode(), token, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// ConfirmPrice re-prices the offer and returns the confirmed version of it.
func (c *Client) ConfirmPrice(ctx context.Context, token string, offer FlightOffer) (FlightOffer, error) {
	body := pricingRequest{Data: pricingRequestData{
		Type:         "flight-offers-pricing",
		FlightOffers: []FlightOffer{offer},
	}}

	var resp pricingResponse
	if err := c.do(ctx, "pricing", http.MethodPost, pricingPath, token, body, &resp); err != nil {
		return FlightOffer{}, err
	}

	if len(resp.Data.FlightOffers) == 0 {
		return FlightOffer{}, errors.New("gds pricing: response contains no flight offer")
	}

	return resp.Data.FlightOffers[0], nil
}

// CreateOrder books the offer for the travelers.
func (c *Client) CreateOrder(ctx context.Context, token string, offer FlightOffer, travelers []Traveler) (FlightOrder, error) {
	body := orderRequest{Data: orderRequestData{
		Type:         "flight-order",
		FlightOffers: []FlightOffer{offer},
		Travelers:    travelers,
	}}

	var resp orderResponse
	if err := c.do(ctx, "create_order", http.MethodPost, ordersPath, token, body, &resp); err != nil {
		return FlightOrder{}, err
	}

	if resp.Data.ID == "" {
		return FlightOrder{}, errors.New("gds create order: response contains no order id")
	}

	return resp.Data, nil
}

// GetOrder retrieves a previously created order.
func (c *Client) GetOrder(ctx context.Context, token string, orderID string) (FlightOrder, error) {
	var resp orderResponse
	if err := c.do(ctx, "get_order", http.MethodGet, ordersPath+"/"+url.PathEscape(orderID), token, nil, &resp); err != nil {
		return FlightOrder{}, err
	}

	return resp.Data, nil
}

func (c *Client) do(ctx context.Context, operation, method, path, token string, body, out any) (err error) {
	start := time.Now()
	defer func() {
		c.metrics.ObserveUpstream(upstreamName, operation, start, err)
	}()

	if err := c.allow(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gds %s: encode request: %w", operation, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("gds %s: build request: %w", operation, err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	slog.DebugContext(ctx, "calling gds", slog.String("operation", operation), slog.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gds %s: %w", operation, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("gds %s: read response: %w", operation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Operation: operation, StatusCode: resp.StatusCode}

		var errResp errorResponse
		if json.Unmarshal(respBody, &errResp) == nil {
			apiErr.Errors = errResp.Errors
		}

		return apiErr
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("gds %s: decode response: %w", operation, err)
	}

	return nil
}

func (c *Client) allow(ctx context.Context) error {
	if c.limiter == nil || c.rateLimitRPS <= 0 {
		return nil
	}

	res, err := c.limiter.Allow(ctx, "limit:"+upstreamName, redis_rate.PerSecond(c.rateLimitRPS))
	if err != nil {
		return fmt.Errorf("failed to rate limit: %w", err)
	}

	if res.Allowed == 0 {
		return ErrRateLimitExceeded
	}

	return nil
}
