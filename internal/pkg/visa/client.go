package visa

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/ijalalfrz/travel-booking-service/internal/pkg/metrics"
)

const upstreamName = "visa"

type Config struct {
	APIURL  string
	APIHost string
	APIKey  string
	Timeout time.Duration
}

// Requirement is the provider's answer for one passport/destination pair.
type Requirement struct {
	PassportOf   string `json:"passport_of"`
	PassportCode string `json:"passport_code"`
	Destination  string `json:"destination"`
	Continent    string `json:"continent"`
	Capital      string `json:"capital"`
	Currency     string `json:"currency"`
	PassValid    string `json:"pass_valid"`
	PhoneCode    string `json:"phone_code"`
	Timezone     string `json:"timezone"`
	ExceptText   string `json:"except_text"`
	Visa         string `json:"visa"`
	Color        string `json:"color"`
	StayOf       string `json:"stay_of"`
	Link         string `json:"link"`
	Embassy      string `json:"embassy"`
	Error        bool   `json:"error"`
}

// Client proxies visa-rule lookups to the RapidAPI visa-requirement provider.
type Client struct {
	cfg        Config
	httpClient *http.Client
	metrics    *metrics.Metrics
}

func NewClient(cfg Config, m *metrics.Metrics) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		metrics:    m,
	}
}

// Check looks up the rules for travelling to destination on a passport issued by passport.
func (c *Client) Check(ctx context.Context, passport, destination string) (req Requirement, err error) {
	if c.cfg.APIKey == "" {
		slog.ErrorContext(ctx, "visa provider api key is not configured")
		return Requirement{}, ErrMissingAPIKey
	}

	start := time.Now()
	defer func() {
		c.metrics.ObserveUpstream(upstreamName, "check", start, err)
	}()

	body, contentType, err := formBody(passport, destination)
	if err != nil {
		return Requirement{}, ErrInternal.WithCause(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, body)
	if err != nil {
		return Requirement{}, ErrInternal.WithCause(err)
	}

	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("X-RapidAPI-Key", c.cfg.APIKey)
	httpReq.Header.Set("X-RapidAPI-Host", c.cfg.APIHost)

	slog.DebugContext(ctx, "checking visa requirement",
		slog.String("passport", passport),
		slog.String("destination", destination),
	)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Requirement{}, ErrInternal.WithCause(fmt.Errorf("visa check: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.WarnContext(ctx, "visa provider returned an error", slog.Int("status", resp.StatusCode))

		appErr := ErrRequirementsUnavailable.WithCause(fmt.Errorf("visa check: status %d", resp.StatusCode))
		appErr.StatusCode = resp.StatusCode

		return Requirement{}, appErr
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Requirement{}, ErrInternal.WithCause(fmt.Errorf("visa check: read response: %w", err))
	}

	if err := json.Unmarshal(raw, &req); err != nil {
		return Requirement{}, ErrInternal.WithCause(fmt.Errorf("visa check: decode response: %w", err))
	}

	if req.Error {
		return Requirement{}, ErrRequirementsUnavailable.WithCause(errors.New("visa check: provider flagged the lookup as failed"))
	}

	return req, nil
}

func formBody(passport, destination string) (io.Reader, string, error) {
	var buf bytes.Buffer

	w := multipart.NewWriter(&buf)
	if err := w.WriteField("passport", passport); err != nil {
		return nil, "", err
	}

	if err := w.WriteField("destination", destination); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}
