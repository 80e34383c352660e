package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ijalalfrz/travel-booking-service/internal/pkg/metrics"
)

type EmailJSConfig struct {
	APIURL             string
	ServiceID          string
	PublicKey          string
	AccessToken        string
	TeamTemplateID     string
	CustomerTemplateID string
	Timeout            time.Duration
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// EmailJSMailer sends through the EmailJS REST API. Templates live in the EmailJS
// dashboard; this driver only picks the template id for the email kind.
type EmailJSMailer struct {
	cfg        EmailJSConfig
	httpClient *http.Client
	metrics    *metrics.Metrics
}

func NewEmailJSMailer(cfg EmailJSConfig, m *metrics.Metrics) *EmailJSMailer {
	return &EmailJSMailer{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		metrics:    m,
	}
}

func (e *EmailJSMailer) Send(ctx context.Context, email Email) (err error) {
	start := time.Now()
	defer func() {
		e.metrics.ObserveUpstream(upstreamName, "emailjs_send", start, err)
	}()

	templateID, err := e.templateID(email.Kind)
	if err != nil {
		return ErrSendFailed.WithCause(err)
	}

	params := make(map[string]string, len(email.Params)+2)
	for k, v := range email.Params {
		params[k] = v
	}
	params["to_email"] = email.To
	if email.ToName != "" {
		params["to_name"] = email.ToName
	}
	if email.ReplyTo != "" {
		params["reply_to"] = email.ReplyTo
	}

	payload, err := json.Marshal(emailJSRequest{
		ServiceID:      e.cfg.ServiceID,
		TemplateID:     templateID,
		UserID:         e.cfg.PublicKey,
		AccessToken:    e.cfg.AccessToken,
		TemplateParams: params,
	})
	if err != nil {
		return ErrSendFailed.WithCause(fmt.Errorf("encode emailjs request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.APIURL, bytes.NewReader(payload))
	if err != nil {
		return ErrSendFailed.WithCause(err)
	}
	req.Header.Set("Content-Type", "application/json")

	slog.DebugContext(ctx, "sending email via emailjs",
		slog.String("kind", string(email.Kind)),
		slog.String("template_id", templateID),
	)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return ErrSendFailed.WithCause(fmt.Errorf("emailjs send: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return ErrSendFailed.WithCause(fmt.Errorf("emailjs send: status %d: %s", resp.StatusCode, body))
	}

	return nil
}

func (e *EmailJSMailer) templateID(kind Kind) (string, error) {
	var id string

	switch kind {
	case KindTeamNotification:
		id = e.cfg.TeamTemplateID
	case KindCustomerConfirmation:
		id = e.cfg.CustomerTemplateID
	}

	if id == "" {
		return "", fmt.Errorf("no emailjs template configured for %q", kind)
	}

	return id, nil
}
