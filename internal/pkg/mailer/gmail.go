package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"mime"
	"strings"
	"time"

	"github.com/ijalalfrz/travel-booking-service/internal/pkg/metrics"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

type GmailConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	Sender       string
}

// GmailMailer sends from the agency mailbox through the Gmail API, rendering the
// built-in templates.
type GmailMailer struct {
	service *gmail.Service
	sender  string
	metrics *metrics.Metrics
}

// NewGmailMailer authorizes with the stored refresh token. Extra client options
// override the transport, mostly for tests.
func NewGmailMailer(ctx context.Context, cfg GmailConfig, m *metrics.Metrics, opts ...option.ClientOption) (*GmailMailer, error) {
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gmail.GmailSendScope},
	}

	tokenSource := oauthConfig.TokenSource(ctx, &oauth2.Token{
		RefreshToken: cfg.RefreshToken,
		Expiry:       time.Now(),
	})

	opts = append([]option.ClientOption{option.WithTokenSource(tokenSource)}, opts...)

	service, err := gmail.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}

	return &GmailMailer{
		service: service,
		sender:  cfg.Sender,
		metrics: m,
	}, nil
}

func (g *GmailMailer) Send(ctx context.Context, email Email) (err error) {
	start := time.Now()
	defer func() {
		g.metrics.ObserveUpstream(upstreamName, "gmail_send", start, err)
	}()

	subject, body, err := render(email)
	if err != nil {
		return ErrSendFailed.WithCause(err)
	}

	raw := buildMessage(g.sender, email, subject, body)

	slog.DebugContext(ctx, "sending email via gmail", slog.String("kind", string(email.Kind)))

	_, err = g.service.Users.Messages.Send("me", &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(raw)),
	}).Context(ctx).Do()
	if err != nil {
		return ErrSendFailed.WithCause(fmt.Errorf("gmail send: %w", err))
	}

	return nil
}

func buildMessage(sender string, email Email, subject, body string) string {
	to := email.To
	if email.ToName != "" {
		to = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", email.ToName), email.To)
	}

	var b strings.Builder

	if sender != "" {
		b.WriteString("From: " + sender + "\r\n")
	}
	b.WriteString("To: " + to + "\r\n")
	if email.ReplyTo != "" {
		b.WriteString("Reply-To: " + email.ReplyTo + "\r\n")
	}
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)

	return b.String()
}
