package gds

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ijalalfrz/travel-booking-service/internal/pkg/metrics"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const tokenPath = "/v1/security/oauth2/token"

// Authenticator acquires bearer tokens with the client-credentials grant.
//
// Without caching every call performs a fresh token exchange, so each call path
// (a search, a checkout, a booking lookup) authenticates on its own. With caching the
// token is reused until shortly before it expires.
type Authenticator struct {
	config     *clientcredentials.Config
	httpClient *http.Client
	cached     oauth2.TokenSource
	metrics    *metrics.Metrics
}

func NewAuthenticator(cfg Config, httpClient *http.Client, m *metrics.Metrics) *Authenticator {
	ccConfig := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     strings.TrimRight(cfg.BaseURL, "/") + tokenPath,
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	auth := &Authenticator{
		config:     ccConfig,
		httpClient: httpClient,
		metrics:    m,
	}

	if cfg.TokenCache {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		auth.cached = ccConfig.TokenSource(ctx)
	}

	return auth
}

// Token returns a bearer token for the GDS.
func (a *Authenticator) Token(ctx context.Context) (string, error) {
	start := time.Now()

	var (
		tok *oauth2.Token
		err error
	)

	if a.cached != nil {
		tok, err = a.cached.Token()
	} else {
		tok, err = a.config.Token(context.WithValue(ctx, oauth2.HTTPClient, a.httpClient))
	}

	a.metrics.ObserveUpstream(upstreamName, "token", start, err)

	if err != nil {
		slog.WarnContext(ctx, "gds token exchange failed", slog.Any("error", err))
		return "", ErrAuthFailed.WithCause(fmt.Errorf("token exchange: %w", err))
	}

	return tok.AccessToken, nil
}
