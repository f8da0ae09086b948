// Package providers implements the per-platform OAuth adapters for the
// supported advertising platforms. Each adapter knows its platform's
// authorization URL shape, token-exchange endpoint, refresh semantics (or
// lack thereof) and revocation endpoint, behind a common interface.
package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/liamesika/adconnect/models"
)

// Errors normalized by every adapter. Raw transport errors never escape the
// package undecorated.
var (
	// ErrConfigurationMissing means a required client id, secret or redirect
	// URI is absent for the platform. Permanent; not retried.
	ErrConfigurationMissing = errors.New("provider configuration missing")

	// ErrTokenExchangeFailed means the platform rejected the exchange or the
	// network call failed. The authorization code is single-use, so the
	// caller must restart the flow from initiate.
	ErrTokenExchangeFailed = errors.New("token exchange failed")

	// ErrRefreshUnsupported means refresh was requested for a credential that
	// has no refresh mechanism. The caller should prompt re-authorization.
	ErrRefreshUnsupported = errors.New("refresh not supported for this credential")
)

// requestTimeout bounds every call to a platform's token or revocation
// endpoint. On timeout, exchanges fail with ErrTokenExchangeFailed and
// revocations report false.
const requestTimeout = 15 * time.Second

// Provider is the capability set every platform adapter implements.
type Provider interface {
	// Platform returns the platform this adapter serves.
	Platform() models.Platform

	// BuildAuthorizationURL constructs the platform's authorization endpoint
	// URL for the given redirect URI and state token.
	BuildAuthorizationURL(redirectURI, state string) string

	// ExchangeCode trades an authorization code for a token bundle.
	ExchangeCode(ctx context.Context, code, redirectURI string) (*models.TokenBundle, error)

	// Refresh obtains a fresh token bundle. Google performs a refresh_token
	// grant; Meta re-exchanges the current access token for a new long-lived
	// one. The argument is whichever of the two the platform needs.
	Refresh(ctx context.Context, currentToken string) (*models.TokenBundle, error)

	// Revoke calls the platform's revocation endpoint. It reports true on
	// confirmed revocation and false on any failure; it never blocks the
	// caller's flow with an error.
	Revoke(ctx context.Context, accessToken string) bool
}

// Config holds the server-side OAuth client settings for one platform,
// injected at adapter construction. Endpoint fields are optional overrides
// so tests can point adapters at fixture servers; production leaves them
// empty and gets the platform defaults.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string

	AuthURL   string
	TokenURL  string
	RevokeURL string
}

// Configured reports whether all required fields are present.
func (c Config) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RedirectURI != ""
}

func (c Config) validate(platform models.Platform) error {
	if c.ClientID == "" {
		return fmt.Errorf("%w: %s client ID", ErrConfigurationMissing, platform)
	}
	if c.ClientSecret == "" {
		return fmt.Errorf("%w: %s client secret", ErrConfigurationMissing, platform)
	}
	if c.RedirectURI == "" {
		return fmt.Errorf("%w: %s redirect URI", ErrConfigurationMissing, platform)
	}
	return nil
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}
