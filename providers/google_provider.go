package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/liamesika/adconnect/models"
)

const googleRevokeURL = "https://oauth2.googleapis.com/revoke"

// GoogleAdsScope is the single scope required for Google Ads API access.
// Google joins scopes with spaces.
const GoogleAdsScope = "https://www.googleapis.com/auth/adwords"

// GoogleProvider implements the Provider interface for Google Ads. Google
// issues a refresh token on first consent; the authorization URL always asks
// for offline access and forces the consent screen so a refresh token is
// issued on every consent.
type GoogleProvider struct {
	config   Config
	endpoint oauth2.Endpoint
	client   *http.Client
}

// NewGoogleProvider creates a Google adapter, failing fast when required
// configuration is absent.
func NewGoogleProvider(cfg Config) (*GoogleProvider, error) {
	if err := cfg.validate(models.PlatformGoogle); err != nil {
		return nil, err
	}

	endpoint := google.Endpoint
	if cfg.AuthURL != "" {
		endpoint.AuthURL = cfg.AuthURL
	}
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}
	if cfg.RevokeURL == "" {
		cfg.RevokeURL = googleRevokeURL
	}

	return &GoogleProvider{config: cfg, endpoint: endpoint, client: newHTTPClient()}, nil
}

// Platform returns the platform this adapter serves.
func (p *GoogleProvider) Platform() models.Platform {
	return models.PlatformGoogle
}

// oauthConfig builds the oauth2 client config for a given redirect URI. An
// empty redirectURI falls back to the configured default.
func (p *GoogleProvider) oauthConfig(redirectURI string) *oauth2.Config {
	if redirectURI == "" {
		redirectURI = p.config.RedirectURI
	}
	return &oauth2.Config{
		ClientID:     p.config.ClientID,
		ClientSecret: p.config.ClientSecret,
		RedirectURL:  redirectURI,
		Endpoint:     p.endpoint,
		Scopes:       []string{GoogleAdsScope},
	}
}

// BuildAuthorizationURL constructs the Google consent URL with offline access
// and a forced consent prompt.
func (p *GoogleProvider) BuildAuthorizationURL(redirectURI, state string) string {
	return p.oauthConfig(redirectURI).AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// ExchangeCode trades an authorization code for a token bundle.
func (p *GoogleProvider) ExchangeCode(ctx context.Context, code, redirectURI string) (*models.TokenBundle, error) {
	tok, err := p.oauthConfig(redirectURI).Exchange(p.httpContext(ctx), code)
	if err != nil {
		return nil, normalizeOAuth2Error(err)
	}
	return p.bundleFromToken(tok), nil
}

// Refresh performs a standard refresh_token grant.
func (p *GoogleProvider) Refresh(ctx context.Context, refreshToken string) (*models.TokenBundle, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("%w: no refresh token stored for google", ErrRefreshUnsupported)
	}

	source := p.oauthConfig("").TokenSource(
		p.httpContext(ctx),
		&oauth2.Token{RefreshToken: refreshToken},
	)
	tok, err := source.Token()
	if err != nil {
		return nil, normalizeOAuth2Error(err)
	}
	return p.bundleFromToken(tok), nil
}

// Revoke posts the token to Google's revocation endpoint. Google answers 200
// on success.
func (p *GoogleProvider) Revoke(ctx context.Context, accessToken string) bool {
	form := url.Values{"token": {accessToken}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.config.RevokeURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

// httpContext makes the oauth2 library use our timeout-bounded client.
func (p *GoogleProvider) httpContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, p.client)
}

func (p *GoogleProvider) bundleFromToken(tok *oauth2.Token) *models.TokenBundle {
	expiresIn := 3600
	if !tok.Expiry.IsZero() {
		expiresIn = int(time.Until(tok.Expiry).Seconds())
	}

	scope := GoogleAdsScope
	if s, ok := tok.Extra("scope").(string); ok && s != "" {
		scope = s
	}

	tokenType := tok.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}

	return &models.TokenBundle{
		Platform:     models.PlatformGoogle,
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresIn:    expiresIn,
		TokenType:    tokenType,
		Scope:        scope,
	}
}

// normalizeOAuth2Error maps oauth2 library failures onto the adapter error
// taxonomy without echoing response bodies into our error chain.
func normalizeOAuth2Error(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return fmt.Errorf("%w: google returned status %d", ErrTokenExchangeFailed, retrieveErr.Response.StatusCode)
	}
	return fmt.Errorf("%w: %v", ErrTokenExchangeFailed, err)
}
