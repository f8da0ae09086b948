package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/liamesika/adconnect/models"
)

// Meta Graph API OAuth endpoints.
const (
	metaAuthURL   = "https://www.facebook.com/v19.0/dialog/oauth"
	metaTokenURL  = "https://graph.facebook.com/v19.0/oauth/access_token"
	metaRevokeURL = "https://graph.facebook.com/v19.0/me/permissions"
)

// MetaScopes are the fixed permissions requested for ad account access.
// Meta joins scopes with commas.
var MetaScopes = []string{"ads_management", "ads_read", "business_management"}

// MetaProvider implements the Provider interface for Meta (Facebook) Ads.
// Meta has no refresh-token grant: tokens are refreshed by re-exchanging the
// current access token with grant_type=fb_exchange_token, so every bundle it
// returns has an empty refresh token.
type MetaProvider struct {
	config Config
	client *http.Client
}

// NewMetaProvider creates a Meta adapter, failing fast when required
// configuration is absent.
func NewMetaProvider(cfg Config) (*MetaProvider, error) {
	if err := cfg.validate(models.PlatformMeta); err != nil {
		return nil, err
	}
	if cfg.AuthURL == "" {
		cfg.AuthURL = metaAuthURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = metaTokenURL
	}
	if cfg.RevokeURL == "" {
		cfg.RevokeURL = metaRevokeURL
	}
	return &MetaProvider{config: cfg, client: newHTTPClient()}, nil
}

// Platform returns the platform this adapter serves.
func (p *MetaProvider) Platform() models.Platform {
	return models.PlatformMeta
}

// BuildAuthorizationURL constructs the Meta OAuth dialog URL. An empty
// redirectURI falls back to the configured default.
func (p *MetaProvider) BuildAuthorizationURL(redirectURI, state string) string {
	if redirectURI == "" {
		redirectURI = p.config.RedirectURI
	}
	params := url.Values{}
	params.Set("client_id", p.config.ClientID)
	params.Set("redirect_uri", redirectURI)
	params.Set("scope", strings.Join(MetaScopes, ","))
	params.Set("response_type", "code")
	params.Set("state", state)
	return p.config.AuthURL + "?" + params.Encode()
}

// metaTokenResponse is the Graph API token endpoint payload.
type metaTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Error       *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// ExchangeCode trades an authorization code for an access token.
func (p *MetaProvider) ExchangeCode(ctx context.Context, code, redirectURI string) (*models.TokenBundle, error) {
	if redirectURI == "" {
		redirectURI = p.config.RedirectURI
	}
	params := url.Values{}
	params.Set("client_id", p.config.ClientID)
	params.Set("client_secret", p.config.ClientSecret)
	params.Set("redirect_uri", redirectURI)
	params.Set("code", code)

	return p.requestToken(ctx, params)
}

// Refresh re-exchanges the current access token for a new long-lived one via
// the fb_exchange_token grant. Without a usable current token there is
// nothing to exchange and the caller must prompt full re-authorization.
func (p *MetaProvider) Refresh(ctx context.Context, currentToken string) (*models.TokenBundle, error) {
	if currentToken == "" {
		return nil, fmt.Errorf("%w: meta requires a valid current access token", ErrRefreshUnsupported)
	}

	params := url.Values{}
	params.Set("grant_type", "fb_exchange_token")
	params.Set("client_id", p.config.ClientID)
	params.Set("client_secret", p.config.ClientSecret)
	params.Set("fb_exchange_token", currentToken)

	return p.requestToken(ctx, params)
}

// Revoke deletes the app's permissions for the token's user. Meta confirms
// with {"success": true}.
func (p *MetaProvider) Revoke(ctx context.Context, accessToken string) bool {
	endpoint := p.config.RevokeURL + "?" + url.Values{"access_token": {accessToken}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false
	}
	return result.Success
}

// requestToken calls the Graph token endpoint and normalizes the response.
func (p *MetaProvider) requestToken(ctx context.Context, params url.Values) (*models.TokenBundle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.config.TokenURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenExchangeFailed, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenExchangeFailed, err)
	}
	defer resp.Body.Close()

	var body metaTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: invalid response from meta: %v", ErrTokenExchangeFailed, err)
	}

	if body.Error != nil {
		return nil, fmt.Errorf("%w: meta error %d (%s)", ErrTokenExchangeFailed, body.Error.Code, body.Error.Type)
	}
	if resp.StatusCode != http.StatusOK || body.AccessToken == "" {
		return nil, fmt.Errorf("%w: meta returned status %d", ErrTokenExchangeFailed, resp.StatusCode)
	}

	tokenType := body.TokenType
	if tokenType == "" {
		tokenType = "bearer"
	}

	return &models.TokenBundle{
		Platform:    models.PlatformMeta,
		AccessToken: body.AccessToken,
		ExpiresIn:   body.ExpiresIn,
		TokenType:   tokenType,
		Scope:       strings.Join(MetaScopes, ","),
	}, nil
}
