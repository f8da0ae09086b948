package models

import "time"

// TokenBundle is the result of a token exchange or refresh. AccessToken and
// RefreshToken are secrets: they are encrypted before they hit storage and
// must never be logged.
type TokenBundle struct {
	Platform     Platform `json:"platform"`
	AccessToken  string   `json:"-"`
	RefreshToken string   `json:"-"` // empty for Meta; Meta has no refresh-token grant
	ExpiresIn    int      `json:"expires_in"`
	TokenType    string   `json:"token_type"`
	Scope        string   `json:"scope"`
}

// HasRefreshToken reports whether the bundle carries a refresh token.
func (b *TokenBundle) HasRefreshToken() bool {
	return b.RefreshToken != ""
}

// StoredCredential is the persisted form of a TokenBundle, keyed by
// (userID, platform). Storing again for the same key overwrites.
type StoredCredential struct {
	UserID       string    `json:"user_id"`
	Platform     Platform  `json:"platform"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	TokenType    string    `json:"token_type"`
	Scope        string    `json:"scope"`
	ExpiresAt    time.Time `json:"expires_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ConnectionStatus describes the health of a stored credential without
// touching the platform's API.
type ConnectionStatus struct {
	Connected    bool       `json:"connected"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	Scope        string     `json:"scope,omitempty"`
	NeedsRefresh bool       `json:"needs_refresh"`
}

// AuthorizationRequest is the result of initiating an OAuth flow. It is not
// persisted; the caller redirects the browser to AuthorizationURL.
type AuthorizationRequest struct {
	Platform         Platform `json:"platform"`
	AuthorizationURL string   `json:"auth_url"`
	State            string   `json:"state"`
	ExpiresInSeconds int      `json:"expires_in"`
}
