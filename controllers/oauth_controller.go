package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/liamesika/adconnect/models"
	"github.com/liamesika/adconnect/providers"
	"github.com/liamesika/adconnect/services"
	"github.com/liamesika/adconnect/userctx"
)

// OAuthController handles the OAuth lifecycle endpoints
type OAuthController struct {
	services *services.Services
}

// NewOAuthController creates a new OAuth controller
func NewOAuthController(services *services.Services) *OAuthController {
	return &OAuthController{
		services: services,
	}
}

// Initiate handles POST /api/oauth/{platform}/initiate
func (c *OAuthController) Initiate(w http.ResponseWriter, r *http.Request) {
	platform := models.Platform(chi.URLParam(r, "platform"))
	userID := userctx.GetUserID(r.Context())

	// Optional per-request redirect URI override; an empty body means no
	// override, a malformed one is a client error
	var body struct {
		RedirectURI string `json:"redirect_uri"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && err != io.EOF {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := c.services.OAuth.Initiate(r.Context(), platform, userID, body.RedirectURI)
	if err != nil {
		respondLifecycleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, req)
}

// Callback handles GET /oauth/{platform}/callback, the browser redirect from
// the identity provider. Every failure redirects with a generic error marker;
// provider error detail and state diagnostics stay server-side.
func (c *OAuthController) Callback(w http.ResponseWriter, r *http.Request) {
	platform := models.Platform(chi.URLParam(r, "platform"))
	userID := userctx.GetUserID(r.Context())
	query := r.URL.Query()

	if errParam := query.Get("error"); errParam != "" {
		log.Printf("oauth callback denied for user=%s platform=%s: %s", userID, platform, errParam)
		redirectFailed(w, r)
		return
	}

	code := query.Get("code")
	state := query.Get("state")
	if code == "" || state == "" {
		respondError(w, http.StatusBadRequest, "code and state are required")
		return
	}

	bundle, err := c.services.OAuth.HandleCallback(r.Context(), platform, code, state, userID)
	if err != nil {
		log.Printf("oauth callback failed for user=%s platform=%s: %v", userID, platform, err)
		redirectFailed(w, r)
		return
	}

	if err := c.services.OAuth.Store(r.Context(), userID, bundle); err != nil {
		log.Printf("failed to store credential for user=%s platform=%s: %v", userID, platform, err)
		redirectFailed(w, r)
		return
	}

	http.Redirect(w, r, "/?connected="+string(bundle.Platform), http.StatusSeeOther)
}

// Status handles GET /api/oauth/status
func (c *OAuthController) Status(w http.ResponseWriter, r *http.Request) {
	userID := userctx.GetUserID(r.Context())

	statuses, err := c.services.OAuth.Status(r.Context(), userID)
	if err != nil {
		log.Printf("failed to load connection status for user=%s: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "failed to load connection status")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"platforms": statuses})
}

// PlatformStatus handles GET /api/oauth/{platform}/status
func (c *OAuthController) PlatformStatus(w http.ResponseWriter, r *http.Request) {
	platform := models.Platform(chi.URLParam(r, "platform"))
	userID := userctx.GetUserID(r.Context())

	if !platform.Valid() {
		respondError(w, http.StatusBadRequest, "unsupported platform")
		return
	}

	statuses, err := c.services.OAuth.Status(r.Context(), userID)
	if err != nil {
		log.Printf("failed to load connection status for user=%s: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "failed to load connection status")
		return
	}

	respondJSON(w, http.StatusOK, statuses[platform])
}

// Refresh handles POST /api/oauth/{platform}/refresh
func (c *OAuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	platform := models.Platform(chi.URLParam(r, "platform"))
	userID := userctx.GetUserID(r.Context())

	bundle, err := c.services.OAuth.Refresh(r.Context(), platform, userID)
	if err != nil {
		respondLifecycleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"platform":   bundle.Platform,
		"expires_in": bundle.ExpiresIn,
	})
}

// Revoke handles DELETE /api/oauth/{platform}
func (c *OAuthController) Revoke(w http.ResponseWriter, r *http.Request) {
	platform := models.Platform(chi.URLParam(r, "platform"))
	userID := userctx.GetUserID(r.Context())

	revoked, err := c.services.OAuth.Revoke(r.Context(), platform, userID)
	if err != nil {
		respondLifecycleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"platform":   platform,
		"revoked":    revoked,
		"revoked_at": time.Now().UTC().Format(time.RFC3339),
	})
}

// redirectFailed sends the browser back with a generic failure marker
func redirectFailed(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/?error=oauth_failed", http.StatusSeeOther)
}

// respondLifecycleError maps the lifecycle error taxonomy onto HTTP statuses.
// Messages are intentionally generic; wrapped detail stays in the log.
func respondLifecycleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrUnsupportedPlatform):
		respondError(w, http.StatusBadRequest, "unsupported platform")
	case errors.Is(err, providers.ErrConfigurationMissing):
		respondError(w, http.StatusServiceUnavailable, "platform is not configured")
	case errors.Is(err, services.ErrInvalidState):
		respondError(w, http.StatusForbidden, "invalid state token")
	case errors.Is(err, services.ErrNotConnected):
		respondError(w, http.StatusNotFound, "platform not connected")
	case errors.Is(err, providers.ErrRefreshUnsupported):
		respondError(w, http.StatusConflict, "refresh not available for this connection")
	case errors.Is(err, providers.ErrTokenExchangeFailed):
		respondError(w, http.StatusBadGateway, "token exchange with the platform failed")
	default:
		log.Printf("oauth lifecycle error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
