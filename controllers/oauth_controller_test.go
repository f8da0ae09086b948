package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/liamesika/adconnect/models"
	"github.com/liamesika/adconnect/oauthstate"
	"github.com/liamesika/adconnect/providers"
	providermocks "github.com/liamesika/adconnect/providers/mocks"
	repomocks "github.com/liamesika/adconnect/repositories/mocks"
	"github.com/liamesika/adconnect/services"
	"github.com/liamesika/adconnect/userctx"
)

// testEnv bundles the mocked collaborators behind a routed controller
type testEnv struct {
	router    *chi.Mux
	mockMeta  *providermocks.MockProvider
	mockGoog  *providermocks.MockProvider
	mockCreds *repomocks.MockCredentialRepository
	mockAudit *repomocks.MockAuditRepository
}

// setupEnv wires mocked adapters and repositories into a real router. The
// injectUser middleware stands in for session authentication.
func setupEnv(t *testing.T, userID string) *testEnv {
	env := &testEnv{
		mockMeta:  providermocks.NewMockProvider(t),
		mockGoog:  providermocks.NewMockProvider(t),
		mockCreds: repomocks.NewMockCredentialRepository(t),
		mockAudit: repomocks.NewMockAuditRepository(t),
	}
	env.mockMeta.EXPECT().Platform().Return(models.PlatformMeta).Maybe()
	env.mockGoog.EXPECT().Platform().Return(models.PlatformGoogle).Maybe()

	registry := providers.NewRegistry(providers.Config{}, providers.Config{})
	registry.Register(env.mockMeta)
	registry.Register(env.mockGoog)

	oauthService := services.NewOAuthService(registry, env.mockCreds, env.mockAudit)
	ctrl := NewOAuthController(&services.Services{OAuth: oauthService})

	injectUser := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(userctx.SetUserID(r.Context(), userID)))
		})
	}

	r := chi.NewRouter()
	r.Use(injectUser)
	r.Post("/api/oauth/{platform}/initiate", ctrl.Initiate)
	r.Get("/oauth/{platform}/callback", ctrl.Callback)
	r.Get("/api/oauth/status", ctrl.Status)
	r.Get("/api/oauth/{platform}/status", ctrl.PlatformStatus)
	r.Post("/api/oauth/{platform}/refresh", ctrl.Refresh)
	r.Delete("/api/oauth/{platform}", ctrl.Revoke)
	env.router = r
	return env
}

func TestInitiateReturnsAuthorizationRequest(t *testing.T) {
	env := setupEnv(t, "user-42")
	env.mockGoog.EXPECT().
		BuildAuthorizationURL("", mock.AnythingOfType("string")).
		Return("https://accounts.google.com/o/oauth2/auth?client_id=x")

	req := httptest.NewRequest(http.MethodPost, "/api/oauth/google/initiate", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp models.AuthorizationRequest
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.AuthorizationURL == "" || resp.State == "" {
		t.Errorf("Expected auth_url and state in response, got %+v", resp)
	}
	if resp.ExpiresInSeconds != 600 {
		t.Errorf("Expected expires_in 600, got %d", resp.ExpiresInSeconds)
	}
}

func TestInitiateRejectsUnsupportedPlatform(t *testing.T) {
	env := setupEnv(t, "user-42")

	req := httptest.NewRequest(http.MethodPost, "/api/oauth/tiktok/initiate", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestInitiateUnconfiguredPlatform(t *testing.T) {
	env := &testEnv{
		mockCreds: repomocks.NewMockCredentialRepository(t),
		mockAudit: repomocks.NewMockAuditRepository(t),
	}
	registry := providers.NewRegistry(providers.Config{}, providers.Config{})
	oauthService := services.NewOAuthService(registry, env.mockCreds, env.mockAudit)
	ctrl := NewOAuthController(&services.Services{OAuth: oauthService})

	r := chi.NewRouter()
	r.Post("/api/oauth/{platform}/initiate", ctrl.Initiate)

	req := httptest.NewRequest(http.MethodPost, "/api/oauth/meta/initiate", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 for unconfigured platform, got %d", rec.Code)
	}
}

func TestCallbackProviderDenialRedirectsGenerically(t *testing.T) {
	env := setupEnv(t, "user-42")

	req := httptest.NewRequest(http.MethodGet, "/oauth/google/callback?error=access_denied&error_description=secret+detail", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d", rec.Code)
	}
	location := rec.Header().Get("Location")
	if location != "/?error=oauth_failed" {
		t.Errorf("Expected generic failure redirect, got %q", location)
	}
	if strings.Contains(rec.Body.String(), "secret detail") {
		t.Error("Provider error detail must not be echoed to the browser")
	}
}

func TestCallbackMissingParams(t *testing.T) {
	env := setupEnv(t, "user-42")

	req := httptest.NewRequest(http.MethodGet, "/oauth/google/callback", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing code/state, got %d", rec.Code)
	}
}

func TestCallbackRejectsForeignState(t *testing.T) {
	// State minted for a different user: exchange must not run, browser gets
	// the generic failure marker.
	env := setupEnv(t, "user-42")
	env.mockAudit.EXPECT().Create(mock.AnythingOfType("*models.AuditLogEntry")).Return(nil)

	state := oauthstate.Encode("someone-else", models.PlatformGoogle)
	req := httptest.NewRequest(http.MethodGet, "/oauth/google/callback?code=abc&state="+state, nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d", rec.Code)
	}
	if rec.Header().Get("Location") != "/?error=oauth_failed" {
		t.Errorf("Expected generic failure redirect, got %q", rec.Header().Get("Location"))
	}
}

func TestCallbackHappyPathStoresAndRedirects(t *testing.T) {
	env := setupEnv(t, "user-42")
	bundle := &models.TokenBundle{
		Platform:     models.PlatformGoogle,
		AccessToken:  "tok1",
		RefreshToken: "ref1",
		ExpiresIn:    3600,
	}
	env.mockGoog.EXPECT().ExchangeCode(mock.Anything, "code-abc", "").Return(bundle, nil)
	env.mockCreds.EXPECT().Put(mock.Anything, "user-42", bundle).Return(nil)

	state := oauthstate.Encode("user-42", models.PlatformGoogle)
	req := httptest.NewRequest(http.MethodGet, "/oauth/google/callback?code=code-abc&state="+state, nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("Location") != "/?connected=google" {
		t.Errorf("Expected success redirect, got %q", rec.Header().Get("Location"))
	}
}

func TestCallbackExchangeFailureRedirectsGenerically(t *testing.T) {
	env := setupEnv(t, "user-42")
	env.mockGoog.EXPECT().
		ExchangeCode(mock.Anything, "bad-code", "").
		Return(nil, providers.ErrTokenExchangeFailed)

	state := oauthstate.Encode("user-42", models.PlatformGoogle)
	req := httptest.NewRequest(http.MethodGet, "/oauth/google/callback?code=bad-code&state="+state, nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d", rec.Code)
	}
	if rec.Header().Get("Location") != "/?error=oauth_failed" {
		t.Errorf("Expected generic failure redirect, got %q", rec.Header().Get("Location"))
	}
}

func TestRefreshNotConnected(t *testing.T) {
	env := setupEnv(t, "user-42")
	env.mockCreds.EXPECT().Get(mock.Anything, "user-42", models.PlatformGoogle).Return(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/oauth/google/refresh", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 when not connected, got %d", rec.Code)
	}
}

func TestRefreshReturnsNewExpiry(t *testing.T) {
	env := setupEnv(t, "user-42")
	credential := &models.StoredCredential{
		UserID:       "user-42",
		Platform:     models.PlatformGoogle,
		AccessToken:  "old",
		RefreshToken: "ref",
	}
	refreshed := &models.TokenBundle{
		Platform:     models.PlatformGoogle,
		AccessToken:  "new",
		RefreshToken: "ref",
		ExpiresIn:    3600,
	}
	env.mockCreds.EXPECT().Get(mock.Anything, "user-42", models.PlatformGoogle).Return(credential, nil)
	env.mockGoog.EXPECT().Refresh(mock.Anything, "ref").Return(refreshed, nil)
	env.mockCreds.EXPECT().Put(mock.Anything, "user-42", refreshed).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/oauth/google/refresh", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success   bool   `json:"success"`
		Platform  string `json:"platform"`
		ExpiresIn int    `json:"expires_in"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Success || resp.Platform != "google" || resp.ExpiresIn != 3600 {
		t.Errorf("Unexpected refresh response: %+v", resp)
	}
}

func TestRevokePurgesCredential(t *testing.T) {
	env := setupEnv(t, "user-42")
	credential := &models.StoredCredential{
		UserID:      "user-42",
		Platform:    models.PlatformMeta,
		AccessToken: "meta-tok",
	}
	env.mockCreds.EXPECT().Get(mock.Anything, "user-42", models.PlatformMeta).Return(credential, nil)
	env.mockMeta.EXPECT().Revoke(mock.Anything, "meta-tok").Return(true)
	env.mockCreds.EXPECT().Delete(mock.Anything, "user-42", models.PlatformMeta).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/oauth/meta", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Revoked bool `json:"revoked"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Success || !resp.Revoked {
		t.Errorf("Unexpected revoke response: %+v", resp)
	}
}

func TestStatusReportsAllPlatforms(t *testing.T) {
	env := setupEnv(t, "user-42")
	env.mockCreds.EXPECT().Get(mock.Anything, "user-42", models.PlatformMeta).Return(nil, nil)
	env.mockCreds.EXPECT().Get(mock.Anything, "user-42", models.PlatformGoogle).
		Return(&models.StoredCredential{
			Platform:  models.PlatformGoogle,
			ExpiresAt: time.Now().Add(time.Hour),
			Scope:     "https://www.googleapis.com/auth/adwords",
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/oauth/status", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp struct {
		Platforms map[string]models.ConnectionStatus `json:"platforms"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Platforms == nil {
		t.Fatalf("Expected a platforms envelope, got %s", rec.Body.String())
	}
	if resp.Platforms["meta"].Connected {
		t.Error("Expected meta to be disconnected")
	}
	if !resp.Platforms["google"].Connected {
		t.Error("Expected google to be connected")
	}
}

func TestInitiateRejectsMalformedBody(t *testing.T) {
	env := setupEnv(t, "user-42")

	req := httptest.NewRequest(http.MethodPost, "/api/oauth/google/initiate",
		strings.NewReader(`{"redirect_uri": `))
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed body, got %d", rec.Code)
	}
}
