package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/liamesika/adconnect/models"
	"github.com/liamesika/adconnect/oauthstate"
	"github.com/liamesika/adconnect/providers"
	"github.com/liamesika/adconnect/repositories"
)

// Errors surfaced by the orchestrator on top of the provider taxonomy.
var (
	// ErrInvalidState means the callback state token was malformed, expired
	// or bound to a different user/platform. Treated as a potential CSRF or
	// replay attempt: terminal for the callback, never retried transparently.
	ErrInvalidState = errors.New("invalid state token")

	// ErrNotConnected means no credential is stored for the requested
	// (user, platform) pair.
	ErrNotConnected = errors.New("platform not connected")
)

// OAuthService is the provider-agnostic orchestrator driving the OAuth
// lifecycle: initiate, callback, store, refresh, revoke and status. It
// dispatches to the correct platform adapter and normalizes every adapter
// failure into the error taxonomy before returning.
type OAuthService interface {
	// Initiate builds the authorization URL for a platform. No server-side
	// state is persisted; everything the callback needs rides in the state
	// token, bounded by its TTL.
	Initiate(ctx context.Context, platform models.Platform, userID, redirectURIOverride string) (*models.AuthorizationRequest, error)

	// HandleCallback validates the state token against the authenticated
	// user and exchanges the authorization code. Persistence is a separate
	// explicit Store step so exchange and storage stay independently
	// testable and retryable.
	HandleCallback(ctx context.Context, platform models.Platform, code, state, expectedUserID string) (*models.TokenBundle, error)

	// Store persists a token bundle for the user. For Google, a previously
	// stored refresh token is preserved when the new bundle omits one.
	Store(ctx context.Context, userID string, bundle *models.TokenBundle) error

	// Refresh obtains and stores a fresh token bundle for a connected
	// platform.
	Refresh(ctx context.Context, platform models.Platform, userID string) (*models.TokenBundle, error)

	// Revoke calls the platform's revocation endpoint and purges the local
	// credential regardless, so the UI never shows a stale connection. The
	// returned bool reports whether the remote revocation was confirmed;
	// remote failures never raise.
	Revoke(ctx context.Context, platform models.Platform, userID string) (bool, error)

	// Status derives the connection state for every platform from stored
	// credentials alone, with no live platform calls.
	Status(ctx context.Context, userID string) (map[models.Platform]models.ConnectionStatus, error)

	// StatusFor is the pure per-credential form of Status; credential may be
	// nil.
	StatusFor(credential *models.StoredCredential) models.ConnectionStatus
}

// oauthService implements OAuthService
type oauthService struct {
	registry    *providers.Registry
	credentials repositories.CredentialRepository
	audit       repositories.AuditRepository
}

// NewOAuthService creates a new OAuth orchestrator
func NewOAuthService(registry *providers.Registry, credentials repositories.CredentialRepository, audit repositories.AuditRepository) OAuthService {
	return &oauthService{
		registry:    registry,
		credentials: credentials,
		audit:       audit,
	}
}

// resolveProvider maps a platform onto its adapter. Unknown platforms are a
// client input error; known but unregistered platforms are a configuration
// fault for that platform only.
func (s *oauthService) resolveProvider(platform models.Platform) (providers.Provider, error) {
	if !platform.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrUnsupportedPlatform, platform)
	}
	provider, ok := s.registry.Get(platform)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not configured", providers.ErrConfigurationMissing, platform)
	}
	return provider, nil
}

// Initiate builds the authorization request for a platform
func (s *oauthService) Initiate(ctx context.Context, platform models.Platform, userID, redirectURIOverride string) (*models.AuthorizationRequest, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}

	provider, err := s.resolveProvider(platform)
	if err != nil {
		return nil, err
	}

	state := oauthstate.Encode(userID, platform)
	return &models.AuthorizationRequest{
		Platform:         platform,
		AuthorizationURL: provider.BuildAuthorizationURL(redirectURIOverride, state),
		State:            state,
		ExpiresInSeconds: int(oauthstate.TTL.Seconds()),
	}, nil
}

// HandleCallback validates the state and exchanges the code
func (s *oauthService) HandleCallback(ctx context.Context, platform models.Platform, code, state, expectedUserID string) (*models.TokenBundle, error) {
	provider, err := s.resolveProvider(platform)
	if err != nil {
		return nil, err
	}

	decoded, err := oauthstate.Decode(state)
	if err != nil {
		s.recordStateRejection(expectedUserID, platform, "malformed state")
		return nil, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	if !decoded.Validate(expectedUserID, platform) {
		s.recordStateRejection(expectedUserID, platform, "user/platform mismatch or expired")
		return nil, fmt.Errorf("%w: state does not match this user and platform", ErrInvalidState)
	}

	bundle, err := provider.ExchangeCode(ctx, code, "")
	if err != nil {
		return nil, err
	}
	return bundle, nil
}

// Store persists a bundle, preserving a prior Google refresh token when the
// new exchange omitted one (Google only returns it on first consent unless
// the consent screen is forced).
func (s *oauthService) Store(ctx context.Context, userID string, bundle *models.TokenBundle) error {
	if bundle.Platform == models.PlatformGoogle && !bundle.HasRefreshToken() {
		existing, err := s.credentials.Get(ctx, userID, bundle.Platform)
		if err != nil {
			return fmt.Errorf("failed to load existing credential: %w", err)
		}
		if existing != nil {
			bundle.RefreshToken = existing.RefreshToken
		}
	}
	return s.credentials.Put(ctx, userID, bundle)
}

// Refresh dispatches to the adapter's refresh mechanism and stores the result
func (s *oauthService) Refresh(ctx context.Context, platform models.Platform, userID string) (*models.TokenBundle, error) {
	provider, err := s.resolveProvider(platform)
	if err != nil {
		return nil, err
	}

	credential, err := s.credentials.Get(ctx, userID, platform)
	if err != nil {
		return nil, fmt.Errorf("failed to load credential: %w", err)
	}
	if credential == nil {
		return nil, fmt.Errorf("%w: no %s credential for this user", ErrNotConnected, platform)
	}

	// Google refreshes with its refresh token; Meta re-exchanges the current
	// access token.
	currentToken := credential.RefreshToken
	if platform == models.PlatformMeta {
		currentToken = credential.AccessToken
	}

	bundle, err := provider.Refresh(ctx, currentToken)
	if err != nil {
		return nil, err
	}

	if err := s.Store(ctx, userID, bundle); err != nil {
		return nil, err
	}
	return bundle, nil
}

// Revoke revokes remote access and purges the local credential
func (s *oauthService) Revoke(ctx context.Context, platform models.Platform, userID string) (bool, error) {
	provider, err := s.resolveProvider(platform)
	if err != nil {
		return false, err
	}

	credential, err := s.credentials.Get(ctx, userID, platform)
	if err != nil {
		return false, fmt.Errorf("failed to load credential: %w", err)
	}
	if credential == nil {
		return false, fmt.Errorf("%w: no %s credential for this user", ErrNotConnected, platform)
	}

	revoked := provider.Revoke(ctx, credential.AccessToken)
	if !revoked {
		log.Printf("remote revocation not confirmed for user=%s platform=%s, purging local credential anyway", userID, platform)
	}

	// Purge locally even when the remote call failed, so the connection
	// never shows as active against a dead token.
	if err := s.credentials.Delete(ctx, userID, platform); err != nil {
		return revoked, err
	}
	return revoked, nil
}

// Status reports the connection state for every supported platform
func (s *oauthService) Status(ctx context.Context, userID string) (map[models.Platform]models.ConnectionStatus, error) {
	statuses := make(map[models.Platform]models.ConnectionStatus, len(models.AllPlatforms))
	for _, platform := range models.AllPlatforms {
		credential, err := s.credentials.Get(ctx, userID, platform)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s credential: %w", platform, err)
		}
		statuses[platform] = s.StatusFor(credential)
	}
	return statuses, nil
}

// StatusFor derives connection health from a stored credential alone
func (s *oauthService) StatusFor(credential *models.StoredCredential) models.ConnectionStatus {
	if credential == nil {
		return models.ConnectionStatus{Connected: false, NeedsRefresh: false}
	}

	expiresAt := credential.ExpiresAt
	return models.ConnectionStatus{
		Connected:    true,
		ExpiresAt:    &expiresAt,
		Scope:        credential.Scope,
		NeedsRefresh: !time.Now().Before(expiresAt),
	}
}

// recordStateRejection logs a rejected state token as a security event. The
// raw token is deliberately not included.
func (s *oauthService) recordStateRejection(userID string, platform models.Platform, reason string) {
	log.Printf("rejected oauth state for user=%s platform=%s: %s", userID, platform, reason)

	if s.audit == nil {
		return
	}
	entry := &models.AuditLogEntry{
		UserID:   userID,
		Platform: string(platform),
		Action:   "state_rejected",
		Success:  false,
		Detail:   reason,
	}
	if err := s.audit.Create(entry); err != nil {
		log.Printf("Failed to create audit log: %v", err)
	}
}
