// Package oauthstate encodes and validates the opaque `state` parameter used
// to correlate an OAuth authorization callback with the request that
// initiated it, and to reject forged or replayed callbacks.
//
// Wire format (preserved for interop with already-issued redirect links):
//
//	base64url( userID + ":" + platform + ":" + issuedAtMillis + ":" + nonce )
//
// with no padding. The token is not signed; tampering is caught at callback
// time by exact-match validation against the expected user and platform.
package oauthstate

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/liamesika/adconnect/models"
)

// TTL is how long a state token remains valid after issuance.
const TTL = 10 * time.Minute

// ErrMalformedState is returned when a state parameter cannot be decoded.
var ErrMalformedState = errors.New("malformed state token")

// State is the decoded payload of a state parameter.
type State struct {
	UserID   string
	Platform models.Platform
	IssuedAt time.Time
	Nonce    string
}

// Encode produces a URL-safe state token binding the flow to a user and
// platform at the current time.
func Encode(userID string, platform models.Platform) string {
	payload := strings.Join([]string{
		userID,
		string(platform),
		strconv.FormatInt(time.Now().UnixMilli(), 10),
		uuid.NewString(),
	}, ":")
	return base64.RawURLEncoding.EncodeToString([]byte(payload))
}

// Decode reverses Encode. The last three segments are always platform,
// issuedAtMillis and nonce; anything before them (which may itself contain
// colons) is the user ID.
func Decode(raw string) (*State, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(raw, "="))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}

	parts := strings.Split(string(decoded), ":")
	if len(parts) < 4 {
		return nil, fmt.Errorf("%w: expected 4 fields, got %d", ErrMalformedState, len(parts))
	}

	millis, err := strconv.ParseInt(parts[len(parts)-2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: timestamp is not an integer", ErrMalformedState)
	}

	return &State{
		UserID:   strings.Join(parts[:len(parts)-3], ":"),
		Platform: models.Platform(parts[len(parts)-3]),
		IssuedAt: time.UnixMilli(millis),
		Nonce:    parts[len(parts)-1],
	}, nil
}

// Validate reports whether the state belongs to the expected user and
// platform and is still within its TTL. A false result must be treated as
// request forgery or staleness: the caller aborts the flow without
// exchanging any code.
func (s *State) Validate(expectedUserID string, expectedPlatform models.Platform) bool {
	return s.validateAt(time.Now(), expectedUserID, expectedPlatform)
}

func (s *State) validateAt(now time.Time, expectedUserID string, expectedPlatform models.Platform) bool {
	if s.UserID != expectedUserID || s.Platform != expectedPlatform {
		return false
	}
	return now.Sub(s.IssuedAt) <= TTL
}
