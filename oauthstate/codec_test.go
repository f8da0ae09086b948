package oauthstate

import (
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/liamesika/adconnect/models"
)

// encodeAt builds a raw state token with an explicit issue time, for TTL tests.
func encodeAt(userID string, platform models.Platform, issuedAt time.Time) string {
	payload := strings.Join([]string{
		userID,
		string(platform),
		strconv.FormatInt(issuedAt.UnixMilli(), 10),
		"test-nonce-1234",
	}, ":")
	return base64.RawURLEncoding.EncodeToString([]byte(payload))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		userID   string
		platform models.Platform
	}{
		{"user-42", models.PlatformGoogle},
		{"user-42", models.PlatformMeta},
		{"a", models.PlatformMeta},
		{"auth0|5f7c8ec7c33c6c004bbafe82", models.PlatformGoogle}, // user ID with a pipe
		{"org:123:user:456", models.PlatformMeta},                // user ID containing colons
	}

	for _, tc := range cases {
		raw := Encode(tc.userID, tc.platform)
		if strings.ContainsAny(raw, "=+/") {
			t.Errorf("Encoded state %q is not URL-safe without padding", raw)
		}

		decoded, err := Decode(raw)
		if err != nil {
			t.Fatalf("Decode failed for %q/%q: %v", tc.userID, tc.platform, err)
		}
		if decoded.UserID != tc.userID {
			t.Errorf("Expected user ID %q, got %q", tc.userID, decoded.UserID)
		}
		if decoded.Platform != tc.platform {
			t.Errorf("Expected platform %q, got %q", tc.platform, decoded.Platform)
		}
		if decoded.Nonce == "" {
			t.Error("Expected non-empty nonce")
		}
		if time.Since(decoded.IssuedAt) > time.Minute {
			t.Errorf("Expected recent issue time, got %v", decoded.IssuedAt)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	inputs := []string{
		"",
		"!!!not-base64!!!",
		base64.RawURLEncoding.EncodeToString([]byte("only:three:parts")),
		base64.RawURLEncoding.EncodeToString([]byte("user:meta:not-a-number:nonce")),
	}

	for _, input := range inputs {
		_, err := Decode(input)
		if err == nil {
			t.Errorf("Expected error decoding %q", input)
			continue
		}
		if !errors.Is(err, ErrMalformedState) {
			t.Errorf("Expected ErrMalformedState for %q, got %v", input, err)
		}
	}
}

func TestValidateTTL(t *testing.T) {
	fresh, err := Decode(encodeAt("user-1", models.PlatformMeta, time.Now()))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !fresh.Validate("user-1", models.PlatformMeta) {
		t.Error("Expected fresh state to validate")
	}

	stale, err := Decode(encodeAt("user-1", models.PlatformMeta, time.Now().Add(-11*time.Minute)))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if stale.Validate("user-1", models.PlatformMeta) {
		t.Error("Expected state older than 10 minutes to fail validation")
	}
}

func TestValidateMismatch(t *testing.T) {
	decoded, err := Decode(Encode("user-1", models.PlatformGoogle))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if decoded.Validate("user-2", models.PlatformGoogle) {
		t.Error("Expected validation to fail for a different user")
	}
	if decoded.Validate("user-1", models.PlatformMeta) {
		t.Error("Expected validation to fail for a different platform")
	}
}

func TestPlatformIsolation(t *testing.T) {
	metaState, err := Decode(Encode("u1", models.PlatformMeta))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	googleState, err := Decode(Encode("u1", models.PlatformGoogle))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if !metaState.Validate("u1", models.PlatformMeta) || metaState.Validate("u1", models.PlatformGoogle) {
		t.Error("Expected meta state to validate only against meta")
	}
	if !googleState.Validate("u1", models.PlatformGoogle) || googleState.Validate("u1", models.PlatformMeta) {
		t.Error("Expected google state to validate only against google")
	}
}

func TestTamperRejection(t *testing.T) {
	raw := Encode("user-1", models.PlatformMeta)

	// Rebuild the payload with the platform segment flipped.
	decoded, _ := base64.RawURLEncoding.DecodeString(raw)
	tampered := strings.Replace(string(decoded), ":meta:", ":google:", 1)
	forged := base64.RawURLEncoding.EncodeToString([]byte(tampered))

	state, err := Decode(forged)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if state.Validate("user-1", models.PlatformMeta) {
		t.Error("Expected tampered state to fail validation against original platform")
	}
}
