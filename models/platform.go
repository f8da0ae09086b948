package models

import (
	"errors"
	"fmt"
	"strings"
)

// Platform identifies a supported advertising platform.
type Platform string

const (
	PlatformMeta   Platform = "meta"
	PlatformGoogle Platform = "google"
)

// AllPlatforms lists every supported platform in a stable order.
var AllPlatforms = []Platform{PlatformMeta, PlatformGoogle}

// ErrUnsupportedPlatform is returned when a platform outside the supported
// set is requested. It is a permanent client input error.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// ParsePlatform converts a string into a Platform
func ParsePlatform(s string) (Platform, error) {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case PlatformMeta:
		return PlatformMeta, nil
	case PlatformGoogle:
		return PlatformGoogle, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedPlatform, s)
	}
}

// Valid reports whether the platform is one of the supported set.
func (p Platform) Valid() bool {
	return p == PlatformMeta || p == PlatformGoogle
}

// String returns the wire name of the platform.
func (p Platform) String() string {
	return string(p)
}
