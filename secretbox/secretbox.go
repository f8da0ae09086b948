// Package secretbox provides AES-256-GCM encryption for token material
// before it reaches the credential store. Ciphertext format is
// base64(nonce) + "|" + base64(ciphertext).
package secretbox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	nonceSize = 12 // 96-bit GCM nonce
	keySize   = 32 // AES-256
	sep       = "|"
)

// ErrInvalidKey is returned when the master key does not decode to 32 bytes.
var ErrInvalidKey = errors.New("master key must be 32 bytes")

// SecretBox encrypts and decrypts short secrets with a fixed master key.
// The key is injected at construction so tests can supply fixtures without
// touching process-wide environment.
type SecretBox struct {
	key []byte
}

// New creates a SecretBox from a raw 32-byte key.
func New(key []byte) (*SecretBox, error) {
	if len(key) != keySize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKey, len(key))
	}
	k := make([]byte, keySize)
	copy(k, key)
	return &SecretBox{key: k}, nil
}

// NewFromBase64 creates a SecretBox from a base64-encoded 32-byte key, the
// form it takes in configuration (generate one with: openssl rand -base64 32).
func NewFromBase64(encoded string) (*SecretBox, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("decode master key: %w", err)
	}
	return New(key)
}

// Encrypt seals plaintext and returns base64(nonce)|base64(ciphertext).
func (s *SecretBox) Encrypt(plaintext string) (string, error) {
	aesgcm, err := s.gcm()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ct := aesgcm.Seal(nil, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(nonce) + sep + base64.StdEncoding.EncodeToString(ct), nil
}

// Decrypt reverses Encrypt. Any tampering with the ciphertext fails the GCM
// authentication check.
func (s *SecretBox) Decrypt(ciphertext string) (string, error) {
	parts := strings.Split(ciphertext, sep)
	if len(parts) != 2 {
		return "", errors.New("invalid ciphertext format: expected base64(nonce)|base64(ciphertext)")
	}

	nonce, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return "", fmt.Errorf("decode nonce: %w", err)
	}
	if len(nonce) != nonceSize {
		return "", fmt.Errorf("invalid nonce length: %d", len(nonce))
	}
	ct, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("decode ciphertext: %w", err)
	}

	aesgcm, err := s.gcm()
	if err != nil {
		return "", err
	}

	pt, err := aesgcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", fmt.Errorf("gcm auth/decrypt: %w", err)
	}
	return string(pt), nil
}

func (s *SecretBox) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, fmt.Errorf("aes.NewCipher: %w", err)
	}
	return cipher.NewGCM(block)
}
