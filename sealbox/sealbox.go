// Package sealbox seals and opens small secrets (typically extracted
// key material at rest) with Twofish-GCM. The sealed form is
// base64(nonce)|base64(ciphertext).
package sealbox

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/twofish"
)

const (
	nonceSize = 12 // GCM standard nonce size (96 bits)
	sep       = "|"
)

var (
	ErrBadSecret = errors.New("secret must be 16, 24 or 32 bytes")
	ErrBadSealed = errors.New("sealed value must be base64(nonce)|base64(ciphertext)")
)

// Sealbox seals and opens with a fixed secret. Safe for concurrent use.
type Sealbox struct {
	aead cipher.AEAD
}

// New creates a Sealbox from an explicit secret. The secret length must
// be a valid Twofish key size.
func New(secret []byte) (*Sealbox, error) {
	switch len(secret) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w, got %d", ErrBadSecret, len(secret))
	}
	block, err := twofish.NewCipher(secret)
	if err != nil {
		return nil, fmt.Errorf("twofish.NewCipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cipher.NewGCM: %w", err)
	}
	return &Sealbox{aead: aead}, nil
}

// Seal encrypts plain and returns base64(nonce)|base64(ciphertext).
func (s *Sealbox) Seal(plain []byte) (string, error) {
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("nonce random: %w", err)
	}
	ct := s.aead.Seal(nil, nonce, plain, nil)
	return base64.StdEncoding.EncodeToString(nonce) + sep + base64.StdEncoding.EncodeToString(ct), nil
}

// Open decrypts a sealed value produced by Seal.
func (s *Sealbox) Open(sealed string) ([]byte, error) {
	parts := strings.Split(sealed, sep)
	if len(parts) != 2 {
		return nil, ErrBadSealed
	}
	nonce, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, fmt.Errorf("decode nonce: %w", err)
	}
	ct, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("decode ciphertext: %w", err)
	}
	if len(nonce) != nonceSize {
		return nil, fmt.Errorf("%w: nonce is %d bytes, want %d", ErrBadSealed, len(nonce), nonceSize)
	}
	pt, err := s.aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return nil, fmt.Errorf("gcm auth/decrypt: %w", err)
	}
	return pt, nil
}
