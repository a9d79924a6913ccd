// Package pemkey reads unencrypted PEM-encoded private keys from disk.
//
// The package classifies failures with sentinel errors only; mapping to
// the public error codes happens in the keyly package.
package pemkey

import (
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNotFound  = errors.New("key file not found")
	ErrEncrypted = errors.New("encrypted PEM keys are not supported")
	ErrBadKey    = errors.New("not a valid PEM private key")
)

// Read loads the file at path and parses it as an unencrypted PEM
// private key. It returns *rsa.PrivateKey, *ecdsa.PrivateKey or
// ed25519.PrivateKey depending on the key material.
//
// The whole file is read up front so no handle outlives the call.
func Read(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		// Unclassified I/O failures (permission, directory path, ...)
		// surface raw for the caller's catch-all.
		return nil, err
	}
	return Parse(data)
}

// Parse parses PEM bytes into a private key.
func Parse(data []byte) (any, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrBadKey)
	}
	if isEncrypted(block) {
		return nil, fmt.Errorf("%w: %q", ErrEncrypted, block.Type)
	}

	if key, err := jwt.ParseRSAPrivateKeyFromPEM(data); err == nil {
		return key, nil
	}
	if key, err := jwt.ParseECPrivateKeyFromPEM(data); err == nil {
		return key, nil
	}
	if key, err := jwt.ParseEdPrivateKeyFromPEM(data); err == nil {
		return key, nil
	}
	return nil, fmt.Errorf("%w: %q block holds no supported private key", ErrBadKey, block.Type)
}

// isEncrypted reports whether the block carries password-protected key
// material. PKCS#8 announces it in the block type, legacy OpenSSL
// encryption in the Proc-Type header.
func isEncrypted(block *pem.Block) bool {
	if block.Type == "ENCRYPTED PRIVATE KEY" {
		return true
	}
	return strings.Contains(block.Headers["Proc-Type"], "ENCRYPTED")
}
