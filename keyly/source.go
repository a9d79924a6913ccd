package keyly

import (
	"errors"
	"fmt"

	"github.com/keksclan/goKeyly/internal/jwkkey"
	"github.com/keksclan/goKeyly/internal/pemkey"
)

// KeySource extracts key material from a file. The two implementations
// share no state; each Extract call performs one file read and returns
// a fresh Result.
type KeySource interface {
	Extract(path string) Result
}

// PEMKeySource reads unencrypted PEM-encoded private keys.
//
// Failure codes: E001 (file not found), E002 (encrypted or otherwise
// unusable file), E003 (bytes are not a valid private key), E004
// (anything else, with the native detail embedded).
type PEMKeySource struct{}

func (PEMKeySource) Extract(path string) Result {
	key, err := pemkey.Read(path)
	if err != nil {
		return failure(classifyPEM(err))
	}
	return Result{Key: key}
}

func classifyPEM(err error) *ValidationError {
	switch {
	case errors.Is(err, pemkey.ErrNotFound):
		return newValidationError(CodePEMNotFound, "file not found in path", err)
	case errors.Is(err, pemkey.ErrEncrypted):
		return newValidationError(CodePEMBadFile, "bad file", err)
	case errors.Is(err, pemkey.ErrBadKey):
		return newValidationError(CodePEMBadKey, "bad key signature", err)
	default:
		return newValidationError(CodeUnexpected, fmt.Sprintf("unexpected: %v", err), err)
	}
}

// JWKKeySource reads RSA private keys from JWK or JWKS documents. A
// document with a "keys" array is treated as a JWKS and its first
// entry is extracted; anything else must itself be a JWK object
// carrying kty, kid, n, e and d.
//
// Failure codes: E005 (file not found), E006 (undecodable JSON), E007
// (decoded JSON that is not usable RSA private key material), E004
// (anything else).
type JWKKeySource struct{}

func (JWKKeySource) Extract(path string) Result {
	key, err := jwkkey.Read(path)
	if err != nil {
		return failure(classifyJWK(err))
	}
	return Result{Key: key}
}

func classifyJWK(err error) *ValidationError {
	switch {
	case errors.Is(err, jwkkey.ErrNotFound):
		return newValidationError(CodeJWKNotFound, "file not found in path", err)
	case errors.Is(err, jwkkey.ErrBadDocument):
		return newValidationError(CodeJWKBadFile, "bad JWK file", err)
	case errors.Is(err, jwkkey.ErrBadKey):
		return newValidationError(CodeJWKBadKey, "bad JWK signature", err)
	default:
		return newValidationError(CodeUnexpected, fmt.Sprintf("unexpected: %v", err), err)
	}
}
