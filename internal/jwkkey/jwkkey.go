// Package jwkkey reads RSA private keys from JWK and JWKS documents on
// disk.
//
// The package classifies failures with sentinel errors only; mapping to
// the public error codes happens in the keyly package.
package jwkkey

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/lestrrat-go/jwx/v2/jwk"
)

var (
	ErrNotFound    = errors.New("key file not found")
	ErrBadDocument = errors.New("not a valid JWK document")
	ErrBadKey      = errors.New("not a valid JWK signature key")
)

// requiredFields are the members a private RSA JWK must carry. The d
// component is what separates a private key from a public-only one.
var requiredFields = []string{"kty", "kid", "n", "e", "d"}

// Read loads the file at path and parses it as a single RSA private
// JWK, or as a JWKS whose first entry is one.
func Read(path string) (jwk.Key, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	return Parse(data)
}

// Parse parses a JWK or JWKS document into a key.
func Parse(data []byte) (jwk.Key, error) {
	var top any
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	obj, ok := top.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrBadKey)
	}

	// A "keys" array marks a JWKS; the key to extract is its first entry.
	if keys, ok := obj["keys"].([]any); ok {
		if len(keys) == 0 {
			return nil, fmt.Errorf("%w: key set is empty", ErrBadKey)
		}
		first, ok := keys[0].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: first key set entry is not an object", ErrBadKey)
		}
		obj = first
	}

	for _, f := range requiredFields {
		if _, ok := obj[f]; !ok {
			return nil, fmt.Errorf("%w: missing required field %q", ErrBadKey, f)
		}
	}

	raw, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	key, err := jwk.ParseKey(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadKey, err)
	}
	return key, nil
}
