package jwkkey

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/lestrrat-go/jwx/v2/jwk"
)

// rsaJWK returns a private RSA JWK document with kid set, as a raw map
// so tests can drop fields.
func rsaJWK(t *testing.T) map[string]any {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate RSA: %v", err)
	}
	key, err := jwk.FromRaw(priv)
	if err != nil {
		t.Fatalf("jwk.FromRaw: %v", err)
	}
	_ = key.Set(jwk.KeyIDKey, "test-key-1")
	data, err := json.Marshal(key)
	if err != nil {
		t.Fatalf("marshal jwk: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal jwk: %v", err)
	}
	return m
}

func writeJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return writeFile(t, data)
}

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "key.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestReadSingleJWK(t *testing.T) {
	key, err := Read(writeJSON(t, rsaJWK(t)))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if key.KeyID() != "test-key-1" {
		t.Errorf("kid = %q, want test-key-1", key.KeyID())
	}
	var raw rsa.PrivateKey
	if err := key.Raw(&raw); err != nil {
		t.Errorf("handle does not hold an RSA private key: %v", err)
	}
}

func TestReadJWKSet(t *testing.T) {
	doc := map[string]any{"keys": []any{rsaJWK(t), rsaJWK(t)}}
	key, err := Read(writeJSON(t, doc))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if key.KeyID() != "test-key-1" {
		t.Errorf("kid = %q, want first entry's kid", key.KeyID())
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read("/nonexistent/key.json")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReadBadJSON(t *testing.T) {
	for _, data := range []string{"{not json", "", `{"keys": [`} {
		_, err := Read(writeFile(t, []byte(data)))
		if !errors.Is(err, ErrBadDocument) {
			t.Errorf("data %q: expected ErrBadDocument, got %v", data, err)
		}
	}
}

func TestReadBadKeyMaterial(t *testing.T) {
	missing := func(field string) map[string]any {
		m := rsaJWK(t)
		delete(m, field)
		return m
	}

	cases := []struct {
		name string
		doc  any
	}{
		{"top-level array", []any{rsaJWK(t)}},
		{"top-level string", "not an object"},
		{"top-level number", 42},
		{"empty key set", map[string]any{"keys": []any{}}},
		{"key set of scalars", map[string]any{"keys": []any{"nope"}}},
		{"no key fields at all", map[string]any{"foo": "bar"}},
		{"construction failure", map[string]any{
			"kty": "RSA", "kid": "k", "n": "!!!", "e": "AQAB", "d": "!!!",
		}},
	}
	for _, f := range requiredFields {
		cases = append(cases, struct {
			name string
			doc  any
		}{fmt.Sprintf("missing %s", f), missing(f)})
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(writeJSON(t, tc.doc))
			if !errors.Is(err, ErrBadKey) {
				t.Errorf("expected ErrBadKey, got %v", err)
			}
		})
	}
}
