package pemkey

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func pkcs8PEM(t *testing.T, key any) []byte {
	t.Helper()
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		t.Fatalf("marshal pkcs8: %v", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})
}

func TestReadValidKeys(t *testing.T) {
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate RSA: %v", err)
	}
	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate EC: %v", err)
	}
	_, edKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate Ed25519: %v", err)
	}

	pkcs1 := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(rsaKey),
	})
	ecDER, err := x509.MarshalECPrivateKey(ecKey)
	if err != nil {
		t.Fatalf("marshal ec: %v", err)
	}
	sec1 := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: ecDER})

	cases := []struct {
		name string
		data []byte
		want func(key any) bool
	}{
		{"rsa pkcs1", pkcs1, func(k any) bool { _, ok := k.(*rsa.PrivateKey); return ok }},
		{"rsa pkcs8", pkcs8PEM(t, rsaKey), func(k any) bool { _, ok := k.(*rsa.PrivateKey); return ok }},
		{"ec sec1", sec1, func(k any) bool { _, ok := k.(*ecdsa.PrivateKey); return ok }},
		{"ec pkcs8", pkcs8PEM(t, ecKey), func(k any) bool { _, ok := k.(*ecdsa.PrivateKey); return ok }},
		{"ed25519 pkcs8", pkcs8PEM(t, edKey), func(k any) bool { _, ok := k.(ed25519.PrivateKey); return ok }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := Read(writeFile(t, "key.pem", tc.data))
			if err != nil {
				t.Fatalf("Read failed: %v", err)
			}
			if !tc.want(key) {
				t.Errorf("unexpected handle type %T", key)
			}
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read("/nonexistent/key.pem")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReadGarbage(t *testing.T) {
	for _, tc := range []struct {
		name string
		data []byte
	}{
		{"not pem", []byte("this is not a key")},
		{"empty", nil},
		{"pem wrong content", pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: []byte("junk")})},
		{"pem wrong type", pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: []byte{0x30}})},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(writeFile(t, "bad.pem", tc.data))
			if !errors.Is(err, ErrBadKey) {
				t.Errorf("expected ErrBadKey, got %v", err)
			}
		})
	}
}

func TestReadEncrypted(t *testing.T) {
	t.Run("pkcs8 block type", func(t *testing.T) {
		data := pem.EncodeToMemory(&pem.Block{Type: "ENCRYPTED PRIVATE KEY", Bytes: []byte{0x30}})
		_, err := Read(writeFile(t, "enc.pem", data))
		if !errors.Is(err, ErrEncrypted) {
			t.Errorf("expected ErrEncrypted, got %v", err)
		}
	})

	t.Run("legacy proc-type header", func(t *testing.T) {
		data := pem.EncodeToMemory(&pem.Block{
			Type: "RSA PRIVATE KEY",
			Headers: map[string]string{
				"Proc-Type": "4,ENCRYPTED",
				"DEK-Info":  "AES-128-CBC,0102030405060708090A0B0C0D0E0F10",
			},
			Bytes: []byte{0x30},
		})
		_, err := Read(writeFile(t, "enc.pem", data))
		if !errors.Is(err, ErrEncrypted) {
			t.Errorf("expected ErrEncrypted, got %v", err)
		}
	})
}

func TestReadUnreadablePath(t *testing.T) {
	// A directory path fails the read with an error that is neither
	// not-found nor a key classification; it must surface raw.
	_, err := Read(t.TempDir())
	if err == nil {
		t.Fatal("expected error for directory path")
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrBadKey) || errors.Is(err, ErrEncrypted) {
		t.Errorf("directory read should stay unclassified, got %v", err)
	}
}
