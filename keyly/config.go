package keyly

import (
	"errors"
	"fmt"
)

// Source selects the encoding an extractor expects on disk.
type Source string

const (
	// SourceAuto routes by file extension: .json, .jwk and .jwks go to
	// the JWK extractor, everything else to the PEM extractor.
	SourceAuto Source = "auto"
	SourcePEM  Source = "pem"
	SourceJWK  Source = "jwk"
)

// KeyFile names one key in a configured key set.
type KeyFile struct {
	Name   string
	Path   string
	Source Source // falls back to Config.Source when empty
}

type Config struct {
	Source Source
	Keys   []KeyFile
}

func (c *Config) setDefaults() {
	if c.Source == "" {
		c.Source = SourceAuto
	}
	for i := range c.Keys {
		if c.Keys[i].Source == "" {
			c.Keys[i].Source = c.Source
		}
	}
}

func (c Config) Validate() error {
	if !validSource(c.Source) {
		return fmt.Errorf("%w: %q", ErrUnsupportedSource, c.Source)
	}
	seen := make(map[string]bool, len(c.Keys))
	for _, k := range c.Keys {
		if k.Name == "" {
			return errors.New("key set entry without a name")
		}
		if k.Path == "" {
			return fmt.Errorf("key %q has no path", k.Name)
		}
		if seen[k.Name] {
			return fmt.Errorf("duplicate key name %q", k.Name)
		}
		seen[k.Name] = true
		if !validSource(k.Source) {
			return fmt.Errorf("%w: %q (key %q)", ErrUnsupportedSource, k.Source, k.Name)
		}
	}
	return nil
}

func validSource(s Source) bool {
	switch s {
	case "", SourceAuto, SourcePEM, SourceJWK:
		return true
	}
	return false
}
