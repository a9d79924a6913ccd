// Package keyly extracts private-key material from on-disk files (PEM
// private keys, JWK/JWKS documents) and reports failures as structured
// validation errors instead of returning at the first native error.
package keyly

import (
	"path/filepath"
	"strings"
)

// Extractor dispatches extraction requests to the configured KeySource.
//
// Concurrency: Extractor holds no mutable state after New and is safe
// for concurrent use; each extraction call is an independent file read.
type Extractor struct {
	cfg     Config
	pem     KeySource
	jwk     KeySource
	metrics MetricsCollector
}

// New creates an Extractor using cfg and optional Options.
func New(cfg Config, opts ...Option) (*Extractor, error) {
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Extractor{cfg: cfg, pem: PEMKeySource{}, jwk: JWKKeySource{}}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Extract runs one extraction for path using the configured source.
func (e *Extractor) Extract(path string) Result {
	return e.extract(e.cfg.Source, path)
}

// ExtractAll extracts every key named in the configured key set,
// sequentially, and returns the results by name. Failures are isolated
// per entry.
func (e *Extractor) ExtractAll() map[string]Result {
	out := make(map[string]Result, len(e.cfg.Keys))
	for _, k := range e.cfg.Keys {
		out[k.Name] = e.extract(k.Source, k.Path)
	}
	return out
}

func (e *Extractor) extract(src Source, path string) Result {
	src = resolveSource(src, path)
	var ks KeySource
	switch src {
	case SourceJWK:
		ks = e.jwk
	default:
		ks = e.pem
	}
	res := ks.Extract(path)
	if e.metrics != nil {
		if res.OK() {
			e.metrics.ExtractOK(src)
		} else {
			e.metrics.ExtractFailed(src, res.Errors[0].Code)
		}
	}
	return res
}

// resolveSource turns auto into a concrete source by extension. The
// decision costs no extra I/O so the one-read-per-extraction contract
// holds.
func resolveSource(src Source, path string) Source {
	if src != "" && src != SourceAuto {
		return src
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jwk", ".jwks":
		return SourceJWK
	default:
		return SourcePEM
	}
}
