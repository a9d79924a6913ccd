package keyly

import "errors"

// Result contains the outcome of one extraction attempt.
//
// Extraction is all-or-nothing: Key is non-nil exactly when Errors is
// empty. Result is immutable once returned.
type Result struct {
	// Key is the extracted handle: *rsa.PrivateKey, *ecdsa.PrivateKey
	// or ed25519.PrivateKey for PEM sources, jwk.Key for JWK sources.
	Key any
	// Errors lists the validation failures in the order they were
	// observed. At most one error is recorded per attempt.
	Errors []*ValidationError
}

// OK reports whether the extraction produced a key.
func (r Result) OK() bool { return len(r.Errors) == 0 && r.Key != nil }

// Err returns nil when the extraction succeeded, otherwise the joined
// validation errors wrapped under ErrExtractionFailed.
func (r Result) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Errors)+1)
	errs = append(errs, ErrExtractionFailed)
	for _, ve := range r.Errors {
		errs = append(errs, ve)
	}
	return errors.Join(errs...)
}

func failure(ve *ValidationError) Result {
	return Result{Errors: []*ValidationError{ve}}
}
