package keyly

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedSource = errors.New("unsupported key source")
	ErrExtractionFailed  = errors.New("key extraction failed")
)

// Code is the stable machine-readable identifier of a validation error.
// Codes E001-E004 belong to the PEM extractor, E005-E007 to the JWK
// extractor; E004 doubles as the shared catch-all.
type Code string

const (
	CodePEMNotFound Code = "E001"
	CodePEMBadFile  Code = "E002"
	CodePEMBadKey   Code = "E003"
	CodeUnexpected  Code = "E004"
	CodeJWKNotFound Code = "E005"
	CodeJWKBadFile  Code = "E006"
	CodeJWKBadKey   Code = "E007"
)

// Kind groups codes into the four failure classes shared by both
// extractors.
type Kind int

const (
	KindUnexpected Kind = iota
	KindNotFound
	KindMalformedInput
	KindInvalidKeyMaterial
)

// Kind returns the failure class the code belongs to. Unknown codes
// report KindUnexpected.
func (c Code) Kind() Kind {
	switch c {
	case CodePEMNotFound, CodeJWKNotFound:
		return KindNotFound
	case CodePEMBadFile, CodeJWKBadFile:
		return KindMalformedInput
	case CodePEMBadKey, CodeJWKBadKey:
		return KindInvalidKeyMaterial
	default:
		return KindUnexpected
	}
}

// ValidationError describes a single extraction failure. It is created
// by the extractor that observed the failure and carries the wrapped
// native cause when one exists.
type ValidationError struct {
	Code    Code
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s [%s]: %v", e.Message, e.Code, e.Err)
	}
	return fmt.Sprintf("%s [%s]", e.Message, e.Code)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func newValidationError(code Code, msg string, cause error) *ValidationError {
	return &ValidationError{Code: code, Message: msg, Err: cause}
}
