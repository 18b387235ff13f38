package manifest

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a manifest failed to decode.
type ErrorKind string

const (
	// KindStructural means the document does not match the expected shape:
	// not valid JSON, or a field has the wrong primitive type.
	KindStructural ErrorKind = "structural decode error"

	// KindMalformedIdentifier means a UUID-valued field did not parse.
	KindMalformedIdentifier ErrorKind = "malformed identifier"

	// KindMalformedVersion means a version string or triple was unusable.
	KindMalformedVersion ErrorKind = "malformed version"

	// KindMissingField means a record lacks a field its variant requires,
	// e.g. a script module without an entry point.
	KindMissingField ErrorKind = "missing required field"
)

// DecodeError is the failure type returned by Parse. Path locates the
// offending field in the document, slash-separated with list indices
// (e.g. "modules/2/entry"); it is empty when the whole document is at fault.
type DecodeError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// decodeErr builds a DecodeError with a formatted message.
func decodeErr(kind ErrorKind, path, format string, args ...any) *DecodeError {
	return &DecodeError{Kind: kind, Path: path, Err: fmt.Errorf(format, args...)}
}

// withPath re-locates an error at the given field path, keeping its kind
// when it already is a DecodeError.
func withPath(err error, path string) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return &DecodeError{Kind: de.Kind, Path: path, Err: de.Err}
	}
	return &DecodeError{Kind: KindStructural, Path: path, Err: err}
}
