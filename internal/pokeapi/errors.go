package pokeapi

import (
	"errors"
	"fmt"
	"net/http"
)

// FailureKind classifies why a fetch failed.
type FailureKind int

const (
	// KindTransport covers network-level failures (DNS, refused, reset, cancelled).
	KindTransport FailureKind = iota
	// KindHTTP means the API answered with a non-2xx status.
	KindHTTP
	// KindDecode means the body was not the JSON document we expected.
	KindDecode
)

func (k FailureKind) String() string {
	switch k {
	case KindHTTP:
		return "http"
	case KindDecode:
		return "decode"
	default:
		return "transport"
	}
}

// FetchError is returned by every Client operation that fails.
type FetchError struct {
	Kind   FailureKind
	Status int    // set for KindHTTP
	Target string // "pokemon list" or the requested id/name
	Err    error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindHTTP:
		return fmt.Sprintf("fetch %s: api returned status %d", e.Target, e.Status)
	default:
		if e.Err == nil {
			return fmt.Sprintf("fetch %s: %s error", e.Target, e.Kind)
		}
		return fmt.Sprintf("fetch %s: %v", e.Target, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is an HTTP 404 from the API.
func IsNotFound(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == KindHTTP && fe.Status == http.StatusNotFound
}

// KindOf returns the failure kind carried by err, or KindTransport when err
// is not a *FetchError.
func KindOf(err error) FailureKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindTransport
}
