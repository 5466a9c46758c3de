package domain

import (
	"errors"
	"fmt"
)

// ProviderErrorKind classifies failures of the mapping provider
type ProviderErrorKind string

const (
	ProviderUnavailable ProviderErrorKind = "provider_unavailable"
	ProviderTimeout     ProviderErrorKind = "provider_timeout"
	NoRouteFound        ProviderErrorKind = "no_route_found"
	InvalidLocation     ProviderErrorKind = "invalid_location"
	RateLimited         ProviderErrorKind = "rate_limited"
)

// ProviderError - typed failure of a gateway operation
type ProviderError struct {
	Kind   ProviderErrorKind
	Op     string
	Status string
	Err    error
}

func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Status != "" {
		msg += " (" + e.Status + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ProviderErrorKindOf extracts the kind of a provider error anywhere in the chain
func ProviderErrorKindOf(err error) (ProviderErrorKind, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return "", false
}
