package errors

import "net/http"

var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrNoRouteFound = New(
		"NO_ROUTE_FOUND",
		"No route found between the given locations",
		http.StatusNotFound,
	)

	ErrProviderUnavailable = New(
		"PROVIDER_UNAVAILABLE",
		"Failed to generate route",
		http.StatusBadGateway,
	)

	ErrProviderTimeout = New(
		"PROVIDER_TIMEOUT",
		"Failed to generate route",
		http.StatusGatewayTimeout,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
