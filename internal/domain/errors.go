package domain

import "errors"

var (
	// ErrConfiguration indicates a required setting is absent or malformed.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidRequest indicates the invocation parameters are unusable.
	ErrInvalidRequest = errors.New("invalid event parameters")

	// ErrNoPeriod indicates no billing period branch was selected.
	ErrNoPeriod = errors.New("no billing period specified")

	// ErrSourceFailure indicates the billing source query failed.
	ErrSourceFailure = errors.New("billing source failure")

	// ErrMalformedRow indicates a cost row failed boundary validation.
	ErrMalformedRow = errors.New("malformed cost row")

	// ErrDeliveryFailed indicates the notification sink reported failure.
	ErrDeliveryFailed = errors.New("notification delivery failed")

	// ErrCacheMiss indicates no cached entry was found.
	ErrCacheMiss = errors.New("cache miss")
)
