package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidInput    = errors.New("invalid input")
	ErrRateLimited     = errors.New("rate limited")
	ErrPaymentRequired = errors.New("payment required")
	ErrProviderFailure = errors.New("provider failure")
	ErrMissingContent  = errors.New("missing content")
	ErrNotConfigured   = errors.New("not configured")
)
