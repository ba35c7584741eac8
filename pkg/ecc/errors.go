package ecc

import "errors"

// Common errors returned by the ecc package.
var (
	ErrSecretOutOfRange = errors.New("ecc: private key secret outside [1, N)")
	ErrInvalidSecFormat = errors.New("ecc: invalid SEC encoding")
	ErrInfinityPoint    = errors.New("ecc: point at infinity has no SEC encoding")
)
