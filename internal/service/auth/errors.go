package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrWrongTokenType indicates a token of one type was presented where
	// the other type was required (access vs refresh)
	ErrWrongTokenType = errors.New("wrong token type")

	// ErrInvalidCredentials indicates the email or password did not match
	ErrInvalidCredentials = errors.New("invalid credentials")
)
