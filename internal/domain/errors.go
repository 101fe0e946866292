package domain

import "errors"

// Provider attempt failures. Any of these makes the dispatcher move on to
// the next provider in the chain; none of them is surfaced to end users
// directly.
var (
	// ErrMissingCredential indicates the provider's API key is not
	// configured. A configuration failure fails the attempt, not the
	// process.
	ErrMissingCredential = errors.New("provider credential not configured")

	// ErrContentBlocked indicates the provider refused to answer for
	// policy reasons. Treated like a transport failure for fallback
	// purposes.
	ErrContentBlocked = errors.New("response blocked by provider")

	// ErrMalformedResponse indicates the provider returned a payload
	// without the expected structure (no choices/candidates).
	ErrMalformedResponse = errors.New("malformed provider response")
)

var (
	// ErrGenerationFailed is returned by the dispatcher once every
	// provider in the chain has failed. It wraps the last provider's
	// error as cause.
	ErrGenerationFailed = errors.New("all providers failed to generate a response")

	// ErrEmptyPrompt rejects a generation request with no prompt text.
	ErrEmptyPrompt = errors.New("prompt is empty")

	// ErrInvalidFormat indicates a provider answered but the workflow
	// could not parse the expected structure out of the text.
	ErrInvalidFormat = errors.New("response in an invalid format")
)

// Persistence and account errors.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrForbidden          = errors.New("not authorized for this resource")
)
