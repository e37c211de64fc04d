package auth

import "errors"

// Sentinel errors for the reconciliation engine. Handlers map these to HTTP
// statuses; anything else coming out of the engine is a wrapped store error
// and should be treated as ErrStoreUnavailable.
var (
	// ErrInvalidCredentials covers every local-login failure: unknown email,
	// Google-only account, and wrong password are deliberately one error so
	// responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken means an identity with that email already exists
	// (compared case-insensitively).
	ErrEmailTaken = errors.New("email already registered")

	// ErrConflict means a duplicate-key race was detected on create and the
	// single retry lookup still found no row. Callers see this only when
	// something beyond a plain concurrent signup is wrong.
	ErrConflict = errors.New("conflicting concurrent write")

	// ErrStoreUnavailable wraps persistence failures and timeouts.
	ErrStoreUnavailable = errors.New("store unavailable")
)
