package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or unverifiable credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates a session token that was presented but failed verification.
var ErrForbidden = errors.New("forbidden")

// ErrUpstream indicates a failed call to the external video provider.
var ErrUpstream = errors.New("upstream provider error")

// ErrMisconfigured indicates a required provider credential is absent
// from the process configuration.
var ErrMisconfigured = errors.New("provider not configured")
