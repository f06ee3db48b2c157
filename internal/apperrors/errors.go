package apperrors

import "errors"

// ErrNotFound marks a resource that does not exist or is not visible to the
// caller. Ownership mismatches surface as ErrNotFound rather than a
// permission error.
var ErrNotFound = errors.New("resource not found")

// ErrValidation marks input that failed a business-rule check.
var ErrValidation = errors.New("validation error")

// ErrDuplicate marks a create that collided with an existing resource.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")
