package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
// Asset invariant violations (negative purchase value, residual above
// purchase, term below the configured minimum, business-use percentage
// outside [0,100], disposal before in-service) are wrapped over this.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrAlreadyDisposed indicates disposal was requested for an asset that is
// already terminal. Disposal is a one-way transition; the second call is
// rejected, not silently overwritten.
var ErrAlreadyDisposed = errors.New("asset already disposed")
