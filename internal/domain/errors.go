package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist (slot, draft, confirmation, or vehicle).
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. malformed date, unknown vehicle type, date not offered).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when the resource is in a state that forbids the
// operation, such as cancelling a slot that is already cancelled.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrReasonRequired is returned by the cancellation service when a confirm is
// attempted while the trimmed reason is empty. The confirmation stays open.
var ErrReasonRequired = errors.New("cancellation reason is required")
