package domain

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
)

// ErrValidation marks failures caused by the guest's input. Specific
// reasons are wrapped around it with fmt.Errorf("%w: ...").
var ErrValidation = errors.New("validation error")

// Configuration errors are deliberately not validation errors: the guest
// did nothing wrong, the deployment is missing data.
var (
	ErrHotelNotConfigured = errors.New("no hotel configured")
	ErrRateNotConfigured  = errors.New("no rate configured for room type")
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("operation not permitted for this role")
)
