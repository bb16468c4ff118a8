package domain

import "errors"

var (
	ErrBusinessNotFound    = errors.New("business not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrTableNotFound       = errors.New("table not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

// Money
var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidCurrency  = errors.New("invalid currency")
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrNegativeResult   = errors.New("operation would result in a negative amount")
	ErrDivisionByZero   = errors.New("division by zero")
)

// DateRange
var (
	ErrMissingDate   = errors.New("missing date")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvertedRange = errors.New("start date must not be after end date")
	ErrPastStartDate = errors.New("start date is in the past")
)

// Reservation
var (
	ErrInvalidDateRange  = errors.New("end date must be after start date")
	ErrInvalidGuestCount = errors.New("guest count must be positive")
	ErrInvalidType       = errors.New("invalid type")
	ErrIllegalTransition = errors.New("illegal status transition")
)

var (
	ErrWrongBusinessType       = errors.New("operation does not match business type")
	ErrDuplicateResourceNumber = errors.New("resource number already exists for this business")
	ErrNoAvailableResources    = errors.New("no available resources for the requested dates")
)

var (
	ErrValidation = errors.New("validation error")
)
