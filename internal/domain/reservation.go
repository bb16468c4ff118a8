package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ResourceType string

const (
	ResourceTypeHotel      ResourceType = "HOTEL"
	ResourceTypeRestaurant ResourceType = "RESTAURANT"
)

func (t ResourceType) Valid() bool {
	return t == ResourceTypeHotel || t == ResourceTypeRestaurant
}

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
	ReservationStatusCompleted ReservationStatus = "COMPLETED"
)

// NonCancelledStatuses are the statuses that block availability.
var NonCancelledStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusConfirmed,
	ReservationStatusCompleted,
}

// Reservation is a time-bounded booking against a business. Status changes
// only through Confirm/Cancel/Complete; no transition is reversible.
type Reservation struct {
	ID           string            `json:"id"`
	BusinessID   string            `json:"business_id"`
	CustomerID   string            `json:"customer_id"`
	ResourceType ResourceType      `json:"resource_type"`
	Status       ReservationStatus `json:"status"`
	Range        DateRange         `json:"-"`
	Guests       int               `json:"guests"`
	Total        Money             `json:"-"`
	Notes        string            `json:"notes,omitempty"`
	RoomID       *string           `json:"room_id,omitempty"`
	TableID      *string           `json:"table_id,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type CreateReservationInput struct {
	BusinessID   string
	CustomerID   string
	ResourceType ResourceType
	Range        DateRange
	Guests       int
	Total        Money
	Notes        string
	RoomID       *string
	TableID      *string
}

func NewReservation(input CreateReservationInput) (*Reservation, error) {
	// Stricter than DateRange itself: a zero-length reservation is invalid.
	if !input.Range.End().After(input.Range.Start()) {
		return nil, ErrInvalidDateRange
	}
	if input.Guests <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGuestCount, input.Guests)
	}
	if !input.Total.IsPositive() {
		return nil, fmt.Errorf("%w: total amount must be positive", ErrInvalidAmount)
	}
	if !input.ResourceType.Valid() {
		return nil, fmt.Errorf("%w: %q is not a resource type", ErrInvalidType, input.ResourceType)
	}

	now := time.Now().UTC()
	return &Reservation{
		ID:           uuid.New().String(),
		BusinessID:   input.BusinessID,
		CustomerID:   input.CustomerID,
		ResourceType: input.ResourceType,
		Status:       ReservationStatusPending,
		Range:        input.Range,
		Guests:       input.Guests,
		Total:        input.Total,
		Notes:        input.Notes,
		RoomID:       input.RoomID,
		TableID:      input.TableID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (r *Reservation) Confirm() error {
	if r.Status != ReservationStatusPending {
		return fmt.Errorf("%w: only pending reservations can be confirmed", ErrIllegalTransition)
	}
	r.Status = ReservationStatusConfirmed
	r.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *Reservation) Cancel() error {
	if r.Status == ReservationStatusCompleted {
		return fmt.Errorf("%w: completed reservations cannot be cancelled", ErrIllegalTransition)
	}
	r.Status = ReservationStatusCancelled
	r.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *Reservation) Complete() error {
	if r.Status != ReservationStatusConfirmed {
		return fmt.Errorf("%w: only confirmed reservations can be completed", ErrIllegalTransition)
	}
	r.Status = ReservationStatusCompleted
	r.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.Status == ReservationStatusPending || r.Status == ReservationStatusConfirmed
}

func (r *Reservation) UpdateNotes(notes string) {
	r.Notes = notes
	r.UpdatedAt = time.Now().UTC()
}

func (r *Reservation) UpdateTotalAmount(total Money) error {
	if !total.IsPositive() {
		return fmt.Errorf("%w: total amount must be positive", ErrInvalidAmount)
	}
	r.Total = total
	r.UpdatedAt = time.Now().UTC()
	return nil
}

// ReservationUpdate is a typed partial update. Nil fields are left untouched.
// Status is deliberately absent: it changes only through transitions.
type ReservationUpdate struct {
	Notes *string
	Total *Money
}
