package dto

import (
	"time"

	"github.com/Franklin-Osede/bookly/internal/domain"
)

type BusinessResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
}

type MoneyResponse struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted"`
}

type RoomResponse struct {
	ID            string        `json:"id"`
	BusinessID    string        `json:"business_id"`
	Number        string        `json:"number"`
	Type          string        `json:"type"`
	Capacity      int           `json:"capacity"`
	PricePerNight MoneyResponse `json:"price_per_night"`
	IsActive      bool          `json:"is_active"`
	CreatedAt     string        `json:"created_at"`
}

type TableResponse struct {
	ID         string `json:"id"`
	BusinessID string `json:"business_id"`
	Number     string `json:"number"`
	Capacity   int    `json:"capacity"`
	Location   string `json:"location"`
	IsActive   bool   `json:"is_active"`
	CreatedAt  string `json:"created_at"`
}

type ResourceResponse struct {
	ID       string `json:"id"`
	Number   string `json:"number"`
	Kind     string `json:"kind"`
	Capacity int    `json:"capacity"`
}

type ReservationResponse struct {
	ID           string        `json:"id"`
	BusinessID   string        `json:"business_id"`
	CustomerID   string        `json:"customer_id"`
	ResourceType string        `json:"resource_type"`
	Status       string        `json:"status"`
	StartDate    string        `json:"start_date"`
	EndDate      string        `json:"end_date"`
	Guests       int           `json:"guests"`
	Total        MoneyResponse `json:"total"`
	Notes        string        `json:"notes,omitempty"`
	RoomID       *string       `json:"room_id,omitempty"`
	TableID      *string       `json:"table_id,omitempty"`
	CreatedAt    string        `json:"created_at"`
	UpdatedAt    string        `json:"updated_at"`
}

type OccupancyResponse struct {
	BusinessID    string  `json:"business_id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBusinessResponse(b *domain.Business) BusinessResponse {
	return BusinessResponse{
		ID:        b.ID,
		Name:      b.Name,
		Type:      string(b.Type),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

func ToMoneyResponse(m domain.Money) MoneyResponse {
	return MoneyResponse{
		Amount:    m.Float64(),
		Currency:  string(m.Currency()),
		Formatted: m.String(),
	}
}

func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		ID:            r.ID,
		BusinessID:    r.BusinessID,
		Number:        r.Number,
		Type:          string(r.Type),
		Capacity:      r.Capacity,
		PricePerNight: ToMoneyResponse(r.PricePerNight),
		IsActive:      r.IsActive,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
}

func ToTableResponse(t *domain.Table) TableResponse {
	return TableResponse{
		ID:         t.ID,
		BusinessID: t.BusinessID,
		Number:     t.Number,
		Capacity:   t.Capacity,
		Location:   string(t.Location),
		IsActive:   t.IsActive,
		CreatedAt:  t.CreatedAt.Format(time.RFC3339),
	}
}

func ToResourceResponse(r domain.Resource) ResourceResponse {
	return ResourceResponse{
		ID:       r.ResourceID(),
		Number:   r.ResourceNumber(),
		Kind:     string(r.ResourceKind()),
		Capacity: r.ResourceCapacity(),
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:           r.ID,
		BusinessID:   r.BusinessID,
		CustomerID:   r.CustomerID,
		ResourceType: string(r.ResourceType),
		Status:       string(r.Status),
		StartDate:    r.Range.Start().Format(time.RFC3339),
		EndDate:      r.Range.End().Format(time.RFC3339),
		Guests:       r.Guests,
		Total:        ToMoneyResponse(r.Total),
		Notes:        r.Notes,
		RoomID:       r.RoomID,
		TableID:      r.TableID,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.Format(time.RFC3339),
	}
}
