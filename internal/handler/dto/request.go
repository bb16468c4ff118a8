package dto

type CreateBusinessRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required"`
}

type CreateRoomRequest struct {
	Number        string  `json:"number" binding:"required"`
	Type          string  `json:"type" binding:"required"`
	Capacity      int     `json:"capacity" binding:"required,gt=0"`
	PricePerNight float64 `json:"price_per_night" binding:"required,gt=0"`
	Currency      string  `json:"currency" binding:"required"`
}

type UpdateRoomRequest struct {
	Type          *string  `json:"type"`
	Capacity      *int     `json:"capacity"`
	PricePerNight *float64 `json:"price_per_night"`
	Currency      *string  `json:"currency"`
	IsActive      *bool    `json:"is_active"`
}

type CreateTableRequest struct {
	Number   string `json:"number" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
	Location string `json:"location" binding:"required"`
}

type UpdateTableRequest struct {
	Capacity *int    `json:"capacity"`
	Location *string `json:"location"`
	IsActive *bool   `json:"is_active"`
}

type CreateReservationRequest struct {
	BusinessID   string  `json:"business_id" binding:"required,uuid"`
	CustomerID   string  `json:"customer_id" binding:"required,uuid"`
	ResourceType string  `json:"resource_type" binding:"required"`
	StartDate    string  `json:"start_date" binding:"required"`
	EndDate      string  `json:"end_date" binding:"required"`
	Guests       int     `json:"guests" binding:"required,gt=0"`
	TotalAmount  float64 `json:"total_amount" binding:"required,gt=0"`
	Currency     string  `json:"currency" binding:"required"`
	Notes        string  `json:"notes"`
	RoomID       *string `json:"room_id"`
	TableID      *string `json:"table_id"`
}

type UpdateReservationRequest struct {
	Notes       *string  `json:"notes"`
	TotalAmount *float64 `json:"total_amount"`
	Currency    *string  `json:"currency"`
}
