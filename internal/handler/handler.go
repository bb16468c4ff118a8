package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/Franklin-Osede/bookly/internal/domain"
	"github.com/Franklin-Osede/bookly/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type CatalogSvc interface {
	CreateBusiness(ctx context.Context, input domain.CreateBusinessInput) (*domain.Business, error)
	GetBusiness(ctx context.Context, id string) (*domain.Business, error)
	CreateRoom(ctx context.Context, input domain.CreateRoomInput) (*domain.Room, error)
	ListRooms(ctx context.Context, businessID string) ([]*domain.Room, error)
	UpdateRoom(ctx context.Context, id string, upd domain.RoomUpdate) (*domain.Room, error)
	CreateTable(ctx context.Context, input domain.CreateTableInput) (*domain.Table, error)
	ListTables(ctx context.Context, businessID string) ([]*domain.Table, error)
	UpdateTable(ctx context.Context, id string, upd domain.TableUpdate) (*domain.Table, error)
}

type AvailabilitySvc interface {
	AvailableResources(ctx context.Context, businessID string, rng domain.DateRange, filter domain.ResourceFilter) ([]domain.Resource, error)
	CheckRoom(ctx context.Context, roomID string, rng domain.DateRange) (bool, error)
	CheckTable(ctx context.Context, tableID string, rng domain.DateRange) (bool, error)
	OccupancyRate(ctx context.Context, businessID string, rng domain.DateRange) (float64, error)
}

type ReservationSvc interface {
	Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListByBusiness(ctx context.Context, businessID string) ([]*domain.Reservation, error)
	Confirm(ctx context.Context, id string) (*domain.Reservation, error)
	Cancel(ctx context.Context, id string) (*domain.Reservation, error)
	Complete(ctx context.Context, id string) (*domain.Reservation, error)
	Update(ctx context.Context, id string, upd domain.ReservationUpdate) (*domain.Reservation, error)
}

type Handler struct {
	catalogService      CatalogSvc
	availabilityService AvailabilitySvc
	reservationService  ReservationSvc
}

func NewHandler(catalogService CatalogSvc, availabilityService AvailabilitySvc, reservationService ReservationSvc) *Handler {
	return &Handler{
		catalogService:      catalogService,
		availabilityService: availabilityService,
		reservationService:  reservationService,
	}
}

// Businesses

func (h *Handler) CreateBusiness(c *ginext.Context) {
	var req dto.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	biz, err := h.catalogService.CreateBusiness(c.Request.Context(), domain.CreateBusinessInput{
		Name: req.Name,
		Type: domain.BusinessType(req.Type),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBusinessResponse(biz))
}

func (h *Handler) GetBusiness(c *ginext.Context) {
	id, ok := h.pathID(c, "id", "invalid business id")
	if !ok {
		return
	}

	biz, err := h.catalogService.GetBusiness(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBusinessResponse(biz))
}

// Rooms

func (h *Handler) CreateRoom(c *ginext.Context) {
	businessID, ok := h.pathID(c, "id", "invalid business id")
	if !ok {
		return
	}

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	price, err := domain.NewMoney(req.PricePerNight, domain.Currency(req.Currency))
	if err != nil {
		h.handleError(c, err)
		return
	}

	room, err := h.catalogService.CreateRoom(c.Request.Context(), domain.CreateRoomInput{
		BusinessID:    businessID,
		Number:        req.Number,
		Type:          domain.RoomType(req.Type),
		Capacity:      req.Capacity,
		PricePerNight: price,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

func (h *Handler) ListRooms(c *ginext.Context) {
	businessID, ok := h.pathID(c, "id", "invalid business id")
	if !ok {
		return
	}

	rooms, err := h.catalogService.ListRooms(c.Request.Context(), businessID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp = append(resp, dto.ToRoomResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateRoom(c *ginext.Context) {
	id, ok := h.pathID(c, "id", "invalid room id")
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	upd := domain.RoomUpdate{
		Capacity: req.Capacity,
		IsActive: req.IsActive,
	}
	if req.Type != nil {
		roomType := domain.RoomType(*req.Type)
		upd.Type = &roomType
	}
	if req.PricePerNight != nil {
		if req.Currency == nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "currency is required with price_per_night"})
			return
		}
		price, err := domain.NewMoney(*req.PricePerNight, domain.Currency(*req.Currency))
		if err != nil {
			h.handleError(c, err)
			return
		}
		upd.PricePerNight = &price
	}

	room, err := h.catalogService.UpdateRoom(c.Request.Context(), id, upd)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

// Tables

func (h *Handler) CreateTable(c *ginext.Context) {
	businessID, ok := h.pathID(c, "id", "invalid business id")
	if !ok {
		return
	}

	var req dto.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	table, err := h.catalogService.CreateTable(c.Request.Context(), domain.CreateTableInput{
		BusinessID: businessID,
		Number:     req.Number,
		Capacity:   req.Capacity,
		Location:   domain.TableLocation(req.Location),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTableResponse(table))
}

func (h *Handler) ListTables(c *ginext.Context) {
	businessID, ok := h.pathID(c, "id", "invalid business id")
	if !ok {
		return
	}

	tables, err := h.catalogService.ListTables(c.Request.Context(), businessID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TableResponse, 0, len(tables))
	for _, t := range tables {
		resp = append(resp, dto.ToTableResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateTable(c *ginext.Context) {
	id, ok := h.pathID(c, "id", "invalid table id")
	if !ok {
		return
	}

	var req dto.UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	upd := domain.TableUpdate{
		Capacity: req.Capacity,
		IsActive: req.IsActive,
	}
	if req.Location != nil {
		location := domain.TableLocation(*req.Location)
		upd.Location = &location
	}

	table, err := h.catalogService.UpdateTable(c.Request.Context(), id, upd)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTableResponse(table))
}

// Availability

func (h *Handler) BusinessAvailability(c *ginext.Context) {
	businessID, ok := h.pathID(c, "id", "invalid business id")
	if !ok {
		return
	}

	rng, ok := h.queryRange(c)
	if !ok {
		return
	}

	filter, ok := h.queryFilter(c)
	if !ok {
		return
	}

	resources, err := h.availabilityService.AvailableResources(c.Request.Context(), businessID, rng, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ResourceResponse, 0, len(resources))
	for _, r := range resources {
		resp = append(resp, dto.ToResourceResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RoomAvailability(c *ginext.Context) {
	id, ok := h.pathID(c, "id", "invalid room id")
	if !ok {
		return
	}

	rng, ok := h.queryRange(c)
	if !ok {
		return
	}

	available, err := h.availabilityService.CheckRoom(c.Request.Context(), id, rng)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"available": available})
}

func (h *Handler) TableAvailability(c *ginext.Context) {
	id, ok := h.pathID(c, "id", "invalid table id")
	if !ok {
		return
	}

	rng, ok := h.queryRange(c)
	if !ok {
		return
	}

	available, err := h.availabilityService.CheckTable(c.Request.Context(), id, rng)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"available": available})
}

func (h *Handler) BusinessOccupancy(c *ginext.Context) {
	businessID, ok := h.pathID(c, "id", "invalid business id")
	if !ok {
		return
	}

	rng, ok := h.queryRange(c)
	if !ok {
		return
	}

	rate, err := h.availabilityService.OccupancyRate(c.Request.Context(), businessID, rng)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OccupancyResponse{
		BusinessID:    businessID,
		StartDate:     c.Query("start"),
		EndDate:       c.Query("end"),
		OccupancyRate: rate,
	})
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rng, err := domain.ParseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	total, err := domain.NewMoney(req.TotalAmount, domain.Currency(req.Currency))
	if err != nil {
		h.handleError(c, err)
		return
	}

	reservation, err := h.reservationService.Create(c.Request.Context(), domain.CreateReservationInput{
		BusinessID:   req.BusinessID,
		CustomerID:   req.CustomerID,
		ResourceType: domain.ResourceType(req.ResourceType),
		Range:        rng,
		Guests:       req.Guests,
		Total:        total,
		Notes:        req.Notes,
		RoomID:       req.RoomID,
		TableID:      req.TableID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id, ok := h.pathID(c, "id", "invalid reservation id")
	if !ok {
		return
	}

	reservation, err := h.reservationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) ListReservations(c *ginext.Context) {
	businessID, ok := h.pathID(c, "id", "invalid business id")
	if !ok {
		return
	}

	reservations, err := h.reservationService.ListByBusiness(c.Request.Context(), businessID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateReservation(c *ginext.Context) {
	id, ok := h.pathID(c, "id", "invalid reservation id")
	if !ok {
		return
	}

	var req dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	upd := domain.ReservationUpdate{Notes: req.Notes}
	if req.TotalAmount != nil {
		if req.Currency == nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "currency is required with total_amount"})
			return
		}
		total, err := domain.NewMoney(*req.TotalAmount, domain.Currency(*req.Currency))
		if err != nil {
			h.handleError(c, err)
			return
		}
		upd.Total = &total
	}

	reservation, err := h.reservationService.Update(c.Request.Context(), id, upd)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) ConfirmReservation(c *ginext.Context) {
	h.transition(c, h.reservationService.Confirm)
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	h.transition(c, h.reservationService.Cancel)
}

func (h *Handler) CompleteReservation(c *ginext.Context) {
	h.transition(c, h.reservationService.Complete)
}

func (h *Handler) transition(c *ginext.Context, apply func(context.Context, string) (*domain.Reservation, error)) {
	id, ok := h.pathID(c, "id", "invalid reservation id")
	if !ok {
		return
	}

	reservation, err := apply(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// Helpers

func (h *Handler) pathID(c *ginext.Context, param, msg string) (string, bool) {
	id := c.Param(param)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}
	return id, true
}

func (h *Handler) queryRange(c *ginext.Context) (domain.DateRange, bool) {
	rng, err := domain.ParseDateRange(c.Query("start"), c.Query("end"))
	if err != nil {
		h.handleError(c, err)
		return domain.DateRange{}, false
	}
	return rng, true
}

func (h *Handler) queryFilter(c *ginext.Context) (domain.ResourceFilter, bool) {
	var filter domain.ResourceFilter

	if v := c.Query("room_type"); v != "" {
		roomType := domain.RoomType(v)
		filter.Room.Type = &roomType
	}
	if v := c.Query("location"); v != "" {
		location := domain.TableLocation(v)
		filter.Table.Location = &location
	}
	if v := c.Query("min_capacity"); v != "" {
		capacity, err := strconv.Atoi(v)
		if err != nil || capacity <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid min_capacity"})
			return filter, false
		}
		filter.Room.MinCapacity = &capacity
		filter.Table.MinCapacity = &capacity
	}
	if v := c.Query("max_price"); v != "" {
		amount, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid max_price"})
			return filter, false
		}
		price, err := domain.NewMoney(amount, domain.Currency(c.Query("currency")))
		if err != nil {
			h.handleError(c, err)
			return filter, false
		}
		filter.Room.MaxPrice = &price
	}

	return filter, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBusinessNotFound),
		errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrTableNotFound),
		errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNoAvailableResources),
		errors.Is(err, domain.ErrDuplicateResourceNumber),
		errors.Is(err, domain.ErrIllegalTransition),
		errors.Is(err, domain.ErrWrongBusinessType):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidCurrency),
		errors.Is(err, domain.ErrCurrencyMismatch),
		errors.Is(err, domain.ErrMissingDate),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvertedRange),
		errors.Is(err, domain.ErrPastStartDate),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrInvalidGuestCount),
		errors.Is(err, domain.ErrInvalidType):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
