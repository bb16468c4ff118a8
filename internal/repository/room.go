package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Franklin-Osede/bookly/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RoomRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRoomRepo(db *dbpg.DB) *RoomRepository {
	return &RoomRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const roomColumns = `id, business_id, number, type, capacity, price_per_night, currency, is_active, created_at, updated_at`

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `INSERT INTO rooms (` + roomColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		room.ID, room.BusinessID, room.Number, room.Type, room.Capacity,
		room.PricePerNight.Amount(), room.PricePerNight.Currency(),
		room.IsActive, room.CreatedAt, room.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateResourceNumber
		}
		return fmt.Errorf("insert room: %w", err)
	}

	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("get room: %w", err)
	}

	return scanRoom(row)
}

func (r *RoomRepository) GetByNumber(ctx context.Context, businessID, number string) (*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE business_id = $1 AND number = $2`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, businessID, number)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("get room by number: %w", err)
	}

	return scanRoom(row)
}

func (r *RoomRepository) ListByBusiness(ctx context.Context, businessID string) ([]*domain.Room, error) {
	query := `SELECT ` + roomColumns + `
			  FROM rooms
			  WHERE business_id = $1
			  ORDER BY number`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var res []*domain.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, room)
	}

	return res, rows.Err()
}

func (r *RoomRepository) Update(ctx context.Context, id string, upd domain.RoomUpdate) (*domain.Room, error) {
	var price, currency interface{}
	if upd.PricePerNight != nil {
		price = upd.PricePerNight.Amount()
		currency = string(upd.PricePerNight.Currency())
	}

	query := `UPDATE rooms
			  SET type = COALESCE($2::TEXT, type),
			      capacity = COALESCE($3::INT, capacity),
			      price_per_night = COALESCE($4::NUMERIC, price_per_night),
			      currency = COALESCE($5::TEXT, currency),
			      is_active = COALESCE($6::BOOLEAN, is_active),
			      updated_at = now()
			  WHERE id = $1
			  RETURNING ` + roomColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		id, upd.Type, upd.Capacity, price, currency, upd.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("update room: %w", err)
	}

	return scanRoom(row)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var room domain.Room
	var amount, currency string
	if err := row.Scan(
		&room.ID, &room.BusinessID, &room.Number, &room.Type, &room.Capacity,
		&amount, &currency, &room.IsActive, &room.CreatedAt, &room.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("scan room: %w", err)
	}

	price, err := domain.NewMoneyFromString(amount, domain.Currency(currency))
	if err != nil {
		return nil, fmt.Errorf("room price: %w", err)
	}
	room.PricePerNight = price

	return &room, nil
}
