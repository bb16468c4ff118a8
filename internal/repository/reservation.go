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

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const reservationColumns = `id, business_id, customer_id, resource_type, status, start_date, end_date,
		guests, total_amount, currency, notes, room_id, table_id, created_at, updated_at`

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `INSERT INTO reservations (` + reservationColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		res.ID, res.BusinessID, res.CustomerID, res.ResourceType, res.Status,
		res.Range.Start(), res.Range.End(), res.Guests,
		res.Total.Amount(), res.Total.Currency(), res.Notes,
		res.RoomID, res.TableID, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}

	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	return scanReservation(row)
}

// ListOverlapping returns every non-cancelled reservation of the business whose
// range touches [start, end]. Endpoints count as overlap, matching DateRange.Overlaps.
func (r *ReservationRepository) ListOverlapping(ctx context.Context, businessID string, start, end time.Time) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE business_id = $1
			    AND status = ANY($2)
			    AND start_date <= $4
			    AND end_date >= $3
			  ORDER BY start_date`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		businessID, pq.Array(domain.NonCancelledStatuses), start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("list overlapping reservations: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) ListByBusiness(ctx context.Context, businessID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE business_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus, updatedAt time.Time) error {
	query := `UPDATE reservations SET status = $2, updated_at = $3 WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status, updatedAt)
	if err != nil {
		return fmt.Errorf("update reservation status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, id string, upd domain.ReservationUpdate) (*domain.Reservation, error) {
	var amount, currency interface{}
	if upd.Total != nil {
		amount = upd.Total.Amount()
		currency = string(upd.Total.Currency())
	}

	query := `UPDATE reservations
			  SET notes = COALESCE($2::TEXT, notes),
			      total_amount = COALESCE($3::NUMERIC, total_amount),
			      currency = COALESCE($4::TEXT, currency),
			      updated_at = now()
			  WHERE id = $1
			  RETURNING ` + reservationColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, upd.Notes, amount, currency)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("update reservation: %w", err)
	}

	return scanReservation(row)
}

func (r *ReservationRepository) CancelStalePending(ctx context.Context, olderThan time.Duration) ([]*domain.Reservation, error) {
	query := `UPDATE reservations
			  SET status = $2, updated_at = now()
			  WHERE status = $1
			    AND created_at + make_interval(secs => $3) < now()
			  RETURNING ` + reservationColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.ReservationStatusPending, domain.ReservationStatusCancelled,
		olderThan.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("cancel stale reservations: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func collectReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	var res []*domain.Reservation
	for rows.Next() {
		rsv, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, rsv)
	}

	return res, rows.Err()
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var rsv domain.Reservation
	var start, end time.Time
	var amount, currency string
	if err := row.Scan(
		&rsv.ID, &rsv.BusinessID, &rsv.CustomerID, &rsv.ResourceType, &rsv.Status,
		&start, &end, &rsv.Guests, &amount, &currency, &rsv.Notes,
		&rsv.RoomID, &rsv.TableID, &rsv.CreatedAt, &rsv.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	rng, err := domain.NewDateRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("reservation range: %w", err)
	}
	rsv.Range = rng

	total, err := domain.NewMoneyFromString(amount, domain.Currency(currency))
	if err != nil {
		return nil, fmt.Errorf("reservation total: %w", err)
	}
	rsv.Total = total

	return &rsv, nil
}
