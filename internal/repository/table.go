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

type TableRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTableRepo(db *dbpg.DB) *TableRepository {
	return &TableRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const tableColumns = `id, business_id, number, capacity, location, is_active, created_at, updated_at`

func (r *TableRepository) Create(ctx context.Context, t *domain.Table) error {
	query := `INSERT INTO tables (` + tableColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		t.ID, t.BusinessID, t.Number, t.Capacity,
		t.Location, t.IsActive, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateResourceNumber
		}
		return fmt.Errorf("insert table: %w", err)
	}

	return nil
}

func (r *TableRepository) GetByID(ctx context.Context, id string) (*domain.Table, error) {
	query := `SELECT ` + tableColumns + ` FROM tables WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTableNotFound
		}
		return nil, fmt.Errorf("get table: %w", err)
	}

	return scanTable(row)
}

func (r *TableRepository) GetByNumber(ctx context.Context, businessID, number string) (*domain.Table, error) {
	query := `SELECT ` + tableColumns + ` FROM tables WHERE business_id = $1 AND number = $2`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, businessID, number)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTableNotFound
		}
		return nil, fmt.Errorf("get table by number: %w", err)
	}

	return scanTable(row)
}

func (r *TableRepository) ListByBusiness(ctx context.Context, businessID string) ([]*domain.Table, error) {
	query := `SELECT ` + tableColumns + `
			  FROM tables
			  WHERE business_id = $1
			  ORDER BY number`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var res []*domain.Table
	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

func (r *TableRepository) Update(ctx context.Context, id string, upd domain.TableUpdate) (*domain.Table, error) {
	query := `UPDATE tables
			  SET capacity = COALESCE($2::INT, capacity),
			      location = COALESCE($3::TEXT, location),
			      is_active = COALESCE($4::BOOLEAN, is_active),
			      updated_at = now()
			  WHERE id = $1
			  RETURNING ` + tableColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		id, upd.Capacity, upd.Location, upd.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTableNotFound
		}
		return nil, fmt.Errorf("update table: %w", err)
	}

	return scanTable(row)
}

func scanTable(row rowScanner) (*domain.Table, error) {
	var t domain.Table
	if err := row.Scan(
		&t.ID, &t.BusinessID, &t.Number, &t.Capacity,
		&t.Location, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTableNotFound
		}
		return nil, fmt.Errorf("scan table: %w", err)
	}

	return &t, nil
}
