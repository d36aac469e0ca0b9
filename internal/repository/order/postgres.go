package order

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"growkit-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const orderColumns = `id::text, lines, items_total, total_kg, courier_fee, courier_bracket, grand_total, address, state, created_at`

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	const q = `
INSERT INTO orders (id, lines, items_total, total_kg, courier_fee, courier_bracket, grand_total, address, state)
VALUES (COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id::text, created_at
`
	lines, err := json.Marshal(o.Lines)
	if err != nil {
		return nil, err
	}
	address, err := json.Marshal(o.Address)
	if err != nil {
		return nil, err
	}
	err = r.pool.QueryRow(ctx, q,
		o.ID, lines, o.ItemsTotal, o.TotalKg, o.CourierFee, o.CourierBracket,
		o.GrandTotal, address, o.State,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		r.logger.Printf("order repo: create error=%v", err)
		return nil, err
	}
	r.logger.Printf("order repo: created id=%s grand_total=%.2f", o.ID, o.GrandTotal)
	return &o, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE id::text = $1`
	o, err := scanOrder(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	return result, rows.Err()
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o          domain.Order
		rawLines   []byte
		rawAddress []byte
	)
	if err := row.Scan(
		&o.ID, &rawLines, &o.ItemsTotal, &o.TotalKg, &o.CourierFee, &o.CourierBracket,
		&o.GrandTotal, &rawAddress, &o.State, &o.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(rawLines) > 0 {
		if err := json.Unmarshal(rawLines, &o.Lines); err != nil {
			return nil, err
		}
	}
	if len(rawAddress) > 0 {
		if err := json.Unmarshal(rawAddress, &o.Address); err != nil {
			return nil, err
		}
	}
	return &o, nil
}
