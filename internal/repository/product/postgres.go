package product

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"growkit-storefront/internal/catalog"
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

const productColumns = `id::text, name, category, COALESCE(description, ''), price, chargeable_kg, in_stock, stock_count, images, variants, active, created_at`

func (r *postgresRepo) List(ctx context.Context, includeInactive bool) ([]domain.Product, error) {
	q := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	if !includeInactive {
		q = `SELECT ` + productColumns + ` FROM products WHERE active ORDER BY created_at DESC`
	}

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("product repo: list count=%d include_inactive=%v", len(result), includeInactive)
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	q := `SELECT ` + productColumns + ` FROM products WHERE id::text = $1`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("product repo: get id=%s not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, category, description, price, chargeable_kg, in_stock, stock_count, images, variants, active)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10)
RETURNING id::text, created_at
`
	images, variants, err := encodeJSONColumns(p)
	if err != nil {
		return nil, err
	}
	err = r.pool.QueryRow(ctx, q,
		p.Name, p.Category, p.Description, p.BasePrice, p.ChargeableKg,
		p.InStock, p.StockCount, images, variants, p.Active,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: create name=%q error=%v", p.Name, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%s name=%q", p.ID, p.Name)
	return &p, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET name = $2, category = $3, description = NULLIF($4, ''), price = $5, chargeable_kg = $6,
    in_stock = $7, stock_count = $8, images = $9, variants = $10, active = $11
WHERE id::text = $1
RETURNING created_at
`
	images, variants, err := encodeJSONColumns(p)
	if err != nil {
		return nil, err
	}
	err = r.pool.QueryRow(ctx, q,
		p.ID, p.Name, p.Category, p.Description, p.BasePrice, p.ChargeableKg,
		p.InStock, p.StockCount, images, variants, p.Active,
	).Scan(&p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%s error=%v", p.ID, err)
		return nil, err
	}
	r.logger.Printf("product repo: updated id=%s name=%q", p.ID, p.Name)
	return &p, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id::text = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("product repo: deleted id=%s", id)
	return nil
}

// scanProduct reads one row, coercing the loose jsonb columns into strict
// shapes at this boundary so nothing downstream re-checks them.
func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		p           domain.Product
		rawImages   []byte
		rawVariants []byte
	)
	if err := row.Scan(
		&p.ID, &p.Name, &p.Category, &p.Description, &p.BasePrice, &p.ChargeableKg,
		&p.InStock, &p.StockCount, &rawImages, &rawVariants, &p.Active, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(rawImages) > 0 {
		p.ImageURLs = catalog.CoerceImages(rawImages)
	}
	if len(rawVariants) > 0 {
		p.Variants = catalog.NormalizeVariants(rawVariants)
	}
	return &p, nil
}

func encodeJSONColumns(p domain.Product) (images, variants []byte, err error) {
	images, err = json.Marshal(p.ImageURLs)
	if err != nil {
		return nil, nil, err
	}
	variants, err = json.Marshal(p.Variants)
	if err != nil {
		return nil, nil, err
	}
	return images, variants, nil
}
