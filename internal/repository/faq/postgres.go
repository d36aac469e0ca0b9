package faq

import (
	"context"
	"errors"

	"growkit-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.FAQ, error) {
	const q = `
SELECT id::text, question, answer, position, created_at
FROM faqs
ORDER BY position ASC, created_at ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.FAQ
	for rows.Next() {
		var f domain.FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.Position, &f.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Create(ctx context.Context, f domain.FAQ) (*domain.FAQ, error) {
	const q = `
INSERT INTO faqs (question, answer, position)
VALUES ($1, $2, $3)
RETURNING id::text, created_at
`
	if err := r.pool.QueryRow(ctx, q, f.Question, f.Answer, f.Position).Scan(&f.ID, &f.CreatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *postgresRepo) Update(ctx context.Context, f domain.FAQ) (*domain.FAQ, error) {
	const q = `
UPDATE faqs SET question = $2, answer = $3, position = $4
WHERE id::text = $1
RETURNING created_at
`
	if err := r.pool.QueryRow(ctx, q, f.ID, f.Question, f.Answer, f.Position).Scan(&f.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM faqs WHERE id::text = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
