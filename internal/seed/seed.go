package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"growkit-storefront/internal/domain"
)

// productSeed carries one catalog row. IDs are fixed so re-running the seed
// updates in place instead of duplicating.
type productSeed struct {
	ID           string
	Name         string
	Category     string
	Description  string
	Price        float64
	ChargeableKg float64
	StockCount   int
	Variants     []domain.Variant
}

// Apply inserts starter catalog data for manual testing. It is idempotent
// via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			ID:           "5f1d2c66-0001-4a7e-9b3a-0d9f1b2a0001",
			Name:         "Lion's Mane Grow Kit (2.5L)",
			Category:     "Mushroom Grow Kits",
			Description:  "Ready-to-fruit lion's mane kit. Mist twice daily, harvest in 10-14 days.",
			Price:        249,
			ChargeableKg: 1.5,
			StockCount:   12,
		},
		{
			ID:           "5f1d2c66-0002-4a7e-9b3a-0d9f1b2a0002",
			Name:         "Lion's Mane Grow Kit (5L)",
			Category:     "Mushroom Grow Kits",
			Description:  "Double-size lion's mane kit for bigger flushes.",
			Price:        399,
			ChargeableKg: 2.5,
			StockCount:   8,
		},
		{
			ID:           "5f1d2c66-0003-4a7e-9b3a-0d9f1b2a0003",
			Name:         "King Oyster Grow Kit",
			Category:     "Mushroom Grow Kits",
			Description:  "Thick-stemmed king oysters, two sizes available.",
			Price:        229,
			ChargeableKg: 1.5,
			StockCount:   10,
			Variants: []domain.Variant{
				{ID: "king-25", Unit: domain.UnitLitre, Size: "2.5", Price: 229},
				{ID: "king-50", Unit: domain.UnitLitre, Size: "5", Price: 369},
			},
		},
		{
			ID:           "5f1d2c66-0004-4a7e-9b3a-0d9f1b2a0004",
			Name:         "Pink Oyster Grow Kit (2.5L)",
			Category:     "Mushroom Grow Kits",
			Description:  "Fast and forgiving; fruits in under a week in warm rooms.",
			Price:        219,
			ChargeableKg: 1.5,
			StockCount:   15,
		},
		{
			ID:           "5f1d2c66-0005-4a7e-9b3a-0d9f1b2a0005",
			Name:         "Blue Oyster Grow Kit (2.5L)",
			Category:     "Mushroom Grow Kits",
			Description:  "Cold-tolerant blue oyster kit, a good winter grower.",
			Price:        199,
			ChargeableKg: 1.5,
			StockCount:   15,
		},
		{
			ID:           "5f1d2c66-0006-4a7e-9b3a-0d9f1b2a0006",
			Name:         "Gourmet Starter Bundle",
			Category:     "Mushroom Grow Kits",
			Description:  "Three kits boxed together: lion's mane, pink oyster, blue oyster.",
			Price:        599,
			ChargeableKg: 4.5,
			StockCount:   5,
		},
		{
			ID:           "5f1d2c66-0007-4a7e-9b3a-0d9f1b2a0007",
			Name:         "Oyster Grain Spawn",
			Category:     "Mushroom Grain & Cultures",
			Description:  "Colonised rye grain, sold by the kilogram.",
			Price:        120,
			ChargeableKg: 1,
			StockCount:   20,
			Variants: []domain.Variant{
				{ID: "spawn-1", Unit: domain.UnitKilogram, Size: "1", Price: 120},
				{ID: "spawn-5", Unit: domain.UnitKilogram, Size: "5", Price: 390},
			},
		},
		{
			ID:           "5f1d2c66-0008-4a7e-9b3a-0d9f1b2a0008",
			Name:         "Dried Mugwort",
			Category:     "Bulk Herbal Products",
			Description:  "Bulk dried herb. Pricing and shipping arranged per enquiry.",
			Price:        150,
			ChargeableKg: 0.5,
			StockCount:   50,
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	faqs := []domain.FAQ{
		{
			ID:       "6a2e3d77-0001-4b8f-8c4b-1e0a2c3b0001",
			Question: "How much is courier shipping?",
			Answer:   "R100 up to 5kg, R140 up to 10kg, R180 up to 15kg and R220 up to 20kg. Heavier parcels add R40 per started 5kg block.",
			Position: 1,
		},
		{
			ID:       "6a2e3d77-0002-4b8f-8c4b-1e0a2c3b0002",
			Question: "Why can't I add bulk herbs to my cart?",
			Answer:   "Bulk herbal products are sold by enquiry only. Use the enquire button and we will quote you on WhatsApp.",
			Position: 2,
		},
		{
			ID:       "6a2e3d77-0003-4b8f-8c4b-1e0a2c3b0003",
			Question: "How long does a grow kit last before I start it?",
			Answer:   "Kept cool and out of direct sun, kits stay viable for about a month. Start them sooner for the best flush.",
			Position: 3,
		},
	}

	for _, f := range faqs {
		if err := upsertFAQ(ctx, pool, f); err != nil {
			return fmt.Errorf("upsert faq %q: %w", f.Question, err)
		}
	}

	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (id, name, category, description, price, chargeable_kg, in_stock, stock_count, images, variants, active)
VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7, '[]'::jsonb, $8, TRUE)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    category = EXCLUDED.category,
    description = EXCLUDED.description,
    price = EXCLUDED.price,
    chargeable_kg = EXCLUDED.chargeable_kg,
    stock_count = EXCLUDED.stock_count,
    variants = EXCLUDED.variants
`
	variants, err := json.Marshal(p.Variants)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, q, p.ID, p.Name, p.Category, p.Description, p.Price, p.ChargeableKg, p.StockCount, variants)
	return err
}

func upsertFAQ(ctx context.Context, pool *pgxpool.Pool, f domain.FAQ) error {
	const q = `
INSERT INTO faqs (id, question, answer, position)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE
SET question = EXCLUDED.question,
    answer = EXCLUDED.answer,
    position = EXCLUDED.position
`
	_, err := pool.Exec(ctx, q, f.ID, f.Question, f.Answer, f.Position)
	return err
}
