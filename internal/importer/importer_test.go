package importer

import (
	"context"
	"strings"
	"testing"

	"growkit-storefront/internal/domain"
)

type stubProductRepo struct {
	items []domain.Product
}

func (s *stubProductRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.items = append(s.items, p)
	return &p, nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `name,category,description,price,chargeable_kg,in_stock,stock_count,image_url,variants
Lion's Mane Grow Kit,Mushroom Grow Kits,Ready to fruit,R249,1.5,true,12,https://example.com/lion1.jpg,
,,,,,,,https://example.com/lion2.jpg,
Oyster Grain Spawn,Mushroom Grain & Cultures,Colonised rye,120,1,yes,20,,"[{""id"":""spawn-1"",""unit"":""kg"",""size"":""1"",""price"":120}]"`

	repo := &stubProductRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 products imported, got %d", count)
	}
	if len(repo.items) != 2 {
		t.Fatalf("expected 2 products saved, got %d", len(repo.items))
	}

	first := repo.items[0]
	if first.Name != "Lion's Mane Grow Kit" || first.BasePrice != 249 || first.ChargeableKg != 1.5 {
		t.Fatalf("unexpected product data: %+v", first)
	}
	if len(first.ImageURLs) != 2 {
		t.Fatalf("expected continuation-row image to attach, got %v", first.ImageURLs)
	}
	if !first.InStock || first.StockCount != 12 || !first.Active {
		t.Fatalf("unexpected stock fields: %+v", first)
	}

	second := repo.items[1]
	if len(second.Variants) != 1 || second.Variants[0].ID != "spawn-1" || second.Variants[0].Unit != domain.UnitKilogram {
		t.Fatalf("variants not normalized: %+v", second.Variants)
	}
}

func TestCSVImporter_RunBadPrice(t *testing.T) {
	csvData := `name,category,price
Broken Product,Mushroom Grow Kits,not-a-price`

	repo := &stubProductRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo)

	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected error for unparsable price")
	}
	if len(repo.items) != 0 {
		t.Fatalf("invalid row must not be saved, got %+v", repo.items)
	}
}

func TestCSVImporter_RunHeaderOrderIndependent(t *testing.T) {
	csvData := `price,name,category,stock_count
R99,Blue Oyster Grow Kit,Mushroom Grow Kits,3`

	repo := &stubProductRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 1 || repo.items[0].BasePrice != 99 || repo.items[0].StockCount != 3 {
		t.Fatalf("unexpected import: count=%d items=%+v", count, repo.items)
	}
}
