package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"growkit-storefront/internal/catalog"
	"growkit-storefront/internal/domain"
)

type ProductWriter interface {
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads catalog CSV exports and inserts products. Expected
// headers: name, category, description, price, chargeable_kg, in_stock,
// stock_count, image_url, variants. Rows with a blank name are continuation
// rows contributing extra image URLs to the product above them.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

type csvRow struct {
	Name         string
	Category     string
	Desc         string
	Price        float64
	PriceOK      bool
	ChargeableKg float64
	InStock      bool
	StockCount   int
	ImageURLs    []string
	Variants     []domain.Variant
}

// Run parses CSV rows and saves one product per named row.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var (
		current  *csvRow
		imported int
	)

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		row := parseRow(record, index)
		if row == nil {
			continue
		}

		if row.Name != "" {
			if current != nil {
				if err := i.save(ctx, current); err != nil {
					return imported, err
				}
				imported++
			}
			current = row
			continue
		}

		// Continuation rows (images) belong to the current product.
		if current != nil && len(row.ImageURLs) > 0 {
			current.ImageURLs = append(current.ImageURLs, row.ImageURLs...)
		}
	}

	if current != nil {
		if err := i.save(ctx, current); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, row *csvRow) error {
	if row.Name == "" || row.Category == "" || !row.PriceOK {
		return fmt.Errorf("invalid product row (missing required fields) for %q", row.Name)
	}

	p := domain.Product{
		Name:         row.Name,
		Category:     row.Category,
		Description:  row.Desc,
		BasePrice:    row.Price,
		ChargeableKg: row.ChargeableKg,
		InStock:      row.InStock,
		StockCount:   row.StockCount,
		ImageURLs:    row.ImageURLs,
		Variants:     row.Variants,
		Active:       true,
	}

	if _, err := i.productRepo.Create(ctx, p); err != nil {
		return fmt.Errorf("create product %q: %w", row.Name, err)
	}
	return nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) *csvRow {
	name := pick(record, index, "name")
	imageURL := pick(record, index, "image_url")

	if name == "" && imageURL == "" {
		return nil
	}

	row := &csvRow{
		Name:     name,
		Category: pick(record, index, "category"),
		Desc:     pick(record, index, "description"),
	}
	if imageURL != "" {
		row.ImageURLs = []string{imageURL}
	}
	if name == "" {
		return row
	}

	// Prices arrive as shop-format currency strings ("R249", "1 299,50").
	row.Price, row.PriceOK = catalog.ParsePrice(pick(record, index, "price"))

	if kgStr := pick(record, index, "chargeable_kg"); kgStr != "" {
		kg, err := strconv.ParseFloat(strings.ReplaceAll(kgStr, ",", "."), 64)
		if err == nil && kg >= 0 {
			row.ChargeableKg = kg
		}
	}

	inStock := strings.ToLower(pick(record, index, "in_stock"))
	row.InStock = inStock == "" || inStock == "true" || inStock == "yes" || inStock == "1"

	if countStr := pick(record, index, "stock_count"); countStr != "" {
		if n, err := strconv.Atoi(countStr); err == nil && n >= 0 {
			row.StockCount = n
		}
	}

	if rawVariants := pick(record, index, "variants"); rawVariants != "" {
		row.Variants = catalog.NormalizeVariants(rawVariants)
	}

	return row
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
