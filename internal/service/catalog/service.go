package catalog

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"

	catalognorm "growkit-storefront/internal/catalog"
	"growkit-storefront/internal/domain"
	productrepo "growkit-storefront/internal/repository/product"
)

// Sort options for storefront listings.
const (
	SortFeatured  = "featured"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
)

type Service struct {
	repo productrepo.Repository
	gate *catalognorm.Gate
}

func New(repo productrepo.Repository, gate *catalognorm.Gate) *Service {
	return &Service{repo: repo, gate: gate}
}

// ListInput carries the storefront listing filters. Min/MaxPrice are
// unparsed form values; blank or malformed bounds are ignored rather than
// rejected.
type ListInput struct {
	Query    string
	Category string
	MinPrice string
	MaxPrice string
	Sort     string
}

// Storefront lists purchasable products: active rows only, enquiry-only
// categories excluded (those route to the enquiry flow, not the cart).
func (s *Service) Storefront(ctx context.Context, in ListInput) ([]domain.Product, error) {
	products, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(in.Query))
	categoryNorm := catalognorm.NormCategory(in.Category)
	minPrice, hasMin := catalognorm.ParsePrice(in.MinPrice)
	maxPrice, hasMax := catalognorm.ParsePrice(in.MaxPrice)

	var out []domain.Product
	for _, p := range products {
		if s.gate.IsEnquiryOnly(p.Category) {
			continue
		}
		if categoryNorm != "" && catalognorm.NormCategory(p.Category) != categoryNorm {
			continue
		}
		if query != "" {
			hay := strings.ToLower(p.Name + " " + p.Category)
			if !strings.Contains(hay, query) {
				continue
			}
		}
		price := displayPrice(p)
		if hasMin && price < minPrice {
			continue
		}
		if hasMax && price > maxPrice {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, in.Sort)
	return out, nil
}

// Enquiries lists active products in enquiry-only categories.
func (s *Service) Enquiries(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, err
	}
	var out []domain.Product
	for _, p := range products {
		if s.gate.IsEnquiryOnly(p.Category) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Admin passthrough. Create/Update reject records the storefront could not
// price; everything else is the repository's concern.

func (s *Service) ListAll(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx, true)
}

func (s *Service) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if strings.TrimSpace(p.ID) == "" {
		return nil, errors.New("id required")
	}
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateProduct(p domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name required")
	}
	if strings.TrimSpace(p.Category) == "" {
		return errors.New("category required")
	}
	if math.IsNaN(p.BasePrice) || math.IsInf(p.BasePrice, 0) || p.BasePrice < 0 {
		return errors.New("price must be a non-negative number")
	}
	if math.IsNaN(p.ChargeableKg) || math.IsInf(p.ChargeableKg, 0) || p.ChargeableKg < 0 {
		return errors.New("chargeable weight must be a non-negative number")
	}
	if p.StockCount < 0 {
		return errors.New("stock count must not be negative")
	}
	return nil
}

// displayPrice is what listings filter and sort on: the gate's resolved
// price with no variant selected, i.e. the cheapest variant or the base.
func displayPrice(p domain.Product) float64 {
	return catalognorm.ResolveUnitPrice(p, "")
}

func sortProducts(products []domain.Product, option string) {
	switch option {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return displayPrice(products[i]) < displayPrice(products[j])
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return displayPrice(products[i]) > displayPrice(products[j])
		})
	case SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	case SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) > strings.ToLower(products[j].Name)
		})
	default:
		// featured: newest first, the repository's natural order
	}
}
