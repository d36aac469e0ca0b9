package checkout

import (
	"context"
	"errors"
	"fmt"

	"growkit-storefront/internal/cart"
	"growkit-storefront/internal/domain"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	// ErrEmptyCart means there is nothing to check out.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrOverMaxWeight means the cart's chargeable weight exceeds the
	// configured courier ceiling and needs a custom quote.
	ErrOverMaxWeight = errors.New("cart exceeds the courier weight limit")
	// ErrInvalidAddress wraps address validation failures.
	ErrInvalidAddress = errors.New("invalid address")
)

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
}

// Service turns a session cart into a persisted order. The checkout is a
// stand-in: the order is recorded as placed and no payment gateway is
// involved.
type Service struct {
	orders   orderRepo
	validate *validatorv10.Validate
	// maxKg is a policy on top of the fee engine, not part of it: the
	// calculator extrapolates indefinitely, the shop stops taking orders
	// here. Zero disables the check.
	maxKg float64
}

func New(orders orderRepo, maxKg float64) *Service {
	return &Service{
		orders:   orders,
		validate: validatorv10.New(),
		maxKg:    maxKg,
	}
}

// AddressInput is the shipping address form.
type AddressInput struct {
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Line1      string `json:"line1" validate:"required"`
	Suburb     string `json:"suburb" validate:"required"`
	City       string `json:"city" validate:"required"`
	Province   string `json:"province" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
}

// PlaceOrder reads the cart's totals once, applies the weight policy,
// persists the order snapshot and clears the cart.
func (s *Service) PlaceOrder(ctx context.Context, store *cart.Store, in AddressInput) (*domain.Order, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	lines := store.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	totals := store.Totals()
	if s.maxKg > 0 && totals.TotalKg > s.maxKg {
		return nil, ErrOverMaxWeight
	}

	order := domain.Order{
		ID:             uuid.NewString(),
		Lines:          lines,
		ItemsTotal:     totals.ItemsTotal,
		TotalKg:        totals.TotalKg,
		CourierFee:     totals.CourierFee,
		CourierBracket: string(totals.CourierBracket),
		GrandTotal:     totals.GrandTotal,
		Address: domain.Address{
			FirstName:  in.FirstName,
			LastName:   in.LastName,
			Email:      in.Email,
			Phone:      in.Phone,
			Line1:      in.Line1,
			Suburb:     in.Suburb,
			City:       in.City,
			Province:   in.Province,
			PostalCode: in.PostalCode,
		},
		State: domain.OrderStatePlaced,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	store.Clear()
	return created, nil
}
