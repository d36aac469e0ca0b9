// Package enquiry builds the WhatsApp deep links used for categories that
// never enter the cart. The actual messaging happens outside this system;
// this is pure link construction.
package enquiry

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"growkit-storefront/internal/domain"
)

// ErrNoNumber means no shop WhatsApp number is configured, so enquiry
// links cannot be built.
var ErrNoNumber = errors.New("no whatsapp number configured")

type Service struct {
	digits string
}

// New keeps only the digits of the configured number; wa.me links accept
// nothing else.
func New(number string) *Service {
	return &Service{digits: onlyDigits(number)}
}

// Link returns the wa.me URL for an enquiry about a product, optionally a
// specific variant and quantity.
func (s *Service) Link(p domain.Product, variant *domain.Variant, quantity int) (string, error) {
	if s.digits == "" {
		return "", ErrNoNumber
	}

	msg := fmt.Sprintf("Hi! I'd like to enquire about %s", p.Name)
	if variant != nil {
		msg += fmt.Sprintf(" (%s%s)", variant.Size, variant.Unit)
	}
	if quantity > 1 {
		msg += fmt.Sprintf(" x%d", quantity)
	}
	msg += "."

	return "https://wa.me/" + s.digits + "?text=" + url.QueryEscape(msg), nil
}

func onlyDigits(n string) string {
	var b strings.Builder
	for _, r := range n {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
