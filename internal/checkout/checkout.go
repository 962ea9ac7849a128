// Package checkout turns a cart snapshot plus customer contact fields into a
// persistable order and a WhatsApp-ready order summary. Both transforms are
// stateless; the ledger itself is only cleared by the caller after the order
// was accepted.
package checkout

import (
	"fmt"
	"strings"

	"storefront/internal/cart"
	"storefront/internal/domain"
)

// PlaceholderImage is substituted when a cart line carries no image
// reference, so order items always render with one.
const PlaceholderImage = "/uploads/placeholder.jpg"

// ValidationError reports rejected checkout input: missing contact fields or
// an empty cart. Nothing is mutated when it is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Compose builds an order from the given cart lines and contact fields. The
// returned order carries no order number or id; those are assigned on
// submission. Subtotal and total are computed fresh from the lines.
func Compose(lines []cart.LineItem, customerName, customerPhone string, deliveryChargeCents int64) (*domain.Order, error) {
	customerName = strings.TrimSpace(customerName)
	customerPhone = strings.TrimSpace(customerPhone)
	if customerName == "" {
		return nil, &ValidationError{Reason: "customer name required"}
	}
	if customerPhone == "" {
		return nil, &ValidationError{Reason: "customer phone required"}
	}
	if len(lines) == 0 {
		return nil, &ValidationError{Reason: "cart is empty"}
	}
	if deliveryChargeCents < 0 {
		return nil, &ValidationError{Reason: "delivery charge must not be negative"}
	}

	items := make([]domain.OrderItem, 0, len(lines))
	var subtotal int64
	for _, line := range lines {
		image := line.Image
		if image == "" {
			image = PlaceholderImage
		}
		items = append(items, domain.OrderItem{
			ProductID:        line.ProductID,
			Name:             line.Name,
			Image:            image,
			Quantity:         line.Quantity,
			PriceCents:       line.PriceCents,
			SelectedVariants: line.SelectedVariants,
		})
		subtotal += line.PriceCents * int64(line.Quantity)
	}

	return &domain.Order{
		CustomerName:        customerName,
		CustomerPhone:       customerPhone,
		Items:               items,
		SubtotalCents:       subtotal,
		DeliveryChargeCents: deliveryChargeCents,
		TotalCents:          subtotal + deliveryChargeCents,
		Status:              domain.OrderStatusPending,
	}, nil
}

// FormatCents renders an integer cent amount as a currency string with
// exactly two decimal places, e.g. FormatCents(4999, "$") == "$49.99".
func FormatCents(cents int64, symbol string) string {
	return fmt.Sprintf("%s%d.%02d", symbol, cents/100, cents%100)
}
