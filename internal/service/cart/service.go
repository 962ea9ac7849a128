package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cartledger "storefront/internal/cart"
	"storefront/internal/domain"
	cartrepo "storefront/internal/repository/cart"
)

// ErrInvalidInput marks caller mistakes the HTTP layer maps to 400.
var ErrInvalidInput = errors.New("invalid input")

// Service exposes the session cart: each operation loads the session's
// ledger, applies the mutation, and returns the resulting view. The catalog
// seeds line snapshots; the ledger never re-reads the catalog afterwards.
type Service struct {
	carts    cartrepo.Repository
	products productRepo
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(carts cartrepo.Repository, products productRepo) *Service {
	return &Service{carts: carts, products: products}
}

// View is the cart representation returned to clients.
type View struct {
	Items         []cartledger.LineItem `json:"items"`
	SubtotalCents int64                 `json:"subtotalCents"`
	ItemCount     int                   `json:"itemCount"`
}

func (s *Service) ledger(ctx context.Context, sessionID string) (*cartledger.Ledger, error) {
	return cartledger.NewLedger(ctx, cartrepo.ForSession(s.carts, sessionID))
}

func view(l *cartledger.Ledger) *View {
	items := l.Items()
	if items == nil {
		items = []cartledger.LineItem{}
	}
	return &View{
		Items:         items,
		SubtotalCents: l.SubtotalCents(),
		ItemCount:     l.ItemCount(),
	}
}

func (s *Service) Get(ctx context.Context, sessionID string) (*View, error) {
	l, err := s.ledger(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return view(l), nil
}

// AddItemInput identifies the product and variant selection to add.
type AddItemInput struct {
	ProductID        string            `json:"productId"`
	Quantity         int               `json:"quantity"`
	SelectedVariants map[string]string `json:"selectedVariants"`
}

// AddItem snapshots the product into a line item and merges it into the
// session's ledger. The selected variants must match the product's variant
// axes and offered options.
func (s *Service) AddItem(ctx context.Context, sessionID string, in AddItemInput) (*View, error) {
	if in.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}
	if strings.TrimSpace(in.ProductID) == "" {
		return nil, fmt.Errorf("%w: productId required", ErrInvalidInput)
	}

	product, err := s.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, domain.ErrNotFound
	}
	if err := validateVariants(product.Variants, in.SelectedVariants); err != nil {
		return nil, err
	}

	l, err := s.ledger(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := l.Add(ctx, cartledger.LineItem{
		ProductID:        product.ID,
		Name:             product.Name,
		Image:            product.FirstImage(),
		PriceCents:       product.PriceCents,
		Quantity:         in.Quantity,
		SelectedVariants: in.SelectedVariants,
	}); err != nil {
		return nil, err
	}
	return view(l), nil
}

func validateVariants(offered []domain.Variant, selected map[string]string) error {
	for name, value := range selected {
		var axis *domain.Variant
		for i := range offered {
			if offered[i].Name == name {
				axis = &offered[i]
				break
			}
		}
		if axis == nil {
			return fmt.Errorf("%w: unknown variant %q", ErrInvalidInput, name)
		}
		found := false
		for _, opt := range axis.Options {
			if opt == value {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %q is not an option of variant %q", ErrInvalidInput, value, name)
		}
	}
	return nil
}

// UpdateItemInput sets a new quantity. When SelectedVariants is nil the
// update applies to every line of the product; when set, only the matching
// variant line is touched.
type UpdateItemInput struct {
	Quantity         int               `json:"quantity"`
	SelectedVariants map[string]string `json:"selectedVariants"`
}

func (s *Service) UpdateItem(ctx context.Context, sessionID, productID string, in UpdateItemInput) (*View, error) {
	l, err := s.ledger(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if in.SelectedVariants != nil {
		err = l.UpdateLineQuantity(ctx, productID, in.SelectedVariants, in.Quantity)
	} else {
		err = l.UpdateQuantity(ctx, productID, in.Quantity)
	}
	if err != nil {
		return nil, err
	}
	return view(l), nil
}

func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) (*View, error) {
	l, err := s.ledger(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := l.Remove(ctx, productID); err != nil {
		return nil, err
	}
	return view(l), nil
}

func (s *Service) Clear(ctx context.Context, sessionID string) error {
	l, err := s.ledger(ctx, sessionID)
	if err != nil {
		return err
	}
	return l.Clear(ctx)
}
