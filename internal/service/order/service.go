package order

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/cart"
	"storefront/internal/checkout"
	"storefront/internal/domain"
	orderrepo "storefront/internal/repository/order"
)

type Service struct {
	repo orderRepo
}

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	List(ctx context.Context, f orderrepo.ListFilter) ([]domain.Order, int64, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error)
	Stats(ctx context.Context) (*orderrepo.Stats, error)
}

func New(repo orderRepo) *Service {
	return &Service{repo: repo}
}

// CreateInput is the public order submission payload. Item prices and
// totals are recomputed server-side; client-supplied totals are ignored.
type CreateInput struct {
	CustomerName        string             `json:"customerName"`
	CustomerPhone       string             `json:"customerPhone"`
	Items               []domain.OrderItem `json:"items"`
	DeliveryChargeCents int64              `json:"deliveryChargeCents"`
	Notes               string             `json:"notes"`
}

// Create validates and persists a new order. Validation and composition run
// through the checkout composer so the same invariants hold for orders
// submitted directly against the API and orders placed through the session
// cart.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return nil, &checkout.ValidationError{Reason: "item quantity must be at least 1"}
		}
		if item.PriceCents < 0 {
			return nil, &checkout.ValidationError{Reason: "item price must not be negative"}
		}
	}

	lines := make([]cart.LineItem, 0, len(in.Items))
	for _, item := range in.Items {
		lines = append(lines, cart.LineItem{
			ProductID:        item.ProductID,
			Name:             item.Name,
			Image:            item.Image,
			PriceCents:       item.PriceCents,
			Quantity:         item.Quantity,
			SelectedVariants: item.SelectedVariants,
		})
	}

	composed, err := checkout.Compose(lines, in.CustomerName, in.CustomerPhone, in.DeliveryChargeCents)
	if err != nil {
		return nil, err
	}
	composed.Notes = strings.TrimSpace(in.Notes)

	return s.repo.Create(ctx, *composed)
}

// ListInput mirrors the admin listing query parameters.
type ListInput struct {
	Status string
	Page   int
	Limit  int
}

const defaultPageSize = 20

// Pagination describes one page of the admin order listing.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

func (s *Service) List(ctx context.Context, in ListInput) ([]domain.Order, *Pagination, error) {
	if in.Status != "" && !domain.ValidOrderStatus(in.Status) {
		return nil, nil, errors.New("unknown status")
	}
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 {
		in.Limit = defaultPageSize
	}

	orders, total, err := s.repo.List(ctx, orderrepo.ListFilter{
		Status: in.Status,
		Page:   in.Page,
		Limit:  in.Limit,
	})
	if err != nil {
		return nil, nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	pages := total / int64(in.Limit)
	if total%int64(in.Limit) != 0 {
		pages++
	}
	return orders, &Pagination{Page: in.Page, Limit: in.Limit, Total: total, Pages: pages}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, errors.New("unknown status")
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) Stats(ctx context.Context) (*orderrepo.Stats, error) {
	return s.repo.Stats(ctx)
}
