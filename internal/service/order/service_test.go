package order

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/checkout"
	"storefront/internal/domain"
	orderrepo "storefront/internal/repository/order"
)

type stubRepo struct {
	created    *domain.Order
	byID       map[string]*domain.Order
	lastFilter orderrepo.ListFilter
	listTotal  int64
	statusArgs []string
}

func newStubRepo() *stubRepo {
	return &stubRepo{byID: map[string]*domain.Order{}}
}

func (s *stubRepo) Create(_ context.Context, o domain.Order) (*domain.Order, error) {
	o.ID = "o1"
	o.OrderNumber = "ORD-1700000000000-1"
	s.created = &o
	return &o, nil
}

func (s *stubRepo) List(_ context.Context, f orderrepo.ListFilter) ([]domain.Order, int64, error) {
	s.lastFilter = f
	return nil, s.listTotal, nil
}

func (s *stubRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	o, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (s *stubRepo) UpdateStatus(_ context.Context, id, status string) (*domain.Order, error) {
	o, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	s.statusArgs = append(s.statusArgs, status)
	o.Status = status
	return o, nil
}

func (s *stubRepo) Stats(_ context.Context) (*orderrepo.Stats, error) {
	return &orderrepo.Stats{TotalOrders: 3}, nil
}

func submission() CreateInput {
	return CreateInput{
		CustomerName:  "Ann",
		CustomerPhone: "+1 555 0100",
		Items: []domain.OrderItem{
			{ProductID: "p1", Name: "Mug", PriceCents: 1299, Quantity: 2},
			{ProductID: "p2", Name: "Ring", PriceCents: 4999, Quantity: 1, SelectedVariants: map[string]string{"color": "Gold"}},
		},
		DeliveryChargeCents: 500,
		Notes:               "  leave at the door  ",
	}
}

func TestCreateRecomputesTotals(t *testing.T) {
	repo := newStubRepo()
	svc := New(repo)

	o, err := svc.Create(context.Background(), submission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.SubtotalCents != 7597 {
		t.Fatalf("expected subtotal 7597, got %d", o.SubtotalCents)
	}
	if o.TotalCents != 8097 {
		t.Fatalf("expected total 8097, got %d", o.TotalCents)
	}
	if o.Status != domain.OrderStatusPending {
		t.Fatalf("new orders must be pending, got %q", o.Status)
	}
	if o.Notes != "leave at the door" {
		t.Fatalf("notes not trimmed: %q", o.Notes)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := New(newStubRepo())
	ctx := context.Background()

	mutate := func(f func(*CreateInput)) CreateInput {
		in := submission()
		f(&in)
		return in
	}

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"no items", mutate(func(in *CreateInput) { in.Items = nil })},
		{"blank name", mutate(func(in *CreateInput) { in.CustomerName = " " })},
		{"blank phone", mutate(func(in *CreateInput) { in.CustomerPhone = "" })},
		{"zero quantity", mutate(func(in *CreateInput) { in.Items[0].Quantity = 0 })},
		{"negative price", mutate(func(in *CreateInput) { in.Items[0].PriceCents = -1 })},
	}
	for _, tc := range cases {
		_, err := svc.Create(ctx, tc.in)
		var verr *checkout.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestListValidatesStatus(t *testing.T) {
	svc := New(newStubRepo())
	if _, _, err := svc.List(context.Background(), ListInput{Status: "shipped"}); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestListDefaultsAndPagination(t *testing.T) {
	repo := newStubRepo()
	repo.listTotal = 41
	svc := New(repo)

	orders, page, err := svc.List(context.Background(), ListInput{Status: domain.OrderStatusPending})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFilter.Page != 1 || repo.lastFilter.Limit != 20 {
		t.Fatalf("expected default paging 1/20, got %d/%d", repo.lastFilter.Page, repo.lastFilter.Limit)
	}
	if repo.lastFilter.Status != domain.OrderStatusPending {
		t.Fatalf("status filter not forwarded: %q", repo.lastFilter.Status)
	}
	if page.Pages != 3 {
		t.Fatalf("expected 3 pages of 41, got %d", page.Pages)
	}
	if orders == nil {
		t.Fatal("orders must be non-nil for JSON encoding")
	}
}

func TestUpdateStatus(t *testing.T) {
	repo := newStubRepo()
	repo.byID["o1"] = &domain.Order{ID: "o1", Status: domain.OrderStatusPending}
	svc := New(repo)
	ctx := context.Background()

	o, err := svc.UpdateStatus(ctx, "o1", domain.OrderStatusConfirmed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Status != domain.OrderStatusConfirmed {
		t.Fatalf("expected confirmed, got %q", o.Status)
	}

	if _, err := svc.UpdateStatus(ctx, "o1", "shipped"); err == nil {
		t.Fatal("expected error for unknown status")
	}
	if _, err := svc.UpdateStatus(ctx, "missing", domain.OrderStatusConfirmed); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
