package cart

import (
	"context"
	"errors"
	"testing"

	cartledger "storefront/internal/cart"
	"storefront/internal/domain"
)

type stubProductRepo struct {
	products map[string]*domain.Product
}

func (s *stubProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

type memoryCartRepo struct {
	items map[string][]cartledger.LineItem
}

func newMemoryCartRepo() *memoryCartRepo {
	return &memoryCartRepo{items: map[string][]cartledger.LineItem{}}
}

func (r *memoryCartRepo) Load(_ context.Context, sessionID string) ([]cartledger.LineItem, error) {
	return r.items[sessionID], nil
}

func (r *memoryCartRepo) Save(_ context.Context, sessionID string, items []cartledger.LineItem) error {
	r.items[sessionID] = items
	return nil
}

func catalog() *stubProductRepo {
	return &stubProductRepo{products: map[string]*domain.Product{
		"p1": {
			ID:         "p1",
			Name:       "Ceramic Mug",
			PriceCents: 1299,
			Images:     []string{"/uploads/mug.jpg"},
			IsActive:   true,
		},
		"p2": {
			ID:         "p2",
			Name:       "Gold Ring",
			PriceCents: 4999,
			IsActive:   true,
			Variants: []domain.Variant{
				{Type: "color", Name: "color", Options: []string{"Gold", "Silver"}},
				{Type: "size", Name: "size", Options: []string{"S", "M", "L"}},
			},
		},
		"p3": {
			ID:         "p3",
			Name:       "Retired Lamp",
			PriceCents: 999,
			IsActive:   false,
		},
	}}
}

func TestAddItemSnapshotsProduct(t *testing.T) {
	svc := New(newMemoryCartRepo(), catalog())

	v, err := svc.AddItem(context.Background(), "s1", AddItemInput{ProductID: "p1", Quantity: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(v.Items))
	}
	line := v.Items[0]
	if line.Name != "Ceramic Mug" || line.PriceCents != 1299 || line.Image != "/uploads/mug.jpg" {
		t.Fatalf("snapshot mismatch: %+v", line)
	}
	if v.SubtotalCents != 2598 || v.ItemCount != 2 {
		t.Fatalf("expected subtotal 2598 count 2, got %d / %d", v.SubtotalCents, v.ItemCount)
	}
}

func TestAddItemMergesAcrossRequests(t *testing.T) {
	svc := New(newMemoryCartRepo(), catalog())
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "p1", Quantity: 1}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	v, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "p1", Quantity: 2})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if len(v.Items) != 1 || v.Items[0].Quantity != 3 {
		t.Fatalf("expected merged line qty 3, got %+v", v.Items)
	}
}

func TestAddItemSessionsAreIsolated(t *testing.T) {
	svc := New(newMemoryCartRepo(), catalog())
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "p1", Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	v, err := svc.Get(ctx, "s2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(v.Items) != 0 {
		t.Fatalf("expected empty cart for other session, got %+v", v.Items)
	}
}

func TestAddItemValidation(t *testing.T) {
	svc := New(newMemoryCartRepo(), catalog())
	ctx := context.Background()

	cases := []struct {
		name string
		in   AddItemInput
		want error
	}{
		{"zero quantity", AddItemInput{ProductID: "p1", Quantity: 0}, ErrInvalidInput},
		{"missing product id", AddItemInput{ProductID: " ", Quantity: 1}, ErrInvalidInput},
		{"unknown product", AddItemInput{ProductID: "nope", Quantity: 1}, domain.ErrNotFound},
		{"inactive product", AddItemInput{ProductID: "p3", Quantity: 1}, domain.ErrNotFound},
		{"unknown variant axis", AddItemInput{ProductID: "p2", Quantity: 1, SelectedVariants: map[string]string{"finish": "Matte"}}, ErrInvalidInput},
		{"unknown variant option", AddItemInput{ProductID: "p2", Quantity: 1, SelectedVariants: map[string]string{"color": "Bronze"}}, ErrInvalidInput},
	}
	for _, tc := range cases {
		if _, err := svc.AddItem(ctx, "s1", tc.in); !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestAddItemAcceptsValidVariantSelection(t *testing.T) {
	svc := New(newMemoryCartRepo(), catalog())

	v, err := svc.AddItem(context.Background(), "s1", AddItemInput{
		ProductID:        "p2",
		Quantity:         1,
		SelectedVariants: map[string]string{"color": "Gold", "size": "M"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Items[0].SelectedVariants["color"] != "Gold" {
		t.Fatalf("variants not carried onto line: %+v", v.Items[0])
	}
}

func TestUpdateItemWithoutVariantsAdjustsAllLines(t *testing.T) {
	svc := New(newMemoryCartRepo(), catalog())
	ctx := context.Background()

	svc.AddItem(ctx, "s1", AddItemInput{ProductID: "p2", Quantity: 1, SelectedVariants: map[string]string{"color": "Gold"}})
	svc.AddItem(ctx, "s1", AddItemInput{ProductID: "p2", Quantity: 1, SelectedVariants: map[string]string{"color": "Silver"}})

	v, err := svc.UpdateItem(ctx, "s1", "p2", UpdateItemInput{Quantity: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, line := range v.Items {
		if line.Quantity != 4 {
			t.Fatalf("expected every line at qty 4, got %+v", v.Items)
		}
	}
}

func TestUpdateItemWithVariantsTargetsOneLine(t *testing.T) {
	svc := New(newMemoryCartRepo(), catalog())
	ctx := context.Background()

	svc.AddItem(ctx, "s1", AddItemInput{ProductID: "p2", Quantity: 1, SelectedVariants: map[string]string{"color": "Gold"}})
	svc.AddItem(ctx, "s1", AddItemInput{ProductID: "p2", Quantity: 1, SelectedVariants: map[string]string{"color": "Silver"}})

	v, err := svc.UpdateItem(ctx, "s1", "p2", UpdateItemInput{
		Quantity:         5,
		SelectedVariants: map[string]string{"color": "Gold"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var gold, silver int
	for _, line := range v.Items {
		switch line.SelectedVariants["color"] {
		case "Gold":
			gold = line.Quantity
		case "Silver":
			silver = line.Quantity
		}
	}
	if gold != 5 || silver != 1 {
		t.Fatalf("expected gold 5 silver 1, got gold %d silver %d", gold, silver)
	}
}

func TestUpdateItemToZeroRemovesLines(t *testing.T) {
	svc := New(newMemoryCartRepo(), catalog())
	ctx := context.Background()

	svc.AddItem(ctx, "s1", AddItemInput{ProductID: "p1", Quantity: 3})
	v, err := svc.UpdateItem(ctx, "s1", "p1", UpdateItemInput{Quantity: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", v.Items)
	}
}

func TestRemoveItem(t *testing.T) {
	svc := New(newMemoryCartRepo(), catalog())
	ctx := context.Background()

	svc.AddItem(ctx, "s1", AddItemInput{ProductID: "p1", Quantity: 1})
	svc.AddItem(ctx, "s1", AddItemInput{ProductID: "p2", Quantity: 1})

	v, err := svc.RemoveItem(ctx, "s1", "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v.Items) != 1 || v.Items[0].ProductID != "p2" {
		t.Fatalf("expected only p2 left, got %+v", v.Items)
	}

	// Removing an absent product is a no-op.
	if _, err := svc.RemoveItem(ctx, "s1", "missing"); err != nil {
		t.Fatalf("remove missing: %v", err)
	}
}

func TestClear(t *testing.T) {
	repo := newMemoryCartRepo()
	svc := New(repo, catalog())
	ctx := context.Background()

	svc.AddItem(ctx, "s1", AddItemInput{ProductID: "p1", Quantity: 2})
	if err := svc.Clear(ctx, "s1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	v, err := svc.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(v.Items) != 0 || v.SubtotalCents != 0 {
		t.Fatalf("expected empty cart, got %+v", v)
	}
}

func TestGetReturnsEmptyViewNotNil(t *testing.T) {
	svc := New(newMemoryCartRepo(), catalog())

	v, err := svc.Get(context.Background(), "fresh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Items == nil {
		t.Fatal("items slice must be non-nil for JSON encoding")
	}
}
