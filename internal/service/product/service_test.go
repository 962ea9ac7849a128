package product

import (
	"context"
	"testing"

	"storefront/internal/domain"
	productrepo "storefront/internal/repository/product"
)

type stubProductRepo struct {
	byID       map[string]*domain.Product
	lastFilter productrepo.Filter
	listResult []domain.Product
	listTotal  int64
	created    *domain.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{byID: map[string]*domain.Product{}}
}

func (s *stubProductRepo) List(_ context.Context, f productrepo.Filter) ([]domain.Product, int64, error) {
	s.lastFilter = f
	return s.listResult, s.listTotal, nil
}

func (s *stubProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (s *stubProductRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	p.ID = "p1"
	s.created = &p
	s.byID[p.ID] = &p
	return &p, nil
}

func (s *stubProductRepo) Update(_ context.Context, p domain.Product) (*domain.Product, error) {
	if _, ok := s.byID[p.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	s.byID[p.ID] = &p
	return &p, nil
}

func (s *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := s.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

type stubCategoryRepo struct {
	byID   map[string]*domain.Category
	bySlug map[string]*domain.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{byID: map[string]*domain.Category{}, bySlug: map[string]*domain.Category{}}
}

func (s *stubCategoryRepo) add(c domain.Category) {
	s.byID[c.ID] = &c
	s.bySlug[c.Slug] = &c
}

func (s *stubCategoryRepo) GetByID(_ context.Context, id string) (*domain.Category, error) {
	c, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (s *stubCategoryRepo) GetBySlug(_ context.Context, slug string) (*domain.Category, error) {
	c, ok := s.bySlug[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func TestListDefaultsAndPagination(t *testing.T) {
	repo := newStubProductRepo()
	repo.listTotal = 25
	svc := New(repo, newStubCategoryRepo())

	_, page, err := svc.List(context.Background(), ListInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFilter.Page != 1 || repo.lastFilter.Limit != 12 {
		t.Fatalf("expected default paging 1/12, got %d/%d", repo.lastFilter.Page, repo.lastFilter.Limit)
	}
	if !repo.lastFilter.ActiveOnly {
		t.Fatal("public listing must be active-only")
	}
	if page.Pages != 3 || page.Total != 25 {
		t.Fatalf("expected 3 pages of 25, got %+v", page)
	}
}

func TestListResolvesCategoryBySlug(t *testing.T) {
	repo := newStubProductRepo()
	cats := newStubCategoryRepo()
	cats.add(domain.Category{ID: "c9", Name: "Jewelry", Slug: "jewelry"})
	svc := New(repo, cats)

	if _, _, err := svc.List(context.Background(), ListInput{Category: "jewelry"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFilter.CategoryID != "c9" {
		t.Fatalf("expected category filter c9, got %q", repo.lastFilter.CategoryID)
	}
}

func TestListResolvesCategoryByID(t *testing.T) {
	repo := newStubProductRepo()
	cats := newStubCategoryRepo()
	cats.add(domain.Category{ID: "c9", Name: "Jewelry", Slug: "jewelry"})
	svc := New(repo, cats)

	if _, _, err := svc.List(context.Background(), ListInput{Category: "c9"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFilter.CategoryID != "c9" {
		t.Fatalf("expected category filter c9, got %q", repo.lastFilter.CategoryID)
	}
}

func TestListUnknownCategoryLeavesListingUnfiltered(t *testing.T) {
	repo := newStubProductRepo()
	svc := New(repo, newStubCategoryRepo())

	if _, _, err := svc.List(context.Background(), ListInput{Category: "no-such"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFilter.CategoryID != "" {
		t.Fatalf("expected no category filter, got %q", repo.lastFilter.CategoryID)
	}
}

func TestListReturnsEmptySliceNotNil(t *testing.T) {
	svc := New(newStubProductRepo(), newStubCategoryRepo())

	products, _, err := svc.List(context.Background(), ListInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if products == nil {
		t.Fatal("products must be non-nil for JSON encoding")
	}
}

func TestCreateValidation(t *testing.T) {
	cats := newStubCategoryRepo()
	cats.add(domain.Category{ID: "c1", Slug: "mugs"})
	svc := New(newStubProductRepo(), cats)
	ctx := context.Background()

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"blank name", CreateInput{Name: " ", PriceCents: 100, CategoryID: "c1"}},
		{"negative price", CreateInput{Name: "Mug", PriceCents: -1, CategoryID: "c1"}},
		{"missing category", CreateInput{Name: "Mug", PriceCents: 100}},
		{"unknown category", CreateInput{Name: "Mug", PriceCents: 100, CategoryID: "nope"}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(ctx, tc.in); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestCreateDefaultsToActive(t *testing.T) {
	repo := newStubProductRepo()
	cats := newStubCategoryRepo()
	cats.add(domain.Category{ID: "c1", Slug: "mugs"})
	svc := New(repo, cats)

	p, err := svc.Create(context.Background(), CreateInput{Name: " Mug ", PriceCents: 1299, CategoryID: "c1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.IsActive || p.Name != "Mug" {
		t.Fatalf("unexpected product: %+v", p)
	}
}

func TestUpdatePartialFields(t *testing.T) {
	repo := newStubProductRepo()
	repo.byID["p1"] = &domain.Product{ID: "p1", Name: "Mug", PriceCents: 1299, CategoryID: "c1", IsActive: true}
	cats := newStubCategoryRepo()
	cats.add(domain.Category{ID: "c1", Slug: "mugs"})
	svc := New(repo, cats)

	price := int64(1499)
	featured := true
	p, err := svc.Update(context.Background(), "p1", UpdateInput{PriceCents: &price, Featured: &featured})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PriceCents != 1499 || !p.Featured {
		t.Fatalf("unexpected product: %+v", p)
	}
	if p.Name != "Mug" || p.CategoryID != "c1" {
		t.Fatal("untouched fields must be preserved")
	}
}

func TestUpdateRejectsUnknownCategory(t *testing.T) {
	repo := newStubProductRepo()
	repo.byID["p1"] = &domain.Product{ID: "p1", Name: "Mug", CategoryID: "c1"}
	svc := New(repo, newStubCategoryRepo())

	bad := "ghost"
	if _, err := svc.Update(context.Background(), "p1", UpdateInput{CategoryID: &bad}); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestUpdateMissingProduct(t *testing.T) {
	svc := New(newStubProductRepo(), newStubCategoryRepo())
	name := "Anything"
	if _, err := svc.Update(context.Background(), "missing", UpdateInput{Name: &name}); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
