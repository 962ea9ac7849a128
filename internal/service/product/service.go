package product

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/domain"
	productrepo "storefront/internal/repository/product"
)

type Service struct {
	repo       productRepo
	categories categoryRepo
}

type productRepo interface {
	List(ctx context.Context, f productrepo.Filter) ([]domain.Product, int64, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type categoryRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
}

func New(repo productRepo, categories categoryRepo) *Service {
	return &Service{repo: repo, categories: categories}
}

// ListInput mirrors the public listing query parameters. Category accepts a
// category id or a slug.
type ListInput struct {
	Category string
	Search   string
	Featured bool
	Sort     string
	Page     int
	Limit    int
}

// Pagination describes one page of a listing.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

const defaultPageSize = 12

// List returns active products matching the filters, newest first unless a
// sort is given. An unresolvable category reference leaves the listing
// unfiltered, matching the reference behavior.
func (s *Service) List(ctx context.Context, in ListInput) ([]domain.Product, *Pagination, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 {
		in.Limit = defaultPageSize
	}

	categoryID := ""
	if ref := strings.TrimSpace(in.Category); ref != "" {
		categoryID = s.resolveCategory(ctx, ref)
	}

	products, total, err := s.repo.List(ctx, productrepo.Filter{
		CategoryID:   categoryID,
		Search:       strings.TrimSpace(in.Search),
		FeaturedOnly: in.Featured,
		ActiveOnly:   true,
		Sort:         in.Sort,
		Page:         in.Page,
		Limit:        in.Limit,
	})
	if err != nil {
		return nil, nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}

	pages := total / int64(in.Limit)
	if total%int64(in.Limit) != 0 {
		pages++
	}
	return products, &Pagination{Page: in.Page, Limit: in.Limit, Total: total, Pages: pages}, nil
}

func (s *Service) resolveCategory(ctx context.Context, ref string) string {
	if c, err := s.categories.GetByID(ctx, ref); err == nil {
		return c.ID
	}
	if c, err := s.categories.GetBySlug(ctx, ref); err == nil {
		return c.ID
	}
	return ""
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// AdminList returns every product including inactive ones, newest first.
func (s *Service) AdminList(ctx context.Context) ([]domain.Product, error) {
	products, _, err := s.repo.List(ctx, productrepo.Filter{})
	return products, err
}

type CreateInput struct {
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	PriceCents     int64            `json:"priceCents"`
	Images         []string         `json:"images"`
	CategoryID     string           `json:"categoryId"`
	Variants       []domain.Variant `json:"variants"`
	Stock          int              `json:"stock"`
	IsActive       *bool            `json:"isActive"`
	Featured       bool             `json:"featured"`
	SEOTitle       string           `json:"seoTitle"`
	SEODescription string           `json:"seoDescription"`
}

type UpdateInput struct {
	Name           *string           `json:"name"`
	Description    *string           `json:"description"`
	PriceCents     *int64            `json:"priceCents"`
	Images         *[]string         `json:"images"`
	CategoryID     *string           `json:"categoryId"`
	Variants       *[]domain.Variant `json:"variants"`
	Stock          *int              `json:"stock"`
	IsActive       *bool             `json:"isActive"`
	Featured       *bool             `json:"featured"`
	SEOTitle       *string           `json:"seoTitle"`
	SEODescription *string           `json:"seoDescription"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errors.New("name required")
	}
	if in.PriceCents < 0 {
		return nil, errors.New("price must not be negative")
	}
	if strings.TrimSpace(in.CategoryID) == "" {
		return nil, errors.New("category required")
	}
	if _, err := s.categories.GetByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errors.New("category not found")
		}
		return nil, err
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	return s.repo.Create(ctx, domain.Product{
		Name:           name,
		Description:    in.Description,
		PriceCents:     in.PriceCents,
		Images:         in.Images,
		CategoryID:     in.CategoryID,
		Variants:       in.Variants,
		Stock:          in.Stock,
		IsActive:       active,
		Featured:       in.Featured,
		SEOTitle:       in.SEOTitle,
		SEODescription: in.SEODescription,
	})
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.Product, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, errors.New("name required")
		}
		existing.Name = name
	}
	if in.Description != nil {
		existing.Description = *in.Description
	}
	if in.PriceCents != nil {
		if *in.PriceCents < 0 {
			return nil, errors.New("price must not be negative")
		}
		existing.PriceCents = *in.PriceCents
	}
	if in.Images != nil {
		existing.Images = *in.Images
	}
	if in.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *in.CategoryID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, errors.New("category not found")
			}
			return nil, err
		}
		existing.CategoryID = *in.CategoryID
	}
	if in.Variants != nil {
		existing.Variants = *in.Variants
	}
	if in.Stock != nil {
		existing.Stock = *in.Stock
	}
	if in.IsActive != nil {
		existing.IsActive = *in.IsActive
	}
	if in.Featured != nil {
		existing.Featured = *in.Featured
	}
	if in.SEOTitle != nil {
		existing.SEOTitle = *in.SEOTitle
	}
	if in.SEODescription != nil {
		existing.SEODescription = *in.SEODescription
	}

	return s.repo.Update(ctx, *existing)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
