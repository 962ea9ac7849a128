package category

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"storefront/internal/domain"
)

type Service struct {
	repo categoryRepo
}

type categoryRepo interface {
	List(ctx context.Context, activeOnly bool) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
	Update(ctx context.Context, c domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

func New(repo categoryRepo) *Service {
	return &Service{repo: repo}
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a display name: lowercase, runs of
// non-alphanumerics collapsed to "-", leading/trailing dashes trimmed.
func Slugify(name string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

type CreateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	ParentID    string `json:"parentId"`
	IsActive    *bool  `json:"isActive"`
	Order       int    `json:"order"`
}

type UpdateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	ParentID    *string `json:"parentId"`
	IsActive    *bool   `json:"isActive"`
	Order       *int    `json:"order"`
}

func (s *Service) List(ctx context.Context, includeInactive bool) ([]domain.Category, error) {
	return s.repo.List(ctx, !includeInactive)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errors.New("name required")
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	return s.repo.Create(ctx, domain.Category{
		Name:        name,
		Slug:        Slugify(name),
		Description: strings.TrimSpace(in.Description),
		Image:       in.Image,
		ParentID:    in.ParentID,
		IsActive:    active,
		Order:       in.Order,
	})
}

// Update applies the provided fields to the category. A name change
// regenerates the slug, mirroring the create path.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.Category, error) {
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
		existing.Slug = Slugify(name)
	}
	if in.Description != nil {
		existing.Description = strings.TrimSpace(*in.Description)
	}
	if in.Image != nil {
		existing.Image = *in.Image
	}
	if in.ParentID != nil {
		existing.ParentID = *in.ParentID
	}
	if in.IsActive != nil {
		existing.IsActive = *in.IsActive
	}
	if in.Order != nil {
		existing.Order = *in.Order
	}

	return s.repo.Update(ctx, *existing)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
