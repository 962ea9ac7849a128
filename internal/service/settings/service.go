package settings

import (
	"context"
	"errors"

	"storefront/internal/domain"
)

type Service struct {
	repo settingsRepo
}

type settingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, s domain.Settings) (*domain.Settings, error)
}

func New(repo settingsRepo) *Service {
	return &Service{repo: repo}
}

// Get returns the store settings, falling back to the documented defaults
// (zero delivery charge, "$" symbol, default message template) when nothing
// has been configured yet.
func (s *Service) Get(ctx context.Context) (*domain.Settings, error) {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			defaults := domain.DefaultSettings()
			return &defaults, nil
		}
		return nil, err
	}
	return stored, nil
}

// Public returns the unauthenticated subset of the settings.
func (s *Service) Public(ctx context.Context) (*domain.PublicSettings, error) {
	stored, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	public := stored.Public()
	return &public, nil
}

// UpdateInput carries only the fields the admin sent; nil fields keep their
// stored value, mirroring the reference PUT semantics.
type UpdateInput struct {
	StoreName            *string             `json:"storeName"`
	StoreDescription     *string             `json:"storeDescription"`
	Logo                 *string             `json:"logo"`
	WhatsAppNumber       *string             `json:"whatsappNumber"`
	Currency             *string             `json:"currency"`
	CurrencySymbol       *string             `json:"currencySymbol"`
	DeliveryChargeCents  *int64              `json:"deliveryChargeCents"`
	OrderMessageTemplate *string             `json:"orderMessageTemplate"`
	HeroTitle            *string             `json:"heroTitle"`
	HeroSubtitle         *string             `json:"heroSubtitle"`
	FooterText           *string             `json:"footerText"`
	ContactPhone         *string             `json:"contactPhone"`
	ContactEmail         *string             `json:"contactEmail"`
	BusinessAddress      *string             `json:"businessAddress"`
	SocialLinks          *domain.SocialLinks `json:"socialLinks"`
}

func (s *Service) Update(ctx context.Context, in UpdateInput) (*domain.Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if in.StoreName != nil {
		current.StoreName = *in.StoreName
	}
	if in.StoreDescription != nil {
		current.StoreDescription = *in.StoreDescription
	}
	if in.Logo != nil {
		current.Logo = *in.Logo
	}
	if in.WhatsAppNumber != nil {
		current.WhatsAppNumber = *in.WhatsAppNumber
	}
	if in.Currency != nil {
		current.Currency = *in.Currency
	}
	if in.CurrencySymbol != nil {
		current.CurrencySymbol = *in.CurrencySymbol
	}
	if in.DeliveryChargeCents != nil {
		if *in.DeliveryChargeCents < 0 {
			return nil, errors.New("delivery charge must not be negative")
		}
		current.DeliveryChargeCents = *in.DeliveryChargeCents
	}
	if in.OrderMessageTemplate != nil {
		current.OrderMessageTemplate = *in.OrderMessageTemplate
	}
	if in.HeroTitle != nil {
		current.HeroTitle = *in.HeroTitle
	}
	if in.HeroSubtitle != nil {
		current.HeroSubtitle = *in.HeroSubtitle
	}
	if in.FooterText != nil {
		current.FooterText = *in.FooterText
	}
	if in.ContactPhone != nil {
		current.ContactPhone = *in.ContactPhone
	}
	if in.ContactEmail != nil {
		current.ContactEmail = *in.ContactEmail
	}
	if in.BusinessAddress != nil {
		current.BusinessAddress = *in.BusinessAddress
	}
	if in.SocialLinks != nil {
		current.SocialLinks = *in.SocialLinks
	}

	return s.repo.Upsert(ctx, *current)
}
