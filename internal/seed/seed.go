package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"storefront/internal/domain"
	categoryrepo "storefront/internal/repository/category"
	productrepo "storefront/internal/repository/product"
	settingsrepo "storefront/internal/repository/settings"
	userrepo "storefront/internal/repository/user"
)

// Apply inserts the admin user, default settings, and sample catalog data
// for manual testing. It is idempotent: existing documents are left alone.
func Apply(ctx context.Context, database *mongo.Database, logger *log.Logger) error {
	if err := ensureAdmin(ctx, database, logger); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	if err := ensureSettings(ctx, database, logger); err != nil {
		return fmt.Errorf("ensure settings: %w", err)
	}
	if err := ensureCatalog(ctx, database, logger); err != nil {
		return fmt.Errorf("ensure catalog: %w", err)
	}
	return nil
}

func ensureAdmin(ctx context.Context, database *mongo.Database, logger *log.Logger) error {
	users := userrepo.NewMongo(database)

	email := envOrDefault("ADMIN_EMAIL", "admin@shop.local")
	if _, err := users.GetByEmail(ctx, email); err == nil {
		logger.Printf("admin user %s already exists", email)
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	password := envOrDefault("ADMIN_PASSWORD", "admin123")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if _, err := users.Create(ctx, domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Admin User",
		Role:         "admin",
	}); err != nil {
		return err
	}
	logger.Printf("admin user created (email: %s)", email)
	return nil
}

func ensureSettings(ctx context.Context, database *mongo.Database, logger *log.Logger) error {
	repo := settingsrepo.NewMongo(database)

	if _, err := repo.Get(ctx); err == nil {
		logger.Println("settings already exist")
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	defaults := domain.DefaultSettings()
	defaults.WhatsAppNumber = envOrDefault("WHATSAPP_NUMBER", defaults.WhatsAppNumber)
	defaults.StoreName = "My Local Shop"
	defaults.StoreDescription = "Your trusted local business for quality products"
	defaults.DeliveryChargeCents = 500
	defaults.HeroSubtitle = "Discover amazing products crafted with care"

	if _, err := repo.Upsert(ctx, defaults); err != nil {
		return err
	}
	logger.Println("default settings created")
	return nil
}

func ensureCatalog(ctx context.Context, database *mongo.Database, logger *log.Logger) error {
	categories := categoryrepo.NewMongo(database)
	products := productrepo.NewMongo(database)

	existing, err := categories.List(ctx, false)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Println("catalog already seeded")
		return nil
	}

	seedCategories := []domain.Category{
		{Name: "Jewelry", Slug: "jewelry", Description: "Beautiful handcrafted jewelry", IsActive: true, Order: 1},
		{Name: "Gifts", Slug: "gifts", Description: "Perfect gifts for every occasion", IsActive: true, Order: 2},
		{Name: "Prints", Slug: "prints", Description: "Custom prints and photo products", IsActive: true, Order: 3},
	}

	ids := make(map[string]string, len(seedCategories))
	for _, c := range seedCategories {
		created, err := categories.Create(ctx, c)
		if err != nil {
			return err
		}
		ids[c.Slug] = created.ID
	}

	seedProducts := []domain.Product{
		{
			Name:        "Gold Plated Ring",
			Description: "Handcrafted gold plated ring",
			PriceCents:  4999,
			CategoryID:  ids["jewelry"],
			Variants: []domain.Variant{
				{Type: "size", Name: "size", Options: []string{"S", "M", "L"}},
				{Type: "color", Name: "color", Options: []string{"Gold", "Silver"}},
			},
			Stock:    25,
			IsActive: true,
			Featured: true,
		},
		{
			Name:        "Ceramic Mug",
			Description: "Ceramic mug with custom print",
			PriceCents:  2999,
			CategoryID:  ids["gifts"],
			Stock:       50,
			IsActive:    true,
		},
	}
	for _, p := range seedProducts {
		if _, err := products.Create(ctx, p); err != nil {
			return err
		}
	}

	logger.Printf("seeded %d categories, %d products", len(seedCategories), len(seedProducts))
	return nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
