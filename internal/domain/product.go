package domain

import "time"

// Variant describes one configurable axis of a product, e.g. a "color"
// variant offering ["Gold", "Silver"].
type Variant struct {
	Type    string   `bson:"type" json:"type"`
	Name    string   `bson:"name" json:"name"`
	Options []string `bson:"options" json:"options"`
}

type Product struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Description    string    `bson:"description" json:"description"`
	PriceCents     int64     `bson:"price_cents" json:"priceCents"`
	Images         []string  `bson:"images" json:"images"`
	CategoryID     string    `bson:"category_id" json:"categoryId"`
	Variants       []Variant `bson:"variants,omitempty" json:"variants,omitempty"`
	Stock          int       `bson:"stock" json:"stock"`
	IsActive       bool      `bson:"is_active" json:"isActive"`
	Featured       bool      `bson:"featured" json:"featured"`
	SEOTitle       string    `bson:"seo_title,omitempty" json:"seoTitle,omitempty"`
	SEODescription string    `bson:"seo_description,omitempty" json:"seoDescription,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}

// FirstImage returns the product's primary image reference, or "" if it has
// none.
func (p Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
