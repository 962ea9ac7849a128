package domain

import "time"

// Order status lifecycle: pending -> confirmed -> completed, or cancelled.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is a snapshot of a cart line at the moment of checkout. Name,
// image and price are frozen copies; they are not re-synced if the catalog
// product later changes.
type OrderItem struct {
	ProductID        string            `bson:"product_id" json:"productId"`
	Name             string            `bson:"name" json:"productName"`
	Image            string            `bson:"image" json:"productImage"`
	Quantity         int               `bson:"quantity" json:"quantity"`
	PriceCents       int64             `bson:"price_cents" json:"priceCents"`
	SelectedVariants map[string]string `bson:"selected_variants,omitempty" json:"selectedVariants,omitempty"`
}

type Order struct {
	ID                  string      `bson:"_id,omitempty" json:"id"`
	OrderNumber         string      `bson:"order_number" json:"orderNumber"`
	CustomerName        string      `bson:"customer_name" json:"customerName"`
	CustomerPhone       string      `bson:"customer_phone" json:"customerPhone"`
	Items               []OrderItem `bson:"items" json:"items"`
	SubtotalCents       int64       `bson:"subtotal_cents" json:"subtotalCents"`
	DeliveryChargeCents int64       `bson:"delivery_charge_cents" json:"deliveryChargeCents"`
	TotalCents          int64       `bson:"total_cents" json:"totalCents"`
	Status              string      `bson:"status" json:"status"`
	WhatsAppSent        bool        `bson:"whatsapp_sent" json:"whatsappSent"`
	Notes               string      `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt           time.Time   `bson:"created_at" json:"createdAt"`
	UpdatedAt           time.Time   `bson:"updated_at" json:"updatedAt"`
}
