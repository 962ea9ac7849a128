package domain

import "time"

// DefaultOrderMessageTemplate is the message sent to the store's WhatsApp
// number when no custom template has been configured. Placeholders are
// substituted by the checkout package.
const DefaultOrderMessageTemplate = `🛍️ *New Order*

📦 Order Details:
{items}

👤 Customer: {customerName}
📱 Phone: {customerPhone}

💰 Subtotal: {subtotal}
🚚 Delivery: {deliveryCharge}
💵 *Total: {total}*

Order Number: {orderNumber}`

type SocialLinks struct {
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
}

// Settings is a singleton document holding store-wide, admin-controlled
// configuration.
type Settings struct {
	ID                   string      `bson:"_id,omitempty" json:"id"`
	StoreName            string      `bson:"store_name" json:"storeName"`
	StoreDescription     string      `bson:"store_description,omitempty" json:"storeDescription,omitempty"`
	Logo                 string      `bson:"logo,omitempty" json:"logo,omitempty"`
	WhatsAppNumber       string      `bson:"whatsapp_number" json:"whatsappNumber"`
	Currency             string      `bson:"currency" json:"currency"`
	CurrencySymbol       string      `bson:"currency_symbol" json:"currencySymbol"`
	DeliveryChargeCents  int64       `bson:"delivery_charge_cents" json:"deliveryChargeCents"`
	OrderMessageTemplate string      `bson:"order_message_template" json:"orderMessageTemplate"`
	HeroTitle            string      `bson:"hero_title,omitempty" json:"heroTitle,omitempty"`
	HeroSubtitle         string      `bson:"hero_subtitle,omitempty" json:"heroSubtitle,omitempty"`
	FooterText           string      `bson:"footer_text,omitempty" json:"footerText,omitempty"`
	ContactPhone         string      `bson:"contact_phone,omitempty" json:"contactPhone,omitempty"`
	ContactEmail         string      `bson:"contact_email,omitempty" json:"contactEmail,omitempty"`
	BusinessAddress      string      `bson:"business_address,omitempty" json:"businessAddress,omitempty"`
	SocialLinks          SocialLinks `bson:"social_links,omitempty" json:"socialLinks,omitempty"`
	CreatedAt            time.Time   `bson:"created_at" json:"createdAt"`
	UpdatedAt            time.Time   `bson:"updated_at" json:"updatedAt"`
}

// DefaultSettings returns the configuration used before an admin has saved
// anything: zero delivery charge, dollar currency, default message template.
func DefaultSettings() Settings {
	return Settings{
		StoreName:            "My Store",
		WhatsAppNumber:       "+1234567890",
		Currency:             "USD",
		CurrencySymbol:       "$",
		DeliveryChargeCents:  0,
		OrderMessageTemplate: DefaultOrderMessageTemplate,
		HeroTitle:            "Welcome to Our Store",
		HeroSubtitle:         "Discover amazing products for your needs",
		FooterText:           "Your trusted local business",
	}
}

// PublicSettings is the subset of Settings exposed without authentication.
type PublicSettings struct {
	StoreName           string      `json:"storeName"`
	StoreDescription    string      `json:"storeDescription,omitempty"`
	Logo                string      `json:"logo,omitempty"`
	WhatsAppNumber      string      `json:"whatsappNumber"`
	Currency            string      `json:"currency"`
	CurrencySymbol      string      `json:"currencySymbol"`
	DeliveryChargeCents int64       `json:"deliveryChargeCents"`
	HeroTitle           string      `json:"heroTitle,omitempty"`
	HeroSubtitle        string      `json:"heroSubtitle,omitempty"`
	FooterText          string      `json:"footerText,omitempty"`
	SocialLinks         SocialLinks `json:"socialLinks,omitempty"`
}

// Public projects the admin-only settings document onto its public subset.
func (s Settings) Public() PublicSettings {
	return PublicSettings{
		StoreName:           s.StoreName,
		StoreDescription:    s.StoreDescription,
		Logo:                s.Logo,
		WhatsAppNumber:      s.WhatsAppNumber,
		Currency:            s.Currency,
		CurrencySymbol:      s.CurrencySymbol,
		DeliveryChargeCents: s.DeliveryChargeCents,
		HeroTitle:           s.HeroTitle,
		HeroSubtitle:        s.HeroSubtitle,
		FooterText:          s.FooterText,
		SocialLinks:         s.SocialLinks,
	}
}
