package checkout

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"storefront/internal/domain"
)

const summaryDateLayout = "Jan 2, 2006, 3:04 PM"

// FormatSummary renders the bill-format order text sent to the store's
// WhatsApp number. It is a pure function of its inputs: the same order,
// order number and currency symbol always yield byte-identical text.
func FormatSummary(order domain.Order, orderNumber, currencySymbol string) string {
	var b strings.Builder

	b.WriteString("╔════════════════════════╗\n")
	b.WriteString("║   🛍️ *NEW ORDER*   ║\n")
	b.WriteString("╚════════════════════════╝\n\n")
	fmt.Fprintf(&b, "📅 *Date:* %s\n", order.CreatedAt.Format(summaryDateLayout))
	fmt.Fprintf(&b, "📋 *Order #:* %s\n\n", orderNumber)

	b.WriteString("┌─────────────────────────┐\n")
	b.WriteString("│  📦 *ORDER ITEMS*\n")
	b.WriteString("└─────────────────────────┘\n\n")
	b.WriteString(itemsBlock(order.Items, currencySymbol))
	b.WriteString("\n\n")

	b.WriteString("┌─────────────────────────┐\n")
	b.WriteString("│  👤 *CUSTOMER DETAILS*\n")
	b.WriteString("└─────────────────────────┘\n")
	fmt.Fprintf(&b, "Name: %s\n", order.CustomerName)
	fmt.Fprintf(&b, "Phone: %s\n\n", order.CustomerPhone)

	b.WriteString("┌─────────────────────────┐\n")
	b.WriteString("│  💰 *PAYMENT SUMMARY*\n")
	b.WriteString("└─────────────────────────┘\n")
	fmt.Fprintf(&b, "Subtotal:        %s\n", FormatCents(order.SubtotalCents, currencySymbol))
	fmt.Fprintf(&b, "Delivery Charge: %s\n", FormatCents(order.DeliveryChargeCents, currencySymbol))
	b.WriteString("─────────────────────────\n")
	fmt.Fprintf(&b, "*TOTAL AMOUNT:   %s*\n\n", FormatCents(order.TotalCents, currencySymbol))

	b.WriteString("━━━━━━━━━━━━━━━━━━━━━━━\n")
	b.WriteString("Thank you for your order! 🙏\n")
	b.WriteString("We'll contact you shortly to confirm.")

	return b.String()
}

// RenderTemplate fills the store's configurable order message template.
// Recognized placeholders: {items}, {customerName}, {customerPhone},
// {subtotal}, {deliveryCharge}, {total}, {orderNumber}.
func RenderTemplate(template string, order domain.Order, orderNumber, currencySymbol string) string {
	r := strings.NewReplacer(
		"{items}", itemsBlock(order.Items, currencySymbol),
		"{customerName}", order.CustomerName,
		"{customerPhone}", order.CustomerPhone,
		"{subtotal}", FormatCents(order.SubtotalCents, currencySymbol),
		"{deliveryCharge}", FormatCents(order.DeliveryChargeCents, currencySymbol),
		"{total}", FormatCents(order.TotalCents, currencySymbol),
		"{orderNumber}", orderNumber,
	)
	return r.Replace(template)
}

// itemsBlock renders one numbered entry per item. Variant pairs are sorted
// by key so the output does not depend on map iteration order.
func itemsBlock(items []domain.OrderItem, currencySymbol string) string {
	entries := make([]string, 0, len(items))
	for i, item := range items {
		var b strings.Builder
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, item.Name)
		if len(item.SelectedVariants) > 0 {
			b.WriteString("   _")
			b.WriteString(variantPairs(item.SelectedVariants))
			b.WriteString("_\n")
		}
		lineTotal := item.PriceCents * int64(item.Quantity)
		fmt.Fprintf(&b, "   Qty: %d × %s = *%s*",
			item.Quantity,
			FormatCents(item.PriceCents, currencySymbol),
			FormatCents(lineTotal, currencySymbol),
		)
		entries = append(entries, b.String())
	}
	return strings.Join(entries, "\n\n")
}

func variantPairs(variants map[string]string) string {
	keys := make([]string, 0, len(variants))
	for k := range variants {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s: %s", k, variants[k]))
	}
	return strings.Join(pairs, ", ")
}

// MessageLink builds the wa.me deep link that opens a chat with the store's
// number pre-filled with text. Everything but digits is stripped from the
// number, matching how WhatsApp expects it.
func MessageLink(whatsappNumber, text string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, whatsappNumber)
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(text)
}
