// Package cart holds the shopper's in-progress selection as an ordered
// ledger of line items. A line is identified by product id plus the chosen
// variant options; adding the same combination again merges quantities
// instead of creating a duplicate line. Every mutation is written through a
// Store before returning, so a reload reconstructs the same sequence.
package cart

import (
	"context"
	"sort"
	"strings"
)

// LineItem is one row in the ledger. Name, image and price are snapshots
// taken when the item was added; they are not re-synced against the catalog.
type LineItem struct {
	ProductID        string            `bson:"product_id" json:"productId"`
	Name             string            `bson:"name" json:"name"`
	Image            string            `bson:"image" json:"image"`
	PriceCents       int64             `bson:"price_cents" json:"priceCents"`
	Quantity         int               `bson:"quantity" json:"quantity"`
	SelectedVariants map[string]string `bson:"selected_variants,omitempty" json:"selectedVariants,omitempty"`
}

// IdentityKey returns the canonical key identifying this line: product id
// plus the selected variants serialized with sorted keys, so two lines with
// the same options compare equal regardless of map construction order.
func (li LineItem) IdentityKey() string {
	return identityKey(li.ProductID, li.SelectedVariants)
}

func identityKey(productID string, variants map[string]string) string {
	if len(variants) == 0 {
		return productID
	}
	keys := make([]string, 0, len(variants))
	for k := range variants {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(productID)
	for _, k := range keys {
		b.WriteByte('|')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(variants[k])
	}
	return b.String()
}

// Store persists ledger state. Load returns the previously saved lines (nil
// when nothing was saved yet); Save replaces them.
type Store interface {
	Load(ctx context.Context) ([]LineItem, error)
	Save(ctx context.Context, items []LineItem) error
}

// Ledger is the ordered collection of line items for one session. It is not
// safe for concurrent use; each session owns its own instance.
type Ledger struct {
	store Store
	items []LineItem
}

// NewLedger loads the persisted state for the session from store. A session
// with no saved cart starts empty.
func NewLedger(ctx context.Context, store Store) (*Ledger, error) {
	items, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Ledger{store: store, items: items}, nil
}

// Add merges item into the ledger. If a line with the same identity already
// exists its quantity grows by item.Quantity and the existing snapshot
// fields are kept; otherwise item is appended. The caller is expected to
// pass Quantity >= 1.
func (l *Ledger) Add(ctx context.Context, item LineItem) error {
	key := item.IdentityKey()
	for i := range l.items {
		if l.items[i].IdentityKey() == key {
			l.items[i].Quantity += item.Quantity
			return l.store.Save(ctx, l.items)
		}
	}
	l.items = append(l.items, item)
	return l.store.Save(ctx, l.items)
}

// UpdateQuantity sets the quantity of every line of the given product. It is
// keyed by product id alone: when several variant lines of one product
// coexist, all of them are updated. Callers that need per-variant precision
// use UpdateLineQuantity. A quantity <= 0 removes the lines instead.
func (l *Ledger) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return l.Remove(ctx, productID)
	}
	for i := range l.items {
		if l.items[i].ProductID == productID {
			l.items[i].Quantity = quantity
		}
	}
	return l.store.Save(ctx, l.items)
}

// UpdateLineQuantity sets the quantity of the single line identified by
// product id plus variant selection. A quantity <= 0 removes that line.
// Lines of the same product with other variant selections are untouched.
func (l *Ledger) UpdateLineQuantity(ctx context.Context, productID string, variants map[string]string, quantity int) error {
	key := identityKey(productID, variants)
	if quantity <= 0 {
		kept := l.items[:0]
		for _, it := range l.items {
			if it.IdentityKey() != key {
				kept = append(kept, it)
			}
		}
		l.items = kept
		return l.store.Save(ctx, l.items)
	}
	for i := range l.items {
		if l.items[i].IdentityKey() == key {
			l.items[i].Quantity = quantity
		}
	}
	return l.store.Save(ctx, l.items)
}

// Remove deletes every line of the given product. Removing a product that is
// not in the ledger is a no-op, not an error.
func (l *Ledger) Remove(ctx context.Context, productID string) error {
	kept := l.items[:0]
	for _, it := range l.items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	l.items = kept
	return l.store.Save(ctx, l.items)
}

// Clear empties the ledger unconditionally.
func (l *Ledger) Clear(ctx context.Context) error {
	l.items = nil
	return l.store.Save(ctx, nil)
}

// Items returns a copy of the current lines in insertion order.
func (l *Ledger) Items() []LineItem {
	out := make([]LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// SubtotalCents returns the sum of unit price times quantity over all lines.
func (l *Ledger) SubtotalCents() int64 {
	var total int64
	for _, it := range l.items {
		total += it.PriceCents * int64(it.Quantity)
	}
	return total
}

// ItemCount returns the total number of units in the ledger, not the number
// of distinct lines.
func (l *Ledger) ItemCount() int {
	count := 0
	for _, it := range l.items {
		count += it.Quantity
	}
	return count
}

// MemoryStore is a Store kept entirely in memory, used by tests and as a
// fallback when no durable store is configured.
type MemoryStore struct {
	items []LineItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) ([]LineItem, error) {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, items []LineItem) error {
	s.items = make([]LineItem, len(items))
	copy(s.items, items)
	return nil
}
