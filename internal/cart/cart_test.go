package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) (*Ledger, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	ledger, err := NewLedger(context.Background(), store)
	require.NoError(t, err)
	return ledger, store
}

func TestAddMergesIdenticalLines(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Add(ctx, LineItem{
		ProductID:        "p1",
		Name:             "Gold Ring",
		PriceCents:       4999,
		Quantity:         1,
		SelectedVariants: map[string]string{"color": "Gold", "size": "M"},
	}))
	require.NoError(t, ledger.Add(ctx, LineItem{
		ProductID:        "p1",
		Name:             "Gold Ring",
		PriceCents:       4999,
		Quantity:         2,
		SelectedVariants: map[string]string{"size": "M", "color": "Gold"},
	}))

	items := ledger.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddKeepsExistingSnapshotOnMerge(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Add(ctx, LineItem{ProductID: "p1", Name: "Original", PriceCents: 1000, Quantity: 1}))
	require.NoError(t, ledger.Add(ctx, LineItem{ProductID: "p1", Name: "Renamed", PriceCents: 2000, Quantity: 1}))

	items := ledger.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Original", items[0].Name)
	assert.Equal(t, int64(1000), items[0].PriceCents)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddDistinctVariantsDoNotMerge(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Add(ctx, LineItem{ProductID: "p1", Quantity: 1, SelectedVariants: map[string]string{"color": "Gold"}}))
	require.NoError(t, ledger.Add(ctx, LineItem{ProductID: "p1", Quantity: 1, SelectedVariants: map[string]string{"color": "Silver"}}))

	assert.Len(t, ledger.Items(), 2)
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Add(ctx, LineItem{ProductID: "a", Quantity: 1}))
	require.NoError(t, ledger.Add(ctx, LineItem{ProductID: "b", Quantity: 1}))
	require.NoError(t, ledger.Add(ctx, LineItem{ProductID: "c", Quantity: 1}))
	require.NoError(t, ledger.Add(ctx, LineItem{ProductID: "b", Quantity: 1}))

	items := ledger.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "a", items[0].ProductID)
	assert.Equal(t, "b", items[1].ProductID)
	assert.Equal(t, "c", items[2].ProductID)
	assert.Equal(t, 2, items[1].Quantity)
}

func TestSubtotalTracksMutations(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	assert.Equal(t, int64(0), ledger.SubtotalCents())

	require.NoError(t, ledger.Add(ctx, LineItem{ProductID: "a", PriceCents: 4999, Quantity: 1}))
	require.NoError(t, ledger.Add(ctx, LineItem{ProductID: "b", PriceCents: 2999, Quantity: 2}))
	assert.Equal(t, int64(4999+2*2999), ledger.SubtotalCents())

	require.NoError(t, ledger.UpdateQuantity(ctx, "b", 1))
	assert.Equal(t, int64(4999+2999), ledger.SubtotalCents())

	require.NoError(t, ledger.Remove(ctx, "a"))
	assert.Equal(t, int64(2999), ledger.SubtotalCents())
}

func TestUpdateQuantityNonPositiveRemoves(t *testing.T) {
	for _, qty := range []int{0, -3} {
		ledger, _ := newTestLedger(t)
		ctx := context.Background()

		require.NoError(t, ledger.Add(ctx, LineItem{ProductID: "p1", PriceCents: 500, Quantity: 2}))
		require.NoError(t, ledger.UpdateQuantity(ctx, "p1", qty))

		assert.Empty(t, ledger.Items())
		assert.Equal(t, int64(0), ledger.SubtotalCents())
	}
}

func TestUpdateQuantityAffectsAllVariantLines(t *testing.T) {
	// Documented simplification: update/remove by product id alone apply to
	// every variant line of that product.
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Add(ctx, LineItem{ProductID: "p1", Quantity: 1, SelectedVariants: map[string]string{"color": "Gold"}}))
	require.NoError(t, ledger.Add(ctx, LineItem{ProductID: "p1", Quantity: 2, SelectedVariants: map[string]string{"color": "Silver"}}))

	require.NoError(t, ledger.UpdateQuantity(ctx, "p1", 5))
	for _, it := range ledger.Items() {
		assert.Equal(t, 5, it.Quantity)
	}

	require.NoError(t, ledger.Remove(ctx, "p1"))
	assert.Empty(t, ledger.Items())
}

func TestUpdateLineQuantityTargetsSingleVariant(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Add(ctx, LineItem{ProductID: "p1", Quantity: 1, SelectedVariants: map[string]string{"color": "Gold"}}))
	require.NoError(t, ledger.Add(ctx, LineItem{ProductID: "p1", Quantity: 2, SelectedVariants: map[string]string{"color": "Silver"}}))

	require.NoError(t, ledger.UpdateLineQuantity(ctx, "p1", map[string]string{"color": "Gold"}, 7))

	items := ledger.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 7, items[0].Quantity)
	assert.Equal(t, 2, items[1].Quantity)

	require.NoError(t, ledger.UpdateLineQuantity(ctx, "p1", map[string]string{"color": "Silver"}, 0))
	items = ledger.Items()
	require.Len(t, items, 1)
	assert.Equal(t, map[string]string{"color": "Gold"}, items[0].SelectedVariants)
}

func TestRemoveMissingProductIsNoop(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Add(ctx, LineItem{ProductID: "p1", Quantity: 1}))
	require.NoError(t, ledger.Remove(ctx, "missing"))
	assert.Len(t, ledger.Items(), 1)
}

func TestClearEmptiesLedger(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Add(ctx, LineItem{ProductID: "p1", PriceCents: 100, Quantity: 3}))
	require.NoError(t, ledger.Clear(ctx))

	assert.Equal(t, 0, ledger.ItemCount())
	assert.Equal(t, int64(0), ledger.SubtotalCents())
	assert.Empty(t, ledger.Items())
}

func TestItemCountSumsQuantities(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	assert.Equal(t, 0, ledger.ItemCount())
	require.NoError(t, ledger.Add(ctx, LineItem{ProductID: "a", Quantity: 2}))
	require.NoError(t, ledger.Add(ctx, LineItem{ProductID: "b", Quantity: 3}))
	assert.Equal(t, 5, ledger.ItemCount())
}

func TestLedgerReloadsFromStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	ledger, err := NewLedger(ctx, store)
	require.NoError(t, err)
	require.NoError(t, ledger.Add(ctx, LineItem{ProductID: "p1", PriceCents: 4999, Quantity: 2}))

	reloaded, err := NewLedger(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, ledger.Items(), reloaded.Items())
	assert.Equal(t, int64(9998), reloaded.SubtotalCents())
}

func TestIdentityKeyDeterministic(t *testing.T) {
	a := LineItem{ProductID: "p1", SelectedVariants: map[string]string{"size": "M", "color": "Gold"}}
	b := LineItem{ProductID: "p1", SelectedVariants: map[string]string{"color": "Gold", "size": "M"}}
	c := LineItem{ProductID: "p1", SelectedVariants: map[string]string{"color": "Silver", "size": "M"}}

	assert.Equal(t, a.IdentityKey(), b.IdentityKey())
	assert.NotEqual(t, a.IdentityKey(), c.IdentityKey())
	assert.Equal(t, "p2", LineItem{ProductID: "p2"}.IdentityKey())
}
