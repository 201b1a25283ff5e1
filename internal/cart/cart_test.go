package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/phumgame/internal/common"
	"github.com/dmitrijs2005/phumgame/internal/logging"
	"github.com/dmitrijs2005/phumgame/internal/models"
	"github.com/dmitrijs2005/phumgame/internal/storage"
)

var (
	chrono = models.Product{ID: 1, Name: "Chrono", Category: "RPG", Price: 10}
	blitz  = models.Product{ID: 2, Name: "Blitz", Category: "Action", Price: 19.99}
)

func newCart(t *testing.T) (Service, *storage.MemoryStore, *[]int) {
	t.Helper()
	store := storage.NewMemoryStore()
	var counts []int
	svc := NewService(store, logging.Nop(), func(n int) { counts = append(counts, n) })
	return svc, store, &counts
}

func TestCart_EmptyTotalIsZero(t *testing.T) {
	svc, _, _ := newCart(t)
	ctx := context.Background()

	total, err := svc.CalculateTotal(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCart_AddTwiceMergesLine(t *testing.T) {
	svc, _, counts := newCart(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, chrono))
	require.NoError(t, svc.AddItem(ctx, chrono))

	lines, err := svc.Lines(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)

	total, err := svc.CalculateTotal(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20.0, total)
	assert.Equal(t, []int{1, 2}, *counts)
}

func TestCart_PersistsEveryMutation(t *testing.T) {
	svc, store, _ := newCart(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, blitz))
	raw, ok, err := store.Get(ctx, common.KeyCart)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":2,"name":"Blitz","price":19.99,"category":"Action","quantity":1}]`, raw)

	// a second service over the same store sees the same cart
	other := NewService(store, logging.Nop(), nil)
	n, err := other.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCart_LineKeepsPriceSnapshot(t *testing.T) {
	svc, _, _ := newCart(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, chrono))
	repriced := chrono
	repriced.Price = 99
	repriced.Name = "Chrono Deluxe"
	require.NoError(t, svc.AddItem(ctx, repriced))

	lines, err := svc.Lines(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Chrono", lines[0].Name)
	assert.Equal(t, 10.0, lines[0].Price)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCart_UpdateQuantity(t *testing.T) {
	svc, _, counts := newCart(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, chrono))
	require.NoError(t, svc.AddItem(ctx, blitz))

	require.NoError(t, svc.UpdateQuantity(ctx, chrono.ID, 5))
	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	require.NoError(t, svc.UpdateQuantity(ctx, chrono.ID, 0))
	lines, err := svc.Lines(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, blitz.ID, lines[0].ID)

	require.NoError(t, svc.UpdateQuantity(ctx, blitz.ID, -3))
	lines, err = svc.Lines(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)

	assert.Equal(t, []int{1, 2, 6, 1, 0}, *counts)
}

func TestCart_UnknownIDIsNoop(t *testing.T) {
	svc, _, counts := newCart(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, chrono))
	require.NoError(t, svc.UpdateQuantity(ctx, 99, 3))
	require.NoError(t, svc.RemoveItem(ctx, 99))

	lines, err := svc.Lines(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, []int{1}, *counts)
}

func TestCart_RemoveAndClear(t *testing.T) {
	svc, _, _ := newCart(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, chrono))
	require.NoError(t, svc.AddItem(ctx, blitz))
	require.NoError(t, svc.RemoveItem(ctx, chrono.ID))

	lines, err := svc.Lines(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, blitz.ID, lines[0].ID)

	require.NoError(t, svc.Clear(ctx))
	lines, err = svc.Lines(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCart_CorruptStoredCart(t *testing.T) {
	svc, store, _ := newCart(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, common.KeyCart, "{oops"))

	err := svc.AddItem(ctx, chrono)
	assert.ErrorIs(t, err, storage.ErrCorrupt)
}

type failingStore struct{ *storage.MemoryStore }

func (failingStore) Set(context.Context, string, string) error { return errors.New("disk full") }

func TestCart_SaveErrorSkipsObserver(t *testing.T) {
	called := false
	svc := NewService(failingStore{storage.NewMemoryStore()}, logging.Nop(), func(int) { called = true })

	err := svc.AddItem(context.Background(), chrono)
	require.Error(t, err)
	assert.False(t, called)
}

func TestCart_SyncPublishesStoredCount(t *testing.T) {
	svc, store, counts := newCart(t)
	ctx := context.Background()
	require.NoError(t, svc.AddItem(ctx, chrono))

	require.NoError(t, store.Set(ctx, common.KeyCart, "[]"))
	require.NoError(t, svc.Sync(ctx))
	assert.Equal(t, []int{1, 0}, *counts)

	require.NoError(t, store.Set(ctx, common.KeyCart, "{oops"))
	assert.ErrorIs(t, svc.Sync(ctx), storage.ErrCorrupt)
	assert.Equal(t, []int{1, 0}, *counts)
}
