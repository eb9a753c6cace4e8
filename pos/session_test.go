package pos

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"inventorypos/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(catalog *fakeCatalog, store *fakeStore) *Session {
	co := NewCheckout(catalog, store)
	return NewSession(catalog, co, NewReceiptNumbers("TRX"), nil)
}

func TestSessionFullSale(t *testing.T) {
	ctx := context.Background()
	catalog := newFakeCatalog(produk("P1", "Kopi", 10000, 5), produk("P2", "Roti", 5000, 3))
	store := &fakeStore{}
	s := newTestSession(catalog, store)

	_, _, err := s.RefreshCatalog(ctx)
	require.NoError(t, err)

	first := s.View().NomorStruk
	assert.True(t, strings.HasPrefix(first, "TRX-"))

	_, warnings, err := s.AddItem(ctx, "P1")
	require.NoError(t, err)
	require.Empty(t, warnings)
	_, w, err := s.SetQuantity("P1", 2)
	require.NoError(t, err)
	require.Nil(t, w)
	_, _, err = s.AddItem(ctx, "P2")
	require.NoError(t, err)

	v, err := s.SetPayment(Cash, 30000)
	require.NoError(t, err)
	assert.EqualValues(t, 25000, v.GrandTotal)
	assert.EqualValues(t, 5000, v.Payment.ChangeDue)

	a, err := s.Checkout(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, a.Transaksi.NomorStruk)
	assert.True(t, s.View().Completed)

	// keranjang terkunci setelah selesai
	_, _, err = s.AddItem(ctx, "P1")
	assert.ErrorIs(t, err, ErrSaleCompleted)
	_, err = s.Checkout(ctx)
	assert.ErrorIs(t, err, ErrSaleCompleted)
	assert.Equal(t, 1, store.count())

	v, _, err = s.NewSale(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first, v.NomorStruk)
	assert.Empty(t, v.Items)
	assert.EqualValues(t, 0, v.Payment.CashTendered)
	assert.False(t, v.Completed)

	// struk terakhir tetap tersedia
	require.NotNil(t, s.LastCompleted())
	assert.Equal(t, first, s.LastCompleted().NomorStruk)

	// snapshot baru dipakai untuk batas stok
	p, ok := s.cart.Product("P1")
	require.True(t, ok)
	assert.Equal(t, 3, p.Stok)
}

func TestSessionUnknownProduct(t *testing.T) {
	s := newTestSession(newFakeCatalog(produk("P1", "Kopi", 10000, 5)), &fakeStore{})
	_, _, err := s.AddItem(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrProdukNotFound)
}

func TestSessionFailedCheckoutKeepsCart(t *testing.T) {
	ctx := context.Background()
	catalog := newFakeCatalog(produk("P1", "Kopi", 10000, 5))
	s := newTestSession(catalog, &fakeStore{})

	_, _, err := s.AddItem(ctx, "P1")
	require.NoError(t, err)
	_, err = s.SetPayment(Cash, 5000)
	require.NoError(t, err)

	a, err := s.Checkout(ctx)
	assert.ErrorIs(t, err, ErrInsufficientPayment)
	assert.Equal(t, StateFailed, a.State)

	v := s.View()
	assert.False(t, v.Completed)
	assert.Len(t, v.Items, 1)
	assert.EqualValues(t, 5000, v.Payment.CashTendered)

	// kasir boleh memperbaiki pembayaran lalu mencoba lagi
	_, err = s.SetPayment(Cash, 10000)
	require.NoError(t, err)
	_, err = s.Checkout(ctx)
	require.NoError(t, err)
}

type blockingCatalog struct {
	*fakeCatalog
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (b *blockingCatalog) UpdateProduk(ctx context.Context, id string, patch models.ProdukPatch) (*models.Produk, error) {
	b.once.Do(func() { close(b.entered) })
	<-b.release
	return b.fakeCatalog.UpdateProduk(ctx, id, patch)
}

func TestSessionRejectsMutationDuringCheckout(t *testing.T) {
	ctx := context.Background()
	inner := newFakeCatalog(produk("P1", "Kopi", 10000, 5))
	catalog := &blockingCatalog{fakeCatalog: inner, entered: make(chan struct{}), release: make(chan struct{})}
	s := NewSession(catalog, NewCheckout(catalog, &fakeStore{}), nil, nil)

	_, _, err := s.AddItem(ctx, "P1")
	require.NoError(t, err)
	_, err = s.SetPayment(Card, 0)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := s.Checkout(ctx)
		done <- err
	}()

	select {
	case <-catalog.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("checkout tidak pernah mencapai rekonsiliasi stok")
	}

	assert.True(t, s.View().Processing)
	_, _, err = s.AddItem(ctx, "P1")
	assert.ErrorIs(t, err, ErrCheckoutInProgress)
	_, err = s.Clear()
	assert.ErrorIs(t, err, ErrCheckoutInProgress)
	_, err = s.Checkout(ctx)
	assert.ErrorIs(t, err, ErrCheckoutInProgress)
	_, _, err = s.NewSale(ctx)
	assert.ErrorIs(t, err, ErrCheckoutInProgress)

	close(catalog.release)
	require.NoError(t, <-done)
	assert.Equal(t, 4, inner.stock("P1"))
}

func TestSessionRefreshClampsCart(t *testing.T) {
	ctx := context.Background()
	catalog := newFakeCatalog(produk("P1", "Kopi", 10000, 5))
	s := newTestSession(catalog, &fakeStore{})

	_, _, err := s.AddItem(ctx, "P1")
	require.NoError(t, err)
	_, _, err = s.SetQuantity("P1", 4)
	require.NoError(t, err)

	catalog.setStock("P1", 2)
	_, warnings, err := s.RefreshCatalog(ctx)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnClamped, warnings[0].Code)
	assert.Equal(t, 2, s.View().Items[0].Jumlah)
}

func TestSessionAddUnknownReportsRefreshAdjustments(t *testing.T) {
	ctx := context.Background()
	catalog := newFakeCatalog(produk("P1", "Kopi", 10000, 5))
	s := newTestSession(catalog, &fakeStore{})

	_, _, err := s.AddItem(ctx, "P1")
	require.NoError(t, err)
	_, _, err = s.SetQuantity("P1", 4)
	require.NoError(t, err)

	// P2 belum ada di snapshot, penambahannya memicu refresh
	catalog.setStock("P1", 1)
	catalog.add(produk("P2", "Roti", 5000, 3))

	v, warnings, err := s.AddItem(ctx, "P2")
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnClamped, warnings[0].Code)
	assert.Equal(t, "P1", warnings[0].ProdukID)

	require.Len(t, v.Items, 2)
	assert.Equal(t, 1, v.Items[0].Jumlah)
	assert.Equal(t, 1, v.Items[1].Jumlah)
	assert.EqualValues(t, 15000, v.Subtotal)
}

func TestSessionAddUnknownKeepsWarningsOnNotFound(t *testing.T) {
	ctx := context.Background()
	catalog := newFakeCatalog(produk("P1", "Kopi", 10000, 5))
	s := newTestSession(catalog, &fakeStore{})

	_, _, err := s.AddItem(ctx, "P1")
	require.NoError(t, err)
	catalog.setStock("P1", 0)

	v, warnings, err := s.AddItem(ctx, "nope")
	assert.ErrorIs(t, err, ErrProdukNotFound)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnRemoved, warnings[0].Code)
	assert.Empty(t, v.Items)
}

func TestSessionAddOutOfStockAfterRefresh(t *testing.T) {
	ctx := context.Background()
	catalog := newFakeCatalog(produk("P1", "Kopi", 10000, 5))
	s := newTestSession(catalog, &fakeStore{})
	catalog.add(produk("P2", "Teh", 3000, 0))

	_, warnings, err := s.AddItem(ctx, "P2")
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnOutOfStock, warnings[0].Code)
}
