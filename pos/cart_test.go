package pos

import (
	"math/rand"
	"testing"

	"inventorypos/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertAggregates(t *testing.T, c *Cart) {
	t.Helper()
	var sum int64
	for _, l := range c.Lines() {
		assert.Equal(t, l.HargaSatuan*int64(l.Jumlah), l.Subtotal, "subtotal baris %s", l.ProdukID)
		assert.GreaterOrEqual(t, l.Jumlah, 1)
		sum += l.Subtotal
	}
	assert.Equal(t, sum, c.Subtotal())
	assert.Equal(t, c.Subtotal(), c.GrandTotal())
}

func TestCartSubtotalAndChange(t *testing.T) {
	c := NewCart()
	kopi := produk("P1", "Kopi", 10000, 10)
	roti := produk("P2", "Roti", 5000, 10)

	require.Nil(t, c.AddItem(kopi))
	require.Nil(t, c.AddItem(kopi))
	require.Nil(t, c.AddItem(roti))

	assert.EqualValues(t, 25000, c.Subtotal())
	assert.EqualValues(t, 25000, c.GrandTotal())

	c.SetCashTendered(30000)
	assert.EqualValues(t, 5000, c.Payment().ChangeDue)

	// kembalian ikut berubah saat keranjang berubah
	c.RemoveItem("P2")
	assert.EqualValues(t, 10000, c.Payment().ChangeDue)
	assertAggregates(t, c)
}

func TestCartAddOutOfStock(t *testing.T) {
	c := NewCart()
	w := c.AddItem(produk("P1", "Teh", 3000, 0))
	require.NotNil(t, w)
	assert.Equal(t, WarnOutOfStock, w.Code)
	assert.Equal(t, 0, c.Len())
	assert.EqualValues(t, 0, c.Subtotal())
}

func TestCartAddBeyondStock(t *testing.T) {
	c := NewCart()
	p := produk("P1", "Gula", 15000, 2)
	require.Nil(t, c.AddItem(p))
	require.Nil(t, c.AddItem(p))

	w := c.AddItem(p)
	require.NotNil(t, w)
	assert.Equal(t, WarnStockLimit, w.Code)
	assert.Equal(t, 2, c.Lines()[0].Jumlah)
}

func TestCartAddUsesLatestRecord(t *testing.T) {
	c := NewCart()
	require.Nil(t, c.AddItem(produk("P1", "Gula", 15000, 5)))

	// record terbaru: stok tinggal 1
	w := c.AddItem(produk("P1", "Gula", 15000, 1))
	require.NotNil(t, w)
	assert.Equal(t, WarnStockLimit, w.Code)
	assert.Equal(t, 1, c.Lines()[0].Jumlah)
}

func TestCartSetQuantity(t *testing.T) {
	c := NewCart()
	require.Nil(t, c.AddItem(produk("P1", "Minyak", 20000, 5)))

	assert.Nil(t, c.SetQuantity("P1", 0), "n < 1 adalah no-op")
	assert.Equal(t, 1, c.Lines()[0].Jumlah)

	w := c.SetQuantity("P1", 6)
	require.NotNil(t, w)
	assert.Equal(t, WarnStockLimit, w.Code)
	assert.Equal(t, 1, c.Lines()[0].Jumlah)

	require.Nil(t, c.SetQuantity("P1", 5))
	assert.EqualValues(t, 100000, c.Subtotal())

	w = c.SetQuantity("P9", 1)
	require.NotNil(t, w)
	assert.Equal(t, WarnNotInCart, w.Code)
}

func TestCartRemoveAbsentIsNoop(t *testing.T) {
	c := NewCart()
	require.Nil(t, c.AddItem(produk("P1", "Kopi", 10000, 3)))
	c.RemoveItem("nope")
	assert.Equal(t, 1, c.Len())
}

func TestCartClearResetsEverything(t *testing.T) {
	c := NewCart()
	require.Nil(t, c.AddItem(produk("P1", "Kopi", 10000, 3)))
	c.SetCashTendered(50000)

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.EqualValues(t, 0, c.Subtotal())
	assert.EqualValues(t, 0, c.GrandTotal())
	assert.EqualValues(t, 0, c.Payment().CashTendered)
	assert.EqualValues(t, 0, c.Payment().ChangeDue)
}

func TestCartCardPayment(t *testing.T) {
	c := NewCart()
	require.Nil(t, c.AddItem(produk("P1", "Kopi", 10000, 3)))
	c.SetCashTendered(50000)
	c.SetPaymentMethod(Card)

	p := c.Payment()
	assert.EqualValues(t, 0, p.ChangeDue)
	assert.EqualValues(t, 10000, p.Received(c.GrandTotal()))
	assert.True(t, p.sufficient(c.GrandTotal()))
}

func TestCartInsertionOrder(t *testing.T) {
	c := NewCart()
	require.Nil(t, c.AddItem(produk("B", "B", 1000, 5)))
	require.Nil(t, c.AddItem(produk("A", "A", 1000, 5)))
	require.Nil(t, c.AddItem(produk("B", "B", 1000, 5)))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "B", lines[0].ProdukID)
	assert.Equal(t, 2, lines[0].Jumlah)
	assert.Equal(t, "A", lines[1].ProdukID)
}

func TestCartRefreshSnapshotClampsAndDrops(t *testing.T) {
	c := NewCart()
	a := produk("A", "Apel", 2000, 5)
	b := produk("B", "Jeruk", 3000, 5)
	for i := 0; i < 4; i++ {
		require.Nil(t, c.AddItem(a))
	}
	require.Nil(t, c.AddItem(b))

	warnings := c.RefreshSnapshot([]models.Produk{
		produk("A", "Apel", 2000, 2),
		produk("B", "Jeruk", 3000, 0),
	})
	require.Len(t, warnings, 2)
	assert.Equal(t, WarnClamped, warnings[0].Code)
	assert.Equal(t, WarnRemoved, warnings[1].Code)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Jumlah)
	assertAggregates(t, c)
}

func TestCartAggregatesHoldForRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	catalog := []models.Produk{
		produk("A", "A", 1500, 4),
		produk("B", "B", 2750, 2),
		produk("C", "C", 10000, 0),
		produk("D", "D", 500, 9),
	}

	c := NewCart()
	for step := 0; step < 500; step++ {
		p := catalog[rng.Intn(len(catalog))]
		before := c.Lines()
		switch rng.Intn(3) {
		case 0:
			c.AddItem(p)
			if p.Stok == 0 {
				assert.Equal(t, before, c.Lines(), "produk stok 0 tidak boleh masuk")
			}
		case 1:
			n := rng.Intn(12) - 1
			c.SetQuantity(p.ID, n)
			if n > p.Stok {
				assert.Equal(t, before, c.Lines(), "jumlah di atas stok tidak boleh diterapkan")
			}
		case 2:
			c.RemoveItem(p.ID)
		}
		assertAggregates(t, c)
		for _, l := range c.Lines() {
			stok, _ := c.Product(l.ProdukID)
			assert.LessOrEqual(t, l.Jumlah, stok.Stok)
		}
	}
}

func TestParsePaymentMethod(t *testing.T) {
	m, err := ParsePaymentMethod(" CASH ")
	require.NoError(t, err)
	assert.Equal(t, Cash, m)

	m, err = ParsePaymentMethod("card")
	require.NoError(t, err)
	assert.Equal(t, Card, m)

	_, err = ParsePaymentMethod("qris")
	assert.Error(t, err)
}
