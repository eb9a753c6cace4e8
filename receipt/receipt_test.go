package receipt

import (
	"testing"
	"time"

	"inventorypos/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransaksi(metode string) *models.Transaksi {
	t := &models.Transaksi{
		ID:         "TRS001",
		NomorStruk: "TRX-1736480000000-42",
		Items: []models.TransaksiItem{
			{ProdukID: "PRD001", NamaProduk: "Kopi Susu", Jumlah: 2, HargaSatuan: 10000, Subtotal: 20000},
			{ProdukID: "PRD002", NamaProduk: "Roti <Keju>", Jumlah: 1, HargaSatuan: 5000, Subtotal: 5000},
		},
		TotalProduk: 3,
		Subtotal:    25000,
		Total:       25000,
		MetodeBayar: metode,
		CreatedAt:   time.Date(2025, 1, 10, 3, 30, 0, 0, time.UTC),
	}
	if metode == models.MetodeCash {
		t.UangDiterima = 30000
		t.Kembalian = 5000
	} else {
		t.UangDiterima = 25000
	}
	return t
}

func TestRenderCash(t *testing.T) {
	r := Render(sampleTransaksi(models.MetodeCash), Options{})

	assert.Equal(t, DefaultSystemName, r.SystemName)
	assert.Equal(t, "10/01/2025 10:30:00", r.Tanggal, "default zona WIB")
	require.Len(t, r.Lines, 2)
	assert.Equal(t, "Rp 10.000", r.Lines[0].HargaSatuan)
	assert.Equal(t, "Rp 20.000", r.Lines[0].Subtotal)
	assert.Equal(t, "Rp 25.000", r.Subtotal)
	assert.Equal(t, "Rp 25.000", r.Total)
	assert.Equal(t, "CASH", r.MetodeBayar)
	assert.True(t, r.Tunai)
	assert.Equal(t, "Rp 30.000", r.UangDiterima)
	assert.Equal(t, "Rp 5.000", r.Kembalian)
	assert.Equal(t, "receipt-TRX-1736480000000-42.txt", r.FileName())

	text, err := r.Text()
	require.NoError(t, err)
	assert.Contains(t, text, "Receipt #: TRX-1736480000000-42")
	assert.Contains(t, text, "2 x Rp 10.000 = Rp 20.000")
	assert.Contains(t, text, "Cash: Rp 30.000")
	assert.Contains(t, text, "Change: Rp 5.000")

	html, err := r.HTML()
	require.NoError(t, err)
	assert.Contains(t, html, "Cash Received:")
	assert.Contains(t, html, "Roti &lt;Keju&gt;")
}

func TestRenderCardOmitsCashLines(t *testing.T) {
	r := Render(sampleTransaksi(models.MetodeCard), Options{SystemName: "TOKO MANBIG"})

	assert.False(t, r.Tunai)
	assert.Empty(t, r.UangDiterima)
	assert.Empty(t, r.Kembalian)

	text, err := r.Text()
	require.NoError(t, err)
	assert.Contains(t, text, "TOKO MANBIG")
	assert.Contains(t, text, "Payment: CARD")
	assert.NotContains(t, text, "Cash:")
	assert.NotContains(t, text, "Change:")

	html, err := r.HTML()
	require.NoError(t, err)
	assert.NotContains(t, html, "Cash Received:")
}

func TestRenderIsIdempotent(t *testing.T) {
	trx := sampleTransaksi(models.MetodeCash)
	first := Render(trx, Options{})
	second := Render(trx, Options{})
	assert.Equal(t, first, second)

	t1, err := first.Text()
	require.NoError(t, err)
	t2, err := second.Text()
	require.NoError(t, err)
	assert.Equal(t, t1, t2)

	h1, _ := first.HTML()
	h2, _ := second.HTML()
	assert.Equal(t, h1, h2)
}
