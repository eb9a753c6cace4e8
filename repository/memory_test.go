package repository

import (
	"context"
	"testing"
	"time"

	"inventorypos/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryProdukLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	k, err := EnsureDefaultKategori(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultKategori, k.NamaKategori)

	again, err := EnsureDefaultKategori(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, k.ID, again.ID, "kategori default tidak boleh dibuat dua kali")

	p := &models.Produk{NamaProduk: "Beras 5kg", KategoriID: k.ID, HargaJual: 65000, Stok: 10}
	require.NoError(t, m.CreateProduk(ctx, p))
	assert.NotEmpty(t, p.ID)

	n, err := m.CountProdukByKategori(ctx, k.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	updated, err := m.UpdateProduk(ctx, p.ID, models.StokPatch(4))
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Stok)
	assert.Equal(t, "Beras 5kg", updated.NamaProduk)

	_, err = m.UpdateProduk(ctx, p.ID, models.StokPatch(-1))
	assert.ErrorIs(t, err, ErrStokNegatif)

	_, err = m.UpdateProduk(ctx, "missing", models.StokPatch(1))
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.DeleteProduk(ctx, p.ID))
	_, err = m.GetProduk(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCreateProdukUnknownKategori(t *testing.T) {
	m := NewMemory()
	err := m.CreateProduk(context.Background(), &models.Produk{NamaProduk: "X", KategoriID: "nope"})
	assert.ErrorIs(t, err, ErrKategoriNotFound)
}

func TestMemoryTransaksiFilterAndOrder(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	base := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		_, err := m.AppendTransaksi(ctx, &models.Transaksi{
			NomorStruk: "TRX-" + string(rune('A'+i)),
			Total:      int64(1000 * (i + 1)),
			CreatedAt:  base.Add(time.Duration(i) * 24 * time.Hour),
		})
		require.NoError(t, err)
	}

	all, err := m.ListTransaksi(ctx, models.TransaksiFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "TRX-C", all[0].NomorStruk)

	ranged, err := m.ListTransaksi(ctx, models.TransaksiFilter{
		Start: base.Add(24 * time.Hour),
		End:   base.Add(48 * time.Hour),
	})
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, "TRX-B", ranged[0].NomorStruk)

	limited, err := m.ListTransaksi(ctx, models.TransaksiFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestMemoryAppendAssignsServerID(t *testing.T) {
	m := NewMemory()
	saved, err := m.AppendTransaksi(context.Background(), &models.Transaksi{NomorStruk: "TRX-1-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.NotEqual(t, saved.NomorStruk, saved.ID)

	got, err := m.GetTransaksi(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "TRX-1-1", got.NomorStruk)
}

func TestLedgerRecordsKeluarMutations(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	p := &models.Produk{NamaProduk: "Gula", HargaJual: 15000, Stok: 5}
	require.NoError(t, m.CreateProduk(ctx, p))

	l := WithLedger(m, m, nil)
	saved, err := l.AppendTransaksi(ctx, &models.Transaksi{
		NomorStruk: "TRX-9-9",
		Items: []models.TransaksiItem{
			{ProdukID: p.ID, NamaProduk: "Gula", Jumlah: 2, HargaSatuan: 15000, Subtotal: 30000},
			{ProdukID: "hilang", NamaProduk: "Hilang", Jumlah: 1, HargaSatuan: 1000, Subtotal: 1000},
		},
	})
	require.NoError(t, err, "mutasi yang gagal tidak boleh menggagalkan transaksi")

	muts, err := m.ListMutasiByProduk(ctx, p.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, muts, 1)
	assert.Equal(t, models.MutasiKeluar, muts[0].Jenis)
	assert.Equal(t, 2, muts[0].Jumlah)
	assert.Equal(t, saved.ID, muts[0].RefID)
}
