package repository

import (
	"context"
	"errors"

	"inventorypos/models"
)

var (
	ErrNotFound         = errors.New("data tidak ditemukan")
	ErrKategoriNotFound = errors.New("kategori tidak ditemukan")
	ErrProdukNotFound   = errors.New("produk tidak ditemukan")
	ErrStokNegatif      = errors.New("stok tidak boleh negatif")
)

type ProdukStore interface {
	ListProduk(ctx context.Context) ([]models.Produk, error)
	GetProduk(ctx context.Context, id string) (*models.Produk, error)
	CreateProduk(ctx context.Context, p *models.Produk) error
	UpdateProduk(ctx context.Context, id string, patch models.ProdukPatch) (*models.Produk, error)
	DeleteProduk(ctx context.Context, id string) error
	CountProdukByKategori(ctx context.Context, kategoriID string) (int, error)
}

type KategoriStore interface {
	ListKategori(ctx context.Context) ([]models.Kategori, error)
	GetKategori(ctx context.Context, id string) (*models.Kategori, error)
	FindKategoriByNama(ctx context.Context, nama string) (*models.Kategori, error)
	CreateKategori(ctx context.Context, k *models.Kategori) error
	UpdateKategori(ctx context.Context, id string, patch models.KategoriPatch) (*models.Kategori, error)
	DeleteKategori(ctx context.Context, id string) error
}

type PemasokStore interface {
	ListPemasok(ctx context.Context) ([]models.Pemasok, error)
	GetPemasok(ctx context.Context, id string) (*models.Pemasok, error)
	CreatePemasok(ctx context.Context, s *models.Pemasok) error
	UpdatePemasok(ctx context.Context, id string, patch models.PemasokPatch) (*models.Pemasok, error)
	DeletePemasok(ctx context.Context, id string) error
}

type MutasiStore interface {
	CreateMutasi(ctx context.Context, m *models.StokMutasi) error
	ListMutasiByProduk(ctx context.Context, produkID string, page, pageSize int) ([]models.StokMutasi, error)
}

// TransaksiStore is append-only: there is no update path for a completed sale.
type TransaksiStore interface {
	AppendTransaksi(ctx context.Context, t *models.Transaksi) (*models.Transaksi, error)
	ListTransaksi(ctx context.Context, filter models.TransaksiFilter) ([]models.Transaksi, error)
	GetTransaksi(ctx context.Context, id string) (*models.Transaksi, error)
}

// CatalogStore groups everything the inventory side owns.
type CatalogStore interface {
	ProdukStore
	KategoriStore
	PemasokStore
	MutasiStore
}

// EnsureDefaultKategori memastikan kategori "Uncategorized" tersedia.
func EnsureDefaultKategori(ctx context.Context, store KategoriStore) (*models.Kategori, error) {
	k, err := store.FindKategoriByNama(ctx, models.DefaultKategori)
	if err == nil {
		return k, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	k = &models.Kategori{
		NamaKategori: models.DefaultKategori,
		Deskripsi:    "Default category for products",
	}
	if err := store.CreateKategori(ctx, k); err != nil {
		return nil, err
	}
	return k, nil
}
