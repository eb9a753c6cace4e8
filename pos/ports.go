// Package pos berisi keranjang kasir dan alur checkout: validasi pembayaran,
// pengurangan stok berurutan, penyimpanan transaksi dan notifikasi.
package pos

import (
	"context"

	"inventorypos/models"
)

// CatalogStore adalah bagian katalog yang dibutuhkan kasir.
type CatalogStore interface {
	ListProduk(ctx context.Context) ([]models.Produk, error)
	UpdateProduk(ctx context.Context, id string, patch models.ProdukPatch) (*models.Produk, error)
}

// TransactionStore harus mengembalikan ID server yang berbeda dari nomor struk.
type TransactionStore interface {
	AppendTransaksi(ctx context.Context, t *models.Transaksi) (*models.Transaksi, error)
}

// Notifier mengirim teks secara best-effort. Hasil false hanya dicatat di log.
type Notifier interface {
	Send(ctx context.Context, text string) bool
}

// Recorder menerima hasil checkout untuk metrics.
type Recorder interface {
	ObserveCheckout(result string)
	ObserveStageFailure(stage string)
	ObserveNotification(delivered bool)
}

type nopRecorder struct{}

func (nopRecorder) ObserveCheckout(string)     {}
func (nopRecorder) ObserveStageFailure(string) {}
func (nopRecorder) ObserveNotification(bool)   {}
