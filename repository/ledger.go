package repository

import (
	"context"
	"fmt"

	"inventorypos/models"

	"go.uber.org/zap"
)

// Ledger membungkus TransaksiStore: setiap transaksi yang tersimpan juga
// dicatat sebagai mutasi stok "keluar" per item.
type Ledger struct {
	TransaksiStore
	Mutasi MutasiStore
	Logger *zap.Logger
}

func WithLedger(trx TransaksiStore, mutasi MutasiStore, logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ledger{TransaksiStore: trx, Mutasi: mutasi, Logger: logger}
}

func (l *Ledger) AppendTransaksi(ctx context.Context, t *models.Transaksi) (*models.Transaksi, error) {
	saved, err := l.TransaksiStore.AppendTransaksi(ctx, t)
	if err != nil {
		return nil, err
	}

	// Pencatatan mutasi tidak boleh menggagalkan transaksi
	for _, item := range saved.Items {
		mut := &models.StokMutasi{
			ProdukID:   item.ProdukID,
			Jenis:      models.MutasiKeluar,
			Jumlah:     item.Jumlah,
			RefID:      saved.ID,
			RefType:    "transaksi",
			Keterangan: fmt.Sprintf("Penjualan %s", saved.NomorStruk),
			CreatedAt:  saved.CreatedAt,
		}
		if err := l.Mutasi.CreateMutasi(ctx, mut); err != nil {
			l.Logger.Warn("gagal mencatat mutasi stok",
				zap.String("produk_id", item.ProdukID),
				zap.String("transaksi_id", saved.ID),
				zap.Error(err))
		}
	}
	return saved, nil
}
