package pos

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart           = errors.New("keranjang kosong")
	ErrInsufficientPayment = errors.New("uang diterima kurang dari total")
	ErrInsufficientStock   = errors.New("stok tidak mencukupi")
	ErrProdukNotFound      = errors.New("produk tidak ditemukan")
	ErrCheckoutInProgress  = errors.New("checkout sedang diproses")
	ErrSaleCompleted       = errors.New("penjualan sudah selesai, mulai transaksi baru")
	ErrMissingServerID     = errors.New("store tidak mengembalikan id transaksi")
)

// StockChange adalah satu pengurangan stok yang sudah diterapkan.
type StockChange struct {
	ProdukID string `json:"produk_id"`
	Sebelum  int    `json:"sebelum"`
	Sesudah  int    `json:"sesudah"`
}

// StockReconciliationError: baris ke-Line (mulai dari 1) gagal. Baris sebelumnya
// sudah dikurangi (Applied) dan tidak dikembalikan.
type StockReconciliationError struct {
	ProdukID string
	Line     int
	Applied  []StockChange
	Err      error
}

func (e *StockReconciliationError) Error() string {
	if e.ProdukID == "" {
		return fmt.Sprintf("rekonsiliasi stok gagal: %v", e.Err)
	}
	return fmt.Sprintf("rekonsiliasi stok gagal pada baris %d (produk %s): %v", e.Line, e.ProdukID, e.Err)
}

func (e *StockReconciliationError) Unwrap() error { return e.Err }

// PersistenceError: stok sudah berubah tapi transaksi gagal disimpan.
type PersistenceError struct {
	NomorStruk string
	Applied    []StockChange
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("gagal menyimpan transaksi %s: %v", e.NomorStruk, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsUserError membedakan kesalahan input kasir dari kegagalan sistem.
func IsUserError(err error) bool {
	return errors.Is(err, ErrEmptyCart) || errors.Is(err, ErrInsufficientPayment)
}

// UserMessage adalah satu pesan yang ditampilkan ke kasir.
func UserMessage(err error) string {
	var (
		stockErr   *StockReconciliationError
		persistErr *PersistenceError
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyCart):
		return "Keranjang masih kosong"
	case errors.Is(err, ErrInsufficientPayment):
		return "Uang yang diterima kurang dari total belanja"
	case errors.Is(err, ErrCheckoutInProgress):
		return "Checkout sedang diproses, tunggu sebentar"
	case errors.Is(err, ErrSaleCompleted):
		return "Transaksi sudah selesai, mulai transaksi baru"
	case errors.As(err, &stockErr):
		if len(stockErr.Applied) > 0 {
			return "Transaksi gagal. Sebagian stok sudah dikurangi, periksa stok secara manual"
		}
		return "Transaksi gagal: stok tidak dapat diperbarui"
	case errors.As(err, &persistErr):
		return "Transaksi mungkin tidak tercatat, padahal stok sudah dikurangi. Hubungi admin"
	case errors.Is(err, ErrProdukNotFound):
		return "Produk tidak ditemukan"
	}
	return "Transaksi gagal, silakan coba lagi"
}
