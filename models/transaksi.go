package models

import "time"

const (
	MetodeCash = "cash"
	MetodeCard = "card"
)

type TransaksiItem struct {
	ProdukID    string `json:"produk_id" bson:"produk_id"`
	NamaProduk  string `json:"nama_produk" bson:"nama_produk"`
	Jumlah      int    `json:"jumlah" bson:"jumlah"`
	HargaSatuan int64  `json:"harga_satuan" bson:"harga_satuan"`
	Subtotal    int64  `json:"subtotal" bson:"subtotal"`
}

// Transaksi adalah penjualan yang sudah selesai. Tidak pernah diupdate setelah disimpan.
type Transaksi struct {
	ID           string          `json:"id" bson:"_id"`
	NomorStruk   string          `json:"nomor_struk" bson:"nomor_struk"`
	Items        []TransaksiItem `json:"items" bson:"items"`
	TotalProduk  int             `json:"total_produk" bson:"total_produk"`
	Subtotal     int64           `json:"subtotal" bson:"subtotal"`
	Pajak        int64           `json:"pajak" bson:"pajak"`
	Total        int64           `json:"total" bson:"total"`
	MetodeBayar  string          `json:"metode_bayar" bson:"metode_bayar"`
	UangDiterima int64           `json:"uang_diterima" bson:"uang_diterima"`
	Kembalian    int64           `json:"kembalian" bson:"kembalian"`
	CreatedAt    time.Time       `json:"created_at" bson:"created_at"`
}

// TransaksiFilter membatasi created_at ke [Start, End). Zero value berarti tanpa batas.
type TransaksiFilter struct {
	Start time.Time
	End   time.Time
	Limit int
}

func (f TransaksiFilter) Match(t Transaksi) bool {
	if !f.Start.IsZero() && t.CreatedAt.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && !t.CreatedAt.Before(f.End) {
		return false
	}
	return true
}
