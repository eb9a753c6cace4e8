package models

import "time"

const (
	MutasiMasuk  = "masuk"
	MutasiKeluar = "keluar"
	MutasiAdjust = "adjust"
)

type StokMutasi struct {
	ID         string    `json:"id" bson:"_id"`
	ProdukID   string    `json:"produk_id" bson:"produk_id"`
	Jenis      string    `json:"jenis" bson:"jenis"` // masuk / keluar / adjust
	Jumlah     int       `json:"jumlah" bson:"jumlah"`
	StokAkhir  int       `json:"stok_akhir,omitempty" bson:"stok_akhir,omitempty"`
	RefID      string    `json:"ref_id,omitempty" bson:"ref_id,omitempty"`
	RefType    string    `json:"ref_type,omitempty" bson:"ref_type,omitempty"` // contoh: transaksi, manual
	Keterangan string    `json:"keterangan,omitempty" bson:"keterangan,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
