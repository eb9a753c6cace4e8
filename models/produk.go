package models

import (
	"time"
)

type Produk struct {
	ID         string    `json:"id" bson:"_id"`
	SKU        string    `json:"sku" bson:"sku"`
	NamaProduk string    `json:"nama_produk" bson:"nama_produk"`
	KategoriID string    `json:"kategori_id" bson:"kategori_id"`
	Deskripsi  string    `json:"deskripsi" bson:"deskripsi"`
	HargaJual  int64     `json:"harga_jual" bson:"harga_jual"`
	Stok       int       `json:"stok" bson:"stok"`
	LokasiRak  string    `json:"lokasi_rak" bson:"lokasi_rak"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

// ProdukSwagger adalah struct khusus untuk dokumentasi Swagger response
type ProdukSwagger struct {
	ID         string    `json:"id" example:"PRD001"`
	SKU        string    `json:"sku" example:"SEM-BER-001"`
	NamaProduk string    `json:"nama_produk" example:"Beras 5kg"`
	KategoriID string    `json:"kategori_id" example:"KTG001"`
	Deskripsi  string    `json:"deskripsi" example:"Beras premium wangi pandan"`
	HargaJual  int64     `json:"harga_jual" example:"65000"`
	Stok       int       `json:"stok" example:"100"`
	LokasiRak  string    `json:"lokasi_rak" example:"A1"`
	CreatedAt  time.Time `json:"created_at" example:"2025-01-01T10:00:00Z"`
}

// ProdukInput adalah struct untuk input data produk (tanpa ID, SKU dan CreatedAt)
type ProdukInput struct {
	NamaProduk string `json:"nama_produk" example:"Beras 5kg"`
	KategoriID string `json:"kategori_id" example:"KTG001"`
	Deskripsi  string `json:"deskripsi" example:"Beras premium wangi pandan"`
	HargaJual  int64  `json:"harga_jual" example:"65000"`
	Stok       int    `json:"stok" example:"100"`
	LokasiRak  string `json:"lokasi_rak" example:"A1"`
}

// ProdukPatch carries a partial update. Nil fields are left untouched.
type ProdukPatch struct {
	NamaProduk *string `json:"nama_produk,omitempty"`
	KategoriID *string `json:"kategori_id,omitempty"`
	Deskripsi  *string `json:"deskripsi,omitempty"`
	HargaJual  *int64  `json:"harga_jual,omitempty"`
	Stok       *int    `json:"stok,omitempty"`
	LokasiRak  *string `json:"lokasi_rak,omitempty"`
}

func (p ProdukPatch) Empty() bool {
	return p.NamaProduk == nil && p.KategoriID == nil && p.Deskripsi == nil &&
		p.HargaJual == nil && p.Stok == nil && p.LokasiRak == nil
}

// Apply copies the set fields of patch onto p. SKU is never changed.
func (p *Produk) Apply(patch ProdukPatch) {
	if patch.NamaProduk != nil {
		p.NamaProduk = *patch.NamaProduk
	}
	if patch.KategoriID != nil {
		p.KategoriID = *patch.KategoriID
	}
	if patch.Deskripsi != nil {
		p.Deskripsi = *patch.Deskripsi
	}
	if patch.HargaJual != nil {
		p.HargaJual = *patch.HargaJual
	}
	if patch.Stok != nil {
		p.Stok = *patch.Stok
	}
	if patch.LokasiRak != nil {
		p.LokasiRak = *patch.LokasiRak
	}
}

// StokPatch builds a patch that only sets stok.
func StokPatch(stok int) ProdukPatch {
	return ProdukPatch{Stok: &stok}
}
