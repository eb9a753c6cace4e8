package models

import "time"

// DefaultKategori dipakai untuk produk tanpa kategori
const DefaultKategori = "Uncategorized"

type Kategori struct {
	ID           string    `json:"id" bson:"_id"`
	NamaKategori string    `json:"nama_kategori" bson:"nama_kategori"`
	Deskripsi    string    `json:"deskripsi,omitempty" bson:"deskripsi,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

type KategoriPatch struct {
	NamaKategori *string `json:"nama_kategori,omitempty"`
	Deskripsi    *string `json:"deskripsi,omitempty"`
}

func (p KategoriPatch) Empty() bool {
	return p.NamaKategori == nil && p.Deskripsi == nil
}

func (k *Kategori) Apply(patch KategoriPatch) {
	if patch.NamaKategori != nil {
		k.NamaKategori = *patch.NamaKategori
	}
	if patch.Deskripsi != nil {
		k.Deskripsi = *patch.Deskripsi
	}
}
