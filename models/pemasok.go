package models

import "time"

type Pemasok struct {
	ID        string    `json:"id" bson:"_id"`
	Nama      string    `json:"nama" bson:"nama"`
	Email     string    `json:"email,omitempty" bson:"email,omitempty"`
	Telepon   string    `json:"telepon,omitempty" bson:"telepon,omitempty"`
	Alamat    string    `json:"alamat,omitempty" bson:"alamat,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

type PemasokPatch struct {
	Nama    *string `json:"nama,omitempty"`
	Email   *string `json:"email,omitempty"`
	Telepon *string `json:"telepon,omitempty"`
	Alamat  *string `json:"alamat,omitempty"`
}

func (p PemasokPatch) Empty() bool {
	return p.Nama == nil && p.Email == nil && p.Telepon == nil && p.Alamat == nil
}

func (s *Pemasok) Apply(patch PemasokPatch) {
	if patch.Nama != nil {
		s.Nama = *patch.Nama
	}
	if patch.Email != nil {
		s.Email = *patch.Email
	}
	if patch.Telepon != nil {
		s.Telepon = *patch.Telepon
	}
	if patch.Alamat != nil {
		s.Alamat = *patch.Alamat
	}
}
