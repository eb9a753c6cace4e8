package laporan

import (
	"sort"

	"inventorypos/models"
)

type BestSeller struct {
	ProdukID   string `json:"produk_id"`
	NamaProduk string `json:"nama_produk"`
	Terjual    int    `json:"terjual"`
	Pendapatan int64  `json:"pendapatan"`
}

// BestSellers mengurutkan produk berdasarkan jumlah terjual, lalu pendapatan.
func BestSellers(list []models.Transaksi, limit int) []BestSeller {
	agg := map[string]*BestSeller{}
	for _, t := range list {
		for _, it := range t.Items {
			b, ok := agg[it.ProdukID]
			if !ok {
				b = &BestSeller{ProdukID: it.ProdukID, NamaProduk: it.NamaProduk}
				agg[it.ProdukID] = b
			}
			b.Terjual += it.Jumlah
			b.Pendapatan += it.Subtotal
		}
	}

	out := make([]BestSeller, 0, len(agg))
	for _, b := range agg {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Terjual != out[j].Terjual {
			return out[i].Terjual > out[j].Terjual
		}
		if out[i].Pendapatan != out[j].Pendapatan {
			return out[i].Pendapatan > out[j].Pendapatan
		}
		return out[i].ProdukID < out[j].ProdukID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

type RingkasanPenjualan struct {
	JumlahTransaksi int   `json:"jumlah_transaksi"`
	ProdukTerjual   int   `json:"produk_terjual"`
	Omzet           int64 `json:"omzet"`
	Tunai           int64 `json:"tunai"`
	Kartu           int64 `json:"kartu"`
}

func HitungPenjualan(list []models.Transaksi) RingkasanPenjualan {
	var r RingkasanPenjualan
	for _, t := range list {
		r.JumlahTransaksi++
		r.ProdukTerjual += t.TotalProduk
		r.Omzet += t.Total
		if t.MetodeBayar == models.MetodeCash {
			r.Tunai += t.Total
		} else {
			r.Kartu += t.Total
		}
	}
	return r
}
