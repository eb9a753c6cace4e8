package laporan

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"inventorypos/models"
	"inventorypos/utils"
)

const tanpaKategori = "Tidak Terkategori"

type ProdukNilai struct {
	ID         string `json:"id"`
	NamaProduk string `json:"nama_produk"`
	Stok       int    `json:"stok"`
	Nilai      int64  `json:"nilai"`
}

type KategoriStat struct {
	KategoriID   string `json:"kategori_id"`
	NamaKategori string `json:"nama_kategori"`
	JumlahProduk int    `json:"jumlah_produk"`
	NilaiStok    int64  `json:"nilai_stok"`
}

type Ringkasan struct {
	TotalProduk int            `json:"total_produk"`
	TotalStok   int            `json:"total_stok"`
	NilaiStok   int64          `json:"nilai_stok"`
	StokHabis   int            `json:"stok_habis"`
	StokMenipis int            `json:"stok_menipis"`
	StokSehat   int            `json:"stok_sehat"`
	PerKategori []KategoriStat `json:"per_kategori"`
	TopNilai    []ProdukNilai  `json:"top_nilai"`
	TopStok     []ProdukNilai  `json:"top_stok"`
}

func namaKategoriMap(kategori []models.Kategori) map[string]string {
	m := make(map[string]string, len(kategori))
	for _, k := range kategori {
		m[k.ID] = k.NamaKategori
	}
	return m
}

// HitungRingkasan menghitung ringkasan inventaris. Produk dengan
// 0 < stok <= batasMenipis dihitung menipis.
func HitungRingkasan(products []models.Produk, kategori []models.Kategori, batasMenipis int) Ringkasan {
	names := namaKategoriMap(kategori)
	r := Ringkasan{TotalProduk: len(products)}

	perKat := map[string]*KategoriStat{}
	var order []string
	all := make([]ProdukNilai, 0, len(products))

	for _, p := range products {
		nilai := p.HargaJual * int64(p.Stok)
		r.TotalStok += p.Stok
		r.NilaiStok += nilai
		switch {
		case p.Stok <= 0:
			r.StokHabis++
		case p.Stok <= batasMenipis:
			r.StokMenipis++
		default:
			r.StokSehat++
		}

		st, ok := perKat[p.KategoriID]
		if !ok {
			nama, found := names[p.KategoriID]
			if !found {
				nama = tanpaKategori
			}
			st = &KategoriStat{KategoriID: p.KategoriID, NamaKategori: nama}
			perKat[p.KategoriID] = st
			order = append(order, p.KategoriID)
		}
		st.JumlahProduk++
		st.NilaiStok += nilai

		all = append(all, ProdukNilai{ID: p.ID, NamaProduk: p.NamaProduk, Stok: p.Stok, Nilai: nilai})
	}

	r.PerKategori = make([]KategoriStat, 0, len(order))
	for _, id := range order {
		r.PerKategori = append(r.PerKategori, *perKat[id])
	}

	byNilai := append([]ProdukNilai(nil), all...)
	sort.SliceStable(byNilai, func(i, j int) bool { return byNilai[i].Nilai > byNilai[j].Nilai })
	r.TopNilai = top(byNilai, 5)

	byStok := append([]ProdukNilai(nil), all...)
	sort.SliceStable(byStok, func(i, j int) bool { return byStok[i].Stok > byStok[j].Stok })
	r.TopStok = top(byStok, 5)
	return r
}

func top(list []ProdukNilai, n int) []ProdukNilai {
	if len(list) > n {
		return list[:n]
	}
	if list == nil {
		return []ProdukNilai{}
	}
	return list
}

type StokAlert struct {
	Habis   []models.Produk `json:"habis"`
	Menipis []models.Produk `json:"menipis"`
}

// CariStokAlert: habis = stok 0, menipis = 0 < stok <= batas.
func CariStokAlert(products []models.Produk, batas int) StokAlert {
	a := StokAlert{Habis: []models.Produk{}, Menipis: []models.Produk{}}
	for _, p := range products {
		switch {
		case p.Stok <= 0:
			a.Habis = append(a.Habis, p)
		case p.Stok <= batas:
			a.Menipis = append(a.Menipis, p)
		}
	}
	return a
}

type AlertKind string

const (
	AlertHabis   AlertKind = "habis"
	AlertMenipis AlertKind = "menipis"
)

// AlertMessage menyusun laporan Markdown untuk Telegram, dikelompokkan per kategori.
// Mengembalikan string kosong bila tidak ada produk.
func AlertMessage(kind AlertKind, products []models.Produk, kategori []models.Kategori, now time.Time) string {
	if len(products) == 0 {
		return ""
	}
	names := namaKategoriMap(kategori)

	var groups []string
	byKat := map[string][]models.Produk{}
	for _, p := range products {
		nama, ok := names[p.KategoriID]
		if !ok {
			nama = tanpaKategori
		}
		if _, seen := byKat[nama]; !seen {
			groups = append(groups, nama)
		}
		byKat[nama] = append(byKat[nama], p)
	}

	var sb strings.Builder
	if kind == AlertHabis {
		sb.WriteString("🚨 *LAPORAN STOK BARANG HABIS*\n")
	} else {
		sb.WriteString("⚠️ *LAPORAN STOK BARANG MENIPIS*\n")
	}
	fmt.Fprintf(&sb, "📅 %s\n\n", TanggalPanjang(now))

	for gi, nama := range groups {
		fmt.Fprintf(&sb, "📦 *%s*\n", nama)
		for i, p := range byKat[nama] {
			lokasi := p.LokasiRak
			if lokasi == "" {
				lokasi = "N/A"
			}
			fmt.Fprintf(&sb, "%d. %s (SKU: %s)\n   💰 Harga: %s\n   📍 Lokasi: %s\n",
				i+1, p.NamaProduk, p.SKU, utils.FormatRupiah(p.HargaJual), lokasi)
			if kind == AlertMenipis {
				fmt.Fprintf(&sb, "   📊 Stok Tersisa: %d\n", p.Stok)
			}
		}
		if gi < len(groups)-1 {
			sb.WriteString("\n")
		}
	}

	if kind == AlertHabis {
		fmt.Fprintf(&sb, "\n🔢 *Total Produk Habis: %d*\n", len(products))
		sb.WriteString("💬 Segera lakukan pembelian untuk mengisi kembali stok yang habis.")
	} else {
		fmt.Fprintf(&sb, "\n🔢 *Total Produk Stok Menipis: %d*\n", len(products))
		sb.WriteString("💬 Segera persiapkan pembelian untuk mengisi kembali stok yang menipis.")
	}
	return sb.String()
}
