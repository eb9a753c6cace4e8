package laporan

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"inventorypos/models"
	"inventorypos/utils"
)

// importSheet adalah isi satu sheet dengan kolom yang sudah dipetakan
// dari header ke nama field.
type importSheet struct {
	col  map[string]int
	rows [][]string
}

func openImport(r io.Reader) (*excelize.File, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("file Excel tidak valid: %w", err)
	}
	if len(f.GetSheetList()) == 0 {
		f.Close()
		return nil, ErrImportKosong
	}
	return f, nil
}

// readSheet membaca sheet; baris pertama adalah header yang dicocokkan
// (case-insensitive) dengan daftar alias tiap field.
func readSheet(f *excelize.File, sheet string, aliases map[string][]string) (*importSheet, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrImportKosong
	}

	col := map[string]int{}
	for i, h := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(h))
		for field, names := range aliases {
			if _, done := col[field]; done {
				continue
			}
			for _, a := range names {
				if key == a {
					col[field] = i
					break
				}
			}
		}
	}
	return &importSheet{col: col, rows: rows[1:]}, nil
}

func (s *importSheet) get(row []string, field string) string {
	i, ok := s.col[field]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (s *importSheet) has(field string) bool {
	_, ok := s.col[field]
	return ok
}

func readFirstSheet(r io.Reader, aliases map[string][]string) (*importSheet, error) {
	f, err := openImport(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readSheet(f, f.GetSheetList()[0], aliases)
}

// ImportRow adalah satu baris produk dari file Excel. Kategori berupa nama, bukan ID.
type ImportRow struct {
	Baris        int
	NamaProduk   string
	Deskripsi    string
	HargaJual    int64
	Stok         int
	NamaKategori string
	LokasiRak    string
}

var produkHeaders = map[string][]string{
	"nama":      {"name", "product", "product name", "nama", "nama produk"},
	"deskripsi": {"description", "desc", "deskripsi"},
	"harga":     {"price", "harga", "harga jual"},
	"stok":      {"stock", "inventory", "quantity", "qty", "stok"},
	"kategori":  {"category", "kategori"},
	"lokasi":    {"racklocation", "rack", "location", "lokasi", "lokasi rak"},
}

// ImportProduk membaca sheet pertama. Baris tanpa nama dilewati.
func ImportProduk(r io.Reader) ([]ImportRow, error) {
	sheet, err := readFirstSheet(r, produkHeaders)
	if err != nil {
		return nil, err
	}

	var out []ImportRow
	for n, row := range sheet.rows {
		nama := sheet.get(row, "nama")
		if nama == "" {
			continue
		}
		stok, _ := strconv.Atoi(sheet.get(row, "stok"))
		if stok < 0 {
			stok = 0
		}
		lokasi := sheet.get(row, "lokasi")
		if lokasi == "" {
			lokasi = "A1"
		}
		out = append(out, ImportRow{
			Baris:        n + 2,
			NamaProduk:   nama,
			Deskripsi:    sheet.get(row, "deskripsi"),
			HargaJual:    utils.ParseRupiah(sheet.get(row, "harga")),
			Stok:         stok,
			NamaKategori: sheet.get(row, "kategori"),
			LokasiRak:    lokasi,
		})
	}
	if len(out) == 0 {
		return nil, ErrImportKosong
	}
	return out, nil
}

type ImportKategoriRow struct {
	Baris        int
	NamaKategori string
	Deskripsi    string
}

var kategoriHeaders = map[string][]string{
	"nama":      {"name", "category", "category name", "nama", "kategori", "nama kategori"},
	"deskripsi": {"description", "desc", "deskripsi"},
}

// ImportKategori membaca nama dan deskripsi kategori. Nama yang sama
// (case-insensitive) dalam satu file hanya diambil sekali.
func ImportKategori(r io.Reader) ([]ImportKategoriRow, error) {
	sheet, err := readFirstSheet(r, kategoriHeaders)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var out []ImportKategoriRow
	for n, row := range sheet.rows {
		nama := sheet.get(row, "nama")
		key := strings.ToLower(nama)
		if nama == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ImportKategoriRow{
			Baris:        n + 2,
			NamaKategori: nama,
			Deskripsi:    sheet.get(row, "deskripsi"),
		})
	}
	if len(out) == 0 {
		return nil, ErrImportKosong
	}
	return out, nil
}

type ImportPemasokRow struct {
	Baris   int
	Nama    string
	Email   string
	Telepon string
	Alamat  string
}

var pemasokHeaders = map[string][]string{
	"nama":    {"name", "suppliername", "supplier name", "supplier", "nama", "nama pemasok", "pemasok"},
	"email":   {"email", "e-mail"},
	"telepon": {"phone", "phonenumber", "phone number", "telepon", "telp", "no hp"},
	"alamat":  {"address", "alamat"},
}

// ImportPemasok membaca data pemasok. Baris tanpa nama dilewati.
func ImportPemasok(r io.Reader) ([]ImportPemasokRow, error) {
	sheet, err := readFirstSheet(r, pemasokHeaders)
	if err != nil {
		return nil, err
	}

	var out []ImportPemasokRow
	for n, row := range sheet.rows {
		nama := sheet.get(row, "nama")
		if nama == "" {
			continue
		}
		out = append(out, ImportPemasokRow{
			Baris:   n + 2,
			Nama:    nama,
			Email:   sheet.get(row, "email"),
			Telepon: sheet.get(row, "telepon"),
			Alamat:  sheet.get(row, "alamat"),
		})
	}
	if len(out) == 0 {
		return nil, ErrImportKosong
	}
	return out, nil
}

var transaksiAliases = map[string][]string{
	"nomor":     {"nomor struk", "no struk", "receiptnumber", "receipt number"},
	"tanggal":   {"tanggal", "date", "createdat", "created at"},
	"subtotal":  {"subtotal"},
	"total":     {"total"},
	"metode":    {"metode bayar", "metode", "paymentmethod", "payment method"},
	"diterima":  {"uang diterima", "cashreceived", "cash received"},
	"kembalian": {"kembalian", "change"},
}

var detailAliases = map[string][]string{
	"nomor":    {"nomor struk", "no struk", "receiptnumber", "receipt number"},
	"produk":   {"id produk", "produk id", "productid", "product id"},
	"nama":     {"nama produk", "productname", "product name"},
	"jumlah":   {"jumlah", "quantity", "qty"},
	"harga":    {"harga", "unitprice", "unit price"},
	"subtotal": {"subtotal"},
}

const detailSheet = "Detail Produk"

// ImportedProdukID dipakai untuk item pengganti pada transaksi impor tanpa detail.
const ImportedProdukID = "IMPORTED"

var tanggalLayouts = []string{
	"02-01-2006 15:04",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

func parseTanggal(s string, loc *time.Location) time.Time {
	for _, layout := range tanggalLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ImportTransaksi membaca riwayat transaksi dari sheet pertama. Jika file
// punya sheet "Detail Produk" (hasil ExportTransaksi), item dibangun dari
// sheet itu; selain itu setiap struk mendapat satu item "Imported Item"
// senilai total. Tanggal yang tidak terbaca dibiarkan zero. Nomor struk
// yang muncul dua kali hanya diambil yang pertama.
func ImportTransaksi(r io.Reader, loc *time.Location) ([]models.Transaksi, error) {
	if loc == nil {
		loc = time.Local
	}
	f, err := openImport(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	ringkas, err := readSheet(f, sheets[0], transaksiAliases)
	if err != nil {
		return nil, err
	}
	if !ringkas.has("nomor") {
		return nil, fmt.Errorf("kolom nomor struk tidak ditemukan: %w", ErrImportKosong)
	}

	items := map[string][]models.TransaksiItem{}
	for _, name := range sheets[1:] {
		if name != detailSheet {
			continue
		}
		detail, err := readSheet(f, name, detailAliases)
		if err != nil {
			break
		}
		for _, row := range detail.rows {
			nomor := detail.get(row, "nomor")
			jumlah, _ := strconv.Atoi(detail.get(row, "jumlah"))
			if nomor == "" || jumlah < 1 {
				continue
			}
			harga := utils.ParseRupiah(detail.get(row, "harga"))
			sub := utils.ParseRupiah(detail.get(row, "subtotal"))
			if sub == 0 {
				sub = harga * int64(jumlah)
			}
			items[nomor] = append(items[nomor], models.TransaksiItem{
				ProdukID:    detail.get(row, "produk"),
				NamaProduk:  detail.get(row, "nama"),
				Jumlah:      jumlah,
				HargaSatuan: harga,
				Subtotal:    sub,
			})
		}
	}

	seen := map[string]bool{}
	var out []models.Transaksi
	for _, row := range ringkas.rows {
		nomor := ringkas.get(row, "nomor")
		if nomor == "" || seen[nomor] {
			continue
		}
		seen[nomor] = true

		t := models.Transaksi{
			NomorStruk:   nomor,
			Total:        utils.ParseRupiah(ringkas.get(row, "total")),
			Subtotal:     utils.ParseRupiah(ringkas.get(row, "subtotal")),
			MetodeBayar:  models.MetodeCash,
			UangDiterima: utils.ParseRupiah(ringkas.get(row, "diterima")),
			Kembalian:    utils.ParseRupiah(ringkas.get(row, "kembalian")),
			CreatedAt:    parseTanggal(ringkas.get(row, "tanggal"), loc),
		}
		switch strings.ToLower(ringkas.get(row, "metode")) {
		case models.MetodeCard, "kartu":
			t.MetodeBayar = models.MetodeCard
			t.UangDiterima, t.Kembalian = t.Total, 0
		}

		t.Items = items[nomor]
		if len(t.Items) == 0 {
			t.Items = []models.TransaksiItem{{
				ProdukID:    ImportedProdukID,
				NamaProduk:  "Imported Item",
				Jumlah:      1,
				HargaSatuan: t.Total,
				Subtotal:    t.Total,
			}}
		}
		var itemTotal int64
		for _, it := range t.Items {
			t.TotalProduk += it.Jumlah
			itemTotal += it.Subtotal
		}
		if t.Subtotal == 0 {
			t.Subtotal = itemTotal
		}
		if t.Total == 0 {
			t.Total = t.Subtotal
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, ErrImportKosong
	}
	return out, nil
}
