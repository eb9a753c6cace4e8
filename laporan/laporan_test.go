package laporan

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"inventorypos/models"
)

func sampleKatalog() ([]models.Produk, []models.Kategori) {
	kategori := []models.Kategori{
		{ID: "KTG001", NamaKategori: "Minuman"},
		{ID: "KTG002", NamaKategori: "Makanan"},
	}
	products := []models.Produk{
		{ID: "PRD001", SKU: "MIN-KOP-001", NamaProduk: "Kopi", KategoriID: "KTG001", HargaJual: 10000, Stok: 20, LokasiRak: "A1"},
		{ID: "PRD002", SKU: "MAK-ROT-002", NamaProduk: "Roti", KategoriID: "KTG002", HargaJual: 5000, Stok: 3},
		{ID: "PRD003", SKU: "MIN-TEH-003", NamaProduk: "Teh", KategoriID: "KTG001", HargaJual: 3000, Stok: 0, LokasiRak: "B2"},
		{ID: "PRD004", SKU: "XXX-GUL-004", NamaProduk: "Gula", KategoriID: "HILANG", HargaJual: 15000, Stok: 6},
	}
	return products, kategori
}

func TestHitungRingkasan(t *testing.T) {
	products, kategori := sampleKatalog()
	r := HitungRingkasan(products, kategori, 5)

	assert.Equal(t, 4, r.TotalProduk)
	assert.Equal(t, 29, r.TotalStok)
	assert.Equal(t, int64(200000+15000+90000), r.NilaiStok)
	assert.Equal(t, 1, r.StokHabis)
	assert.Equal(t, 1, r.StokMenipis)
	assert.Equal(t, 2, r.StokSehat)

	require.Len(t, r.PerKategori, 3)
	assert.Equal(t, "Minuman", r.PerKategori[0].NamaKategori)
	assert.Equal(t, 2, r.PerKategori[0].JumlahProduk)
	assert.Equal(t, int64(200000), r.PerKategori[0].NilaiStok)
	assert.Equal(t, "Tidak Terkategori", r.PerKategori[2].NamaKategori)

	assert.Equal(t, "PRD001", r.TopNilai[0].ID)
	assert.Equal(t, "PRD004", r.TopNilai[1].ID)
	assert.Equal(t, "PRD001", r.TopStok[0].ID)
	assert.Len(t, r.TopStok, 4)
}

func TestHitungRingkasanKosong(t *testing.T) {
	r := HitungRingkasan(nil, nil, 5)
	assert.Zero(t, r.TotalProduk)
	assert.NotNil(t, r.TopNilai)
	assert.NotNil(t, r.PerKategori)
}

func TestCariStokAlert(t *testing.T) {
	products, _ := sampleKatalog()
	a := CariStokAlert(products, 3)
	require.Len(t, a.Habis, 1)
	assert.Equal(t, "PRD003", a.Habis[0].ID)
	require.Len(t, a.Menipis, 1)
	assert.Equal(t, "PRD002", a.Menipis[0].ID)
}

func TestAlertMessage(t *testing.T) {
	products, kategori := sampleKatalog()
	now := time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC)

	msg := AlertMessage(AlertHabis, []models.Produk{products[2]}, kategori, now)
	assert.True(t, strings.HasPrefix(msg, "🚨 *LAPORAN STOK BARANG HABIS*\n📅 Jumat, 10 Januari 2025\n\n"))
	assert.Contains(t, msg, "📦 *Minuman*\n1. Teh (SKU: MIN-TEH-003)\n   💰 Harga: Rp 3.000\n   📍 Lokasi: B2\n")
	assert.Contains(t, msg, "🔢 *Total Produk Habis: 1*")
	assert.NotContains(t, msg, "Stok Tersisa")

	msg = AlertMessage(AlertMenipis, []models.Produk{products[1]}, kategori, now)
	assert.Contains(t, msg, "⚠️ *LAPORAN STOK BARANG MENIPIS*")
	assert.Contains(t, msg, "📍 Lokasi: N/A\n   📊 Stok Tersisa: 3\n")
	assert.Contains(t, msg, "🔢 *Total Produk Stok Menipis: 1*")

	assert.Empty(t, AlertMessage(AlertHabis, nil, kategori, now))
}

func sampleTransaksi() []models.Transaksi {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return []models.Transaksi{
		{
			NomorStruk: "TRX-1", MetodeBayar: models.MetodeCash, CreatedAt: at,
			Items: []models.TransaksiItem{
				{ProdukID: "P1", NamaProduk: "Kopi", Jumlah: 2, HargaSatuan: 10000, Subtotal: 20000},
				{ProdukID: "P2", NamaProduk: "Roti", Jumlah: 1, HargaSatuan: 5000, Subtotal: 5000},
			},
			TotalProduk: 3, Subtotal: 25000, Total: 25000, UangDiterima: 30000, Kembalian: 5000,
		},
		{
			NomorStruk: "TRX-2", MetodeBayar: models.MetodeCard, CreatedAt: at.Add(time.Hour),
			Items: []models.TransaksiItem{
				{ProdukID: "P2", NamaProduk: "Roti", Jumlah: 2, HargaSatuan: 5000, Subtotal: 10000},
			},
			TotalProduk: 2, Subtotal: 10000, Total: 10000, UangDiterima: 10000,
		},
	}
}

func TestBestSellers(t *testing.T) {
	best := BestSellers(sampleTransaksi(), 5)
	require.Len(t, best, 2)
	assert.Equal(t, "P2", best[0].ProdukID)
	assert.Equal(t, 3, best[0].Terjual)
	assert.Equal(t, int64(15000), best[0].Pendapatan)

	assert.Len(t, BestSellers(sampleTransaksi(), 1), 1)
	assert.Empty(t, BestSellers(nil, 5))
}

func TestHitungPenjualan(t *testing.T) {
	r := HitungPenjualan(sampleTransaksi())
	assert.Equal(t, 2, r.JumlahTransaksi)
	assert.Equal(t, 5, r.ProdukTerjual)
	assert.Equal(t, int64(35000), r.Omzet)
	assert.Equal(t, int64(25000), r.Tunai)
	assert.Equal(t, int64(10000), r.Kartu)
}

func TestParsePeriode(t *testing.T) {
	loc := time.UTC

	f, err := ParsePeriode("2025-01-01", "2025-01-31", "", "", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, loc), f.Start)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, loc), f.End)

	f, err = ParsePeriode("", "", "2", "2024", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, loc), f.End)

	f, err = ParsePeriode("", "", "", "2024", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, loc), f.End)

	f, err = ParsePeriode("", "", "", "", loc)
	require.NoError(t, err)
	assert.True(t, f.Start.IsZero())
	assert.True(t, f.End.IsZero())

	cases := [][4]string{
		{"2025-01-01", "", "", ""},
		{"01-01-2025", "2025-01-02", "", ""},
		{"2025-02-01", "2025-01-01", "", ""},
		{"", "", "3", ""},
		{"", "", "13", "2024"},
		{"", "", "", "abc"},
	}
	for _, c := range cases {
		_, err := ParsePeriode(c[0], c[1], c[2], c[3], loc)
		assert.Error(t, err, "%v", c)
	}
}

func TestTanggalPanjang(t *testing.T) {
	assert.Equal(t, "Minggu, 17 Agustus 2025", TanggalPanjang(time.Date(2025, 8, 17, 0, 0, 0, 0, time.UTC)))
}

func TestExportTransaksi(t *testing.T) {
	buf, err := ExportTransaksi(sampleTransaksi())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Ringkasan Transaksi", "Detail Produk"}, f.GetSheetList())

	rows, err := f.GetRows("Ringkasan Transaksi")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Nomor Struk", rows[0][0])
	assert.Equal(t, "TRX-1", rows[1][0])
	assert.Equal(t, "30000", rows[1][6])
	assert.Equal(t, "N/A", rows[2][6])
	assert.Equal(t, "N/A", rows[2][7])

	detail, err := f.GetRows("Detail Produk")
	require.NoError(t, err)
	// header, 3 item, baris kosong, total
	require.Len(t, detail, 6)
	assert.Equal(t, "TOTAL OMZET", detail[5][5])
	assert.Equal(t, "35000", detail[5][6])
}

func TestExportProdukDanPemasok(t *testing.T) {
	products, kategori := sampleKatalog()
	buf, err := ExportProduk(products, kategori)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	rows, err := f.GetRows("Produk")
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "Minuman", rows[1][3])
	assert.Equal(t, "Tidak Terkategori", rows[4][3])
	f.Close()

	buf, err = ExportPemasok([]models.Pemasok{{Nama: "PT Sumber", Email: "a@b.id"}})
	require.NoError(t, err)
	f, err = excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	rows, err = f.GetRows("Pemasok")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "PT Sumber", rows[1][0])
	f.Close()
}

func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestImportProduk(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		{"Product Name", "Harga", "Qty", "Kategori", "Lokasi Rak", "Desc"},
		{"Kopi Susu", 12000, 10, "Minuman", "C3", "gula aren"},
		{"", 5000, 1, "", "", ""},
		{"Roti Tawar", "Rp 15.000", -4, "", "", ""},
	})

	rows, err := ImportProduk(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Kopi Susu", rows[0].NamaProduk)
	assert.Equal(t, int64(12000), rows[0].HargaJual)
	assert.Equal(t, 10, rows[0].Stok)
	assert.Equal(t, "Minuman", rows[0].NamaKategori)
	assert.Equal(t, "C3", rows[0].LokasiRak)
	assert.Equal(t, "gula aren", rows[0].Deskripsi)
	assert.Equal(t, 2, rows[0].Baris)

	assert.Equal(t, int64(15000), rows[1].HargaJual)
	assert.Equal(t, 0, rows[1].Stok)
	assert.Equal(t, "A1", rows[1].LokasiRak)
	assert.Equal(t, 4, rows[1].Baris)
}

func TestImportProdukKosong(t *testing.T) {
	_, err := ImportProduk(workbook(t, [][]interface{}{{"Name", "Price"}}))
	assert.ErrorIs(t, err, ErrImportKosong)

	_, err = ImportProduk(strings.NewReader("bukan excel"))
	assert.Error(t, err)
}

func TestImportKategori(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		{"Category Name", "Description"},
		{"Minuman", "Kopi, teh"},
		{"", "tanpa nama"},
		{"minuman", "duplikat"},
		{"Sembako", ""},
	})

	rows, err := ImportKategori(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, ImportKategoriRow{Baris: 2, NamaKategori: "Minuman", Deskripsi: "Kopi, teh"}, rows[0])
	assert.Equal(t, "Sembako", rows[1].NamaKategori)
	assert.Equal(t, 5, rows[1].Baris)

	_, err = ImportKategori(workbook(t, [][]interface{}{{"Kategori"}, {""}}))
	assert.ErrorIs(t, err, ErrImportKosong)
}

func TestImportPemasokRoundTrip(t *testing.T) {
	list := []models.Pemasok{
		{Nama: "PT Sumber", Email: "a@b.id", Telepon: "0812", Alamat: "Jl. Merdeka 1"},
		{Nama: "CV Makmur"},
	}
	buf, err := ExportPemasok(list)
	require.NoError(t, err)

	rows, err := ImportPemasok(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, ImportPemasokRow{Baris: 2, Nama: "PT Sumber", Email: "a@b.id", Telepon: "0812", Alamat: "Jl. Merdeka 1"}, rows[0])
	assert.Equal(t, "CV Makmur", rows[1].Nama)

	rows, err = ImportPemasok(workbook(t, [][]interface{}{
		{"Supplier Name", "Phone Number", "Address"},
		{"UD Jaya", "0813", "Bandung"},
	}))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "0813", rows[0].Telepon)
	assert.Equal(t, "Bandung", rows[0].Alamat)
}

func TestImportTransaksiRoundTrip(t *testing.T) {
	want := sampleTransaksi()
	buf, err := ExportTransaksi(want)
	require.NoError(t, err)

	got, err := ImportTransaksi(buf, time.UTC)
	require.NoError(t, err)
	require.Len(t, got, 2)

	for i := range want {
		assert.Empty(t, got[i].ID)
		assert.Equal(t, want[i].NomorStruk, got[i].NomorStruk)
		assert.Equal(t, want[i].Items, got[i].Items)
		assert.Equal(t, want[i].TotalProduk, got[i].TotalProduk)
		assert.Equal(t, want[i].Subtotal, got[i].Subtotal)
		assert.Equal(t, want[i].Total, got[i].Total)
		assert.Equal(t, want[i].MetodeBayar, got[i].MetodeBayar)
		assert.Equal(t, want[i].UangDiterima, got[i].UangDiterima)
		assert.Equal(t, want[i].Kembalian, got[i].Kembalian)
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt), "%v != %v", want[i].CreatedAt, got[i].CreatedAt)
	}
}

func TestImportTransaksiTanpaDetail(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		{"Receipt Number", "Date", "Total", "Payment Method", "Cash Received", "Change"},
		{"TRX-9", "2025-02-03", 20000, "cash", 50000, 30000},
		{"TRX-9", "2025-02-03", 99999, "cash", 0, 0},
		{"TRX-10", "bukan tanggal", 12000, "card", "N/A", "N/A"},
		{"", "2025-02-03", 1000, "cash", 1000, 0},
	})

	got, err := ImportTransaksi(buf, time.UTC)
	require.NoError(t, err)
	require.Len(t, got, 2)

	first := got[0]
	assert.Equal(t, "TRX-9", first.NomorStruk)
	assert.Equal(t, int64(20000), first.Total)
	assert.Equal(t, int64(20000), first.Subtotal)
	assert.Equal(t, int64(50000), first.UangDiterima)
	assert.Equal(t, int64(30000), first.Kembalian)
	assert.True(t, first.CreatedAt.Equal(time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)), first.CreatedAt)
	require.Len(t, first.Items, 1)
	assert.Equal(t, models.TransaksiItem{ProdukID: ImportedProdukID, NamaProduk: "Imported Item", Jumlah: 1, HargaSatuan: 20000, Subtotal: 20000}, first.Items[0])
	assert.Equal(t, 1, first.TotalProduk)

	second := got[1]
	assert.Equal(t, models.MetodeCard, second.MetodeBayar)
	assert.Equal(t, int64(12000), second.UangDiterima)
	assert.Zero(t, second.Kembalian)
	assert.True(t, second.CreatedAt.IsZero())
}

func TestImportTransaksiTanpaKolomNomor(t *testing.T) {
	_, err := ImportTransaksi(workbook(t, [][]interface{}{{"Total"}, {1000}}), time.UTC)
	assert.ErrorIs(t, err, ErrImportKosong)
}
