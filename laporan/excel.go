package laporan

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"inventorypos/models"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var ErrImportKosong = errors.New("tidak ada baris yang valid")

type sheetWriter struct {
	f     *excelize.File
	style int
}

func newWorkbook() (*sheetWriter, error) {
	f := excelize.NewFile()
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	return &sheetWriter{f: f, style: style}, nil
}

func (w *sheetWriter) headers(sheet string, headers []string) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		w.f.SetCellValue(sheet, cell, h)
		w.f.SetCellStyle(sheet, cell, cell, w.style)
	}
}

func (w *sheetWriter) row(sheet string, row int, values []interface{}) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		w.f.SetCellValue(sheet, cell, v)
	}
}

// finish memasang autofilter dan freeze header.
func (w *sheetWriter) finish(sheet string, cols int) error {
	last, _ := excelize.CoordinatesToCellName(cols, 1)
	if err := w.f.AutoFilter(sheet, "A1:"+last, []excelize.AutoFilterOptions{}); err != nil {
		return err
	}
	return w.f.SetPanes(sheet, &excelize.Panes{Freeze: true, Split: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

func (w *sheetWriter) buffer() (*bytes.Buffer, error) {
	w.f.SetActiveSheet(0)
	defer w.f.Close()
	return w.f.WriteToBuffer()
}

func NamaFileTransaksi(tanggal string) string {
	return fmt.Sprintf("transaction_history_%s.xlsx", tanggal)
}

// ExportTransaksi: sheet "Ringkasan Transaksi" satu baris per struk,
// sheet "Detail Produk" satu baris per item plus total di bawah tabel.
func ExportTransaksi(list []models.Transaksi) (*bytes.Buffer, error) {
	w, err := newWorkbook()
	if err != nil {
		return nil, err
	}

	sheetRingkas := "Ringkasan Transaksi"
	w.f.SetSheetName("Sheet1", sheetRingkas)
	ringkasHeaders := []string{"Nomor Struk", "Tanggal", "Jumlah Item", "Subtotal", "Total", "Metode Bayar", "Uang Diterima", "Kembalian"}
	w.headers(sheetRingkas, ringkasHeaders)

	sheetDetail := detailSheet
	if _, err := w.f.NewSheet(sheetDetail); err != nil {
		return nil, err
	}
	detailHeaders := []string{"Nomor Struk", "Tanggal", "ID Produk", "Nama Produk", "Jumlah", "Harga", "Subtotal"}
	w.headers(sheetDetail, detailHeaders)

	rowR, rowD := 2, 2
	var totalOmzet int64
	for _, t := range list {
		var diterima, kembalian interface{} = "N/A", "N/A"
		if t.MetodeBayar == models.MetodeCash {
			diterima, kembalian = t.UangDiterima, t.Kembalian
		}
		w.row(sheetRingkas, rowR, []interface{}{
			t.NomorStruk,
			t.CreatedAt.Format("02-01-2006 15:04"),
			t.TotalProduk,
			t.Subtotal,
			t.Total,
			strings.ToUpper(t.MetodeBayar),
			diterima,
			kembalian,
		})
		rowR++
		totalOmzet += t.Total

		for _, it := range t.Items {
			w.row(sheetDetail, rowD, []interface{}{
				t.NomorStruk,
				t.CreatedAt.Format("02-01-2006 15:04"),
				it.ProdukID,
				it.NamaProduk,
				it.Jumlah,
				it.HargaSatuan,
				it.Subtotal,
			})
			rowD++
		}
	}

	summaryRow := rowD + 1
	w.f.SetCellValue(sheetDetail, fmt.Sprintf("F%d", summaryRow), "TOTAL OMZET")
	w.f.SetCellValue(sheetDetail, fmt.Sprintf("G%d", summaryRow), totalOmzet)

	if err := w.finish(sheetRingkas, len(ringkasHeaders)); err != nil {
		return nil, err
	}
	if err := w.finish(sheetDetail, len(detailHeaders)); err != nil {
		return nil, err
	}
	return w.buffer()
}

func ExportProduk(products []models.Produk, kategori []models.Kategori) (*bytes.Buffer, error) {
	w, err := newWorkbook()
	if err != nil {
		return nil, err
	}
	names := namaKategoriMap(kategori)

	sheet := "Produk"
	w.f.SetSheetName("Sheet1", sheet)
	headers := []string{"ID", "SKU", "Nama Produk", "Kategori", "Deskripsi", "Harga", "Stok", "Lokasi Rak", "Nilai Stok"}
	w.headers(sheet, headers)

	for i, p := range products {
		nama, ok := names[p.KategoriID]
		if !ok {
			nama = tanpaKategori
		}
		w.row(sheet, i+2, []interface{}{
			p.ID, p.SKU, p.NamaProduk, nama, p.Deskripsi,
			p.HargaJual, p.Stok, p.LokasiRak, p.HargaJual * int64(p.Stok),
		})
	}
	if err := w.finish(sheet, len(headers)); err != nil {
		return nil, err
	}
	return w.buffer()
}

func ExportPemasok(list []models.Pemasok) (*bytes.Buffer, error) {
	w, err := newWorkbook()
	if err != nil {
		return nil, err
	}
	sheet := "Pemasok"
	w.f.SetSheetName("Sheet1", sheet)
	headers := []string{"Nama", "Email", "Telepon", "Alamat", "Dibuat", "Diubah"}
	w.headers(sheet, headers)

	for i, s := range list {
		w.row(sheet, i+2, []interface{}{
			s.Nama, s.Email, s.Telepon, s.Alamat,
			s.CreatedAt.Format("02-01-2006 15:04"), s.UpdatedAt.Format("02-01-2006 15:04"),
		})
	}
	if err := w.finish(sheet, len(headers)); err != nil {
		return nil, err
	}
	return w.buffer()
}
