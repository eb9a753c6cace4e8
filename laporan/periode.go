// Package laporan berisi perhitungan laporan stok dan penjualan serta
// import/export Excel. Semua fungsi di sini murni: data dibaca oleh controller.
package laporan

import (
	"fmt"
	"time"

	"inventorypos/models"
)

// ParsePeriode membangun filter created_at dari query.
// Prioritas: start+end, lalu month+year, lalu year. Tanpa parameter berarti semua data.
func ParsePeriode(startStr, endStr, monthStr, yearStr string, loc *time.Location) (models.TransaksiFilter, error) {
	if loc == nil {
		loc = time.Local
	}

	if startStr != "" || endStr != "" {
		if startStr == "" || endStr == "" {
			return models.TransaksiFilter{}, fmt.Errorf("start dan end harus diisi bersamaan")
		}
		startDate, errStart := time.ParseInLocation("2006-01-02", startStr, loc)
		endDate, errEnd := time.ParseInLocation("2006-01-02", endStr, loc)
		if errStart != nil || errEnd != nil {
			return models.TransaksiFilter{}, fmt.Errorf("format tanggal harus YYYY-MM-DD")
		}
		if endDate.Before(startDate) {
			return models.TransaksiFilter{}, fmt.Errorf("end tidak boleh sebelum start")
		}
		return models.TransaksiFilter{Start: startDate, End: endDate.AddDate(0, 0, 1)}, nil
	}

	if monthStr != "" {
		if yearStr == "" {
			return models.TransaksiFilter{}, fmt.Errorf("year wajib diisi jika month digunakan")
		}
		year, err := parseYear(yearStr)
		if err != nil {
			return models.TransaksiFilter{}, err
		}
		var month int
		if _, err := fmt.Sscanf(monthStr, "%d", &month); err != nil || month < 1 || month > 12 {
			return models.TransaksiFilter{}, fmt.Errorf("month tidak valid")
		}
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
		return models.TransaksiFilter{Start: start, End: start.AddDate(0, 1, 0)}, nil
	}

	if yearStr != "" {
		year, err := parseYear(yearStr)
		if err != nil {
			return models.TransaksiFilter{}, err
		}
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		return models.TransaksiFilter{Start: start, End: start.AddDate(1, 0, 0)}, nil
	}

	return models.TransaksiFilter{}, nil
}

func parseYear(s string) (int, error) {
	var year int
	if _, err := fmt.Sscanf(s, "%d", &year); err != nil || year < 1900 {
		return 0, fmt.Errorf("year tidak valid")
	}
	return year, nil
}

var (
	namaHari  = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}
	namaBulan = [...]string{"Januari", "Februari", "Maret", "April", "Mei", "Juni", "Juli",
		"Agustus", "September", "Oktober", "November", "Desember"}
)

// TanggalPanjang: "Jumat, 10 Januari 2025".
func TanggalPanjang(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d", namaHari[t.Weekday()], t.Day(), namaBulan[t.Month()-1], t.Year())
}
