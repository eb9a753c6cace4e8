package utils

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatAngka memformat bilangan bulat dengan pemisah ribuan Indonesia (25.000).
func FormatAngka(n int64) string {
	return idPrinter.Sprintf("%d", n)
}

// FormatRupiah memformat nominal tanpa desimal, contoh: Rp 25.000
func FormatRupiah(n int64) string {
	if n < 0 {
		return "-Rp " + FormatAngka(-n)
	}
	return "Rp " + FormatAngka(n)
}

var ErrNominalTerlaluBesar = errors.New("nominal terlalu besar")

// ParseRupiah mengambil digit saja dari input kasir ("Rp 30.000" -> 30000).
// Input tanpa digit atau di luar jangkauan int64 menghasilkan 0.
func ParseRupiah(s string) int64 {
	n, _ := ParseRupiahStrict(s)
	return n
}

// ParseRupiahStrict sama dengan ParseRupiah tapi melaporkan nominal yang
// tidak muat di int64.
func ParseRupiahStrict(s string) (int64, error) {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, nil
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrNominalTerlaluBesar
		}
		return 0, err
	}
	return n, nil
}
