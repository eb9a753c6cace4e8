package utils

import (
	"fmt"
	"strings"
)

// GenerateSKU membentuk SKU "KAT-PRO-001": 3 huruf awal kategori (atau PRD),
// 3 huruf awal nama produk, lalu urutan produk dalam kategori tersebut.
func GenerateSKU(namaProduk, namaKategori string, urutan int) string {
	katPrefix := "PRD"
	if strings.TrimSpace(namaKategori) != "" {
		katPrefix = prefix3(namaKategori)
	}
	if urutan < 1 {
		urutan = 1
	}
	return fmt.Sprintf("%s-%s-%03d", katPrefix, prefix3(namaProduk), urutan)
}

func prefix3(s string) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) > 3 {
		r = r[:3]
	}
	return strings.ToUpper(string(r))
}
