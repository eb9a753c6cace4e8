// Package receipt mengubah transaksi yang sudah selesai menjadi struk
// siap cetak (HTML) dan struk teks untuk diunduh.
package receipt

import (
	"strings"
	"time"

	"inventorypos/models"
	"inventorypos/utils"
)

const DefaultSystemName = "INVENTORY SYSTEM"

// WIB dipakai bila Options.Location kosong.
var WIB = time.FixedZone("WIB", 7*60*60)

type Options struct {
	SystemName string
	Location   *time.Location
}

func (o Options) withDefaults() Options {
	if o.SystemName == "" {
		o.SystemName = DefaultSystemName
	}
	if o.Location == nil {
		o.Location = WIB
	}
	return o
}

type Line struct {
	Nama        string `json:"nama"`
	Jumlah      int    `json:"jumlah"`
	HargaSatuan string `json:"harga_satuan"`
	Subtotal    string `json:"subtotal"`
}

// Rendered adalah semua field struk yang sudah dihitung dan diformat.
// HTML dan Text dibangun dari nilai yang sama sehingga totalnya selalu sama.
type Rendered struct {
	SystemName   string `json:"system_name"`
	NomorStruk   string `json:"nomor_struk"`
	Tanggal      string `json:"tanggal"`
	Lines        []Line `json:"items"`
	Subtotal     string `json:"subtotal"`
	Total        string `json:"total"`
	MetodeBayar  string `json:"metode_bayar"`
	Tunai        bool   `json:"tunai"`
	UangDiterima string `json:"uang_diterima,omitempty"`
	Kembalian    string `json:"kembalian,omitempty"`
}

// Render tidak punya efek samping: input yang sama selalu menghasilkan output yang sama.
func Render(t *models.Transaksi, opts Options) Rendered {
	opts = opts.withDefaults()

	r := Rendered{
		SystemName:  opts.SystemName,
		NomorStruk:  t.NomorStruk,
		Tanggal:     t.CreatedAt.In(opts.Location).Format("02/01/2006 15:04:05"),
		Lines:       make([]Line, 0, len(t.Items)),
		Subtotal:    utils.FormatRupiah(t.Subtotal),
		Total:       utils.FormatRupiah(t.Total),
		MetodeBayar: strings.ToUpper(t.MetodeBayar),
		Tunai:       t.MetodeBayar == models.MetodeCash,
	}
	for _, it := range t.Items {
		r.Lines = append(r.Lines, Line{
			Nama:        it.NamaProduk,
			Jumlah:      it.Jumlah,
			HargaSatuan: utils.FormatRupiah(it.HargaSatuan),
			Subtotal:    utils.FormatRupiah(it.Subtotal),
		})
	}
	if r.Tunai {
		r.UangDiterima = utils.FormatRupiah(t.UangDiterima)
		r.Kembalian = utils.FormatRupiah(t.Kembalian)
	}
	return r
}

// FileName adalah nama file untuk struk teks yang diunduh.
func (r Rendered) FileName() string {
	return "receipt-" + r.NomorStruk + ".txt"
}

func (r Rendered) HTML() (string, error) {
	var sb strings.Builder
	if err := htmlTmpl.Execute(&sb, r); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (r Rendered) Text() (string, error) {
	var sb strings.Builder
	if err := textTmpl.Execute(&sb, r); err != nil {
		return "", err
	}
	return sb.String(), nil
}
