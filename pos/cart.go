package pos

import (
	"fmt"

	"inventorypos/models"
)

// Kode warning keranjang. Warning bukan error: keranjang tidak berubah
// (kecuali WarnClamped/WarnRemoved dari RefreshSnapshot).
const (
	WarnOutOfStock = "OUT_OF_STOCK"
	WarnStockLimit = "STOCK_LIMIT"
	WarnNotInCart  = "NOT_IN_CART"
	WarnClamped    = "CLAMPED"
	WarnRemoved    = "REMOVED"
)

// Warning adalah penolakan atau penyesuaian keranjang yang ditampilkan ke kasir.
type Warning struct {
	Code     string `json:"code"`
	ProdukID string `json:"produk_id"`
	Message  string `json:"message"`
}

func (w *Warning) String() string {
	return w.Message
}

// CartLine adalah satu baris keranjang; Subtotal selalu HargaSatuan * Jumlah.
type CartLine struct {
	ProdukID    string `json:"produk_id"`
	Nama        string `json:"nama_produk"`
	HargaSatuan int64  `json:"harga_satuan"`
	Jumlah      int    `json:"jumlah"`
	Subtotal    int64  `json:"subtotal"`
}

// Cart tidak thread-safe. Session yang menjaga akses berurutan.
type Cart struct {
	lines    []CartLine
	snapshot map[string]models.Produk
	payment  Payment

	subtotal   int64
	grandTotal int64
}

func NewCart() *Cart {
	return &Cart{
		snapshot: make(map[string]models.Produk),
		payment:  Payment{Method: Cash},
	}
}

func (c *Cart) index(produkID string) int {
	for i := range c.lines {
		if c.lines[i].ProdukID == produkID {
			return i
		}
	}
	return -1
}

// AddItem menambah 1 unit. Batas stok memakai record produk yang diberikan,
// yang juga menjadi snapshot terbaru untuk produk itu.
func (c *Cart) AddItem(p models.Produk) *Warning {
	c.snapshot[p.ID] = p
	defer c.recompute()

	if p.Stok <= 0 {
		return &Warning{
			Code:     WarnOutOfStock,
			ProdukID: p.ID,
			Message:  fmt.Sprintf("%s sedang habis", p.NamaProduk),
		}
	}

	if i := c.index(p.ID); i >= 0 {
		if c.lines[i].Jumlah+1 > p.Stok {
			return &Warning{
				Code:     WarnStockLimit,
				ProdukID: p.ID,
				Message:  fmt.Sprintf("Stok %s hanya tersisa %d", p.NamaProduk, p.Stok),
			}
		}
		c.lines[i].Jumlah++
		c.lines[i].Subtotal = c.lines[i].HargaSatuan * int64(c.lines[i].Jumlah)
		return nil
	}

	c.lines = append(c.lines, CartLine{
		ProdukID:    p.ID,
		Nama:        p.NamaProduk,
		HargaSatuan: p.HargaJual,
		Jumlah:      1,
		Subtotal:    p.HargaJual,
	})
	return nil
}

func (c *Cart) RemoveItem(produkID string) {
	if i := c.index(produkID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
	c.recompute()
}

// SetQuantity: n < 1 tidak mengubah apa pun, pakai RemoveItem untuk menghapus.
func (c *Cart) SetQuantity(produkID string, n int) *Warning {
	defer c.recompute()

	if n < 1 {
		return nil
	}
	i := c.index(produkID)
	if i < 0 {
		return &Warning{
			Code:     WarnNotInCart,
			ProdukID: produkID,
			Message:  "Produk tidak ada di keranjang",
		}
	}
	stok := c.currentStock(produkID)
	if n > stok {
		return &Warning{
			Code:     WarnStockLimit,
			ProdukID: produkID,
			Message:  fmt.Sprintf("Stok %s hanya tersisa %d", c.lines[i].Nama, stok),
		}
	}
	c.lines[i].Jumlah = n
	c.lines[i].Subtotal = c.lines[i].HargaSatuan * int64(n)
	return nil
}

func (c *Cart) currentStock(produkID string) int {
	if p, ok := c.snapshot[produkID]; ok {
		return p.Stok
	}
	return 0
}

// Clear mengosongkan keranjang dan mereset uang diterima serta kembalian.
// Metode pembayaran dipertahankan.
func (c *Cart) Clear() {
	c.lines = nil
	c.payment.CashTendered = 0
	c.payment.ChangeDue = 0
	c.recompute()
}

func (c *Cart) SetPaymentMethod(m PaymentMethod) {
	c.payment.Method = m
	c.recompute()
}

func (c *Cart) SetCashTendered(amount int64) {
	if amount < 0 {
		amount = 0
	}
	c.payment.CashTendered = amount
	c.recompute()
}

// RefreshSnapshot mengganti snapshot produk. Baris yang jumlahnya melebihi
// stok baru dipangkas, baris yang produknya habis atau hilang dihapus.
func (c *Cart) RefreshSnapshot(products []models.Produk) []Warning {
	c.snapshot = make(map[string]models.Produk, len(products))
	for _, p := range products {
		c.snapshot[p.ID] = p
	}

	var warnings []Warning
	kept := c.lines[:0]
	for _, line := range c.lines {
		p, ok := c.snapshot[line.ProdukID]
		if !ok || p.Stok <= 0 {
			warnings = append(warnings, Warning{
				Code:     WarnRemoved,
				ProdukID: line.ProdukID,
				Message:  fmt.Sprintf("%s dihapus dari keranjang karena stok habis", line.Nama),
			})
			continue
		}
		if line.Jumlah > p.Stok {
			line.Jumlah = p.Stok
			line.Subtotal = line.HargaSatuan * int64(line.Jumlah)
			warnings = append(warnings, Warning{
				Code:     WarnClamped,
				ProdukID: line.ProdukID,
				Message:  fmt.Sprintf("Jumlah %s disesuaikan menjadi %d", line.Nama, p.Stok),
			})
		}
		kept = append(kept, line)
	}
	c.lines = kept
	c.recompute()
	return warnings
}

// Product mengembalikan record produk terakhir yang diketahui.
func (c *Cart) Product(produkID string) (models.Produk, bool) {
	p, ok := c.snapshot[produkID]
	return p, ok
}

func (c *Cart) Products() []models.Produk {
	out := make([]models.Produk, 0, len(c.snapshot))
	for _, p := range c.snapshot {
		out = append(out, p)
	}
	return out
}

func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int { return len(c.lines) }

func (c *Cart) TotalItems() int {
	n := 0
	for _, l := range c.lines {
		n += l.Jumlah
	}
	return n
}

func (c *Cart) Subtotal() int64   { return c.subtotal }
func (c *Cart) GrandTotal() int64 { return c.grandTotal }
func (c *Cart) Payment() Payment  { return c.payment }

// recompute dipanggil di akhir setiap mutasi supaya agregat tidak pernah basi.
func (c *Cart) recompute() {
	var sum int64
	for _, l := range c.lines {
		sum += l.Subtotal
	}
	c.subtotal = sum
	c.grandTotal = sum

	if c.payment.Method == Card {
		c.payment.ChangeDue = 0
		return
	}
	change := c.payment.CashTendered - c.grandTotal
	if change < 0 {
		change = 0
	}
	c.payment.ChangeDue = change
}
