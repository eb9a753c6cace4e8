package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"inventorypos/models"
	"inventorypos/pos"
	"inventorypos/receipt"
	"inventorypos/utils"
)

// POSController memegang satu sesi kasir.
type POSController struct {
	Session *pos.Session
	Receipt receipt.Options
	Logger  *zap.Logger
}

func NewPOSController(session *pos.Session, opts receipt.Options, logger *zap.Logger) *POSController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &POSController{Session: session, Receipt: opts, Logger: logger}
}

func (pc *POSController) sessionError(c *fiber.Ctx, view pos.View, err error, warnings ...pos.Warning) error {
	body := fiber.Map{
		"message": pos.UserMessage(err),
		"error":   err.Error(),
		"data":    view,
	}
	if len(warnings) > 0 {
		body["warnings"] = warnings
	}
	return c.Status(posStatus(err)).JSON(body)
}

func withWarnings(view pos.View, warnings []pos.Warning) fiber.Map {
	body := fiber.Map{"data": view}
	if len(warnings) > 0 {
		body["warnings"] = warnings
	}
	return body
}

func matchProduk(p models.Produk, q, kategori string) bool {
	if kategori != "" && kategori != "all" && p.KategoriID != kategori {
		return false
	}
	if q == "" {
		return true
	}
	for _, field := range []string{p.NamaProduk, p.Deskripsi, p.ID, p.SKU} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// ListProduk godoc
//
//	@Summary		Katalog kasir
//	@Description	Membaca ulang katalog, menyegarkan snapshot keranjang, lalu filter by q/kategori
//	@Tags			POS
//	@Produce		json
//	@Param			q			query		string	false	"Cari nama, deskripsi, id, sku"
//	@Param			kategori	query		string	false	"ID kategori"
//	@Success		200			{object}	map[string]interface{}
//	@Router			/pos/produk [get]
func (pc *POSController) ListProduk(c *fiber.Ctx) error {
	products, warnings, err := pc.Session.RefreshCatalog(c.UserContext())
	if err != nil {
		if errors.Is(err, pos.ErrCheckoutInProgress) {
			return pc.sessionError(c, pc.Session.View(), err)
		}
		return failJSON(c, fiber.StatusInternalServerError, "Gagal mengambil data produk", err)
	}

	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	kategori := c.Query("kategori")
	filtered := make([]models.Produk, 0, len(products))
	for _, p := range products {
		if matchProduk(p, q, kategori) {
			filtered = append(filtered, p)
		}
	}
	body := fiber.Map{"data": filtered}
	if len(warnings) > 0 {
		body["warnings"] = warnings
	}
	return c.JSON(body)
}

// GetKeranjang godoc
//
//	@Summary	Isi keranjang
//	@Tags		POS
//	@Produce	json
//	@Success	200	{object}	pos.View
//	@Router		/pos/keranjang [get]
func (pc *POSController) GetKeranjang(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": pc.Session.View()})
}

// AddItem godoc
//
//	@Summary		Tambah produk ke keranjang
//	@Description	Produk stok 0 ditolak dengan warning OUT_OF_STOCK, jumlah tidak melebihi stok
//	@Tags			POS
//	@Accept			json
//	@Produce		json
//	@Param			body	body		map[string]string	true	"{produk_id}"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		404		{object}	map[string]interface{}	"Produk tidak ditemukan"
//	@Failure		409		{object}	map[string]interface{}	"Checkout sedang diproses / sudah selesai"
//	@Router			/pos/keranjang/items [post]
func (pc *POSController) AddItem(c *fiber.Ctx) error {
	var body struct {
		ProdukID string `json:"produk_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return failJSON(c, fiber.StatusBadRequest, "Request tidak valid", err)
	}
	if body.ProdukID == "" {
		return failJSON(c, fiber.StatusUnprocessableEntity, "produk_id wajib diisi", nil)
	}
	view, warnings, err := pc.Session.AddItem(c.UserContext(), body.ProdukID)
	if err != nil {
		return pc.sessionError(c, view, err, warnings...)
	}
	return c.JSON(withWarnings(view, warnings))
}

// SetQuantity godoc
//
//	@Summary	Ubah jumlah item. Melebihi stok ditolak dengan warning STOCK_LIMIT
//	@Tags		POS
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Produk ID"
//	@Param		body	body		map[string]int		true	"{jumlah}"
//	@Success	200		{object}	map[string]interface{}
//	@Router		/pos/keranjang/items/{id} [put]
func (pc *POSController) SetQuantity(c *fiber.Ctx) error {
	var body struct {
		Jumlah *int `json:"jumlah"`
	}
	if err := c.BodyParser(&body); err != nil {
		return failJSON(c, fiber.StatusBadRequest, "Request tidak valid", err)
	}
	if body.Jumlah == nil {
		return failJSON(c, fiber.StatusUnprocessableEntity, "jumlah wajib diisi", nil)
	}
	view, w, err := pc.Session.SetQuantity(c.Params("id"), *body.Jumlah)
	if err != nil {
		return pc.sessionError(c, view, err)
	}
	var warnings []pos.Warning
	if w != nil {
		warnings = append(warnings, *w)
	}
	return c.JSON(withWarnings(view, warnings))
}

// RemoveItem godoc
//
//	@Summary	Hapus item dari keranjang
//	@Tags		POS
//	@Produce	json
//	@Param		id	path		string	true	"Produk ID"
//	@Success	200	{object}	map[string]interface{}
//	@Router		/pos/keranjang/items/{id} [delete]
func (pc *POSController) RemoveItem(c *fiber.Ctx) error {
	view, err := pc.Session.RemoveItem(c.Params("id"))
	if err != nil {
		return pc.sessionError(c, view, err)
	}
	return c.JSON(fiber.Map{"data": view})
}

// ClearKeranjang godoc
//
//	@Summary	Kosongkan keranjang (metode bayar tetap)
//	@Tags		POS
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Router		/pos/keranjang/clear [post]
func (pc *POSController) ClearKeranjang(c *fiber.Ctx) error {
	view, err := pc.Session.Clear()
	if err != nil {
		return pc.sessionError(c, view, err)
	}
	return c.JSON(fiber.Map{"data": view})
}

// parseTendered menerima angka JSON atau string berformat ("Rp 30.000").
func parseTendered(raw json.RawMessage) (int64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case float64:
		if x < 0 {
			return 0, nil
		}
		x = math.Round(x)
		if x >= float64(math.MaxInt64) {
			return 0, utils.ErrNominalTerlaluBesar
		}
		return int64(x), nil
	case string:
		return utils.ParseRupiahStrict(x)
	}
	return 0, fmt.Errorf("uang_diterima harus angka atau teks")
}

// SetPembayaran godoc
//
//	@Summary		Atur metode bayar dan uang diterima
//	@Description	uang_diterima boleh angka atau teks seperti "Rp 30.000"
//	@Tags			POS
//	@Accept			json
//	@Produce		json
//	@Param			body	body		map[string]interface{}	true	"{metode, uang_diterima}"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		422		{object}	map[string]interface{}	"Metode tidak dikenal"
//	@Router			/pos/pembayaran [put]
func (pc *POSController) SetPembayaran(c *fiber.Ctx) error {
	var body struct {
		Metode       string          `json:"metode"`
		UangDiterima json.RawMessage `json:"uang_diterima"`
	}
	if err := c.BodyParser(&body); err != nil {
		return failJSON(c, fiber.StatusBadRequest, "Request tidak valid", err)
	}

	method := pc.Session.View().Payment.Method
	if body.Metode != "" {
		m, err := pos.ParsePaymentMethod(body.Metode)
		if err != nil {
			return failJSON(c, fiber.StatusUnprocessableEntity, "Metode pembayaran tidak valid", err)
		}
		method = m
	}
	tendered, err := parseTendered(body.UangDiterima)
	if err != nil {
		return failJSON(c, fiber.StatusUnprocessableEntity, "uang_diterima tidak valid", err)
	}

	view, err := pc.Session.SetPayment(method, tendered)
	if err != nil {
		return pc.sessionError(c, view, err)
	}
	return c.JSON(fiber.Map{"data": view})
}

// Checkout godoc
//
//	@Summary		Selesaikan penjualan
//	@Description	Validasi, kurangi stok, simpan transaksi lalu kirim notifikasi
//	@Tags			POS
//	@Produce		json
//	@Success		201	{object}	map[string]interface{}	"Transaksi berhasil"
//	@Failure		409	{object}	map[string]interface{}	"Checkout sedang diproses / sudah selesai"
//	@Failure		422	{object}	map[string]interface{}	"Keranjang kosong / uang kurang"
//	@Failure		500	{object}	map[string]interface{}	"Stok atau penyimpanan gagal"
//	@Router			/pos/checkout [post]
func (pc *POSController) Checkout(c *fiber.Ctx) error {
	attempt, err := pc.Session.Checkout(c.UserContext())
	if err != nil {
		body := fiber.Map{
			"message": pos.UserMessage(err),
			"error":   err.Error(),
		}
		if attempt != nil {
			body["data"] = attempt
		}
		return c.Status(posStatus(err)).JSON(body)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Transaksi berhasil",
		"data":    attempt,
		"struk":   receipt.Render(attempt.Transaksi, pc.Receipt),
	})
}

func (pc *POSController) lastReceipt() (receipt.Rendered, bool) {
	a := pc.Session.LastCompleted()
	if a == nil || a.Transaksi == nil {
		return receipt.Rendered{}, false
	}
	return receipt.Render(a.Transaksi, pc.Receipt), true
}

// GetStruk godoc
//
//	@Summary	Struk penjualan terakhir
//	@Tags		POS
//	@Produce	json
//	@Success	200	{object}	receipt.Rendered
//	@Failure	404	{object}	map[string]interface{}	"Belum ada transaksi"
//	@Router		/pos/struk [get]
func (pc *POSController) GetStruk(c *fiber.Ctx) error {
	r, ok := pc.lastReceipt()
	if !ok {
		return failJSON(c, fiber.StatusNotFound, "Belum ada transaksi selesai", nil)
	}
	return c.JSON(fiber.Map{"data": r})
}

// PrintStruk godoc
//
//	@Summary	Struk siap cetak (HTML)
//	@Tags		POS
//	@Produce	html
//	@Router		/pos/struk/print [get]
func (pc *POSController) PrintStruk(c *fiber.Ctx) error {
	r, ok := pc.lastReceipt()
	if !ok {
		return failJSON(c, fiber.StatusNotFound, "Belum ada transaksi selesai", nil)
	}
	return sendHTML(c, r)
}

// DownloadStruk godoc
//
//	@Summary	Unduh struk sebagai teks
//	@Tags		POS
//	@Produce	plain
//	@Router		/pos/struk/download [get]
func (pc *POSController) DownloadStruk(c *fiber.Ctx) error {
	r, ok := pc.lastReceipt()
	if !ok {
		return failJSON(c, fiber.StatusNotFound, "Belum ada transaksi selesai", nil)
	}
	return sendText(c, r)
}

// NewSale godoc
//
//	@Summary	Mulai transaksi baru
//	@Tags		POS
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Failure	409	{object}	map[string]interface{}	"Checkout sedang diproses"
//	@Router		/pos/baru [post]
func (pc *POSController) NewSale(c *fiber.Ctx) error {
	view, warnings, err := pc.Session.NewSale(c.UserContext())
	if err != nil {
		return pc.sessionError(c, view, err)
	}
	body := fiber.Map{"message": "Transaksi baru dimulai", "data": view}
	if len(warnings) > 0 {
		body["warnings"] = warnings
	}
	return c.JSON(body)
}

func sendHTML(c *fiber.Ctx, r receipt.Rendered) error {
	html, err := r.HTML()
	if err != nil {
		return failJSON(c, fiber.StatusInternalServerError, "Gagal membuat struk", err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

func sendText(c *fiber.Ctx, r receipt.Rendered) error {
	text, err := r.Text()
	if err != nil {
		return failJSON(c, fiber.StatusInternalServerError, "Gagal membuat struk", err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", r.FileName()))
	return c.SendString(text)
}
