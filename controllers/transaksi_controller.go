package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"inventorypos/laporan"
	"inventorypos/models"
	"inventorypos/receipt"
	"inventorypos/repository"
)

// TransaksiController tidak pernah mengubah transaksi. Penjualan baru dibuat
// lewat /pos/checkout; import hanya menambah riwayat yang belum ada.
type TransaksiController struct {
	Store    repository.TransaksiStore
	Receipt  receipt.Options
	Location *time.Location
}

func NewTransaksiController(store repository.TransaksiStore, opts receipt.Options, loc *time.Location) *TransaksiController {
	return &TransaksiController{Store: store, Receipt: opts, Location: loc}
}

// ListTransaksi godoc
//
//	@Summary		Riwayat transaksi
//	@Description	Filter: start+end (YYYY-MM-DD), month+year, atau year. Terbaru lebih dulu
//	@Tags			Transaksi
//	@Produce		json
//	@Param			start	query	string	false	"Tanggal awal"
//	@Param			end		query	string	false	"Tanggal akhir (inklusif)"
//	@Param			month	query	int		false	"Bulan 1-12"
//	@Param			year	query	int		false	"Tahun"
//	@Param			limit	query	int		false	"Batas jumlah"
//	@Success		200		{array}	models.Transaksi
//	@Router			/transaksi [get]
func (tc *TransaksiController) ListTransaksi(c *fiber.Ctx) error {
	filter, err := laporan.ParsePeriode(c.Query("start"), c.Query("end"), c.Query("month"), c.Query("year"), tc.Location)
	if err != nil {
		return failJSON(c, fiber.StatusBadRequest, "Filter tanggal tidak valid", err)
	}
	filter.Limit = queryInt(c, "limit", 0)
	list, err := tc.Store.ListTransaksi(c.UserContext(), filter)
	if err != nil {
		return failJSON(c, fiber.StatusInternalServerError, "Gagal mengambil transaksi", err)
	}
	return c.JSON(list)
}

// GetTransaksiByID godoc
//
//	@Summary	Detail transaksi
//	@Tags		Transaksi
//	@Produce	json
//	@Param		id	path		string	true	"Transaksi ID"
//	@Success	200	{object}	models.Transaksi
//	@Failure	404	{object}	map[string]interface{}	"Transaksi tidak ditemukan"
//	@Router		/transaksi/{id} [get]
func (tc *TransaksiController) GetTransaksiByID(c *fiber.Ctx) error {
	t, err := tc.Store.GetTransaksi(c.UserContext(), c.Params("id"))
	if err != nil {
		return failJSON(c, storeStatus(err), "Transaksi tidak ditemukan", err)
	}
	return c.JSON(t)
}

// GetStruk godoc
//
//	@Summary	Cetak ulang struk
//	@Tags		Transaksi
//	@Param		id		path	string	true	"Transaksi ID"
//	@Param		format	query	string	false	"json (default), html, atau text"
//	@Router		/transaksi/{id}/struk [get]
func (tc *TransaksiController) GetStruk(c *fiber.Ctx) error {
	t, err := tc.Store.GetTransaksi(c.UserContext(), c.Params("id"))
	if err != nil {
		return failJSON(c, storeStatus(err), "Transaksi tidak ditemukan", err)
	}
	r := receipt.Render(t, tc.Receipt)
	switch c.Query("format", "json") {
	case "html":
		return sendHTML(c, r)
	case "text", "txt":
		return sendText(c, r)
	}
	return c.JSON(fiber.Map{"data": r})
}

// ImportTransaksi godoc
//
//	@Summary		Import riwayat transaksi dari Excel
//	@Description	Format sama dengan export. Nomor struk yang sudah tersimpan dilewati, stok tidak diubah
//	@Tags			Transaksi
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"File .xlsx"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		422		{object}	map[string]interface{}	"Tidak ada transaksi baru"
//	@Router			/transaksi/import [post]
func (tc *TransaksiController) ImportTransaksi(c *fiber.Ctx) error {
	f, err := openUpload(c)
	if err != nil {
		return failJSON(c, fiber.StatusBadRequest, "File wajib diunggah", err)
	}
	defer f.Close()

	list, err := laporan.ImportTransaksi(f, tc.Location)
	if err != nil {
		return failJSON(c, fiber.StatusUnprocessableEntity, "Import gagal", err)
	}

	ctx := c.UserContext()
	existing, err := tc.Store.ListTransaksi(ctx, models.TransaksiFilter{})
	if err != nil {
		return failJSON(c, fiber.StatusInternalServerError, "Gagal mengambil data transaksi", err)
	}
	ada := make(map[string]bool, len(existing))
	for _, t := range existing {
		ada[t.NomorStruk] = true
	}

	var (
		imported []models.Transaksi
		dilewati []string
		gagal    []importGagal
	)
	for i := range list {
		t := list[i]
		if ada[t.NomorStruk] {
			dilewati = append(dilewati, t.NomorStruk)
			continue
		}
		saved, err := tc.Store.AppendTransaksi(ctx, &t)
		if err != nil {
			gagal = append(gagal, importGagal{Nama: t.NomorStruk, Error: err.Error()})
			continue
		}
		ada[t.NomorStruk] = true
		imported = append(imported, *saved)
	}
	return importReply(c, "transaksi", imported, len(imported), dilewati, gagal)
}
