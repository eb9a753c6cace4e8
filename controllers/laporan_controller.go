package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"inventorypos/laporan"
	"inventorypos/models"
	"inventorypos/pos"
	"inventorypos/repository"
)

type LaporanController struct {
	Catalog        repository.CatalogStore
	Transaksi      repository.TransaksiStore
	Notifier       pos.Notifier
	LowStockAlert  int
	LowStockReport int
	Location       *time.Location
	Logger         *zap.Logger
	Now            func() time.Time
}

func NewLaporanController(catalog repository.CatalogStore, trx repository.TransaksiStore, notifier pos.Notifier, lowAlert, lowReport int, logger *zap.Logger) *LaporanController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LaporanController{
		Catalog:        catalog,
		Transaksi:      trx,
		Notifier:       notifier,
		LowStockAlert:  lowAlert,
		LowStockReport: lowReport,
		Location:       time.Local,
		Logger:         logger,
		Now:            time.Now,
	}
}

func (lc *LaporanController) katalog(c *fiber.Ctx) ([]models.Produk, []models.Kategori, error) {
	ctx := c.UserContext()
	products, err := lc.Catalog.ListProduk(ctx)
	if err != nil {
		return nil, nil, err
	}
	kategori, err := lc.Catalog.ListKategori(ctx)
	if err != nil {
		return nil, nil, err
	}
	return products, kategori, nil
}

// Ringkasan godoc
//
//	@Summary	Ringkasan inventaris
//	@Tags		Laporan
//	@Produce	json
//	@Success	200	{object}	laporan.Ringkasan
//	@Router		/laporan/ringkasan [get]
func (lc *LaporanController) Ringkasan(c *fiber.Ctx) error {
	products, kategori, err := lc.katalog(c)
	if err != nil {
		return failJSON(c, fiber.StatusInternalServerError, "Gagal mengambil data", err)
	}
	return c.JSON(laporan.HitungRingkasan(products, kategori, lc.LowStockReport))
}

// StokAlert godoc
//
//	@Summary	Produk habis dan menipis
//	@Tags		Laporan
//	@Produce	json
//	@Success	200	{object}	laporan.StokAlert
//	@Router		/laporan/stok-alert [get]
func (lc *LaporanController) StokAlert(c *fiber.Ctx) error {
	products, _, err := lc.katalog(c)
	if err != nil {
		return failJSON(c, fiber.StatusInternalServerError, "Gagal mengambil data", err)
	}
	return c.JSON(laporan.CariStokAlert(products, lc.LowStockAlert))
}

// KirimStokAlert godoc
//
//	@Summary		Kirim laporan stok ke notifier
//	@Description	jenis: habis, menipis, atau semua (default)
//	@Tags			Laporan
//	@Produce		json
//	@Param			jenis	query		string	false	"habis | menipis | semua"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		503		{object}	map[string]interface{}	"Notifier tidak dikonfigurasi"
//	@Router			/laporan/stok-alert/kirim [post]
func (lc *LaporanController) KirimStokAlert(c *fiber.Ctx) error {
	if lc.Notifier == nil {
		return failJSON(c, fiber.StatusServiceUnavailable, "Notifikasi belum dikonfigurasi", nil)
	}
	jenis := c.Query("jenis", "semua")
	if jenis != "semua" && jenis != string(laporan.AlertHabis) && jenis != string(laporan.AlertMenipis) {
		return failJSON(c, fiber.StatusBadRequest, "jenis harus habis, menipis, atau semua", nil)
	}

	products, kategori, err := lc.katalog(c)
	if err != nil {
		return failJSON(c, fiber.StatusInternalServerError, "Gagal mengambil data", err)
	}
	alert := laporan.CariStokAlert(products, lc.LowStockAlert)
	now := lc.Now().In(lc.Location)

	hasil := fiber.Map{}
	kirim := func(kind laporan.AlertKind, list []models.Produk) {
		msg := laporan.AlertMessage(kind, list, kategori, now)
		if msg == "" {
			hasil[string(kind)] = fiber.Map{"jumlah": 0, "terkirim": false}
			return
		}
		ok := lc.Notifier.Send(c.UserContext(), msg)
		if !ok {
			lc.Logger.Warn("laporan stok gagal dikirim", zap.String("jenis", string(kind)))
		}
		hasil[string(kind)] = fiber.Map{"jumlah": len(list), "terkirim": ok}
	}
	if jenis != string(laporan.AlertMenipis) {
		kirim(laporan.AlertHabis, alert.Habis)
	}
	if jenis != string(laporan.AlertHabis) {
		kirim(laporan.AlertMenipis, alert.Menipis)
	}
	return c.JSON(fiber.Map{"message": "Laporan stok diproses", "data": hasil})
}

func (lc *LaporanController) transaksiPeriode(c *fiber.Ctx) ([]models.Transaksi, error) {
	filter, err := laporan.ParsePeriode(c.Query("start"), c.Query("end"), c.Query("month"), c.Query("year"), lc.Location)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return lc.Transaksi.ListTransaksi(c.UserContext(), filter)
}

func periodeError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return failJSON(c, fe.Code, "Filter tanggal tidak valid", err)
	}
	return failJSON(c, fiber.StatusInternalServerError, "Gagal mengambil transaksi", err)
}

// Penjualan godoc
//
//	@Summary	Ringkasan penjualan per periode
//	@Tags		Laporan
//	@Produce	json
//	@Param		start	query		string	false	"YYYY-MM-DD"
//	@Param		end		query		string	false	"YYYY-MM-DD"
//	@Param		month	query		int		false	"1-12"
//	@Param		year	query		int		false	"Tahun"
//	@Success	200		{object}	laporan.RingkasanPenjualan
//	@Router		/laporan/penjualan [get]
func (lc *LaporanController) Penjualan(c *fiber.Ctx) error {
	list, err := lc.transaksiPeriode(c)
	if err != nil {
		return periodeError(c, err)
	}
	return c.JSON(laporan.HitungPenjualan(list))
}

// BestSellers godoc
//
//	@Summary	Produk terlaris dalam N hari terakhir
//	@Tags		Laporan
//	@Produce	json
//	@Param		days	query	int	false	"Default 7"
//	@Param		limit	query	int	false	"Default 5"
//	@Success	200		{array}	laporan.BestSeller
//	@Router		/laporan/best-sellers [get]
func (lc *LaporanController) BestSellers(c *fiber.Ctx) error {
	days := queryInt(c, "days", 7)
	limit := queryInt(c, "limit", 5)

	end := lc.Now()
	start := end.AddDate(0, 0, -days)
	list, err := lc.Transaksi.ListTransaksi(c.UserContext(), models.TransaksiFilter{Start: start})
	if err != nil {
		return failJSON(c, fiber.StatusInternalServerError, "Gagal mengambil transaksi", err)
	}
	return c.JSON(fiber.Map{
		"start": start,
		"end":   end,
		"data":  laporan.BestSellers(list, limit),
	})
}

// ExportExcel godoc
//
//	@Summary	Export riwayat transaksi ke Excel
//	@Tags		Laporan
//	@Produce	application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param		start	query	string	false	"YYYY-MM-DD"
//	@Param		end		query	string	false	"YYYY-MM-DD"
//	@Param		month	query	int		false	"1-12"
//	@Param		year	query	int		false	"Tahun"
//	@Router		/laporan/export/excel [get]
func (lc *LaporanController) ExportExcel(c *fiber.Ctx) error {
	list, err := lc.transaksiPeriode(c)
	if err != nil {
		return periodeError(c, err)
	}
	buf, err := laporan.ExportTransaksi(list)
	if err != nil {
		return failJSON(c, fiber.StatusInternalServerError, "Gagal membuat file Excel", err)
	}
	c.Set("Content-Type", laporan.ContentTypeXLSX)
	c.Set("Content-Disposition", "attachment; filename="+laporan.NamaFileTransaksi(lc.Now().In(lc.Location).Format("2006-01-02")))
	return c.Send(buf.Bytes())
}
