package controllers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"inventorypos/laporan"
	"inventorypos/models"
	"inventorypos/repository"
	"inventorypos/utils"
)

type ProdukController struct {
	Store  repository.CatalogStore
	Logger *zap.Logger
}

func NewProdukController(store repository.CatalogStore, logger *zap.Logger) *ProdukController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProdukController{Store: store, Logger: logger}
}

// GetAllProduk godoc
//
//	@Summary		Get all products
//	@Description	Mengambil semua data produk
//	@Tags			Produk
//	@Produce		json
//	@Success		200	{array}		models.ProdukSwagger
//	@Failure		500	{object}	map[string]interface{}	"Internal Server Error"
//	@Router			/produk [get]
func (pc *ProdukController) GetAllProduk(c *fiber.Ctx) error {
	produks, err := pc.Store.ListProduk(c.UserContext())
	if err != nil {
		return failJSON(c, fiber.StatusInternalServerError, "Gagal mengambil data produk", err)
	}
	return c.JSON(produks)
}

// GetProdukByID godoc
//
//	@Summary		Get product by ID
//	@Description	Mengambil data produk berdasarkan ID
//	@Tags			Produk
//	@Produce		json
//	@Param			id	path		string	true	"Product ID"
//	@Success		200	{object}	models.ProdukSwagger
//	@Failure		404	{object}	map[string]interface{}	"Produk tidak ditemukan"
//	@Router			/produk/{id} [get]
func (pc *ProdukController) GetProdukByID(c *fiber.Ctx) error {
	produk, err := pc.Store.GetProduk(c.UserContext(), c.Params("id"))
	if err != nil {
		return failJSON(c, storeStatus(err), "Produk tidak ditemukan", err)
	}
	return c.JSON(produk)
}

// resolveKategori mengembalikan kategori tujuan; kosong berarti kategori default.
func (pc *ProdukController) resolveKategori(ctx context.Context, id string) (*models.Kategori, error) {
	if id == "" {
		return repository.EnsureDefaultKategori(ctx, pc.Store)
	}
	k, err := pc.Store.GetKategori(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, repository.ErrKategoriNotFound
	}
	return k, err
}

// create mengisi SKU dari nama kategori dan urutan produk di kategori itu.
func (pc *ProdukController) create(ctx context.Context, p *models.Produk) error {
	k, err := pc.resolveKategori(ctx, p.KategoriID)
	if err != nil {
		return err
	}
	p.KategoriID = k.ID
	n, err := pc.Store.CountProdukByKategori(ctx, k.ID)
	if err != nil {
		return err
	}
	p.SKU = utils.GenerateSKU(p.NamaProduk, k.NamaKategori, n+1)
	if p.LokasiRak == "" {
		p.LokasiRak = "A1"
	}
	return pc.Store.CreateProduk(ctx, p)
}

// CreateProduk godoc
//
//	@Summary		Create product
//	@Description	Membuat produk baru. SKU dibuat otomatis, kategori kosong masuk Uncategorized
//	@Tags			Produk
//	@Accept			json
//	@Produce		json
//	@Param			produk	body		models.ProdukInput		true	"Product data"
//	@Success		201		{object}	map[string]interface{}	"Produk berhasil ditambahkan"
//	@Failure		400		{object}	map[string]interface{}	"Request tidak valid"
//	@Failure		422		{object}	map[string]interface{}	"Validasi gagal"
//	@Router			/produk [post]
func (pc *ProdukController) CreateProduk(c *fiber.Ctx) error {
	var input models.ProdukInput
	if err := c.BodyParser(&input); err != nil {
		return failJSON(c, fiber.StatusBadRequest, "Request tidak valid", err)
	}
	if strings.TrimSpace(input.NamaProduk) == "" || input.HargaJual <= 0 {
		return failJSON(c, fiber.StatusUnprocessableEntity, "Validasi gagal", errors.New("nama_produk dan harga_jual wajib diisi"))
	}
	if input.Stok < 0 {
		return failJSON(c, fiber.StatusUnprocessableEntity, "Validasi gagal", repository.ErrStokNegatif)
	}

	produk := models.Produk{
		NamaProduk: strings.TrimSpace(input.NamaProduk),
		KategoriID: input.KategoriID,
		Deskripsi:  input.Deskripsi,
		HargaJual:  input.HargaJual,
		Stok:       input.Stok,
		LokasiRak:  input.LokasiRak,
	}
	if err := pc.create(c.UserContext(), &produk); err != nil {
		return failJSON(c, storeStatus(err), "Gagal menambahkan produk", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Produk berhasil ditambahkan",
		"data":    produk,
	})
}

// UpdateProduk godoc
//
//	@Summary		Update product
//	@Description	Update sebagian field produk. SKU tidak berubah
//	@Tags			Produk
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Product ID"
//	@Param			produk	body		models.ProdukInput		true	"Product data"
//	@Success		200		{object}	map[string]interface{}	"Produk berhasil diupdate"
//	@Failure		422		{object}	map[string]interface{}	"Validasi gagal"
//	@Router			/produk/{id} [put]
func (pc *ProdukController) UpdateProduk(c *fiber.Ctx) error {
	var patch models.ProdukPatch
	if err := c.BodyParser(&patch); err != nil {
		return failJSON(c, fiber.StatusBadRequest, "Request tidak valid", err)
	}
	if patch.Empty() {
		return failJSON(c, fiber.StatusUnprocessableEntity, "Tidak ada field yang diupdate", nil)
	}
	if patch.HargaJual != nil && *patch.HargaJual <= 0 {
		return failJSON(c, fiber.StatusUnprocessableEntity, "Validasi gagal", errors.New("harga_jual harus lebih dari 0"))
	}
	ctx := c.UserContext()
	if patch.KategoriID != nil {
		if _, err := pc.resolveKategori(ctx, *patch.KategoriID); err != nil {
			return failJSON(c, storeStatus(err), "Gagal mengupdate produk", err)
		}
	}

	updated, err := pc.Store.UpdateProduk(ctx, c.Params("id"), patch)
	if err != nil {
		return failJSON(c, storeStatus(err), "Gagal mengupdate produk", err)
	}
	return c.JSON(fiber.Map{"message": "Produk berhasil diupdate", "data": updated})
}

// DeleteProduk godoc
//
//	@Summary	Delete product
//	@Tags		Produk
//	@Produce	json
//	@Param		id	path		string					true	"Product ID"
//	@Success	200	{object}	map[string]interface{}	"Produk berhasil dihapus"
//	@Failure	404	{object}	map[string]interface{}	"Produk tidak ditemukan"
//	@Router		/produk/{id} [delete]
func (pc *ProdukController) DeleteProduk(c *fiber.Ctx) error {
	if err := pc.Store.DeleteProduk(c.UserContext(), c.Params("id")); err != nil {
		return failJSON(c, storeStatus(err), "Gagal menghapus produk", err)
	}
	return c.JSON(fiber.Map{"message": "Produk berhasil dihapus"})
}

// ExportProduk godoc
//
//	@Summary	Export produk ke Excel
//	@Tags		Produk
//	@Produce	application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Router		/produk/export/excel [get]
func (pc *ProdukController) ExportProduk(c *fiber.Ctx) error {
	ctx := c.UserContext()
	produks, err := pc.Store.ListProduk(ctx)
	if err != nil {
		return failJSON(c, fiber.StatusInternalServerError, "Gagal mengambil data produk", err)
	}
	kategori, err := pc.Store.ListKategori(ctx)
	if err != nil {
		return failJSON(c, fiber.StatusInternalServerError, "Gagal mengambil data kategori", err)
	}
	buf, err := laporan.ExportProduk(produks, kategori)
	if err != nil {
		return failJSON(c, fiber.StatusInternalServerError, "Gagal membuat file Excel", err)
	}
	c.Set("Content-Type", laporan.ContentTypeXLSX)
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=products_%s.xlsx", time.Now().Format("2006-01-02")))
	return c.Send(buf.Bytes())
}

// ImportProduk godoc
//
//	@Summary		Import produk dari Excel
//	@Description	Kolom dikenali dari header (name/nama, price/harga, stock/stok/qty, category/kategori, rack/lokasi). Kategori yang belum ada dibuat otomatis
//	@Tags			Produk
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"File .xlsx"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		422		{object}	map[string]interface{}	"File tidak valid"
//	@Router			/produk/import [post]
func (pc *ProdukController) ImportProduk(c *fiber.Ctx) error {
	f, err := openUpload(c)
	if err != nil {
		return failJSON(c, fiber.StatusBadRequest, "File wajib diunggah", err)
	}
	defer f.Close()

	rows, err := laporan.ImportProduk(f)
	if err != nil {
		return failJSON(c, fiber.StatusUnprocessableEntity, "Import gagal", err)
	}

	ctx := c.UserContext()
	kategoriByNama := map[string]string{}
	var (
		imported []models.Produk
		gagal    []importGagal
	)
	for _, row := range rows {
		kategoriID, err := pc.kategoriImport(ctx, row.NamaKategori, kategoriByNama)
		if err != nil {
			gagal = append(gagal, importGagal{Baris: row.Baris, Nama: row.NamaProduk, Error: err.Error()})
			continue
		}
		p := models.Produk{
			NamaProduk: row.NamaProduk,
			KategoriID: kategoriID,
			Deskripsi:  row.Deskripsi,
			HargaJual:  row.HargaJual,
			Stok:       row.Stok,
			LokasiRak:  row.LokasiRak,
		}
		if err := pc.create(ctx, &p); err != nil {
			gagal = append(gagal, importGagal{Baris: row.Baris, Nama: row.NamaProduk, Error: err.Error()})
			continue
		}
		imported = append(imported, p)
	}

	pc.Logger.Info("import produk selesai", zap.Int("berhasil", len(imported)), zap.Int("gagal", len(gagal)))
	return importReply(c, "produk", imported, len(imported), nil, gagal)
}

// kategoriImport mencari kategori berdasarkan nama (case-insensitive) atau membuatnya.
func (pc *ProdukController) kategoriImport(ctx context.Context, nama string, cache map[string]string) (string, error) {
	if nama == "" {
		return "", nil
	}
	key := strings.ToLower(nama)
	if id, ok := cache[key]; ok {
		return id, nil
	}
	k, err := pc.Store.FindKategoriByNama(ctx, nama)
	if errors.Is(err, repository.ErrNotFound) {
		k = &models.Kategori{NamaKategori: nama, Deskripsi: "Auto-created from Excel import"}
		err = pc.Store.CreateKategori(ctx, k)
	}
	if err != nil {
		return "", err
	}
	cache[key] = k.ID
	return k.ID, nil
}
