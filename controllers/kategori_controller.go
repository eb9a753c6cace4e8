package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"inventorypos/laporan"
	"inventorypos/models"
	"inventorypos/repository"
)

type KategoriController struct {
	Store repository.CatalogStore
}

func NewKategoriController(store repository.CatalogStore) *KategoriController {
	return &KategoriController{Store: store}
}

// GetAllKategori godoc
//
//	@Summary	Get all categories
//	@Tags		Kategori
//	@Produce	json
//	@Success	200	{array}	models.Kategori
//	@Router		/kategori [get]
func (kc *KategoriController) GetAllKategori(c *fiber.Ctx) error {
	list, err := kc.Store.ListKategori(c.UserContext())
	if err != nil {
		return failJSON(c, fiber.StatusInternalServerError, "Gagal mengambil data kategori", err)
	}
	return c.JSON(list)
}

// GetKategoriByID godoc
//
//	@Summary	Get category by ID
//	@Tags		Kategori
//	@Produce	json
//	@Param		id	path		string	true	"Kategori ID"
//	@Success	200	{object}	models.Kategori
//	@Router		/kategori/{id} [get]
func (kc *KategoriController) GetKategoriByID(c *fiber.Ctx) error {
	k, err := kc.Store.GetKategori(c.UserContext(), c.Params("id"))
	if err != nil {
		return failJSON(c, storeStatus(err), "Kategori tidak ditemukan", err)
	}
	return c.JSON(k)
}

// CreateKategori godoc
//
//	@Summary	Create category
//	@Tags		Kategori
//	@Accept		json
//	@Produce	json
//	@Param		kategori	body		models.Kategori			true	"Kategori"
//	@Success	201			{object}	map[string]interface{}	"Kategori berhasil ditambahkan"
//	@Failure	409			{object}	map[string]interface{}	"Nama kategori sudah ada"
//	@Router		/kategori [post]
func (kc *KategoriController) CreateKategori(c *fiber.Ctx) error {
	var k models.Kategori
	if err := c.BodyParser(&k); err != nil {
		return failJSON(c, fiber.StatusBadRequest, "Request tidak valid", err)
	}
	k.NamaKategori = strings.TrimSpace(k.NamaKategori)
	if k.NamaKategori == "" {
		return failJSON(c, fiber.StatusUnprocessableEntity, "nama_kategori wajib diisi", nil)
	}

	ctx := c.UserContext()
	if _, err := kc.Store.FindKategoriByNama(ctx, k.NamaKategori); err == nil {
		return failJSON(c, fiber.StatusConflict, "Nama kategori sudah ada", nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return failJSON(c, fiber.StatusInternalServerError, "Gagal menambahkan kategori", err)
	}

	k.ID = ""
	if err := kc.Store.CreateKategori(ctx, &k); err != nil {
		return failJSON(c, storeStatus(err), "Gagal menambahkan kategori", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Kategori berhasil ditambahkan", "data": k})
}

// UpdateKategori godoc
//
//	@Summary	Update category
//	@Tags		Kategori
//	@Accept		json
//	@Produce	json
//	@Param		id			path		string					true	"Kategori ID"
//	@Param		kategori	body		models.KategoriPatch	true	"Field yang diubah"
//	@Success	200			{object}	map[string]interface{}
//	@Router		/kategori/{id} [put]
func (kc *KategoriController) UpdateKategori(c *fiber.Ctx) error {
	var patch models.KategoriPatch
	if err := c.BodyParser(&patch); err != nil {
		return failJSON(c, fiber.StatusBadRequest, "Request tidak valid", err)
	}
	if patch.Empty() {
		return failJSON(c, fiber.StatusUnprocessableEntity, "Tidak ada field yang diupdate", nil)
	}
	if patch.NamaKategori != nil && strings.TrimSpace(*patch.NamaKategori) == "" {
		return failJSON(c, fiber.StatusUnprocessableEntity, "nama_kategori tidak boleh kosong", nil)
	}
	k, err := kc.Store.UpdateKategori(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return failJSON(c, storeStatus(err), "Gagal mengupdate kategori", err)
	}
	return c.JSON(fiber.Map{"message": "Kategori berhasil diupdate", "data": k})
}

// DeleteKategori godoc
//
//	@Summary		Delete category
//	@Description	Ditolak jika masih ada produk di kategori ini
//	@Tags			Kategori
//	@Produce		json
//	@Param			id	path		string	true	"Kategori ID"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		409	{object}	map[string]interface{}	"Kategori masih digunakan"
//	@Router			/kategori/{id} [delete]
func (kc *KategoriController) DeleteKategori(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")
	n, err := kc.Store.CountProdukByKategori(ctx, id)
	if err != nil {
		return failJSON(c, fiber.StatusInternalServerError, "Gagal menghapus kategori", err)
	}
	if n > 0 {
		return failJSON(c, fiber.StatusConflict, "Kategori masih digunakan oleh produk", nil)
	}
	if err := kc.Store.DeleteKategori(ctx, id); err != nil {
		return failJSON(c, storeStatus(err), "Gagal menghapus kategori", err)
	}
	return c.JSON(fiber.Map{"message": "Kategori berhasil dihapus"})
}

// ImportKategori godoc
//
//	@Summary		Import kategori dari Excel
//	@Description	Kolom: name/nama/kategori, description/deskripsi. Nama yang sudah ada dilewati
//	@Tags			Kategori
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"File .xlsx"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		422		{object}	map[string]interface{}	"Tidak ada kategori baru"
//	@Router			/kategori/import [post]
func (kc *KategoriController) ImportKategori(c *fiber.Ctx) error {
	f, err := openUpload(c)
	if err != nil {
		return failJSON(c, fiber.StatusBadRequest, "File wajib diunggah", err)
	}
	defer f.Close()

	rows, err := laporan.ImportKategori(f)
	if err != nil {
		return failJSON(c, fiber.StatusUnprocessableEntity, "Import gagal", err)
	}

	ctx := c.UserContext()
	existing, err := kc.Store.ListKategori(ctx)
	if err != nil {
		return failJSON(c, fiber.StatusInternalServerError, "Gagal mengambil data kategori", err)
	}
	ada := make(map[string]bool, len(existing))
	for _, k := range existing {
		ada[strings.ToLower(k.NamaKategori)] = true
	}

	var (
		imported []models.Kategori
		dilewati []string
		gagal    []importGagal
	)
	for _, row := range rows {
		if ada[strings.ToLower(row.NamaKategori)] {
			dilewati = append(dilewati, row.NamaKategori)
			continue
		}
		k := models.Kategori{NamaKategori: row.NamaKategori, Deskripsi: row.Deskripsi}
		if err := kc.Store.CreateKategori(ctx, &k); err != nil {
			gagal = append(gagal, importGagal{Baris: row.Baris, Nama: row.NamaKategori, Error: err.Error()})
			continue
		}
		ada[strings.ToLower(k.NamaKategori)] = true
		imported = append(imported, k)
	}
	return importReply(c, "kategori", imported, len(imported), dilewati, gagal)
}
