package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"inventorypos/models"
	"inventorypos/repository"
)

type StokController struct {
	Store repository.CatalogStore
}

func NewStokController(store repository.CatalogStore) *StokController {
	return &StokController{Store: store}
}

// GET /stok/mutasi/:produk_id?page=&page_size=
func (sc *StokController) GetMutasiByProduk(c *fiber.Ctx) error {
	page := queryInt(c, "page", 0)
	size := queryInt(c, "page_size", 0)
	list, err := sc.Store.ListMutasiByProduk(c.UserContext(), c.Params("produk_id"), page, size)
	if err != nil {
		return failJSON(c, fiber.StatusInternalServerError, "Gagal mengambil mutasi", err)
	}
	return c.JSON(list)
}

// POST /stok
// masuk menambah, keluar mengurangi, adjust menyetel stok ke jumlah.
// adjust dicatat sebagai selisih masuk/keluar terhadap stok saat ini.
func (sc *StokController) CreateMutasi(c *fiber.Ctx) error {
	var m models.StokMutasi
	if err := c.BodyParser(&m); err != nil {
		return failJSON(c, fiber.StatusBadRequest, "Data tidak valid", err)
	}
	if m.ProdukID == "" || m.Jenis == "" {
		return failJSON(c, fiber.StatusUnprocessableEntity, "produk_id, jenis, jumlah wajib", nil)
	}

	ctx := c.UserContext()
	p, err := sc.Store.GetProduk(ctx, m.ProdukID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return failJSON(c, fiber.StatusNotFound, "Produk tidak ditemukan", err)
		}
		return failJSON(c, fiber.StatusInternalServerError, "Gagal membaca produk", err)
	}

	stokBaru := p.Stok
	switch m.Jenis {
	case models.MutasiMasuk:
		if m.Jumlah <= 0 {
			return failJSON(c, fiber.StatusUnprocessableEntity, "jumlah harus lebih dari 0", nil)
		}
		stokBaru += m.Jumlah
	case models.MutasiKeluar:
		if m.Jumlah <= 0 {
			return failJSON(c, fiber.StatusUnprocessableEntity, "jumlah harus lebih dari 0", nil)
		}
		stokBaru -= m.Jumlah
	case models.MutasiAdjust:
		if m.Jumlah < 0 {
			return failJSON(c, fiber.StatusUnprocessableEntity, "stok tidak boleh negatif", nil)
		}
		stokBaru = m.Jumlah
		if m.Keterangan == "" {
			m.Keterangan = fmt.Sprintf("Penyesuaian stok %d -> %d", p.Stok, stokBaru)
		}
		if stokBaru >= p.Stok {
			m.Jenis, m.Jumlah = models.MutasiMasuk, stokBaru-p.Stok
		} else {
			m.Jenis, m.Jumlah = models.MutasiKeluar, p.Stok-stokBaru
		}
	default:
		return failJSON(c, fiber.StatusUnprocessableEntity, "jenis harus masuk, keluar, atau adjust", nil)
	}
	if stokBaru < 0 {
		return failJSON(c, fiber.StatusUnprocessableEntity, "Stok tidak mencukupi", repository.ErrStokNegatif)
	}

	updated, err := sc.Store.UpdateProduk(ctx, p.ID, models.StokPatch(stokBaru))
	if err != nil {
		return failJSON(c, storeStatus(err), "Gagal mengupdate stok", err)
	}

	m.ID = ""
	m.StokAkhir = updated.Stok
	if m.RefType == "" {
		m.RefType = "manual"
	}
	if err := sc.Store.CreateMutasi(ctx, &m); err != nil {
		return failJSON(c, fiber.StatusInternalServerError, "Stok sudah diupdate tetapi mutasi gagal dicatat", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Mutasi stok berhasil dibuat",
		"id":      m.ID,
		"data":    updated,
	})
}
