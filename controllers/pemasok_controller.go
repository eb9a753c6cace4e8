package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"inventorypos/laporan"
	"inventorypos/models"
	"inventorypos/repository"
)

type PemasokController struct {
	Store repository.PemasokStore
}

func NewPemasokController(store repository.PemasokStore) *PemasokController {
	return &PemasokController{Store: store}
}

// GET /pemasok
func (sc *PemasokController) GetAllPemasok(c *fiber.Ctx) error {
	list, err := sc.Store.ListPemasok(c.UserContext())
	if err != nil {
		return failJSON(c, fiber.StatusInternalServerError, "Gagal mengambil data pemasok", err)
	}
	return c.JSON(list)
}

// GET /pemasok/:id
func (sc *PemasokController) GetPemasokByID(c *fiber.Ctx) error {
	s, err := sc.Store.GetPemasok(c.UserContext(), c.Params("id"))
	if err != nil {
		return failJSON(c, storeStatus(err), "Pemasok tidak ditemukan", err)
	}
	return c.JSON(s)
}

// POST /pemasok
func (sc *PemasokController) CreatePemasok(c *fiber.Ctx) error {
	var s models.Pemasok
	if err := c.BodyParser(&s); err != nil {
		return failJSON(c, fiber.StatusBadRequest, "Request tidak valid", err)
	}
	s.Nama = strings.TrimSpace(s.Nama)
	if s.Nama == "" {
		return failJSON(c, fiber.StatusUnprocessableEntity, "nama wajib diisi", nil)
	}
	s.ID = ""
	if err := sc.Store.CreatePemasok(c.UserContext(), &s); err != nil {
		return failJSON(c, storeStatus(err), "Gagal menambahkan pemasok", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Pemasok berhasil ditambahkan", "data": s})
}

// PUT /pemasok/:id
func (sc *PemasokController) UpdatePemasok(c *fiber.Ctx) error {
	var patch models.PemasokPatch
	if err := c.BodyParser(&patch); err != nil {
		return failJSON(c, fiber.StatusBadRequest, "Request tidak valid", err)
	}
	if patch.Empty() {
		return failJSON(c, fiber.StatusUnprocessableEntity, "Tidak ada field yang diupdate", nil)
	}
	s, err := sc.Store.UpdatePemasok(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return failJSON(c, storeStatus(err), "Gagal mengupdate pemasok", err)
	}
	return c.JSON(fiber.Map{"message": "Pemasok berhasil diupdate", "data": s})
}

// DELETE /pemasok/:id
func (sc *PemasokController) DeletePemasok(c *fiber.Ctx) error {
	if err := sc.Store.DeletePemasok(c.UserContext(), c.Params("id")); err != nil {
		return failJSON(c, storeStatus(err), "Gagal menghapus pemasok", err)
	}
	return c.JSON(fiber.Map{"message": "Pemasok berhasil dihapus"})
}

// GET /pemasok/export/excel
func (sc *PemasokController) ExportPemasok(c *fiber.Ctx) error {
	list, err := sc.Store.ListPemasok(c.UserContext())
	if err != nil {
		return failJSON(c, fiber.StatusInternalServerError, "Gagal mengambil data pemasok", err)
	}
	buf, err := laporan.ExportPemasok(list)
	if err != nil {
		return failJSON(c, fiber.StatusInternalServerError, "Gagal membuat file Excel", err)
	}
	c.Set("Content-Type", laporan.ContentTypeXLSX)
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=suppliers_%s.xlsx", time.Now().Format("2006-01-02")))
	return c.Send(buf.Bytes())
}

// POST /pemasok/import
// Pemasok dengan nama atau email yang sudah ada dilewati.
func (sc *PemasokController) ImportPemasok(c *fiber.Ctx) error {
	f, err := openUpload(c)
	if err != nil {
		return failJSON(c, fiber.StatusBadRequest, "File wajib diunggah", err)
	}
	defer f.Close()

	rows, err := laporan.ImportPemasok(f)
	if err != nil {
		return failJSON(c, fiber.StatusUnprocessableEntity, "Import gagal", err)
	}

	ctx := c.UserContext()
	existing, err := sc.Store.ListPemasok(ctx)
	if err != nil {
		return failJSON(c, fiber.StatusInternalServerError, "Gagal mengambil data pemasok", err)
	}
	nama := map[string]bool{}
	email := map[string]bool{}
	tandai := func(s models.Pemasok) {
		nama[strings.ToLower(s.Nama)] = true
		if s.Email != "" {
			email[strings.ToLower(s.Email)] = true
		}
	}
	for _, s := range existing {
		tandai(s)
	}

	var (
		imported []models.Pemasok
		dilewati []string
		gagal    []importGagal
	)
	for _, row := range rows {
		if nama[strings.ToLower(row.Nama)] || (row.Email != "" && email[strings.ToLower(row.Email)]) {
			dilewati = append(dilewati, row.Nama)
			continue
		}
		s := models.Pemasok{Nama: row.Nama, Email: row.Email, Telepon: row.Telepon, Alamat: row.Alamat}
		if err := sc.Store.CreatePemasok(ctx, &s); err != nil {
			gagal = append(gagal, importGagal{Baris: row.Baris, Nama: row.Nama, Error: err.Error()})
			continue
		}
		tandai(s)
		imported = append(imported, s)
	}
	return importReply(c, "pemasok", imported, len(imported), dilewati, gagal)
}
