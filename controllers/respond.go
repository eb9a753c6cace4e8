package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"inventorypos/pos"
	"inventorypos/repository"
)

func failJSON(c *fiber.Ctx, status int, message string, err error) error {
	body := fiber.Map{"message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	return c.Status(status).JSON(body)
}

// storeStatus memetakan error repository ke status HTTP.
func storeStatus(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, repository.ErrKategoriNotFound),
		errors.Is(err, repository.ErrProdukNotFound),
		errors.Is(err, repository.ErrStokNegatif):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

// posStatus: 422 kesalahan kasir, 409 sesi sibuk/selesai, 404 produk, 500 sisanya.
func posStatus(err error) int {
	var stockErr *pos.StockReconciliationError
	switch {
	case pos.IsUserError(err):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, pos.ErrCheckoutInProgress), errors.Is(err, pos.ErrSaleCompleted):
		return fiber.StatusConflict
	case errors.As(err, &stockErr):
		return fiber.StatusInternalServerError
	case errors.Is(err, pos.ErrProdukNotFound):
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(s)
}

func queryInt(c *fiber.Ctx, key string, def int) int {
	if n, err := parseInt(c.Query(key)); err == nil && n > 0 {
		return n
	}
	return def
}

// importGagal mencatat baris Excel yang tidak bisa disimpan.
type importGagal struct {
	Baris int    `json:"baris,omitempty"`
	Nama  string `json:"nama"`
	Error string `json:"error"`
}

// openUpload membuka file multipart dengan field "file".
func openUpload(c *fiber.Ctx) (multipart.File, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, err
	}
	return fh.Open()
}

// importReply: 201 jika ada yang tersimpan, 422 jika tidak ada sama sekali.
func importReply(c *fiber.Ctx, jenis string, data interface{}, berhasil int, dilewati []string, gagal []importGagal) error {
	status := fiber.StatusCreated
	if berhasil == 0 {
		status = fiber.StatusUnprocessableEntity
	}
	body := fiber.Map{
		"message": fmt.Sprintf("%d %s berhasil diimport", berhasil, jenis),
		"data":    data,
		"gagal":   gagal,
	}
	if len(dilewati) > 0 {
		body["dilewati"] = dilewati
	}
	return c.Status(status).JSON(body)
}
