package routes

import (
	"github.com/gofiber/fiber/v2"

	"inventorypos/controllers"
)

func ProdukRoutes(app *fiber.App, pc *controllers.ProdukController) {
	produk := app.Group("/produk")

	// export & import harus sebelum /:id
	produk.Get("/export/excel", pc.ExportProduk)
	produk.Post("/import", pc.ImportProduk)

	produk.Get("/", pc.GetAllProduk)
	produk.Get("/:id", pc.GetProdukByID)
	produk.Post("/", pc.CreateProduk)
	produk.Put("/:id", pc.UpdateProduk)
	produk.Delete("/:id", pc.DeleteProduk)
}
