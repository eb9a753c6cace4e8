package routes

import (
	"github.com/gofiber/fiber/v2"

	"inventorypos/controllers"
)

func StokRoutes(app *fiber.App, sc *controllers.StokController) {
	g := app.Group("/stok")

	g.Get("/mutasi/:produk_id", sc.GetMutasiByProduk)
	g.Post("/", sc.CreateMutasi)
}
