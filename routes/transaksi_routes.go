package routes

import (
	"github.com/gofiber/fiber/v2"

	"inventorypos/controllers"
)

// Transaksi tidak pernah diupdate. Penjualan baru lewat /pos/checkout,
// import hanya menambah riwayat.
func TransaksiRoutes(app *fiber.App, tc *controllers.TransaksiController) {
	g := app.Group("/transaksi")

	g.Post("/import", tc.ImportTransaksi)
	g.Get("/", tc.ListTransaksi)
	g.Get("/:id", tc.GetTransaksiByID)
	g.Get("/:id/struk", tc.GetStruk)
}
