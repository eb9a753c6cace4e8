package routes

import (
	"github.com/gofiber/fiber/v2"

	"inventorypos/controllers"
)

func LaporanRoutes(app *fiber.App, lc *controllers.LaporanController) {
	g := app.Group("/laporan")

	g.Get("/ringkasan", lc.Ringkasan)
	g.Get("/stok-alert", lc.StokAlert)
	g.Post("/stok-alert/kirim", lc.KirimStokAlert)
	g.Get("/penjualan", lc.Penjualan)
	g.Get("/best-sellers", lc.BestSellers)
	g.Get("/export/excel", lc.ExportExcel)
}
