package routes

import (
	"github.com/gofiber/fiber/v2"

	"inventorypos/controllers"
)

func KategoriRoutes(app *fiber.App, kc *controllers.KategoriController) {
	g := app.Group("/kategori")

	g.Post("/import", kc.ImportKategori)
	g.Get("/", kc.GetAllKategori)
	g.Get("/:id", kc.GetKategoriByID)
	g.Post("/", kc.CreateKategori)
	g.Put("/:id", kc.UpdateKategori)
	g.Delete("/:id", kc.DeleteKategori)
}
