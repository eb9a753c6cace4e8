package routes

import (
	"github.com/gofiber/fiber/v2"

	"inventorypos/controllers"
)

func PemasokRoutes(app *fiber.App, sc *controllers.PemasokController) {
	g := app.Group("/pemasok")

	g.Get("/export/excel", sc.ExportPemasok)
	g.Post("/import", sc.ImportPemasok)
	g.Get("/", sc.GetAllPemasok)
	g.Get("/:id", sc.GetPemasokByID)
	g.Post("/", sc.CreatePemasok)
	g.Put("/:id", sc.UpdatePemasok)
	g.Delete("/:id", sc.DeletePemasok)
}
