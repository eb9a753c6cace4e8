package routes

import (
	"github.com/gofiber/fiber/v2"

	"inventorypos/controllers"
)

func POSRoutes(app *fiber.App, pc *controllers.POSController) {
	g := app.Group("/pos")

	g.Get("/produk", pc.ListProduk)

	g.Get("/keranjang", pc.GetKeranjang)
	g.Post("/keranjang/items", pc.AddItem)
	g.Put("/keranjang/items/:id", pc.SetQuantity)
	g.Delete("/keranjang/items/:id", pc.RemoveItem)
	g.Post("/keranjang/clear", pc.ClearKeranjang)

	g.Put("/pembayaran", pc.SetPembayaran)
	g.Post("/checkout", pc.Checkout)

	// struk transaksi terakhir
	g.Get("/struk", pc.GetStruk)
	g.Get("/struk/print", pc.PrintStruk)
	g.Get("/struk/download", pc.DownloadStruk)

	g.Post("/baru", pc.NewSale)
}
