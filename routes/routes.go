package routes

import (
	"github.com/gofiber/fiber/v2"

	"inventorypos/controllers"
)

// Controllers dikumpulkan di main lalu dipasang di sini.
type Controllers struct {
	POS       *controllers.POSController
	Produk    *controllers.ProdukController
	Kategori  *controllers.KategoriController
	Pemasok   *controllers.PemasokController
	Stok      *controllers.StokController
	Transaksi *controllers.TransaksiController
	Laporan   *controllers.LaporanController
}

func SetupRoutes(app *fiber.App, ctl Controllers) {
	POSRoutes(app, ctl.POS)
	ProdukRoutes(app, ctl.Produk)
	KategoriRoutes(app, ctl.Kategori)
	PemasokRoutes(app, ctl.Pemasok)
	StokRoutes(app, ctl.Stok)
	TransaksiRoutes(app, ctl.Transaksi)
	LaporanRoutes(app, ctl.Laporan)
}
