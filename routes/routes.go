package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bosscan/ginastel/cart"
	"github.com/bosscan/ginastel/repository"
)

// SetupRoutes mendaftarkan seluruh route aplikasi.
func SetupRoutes(app *fiber.App, keranjang *cart.Cart, stok *repository.StokStore) {
	AuthRoutes(app)
	ProdukRoutes(app)
	CartRoutes(app, keranjang)
	LaporanRoutes(app, keranjang)
	StokRoutes(app, stok)
}
