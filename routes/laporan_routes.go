package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bosscan/ginastel/cart"
	"github.com/bosscan/ginastel/controllers"
	"github.com/bosscan/ginastel/middleware"
	"github.com/bosscan/ginastel/models"
)

func LaporanRoutes(app *fiber.App, keranjang *cart.Cart) {
	lc := controllers.NewLaporanController(keranjang)

	app.Get("/laporan/penjualan",
		middleware.RoleGuard(models.RoleStaff, models.RoleOwner),
		lc.GetPenjualan,
	)

	// Endpoint export dibuka via window.open; token boleh lewat query string,
	// dijaga di level route oleh middleware export + RoleGuard.
	app.Get("/laporan/export/csv",
		middleware.JWTMiddlewareForExport,
		middleware.RoleGuard(models.RoleStaff, models.RoleOwner),
		lc.ExportCSV,
	)
	app.Get("/laporan/export/excel",
		middleware.JWTMiddlewareForExport,
		middleware.RoleGuard(models.RoleStaff, models.RoleOwner),
		lc.ExportExcel,
	)
}
