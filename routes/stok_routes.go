package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bosscan/ginastel/controllers"
	"github.com/bosscan/ginastel/middleware"
	"github.com/bosscan/ginastel/models"
	"github.com/bosscan/ginastel/repository"
)

func StokRoutes(app *fiber.App, store *repository.StokStore) {
	sc := controllers.NewStokController(store)

	g := app.Group("/stok")
	// View: staff dan owner
	g.Get("/", middleware.RoleGuard(models.RoleStaff, models.RoleOwner), sc.GetStok)
	// Input stok: owner only
	g.Put("/:produk_id", middleware.RoleGuard(models.RoleOwner), sc.SetStokQuantity)
	g.Post("/reset", middleware.RoleGuard(models.RoleOwner), sc.ResetStok)
	g.Post("/:produk_id/adjust", middleware.RoleGuard(models.RoleOwner), sc.AdjustStok)
}
