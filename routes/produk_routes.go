package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bosscan/ginastel/controllers"
	"github.com/bosscan/ginastel/middleware"
	"github.com/bosscan/ginastel/models"
)

func ProdukRoutes(app *fiber.App) {
	g := app.Group("/produk", middleware.RoleGuard(models.RoleStaff, models.RoleOwner))
	g.Get("/", controllers.GetAllProduk)
	g.Get("/:id", controllers.GetProdukByID)
}
