package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bosscan/ginastel/cart"
	"github.com/bosscan/ginastel/controllers"
	"github.com/bosscan/ginastel/middleware"
	"github.com/bosscan/ginastel/models"
)

func CartRoutes(app *fiber.App, keranjang *cart.Cart) {
	cc := controllers.NewCartController(keranjang)

	// Operasi kasir: staff dan owner
	g := app.Group("/cart", middleware.RoleGuard(models.RoleStaff, models.RoleOwner))
	g.Get("/", cc.GetCart)
	g.Delete("/", cc.ClearCart)
	g.Post("/items", cc.AddItem)
	g.Post("/items/free", cc.AddFreeItem)
	g.Put("/items/:produk_id", cc.UpdateItemQuantity)
	g.Delete("/items/:produk_id", cc.RemoveItem)
	g.Put("/promo", cc.SetPromotion)
	g.Post("/checkout", cc.Checkout)
}
