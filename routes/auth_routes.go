package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bosscan/ginastel/controllers"
)

func AuthRoutes(app *fiber.App) {
	g := app.Group("/auth")
	g.Post("/login", controllers.Login)
	g.Get("/me", controllers.Me)
}
