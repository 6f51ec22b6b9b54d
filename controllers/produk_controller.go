package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bosscan/ginastel/data"
)

// GetAllProduk godoc
//
//	@Summary		Get all products
//	@Description	Mengambil seluruh katalog produk (data statis, read-only)
//	@Tags			Produk
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	models.Produk
//	@Router			/produk [get]
func GetAllProduk(c *fiber.Ctx) error {
	return c.JSON(data.Products)
}

// GetProdukByID godoc
//
//	@Summary		Get product by ID
//	@Description	Mengambil satu produk katalog berdasarkan ID
//	@Tags			Produk
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Product ID"
//	@Success		200	{object}	models.Produk
//	@Failure		404	{object}	map[string]interface{}	"Produk tidak ditemukan"
//	@Router			/produk/{id} [get]
func GetProdukByID(c *fiber.Ctx) error {
	id := c.Params("id")
	p, ok := data.FindProduct(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Produk tidak ditemukan"})
	}
	return c.JSON(p)
}
