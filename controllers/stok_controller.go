package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bosscan/ginastel/repository"
)

// StokController membungkus store penghitung stok manual. Store ini tidak
// terhubung ke checkout.
type StokController struct {
	Store *repository.StokStore
}

func NewStokController(s *repository.StokStore) *StokController {
	return &StokController{Store: s}
}

// GetStok godoc
//
//	@Summary		Get stock
//	@Description	Mengambil seluruh penghitung stok
//	@Tags			Stok
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		models.StokItem
//	@Failure		500	{object}	map[string]interface{}
//	@Router			/stok [get]
func (sc *StokController) GetStok(c *fiber.Ctx) error {
	items, err := sc.Store.Load()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal mengambil stok"})
	}
	return c.JSON(items)
}

// SetStokQuantity godoc
//
//	@Summary		Set stock quantity
//	@Description	Menetapkan kuantitas stok produk (owner only)
//	@Tags			Stok
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			produk_id	path		string					true	"Product ID"
//	@Param			body		body		object{quantity=int}	true	"Kuantitas"
//	@Success		200			{array}		models.StokItem
//	@Failure		422			{object}	map[string]interface{}
//	@Router			/stok/{produk_id} [put]
func (sc *StokController) SetStokQuantity(c *fiber.Ctx) error {
	produkID := c.Params("produk_id")
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Request tidak valid"})
	}
	if body.Quantity < 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "quantity tidak boleh negatif"})
	}
	items, err := sc.Store.SetQuantity(produkID, body.Quantity)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal menyimpan stok"})
	}
	return c.JSON(items)
}

// AdjustStok godoc
//
//	@Summary		Adjust stock
//	@Description	Menggeser kuantitas stok dengan delta; hasil dijepit di nol (owner only)
//	@Tags			Stok
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			produk_id	path		string				true	"Product ID"
//	@Param			body		body		object{delta=int}	true	"Delta"
//	@Success		200			{array}		models.StokItem
//	@Failure		500			{object}	map[string]interface{}
//	@Router			/stok/{produk_id}/adjust [post]
func (sc *StokController) AdjustStok(c *fiber.Ctx) error {
	produkID := c.Params("produk_id")
	var body struct {
		Delta int `json:"delta"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Request tidak valid"})
	}
	items, err := sc.Store.Adjust(produkID, body.Delta)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal menyimpan stok"})
	}
	return c.JSON(items)
}

// ResetStok godoc
//
//	@Summary		Reset stock
//	@Description	Mengembalikan semua penghitung stok ke default katalog (owner only)
//	@Tags			Stok
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		models.StokItem
//	@Failure		500	{object}	map[string]interface{}
//	@Router			/stok/reset [post]
func (sc *StokController) ResetStok(c *fiber.Ctx) error {
	items, err := sc.Store.Reset()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal reset stok"})
	}
	return c.JSON(items)
}
