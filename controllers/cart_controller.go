package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bosscan/ginastel/cart"
	"github.com/bosscan/ginastel/data"
	"github.com/bosscan/ginastel/models"
)

// CartController memegang keranjang register tunggal.
type CartController struct {
	Cart *cart.Cart
}

func NewCartController(c *cart.Cart) *CartController {
	return &CartController{Cart: c}
}

func (cc *CartController) state() fiber.Map {
	return fiber.Map{
		"items":     cc.Cart.Items(),
		"promotion": cc.Cart.Promotion(),
		"totals":    cc.Cart.Totals(),
	}
}

// GetCart godoc
//
//	@Summary		Get cart
//	@Description	Isi keranjang berjalan: baris, promo aktif, dan totals
//	@Tags			Cart
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Router			/cart [get]
func (cc *CartController) GetCart(c *fiber.Ctx) error {
	return c.JSON(cc.state())
}

// AddItem godoc
//
//	@Summary		Add product to cart
//	@Description	Menambah 1 pada baris reguler produk, atau membuat baris baru
//	@Tags			Cart
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		object{produk_id=string}	true	"Produk"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		404		{object}	map[string]interface{}	"Produk tidak ditemukan"
//	@Router			/cart/items [post]
func (cc *CartController) AddItem(c *fiber.Ctx) error {
	var body struct {
		ProdukID string `json:"produk_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Request tidak valid"})
	}
	p, ok := data.FindProduct(body.ProdukID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Produk tidak ditemukan"})
	}
	cc.Cart.AddProduct(p)
	return c.JSON(cc.state())
}

// AddFreeItem godoc
//
//	@Summary		Add free product to cart
//	@Description	Menambah baris gratis; hanya berlaku saat promo Gratis Item aktif
//	@Tags			Cart
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		object{produk_id=string}	true	"Produk"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		404		{object}	map[string]interface{}	"Produk tidak ditemukan"
//	@Failure		422		{object}	map[string]interface{}	"Promo Gratis Item tidak aktif"
//	@Router			/cart/items/free [post]
func (cc *CartController) AddFreeItem(c *fiber.Ctx) error {
	var body struct {
		ProdukID string `json:"produk_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Request tidak valid"})
	}
	p, ok := data.FindProduct(body.ProdukID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Produk tidak ditemukan"})
	}
	if cc.Cart.Promotion() != models.PromoFreeItems {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Promo Gratis Item tidak aktif"})
	}
	cc.Cart.AddFreeProduct(p)
	return c.JSON(cc.state())
}

// UpdateItemQuantity godoc
//
//	@Summary		Update quantity
//	@Description	Menetapkan kuantitas semua baris produk tersebut. Input non-positif di-default ke 1 di lapisan ini; untuk menghapus pakai DELETE.
//	@Tags			Cart
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			produk_id	path		string					true	"Product ID"
//	@Param			body		body		object{quantity=int}	true	"Kuantitas"
//	@Success		200			{object}	map[string]interface{}
//	@Router			/cart/items/{produk_id} [put]
func (cc *CartController) UpdateItemQuantity(c *fiber.Ctx) error {
	produkID := c.Params("produk_id")
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Request tidak valid"})
	}
	// Orkestrator tidak melakukan clamping; default ke 1 dilakukan di sini,
	// sama seperti numeric pad di UI.
	if body.Quantity <= 0 {
		body.Quantity = 1
	}
	cc.Cart.UpdateQuantity(produkID, body.Quantity)
	return c.JSON(cc.state())
}

// RemoveItem godoc
//
//	@Summary		Remove item
//	@Description	Menghapus semua baris (gratis dan reguler) untuk produk tersebut
//	@Tags			Cart
//	@Security		BearerAuth
//	@Produce		json
//	@Param			produk_id	path		string	true	"Product ID"
//	@Success		200			{object}	map[string]interface{}
//	@Router			/cart/items/{produk_id} [delete]
func (cc *CartController) RemoveItem(c *fiber.Ctx) error {
	cc.Cart.RemoveItem(c.Params("produk_id"))
	return c.JSON(cc.state())
}

// SetPromotion godoc
//
//	@Summary		Set promotion
//	@Description	Mengganti promo aktif; semua baris langsung dihitung ulang
//	@Tags			Cart
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		object{promotion=string}	true	"NONE | ALL_3000 | FREE_ITEMS | HALF_PRICE"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		422		{object}	map[string]interface{}	"Promo tidak dikenal"
//	@Router			/cart/promo [put]
func (cc *CartController) SetPromotion(c *fiber.Ctx) error {
	var body struct {
		Promotion models.PromotionType `json:"promotion"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Request tidak valid"})
	}
	if !models.ValidPromotion(body.Promotion) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Promo tidak dikenal"})
	}
	cc.Cart.SetPromotion(body.Promotion)
	return c.JSON(cc.state())
}

// ClearCart godoc
//
//	@Summary		Clear cart
//	@Description	Mengosongkan keranjang dan mengembalikan promo ke NONE
//	@Tags			Cart
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Router			/cart [delete]
func (cc *CartController) ClearCart(c *fiber.Ctx) error {
	cc.Cart.Clear()
	return c.JSON(cc.state())
}

// Checkout godoc
//
//	@Summary		Checkout
//	@Description	Menjalankan transaksi. CASH dengan uang kurang mengembalikan 400 tanpa mengubah keranjang; QRIS menerima nominal berapa pun (default netTotal).
//	@Tags			Cart
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		object{paymentMethod=string,cashGiven=int,qrisAmount=int,qrisProof=string,qrisNote=string}	true	"Pembayaran"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]interface{}	"Uang kurang"
//	@Failure		422		{object}	map[string]interface{}	"Metode pembayaran tidak dikenal"
//	@Router			/cart/checkout [post]
func (cc *CartController) Checkout(c *fiber.Ctx) error {
	var body struct {
		PaymentMethod models.PaymentMethod `json:"paymentMethod"`
		CashGiven     *int                 `json:"cashGiven"`
		QrisAmount    *int                 `json:"qrisAmount"`
		QrisProof     string               `json:"qrisProof"`
		QrisNote      string               `json:"qrisNote"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Request tidak valid"})
	}
	if body.PaymentMethod != models.PaymentCash && body.PaymentMethod != models.PaymentQRIS {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Metode pembayaran tidak dikenal"})
	}

	nama, _ := c.Locals("userNama").(string)
	res := cc.Cart.Checkout(cart.CheckoutRequest{
		PaymentMethod: body.PaymentMethod,
		CashGiven:     body.CashGiven,
		QrisAmount:    body.QrisAmount,
		QrisProof:     body.QrisProof,
		QrisNote:      body.QrisNote,
		StaffNama:     nama,
	})

	if res.Sale == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Uang kurang",
			"change":  res.Change,
		})
	}

	resp := fiber.Map{
		"message": "Transaksi berhasil",
		"sale":    res.Sale,
		"change":  res.Change,
	}
	if res.Warning != "" {
		resp["warning"] = res.Warning
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
