package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bosscan/ginastel/repository"
	"github.com/bosscan/ginastel/utils"
)

// Login godoc
//
//	@Summary		Login
//	@Description	Login akun outlet (staff / owner) dan menerima token bearer
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		object{username=string,password=string}	true	"Kredensial"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		401		{object}	map[string]interface{}	"Username atau password salah"
//	@Router			/auth/login [post]
func Login(c *fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Request tidak valid"})
	}
	if body.Username == "" || body.Password == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "username dan password wajib"})
	}

	user, ok := repository.FindUserByUsername(body.Username)
	if !ok || !repository.CheckPassword(user, body.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Username atau password salah"})
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal membuat token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   token,
		"user":    user,
	})
}

// Me godoc
//
//	@Summary		Current user
//	@Description	Profil user dari token aktif
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	models.User
//	@Failure		401	{object}	map[string]interface{}
//	@Router			/auth/me [get]
func Me(c *fiber.Ctx) error {
	nama, _ := c.Locals("userNama").(string)
	user, ok := repository.FindUserByUsername(nama)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "User tidak dikenal"})
	}
	return c.JSON(user)
}
