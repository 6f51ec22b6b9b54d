package main

import (
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"github.com/bosscan/ginastel/cart"
	"github.com/bosscan/ginastel/config"
	_ "github.com/bosscan/ginastel/docs" // Import docs for swagger
	"github.com/bosscan/ginastel/middleware"
	"github.com/bosscan/ginastel/repository"
	"github.com/bosscan/ginastel/routes"
)

//	@title			Ginastel POS API
//	@version		1.0
//	@description	API kasir outlet Ginastel: katalog produk, keranjang + promo,
//	@description	checkout (CASH/QRIS), report penjualan, dan input stok manual.
//	@description
//	@description	**Role:**
//	@description	- staff: operasi kasir (keranjang, checkout, report)
//	@description	- owner: operasi kasir + input stok
//	@description
//	@description	**Authentication:**
//	@description	- Semua endpoint (kecuali login) memerlukan Bearer Token
//	@description	- Token didapat dari endpoint /auth/login

//	@host		localhost:5000
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load file .env (tidak fatal jika gagal)
	_ = godotenv.Load()

	// Pastikan JWT_SECRET di production; default aman untuk development
	appEnv := strings.ToLower(os.Getenv("APP_ENV"))
	if os.Getenv("JWT_SECRET") == "" {
		if appEnv == "production" {
			log.Fatal("❌ JWT_SECRET harus diset di environment production")
		}
		os.Setenv("JWT_SECRET", "dev_secret_key_change_me")
		log.Println("⚠️ JWT_SECRET tidak diset, menggunakan default untuk development")
	}

	// Siapkan direktori data + path store
	config.InitStorage()

	// Seed akun outlet (staff + owner)
	if err := repository.SeedUsers(); err != nil {
		log.Fatal("❌ Gagal seed user:", err)
	}

	// Muat ledger penjualan. Store korup = gagal startup, bukan gagal di
	// tengah transaksi.
	keranjang, err := cart.New(repository.NewSalesLedger())
	if err != nil {
		log.Fatal("❌ Gagal memuat ledger penjualan:", err)
	}
	log.Printf("✅ Ledger penjualan dimuat: %d transaksi", len(keranjang.Sales()))

	stokStore := repository.NewStokStore()
	if _, err := stokStore.Load(); err != nil {
		log.Fatal("❌ Gagal memuat store stok:", err)
	}

	// Inisialisasi Fiber
	app := fiber.New()

	// Middleware global
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CorsMiddleware())

	// JWTMiddleware global, kecuali login dan endpoint export
	// (export dibuka via window.open dan membawa token lewat query;
	// dijaga di route-level oleh JWTMiddlewareForExport + RoleGuard).
	app.Use(func(c *fiber.Ctx) error {
		path := c.Path()
		if strings.HasPrefix(path, "/laporan/export/") {
			return c.Next()
		}
		if path == "/auth/login" || strings.HasPrefix(path, "/swagger") {
			return c.Next()
		}
		return middleware.JWTMiddleware(c)
	})

	// Swagger route
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Semua route
	routes.SetupRoutes(app, keranjang, stokStore)

	// Port server (default 5000 agar konsisten dengan frontend)
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Fatal(app.Listen(":" + port))
}
