package main

import (
	"log"
	"strings"

	"envanter-backend/internal/analytics"
	"envanter-backend/internal/config"
	"envanter-backend/internal/database"
	"envanter-backend/internal/loss"
	"envanter-backend/internal/menu"
	"envanter-backend/internal/organization"
	"envanter-backend/internal/sales"
	"envanter-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Organizasyonlar (şubeler)
	api.Get("/organizations", organization.ListOrganizationsHandler())
	api.Post("/organizations", organization.CreateOrganizationHandler())
	api.Get("/organizations/:id", organization.GetOrganizationHandler())
	api.Put("/organizations/:id", organization.UpdateOrganizationHandler())
	api.Delete("/organizations/:id", organization.DeleteOrganizationHandler())

	// Stok yönetimi
	api.Get("/stock", stock.ListStockItemsHandler())
	api.Post("/stock", stock.CreateStockItemHandler())
	api.Put("/stock/:id", stock.UpdateStockItemHandler())
	api.Delete("/stock/:id", stock.DeleteStockItemHandler())

	// Menü yönetimi (silme soft-delete'tir)
	api.Get("/menu", menu.ListMenuItemsHandler())
	api.Post("/menu", menu.CreateMenuItemHandler())
	api.Put("/menu/:id", menu.UpdateMenuItemHandler())
	api.Delete("/menu/:id", menu.DeleteMenuItemHandler())

	// Satışlar
	api.Get("/sales", sales.ListSalesHandler())
	api.Post("/sales", sales.CreateSaleHandler())
	api.Delete("/sales/:id", sales.DeleteSaleHandler())

	// Zayiat kayıtları
	api.Get("/losses", loss.ListLossesHandler())
	api.Post("/losses", loss.CreateLossHandler())
	api.Delete("/losses/:id", loss.DeleteLossHandler())

	// Analitik
	api.Get("/analytics/summary", analytics.SummaryHandler())
	api.Get("/analytics/transactions", analytics.TransactionsHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
