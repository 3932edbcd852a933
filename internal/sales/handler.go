package sales

import (
	"errors"
	"strings"
	"time"

	"envanter-backend/internal/database"
	"envanter-backend/internal/finance"
	"envanter-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateSaleRequest struct {
	OrganizationID uint   `json:"organization_id"`
	MenuItemID     uint   `json:"menu_item_id"`
	Quantity       int    `json:"quantity"`
	SaleDate       string `json:"sale_date"` // "2025-12-09", boşsa şimdi
	Notes          string `json:"notes"`     // Opsiyonel
}

type SaleResponse struct {
	ID               uint    `json:"id"`
	OrganizationID   uint    `json:"organization_id"`
	OrganizationName string  `json:"organization_name"`
	MenuItemID       uint    `json:"menu_item_id"`
	MenuItemName     string  `json:"menu_item_name"`
	Quantity         int     `json:"quantity"`
	UnitPrice        float64 `json:"unit_price"`
	CostPrice        float64 `json:"cost_price"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalCost        float64 `json:"total_cost"`
	Profit           float64 `json:"profit"`
	SaleDate         string  `json:"sale_date"`
	Notes            string  `json:"notes"`
	CreatedAt        string  `json:"created_at"`
}

func toResponse(s models.Sale) SaleResponse {
	return SaleResponse{
		ID:               s.ID,
		OrganizationID:   s.OrganizationID,
		OrganizationName: s.Organization.Name,
		MenuItemID:       s.MenuItemID,
		MenuItemName:     s.MenuItem.Name,
		Quantity:         s.Quantity,
		UnitPrice:        s.UnitPrice,
		CostPrice:        s.CostPrice,
		TotalRevenue:     s.TotalRevenue,
		TotalCost:        s.TotalCost,
		Profit:           s.Profit,
		SaleDate:         s.SaleDate.Format("2006-01-02"),
		Notes:            s.Notes,
		CreatedAt:        s.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// Çekirdek hata türlerini HTTP durumuna çevirir.
func mapCoreError(err error) error {
	var verr *finance.ValidationError
	if errors.As(err, &verr) {
		return fiber.NewError(fiber.StatusBadRequest, verr.Error())
	}
	var nf *finance.NotFoundError
	if errors.As(err, &nf) {
		return fiber.NewError(fiber.StatusNotFound, nf.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}

// POST /api/sales
// UnitPrice/CostPrice satış anında MenuItem'dan kopyalanır; türetilmiş
// alanlar hesaplanıp doğrulandıktan sonra kayıt tek seferde yazılır.
func CreateSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.OrganizationID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "organization_id zorunludur")
		}
		if body.MenuItemID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "menu_item_id zorunludur")
		}

		// Organizasyon kontrolü
		var org models.Organization
		if err := database.DB.First(&org, "id = ?", body.OrganizationID).Error; err != nil {
			return mapCoreError(&finance.NotFoundError{Entity: "Organizasyon", ID: body.OrganizationID})
		}

		// Menü ürünü kontrolü: fiyatlar buradan kopyalanır
		var item models.MenuItem
		if err := database.DB.First(&item, "id = ?", body.MenuItemID).Error; err != nil {
			return mapCoreError(&finance.NotFoundError{Entity: "Menü ürünü", ID: body.MenuItemID})
		}
		if !item.IsActive {
			return fiber.NewError(fiber.StatusBadRequest, "Pasif menü ürünü için satış girilemez")
		}

		saleDate := time.Now()
		if body.SaleDate != "" {
			d, err := time.Parse("2006-01-02", body.SaleDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
			}
			saleDate = d
		}

		figures, err := finance.DeriveSale(body.Quantity, item.SellingPrice, item.CostPrice)
		if err != nil {
			return mapCoreError(err)
		}
		if err := finance.VerifySale(body.Quantity, item.SellingPrice, item.CostPrice, figures); err != nil {
			return mapCoreError(err)
		}

		sale := models.Sale{
			OrganizationID: body.OrganizationID,
			MenuItemID:     body.MenuItemID,
			Quantity:       body.Quantity,
			UnitPrice:      item.SellingPrice,
			CostPrice:      item.CostPrice,
			TotalRevenue:   figures.TotalRevenue,
			TotalCost:      figures.TotalCost,
			Profit:         figures.Profit,
			SaleDate:       saleDate,
			Notes:          strings.TrimSpace(body.Notes),
		}

		if err := database.DB.Create(&sale).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satış kaydı oluşturulamadı")
		}

		sale.Organization = org
		sale.MenuItem = item
		return c.Status(fiber.StatusCreated).JSON(toResponse(sale))
	}
}

// GET /api/sales?organization_id=&date_from=&date_to=
func ListSalesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Preload("Organization").Preload("MenuItem").Model(&models.Sale{})

		if orgID := c.QueryInt("organization_id"); orgID > 0 {
			dbq = dbq.Where("organization_id = ?", orgID)
		}
		if dateFrom := c.Query("date_from"); dateFrom != "" {
			if d, err := time.Parse("2006-01-02", dateFrom); err == nil {
				dbq = dbq.Where("sale_date >= ?", d)
			}
		}
		if dateTo := c.Query("date_to"); dateTo != "" {
			if d, err := time.Parse("2006-01-02", dateTo); err == nil {
				// Tarih sonuna kadar (23:59:59)
				d = d.Add(24*time.Hour - time.Second)
				dbq = dbq.Where("sale_date <= ?", d)
			}
		}

		var sales []models.Sale
		if err := dbq.Order("sale_date DESC, created_at DESC").Find(&sales).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satışlar listelenemedi")
		}

		res := make([]SaleResponse, 0, len(sales))
		for _, s := range sales {
			res = append(res, toResponse(s))
		}
		return c.JSON(res)
	}
}

// DELETE /api/sales/:id
// Satış kayıtları güncellenmez, sadece silinir.
func DeleteSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var sale models.Sale
		if err := database.DB.First(&sale, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Satış kaydı bulunamadı")
		}

		if err := database.DB.Delete(&sale).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satış kaydı silinemedi")
		}

		return c.JSON(fiber.Map{
			"message": "Satış kaydı başarıyla silindi",
		})
	}
}
