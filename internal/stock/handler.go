package stock

import (
	"strings"

	"envanter-backend/internal/database"
	"envanter-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type StockItemResponse struct {
	ID               uint    `json:"id"`
	OrganizationID   uint    `json:"organization_id"`
	OrganizationName string  `json:"organization_name"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	Unit             string  `json:"unit"`
	CostPerUnit      float64 `json:"cost_per_unit"`
	CurrentStock     float64 `json:"current_stock"`
	MinStockLevel    float64 `json:"min_stock_level"`
	IsLowStock       bool    `json:"is_low_stock"`
	CreatedAt        string  `json:"created_at"`
}

type CreateStockItemRequest struct {
	OrganizationID uint    `json:"organization_id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Unit           string  `json:"unit"`
	CostPerUnit    float64 `json:"cost_per_unit"`
	CurrentStock   float64 `json:"current_stock"`   // Opsiyonel, varsayılan 0
	MinStockLevel  float64 `json:"min_stock_level"` // Opsiyonel, varsayılan 0
}

type UpdateStockItemRequest struct {
	Name          *string  `json:"name"`
	Category      *string  `json:"category"`
	Unit          *string  `json:"unit"`
	CostPerUnit   *float64 `json:"cost_per_unit"`
	CurrentStock  *float64 `json:"current_stock"`
	MinStockLevel *float64 `json:"min_stock_level"`
}

func toResponse(s models.StockItem) StockItemResponse {
	return StockItemResponse{
		ID:               s.ID,
		OrganizationID:   s.OrganizationID,
		OrganizationName: s.Organization.Name,
		Name:             s.Name,
		Category:         s.Category,
		Unit:             s.Unit,
		CostPerUnit:      s.CostPerUnit,
		CurrentStock:     s.CurrentStock,
		MinStockLevel:    s.MinStockLevel,
		IsLowStock:       s.CurrentStock <= s.MinStockLevel,
		CreatedAt:        s.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// GET /api/stock?organization_id=&low=true
func ListStockItemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Preload("Organization").Model(&models.StockItem{})

		if orgID := c.QueryInt("organization_id"); orgID > 0 {
			dbq = dbq.Where("organization_id = ?", orgID)
		}
		// Kritik stok filtresi
		if c.Query("low") == "true" {
			dbq = dbq.Where("current_stock <= min_stock_level")
		}

		var items []models.StockItem
		if err := dbq.Order("name asc").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok kayıtları listelenemedi")
		}

		res := make([]StockItemResponse, 0, len(items))
		for _, s := range items {
			res = append(res, toResponse(s))
		}
		return c.JSON(res)
	}
}

// POST /api/stock
func CreateStockItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateStockItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Unit = strings.TrimSpace(body.Unit)
		if body.Name == "" || body.Unit == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name ve unit zorunlu")
		}
		if body.OrganizationID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "organization_id zorunludur")
		}
		if body.CostPerUnit < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "cost_per_unit negatif olamaz")
		}

		// Organizasyon kontrolü
		var org models.Organization
		if err := database.DB.First(&org, "id = ?", body.OrganizationID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Organizasyon bulunamadı")
		}

		s := models.StockItem{
			OrganizationID: body.OrganizationID,
			Name:           body.Name,
			Category:       strings.TrimSpace(body.Category),
			Unit:           body.Unit,
			CostPerUnit:    body.CostPerUnit,
			CurrentStock:   body.CurrentStock,
			MinStockLevel:  body.MinStockLevel,
		}

		if err := database.DB.Create(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok kaydı oluşturulamadı")
		}

		s.Organization = org
		return c.Status(fiber.StatusCreated).JSON(toResponse(s))
	}
}

// PUT /api/stock/:id
func UpdateStockItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var s models.StockItem
		if err := database.DB.Preload("Organization").First(&s, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Stok kaydı bulunamadı")
		}

		var body UpdateStockItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name boş olamaz")
			}
			s.Name = name
		}
		if body.Category != nil {
			s.Category = strings.TrimSpace(*body.Category)
		}
		if body.Unit != nil {
			unit := strings.TrimSpace(*body.Unit)
			if unit == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Unit boş olamaz")
			}
			s.Unit = unit
		}
		if body.CostPerUnit != nil {
			if *body.CostPerUnit < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "cost_per_unit negatif olamaz")
			}
			s.CostPerUnit = *body.CostPerUnit
		}
		if body.CurrentStock != nil {
			s.CurrentStock = *body.CurrentStock
		}
		if body.MinStockLevel != nil {
			s.MinStockLevel = *body.MinStockLevel
		}

		if err := database.DB.Save(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok kaydı güncellenemedi")
		}

		return c.JSON(toResponse(s))
	}
}

// DELETE /api/stock/:id
func DeleteStockItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var s models.StockItem
		if err := database.DB.First(&s, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Stok kaydı bulunamadı")
		}

		// Zayiat kayıtları bu stok ürününü referanslıyorsa silme reddedilir
		var refCount int64
		database.DB.Model(&models.Loss{}).Where("stock_item_id = ?", s.ID).Count(&refCount)
		if refCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Stok ürününe bağlı zayiat kayıtları var, önce onları silin")
		}

		if err := database.DB.Delete(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok kaydı silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
