package menu

import (
	"strings"

	"envanter-backend/internal/database"
	"envanter-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type MenuItemResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	CostPrice    float64 `json:"cost_price"`
	SellingPrice float64 `json:"selling_price"`
	IsActive     bool    `json:"is_active"`
	CreatedAt    string  `json:"created_at"`
}

type CreateMenuItemRequest struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Description  string  `json:"description"` // Opsiyonel
	CostPrice    float64 `json:"cost_price"`
	SellingPrice float64 `json:"selling_price"`
}

type UpdateMenuItemRequest struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	Description  *string  `json:"description"`
	CostPrice    *float64 `json:"cost_price"`
	SellingPrice *float64 `json:"selling_price"`
	IsActive     *bool    `json:"is_active"`
}

func toResponse(m models.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:           m.ID,
		Name:         m.Name,
		Category:     m.Category,
		Description:  m.Description,
		CostPrice:    m.CostPrice,
		SellingPrice: m.SellingPrice,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// GET /api/menu
// Varsayılan olarak sadece aktif ürünler döner; include_inactive=true ile
// soft-delete edilmiş ürünler de listelenir.
func ListMenuItemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.MenuItem{})
		if c.Query("include_inactive") != "true" {
			dbq = dbq.Where("is_active = ?", true)
		}

		var items []models.MenuItem
		if err := dbq.Order("name asc").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü ürünleri listelenemedi")
		}

		res := make([]MenuItemResponse, 0, len(items))
		for _, m := range items {
			res = append(res, toResponse(m))
		}
		return c.JSON(res)
	}
}

// POST /api/menu
func CreateMenuItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMenuItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Category = strings.TrimSpace(body.Category)
		if body.Name == "" || body.Category == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name ve category zorunlu")
		}
		if body.CostPrice < 0 || body.SellingPrice < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Fiyatlar negatif olamaz")
		}
		// Not: SellingPrice < CostPrice geçerlidir (zararına satılan ürünler).

		m := models.MenuItem{
			Name:         body.Name,
			Category:     body.Category,
			Description:  strings.TrimSpace(body.Description),
			CostPrice:    body.CostPrice,
			SellingPrice: body.SellingPrice,
			IsActive:     true,
		}

		if err := database.DB.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü ürünü oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(m))
	}
}

// PUT /api/menu/:id
// Fiyat güncellemesi geriye dönük işlemez: mevcut satış/zayiat kayıtları
// oluşturma anındaki fiyat kopyasını taşır ve asla yeniden hesaplanmaz.
func UpdateMenuItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var m models.MenuItem
		if err := database.DB.First(&m, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Menü ürünü bulunamadı")
		}

		var body UpdateMenuItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name boş olamaz")
			}
			m.Name = name
		}
		if body.Category != nil {
			m.Category = strings.TrimSpace(*body.Category)
		}
		if body.Description != nil {
			m.Description = strings.TrimSpace(*body.Description)
		}
		if body.CostPrice != nil {
			if *body.CostPrice < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "cost_price negatif olamaz")
			}
			m.CostPrice = *body.CostPrice
		}
		if body.SellingPrice != nil {
			if *body.SellingPrice < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "selling_price negatif olamaz")
			}
			m.SellingPrice = *body.SellingPrice
		}
		if body.IsActive != nil {
			m.IsActive = *body.IsActive
		}

		if err := database.DB.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü ürünü güncellenemedi")
		}

		return c.JSON(toResponse(m))
	}
}

// DELETE /api/menu/:id
// Soft delete: kayıt silinmez, IsActive=false yapılır. Eski satış ve zayiat
// kayıtlarının referansları korunur.
func DeleteMenuItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var m models.MenuItem
		if err := database.DB.First(&m, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Menü ürünü bulunamadı")
		}

		if err := database.DB.Model(&m).Update("is_active", false).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü ürünü silinemedi")
		}

		return c.JSON(fiber.Map{
			"message": "Menü ürünü pasife alındı",
		})
	}
}
