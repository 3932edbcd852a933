package loss

import (
	"errors"
	"strings"
	"time"

	"envanter-backend/internal/database"
	"envanter-backend/internal/finance"
	"envanter-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateLossRequest struct {
	OrganizationID uint   `json:"organization_id"`
	Type           string `json:"type"` // staff_consumption, spoilage, waste, damaged, theft, other
	Quantity       int    `json:"quantity"`
	MenuItemID     *uint  `json:"menu_item_id"`  // menü zayiatı için
	StockItemID    *uint  `json:"stock_item_id"` // stok zayiatı için
	LossDate       string `json:"loss_date"`     // "2025-12-09", boşsa şimdi
	Reason         string `json:"reason"`        // Opsiyonel açıklama
}

type LossResponse struct {
	ID               uint    `json:"id"`
	OrganizationID   uint    `json:"organization_id"`
	OrganizationName string  `json:"organization_name"`
	Type             string  `json:"type"`
	Quantity         int     `json:"quantity"`
	MenuItemID       *uint   `json:"menu_item_id,omitempty"`
	StockItemID      *uint   `json:"stock_item_id,omitempty"`
	ItemName         string  `json:"item_name"`
	CostPrice        float64 `json:"cost_price"`
	ExpectedProfit   float64 `json:"expected_profit"`
	TotalLoss        float64 `json:"total_loss"`
	LossDate         string  `json:"loss_date"`
	Reason           string  `json:"reason"`
	CreatedAt        string  `json:"created_at"`
}

func toResponse(l models.Loss) LossResponse {
	itemName := finance.UnknownItemName
	if l.MenuItem != nil && l.MenuItem.Name != "" {
		itemName = l.MenuItem.Name
	} else if l.StockItem != nil && l.StockItem.Name != "" {
		itemName = l.StockItem.Name
	}

	return LossResponse{
		ID:               l.ID,
		OrganizationID:   l.OrganizationID,
		OrganizationName: l.Organization.Name,
		Type:             string(l.Type),
		Quantity:         l.Quantity,
		MenuItemID:       l.MenuItemID,
		StockItemID:      l.StockItemID,
		ItemName:         itemName,
		CostPrice:        l.CostPrice,
		ExpectedProfit:   l.ExpectedProfit,
		TotalLoss:        l.TotalLoss,
		LossDate:         l.LossDate.Format("2006-01-02"),
		Reason:           l.Reason,
		CreatedAt:        l.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

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

// POST /api/losses
// CostPrice/ExpectedProfit oluşturma anında referans üründen çözülür ve
// kayda kopyalanır; sonraki fiyat değişiklikleri eski zayiatları etkilemez.
func CreateLossHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateLossRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.OrganizationID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "organization_id zorunludur")
		}
		if !models.ValidLossType(models.LossType(body.Type)) {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz zayiat türü")
		}

		// Organizasyon kontrolü
		var org models.Organization
		if err := database.DB.First(&org, "id = ?", body.OrganizationID).Error; err != nil {
			return mapCoreError(&finance.NotFoundError{Entity: "Organizasyon", ID: body.OrganizationID})
		}

		// Hedef: menü veya stok ürününden tam olarak biri
		target, err := finance.ParseLossTarget(body.MenuItemID, body.StockItemID)
		if err != nil {
			return mapCoreError(err)
		}

		costPrice, expectedProfit, err := resolvePricing(target)
		if err != nil {
			return mapCoreError(err)
		}

		lossDate := time.Now()
		if body.LossDate != "" {
			d, err := time.Parse("2006-01-02", body.LossDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
			}
			lossDate = d
		}

		figures, err := finance.DeriveLoss(body.Quantity, costPrice, expectedProfit)
		if err != nil {
			return mapCoreError(err)
		}
		if err := finance.VerifyLoss(body.Quantity, costPrice, expectedProfit, figures); err != nil {
			return mapCoreError(err)
		}

		entry := models.Loss{
			OrganizationID: body.OrganizationID,
			Type:           models.LossType(body.Type),
			Quantity:       body.Quantity,
			CostPrice:      costPrice,
			ExpectedProfit: expectedProfit,
			TotalLoss:      figures.TotalLoss,
			LossDate:       lossDate,
			Reason:         strings.TrimSpace(body.Reason),
		}
		if target.Kind == finance.TargetMenu {
			entry.MenuItemID = &target.MenuItemID
		} else {
			entry.StockItemID = &target.StockItemID
		}

		if err := database.DB.Create(&entry).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Zayiat kaydı oluşturulamadı")
		}

		// Yanıt için ilişkileri yükle
		database.DB.Preload("Organization").Preload("MenuItem").Preload("StockItem").
			First(&entry, "id = ?", entry.ID)

		return c.Status(fiber.StatusCreated).JSON(toResponse(entry))
	}
}

// GET /api/losses?organization_id=&date_from=&date_to=
func ListLossesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Preload("Organization").Preload("MenuItem").Preload("StockItem").
			Model(&models.Loss{})

		if orgID := c.QueryInt("organization_id"); orgID > 0 {
			dbq = dbq.Where("organization_id = ?", orgID)
		}
		if dateFrom := c.Query("date_from"); dateFrom != "" {
			if d, err := time.Parse("2006-01-02", dateFrom); err == nil {
				dbq = dbq.Where("loss_date >= ?", d)
			}
		}
		if dateTo := c.Query("date_to"); dateTo != "" {
			if d, err := time.Parse("2006-01-02", dateTo); err == nil {
				// Tarih sonuna kadar (23:59:59)
				d = d.Add(24*time.Hour - time.Second)
				dbq = dbq.Where("loss_date <= ?", d)
			}
		}

		var losses []models.Loss
		if err := dbq.Order("loss_date DESC, created_at DESC").Find(&losses).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Zayiat kayıtları listelenemedi")
		}

		res := make([]LossResponse, 0, len(losses))
		for _, l := range losses {
			res = append(res, toResponse(l))
		}
		return c.JSON(res)
	}
}

// DELETE /api/losses/:id
func DeleteLossHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var entry models.Loss
		if err := database.DB.First(&entry, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Zayiat kaydı bulunamadı")
		}

		if err := database.DB.Delete(&entry).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Zayiat kaydı silinemedi")
		}

		return c.JSON(fiber.Map{
			"message": "Zayiat kaydı başarıyla silindi",
		})
	}
}
