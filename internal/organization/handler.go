package organization

import (
	"strings"

	"envanter-backend/internal/database"
	"envanter-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type OrganizationResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	CreatedAt string `json:"created_at"`
}

type CreateOrganizationRequest struct {
	Name    string  `json:"name"`
	Address *string `json:"address"` // Opsiyonel
}

type UpdateOrganizationRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

func toResponse(o models.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:        o.ID,
		Name:      o.Name,
		Address:   o.Address,
		CreatedAt: o.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// POST /api/organizations
func CreateOrganizationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateOrganizationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Organizasyon adı boş olamaz")
		}

		org := models.Organization{
			Name: body.Name,
		}
		if body.Address != nil {
			org.Address = strings.TrimSpace(*body.Address)
		}

		if err := database.DB.Create(&org).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Organizasyon oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(org))
	}
}

// GET /api/organizations
func ListOrganizationsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var orgs []models.Organization
		if err := database.DB.Order("name asc").Find(&orgs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Organizasyonlar listelenemedi")
		}

		res := make([]OrganizationResponse, 0, len(orgs))
		for _, o := range orgs {
			res = append(res, toResponse(o))
		}
		return c.JSON(res)
	}
}

// GET /api/organizations/:id
func GetOrganizationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var org models.Organization
		if err := database.DB.First(&org, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Organizasyon bulunamadı")
		}

		return c.JSON(toResponse(org))
	}
}

// PUT /api/organizations/:id
func UpdateOrganizationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var org models.Organization
		if err := database.DB.First(&org, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Organizasyon bulunamadı")
		}

		var body UpdateOrganizationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Organizasyon adı boş olamaz")
			}
			org.Name = name
		}
		if body.Address != nil {
			org.Address = strings.TrimSpace(*body.Address)
		}

		if err := database.DB.Save(&org).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Organizasyon güncellenemedi")
		}

		return c.JSON(toResponse(org))
	}
}

// DELETE /api/organizations/:id
// Referans politikası RESTRICT: organizasyonu referanslayan stok, satış veya
// zayiat kaydı varken silme reddedilir.
func DeleteOrganizationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var org models.Organization
		if err := database.DB.First(&org, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Organizasyon bulunamadı")
		}

		var refCount int64
		database.DB.Model(&models.StockItem{}).Where("organization_id = ?", org.ID).Count(&refCount)
		if refCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Organizasyona bağlı stok kayıtları var, önce onları silin")
		}
		database.DB.Model(&models.Sale{}).Where("organization_id = ?", org.ID).Count(&refCount)
		if refCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Organizasyona bağlı satış kayıtları var, önce onları silin")
		}
		database.DB.Model(&models.Loss{}).Where("organization_id = ?", org.ID).Count(&refCount)
		if refCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Organizasyona bağlı zayiat kayıtları var, önce onları silin")
		}

		if err := database.DB.Delete(&org).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Organizasyon silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
