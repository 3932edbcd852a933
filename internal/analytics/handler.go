package analytics

import (
	"time"

	"envanter-backend/internal/database"
	"envanter-backend/internal/finance"
	"envanter-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseRange: start_date/end_date parametrelerinden DateRange üretir.
// end_date gün sonuna (23:59:59) uzatılır ki kapalı aralık gün bazında
// son günü de kapsasın.
func parseRange(c *fiber.Ctx) (finance.DateRange, error) {
	var r finance.DateRange

	if s := c.Query("start_date"); s != "" {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return r, fiber.NewError(fiber.StatusBadRequest, "start_date formatı 'YYYY-MM-DD' olmalı")
		}
		r.From = &d
	}
	if s := c.Query("end_date"); s != "" {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return r, fiber.NewError(fiber.StatusBadRequest, "end_date formatı 'YYYY-MM-DD' olmalı")
		}
		d = d.Add(24*time.Hour - time.Second)
		r.To = &d
	}

	return r, nil
}

func parseOrganizationID(c *fiber.Ctx) *uint {
	if orgID := c.QueryInt("organization_id"); orgID > 0 {
		id := uint(orgID)
		return &id
	}
	return nil
}

// GET /api/analytics/summary?organization_id=&start_date=&end_date=
// Filtreye uyan satış/zayiat kümesini toplayıp finansal özet döner.
// Tarih aralığı kayıtların oluşturulma zamanına (created_at) uygulanır ve
// ancak iki sınır da verildiğinde devreye girer; tek sınır yok sayılır.
func SummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID := parseOrganizationID(c)
		dateRange, err := parseRange(c)
		if err != nil {
			return err
		}

		salesQ := database.DB.Model(&models.Sale{})
		lossQ := database.DB.Model(&models.Loss{})

		if orgID != nil {
			salesQ = salesQ.Where("organization_id = ?", *orgID)
			lossQ = lossQ.Where("organization_id = ?", *orgID)
		}
		if dateRange.Bounded() {
			salesQ = salesQ.Where("created_at >= ? AND created_at <= ?", *dateRange.From, *dateRange.To)
			lossQ = lossQ.Where("created_at >= ? AND created_at <= ?", *dateRange.From, *dateRange.To)
		}

		var sales []models.Sale
		if err := salesQ.Find(&sales).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satışlar okunamadı")
		}
		var losses []models.Loss
		if err := lossQ.Find(&losses).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Zayiat kayıtları okunamadı")
		}

		return c.JSON(finance.Summarize(sales, losses))
	}
}

type TransactionsResponse struct {
	Count int                  `json:"count"`
	Items []finance.LedgerLine `json:"items"`
}

// GET /api/analytics/transactions?organization_id=&start_date=&end_date=&type=
// Satış ve zayiat kayıtlarını işaretli tutarlarla tek kronolojik deftere
// birleştirir. Tarih filtresi burada kaydın kendi tarihine
// (sale_date/loss_date) uygulanır. type=sales|losses ile tek kaynak seçilir.
func TransactionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := finance.LedgerFilter{
			OrganizationID: parseOrganizationID(c),
		}

		dateRange, err := parseRange(c)
		if err != nil {
			return err
		}
		filter.Range = dateRange

		switch c.Query("type") {
		case "", "both":
			// iki kaynak da dahil
		case "sales":
			filter.Kind = finance.KindSale
		case "losses":
			filter.Kind = finance.KindLoss
		default:
			return fiber.NewError(fiber.StatusBadRequest, "type 'sales', 'losses' veya boş olmalı")
		}

		var sales []models.Sale
		if filter.Kind == "" || filter.Kind == finance.KindSale {
			if err := database.DB.Preload("Organization").Preload("MenuItem").
				Find(&sales).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Satışlar okunamadı")
			}
		}
		var losses []models.Loss
		if filter.Kind == "" || filter.Kind == finance.KindLoss {
			if err := database.DB.Preload("Organization").Preload("MenuItem").Preload("StockItem").
				Find(&losses).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Zayiat kayıtları okunamadı")
			}
		}

		lines := finance.ComposeLedger(sales, losses, filter)
		return c.JSON(TransactionsResponse{
			Count: len(lines),
			Items: lines,
		})
	}
}
