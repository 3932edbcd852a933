package loss

import (
	"envanter-backend/internal/database"
	"envanter-backend/internal/finance"
	"envanter-backend/internal/models"
)

// resolvePricing: zayiat hedefinin fiyat bileşenlerini çözer. Etikete göre
// tek noktadan dallanır: menü ürünü için (CostPrice, SellingPrice-CostPrice),
// stok ürünü için (CostPerUnit, 0). Stok ürünlerinin satış fiyatı olmadığından
// beklenen kar bileşeni taşımazlar.
func resolvePricing(target finance.LossTarget) (costPrice, expectedProfit float64, err error) {
	switch target.Kind {
	case finance.TargetMenu:
		var item models.MenuItem
		if dbErr := database.DB.First(&item, "id = ?", target.MenuItemID).Error; dbErr != nil {
			return 0, 0, &finance.NotFoundError{Entity: "Menü ürünü", ID: target.MenuItemID}
		}
		return item.CostPrice, item.SellingPrice - item.CostPrice, nil

	case finance.TargetStock:
		var item models.StockItem
		if dbErr := database.DB.First(&item, "id = ?", target.StockItemID).Error; dbErr != nil {
			return 0, 0, &finance.NotFoundError{Entity: "Stok ürünü", ID: target.StockItemID}
		}
		return item.CostPerUnit, 0, nil

	default:
		return 0, 0, &finance.ValidationError{Msg: "Geçersiz zayiat hedefi"}
	}
}
