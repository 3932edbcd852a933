package finance

// LossTarget: zayiatın hedeflediği ürünü etiketli varyant olarak taşır.
// Menü ve stok ürünleri ortak bir şekil üzerinden değil, etiket üzerinden
// ayrıştırılır; fiyat çözümlemesi etikete göre tek noktadan dallanır.

type TargetKind string

const (
	TargetMenu  TargetKind = "menu"
	TargetStock TargetKind = "stock"
)

type LossTarget struct {
	Kind        TargetKind
	MenuItemID  uint
	StockItemID uint
}

func MenuTarget(menuItemID uint) LossTarget {
	return LossTarget{Kind: TargetMenu, MenuItemID: menuItemID}
}

func StockTarget(stockItemID uint) LossTarget {
	return LossTarget{Kind: TargetStock, StockItemID: stockItemID}
}

// ParseLossTarget: isteğin menu_item_id/stock_item_id alanlarından hedefi
// çıkarır. İkisinin de dolu ya da ikisinin de boş olması geçersizdir.
func ParseLossTarget(menuItemID, stockItemID *uint) (LossTarget, error) {
	hasMenu := menuItemID != nil && *menuItemID != 0
	hasStock := stockItemID != nil && *stockItemID != 0

	switch {
	case hasMenu && hasStock:
		return LossTarget{}, &ValidationError{Msg: "menu_item_id ve stock_item_id aynı anda verilemez"}
	case hasMenu:
		return MenuTarget(*menuItemID), nil
	case hasStock:
		return StockTarget(*stockItemID), nil
	default:
		return LossTarget{}, &ValidationError{Msg: "menu_item_id veya stock_item_id zorunludur"}
	}
}
