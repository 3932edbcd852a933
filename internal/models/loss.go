package models

import "time"

type LossType string

const (
	LossTypeStaffConsumption LossType = "staff_consumption" // personel tüketimi
	LossTypeSpoilage         LossType = "spoilage"          // bozulma
	LossTypeWaste            LossType = "waste"             // israf
	LossTypeDamaged          LossType = "damaged"           // hasarlı
	LossTypeTheft            LossType = "theft"             // hırsızlık
	LossTypeOther            LossType = "other"             // diğer
)

func ValidLossType(t LossType) bool {
	switch t {
	case LossTypeStaffConsumption, LossTypeSpoilage, LossTypeWaste,
		LossTypeDamaged, LossTypeTheft, LossTypeOther:
		return true
	}
	return false
}

// Loss: Zayiat kaydı. MenuItemID veya StockItemID'den tam olarak biri dolu olur.
// Menü zayiatında CostPrice/ExpectedProfit oluşturma anında MenuItem'dan alınır
// (ExpectedProfit = SellingPrice - CostPrice), stok zayiatında CostPrice
// StockItem.CostPerUnit'tir ve ExpectedProfit her zaman 0'dır.
type Loss struct {
	ID             uint `gorm:"primaryKey"`
	OrganizationID uint `gorm:"index;not null"`
	Organization   Organization
	MenuItemID     *uint `gorm:"index"`
	MenuItem       *MenuItem
	StockItemID    *uint `gorm:"index"`
	StockItem      *StockItem
	Type           LossType  `gorm:"size:30;not null"`
	Quantity       int       `gorm:"not null"`
	CostPrice      float64   `gorm:"not null"`
	ExpectedProfit float64   `gorm:"not null"`
	TotalLoss      float64   `gorm:"not null"` // Quantity * (CostPrice + ExpectedProfit)
	LossDate       time.Time `gorm:"index;not null"`
	Reason         string    `gorm:"size:500"` // opsiyonel açıklama
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
