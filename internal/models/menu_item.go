package models

import "time"

// MenuItem: Satılabilir menü ürünü. Silme işlemi soft-delete'tir (IsActive=false),
// kayıt eski satış/zayiat referansları için saklanır.
type MenuItem struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"size:100;not null"`
	Category     string  `gorm:"size:50;not null"` // Ana Yemek, Tatlı, İçecek vs.
	Description  string  `gorm:"size:255"`
	CostPrice    float64 `gorm:"not null"` // birim maliyet
	SellingPrice float64 `gorm:"not null"` // satış fiyatı (maliyetin altında olabilir)
	IsActive     bool    `gorm:"not null;default:true;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
