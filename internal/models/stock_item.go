package models

import "time"

// StockItem: Şubeye ait ham madde stoğu. Satış fiyatı yoktur,
// stok zayiatında beklenen kar bileşeni bulunmaz.
type StockItem struct {
	ID             uint `gorm:"primaryKey"`
	OrganizationID uint `gorm:"index;not null"`
	Organization   Organization
	Name           string  `gorm:"size:100;not null"`
	Category       string  `gorm:"size:50;not null"` // Sebze, Et, Süt Ürünü vs.
	Unit           string  `gorm:"size:20;not null"` // kg, litre, adet vs.
	CostPerUnit    float64 `gorm:"not null"`         // birim maliyet
	CurrentStock   float64 `gorm:"not null"`         // mevcut miktar
	MinStockLevel  float64 `gorm:"not null"`         // kritik stok eşiği
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
