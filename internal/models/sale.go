package models

import "time"

// Sale: Satış kaydı. UnitPrice ve CostPrice oluşturma anında MenuItem'dan
// kopyalanır; menü fiyatı sonradan değişse bile eski satışlar değişmez.
// Türetilmiş alanlar (TotalRevenue, TotalCost, Profit) kayıtla birlikte
// hesaplanıp yazılır, güncelleme yoktur, sadece silme vardır.
type Sale struct {
	ID             uint `gorm:"primaryKey"`
	OrganizationID uint `gorm:"index;not null"`
	Organization   Organization
	MenuItemID     uint `gorm:"index;not null"`
	MenuItem       MenuItem
	Quantity       int       `gorm:"not null"`
	UnitPrice      float64   `gorm:"not null"` // satış anındaki birim fiyat
	CostPrice      float64   `gorm:"not null"` // satış anındaki birim maliyet
	TotalRevenue   float64   `gorm:"not null"` // Quantity * UnitPrice
	TotalCost      float64   `gorm:"not null"` // Quantity * CostPrice
	Profit         float64   `gorm:"not null"` // TotalRevenue - TotalCost
	SaleDate       time.Time `gorm:"index;not null"`
	Notes          string    `gorm:"size:255"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
