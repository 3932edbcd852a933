package models

import "time"

type Organization struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;unique"`
	Address   string `gorm:"size:255"` // Opsiyonel adres
	CreatedAt time.Time
	UpdatedAt time.Time

	StockItems []StockItem
}
