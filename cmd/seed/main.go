package main

import (
	"log"

	"envanter-backend/internal/config"
	"envanter-backend/internal/database"
	"envanter-backend/internal/models"
)

// Örnek veri yükleyici: boş bir veritabanını örnek organizasyon, menü ve
// stok kayıtlarıyla doldurur. Mevcut kayıt varsa dokunmaz.
func main() {
	cfg := config.Load()
	database.Init(cfg)

	var count int64
	database.DB.Model(&models.Organization{}).Count(&count)
	if count > 0 {
		log.Println("Veritabanı boş değil, seed atlandı.")
		return
	}

	orgs := []models.Organization{
		{Name: "Downtown Branch", Address: "123 Main St, Downtown"},
		{Name: "Uptown Branch", Address: "456 Oak Ave, Uptown"},
		{Name: "Westside Branch", Address: "789 Pine Rd, Westside"},
	}
	for i := range orgs {
		if err := database.DB.Create(&orgs[i]).Error; err != nil {
			log.Fatalf("Organizasyon oluşturulamadı: %v", err)
		}
	}

	menuItems := []models.MenuItem{
		{Name: "Margherita Pizza", Category: "Main Course", CostPrice: 8.50, SellingPrice: 15.99, IsActive: true},
		{Name: "Chicken Tacos", Category: "Main Course", CostPrice: 6.25, SellingPrice: 12.99, IsActive: true},
		{Name: "Caesar Salad", Category: "Appetizers", CostPrice: 4.75, SellingPrice: 9.99, IsActive: true},
		{Name: "Chocolate Cake", Category: "Desserts", CostPrice: 3.50, SellingPrice: 7.99, IsActive: true},
		{Name: "Coca Cola", Category: "Beverages", CostPrice: 1.25, SellingPrice: 2.99, IsActive: true},
	}
	for i := range menuItems {
		if err := database.DB.Create(&menuItems[i]).Error; err != nil {
			log.Fatalf("Menü ürünü oluşturulamadı: %v", err)
		}
	}

	stockItems := []models.StockItem{
		{Name: "Tomatoes", Category: "Vegetables", Unit: "kg", CostPerUnit: 3.50, CurrentStock: 25, MinStockLevel: 10, OrganizationID: orgs[0].ID},
		{Name: "Chicken Breast", Category: "Meat", Unit: "kg", CostPerUnit: 8.99, CurrentStock: 15, MinStockLevel: 5, OrganizationID: orgs[0].ID},
		{Name: "Mozzarella Cheese", Category: "Dairy", Unit: "kg", CostPerUnit: 12.50, CurrentStock: 8, MinStockLevel: 4, OrganizationID: orgs[0].ID},
		{Name: "Flour", Category: "Other", Unit: "kg", CostPerUnit: 2.25, CurrentStock: 50, MinStockLevel: 20, OrganizationID: orgs[1].ID},
		{Name: "Olive Oil", Category: "Other", Unit: "liters", CostPerUnit: 15.99, CurrentStock: 12, MinStockLevel: 5, OrganizationID: orgs[1].ID},
	}
	for i := range stockItems {
		if err := database.DB.Create(&stockItems[i]).Error; err != nil {
			log.Fatalf("Stok kaydı oluşturulamadı: %v", err)
		}
	}

	log.Println("Örnek veriler yüklendi.")
}
