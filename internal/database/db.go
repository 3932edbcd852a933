package database

import (
	"log"

	"envanter-backend/internal/config"
	"envanter-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	err = DB.AutoMigrate(
		&models.Organization{},
		&models.MenuItem{},
		&models.StockItem{},
		&models.Sale{},
		&models.Loss{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	// Referans politikası: RESTRICT. Organizasyonu referanslayan stok/satış/
	// zayiat kaydı varken organizasyon silinemez. AutoMigrate bazen constraint
	// eklemediği için manuel kontrol edilip ekleniyor.
	ensureRestrictConstraint("stock_items", "fk_stock_items_organization", "organization_id", "organizations")
	ensureRestrictConstraint("sales", "fk_sales_organization", "organization_id", "organizations")
	ensureRestrictConstraint("losses", "fk_losses_organization", "organization_id", "organizations")
	ensureRestrictConstraint("sales", "fk_sales_menu_item", "menu_item_id", "menu_items")
	ensureRestrictConstraint("losses", "fk_losses_menu_item", "menu_item_id", "menu_items")
	ensureRestrictConstraint("losses", "fk_losses_stock_item", "stock_item_id", "stock_items")

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}

func ensureRestrictConstraint(table, constraint, column, refTable string) {
	var exists bool
	DB.Raw(`
		SELECT EXISTS (
			SELECT 1
			FROM information_schema.table_constraints
			WHERE table_name = ?
			AND constraint_name = ?
		)
	`, table, constraint).Scan(&exists)

	if exists {
		return
	}

	stmt := "ALTER TABLE " + table +
		" ADD CONSTRAINT " + constraint +
		" FOREIGN KEY (" + column + ") REFERENCES " + refTable + "(id) ON DELETE RESTRICT"
	if err := DB.Exec(stmt).Error; err != nil {
		log.Printf("Foreign key constraint eklenirken hata (%s): %v", constraint, err)
	} else {
		log.Printf("Foreign key constraint eklendi: %s", constraint)
	}
}
