package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"envanter-backend/internal/models"
)

func testOrg(id uint, name string) models.Organization {
	return models.Organization{ID: id, Name: name}
}

func TestComposeLedgerOrderingAndSigns(t *testing.T) {
	org := testOrg(1, "Merkez")
	sales := []models.Sale{
		{ID: 1, OrganizationID: 1, Organization: org, Quantity: 2, TotalRevenue: 31.98,
			SaleDate: day("2025-03-10"), MenuItem: models.MenuItem{Name: "Pizza"}},
		{ID: 2, OrganizationID: 1, Organization: org, Quantity: 1, TotalRevenue: 12.99,
			SaleDate: day("2025-03-12"), MenuItem: models.MenuItem{Name: "Taco"}},
	}
	menuItem := models.MenuItem{Name: "Salata"}
	losses := []models.Loss{
		{ID: 5, OrganizationID: 1, Organization: org, Quantity: 3, TotalLoss: 47.97,
			LossDate: day("2025-03-11"), MenuItem: &menuItem, Type: models.LossTypeSpoilage},
	}

	lines := ComposeLedger(sales, losses, LedgerFilter{})
	require.Len(t, lines, 3)

	// Tarihe göre azalan
	assert.Equal(t, uint(2), lines[0].RecordID)
	assert.Equal(t, uint(5), lines[1].RecordID)
	assert.Equal(t, uint(1), lines[2].RecordID)
	for i := 1; i < len(lines); i++ {
		assert.False(t, lines[i-1].Date.Before(lines[i].Date))
	}

	// İşaretli tutarlar: satış artı, zayiat eksi
	assert.InDelta(t, 12.99, lines[0].Amount, 1e-9)
	assert.InDelta(t, -47.97, lines[1].Amount, 1e-9)
	assert.Equal(t, KindLoss, lines[1].Kind)
	assert.Equal(t, models.LossTypeSpoilage, lines[1].LossType)
	assert.Equal(t, "Salata", lines[1].ItemName)
	assert.Equal(t, "Merkez", lines[1].OrganizationName)
}

// Aynı tarihli kayıtlar giriş sırasını korumalı (kararlı sıralama).
func TestComposeLedgerStableOnEqualDates(t *testing.T) {
	org := testOrg(1, "Merkez")
	d := day("2025-03-10")
	sales := []models.Sale{
		{ID: 1, OrganizationID: 1, Organization: org, SaleDate: d, TotalRevenue: 1},
		{ID: 2, OrganizationID: 1, Organization: org, SaleDate: d, TotalRevenue: 2},
	}
	losses := []models.Loss{
		{ID: 3, OrganizationID: 1, Organization: org, LossDate: d, TotalLoss: 3},
	}

	// Tekrarlanan çağrılar aynı sırayı üretmeli
	for i := 0; i < 3; i++ {
		lines := ComposeLedger(sales, losses, LedgerFilter{})
		require.Len(t, lines, 3)
		assert.Equal(t, uint(1), lines[0].RecordID)
		assert.Equal(t, uint(2), lines[1].RecordID)
		assert.Equal(t, uint(3), lines[2].RecordID)
	}
}

func TestComposeLedgerFilters(t *testing.T) {
	orgA := testOrg(1, "A")
	orgB := testOrg(2, "B")
	sales := []models.Sale{
		{ID: 1, OrganizationID: 1, Organization: orgA, SaleDate: day("2025-03-01"), TotalRevenue: 10},
		{ID: 2, OrganizationID: 2, Organization: orgB, SaleDate: day("2025-03-02"), TotalRevenue: 20},
		{ID: 3, OrganizationID: 1, Organization: orgA, SaleDate: day("2025-05-01"), TotalRevenue: 30},
	}
	losses := []models.Loss{
		{ID: 4, OrganizationID: 1, Organization: orgA, LossDate: day("2025-03-03"), TotalLoss: 5},
		{ID: 5, OrganizationID: 2, Organization: orgB, LossDate: day("2025-03-04"), TotalLoss: 6},
	}

	// Organizasyon filtresi: sadece A
	orgID := uint(1)
	lines := ComposeLedger(sales, losses, LedgerFilter{OrganizationID: &orgID})
	require.Len(t, lines, 3)
	for _, ln := range lines {
		assert.Equal(t, "A", ln.OrganizationName)
	}

	// Tarih aralığı kaydın kendi tarihine uygulanır
	from, to := day("2025-03-01"), day("2025-03-03")
	lines = ComposeLedger(sales, losses, LedgerFilter{Range: DateRange{From: &from, To: &to}})
	require.Len(t, lines, 3)
	for _, ln := range lines {
		assert.False(t, ln.Date.Before(from))
		assert.False(t, ln.Date.After(to))
	}

	// Tür filtresi
	lines = ComposeLedger(sales, losses, LedgerFilter{Kind: KindSale})
	require.Len(t, lines, 3)
	for _, ln := range lines {
		assert.Equal(t, KindSale, ln.Kind)
	}
	lines = ComposeLedger(sales, losses, LedgerFilter{Kind: KindLoss})
	require.Len(t, lines, 2)
	for _, ln := range lines {
		assert.Equal(t, KindLoss, ln.Kind)
	}
}

func TestComposeLedgerLossNameFallback(t *testing.T) {
	org := testOrg(1, "Merkez")
	menuItem := models.MenuItem{Name: "Pizza"}
	stockItem := models.StockItem{Name: "Domates"}

	losses := []models.Loss{
		{ID: 1, OrganizationID: 1, Organization: org, LossDate: day("2025-03-03"), MenuItem: &menuItem},
		{ID: 2, OrganizationID: 1, Organization: org, LossDate: day("2025-03-02"), StockItem: &stockItem},
		{ID: 3, OrganizationID: 1, Organization: org, LossDate: day("2025-03-01")},
	}

	lines := ComposeLedger(nil, losses, LedgerFilter{})
	require.Len(t, lines, 3)
	assert.Equal(t, "Pizza", lines[0].ItemName)
	assert.Equal(t, "Domates", lines[1].ItemName)
	assert.Equal(t, UnknownItemName, lines[2].ItemName)
}
