package finance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveSale(t *testing.T) {
	tests := []struct {
		name        string
		quantity    int
		unitPrice   float64
		costPrice   float64
		wantRevenue float64
		wantCost    float64
		wantProfit  float64
	}{
		{"pizza iki adet", 2, 15.99, 8.50, 31.98, 17.00, 14.98},
		{"tek adet", 1, 12.99, 6.25, 12.99, 6.25, 6.74},
		{"sıfır fiyat", 3, 0, 0, 0, 0, 0},
		{"zararına satış", 2, 5.00, 8.00, 10.00, 16.00, -6.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := DeriveSale(tt.quantity, tt.unitPrice, tt.costPrice)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantRevenue, f.TotalRevenue, 1e-9)
			assert.InDelta(t, tt.wantCost, f.TotalCost, 1e-9)
			assert.InDelta(t, tt.wantProfit, f.Profit, 1e-9)
			assert.InDelta(t, f.TotalRevenue-f.TotalCost, f.Profit, 1e-9)
		})
	}
}

func TestDeriveSaleValidation(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		unitPrice float64
		costPrice float64
	}{
		{"quantity sıfır", 0, 10, 5},
		{"quantity negatif", -2, 10, 5},
		{"unit price negatif", 1, -1, 5},
		{"cost price negatif", 1, 10, -0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeriveSale(tt.quantity, tt.unitPrice, tt.costPrice)
			require.Error(t, err)
			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}
}

func TestDeriveLoss(t *testing.T) {
	// Menü zayiatı: costPrice=8.50, sellingPrice=15.99 -> expectedProfit=7.49
	f, err := DeriveLoss(3, 8.50, 7.49)
	require.NoError(t, err)
	assert.InDelta(t, 47.97, f.TotalLoss, 1e-9)

	// Stok zayiatı: expectedProfit her zaman 0
	f, err = DeriveLoss(5, 3.50, 0)
	require.NoError(t, err)
	assert.InDelta(t, 17.50, f.TotalLoss, 1e-9)

	// Maliyetin altında fiyatlanan menü ürünü: negatif beklenen kar geçerlidir
	f, err = DeriveLoss(2, 8.00, -3.00)
	require.NoError(t, err)
	assert.InDelta(t, 10.00, f.TotalLoss, 1e-9)
}

func TestDeriveLossValidation(t *testing.T) {
	_, err := DeriveLoss(0, 3.50, 0)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	_, err = DeriveLoss(2, -1, 0)
	require.True(t, errors.As(err, &verr))
}

func TestVerifySale(t *testing.T) {
	f, err := DeriveSale(4, 9.99, 4.20)
	require.NoError(t, err)
	require.NoError(t, VerifySale(4, 9.99, 4.20, f))

	// Bozulmuş türetilmiş alan yakalanmalı
	broken := f
	broken.TotalRevenue += 1
	err = VerifySale(4, 9.99, 4.20, broken)
	var iv *InvariantViolation
	require.True(t, errors.As(err, &iv))
	assert.Equal(t, "total_revenue", iv.Field)
}

func TestVerifyLoss(t *testing.T) {
	f, err := DeriveLoss(3, 8.50, 7.49)
	require.NoError(t, err)
	require.NoError(t, VerifyLoss(3, 8.50, 7.49, f))

	broken := LossFigures{TotalLoss: f.TotalLoss + 0.5}
	err = VerifyLoss(3, 8.50, 7.49, broken)
	var iv *InvariantViolation
	require.True(t, errors.As(err, &iv))
}
