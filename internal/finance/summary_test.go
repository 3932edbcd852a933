package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"envanter-backend/internal/models"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil)
	assert.Equal(t, Summary{}, s)
	assert.Zero(t, s.SalesCount)
	assert.Zero(t, s.LossCount)
}

func TestSummarize(t *testing.T) {
	sales := []models.Sale{
		{Quantity: 2, TotalRevenue: 31.98, TotalCost: 17.00, Profit: 14.98},
		{Quantity: 1, TotalRevenue: 12.99, TotalCost: 6.25, Profit: 6.74},
	}
	losses := []models.Loss{
		{Quantity: 3, TotalLoss: 47.97},
		{Quantity: 5, TotalLoss: 17.50},
	}

	s := Summarize(sales, losses)
	assert.InDelta(t, 44.97, s.TotalRevenue, 1e-9)
	assert.InDelta(t, 23.25, s.TotalCost, 1e-9)
	assert.InDelta(t, 21.72, s.TotalProfit, 1e-9)
	assert.InDelta(t, 65.47, s.TotalLoss, 1e-9)
	assert.InDelta(t, s.TotalProfit-s.TotalLoss, s.NetProfit, 1e-9)
	assert.Equal(t, 2, s.SalesCount)
	assert.Equal(t, 2, s.LossCount)
}

// Ayrık kümeler üzerinde toplama: Summarize(A∪B) alan bazında
// Summarize(A)+Summarize(B) ile aynı olmalı.
func TestSummarizeAdditive(t *testing.T) {
	salesA := []models.Sale{{TotalRevenue: 10.5, TotalCost: 4.25, Profit: 6.25}}
	salesB := []models.Sale{
		{TotalRevenue: 31.98, TotalCost: 17.00, Profit: 14.98},
		{TotalRevenue: 9.99, TotalCost: 4.75, Profit: 5.24},
	}
	lossesA := []models.Loss{{TotalLoss: 17.50}}
	lossesB := []models.Loss{{TotalLoss: 47.97}}

	a := Summarize(salesA, lossesA)
	b := Summarize(salesB, lossesB)
	union := Summarize(append(append([]models.Sale{}, salesA...), salesB...),
		append(append([]models.Loss{}, lossesA...), lossesB...))

	assert.InDelta(t, a.TotalRevenue+b.TotalRevenue, union.TotalRevenue, 1e-9)
	assert.InDelta(t, a.TotalCost+b.TotalCost, union.TotalCost, 1e-9)
	assert.InDelta(t, a.TotalProfit+b.TotalProfit, union.TotalProfit, 1e-9)
	assert.InDelta(t, a.TotalLoss+b.TotalLoss, union.TotalLoss, 1e-9)
	assert.InDelta(t, a.NetProfit+b.NetProfit, union.NetProfit, 1e-9)
	assert.Equal(t, a.SalesCount+b.SalesCount, union.SalesCount)
	assert.Equal(t, a.LossCount+b.LossCount, union.LossCount)
}
