package finance

import "envanter-backend/internal/models"

// Summary: filtrelenmiş satış/zayiat kümesinden anlık hesaplanan finansal
// özet. Kalıcı değildir.
type Summary struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalCost    float64 `json:"total_cost"`
	TotalProfit  float64 `json:"total_profit"`
	TotalLoss    float64 `json:"total_loss"`
	NetProfit    float64 `json:"net_profit"` // TotalProfit - TotalLoss
	SalesCount   int     `json:"sales_count"`
	LossCount    int     `json:"loss_count"`
}

// Summarize: verilen kümeleri alan bazında toplar. Boş küme sıfır özet
// döndürür, hata değildir. Saf fonksiyondur, hiçbir kaydı değiştirmez.
func Summarize(sales []models.Sale, losses []models.Loss) Summary {
	s := Summary{
		SalesCount: len(sales),
		LossCount:  len(losses),
	}

	for _, sale := range sales {
		s.TotalRevenue += sale.TotalRevenue
		s.TotalCost += sale.TotalCost
		s.TotalProfit += sale.Profit
	}
	for _, loss := range losses {
		s.TotalLoss += loss.TotalLoss
	}

	s.NetProfit = s.TotalProfit - s.TotalLoss
	return s
}
