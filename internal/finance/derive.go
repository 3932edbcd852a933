package finance

// Türetme motoru: satış ve zayiat kayıtlarının kalıcı türetilmiş alanlarını
// oluşturma anında hesaplayan saf fonksiyonlar. Yuvarlama yapılmaz, float64'ün
// doğal hassasiyetiyle çalışılır.

type SaleFigures struct {
	TotalRevenue float64
	TotalCost    float64
	Profit       float64
}

type LossFigures struct {
	TotalLoss float64
}

// DeriveSale: TotalRevenue = quantity*unitPrice, TotalCost = quantity*costPrice,
// Profit = TotalRevenue - TotalCost. Negatif kar mümkündür (zararına satış).
func DeriveSale(quantity int, unitPrice, costPrice float64) (SaleFigures, error) {
	if quantity < 1 {
		return SaleFigures{}, &ValidationError{Msg: "quantity en az 1 olmalıdır"}
	}
	if unitPrice < 0 {
		return SaleFigures{}, &ValidationError{Msg: "unit_price negatif olamaz"}
	}
	if costPrice < 0 {
		return SaleFigures{}, &ValidationError{Msg: "cost_price negatif olamaz"}
	}

	totalRevenue := float64(quantity) * unitPrice
	totalCost := float64(quantity) * costPrice

	return SaleFigures{
		TotalRevenue: totalRevenue,
		TotalCost:    totalCost,
		Profit:       totalRevenue - totalCost,
	}, nil
}

// DeriveLoss: TotalLoss = quantity * (costPrice + expectedProfit).
// Ürün türüne göre dallanma burada yapılmaz; stok zayiatında expectedProfit'i
// 0 olarak vermek çağıranın sorumluluğudur.
func DeriveLoss(quantity int, costPrice, expectedProfit float64) (LossFigures, error) {
	if quantity < 1 {
		return LossFigures{}, &ValidationError{Msg: "quantity en az 1 olmalıdır"}
	}
	if costPrice < 0 {
		return LossFigures{}, &ValidationError{Msg: "cost_price negatif olamaz"}
	}
	// expectedProfit negatif olabilir: maliyetin altında fiyatlanan menü
	// ürünlerinin zayiatında beklenen kar negatiftir.

	return LossFigures{
		TotalLoss: float64(quantity) * (costPrice + expectedProfit),
	}, nil
}

// VerifySale: kayıt yazılmadan önce türetilmiş alanları yeniden hesaplayıp
// karşılaştırır. Uyuşmazlık InvariantViolation döner.
func VerifySale(quantity int, unitPrice, costPrice float64, f SaleFigures) error {
	if want := float64(quantity) * unitPrice; f.TotalRevenue != want {
		return &InvariantViolation{Field: "total_revenue", Expected: want, Actual: f.TotalRevenue}
	}
	if want := float64(quantity) * costPrice; f.TotalCost != want {
		return &InvariantViolation{Field: "total_cost", Expected: want, Actual: f.TotalCost}
	}
	if want := f.TotalRevenue - f.TotalCost; f.Profit != want {
		return &InvariantViolation{Field: "profit", Expected: want, Actual: f.Profit}
	}
	return nil
}

func VerifyLoss(quantity int, costPrice, expectedProfit float64, f LossFigures) error {
	if want := float64(quantity) * (costPrice + expectedProfit); f.TotalLoss != want {
		return &InvariantViolation{Field: "total_loss", Expected: want, Actual: f.TotalLoss}
	}
	return nil
}
