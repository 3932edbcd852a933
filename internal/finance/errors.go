package finance

import "fmt"

// Çekirdek hata türleri. Handler katmanı bunları errors.As ile yakalayıp
// uygun HTTP durumuna çevirir; çekirdek hiçbir hatayı yutmaz veya loglamaz.

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s bulunamadı (ID: %d)", e.Entity, e.ID)
}

// InvariantViolation: türetilmiş alanların yeniden hesaplanması girdiyle
// uyuşmazsa döner. Doğrulanmış girdiyle erişilmez olmalıdır.
type InvariantViolation struct {
	Field    string
	Expected float64
	Actual   float64
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("%s tutarsız: beklenen %.4f, bulunan %.4f", e.Field, e.Expected, e.Actual)
}
