package finance

import "time"

// DateRange: [From, To] kapalı aralığı. Aralık ancak İKİ sınır da
// verildiğinde uygulanır; tek sınır verilirse tarih filtresi tamamen yok
// sayılır. Bu bilinçli bir sadeleştirmedir, açık uçlu sınıra "düzeltilmez".
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Bounded: iki sınır da dolu mu?
func (r DateRange) Bounded() bool {
	return r.From != nil && r.To != nil
}

// Contains: t aralığın içinde mi? Sınırlar dahildir. Sınırsız (veya tek
// sınırlı) aralık her tarihi kapsar.
func (r DateRange) Contains(t time.Time) bool {
	if !r.Bounded() {
		return true
	}
	if t.Before(*r.From) {
		return false
	}
	if t.After(*r.To) {
		return false
	}
	return true
}
