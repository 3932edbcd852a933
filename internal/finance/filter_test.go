package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDateRangeBounded(t *testing.T) {
	from := day("2025-01-01")
	to := day("2025-01-31")

	assert.False(t, DateRange{}.Bounded())
	assert.False(t, DateRange{From: &from}.Bounded())
	assert.False(t, DateRange{To: &to}.Bounded())
	assert.True(t, DateRange{From: &from, To: &to}.Bounded())
}

func TestDateRangeContains(t *testing.T) {
	from := day("2025-01-01")
	to := day("2025-01-31")
	r := DateRange{From: &from, To: &to}

	// Sınırlar dahil
	assert.True(t, r.Contains(day("2025-01-01")))
	assert.True(t, r.Contains(day("2025-01-31")))
	assert.True(t, r.Contains(day("2025-01-15")))
	assert.False(t, r.Contains(day("2024-12-31")))
	assert.False(t, r.Contains(day("2025-02-01")))
}

// Tek sınırlı aralık hiç filtre yokmuş gibi davranır. Bu kasıtlı bir
// sadeleştirmedir, açık uçlu sınır olarak "düzeltilmemelidir".
func TestDateRangeSingleBoundIgnored(t *testing.T) {
	from := day("2025-06-01")
	onlyFrom := DateRange{From: &from}

	assert.True(t, onlyFrom.Contains(day("2020-01-01")))
	assert.True(t, onlyFrom.Contains(day("2030-01-01")))

	to := day("2025-06-30")
	onlyTo := DateRange{To: &to}
	assert.True(t, onlyTo.Contains(day("2030-01-01")))
}
