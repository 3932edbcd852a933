package finance

import (
	"sort"
	"time"

	"envanter-backend/internal/models"
)

// Hareket defteri: satış ve zayiat kayıtlarını işaretli tutarlarla tek bir
// kronolojik akışta birleştirir (raporlama görünümü).

type LedgerKind string

const (
	KindSale LedgerKind = "sale"
	KindLoss LedgerKind = "loss"
)

// UnknownItemName: zayiatın referansladığı ürün çözümlenemezse kullanılır.
const UnknownItemName = "Unknown"

type LedgerLine struct {
	Kind             LedgerKind      `json:"kind"`
	RecordID         uint            `json:"record_id"`
	Date             time.Time       `json:"date"`
	Amount           float64         `json:"amount"` // satış: +TotalRevenue, zayiat: -TotalLoss
	Quantity         int             `json:"quantity"`
	ItemName         string          `json:"item_name"`
	OrganizationName string          `json:"organization_name"`
	LossType         models.LossType `json:"loss_type,omitempty"` // sadece zayiat satırlarında
}

// LedgerFilter: organizasyon, tarih aralığı ve tür seçimi. Tarih aralığı
// kaydın kendi tarihine (SaleDate/LossDate) uygulanır ve DateRange'in
// iki-sınır kuralına tabidir. Kind boşsa iki kaynak da dahildir.
type LedgerFilter struct {
	OrganizationID *uint
	Range          DateRange
	Kind           LedgerKind // boş, KindSale veya KindLoss
}

func (f LedgerFilter) matchOrganization(orgID uint) bool {
	return f.OrganizationID == nil || *f.OrganizationID == orgID
}

// ComposeLedger: filtreye uyan kayıtları tek listede toplar ve tarihe göre
// azalan sıralar. Sıralama kararlıdır: aynı tarihli kayıtlar giriş sırasını
// korur, böylece aynı girdiyle her çağrıda aynı çıktı üretilir.
func ComposeLedger(sales []models.Sale, losses []models.Loss, f LedgerFilter) []LedgerLine {
	lines := make([]LedgerLine, 0, len(sales)+len(losses))

	if f.Kind == "" || f.Kind == KindSale {
		for _, s := range sales {
			if !f.matchOrganization(s.OrganizationID) || !f.Range.Contains(s.SaleDate) {
				continue
			}
			lines = append(lines, LedgerLine{
				Kind:             KindSale,
				RecordID:         s.ID,
				Date:             s.SaleDate,
				Amount:           s.TotalRevenue,
				Quantity:         s.Quantity,
				ItemName:         s.MenuItem.Name,
				OrganizationName: s.Organization.Name,
			})
		}
	}

	if f.Kind == "" || f.Kind == KindLoss {
		for _, l := range losses {
			if !f.matchOrganization(l.OrganizationID) || !f.Range.Contains(l.LossDate) {
				continue
			}
			lines = append(lines, LedgerLine{
				Kind:             KindLoss,
				RecordID:         l.ID,
				Date:             l.LossDate,
				Amount:           -l.TotalLoss,
				Quantity:         l.Quantity,
				ItemName:         lossItemName(l),
				OrganizationName: l.Organization.Name,
				LossType:         l.Type,
			})
		}
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Date.After(lines[j].Date)
	})

	return lines
}

// lossItemName: önce menü ürünü, yoksa stok ürünü, o da yoksa "Unknown".
func lossItemName(l models.Loss) string {
	if l.MenuItem != nil && l.MenuItem.Name != "" {
		return l.MenuItem.Name
	}
	if l.StockItem != nil && l.StockItem.Name != "" {
		return l.StockItem.Name
	}
	return UnknownItemName
}
