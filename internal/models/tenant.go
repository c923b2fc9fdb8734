package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Tenant é a loja (unidade de isolamento multi-tenant).
type Tenant struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Slug     string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone    string `gorm:"size:20" json:"phone"`
	Timezone string `gorm:"size:64" json:"timezone"`

	// dias da semana (0=domingo ... 6=sábado), ex: "1,2,3,4,5,6"
	OperatingDays string  `gorm:"size:20" json:"operating_days"`
	OpenTime      *string `gorm:"size:5" json:"open_time"`
	CloseTime     *string `gorm:"size:5" json:"close_time"`

	DefaultCommissionPct decimal.NullDecimal `gorm:"type:numeric(5,2)" json:"default_commission_pct"`
	MinAdvanceMinutes    int                 `gorm:"default:0" json:"min_advance_minutes"`

	Plan string `gorm:"size:50;default:'free'" json:"plan"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OperatesOn informa se o weekday está no conjunto de dias de funcionamento.
func (t *Tenant) OperatesOn(weekday time.Weekday) bool {
	for _, part := range strings.Split(t.OperatingDays, ",") {
		d, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if d == int(weekday) {
			return true
		}
	}
	return false
}

// FormatOperatingDays serializa o conjunto no formato persistido.
func FormatOperatingDays(days ...time.Weekday) string {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, strconv.Itoa(int(d)))
	}
	return strings.Join(parts, ",")
}
