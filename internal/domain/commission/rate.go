package commission

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

var hundred = decimal.NewFromInt(100)

// ResolveRate aplica a precedência: tipo do profissional (se ainda
// existir), padrão da loja, zero.
func ResolveRate(profType *models.ProfessionalType, tenant *models.Tenant) decimal.Decimal {
	if profType != nil {
		return profType.CommissionPct
	}
	if tenant != nil && tenant.DefaultCommissionPct.Valid {
		return tenant.DefaultCommissionPct.Decimal
	}
	return decimal.Zero
}

// Commission = price * rate / 100
func Commission(price, rate decimal.Decimal) decimal.Decimal {
	return price.Mul(rate).Div(hundred)
}

// ValidRate: percentuais aceitos no intervalo [0, 100].
func ValidRate(rate decimal.Decimal) bool {
	return !rate.IsNegative() && rate.LessThanOrEqual(hundred)
}
