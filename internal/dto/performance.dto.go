package dto

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/agenda-pro/internal/domain/commission"
)

type ProfessionalPerformanceDTO struct {
	ProfessionalID  uint                 `json:"professional_id"`
	Name            string               `json:"name"`
	Rate            decimal.Decimal      `json:"rate"`
	Window          commission.Window    `json:"window"`
	GeneratedTotal  decimal.Decimal      `json:"generated_total"`
	CommissionTotal decimal.Decimal      `json:"commission_total"`
	Appointments    []AppointmentListDTO `json:"appointments"`
}

type ProfessionalCommissionDTO struct {
	ProfessionalID  uint            `json:"professional_id"`
	Name            string          `json:"name"`
	Active          bool            `json:"active"`
	Rate            decimal.Decimal `json:"rate"`
	GeneratedTotal  decimal.Decimal `json:"generated_total"`
	CommissionTotal decimal.Decimal `json:"commission_total"`
	CompletedCount  int             `json:"completed_count"`
}

type WindowTotalsDTO struct {
	Window          commission.Window           `json:"window"`
	Revenue         decimal.Decimal             `json:"revenue"`
	CommissionTotal decimal.Decimal             `json:"commission_total"`
	CompletedCount  int                         `json:"completed_count"`
	Professionals   []ProfessionalCommissionDTO `json:"professionals"`
}

type DashboardDTO struct {
	Today WindowTotalsDTO `json:"today"`
	Week  WindowTotalsDTO `json:"week"`
	Month WindowTotalsDTO `json:"month"`
}
