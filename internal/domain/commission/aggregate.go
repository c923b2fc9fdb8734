package commission

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/agenda-pro/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

type Totals struct {
	Generated  decimal.Decimal `json:"generated_total"`
	Commission decimal.Decimal `json:"commission_total"`
	Count      int             `json:"completed_count"`
}

// Aggregate soma somente os agendamentos concluídos dentro da janela,
// usando o preço capturado no agendamento.
func Aggregate(appointments []models.Appointment, rate decimal.Decimal, w Window) (Totals, []models.Appointment) {
	totals := Totals{Generated: decimal.Zero, Commission: decimal.Zero}
	var contributing []models.Appointment

	for _, ap := range appointments {
		if !appointment.Status(ap.Status).CountsForCommission() || !w.Contains(ap.Date) {
			continue
		}
		totals.Generated = totals.Generated.Add(ap.Price)
		totals.Commission = totals.Commission.Add(Commission(ap.Price, rate))
		totals.Count++
		contributing = append(contributing, ap)
	}

	return totals, contributing
}
