package commission

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/agenda-pro/internal/access"
	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/commission"
	"github.com/BruksfildServices01/agenda-pro/internal/dto"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
	"github.com/BruksfildServices01/agenda-pro/internal/timezone"
)

// GetTenantDashboardTotals soma receita e comissão da loja inteira para
// hoje, semana (seg-dom) e mês, por profissional.
type GetTenantDashboardTotals struct {
	repo domain.Repository
	now  func() time.Time
}

func NewGetTenantDashboardTotals(repo domain.Repository) *GetTenantDashboardTotals {
	return &GetTenantDashboardTotals{repo: repo, now: time.Now}
}

func (uc *GetTenantDashboardTotals) Execute(
	ctx context.Context,
	actor access.Actor,
) (*dto.DashboardDTO, error) {

	if actor.TenantID == 0 || !actor.IsStaff() {
		return nil, httperr.ErrForbidden()
	}

	tenant, err := uc.repo.GetTenantByID(ctx, actor.TenantID)
	if err != nil {
		return nil, err
	}

	local := timezone.In(tenant, uc.now())
	today, _ := domain.WindowFor(domain.WindowToday, local)
	week, _ := domain.WindowFor(domain.WindowWeek, local)
	month, _ := domain.WindowFor(domain.WindowMonth, local)

	pros, err := uc.repo.ListProfessionals(ctx, tenant.ID)
	if err != nil {
		return nil, err
	}

	types, err := uc.repo.ListProfessionalTypes(ctx, tenant.ID)
	if err != nil {
		return nil, err
	}
	idx := domain.NewTypeIndex(types)

	// uma única leitura cobrindo as três janelas
	from, to := month.From, month.To
	if week.From < from {
		from = week.From
	}
	if week.To > to {
		to = week.To
	}

	aps, err := uc.repo.ListCompletedAppointments(ctx, tenant.ID, 0, from, to)
	if err != nil {
		return nil, err
	}

	byPro := make(map[uint][]models.Appointment, len(pros))
	for _, ap := range aps {
		byPro[ap.ProfessionalID] = append(byPro[ap.ProfessionalID], ap)
	}

	return &dto.DashboardDTO{
		Today: windowTotals(tenant, pros, idx, byPro, today),
		Week:  windowTotals(tenant, pros, idx, byPro, week),
		Month: windowTotals(tenant, pros, idx, byPro, month),
	}, nil
}

func windowTotals(
	tenant *models.Tenant,
	pros []models.Professional,
	idx domain.TypeIndex,
	byPro map[uint][]models.Appointment,
	w domain.Window,
) dto.WindowTotalsDTO {

	out := dto.WindowTotalsDTO{
		Window:          w,
		Revenue:         decimal.Zero,
		CommissionTotal: decimal.Zero,
		Professionals:   make([]dto.ProfessionalCommissionDTO, 0, len(pros)),
	}

	for i := range pros {
		p := &pros[i]
		rate := domain.ResolveRate(idx.For(p), tenant)
		totals, _ := domain.Aggregate(byPro[p.ID], rate, w)

		out.Revenue = out.Revenue.Add(totals.Generated)
		out.CommissionTotal = out.CommissionTotal.Add(totals.Commission)
		out.CompletedCount += totals.Count

		out.Professionals = append(out.Professionals, dto.ProfessionalCommissionDTO{
			ProfessionalID:  p.ID,
			Name:            p.Name,
			Active:          p.Active,
			Rate:            rate,
			GeneratedTotal:  totals.Generated,
			CommissionTotal: totals.Commission,
			CompletedCount:  totals.Count,
		})
	}

	return out
}
