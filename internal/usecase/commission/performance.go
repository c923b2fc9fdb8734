package commission

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agenda-pro/internal/access"
	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/commission"
	"github.com/BruksfildServices01/agenda-pro/internal/dto"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/timezone"
)

// GetProfessionalPerformance devolve faturamento e comissão de um
// profissional. Janela padrão: últimos 30 dias (hoje incluso).
type GetProfessionalPerformance struct {
	repo domain.Repository
	now  func() time.Time
}

func NewGetProfessionalPerformance(repo domain.Repository) *GetProfessionalPerformance {
	return &GetProfessionalPerformance{repo: repo, now: time.Now}
}

func (uc *GetProfessionalPerformance) Execute(
	ctx context.Context,
	actor access.Actor,
	professionalID uint,
	window string,
) (*dto.ProfessionalPerformanceDTO, error) {

	if !actor.CanManageProfessional(actor.TenantID, professionalID) {
		return nil, httperr.ErrForbidden()
	}

	kind := domain.WindowTrailing30
	if window != "" {
		k, ok := domain.ParseWindowKind(window)
		if !ok {
			return nil, httperr.ErrBusiness("invalid_window")
		}
		kind = k
	}

	tenant, err := uc.repo.GetTenantByID(ctx, actor.TenantID)
	if err != nil {
		return nil, err
	}

	// inativos continuam consultáveis
	pro, err := uc.repo.GetProfessional(ctx, tenant.ID, professionalID)
	if err != nil {
		return nil, err
	}

	w, _ := domain.WindowFor(kind, timezone.In(tenant, uc.now()))

	types, err := uc.repo.ListProfessionalTypes(ctx, tenant.ID)
	if err != nil {
		return nil, err
	}
	rate := domain.ResolveRate(domain.NewTypeIndex(types).For(pro), tenant)

	aps, err := uc.repo.ListCompletedAppointments(ctx, tenant.ID, pro.ID, w.From, w.To)
	if err != nil {
		return nil, err
	}

	totals, contributing := domain.Aggregate(aps, rate, w)

	return &dto.ProfessionalPerformanceDTO{
		ProfessionalID:  pro.ID,
		Name:            pro.Name,
		Rate:            rate,
		Window:          w,
		GeneratedTotal:  totals.Generated,
		CommissionTotal: totals.Commission,
		Appointments:    dto.FromAppointments(contributing),
	}, nil
}
