package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/dto"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/timezone"
	"github.com/BruksfildServices01/agenda-pro/internal/validators"
)

// ListClientAppointments é a consulta pública "meus agendamentos":
// em aberto, a partir de hoje (fuso da loja), pelo telefone.
type ListClientAppointments struct {
	repo domain.Repository
	now  func() time.Time
}

func NewListClientAppointments(repo domain.Repository) *ListClientAppointments {
	return &ListClientAppointments{repo: repo, now: time.Now}
}

func (uc *ListClientAppointments) Execute(
	ctx context.Context,
	tenantID uint,
	phone string,
) ([]dto.AppointmentListDTO, error) {

	normalized, ok := validators.NormalizePhone(phone)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	tenant, err := uc.repo.GetTenantByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	client, err := uc.repo.FindClientByPhone(ctx, tenantID, normalized)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return []dto.AppointmentListDTO{}, nil
	}

	today := timezone.FormatDate(timezone.In(tenant, uc.now()))

	aps, err := uc.repo.ListClientAppointments(ctx, tenantID, client.ID, today)
	if err != nil {
		return nil, err
	}
	// só o que ainda está em aberto
	open := aps[:0]
	for _, ap := range aps {
		if !domain.Status(ap.Status).IsTerminal() {
			open = append(open, ap)
		}
	}
	return dto.FromAppointments(open), nil
}
