package appointment

import (
	"context"

	"github.com/BruksfildServices01/agenda-pro/internal/access"
	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
	"github.com/BruksfildServices01/agenda-pro/internal/validators"
)

// CancelByClient é o cancelamento pela página pública: o cliente se
// identifica apenas pelo telefone usado no agendamento.
type CancelByClient struct {
	repo       domain.Repository
	transition *TransitionAppointment
}

func NewCancelByClient(
	repo domain.Repository,
	transition *TransitionAppointment,
) *CancelByClient {
	return &CancelByClient{repo: repo, transition: transition}
}

func (uc *CancelByClient) Execute(
	ctx context.Context,
	tenantID uint,
	appointmentID uint,
	phone string,
) (*models.Appointment, error) {

	normalized, ok := validators.NormalizePhone(phone)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	// telefone desconhecido ou de outro cliente: mesmo erro que
	// agendamento inexistente, para não vazar dados
	client, err := uc.repo.FindClientByPhone(ctx, tenantID, normalized)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}

	ap, err := uc.repo.GetAppointment(ctx, tenantID, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap.ClientID != client.ID {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}

	actor := access.Client(tenantID, normalized)
	if err := domain.Authorize(actor, ap, domain.StatusCanceled, client.ID); err != nil {
		return nil, err
	}

	return uc.transition.apply(ctx, actor, ap, domain.StatusCanceled)
}
