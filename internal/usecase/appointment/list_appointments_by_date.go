package appointment

import (
	"context"

	"github.com/BruksfildServices01/agenda-pro/internal/access"
	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/dto"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/validators"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

// Execute lista a agenda do dia. professionalID 0 = todos (só equipe).
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	actor access.Actor,
	professionalID uint,
	date string,
) ([]dto.AppointmentListDTO, error) {

	if !validators.IsDate(date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	professionalID, err := scopeProfessional(actor, professionalID)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		actor.TenantID,
		professionalID,
		date,
		date,
	)
	if err != nil {
		return nil, err
	}

	return dto.FromAppointments(appointments), nil
}

// scopeProfessional restringe o profissional à própria agenda.
func scopeProfessional(actor access.Actor, professionalID uint) (uint, error) {
	switch {
	case actor.TenantID == 0:
		return 0, httperr.ErrForbidden()
	case actor.IsStaff():
		return professionalID, nil
	case actor.Role == access.RoleProfessional && actor.ProfessionalID != 0:
		if professionalID != 0 && professionalID != actor.ProfessionalID {
			return 0, httperr.ErrForbidden()
		}
		return actor.ProfessionalID, nil
	}
	return 0, httperr.ErrForbidden()
}
