package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agenda-pro/internal/access"
	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/dto"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/timezone"
)

type ListAppointmentsByMonth struct {
	repo domain.Repository
}

func NewListAppointmentsByMonth(
	repo domain.Repository,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo: repo,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	actor access.Actor,
	professionalID uint,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	if year < 2000 || month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	professionalID, err := scopeProfessional(actor, professionalID)
	if err != nil {
		return nil, err
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		actor.TenantID,
		professionalID,
		timezone.FormatDate(start),
		timezone.FormatDate(end),
	)
	if err != nil {
		return nil, err
	}

	return dto.FromAppointments(appointments), nil
}
