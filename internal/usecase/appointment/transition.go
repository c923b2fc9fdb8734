package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agenda-pro/internal/access"
	"github.com/BruksfildServices01/agenda-pro/internal/audit"
	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/events"
	"github.com/BruksfildServices01/agenda-pro/internal/metrics"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

type TransitionAppointment struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	events  events.Emitter
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewTransitionAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	emitter events.Emitter,
	m *metrics.Metrics,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:    repo,
		audit:   audit,
		events:  emitter,
		metrics: m,
		now:     time.Now,
	}
}

// Execute leva o agendamento de seu status atual para `status`.
// O agendamento é buscado dentro do tenant do ator; de outra loja
// aparece como não encontrado.
func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	actor access.Actor,
	appointmentID uint,
	status string,
) (*models.Appointment, error) {

	to, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, actor.TenantID, appointmentID)
	if err != nil {
		return nil, err
	}

	clientID, err := clientIDFor(ctx, uc.repo, actor)
	if err != nil {
		return nil, err
	}

	if err := domain.Authorize(actor, ap, to, clientID); err != nil {
		return nil, err
	}

	return uc.apply(ctx, actor, ap, to)
}

func (uc *TransitionAppointment) apply(
	ctx context.Context,
	actor access.Actor,
	ap *models.Appointment,
	to domain.Status,
) (*models.Appointment, error) {

	from := domain.Status(ap.Status)

	if err := domain.Transition(ap, to, uc.now()); err != nil {
		return nil, err
	}

	// update condicional: perde quem chegar depois
	if err := uc.repo.UpdateAppointmentStatus(ctx, ap, from); err != nil {
		return nil, err
	}

	uc.metrics.Transition(string(from), string(to))

	ev := audit.FromActor(actor, "appointment_"+string(to), "appointment", &ap.ID)
	ev.Metadata = map[string]any{"from": from, "to": to}
	uc.audit.Dispatch(ev)

	out := events.New(events.AppointmentStatusChanged, ap.TenantID, uc.now())
	out.AppointmentID = ap.ID
	out.ProfessionalID = ap.ProfessionalID
	out.Date = ap.Date
	out.StartTime = ap.StartTime
	out.From = string(from)
	out.To = string(to)
	emit(uc.events, out)

	return ap, nil
}
