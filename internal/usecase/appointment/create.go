package appointment

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/BruksfildServices01/agenda-pro/internal/access"
	"github.com/BruksfildServices01/agenda-pro/internal/audit"
	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/events"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/metrics"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
	"github.com/BruksfildServices01/agenda-pro/internal/timeofday"
	"github.com/BruksfildServices01/agenda-pro/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	TenantID       uint
	ProfessionalID uint
	ServiceID      uint

	ClientName  string
	ClientPhone string

	Date  string
	Time  string
	Notes string
}

func (in *CreateAppointmentInput) normalize() error {
	in.ClientName = strings.TrimSpace(in.ClientName)
	if in.ClientName == "" {
		return httperr.ErrBusiness("missing_client_name")
	}

	phone, ok := validators.NormalizePhone(in.ClientPhone)
	if !ok {
		return httperr.ErrBusiness("invalid_phone")
	}
	in.ClientPhone = phone

	if in.TenantID == 0 || in.ProfessionalID == 0 || in.ServiceID == 0 {
		return httperr.ErrBusiness("missing_params")
	}
	if !validators.IsDate(in.Date) {
		return httperr.ErrBusiness("invalid_date")
	}
	if !validators.IsTimeOfDay(in.Time) {
		return httperr.ErrBusiness("invalid_time")
	}
	if len(in.Notes) > 255 {
		return httperr.ErrBusiness("notes_too_long")
	}
	return nil
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo    domain.Repository
	slots   *ResolveSlots
	audit   *audit.Dispatcher
	events  events.Emitter
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	slots *ResolveSlots,
	audit *audit.Dispatcher,
	emitter events.Emitter,
	m *metrics.Metrics,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		slots:   slots,
		audit:   audit,
		events:  emitter,
		metrics: m,
		now:     time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	actor access.Actor,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Validação de entrada (antes do storage)
	// --------------------------------------------------
	if err := in.normalize(); err != nil {
		return nil, err
	}
	if err := authorizeCreate(actor, in); err != nil {
		return nil, err
	}

	start := timeofday.MustParse(in.Time)

	// --------------------------------------------------
	// 2️⃣ Horário precisa estar na grade atual
	// --------------------------------------------------
	res, err := uc.slots.Execute(ctx, AvailabilityInput{
		TenantID:       in.TenantID,
		ProfessionalID: in.ProfessionalID,
		ServiceID:      in.ServiceID,
		Date:           in.Date,
	})
	if err != nil {
		return nil, err
	}

	if !slices.Contains(res.Slots, start) {
		uc.metrics.BookingConflict("precheck")
		return nil, httperr.ErrConflict("slot_unavailable")
	}

	// --------------------------------------------------
	// 3️⃣ Pré-checagem de ocupação (otimização; a garantia
	//     é o índice único no banco)
	// --------------------------------------------------
	booked, err := uc.repo.ListBookedTimes(ctx, in.ProfessionalID, in.Date)
	if err != nil {
		return nil, err
	}
	if slices.Contains(booked, start.String()) {
		uc.metrics.BookingConflict("precheck")
		return nil, httperr.ErrConflict("slot_taken")
	}

	// --------------------------------------------------
	// 4️⃣ Cliente (get or create pelo telefone)
	// --------------------------------------------------
	client, err := uc.repo.GetOrCreateClient(ctx, in.TenantID, in.ClientName, in.ClientPhone)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Criação (preço/duração congelados)
	// --------------------------------------------------
	ap := &models.Appointment{
		TenantID:       in.TenantID,
		ProfessionalID: in.ProfessionalID,
		ClientID:       client.ID,
		ServiceID:      res.Service.ID,
		Price:          res.Service.Price,
		DurationMin:    res.Service.DurationMin,
		Date:           in.Date,
		StartTime:      start.String(),
		Status:         string(domain.InitialStatus()),
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsConflict(err) {
			uc.metrics.BookingConflict("constraint")

			ev := audit.FromActor(actor, "appointment_conflict", "appointment", nil)
			ev.Metadata = map[string]any{
				"professional_id": in.ProfessionalID,
				"date":            in.Date,
				"time":            in.Time,
			}
			uc.audit.Dispatch(ev)
		}
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Auditoria + evento
	// --------------------------------------------------
	uc.metrics.BookingCreated()
	uc.audit.Dispatch(audit.FromActor(actor, "appointment_created", "appointment", &ap.ID))

	ev := events.New(events.AppointmentCreated, ap.TenantID, uc.now())
	ev.AppointmentID = ap.ID
	ev.ProfessionalID = ap.ProfessionalID
	ev.Date = ap.Date
	ev.StartTime = ap.StartTime
	ev.To = ap.Status
	emit(uc.events, ev)

	ap.Client = *client
	ap.Service = *res.Service
	ap.Professional = *res.Professional

	return ap, nil
}

func authorizeCreate(actor access.Actor, in CreateAppointmentInput) error {
	if !actor.BelongsTo(in.TenantID) {
		return httperr.ErrForbidden()
	}
	switch actor.Role {
	case access.RoleOwner, access.RoleStaff:
		return nil
	case access.RoleProfessional:
		if actor.IsProfessional(in.ProfessionalID) {
			return nil
		}
	case access.RoleClient:
		// cliente só agenda para o próprio telefone
		if phone, ok := validators.NormalizePhone(actor.ClientPhone); ok && phone == in.ClientPhone {
			return nil
		}
	}
	return httperr.ErrForbidden()
}
