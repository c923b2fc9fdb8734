package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	AppointmentCreated       Type = "appointment.created"
	AppointmentStatusChanged Type = "appointment.status_changed"
	TenantPlanChanged        Type = "tenant.plan_changed"
)

// Event é o envelope entregue ao colaborador de notificação.
type Event struct {
	ID       string `json:"id"`
	Type     Type   `json:"type"`
	TenantID uint   `json:"tenant_id"`

	AppointmentID  uint   `json:"appointment_id,omitempty"`
	ProfessionalID uint   `json:"professional_id,omitempty"`
	Date           string `json:"date,omitempty"`
	StartTime      string `json:"start_time,omitempty"`
	From           string `json:"from,omitempty"`
	To             string `json:"to,omitempty"`

	ProfessionalIDs []uint `json:"professional_ids,omitempty"`

	OccurredAt time.Time `json:"occurred_at"`
}

func New(typ Type, tenantID uint, at time.Time) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       typ,
		TenantID:   tenantID,
		OccurredAt: at,
	}
}

// Sink entrega o evento (push/poll). A entrega em si é externa.
type Sink interface {
	Publish(ctx context.Context, ev Event) error
}

// Emitter é o que o core enxerga: dispara e segue.
type Emitter interface {
	Emit(ev Event)
}
