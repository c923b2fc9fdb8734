package appointment

import (
	"time"

	"github.com/BruksfildServices01/agenda-pro/internal/access"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

// ===============================
// Authorization
// ===============================

// Authorize verifica se o ator pode levar o agendamento para `to`.
// clientID é o id resolvido a partir do telefone do ator (0 se nenhum).
func Authorize(actor access.Actor, ap *models.Appointment, to Status, clientID uint) error {
	if !actor.BelongsTo(ap.TenantID) {
		return httperr.ErrForbidden()
	}

	switch actor.Role {
	case access.RoleOwner, access.RoleStaff:
		return nil
	case access.RoleProfessional:
		if actor.IsProfessional(ap.ProfessionalID) {
			return nil
		}
	case access.RoleClient:
		if to == StatusCanceled && clientID != 0 && ap.ClientID == clientID {
			return nil
		}
	}

	return httperr.ErrForbidden()
}

// ===============================
// Domain Actions
// ===============================

// Transition aplica a mudança de status e carimba o horário.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)
	switch to {
	case StatusConfirmed:
		ap.ConfirmedAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	case StatusCanceled:
		ap.CanceledAt = &now
	}
	return nil
}
