package appointment

import (
	"context"

	"github.com/BruksfildServices01/agenda-pro/internal/access"
	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/events"
	"github.com/BruksfildServices01/agenda-pro/internal/validators"
)

func emit(e events.Emitter, ev events.Event) {
	if e == nil {
		return
	}
	e.Emit(ev)
}

// clientIDFor resolve o cliente do ator pelo telefone (0 quando não há).
func clientIDFor(
	ctx context.Context,
	repo domain.Repository,
	actor access.Actor,
) (uint, error) {
	if actor.Role != access.RoleClient {
		return 0, nil
	}

	phone, ok := validators.NormalizePhone(actor.ClientPhone)
	if !ok {
		return 0, nil
	}

	client, err := repo.FindClientByPhone(ctx, actor.TenantID, phone)
	if err != nil || client == nil {
		return 0, err
	}
	return client.ID, nil
}
