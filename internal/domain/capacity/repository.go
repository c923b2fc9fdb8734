package capacity

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

type Repository interface {
	GetPlanByName(ctx context.Context, name string) (*models.Plan, error)

	// InTransaction executa fn numa transação; erro de fn desfaz tudo.
	InTransaction(ctx context.Context, fn func(tx Repository) error) error

	// LockTenant lê a loja bloqueando mudanças de plano concorrentes.
	LockTenant(ctx context.Context, tenantID uint) (*models.Tenant, error)

	ListActiveProfessionals(ctx context.Context, tenantID uint) ([]models.Professional, error)

	DeactivateProfessionals(ctx context.Context, tenantID uint, ids []uint, at time.Time) error

	UpdateTenantPlan(ctx context.Context, tenantID uint, plan string) error
}

// AccessRevoker é o colaborador de identidade que corta o acesso do
// profissional desativado. Restore compensa uma revogação quando a
// transação é desfeita.
type AccessRevoker interface {
	Revoke(ctx context.Context, pro models.Professional) error
	Restore(ctx context.Context, pro models.Professional) error
}
