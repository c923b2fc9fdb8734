package commission

import (
	"context"

	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

type Repository interface {
	GetTenantByID(ctx context.Context, id uint) (*models.Tenant, error)

	GetProfessional(ctx context.Context, tenantID, professionalID uint) (*models.Professional, error)

	// ListProfessionals inclui inativos: histórico continua atribuído.
	ListProfessionals(ctx context.Context, tenantID uint) ([]models.Professional, error)

	// ListProfessionalTypes devolve os tipos existentes da loja.
	ListProfessionalTypes(ctx context.Context, tenantID uint) ([]models.ProfessionalType, error)

	// ListCompletedAppointments filtra por status concluído e datas
	// locais [fromDate, toDate]. professionalID 0 = todos.
	ListCompletedAppointments(
		ctx context.Context,
		tenantID uint,
		professionalID uint,
		fromDate string,
		toDate string,
	) ([]models.Appointment, error)
}

// TypeIndex ajuda a resolver o tipo ainda existente de um profissional.
type TypeIndex map[uint]*models.ProfessionalType

func NewTypeIndex(types []models.ProfessionalType) TypeIndex {
	idx := make(TypeIndex, len(types))
	for i := range types {
		idx[types[i].ID] = &types[i]
	}
	return idx
}

// For devolve nil quando o profissional não tem tipo ou o tipo foi removido.
func (idx TypeIndex) For(p *models.Professional) *models.ProfessionalType {
	if p == nil || p.ProfessionalTypeID == nil {
		return nil
	}
	return idx[*p.ProfessionalTypeID]
}
