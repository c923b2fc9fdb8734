package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/capacity"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

type CapacityGormRepository struct {
	db *gorm.DB
}

func NewCapacityGormRepository(db *gorm.DB) *CapacityGormRepository {
	return &CapacityGormRepository{db: db}
}

func (r *CapacityGormRepository) GetPlanByName(
	ctx context.Context,
	name string,
) (*models.Plan, error) {

	var plan models.Plan
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&plan).Error; err != nil {
		return nil, notFound(err, "plan_not_found")
	}
	return &plan, nil
}

func (r *CapacityGormRepository) InTransaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&CapacityGormRepository{db: tx})
	})
}

// LockTenant: SELECT ... FOR UPDATE na loja serializa trocas de plano.
func (r *CapacityGormRepository) LockTenant(
	ctx context.Context,
	tenantID uint,
) (*models.Tenant, error) {

	var tenant models.Tenant
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&tenant, tenantID).Error; err != nil {
		return nil, notFound(err, "tenant_not_found")
	}
	return &tenant, nil
}

func (r *CapacityGormRepository) ListActiveProfessionals(
	ctx context.Context,
	tenantID uint,
) ([]models.Professional, error) {

	var pros []models.Professional
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND active = true", tenantID).
		Order("created_at ASC, id ASC").
		Find(&pros).Error
	return pros, err
}

// DeactivateProfessionals não toca nos agendamentos: o histórico fica.
func (r *CapacityGormRepository) DeactivateProfessionals(
	ctx context.Context,
	tenantID uint,
	ids []uint,
	at time.Time,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Professional{}).
		Where("tenant_id = ? AND id IN ?", tenantID, ids).
		Updates(map[string]any{
			"active":         false,
			"deactivated_at": at,
		}).Error
}

func (r *CapacityGormRepository) UpdateTenantPlan(
	ctx context.Context,
	tenantID uint,
	plan string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Tenant{}).
		Where("id = ?", tenantID).
		Update("plan", plan).Error
}

var _ domain.Repository = (*CapacityGormRepository)(nil)
