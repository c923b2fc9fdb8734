package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/commission"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

// CommissionGormRepository só lê; reaproveita as consultas de loja e
// profissional do repositório de agendamentos.
type CommissionGormRepository struct {
	*AppointmentGormRepository
	db *gorm.DB
}

func NewCommissionGormRepository(db *gorm.DB) *CommissionGormRepository {
	return &CommissionGormRepository{
		AppointmentGormRepository: NewAppointmentGormRepository(db),
		db:                        db,
	}
}

func (r *CommissionGormRepository) ListProfessionals(
	ctx context.Context,
	tenantID uint,
) ([]models.Professional, error) {

	var pros []models.Professional
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at ASC, id ASC").
		Find(&pros).Error
	return pros, err
}

func (r *CommissionGormRepository) ListProfessionalTypes(
	ctx context.Context,
	tenantID uint,
) ([]models.ProfessionalType, error) {

	var types []models.ProfessionalType
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Find(&types).Error
	return types, err
}

func (r *CommissionGormRepository) ListCompletedAppointments(
	ctx context.Context,
	tenantID uint,
	professionalID uint,
	fromDate string,
	toDate string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where(
			"tenant_id = ? AND status = ? AND date >= ? AND date <= ?",
			tenantID, "completed", fromDate, toDate,
		)

	if professionalID != 0 {
		q = q.Where("professional_id = ?", professionalID)
	}

	var apps []models.Appointment
	if err := q.Order("date ASC, start_time ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

var _ domain.Repository = (*CommissionGormRepository)(nil)
