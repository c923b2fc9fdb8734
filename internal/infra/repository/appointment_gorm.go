package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

// índices criados em db.NewDB
const (
	activeSlotIndex  = "ux_appointments_active_slot"
	clientPhoneIndex = "ux_clients_tenant_phone"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// notFound traduz o erro do gorm para o código de negócio.
func notFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(code)
	}
	return err
}

// --------------------------------------------------
// Tenant
// --------------------------------------------------

func (r *AppointmentGormRepository) GetTenantByID(
	ctx context.Context,
	id uint,
) (*models.Tenant, error) {

	var tenant models.Tenant
	if err := r.db.WithContext(ctx).First(&tenant, id).Error; err != nil {
		return nil, notFound(err, "tenant_not_found")
	}
	return &tenant, nil
}

func (r *AppointmentGormRepository) GetTenantBySlug(
	ctx context.Context,
	slug string,
) (*models.Tenant, error) {

	var tenant models.Tenant
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&tenant).Error; err != nil {
		return nil, notFound(err, "tenant_not_found")
	}
	return &tenant, nil
}

// --------------------------------------------------
// Professional / Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetProfessional(
	ctx context.Context,
	tenantID uint,
	professionalID uint,
) (*models.Professional, error) {

	var pro models.Professional
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", professionalID, tenantID).
		First(&pro).Error; err != nil {
		return nil, notFound(err, "professional_not_found")
	}
	return &pro, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	tenantID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", serviceID, tenantID).
		First(&service).Error; err != nil {
		return nil, notFound(err, "service_not_found")
	}
	return &service, nil
}

func (r *AppointmentGormRepository) ListActiveServices(
	ctx context.Context,
	tenantID uint,
) ([]models.Service, error) {

	var services []models.Service
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND active = true", tenantID).
		Order("name ASC").
		Find(&services).Error
	return services, err
}

func (r *AppointmentGormRepository) ListActiveProfessionals(
	ctx context.Context,
	tenantID uint,
) ([]models.Professional, error) {

	var pros []models.Professional
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND active = true", tenantID).
		Order("name ASC").
		Find(&pros).Error
	return pros, err
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) GetOverride(
	ctx context.Context,
	professionalID uint,
	date string,
) (*models.AvailabilityOverride, error) {

	var ov models.AvailabilityOverride
	err := r.db.WithContext(ctx).
		Where("professional_id = ? AND date = ?", professionalID, date).
		First(&ov).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ov, nil
}

func (r *AppointmentGormRepository) UpsertOverride(
	ctx context.Context,
	ov *models.AvailabilityOverride,
) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "professional_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"available", "start_time", "end_time", "updated_at"}),
		}).
		Create(ov).Error
}

func (r *AppointmentGormRepository) DeleteOverride(
	ctx context.Context,
	professionalID uint,
	date string,
) error {
	return r.db.WithContext(ctx).
		Where("professional_id = ? AND date = ?", professionalID, date).
		Delete(&models.AvailabilityOverride{}).Error
}

func (r *AppointmentGormRepository) ListBookedTimes(
	ctx context.Context,
	professionalID uint,
	date string,
) ([]string, error) {

	var times []string
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"professional_id = ? AND date = ? AND status <> ?",
			professionalID, date, domain.StatusCanceled,
		).
		Order("start_time ASC").
		Pluck("start_time", &times).Error
	return times, err
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) FindClientByPhone(
	ctx context.Context,
	tenantID uint,
	phone string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND phone = ?", tenantID, phone).
		First(&client).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *AppointmentGormRepository) GetOrCreateClient(
	ctx context.Context,
	tenantID uint,
	name string,
	phone string,
) (*models.Client, error) {

	client, err := r.FindClientByPhone(ctx, tenantID, phone)
	if err != nil || client != nil {
		return client, err
	}

	client = &models.Client{
		TenantID: tenantID,
		Name:     name,
		Phone:    phone,
	}

	err = r.db.WithContext(ctx).Create(client).Error
	if httperr.IsUniqueViolation(err, clientPhoneIndex) {
		// outra requisição criou o mesmo cliente
		return r.FindClientByPhone(ctx, tenantID, phone)
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(ap).Error

	if httperr.IsUniqueViolation(err, activeSlotIndex) {
		return httperr.ErrConflict("slot_taken")
	}
	return err
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	tenantID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("Professional").
		Where("id = ? AND tenant_id = ?", appointmentID, tenantID).
		First(&ap).Error; err != nil {
		return nil, notFound(err, "appointment_not_found")
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	ap *models.Appointment,
	from domain.Status,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND tenant_id = ? AND status = ?", ap.ID, ap.TenantID, from).
		Updates(map[string]any{
			"status":       ap.Status,
			"confirmed_at": ap.ConfirmedAt,
			"completed_at": ap.CompletedAt,
			"canceled_at":  ap.CanceledAt,
			"updated_at":   time.Now(),
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrConflict("status_changed")
	}
	return nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	tenantID uint,
	professionalID uint,
	fromDate string,
	toDate string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("Professional").
		Where("tenant_id = ? AND date >= ? AND date <= ?", tenantID, fromDate, toDate)

	if professionalID != 0 {
		q = q.Where("professional_id = ?", professionalID)
	}

	var apps []models.Appointment
	if err := q.Order("date ASC, start_time ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListClientAppointments(
	ctx context.Context,
	tenantID uint,
	clientID uint,
	fromDate string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("Professional").
		Where("tenant_id = ? AND client_id = ? AND date >= ?", tenantID, clientID, fromDate).
		Order("date ASC, start_time ASC").
		Find(&apps).Error
	return apps, err
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
