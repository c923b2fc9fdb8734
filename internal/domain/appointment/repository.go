package appointment

import (
	"context"

	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

type Repository interface {
	// -------- Tenant --------
	GetTenantByID(
		ctx context.Context,
		id uint,
	) (*models.Tenant, error)

	GetTenantBySlug(
		ctx context.Context,
		slug string,
	) (*models.Tenant, error)

	// -------- Professional / Service --------
	GetProfessional(
		ctx context.Context,
		tenantID uint,
		professionalID uint,
	) (*models.Professional, error)

	GetService(
		ctx context.Context,
		tenantID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Availability --------

	// GetOverride devolve nil, nil quando não há exceção para a data.
	GetOverride(
		ctx context.Context,
		professionalID uint,
		date string,
	) (*models.AvailabilityOverride, error)

	UpsertOverride(
		ctx context.Context,
		ov *models.AvailabilityOverride,
	) error

	DeleteOverride(
		ctx context.Context,
		professionalID uint,
		date string,
	) error

	// ListBookedTimes: horários ("15:04") não cancelados do profissional na data.
	ListBookedTimes(
		ctx context.Context,
		professionalID uint,
		date string,
	) ([]string, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		tenantID uint,
		name string,
		phone string,
	) (*models.Client, error)

	// FindClientByPhone devolve nil, nil quando o telefone não existe.
	FindClientByPhone(
		ctx context.Context,
		tenantID uint,
		phone string,
	) (*models.Client, error)

	// -------- Appointment --------

	// CreateAppointment deve devolver httperr.ConflictError quando o
	// índice único de horário ativo for violado.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		tenantID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	// UpdateAppointmentStatus grava o novo status somente se o status
	// persistido ainda for `from`; caso contrário devolve ConflictError.
	UpdateAppointmentStatus(
		ctx context.Context,
		ap *models.Appointment,
		from Status,
	) error

	ListAppointmentsForPeriod(
		ctx context.Context,
		tenantID uint,
		professionalID uint,
		fromDate string,
		toDate string,
	) ([]models.Appointment, error)

	ListClientAppointments(
		ctx context.Context,
		tenantID uint,
		clientID uint,
		fromDate string,
	) ([]models.Appointment, error)
}
