package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agenda-pro/internal/domain/availability"
	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
	"github.com/BruksfildServices01/agenda-pro/internal/timeofday"
	"github.com/BruksfildServices01/agenda-pro/internal/timezone"
	"github.com/BruksfildServices01/agenda-pro/internal/validators"
)

type AvailabilityInput struct {
	TenantID       uint
	ProfessionalID uint
	ServiceID      uint
	Date           string // YYYY-MM-DD, local da loja
}

func (in AvailabilityInput) validate() error {
	if in.TenantID == 0 || in.ProfessionalID == 0 || in.ServiceID == 0 {
		return httperr.ErrBusiness("missing_params")
	}
	if !validators.IsDate(in.Date) {
		return httperr.ErrBusiness("invalid_date")
	}
	return nil
}

type SlotsResult struct {
	Tenant       *models.Tenant
	Professional *models.Professional
	Service      *models.Service
	Slots        []timeofday.TimeOfDay
}

type ResolveSlots struct {
	repo domain.Repository
	now  func() time.Time
}

func NewResolveSlots(repo domain.Repository) *ResolveSlots {
	return &ResolveSlots{repo: repo, now: time.Now}
}

func (uc *ResolveSlots) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*SlotsResult, error) {

	if err := in.validate(); err != nil {
		return nil, err
	}

	tenant, err := uc.repo.GetTenantByID(ctx, in.TenantID)
	if err != nil {
		return nil, err
	}

	pro, err := uc.repo.GetProfessional(ctx, in.TenantID, in.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if !pro.Active {
		return nil, httperr.ErrNotFound("professional_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.TenantID, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !service.Active {
		return nil, httperr.ErrNotFound("service_not_found")
	}

	date, err := timezone.ParseDate(tenant, in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	override, err := uc.repo.GetOverride(ctx, pro.ID, in.Date)
	if err != nil {
		return nil, err
	}

	slots, err := availability.ResolveSlots(availability.Input{
		Tenant:      tenant,
		Override:    override,
		Date:        date,
		DurationMin: service.DurationMin,
		Now:         uc.now(),
	})
	if err != nil {
		return nil, err
	}

	return &SlotsResult{
		Tenant:       tenant,
		Professional: pro,
		Service:      service,
		Slots:        slots,
	}, nil
}
