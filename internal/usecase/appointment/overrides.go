package appointment

import (
	"context"

	"github.com/BruksfildServices01/agenda-pro/internal/access"
	"github.com/BruksfildServices01/agenda-pro/internal/audit"
	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
	"github.com/BruksfildServices01/agenda-pro/internal/validators"
)

type OverrideInput struct {
	ProfessionalID uint
	Date           string
	Available      bool
	StartTime      *string
	EndTime        *string
}

func (in OverrideInput) validate() error {
	if in.ProfessionalID == 0 {
		return httperr.ErrBusiness("missing_params")
	}
	if !validators.IsDate(in.Date) {
		return httperr.ErrBusiness("invalid_date")
	}

	// dia de folga não carrega horário
	if !in.Available {
		if in.StartTime != nil || in.EndTime != nil {
			return httperr.ErrBusiness("day_off_with_hours")
		}
		return nil
	}

	// horário é opcional, mas vem aos pares
	if (in.StartTime == nil) != (in.EndTime == nil) {
		return httperr.ErrBusiness("invalid_hours")
	}
	if in.StartTime != nil && !validators.IsWindow(*in.StartTime, *in.EndTime) {
		return httperr.ErrBusiness("invalid_hours")
	}
	return nil
}

// ======================================================
// SET
// ======================================================

type SetOverride struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetOverride(repo domain.Repository, audit *audit.Dispatcher) *SetOverride {
	return &SetOverride{repo: repo, audit: audit}
}

func (uc *SetOverride) Execute(
	ctx context.Context,
	actor access.Actor,
	in OverrideInput,
) (*models.AvailabilityOverride, error) {

	if err := in.validate(); err != nil {
		return nil, err
	}
	if !actor.CanManageProfessional(actor.TenantID, in.ProfessionalID) {
		return nil, httperr.ErrForbidden()
	}

	if _, err := uc.repo.GetProfessional(ctx, actor.TenantID, in.ProfessionalID); err != nil {
		return nil, err
	}

	ov := &models.AvailabilityOverride{
		ProfessionalID: in.ProfessionalID,
		Date:           in.Date,
		Available:      in.Available,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
	}
	if err := uc.repo.UpsertOverride(ctx, ov); err != nil {
		return nil, err
	}

	ev := audit.FromActor(actor, "availability_override_set", "professional", &ov.ProfessionalID)
	ev.Metadata = map[string]any{"date": in.Date, "available": in.Available}
	uc.audit.Dispatch(ev)

	return ov, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteOverride struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteOverride(repo domain.Repository, audit *audit.Dispatcher) *DeleteOverride {
	return &DeleteOverride{repo: repo, audit: audit}
}

func (uc *DeleteOverride) Execute(
	ctx context.Context,
	actor access.Actor,
	professionalID uint,
	date string,
) error {

	if !validators.IsDate(date) {
		return httperr.ErrBusiness("invalid_date")
	}
	if !actor.CanManageProfessional(actor.TenantID, professionalID) {
		return httperr.ErrForbidden()
	}

	if _, err := uc.repo.GetProfessional(ctx, actor.TenantID, professionalID); err != nil {
		return err
	}

	if err := uc.repo.DeleteOverride(ctx, professionalID, date); err != nil {
		return err
	}

	ev := audit.FromActor(actor, "availability_override_deleted", "professional", &professionalID)
	ev.Metadata = map[string]any{"date": date}
	uc.audit.Dispatch(ev)

	return nil
}
