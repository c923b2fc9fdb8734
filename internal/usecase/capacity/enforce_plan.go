package capacity

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-pro/internal/access"
	"github.com/BruksfildServices01/agenda-pro/internal/audit"
	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/capacity"
	"github.com/BruksfildServices01/agenda-pro/internal/events"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/metrics"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

type EnforcePlanResult struct {
	Plan                   string `json:"plan"`
	RemovedProfessionalIDs []uint `json:"removed_professional_ids"`
}

// EnforcePlan aplica a troca de plano: desativa o excedente (mais
// antigos primeiro), revoga o acesso deles e só então grava o plano.
// Tudo ou nada.
type EnforcePlan struct {
	repo    domain.Repository
	revoker domain.AccessRevoker
	audit   *audit.Dispatcher
	events  events.Emitter
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

func NewEnforcePlan(
	repo domain.Repository,
	revoker domain.AccessRevoker,
	audit *audit.Dispatcher,
	emitter events.Emitter,
	m *metrics.Metrics,
	logger *zap.Logger,
) *EnforcePlan {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnforcePlan{
		repo:    repo,
		revoker: revoker,
		audit:   audit,
		events:  emitter,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

func (uc *EnforcePlan) Execute(
	ctx context.Context,
	actor access.Actor,
	tenantID uint,
	planName string,
) (*EnforcePlanResult, error) {

	// --------------------------------------------------
	// 1️⃣ Quem pode trocar plano: dono ou sistema (billing)
	// --------------------------------------------------
	if !actor.BelongsTo(tenantID) ||
		(actor.Role != access.RoleOwner && actor.Role != access.RoleSystem) {
		return nil, httperr.ErrForbidden()
	}

	planName = strings.TrimSpace(planName)
	if planName == "" {
		return nil, httperr.ErrBusiness("missing_plan")
	}

	plan, err := uc.repo.GetPlanByName(ctx, planName)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, httperr.ErrBusiness("unknown_plan")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Transação: lock → excedente → desativa → revoga → plano
	// --------------------------------------------------
	var (
		previous string
		surplus  []models.Professional
		revoked  []models.Professional
	)

	err = uc.repo.InTransaction(ctx, func(tx domain.Repository) error {
		revoked = revoked[:0]

		tenant, err := tx.LockTenant(ctx, tenantID)
		if err != nil {
			return err
		}
		previous = tenant.Plan

		active, err := tx.ListActiveProfessionals(ctx, tenantID)
		if err != nil {
			return err
		}

		surplus = domain.SelectSurplus(active, plan.MaxProfessionals)

		if len(surplus) > 0 {
			if err := tx.DeactivateProfessionals(ctx, tenantID, domain.IDs(surplus), uc.now()); err != nil {
				return err
			}

			for _, pro := range surplus {
				if err := uc.revoker.Revoke(ctx, pro); err != nil {
					return err
				}
				revoked = append(revoked, pro)
			}
		}

		return tx.UpdateTenantPlan(ctx, tenantID, plan.Name)
	})

	if err != nil {
		uc.compensate(ctx, tenantID, revoked)
		uc.metrics.PlanEnforced("failed", 0)

		// erro de lookup não tem a ver com o excedente
		if httperr.IsNotFound(err) {
			return nil, err
		}

		uc.logger.Error("plan enforcement aborted",
			zap.Uint("tenant_id", tenantID),
			zap.String("plan", plan.Name),
			zap.Uints("professional_ids", domain.IDs(surplus)),
			zap.Error(err),
		)
		return nil, httperr.CapacityEnforcementError{
			ProfessionalIDs: domain.IDs(surplus),
			Err:             err,
		}
	}

	// --------------------------------------------------
	// 3️⃣ Auditoria + evento
	// --------------------------------------------------
	ids := domain.IDs(surplus)
	uc.metrics.PlanEnforced("applied", len(ids))

	ev := audit.FromActor(actor, "plan_enforced", "tenant", &tenantID)
	ev.TenantID = tenantID
	ev.Metadata = map[string]any{
		"from":                     previous,
		"to":                       plan.Name,
		"removed_professional_ids": ids,
	}
	uc.audit.Dispatch(ev)

	if uc.events != nil {
		out := events.New(events.TenantPlanChanged, tenantID, uc.now())
		out.From = previous
		out.To = plan.Name
		out.ProfessionalIDs = ids
		uc.events.Emit(out)
	}

	uc.logger.Info("plan enforced",
		zap.Uint("tenant_id", tenantID),
		zap.String("plan", plan.Name),
		zap.Int("removed", len(ids)),
	)

	return &EnforcePlanResult{Plan: plan.Name, RemovedProfessionalIDs: ids}, nil
}

// compensate devolve o acesso de quem já tinha sido revogado; a
// transação desfaz a desativação no banco.
func (uc *EnforcePlan) compensate(ctx context.Context, tenantID uint, revoked []models.Professional) {
	var errs []error
	for _, pro := range revoked {
		if err := uc.revoker.Restore(ctx, pro); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		uc.logger.Error("access restore failed",
			zap.Uint("tenant_id", tenantID),
			zap.Uints("professional_ids", domain.IDs(revoked)),
			zap.Error(err),
		)
	}
}
