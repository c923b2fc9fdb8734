package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-pro/internal/access"
	"github.com/BruksfildServices01/agenda-pro/internal/audit"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/httpresp"
	"github.com/BruksfildServices01/agenda-pro/internal/middleware"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
	"github.com/BruksfildServices01/agenda-pro/internal/timezone"
)

// AuditQuery lê o histórico gravado pelo dispatcher de auditoria.
type AuditQuery interface {
	Query(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error)
}

// TenantLookup resolve a loja do ator (fuso dos filtros de data).
type TenantLookup interface {
	GetTenantByID(ctx context.Context, id uint) (*models.Tenant, error)
}

// entidades gravadas pelos casos de uso
var auditEntities = map[string]bool{
	"appointment":  true,
	"professional": true,
	"tenant":       true,
}

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs    AuditQuery
	tenants TenantLookup
}

func NewAuditLogsHandler(logs AuditQuery, tenants TenantLookup) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, tenants: tenants}
}

// List aceita ?action&entity&entity_id&actor&from&to&page&limit.
// entity_id puxa a história de um agendamento (transições, conflito)
// ou de um profissional (exceções de agenda).
func (h *AuditLogsHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	tenantID := middleware.ActorFrom(c).TenantID

	tenant, err := h.tenants.GetTenantByID(ctx, tenantID)
	if err != nil {
		httperr.FromError(c, err, "tenant_lookup_failed")
		return
	}

	f, ok := auditFilter(c, tenant)
	if !ok {
		return
	}

	logs, total, err := h.logs.Query(ctx, f)
	if err != nil {
		httperr.FromError(c, err, "audit_list_failed")
		return
	}

	httpresp.Page(c, logs, total, f.Page, f.Limit)
}

// auditFilter valida a query; responde 400 e devolve false se inválida.
func auditFilter(c *gin.Context, tenant *models.Tenant) (audit.Filter, bool) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	f := audit.Filter{
		TenantID: tenant.ID,
		Action:   c.Query("action"),
		Entity:   c.Query("entity"),
		Page:     page,
		Limit:    limit,
	}.Normalize()

	if f.Entity != "" && !auditEntities[f.Entity] {
		httperr.BadRequest(c, "invalid_entity", "Entidade inválida.")
		return f, false
	}

	entityID, ok := uintQuery(c, "entity_id")
	if !ok {
		return f, false
	}
	if entityID != 0 {
		if f.Entity == "" {
			httperr.BadRequest(c, "entity_required", "Informe a entidade do entity_id.")
			return f, false
		}
		f.EntityID = &entityID
	}

	if raw := c.Query("actor"); raw != "" {
		role, ok := access.ParseRole(raw)
		if !ok {
			httperr.BadRequest(c, "invalid_actor", "Papel inválido.")
			return f, false
		}
		f.Actor = string(role)
	}

	// dias no fuso da loja; "to" inclui o dia inteiro
	if raw := c.Query("from"); raw != "" {
		from, err := timezone.ParseDate(tenant, raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return f, false
		}
		f.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := timezone.ParseDate(tenant, raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return f, false
		}
		end := to.AddDate(0, 0, 1)
		f.To = &end
	}
	if f.From != nil && f.To != nil && !f.From.Before(*f.To) {
		httperr.BadRequest(c, "invalid_range", "Período inválido.")
		return f, false
	}

	return f, true
}
