package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-pro/internal/events"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/middleware"
	"github.com/BruksfildServices01/agenda-pro/internal/usecase/commission"
)

// RecentEvents é a interface de poll do colaborador de notificação.
type RecentEvents interface {
	Recent(ctx context.Context, tenantID uint, n int) ([]events.Event, error)
}

type DashboardHandler struct {
	totals *commission.GetTenantDashboardTotals
	recent RecentEvents
}

func NewDashboardHandler(totals *commission.GetTenantDashboardTotals, recent RecentEvents) *DashboardHandler {
	return &DashboardHandler{totals: totals, recent: recent}
}

func (h *DashboardHandler) Totals(c *gin.Context) {
	out, err := h.totals.Execute(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		httperr.FromError(c, err, "failed_to_load_dashboard")
		return
	}
	c.JSON(http.StatusOK, out)
}

// RecentNotifications alimenta o contador de novidades do painel.
func (h *DashboardHandler) RecentNotifications(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	list, err := h.recent.Recent(c.Request.Context(), actor.TenantID, limit)
	if err != nil {
		httperr.FromError(c, err, "failed_to_load_notifications")
		return
	}

	// profissional só vê o que é dele
	if actor.ProfessionalID != 0 && !actor.IsStaff() {
		own := list[:0]
		for _, ev := range list {
			if ev.ProfessionalID == actor.ProfessionalID {
				own = append(own, ev)
			}
		}
		list = own
	}

	c.JSON(http.StatusOK, gin.H{
		"count":  len(list),
		"events": list,
	})
}
