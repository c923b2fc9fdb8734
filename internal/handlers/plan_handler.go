package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/middleware"
	"github.com/BruksfildServices01/agenda-pro/internal/usecase/capacity"
)

type PlanHandler struct {
	enforce *capacity.EnforcePlan
}

func NewPlanHandler(enforce *capacity.EnforcePlan) *PlanHandler {
	return &PlanHandler{enforce: enforce}
}

type ChangePlanRequest struct {
	Plan string `json:"plan" binding:"required"`
}

// Change serve as duas rotas: a interna (billing, ator system) e a do
// dono. O tenant vem sempre do ator.
func (h *PlanHandler) Change(c *gin.Context) {
	var req ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	actor := middleware.ActorFrom(c)

	res, err := h.enforce.Execute(c.Request.Context(), actor, actor.TenantID, req.Plan)
	if err != nil {
		httperr.FromError(c, err, "failed_to_change_plan")
		return
	}

	c.JSON(http.StatusOK, res)
}
