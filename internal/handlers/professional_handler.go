package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/middleware"
	"github.com/BruksfildServices01/agenda-pro/internal/usecase/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/usecase/commission"
)

type ProfessionalHandler struct {
	setOverride    *appointment.SetOverride
	deleteOverride *appointment.DeleteOverride
	performance    *commission.GetProfessionalPerformance
}

func NewProfessionalHandler(
	setOverride *appointment.SetOverride,
	deleteOverride *appointment.DeleteOverride,
	performance *commission.GetProfessionalPerformance,
) *ProfessionalHandler {
	return &ProfessionalHandler{
		setOverride:    setOverride,
		deleteOverride: deleteOverride,
		performance:    performance,
	}
}

// ======================================================
// OVERRIDES (exceções de agenda por data)
// ======================================================

type OverrideRequest struct {
	Available *bool   `json:"available" binding:"required"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

func (h *ProfessionalHandler) PutOverride(c *gin.Context) {
	proID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ov, err := h.setOverride.Execute(c.Request.Context(), middleware.ActorFrom(c), appointment.OverrideInput{
		ProfessionalID: proID,
		Date:           c.Param("date"),
		Available:      *req.Available,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_save_override")
		return
	}

	c.JSON(http.StatusOK, ov)
}

func (h *ProfessionalHandler) DeleteOverride(c *gin.Context) {
	proID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteOverride.Execute(c.Request.Context(), middleware.ActorFrom(c), proID, c.Param("date")); err != nil {
		httperr.FromError(c, err, "failed_to_delete_override")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// PERFORMANCE
// ======================================================

func (h *ProfessionalHandler) Performance(c *gin.Context) {
	proID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	out, err := h.performance.Execute(c.Request.Context(), middleware.ActorFrom(c), proID, c.Query("window"))
	if err != nil {
		httperr.FromError(c, err, "failed_to_load_performance")
		return
	}

	c.JSON(http.StatusOK, out)
}
