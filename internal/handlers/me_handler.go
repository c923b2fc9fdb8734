package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/middleware"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Tenant").
		Where("id = ? AND tenant_id = ?", actor.UserID, actor.TenantID).
		First(&user).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":              user.ID,
			"name":            user.Name,
			"email":           user.Email,
			"role":            actor.Role,
			"tenant_id":       user.TenantID,
			"professional_id": actor.ProfessionalID,
		},
		"tenant": gin.H{
			"id":                  user.Tenant.ID,
			"name":                user.Tenant.Name,
			"slug":                user.Tenant.Slug,
			"phone":               user.Tenant.Phone,
			"timezone":            user.Tenant.Timezone,
			"plan":                user.Tenant.Plan,
			"operating_days":      user.Tenant.OperatingDays,
			"open_time":           user.Tenant.OpenTime,
			"close_time":          user.Tenant.CloseTime,
			"min_advance_minutes": user.Tenant.MinAdvanceMinutes,
		},
	})
}
