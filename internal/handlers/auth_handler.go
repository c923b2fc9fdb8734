package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-pro/internal/access"
	"github.com/BruksfildServices01/agenda-pro/internal/auth"
	"github.com/BruksfildServices01/agenda-pro/internal/config"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/middleware"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

type AuthHandler struct {
	db      *gorm.DB
	config  *config.Config
	revoked middleware.RevocationChecker
	logger  *zap.Logger
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	revoked middleware.RevocationChecker,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, revoked: revoked, logger: logger}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ctx := c.Request.Context()
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.WithContext(ctx).
		Preload("Tenant").
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
		return
	}

	role, ok := access.ParseRole(user.Role)
	if !ok || role == access.RoleClient || role == access.RoleSystem {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
		return
	}

	// --------------------------------------------------
	// Profissional: precisa estar ativo
	// --------------------------------------------------
	var proID uint
	if role == access.RoleProfessional {
		var pro models.Professional
		err := h.db.WithContext(ctx).
			Where("tenant_id = ? AND user_id = ?", user.TenantID, user.ID).
			First(&pro).Error
		if err != nil || !pro.Active {
			httperr.Forbidden(c, "access_revoked", "Acesso desativado.")
			return
		}
		proID = pro.ID
	}

	if h.revoked != nil {
		revoked, err := h.revoked.IsRevoked(ctx, user.ID, proID)
		if err != nil {
			h.logger.Error("revocation check failed", zap.Uint("user_id", user.ID), zap.Error(err))
			httperr.Write(c, http.StatusServiceUnavailable, "auth_unavailable", "Tente novamente.")
			return
		}
		if revoked {
			httperr.Forbidden(c, "access_revoked", "Acesso desativado.")
			return
		}
	}

	token, err := auth.Issue(h.config.JWTSecret, user.ID, user.TenantID, role, proID, time.Now())
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":              user.ID,
			"name":            user.Name,
			"email":           user.Email,
			"role":            user.Role,
			"tenant_id":       user.TenantID,
			"professional_id": proID,
		},
		"tenant": gin.H{
			"id":   user.Tenant.ID,
			"name": user.Tenant.Name,
			"slug": user.Tenant.Slug,
			"plan": user.Tenant.Plan,
		},
		"token": token,
	})
}
