package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-pro/internal/access"
	"github.com/BruksfildServices01/agenda-pro/internal/auth"
	"github.com/BruksfildServices01/agenda-pro/internal/config"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
)

const ContextActor = "actor"

// RevocationChecker consulta se a credencial foi cortada (ex.: downgrade
// de plano desativou o profissional).
type RevocationChecker interface {
	IsRevoked(ctx context.Context, userID, professionalID uint) (bool, error)
}

func AuthMiddleware(cfg *config.Config, revoked RevocationChecker, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, "missing_authorization_header", "Token ausente.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abort(c, http.StatusUnauthorized, "invalid_authorization_header", "Cabeçalho inválido.")
			return
		}

		actor, err := auth.Parse(cfg.JWTSecret, parts[1])
		if err != nil {
			abort(c, http.StatusUnauthorized, "invalid_token", "Token inválido.")
			return
		}

		if revoked != nil {
			isRevoked, err := revoked.IsRevoked(c.Request.Context(), actor.UserID, actor.ProfessionalID)
			if err != nil {
				// falha fechada: sem confirmação, sem acesso
				logger.Error("revocation check failed",
					zap.Uint("user_id", actor.UserID),
					zap.String("request_id", RequestIDFrom(c)),
					zap.Error(err),
				)
				abort(c, http.StatusServiceUnavailable, "auth_unavailable", "Tente novamente.")
				return
			}
			if isRevoked {
				abort(c, http.StatusUnauthorized, "access_revoked", "Acesso revogado.")
				return
			}
		}

		c.Set(ContextActor, actor)
		c.Next()
	}
}

// ActorFrom devolve o ator autenticado (zero se a rota for pública).
func ActorFrom(c *gin.Context) access.Actor {
	if v, ok := c.Get(ContextActor); ok {
		if actor, ok := v.(access.Actor); ok {
			return actor
		}
	}
	return access.Actor{}
}

// RequireRoles barra papéis fora da lista.
func RequireRoles(roles ...access.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFrom(c)
		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}
		abort(c, http.StatusForbidden, httperr.CodeForbidden, "Sem permissão.")
	}
}

func abort(c *gin.Context, status int, code, message string) {
	httperr.Write(c, status, code, message)
	c.Abort()
}
