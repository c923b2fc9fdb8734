package middleware

import (
	"crypto/subtle"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-pro/internal/access"
)

const headerInternalToken = "X-Internal-Token"

// InternalToken protege rotas chamadas por outros sistemas (billing).
// O ator vira `system` da loja indicada em :id.
func InternalToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(headerInternalToken)
		if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			abort(c, http.StatusUnauthorized, "invalid_internal_token", "Token interno inválido.")
			return
		}

		tenantID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || tenantID == 0 {
			abort(c, http.StatusBadRequest, "invalid_tenant_id", "Loja inválida.")
			return
		}

		c.Set(ContextActor, access.System(uint(tenantID)))
		c.Next()
	}
}
