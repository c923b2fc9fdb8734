package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-pro/internal/access"
	"github.com/BruksfildServices01/agenda-pro/internal/auth"
	"github.com/BruksfildServices01/agenda-pro/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubRevocations struct {
	revoked map[uint]bool
	err     error
}

func (s stubRevocations) IsRevoked(_ context.Context, userID, _ uint) (bool, error) {
	return s.revoked[userID], s.err
}

func authEngine(rev RevocationChecker) *gin.Engine {
	cfg := &config.Config{JWTSecret: "secret"}
	r := gin.New()
	r.Use(RequestID())
	r.GET("/me", AuthMiddleware(cfg, rev, zap.NewNop()), func(c *gin.Context) {
		actor := ActorFrom(c)
		c.JSON(http.StatusOK, gin.H{"tenant": actor.TenantID, "role": actor.Role})
	})
	r.GET("/owner", AuthMiddleware(cfg, rev, zap.NewNop()), RequireRoles(access.RoleOwner), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func call(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bearer(t *testing.T, userID uint, role access.Role, proID uint) map[string]string {
	tok, err := auth.Issue("secret", userID, 1, role, proID, time.Now())
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + tok}
}

func TestAuthMiddleware(t *testing.T) {
	r := authEngine(stubRevocations{revoked: map[uint]bool{9: true}})

	w := call(r, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = call(r, http.MethodGet, "/me", map[string]string{"Authorization": "Token abc"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = call(r, http.MethodGet, "/me", bearer(t, 1, access.RoleOwner, 0))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"tenant":1,"role":"owner"}`, w.Body.String())

	// credencial revogada por downgrade
	w = call(r, http.MethodGet, "/me", bearer(t, 9, access.RoleProfessional, 4))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "access_revoked")
}

func TestAuthMiddleware_RevocationStoreDown(t *testing.T) {
	r := authEngine(stubRevocations{err: errors.New("redis down")})

	w := call(r, http.MethodGet, "/me", bearer(t, 1, access.RoleOwner, 0))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRequireRoles(t *testing.T) {
	r := authEngine(nil)

	w := call(r, http.MethodGet, "/owner", bearer(t, 1, access.RoleStaff, 0))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = call(r, http.MethodGet, "/owner", bearer(t, 1, access.RoleOwner, 0))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2, zap.NewNop())
	r := gin.New()
	r.GET("/p", rl.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, call(r, http.MethodGet, "/p", nil).Code)
	assert.Equal(t, http.StatusOK, call(r, http.MethodGet, "/p", nil).Code)

	w := call(r, http.MethodGet, "/p", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestInternalToken(t *testing.T) {
	r := gin.New()
	r.POST("/internal/tenants/:id/plan", InternalToken("s3cret"), func(c *gin.Context) {
		actor := ActorFrom(c)
		c.JSON(http.StatusOK, gin.H{"tenant": actor.TenantID, "role": actor.Role})
	})

	w := call(r, http.MethodPost, "/internal/tenants/5/plan", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = call(r, http.MethodPost, "/internal/tenants/x/plan", map[string]string{"X-Internal-Token": "s3cret"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(r, http.MethodPost, "/internal/tenants/5/plan", map[string]string{"X-Internal-Token": "s3cret"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"tenant":5,"role":"system"}`, w.Body.String())

	// token vazio na config: rota fechada
	closed := gin.New()
	closed.POST("/internal/tenants/:id/plan", InternalToken(""), func(c *gin.Context) { c.Status(http.StatusOK) })
	w = call(closed, http.MethodPost, "/internal/tenants/5/plan", map[string]string{"X-Internal-Token": ""})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Recovery(zap.NewNop()), Logging(zap.NewNop(), nil))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := call(r, http.MethodGet, "/boom", map[string]string{"X-Request-ID": "req-1"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))
}
