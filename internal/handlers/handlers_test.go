package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/agenda-pro/internal/access"
	"github.com/BruksfildServices01/agenda-pro/internal/audit"
	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/events"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/middleware"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
	"github.com/BruksfildServices01/agenda-pro/internal/usecase/appointment"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubRepo implementa só o que cada teste usa; o resto entra em pânico.
type stubRepo struct {
	domain.Repository

	tenant       *models.Tenant
	appointments map[uint]*models.Appointment
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		tenant:       &models.Tenant{ID: 1, Name: "Studio", Slug: "studio", Timezone: "America/Sao_Paulo"},
		appointments: map[uint]*models.Appointment{},
	}
}

func (r *stubRepo) GetTenantBySlug(_ context.Context, slug string) (*models.Tenant, error) {
	if slug != r.tenant.Slug {
		return nil, httperr.ErrNotFound("tenant_not_found")
	}
	return r.tenant, nil
}

func (r *stubRepo) GetTenantByID(_ context.Context, id uint) (*models.Tenant, error) {
	if id != r.tenant.ID {
		return nil, httperr.ErrNotFound("tenant_not_found")
	}
	return r.tenant, nil
}

func (r *stubRepo) ListActiveServices(_ context.Context, _ uint) ([]models.Service, error) {
	return []models.Service{
		{ID: 20, TenantID: 1, Name: "Corte", DurationMin: 30, Price: decimal.NewFromInt(50), Active: true},
	}, nil
}

func (r *stubRepo) ListActiveProfessionals(_ context.Context, _ uint) ([]models.Professional, error) {
	return []models.Professional{{ID: 10, TenantID: 1, Name: "Ana", Active: true}}, nil
}

func (r *stubRepo) GetAppointment(_ context.Context, _ uint, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}
	cp := *ap
	return &cp, nil
}

func (r *stubRepo) UpdateAppointmentStatus(_ context.Context, ap *models.Appointment, from domain.Status) error {
	cur := r.appointments[ap.ID]
	if cur.Status != string(from) {
		return httperr.ErrConflict("status_changed")
	}
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

type stubRecent []events.Event

func (s stubRecent) Recent(_ context.Context, _ uint, _ int) ([]events.Event, error) {
	out := make([]events.Event, len(s))
	copy(out, s)
	return out, nil
}

// engine monta um gin com o ator já resolvido (como faria o AuthMiddleware).
func engine(actor *access.Actor) *gin.Engine {
	r := gin.New()
	if actor != nil {
		r.Use(func(c *gin.Context) {
			c.Set(middleware.ContextActor, *actor)
			c.Next()
		})
	}
	return r
}

func do(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestPublicCatalog(t *testing.T) {
	h := NewPublicHandler(newStubRepo(), nil, nil, nil, nil)
	r := engine(nil)
	r.GET("/api/public/:slug", h.Catalog)

	w := do(r, http.MethodGet, "/api/public/studio", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "studio", body["tenant"].(map[string]any)["slug"])
	pros := body["professionals"].([]any)
	require.Len(t, pros, 1)
	assert.Equal(t, "Ana", pros[0].(map[string]any)["name"])
	assert.Len(t, body["services"].([]any), 1)

	w = do(r, http.MethodGet, "/api/public/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "tenant_not_found", decode(t, w)["error_code"])
}

func TestPublicCreateAppointment_InvalidBody(t *testing.T) {
	h := NewPublicHandler(newStubRepo(), nil, nil, nil, nil)
	r := engine(nil)
	r.POST("/api/public/:slug/appointments", h.CreateAppointment)

	w := do(r, http.MethodPost, "/api/public/studio/appointments", map[string]any{"client_name": "Caio"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", decode(t, w)["error_code"])
}

func TestUpdateStatus(t *testing.T) {
	repo := newStubRepo()
	repo.appointments[1] = &models.Appointment{ID: 1, TenantID: 1, ProfessionalID: 10, Status: "pending", Date: "2026-03-10", StartTime: "10:00", DurationMin: 30}
	repo.appointments[2] = &models.Appointment{ID: 2, TenantID: 1, ProfessionalID: 10, Status: "completed", Date: "2026-03-10", StartTime: "11:00", DurationMin: 30}

	transition := appointment.NewTransitionAppointment(repo, nil, nil, nil)
	h := NewAppointmentHandler(nil, nil, transition, nil, nil)

	owner := access.Actor{Role: access.RoleOwner, TenantID: 1, UserID: 1}
	r := engine(&owner)
	r.PATCH("/appointments/:id/status", h.UpdateStatus)

	t.Run("confirms pending", func(t *testing.T) {
		w := do(r, http.MethodPatch, "/appointments/1/status", TransitionRequest{Status: "confirmed"})
		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, "confirmed", body["status"])
		assert.Equal(t, "10:30", body["end_time"])
	})

	t.Run("terminal status is final", func(t *testing.T) {
		w := do(r, http.MethodPatch, "/appointments/2/status", TransitionRequest{Status: "canceled"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "invalid_transition", decode(t, w)["error_code"])
	})

	t.Run("unknown status", func(t *testing.T) {
		w := do(r, http.MethodPatch, "/appointments/1/status", TransitionRequest{Status: "done"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_status", decode(t, w)["error_code"])
	})

	t.Run("invalid id", func(t *testing.T) {
		w := do(r, http.MethodPatch, "/appointments/abc/status", TransitionRequest{Status: "confirmed"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_id", decode(t, w)["error_code"])
	})

	t.Run("other tenant is forbidden", func(t *testing.T) {
		stranger := access.Actor{Role: access.RoleOwner, TenantID: 2, UserID: 9}
		r2 := engine(&stranger)
		r2.PATCH("/appointments/:id/status", h.UpdateStatus)

		w := do(r2, http.MethodPatch, "/appointments/1/status", TransitionRequest{Status: "canceled"})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "forbidden", decode(t, w)["error_code"])
	})
}

func TestListValidation(t *testing.T) {
	h := NewAppointmentHandler(nil, nil, nil, nil, nil)
	owner := access.Actor{Role: access.RoleOwner, TenantID: 1}
	r := engine(&owner)
	r.GET("/appointments", h.ListByDate)
	r.GET("/appointments/month", h.ListByMonth)

	cases := []struct {
		path string
		code string
	}{
		{"/appointments", "missing_date"},
		{"/appointments?date=2026-03-10&professional_id=x", "invalid_professional_id"},
		{"/appointments/month?year=2026", "missing_year_or_month"},
		{"/appointments/month?year=2026&month=13", "invalid_month"},
		{"/appointments/month?year=1999&month=1", "invalid_year"},
	}
	for _, tc := range cases {
		w := do(r, http.MethodGet, tc.path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, tc.path)
		assert.Equal(t, tc.code, decode(t, w)["error_code"], tc.path)
	}
}

func TestRecentNotifications(t *testing.T) {
	recent := stubRecent{
		{Type: events.AppointmentCreated, TenantID: 1, ProfessionalID: 10},
		{Type: events.AppointmentCreated, TenantID: 1, ProfessionalID: 11},
		{Type: events.AppointmentStatusChanged, TenantID: 1, ProfessionalID: 10},
	}
	h := NewDashboardHandler(nil, recent)

	t.Run("staff sees everything", func(t *testing.T) {
		staff := access.Actor{Role: access.RoleStaff, TenantID: 1}
		r := engine(&staff)
		r.GET("/notifications/recent", h.RecentNotifications)

		w := do(r, http.MethodGet, "/notifications/recent", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 3, decode(t, w)["count"])
	})

	t.Run("professional sees own", func(t *testing.T) {
		pro := access.Actor{Role: access.RoleProfessional, TenantID: 1, ProfessionalID: 11}
		r := engine(&pro)
		r.GET("/notifications/recent", h.RecentNotifications)

		w := do(r, http.MethodGet, "/notifications/recent", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 1, decode(t, w)["count"])
	})
}

// stubAudit guarda o último filtro recebido.
type stubAudit struct {
	last audit.Filter
	logs []models.AuditLog
}

func (s *stubAudit) Query(_ context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
	s.last = f
	return s.logs, int64(len(s.logs)) + 40, nil
}

func TestAuditLogs(t *testing.T) {
	apID := uint(7)
	logs := &stubAudit{logs: []models.AuditLog{
		{ID: 2, TenantID: 1, Actor: "owner", Action: "appointment_confirmed", Entity: "appointment", EntityID: &apID},
		{ID: 1, TenantID: 1, Actor: "client", Action: "appointment_created", Entity: "appointment", EntityID: &apID},
	}}
	h := NewAuditLogsHandler(logs, newStubRepo())

	staff := access.Actor{Role: access.RoleStaff, TenantID: 1}
	r := engine(&staff)
	r.GET("/audit-logs", h.List)

	t.Run("history of one appointment", func(t *testing.T) {
		w := do(r, http.MethodGet, "/audit-logs?entity=appointment&entity_id=7&actor=owner&from=2026-03-10&to=2026-03-10&page=2&limit=20", nil)
		require.Equal(t, http.StatusOK, w.Code)

		f := logs.last
		assert.Equal(t, uint(1), f.TenantID)
		assert.Equal(t, "appointment", f.Entity)
		require.NotNil(t, f.EntityID)
		assert.Equal(t, apID, *f.EntityID)
		assert.Equal(t, "owner", f.Actor)
		assert.Equal(t, 2, f.Page)
		assert.Equal(t, 20, f.Limit)

		// dia inteiro no fuso da loja (UTC-3)
		require.NotNil(t, f.From)
		require.NotNil(t, f.To)
		assert.True(t, f.From.Equal(time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC)))
		assert.True(t, f.To.Equal(time.Date(2026, 3, 11, 3, 0, 0, 0, time.UTC)))

		body := decode(t, w)
		assert.EqualValues(t, 42, body["total"])
		assert.EqualValues(t, 2, body["page"])
		assert.Len(t, body["data"].([]any), 2)
	})

	t.Run("defaults", func(t *testing.T) {
		w := do(r, http.MethodGet, "/audit-logs?limit=1000", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, logs.last.Page)
		assert.Equal(t, 50, logs.last.Limit)
		assert.Nil(t, logs.last.EntityID)
		assert.Nil(t, logs.last.From)
	})

	cases := []struct {
		path string
		code string
	}{
		{"/audit-logs?entity=barbershop", "invalid_entity"},
		{"/audit-logs?entity_id=7", "entity_required"},
		{"/audit-logs?entity=appointment&entity_id=x", "invalid_entity_id"},
		{"/audit-logs?actor=admin", "invalid_actor"},
		{"/audit-logs?from=10/03/2026", "invalid_date"},
		{"/audit-logs?from=2026-03-11&to=2026-03-09", "invalid_range"},
	}
	for _, tc := range cases {
		w := do(r, http.MethodGet, tc.path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, tc.path)
		assert.Equal(t, tc.code, decode(t, w)["error_code"], tc.path)
	}
}
