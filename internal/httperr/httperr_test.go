package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, err error) (*httptest.ResponseRecorder, HTTPError) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	FromError(c, err, "fallback")

	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestFromError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", ErrBusiness("invalid_date"), http.StatusBadRequest, "invalid_date"},
		{"not found", ErrNotFound("appointment_not_found"), http.StatusNotFound, "appointment_not_found"},
		{"configuration", ErrConfiguration("no_resolvable_hours"), http.StatusUnprocessableEntity, "no_resolvable_hours"},
		{"conflict wrapped", fmt.Errorf("create: %w", ErrConflict("slot_taken")), http.StatusConflict, "slot_taken"},
		{"forbidden", ErrForbidden(), http.StatusForbidden, CodeForbidden},
		{"transition", ErrInvalidTransition("completed", "canceled"), http.StatusUnprocessableEntity, "invalid_transition"},
		{"storage", errors.New("connection reset"), http.StatusInternalServerError, "fallback"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, body := render(t, tc.err)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

func TestFromErrorConflictIsRetryable(t *testing.T) {
	// horário ocupado e horário que saiu da grade (passado) pedem nova escolha
	for _, code := range []string{"slot_taken", "slot_unavailable"} {
		w, body := render(t, ErrConflict(code))
		assert.Equal(t, http.StatusConflict, w.Code, code)
		assert.Equal(t, code, body.Code)
		assert.True(t, body.Retryable, code)
	}
}

func TestFromErrorCapacityListsProfessionals(t *testing.T) {
	err := CapacityEnforcementError{ProfessionalIDs: []uint{3, 7}, Err: errors.New("redis down")}
	w, body := render(t, err)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, []uint{3, 7}, body.IDs)
	assert.ErrorContains(t, err, "redis down")
}

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "ux_appointments_active_slot"}
	wrapped := fmt.Errorf("insert: %w", pgErr)

	assert.True(t, IsUniqueViolation(wrapped, "ux_appointments_active_slot"))
	assert.True(t, IsUniqueViolation(wrapped, ""))
	assert.False(t, IsUniqueViolation(wrapped, "ux_clients_tenant_phone"))
	assert.False(t, IsUniqueViolation(errors.New("boom"), ""))
}
