package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/agenda-pro/internal/access"
)

func TestIssueAndParse(t *testing.T) {
	raw, err := Issue("secret", 7, 3, access.RoleProfessional, 12, time.Now())
	require.NoError(t, err)

	actor, err := Parse("secret", raw)
	require.NoError(t, err)
	assert.Equal(t, access.Actor{Role: access.RoleProfessional, TenantID: 3, UserID: 7, ProfessionalID: 12}, actor)
}

func TestParseRejects(t *testing.T) {
	now := time.Now()

	good, err := Issue("secret", 1, 1, access.RoleOwner, 0, now)
	require.NoError(t, err)
	_, err = Parse("other", good)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := Issue("secret", 1, 1, access.RoleOwner, 0, now.Add(-48*time.Hour))
	require.NoError(t, err)
	_, err = Parse("secret", expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	system, err := Issue("secret", 1, 1, access.RoleSystem, 0, now)
	require.NoError(t, err)
	_, err = Parse("secret", system)
	assert.ErrorIs(t, err, ErrInvalidToken)

	pro, err := Issue("secret", 1, 1, access.RoleProfessional, 0, now)
	require.NoError(t, err)
	_, err = Parse("secret", pro)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = Parse("secret", "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
