package audit

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-pro/internal/access"
)

type memStore struct {
	mu     sync.Mutex
	events []Event
}

func (s *memStore) Log(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func TestDispatcherPersists(t *testing.T) {
	store := &memStore{}
	d := NewDispatcher(store, zap.NewNop())

	id := uint(42)
	actor := access.Actor{Role: access.RoleOwner, TenantID: 3, UserID: 7}
	d.Dispatch(FromActor(actor, "appointment_created", "appointment", &id))
	d.Close()

	require.Len(t, store.events, 1)
	ev := store.events[0]
	assert.Equal(t, uint(3), ev.TenantID)
	assert.Equal(t, "owner", ev.Actor)
	require.NotNil(t, ev.UserID)
	assert.Equal(t, uint(7), *ev.UserID)
	assert.Equal(t, &id, ev.EntityID)
}

func TestFromActorWithoutUser(t *testing.T) {
	ev := FromActor(access.Client(3, "5511999990000"), "appointment_canceled", "appointment", nil)
	assert.Nil(t, ev.UserID)
	assert.Equal(t, "client", ev.Actor)
}

func TestFilterNormalize(t *testing.T) {
	f := Filter{Page: 0, Limit: 500}.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, defaultPageSize, f.Limit)
	assert.Equal(t, 0, f.Offset())

	f = Filter{Page: 3, Limit: 20}.Normalize()
	assert.Equal(t, 40, f.Offset())
}
