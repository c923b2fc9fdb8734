package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (s *recordingSink) Publish(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func TestDispatcherDeliversInOrder(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, zap.NewNop(), 10)

	now := time.Now()
	d.Emit(New(AppointmentCreated, 1, now))
	d.Emit(New(AppointmentStatusChanged, 1, now))
	d.Close()

	assert.Len(t, sink.events, 2)
	assert.Equal(t, AppointmentCreated, sink.events[0].Type)
	assert.NotEmpty(t, sink.events[0].ID)
	assert.NotEqual(t, sink.events[0].ID, sink.events[1].ID)
}

func TestDispatcherSurvivesSinkErrors(t *testing.T) {
	sink := &recordingSink{err: errors.New("redis down")}
	d := NewDispatcher(sink, zap.NewNop(), 10)

	d.Emit(New(AppointmentCreated, 1, time.Now()))
	d.Emit(New(AppointmentCreated, 1, time.Now()))
	d.Close()

	assert.Len(t, sink.events, 2)
}

func TestNilDispatcherIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Emit(New(AppointmentCreated, 1, time.Now())) })
}
