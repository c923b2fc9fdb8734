package audit

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-pro/internal/access"
)

type Event struct {
	TenantID uint
	UserID   *uint
	Actor    string
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// FromActor preenche tenant/usuário/papel a partir do ator.
func FromActor(actor access.Actor, action, entity string, entityID *uint) Event {
	ev := Event{
		TenantID: actor.TenantID,
		Actor:    string(actor.Role),
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
	}
	if actor.UserID != 0 {
		uid := actor.UserID
		ev.UserID = &uid
	}
	return ev
}

type Dispatcher struct {
	store  Store
	logger *zap.Logger
	queue  chan Event
	done   chan struct{}
	once   sync.Once
}

func NewDispatcher(store Store, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		store:  store,
		logger: logger,
		queue:  make(chan Event, 100), // buffer seguro
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.store.Log(context.Background(), ev); err != nil {
			d.logger.Error("audit error", zap.String("action", ev.Action), zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		d.logger.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

func (d *Dispatcher) Close() {
	d.once.Do(func() { close(d.queue) })
	<-d.done
}
