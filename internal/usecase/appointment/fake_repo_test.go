package appointment

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/events"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

var _ domain.Repository = (*fakeRepo)(nil)

// fakeRepo reproduz em memória o índice único de horário ativo.
type fakeRepo struct {
	mu sync.Mutex

	tenants       map[uint]*models.Tenant
	professionals map[uint]*models.Professional
	services      map[uint]*models.Service
	overrides     map[string]*models.AvailabilityOverride
	clients       map[uint]*models.Client
	appointments  map[uint]*models.Appointment

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		tenants:       map[uint]*models.Tenant{},
		professionals: map[uint]*models.Professional{},
		services:      map[uint]*models.Service{},
		overrides:     map[string]*models.AvailabilityOverride{},
		clients:       map[uint]*models.Client{},
		appointments:  map[uint]*models.Appointment{},
		nextID:        100,
	}
}

func strPtr(s string) *string { return &s }

// seed: loja 1 (seg-sáb 09-18), profissional 10, serviço 20 de 30min.
// Loja 2 com profissional 11 para testes de isolamento.
func seed() *fakeRepo {
	r := newFakeRepo()
	r.tenants[1] = &models.Tenant{
		ID:       1,
		Slug:     "studio",
		Timezone: "America/Sao_Paulo",
		OperatingDays: models.FormatOperatingDays(
			time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		),
		OpenTime:  strPtr("09:00"),
		CloseTime: strPtr("18:00"),
	}
	r.tenants[2] = &models.Tenant{ID: 2, Slug: "other", Timezone: "UTC"}
	r.professionals[10] = &models.Professional{ID: 10, TenantID: 1, Name: "Ana", Active: true}
	r.professionals[11] = &models.Professional{ID: 11, TenantID: 2, Name: "Bia", Active: true}
	r.services[20] = &models.Service{
		ID: 20, TenantID: 1, Name: "Corte", DurationMin: 30,
		Price: decimal.RequireFromString("50.00"), Active: true,
	}
	return r
}

func (r *fakeRepo) id() uint {
	r.nextID++
	return r.nextID
}

func (r *fakeRepo) GetTenantByID(_ context.Context, id uint) (*models.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tenants[id]; ok {
		return t, nil
	}
	return nil, httperr.ErrNotFound("tenant_not_found")
}

func (r *fakeRepo) GetTenantBySlug(_ context.Context, slug string) (*models.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tenants {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, httperr.ErrNotFound("tenant_not_found")
}

func (r *fakeRepo) GetProfessional(_ context.Context, tenantID, id uint) (*models.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.professionals[id]; ok && p.TenantID == tenantID {
		return p, nil
	}
	return nil, httperr.ErrNotFound("professional_not_found")
}

func (r *fakeRepo) GetService(_ context.Context, tenantID, id uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.services[id]; ok && s.TenantID == tenantID {
		return s, nil
	}
	return nil, httperr.ErrNotFound("service_not_found")
}

func overrideKey(professionalID uint, date string) string {
	return fmt.Sprintf("%d#%s", professionalID, date)
}

func (r *fakeRepo) GetOverride(_ context.Context, professionalID uint, date string) (*models.AvailabilityOverride, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.overrides[overrideKey(professionalID, date)], nil
}

func (r *fakeRepo) UpsertOverride(_ context.Context, ov *models.AvailabilityOverride) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overrides[overrideKey(ov.ProfessionalID, ov.Date)] = ov
	return nil
}

func (r *fakeRepo) DeleteOverride(_ context.Context, professionalID uint, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.overrides, overrideKey(professionalID, date))
	return nil
}

func (r *fakeRepo) ListBookedTimes(_ context.Context, professionalID uint, date string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, ap := range r.appointments {
		if ap.ProfessionalID == professionalID && ap.Date == date &&
			domain.Status(ap.Status).OccupiesSlot() {
			out = append(out, ap.StartTime)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *fakeRepo) GetOrCreateClient(_ context.Context, tenantID uint, name, phone string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.clients {
		if c.TenantID == tenantID && c.Phone == phone {
			return c, nil
		}
	}
	c := &models.Client{ID: r.id(), TenantID: tenantID, Name: name, Phone: phone}
	r.clients[c.ID] = c
	return c, nil
}

func (r *fakeRepo) FindClientByPhone(_ context.Context, tenantID uint, phone string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.clients {
		if c.TenantID == tenantID && c.Phone == phone {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, other := range r.appointments {
		if other.ProfessionalID == ap.ProfessionalID &&
			other.Date == ap.Date &&
			other.StartTime == ap.StartTime &&
			domain.Status(other.Status).OccupiesSlot() {
			return httperr.ErrConflict("slot_taken")
		}
	}
	ap.ID = r.id()
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

// preload preenche as associações como o Preload do gorm. Chamar com mu travado.
func (r *fakeRepo) preload(ap models.Appointment) models.Appointment {
	if s, ok := r.services[ap.ServiceID]; ok {
		ap.Service = *s
	}
	if c, ok := r.clients[ap.ClientID]; ok {
		ap.Client = *c
	}
	if p, ok := r.professionals[ap.ProfessionalID]; ok {
		ap.Professional = *p
	}
	return ap
}

func (r *fakeRepo) GetAppointment(_ context.Context, tenantID, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ap, ok := r.appointments[id]; ok && ap.TenantID == tenantID {
		cp := r.preload(*ap)
		return &cp, nil
	}
	return nil, httperr.ErrNotFound("appointment_not_found")
}

func (r *fakeRepo) UpdateAppointmentStatus(_ context.Context, ap *models.Appointment, from domain.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.appointments[ap.ID]
	if !ok {
		return httperr.ErrNotFound("appointment_not_found")
	}
	if stored.Status != string(from) {
		return httperr.ErrConflict("status_changed")
	}
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) ListAppointmentsForPeriod(_ context.Context, tenantID, professionalID uint, from, to string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.TenantID != tenantID || ap.Date < from || ap.Date > to {
			continue
		}
		if professionalID != 0 && ap.ProfessionalID != professionalID {
			continue
		}
		out = append(out, r.preload(*ap))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeRepo) ListClientAppointments(_ context.Context, tenantID, clientID uint, from string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.TenantID == tenantID && ap.ClientID == clientID && ap.Date >= from {
			out = append(out, r.preload(*ap))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// captura eventos emitidos
type recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recorder) Emit(ev events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) types() []events.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.Type, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Type)
	}
	return out
}
