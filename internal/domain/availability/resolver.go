package availability

import (
	"time"

	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
	"github.com/BruksfildServices01/agenda-pro/internal/timeofday"
)

// Input do resolvedor. Date é a meia-noite local da loja; Now é o
// instante atual (qualquer fuso).
type Input struct {
	Tenant      *models.Tenant
	Override    *models.AvailabilityOverride
	Date        time.Time
	DurationMin int
	Now         time.Time
}

type Window struct {
	Start timeofday.TimeOfDay
	End   timeofday.TimeOfDay
}

// ResolveWindow decide o expediente do profissional na data.
// open=false significa folga (override com available=false).
func ResolveWindow(tenant *models.Tenant, override *models.AvailabilityOverride) (w Window, open bool, err error) {
	if override != nil {
		if !override.Available {
			return Window{}, false, nil
		}
		// override sem horário completo cai no padrão da loja
		if override.StartTime != nil && override.EndTime != nil {
			w, err = parseWindow(*override.StartTime, *override.EndTime)
			return w, err == nil, err
		}
	}

	if tenant.OpenTime == nil || tenant.CloseTime == nil {
		return Window{}, false, httperr.ErrConfiguration("no_resolvable_hours")
	}

	w, err = parseWindow(*tenant.OpenTime, *tenant.CloseTime)
	return w, err == nil, err
}

func parseWindow(start, end string) (Window, error) {
	s, err := timeofday.Parse(start)
	if err != nil {
		return Window{}, httperr.ErrConfiguration("invalid_hours")
	}
	e, err := timeofday.Parse(end)
	if err != nil {
		return Window{}, httperr.ErrConfiguration("invalid_hours")
	}
	return Window{Start: s, End: e}, nil
}

// ResolveSlots gera os horários candidatos em ordem crescente.
// A grade usa a duração do serviço como passo; não existe grade fixa.
func ResolveSlots(in Input) ([]timeofday.TimeOfDay, error) {
	if in.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	slots := []timeofday.TimeOfDay{}

	if !in.Tenant.OperatesOn(in.Date.Weekday()) {
		return slots, nil
	}

	w, open, err := ResolveWindow(in.Tenant, in.Override)
	if err != nil {
		return nil, err
	}
	if !open || w.End <= w.Start {
		return slots, nil
	}

	cutoff := in.Now.Add(time.Duration(in.Tenant.MinAdvanceMinutes) * time.Minute)

	for cur := w.Start; cur.Add(in.DurationMin) <= w.End; cur = cur.Add(in.DurationMin) {
		if !cur.On(in.Date).After(cutoff) {
			continue
		}
		slots = append(slots, cur)
	}

	return slots, nil
}
