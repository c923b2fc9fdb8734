package commission

import (
	"time"

	"github.com/BruksfildServices01/agenda-pro/internal/timezone"
)

type WindowKind string

const (
	WindowToday      WindowKind = "today"
	WindowWeek       WindowKind = "week"
	WindowMonth      WindowKind = "month"
	WindowTrailing30 WindowKind = "last_30_days"
)

// Window é um intervalo fechado de datas locais da loja ("2006-01-02").
type Window struct {
	Kind WindowKind `json:"kind"`
	From string     `json:"from"`
	To   string     `json:"to"`
}

func (w Window) Contains(date string) bool {
	return date >= w.From && date <= w.To
}

// WindowFor calcula os limites a partir de `now` já convertido para o
// fuso da loja. Usar UTC aqui desloca a virada do dia.
func WindowFor(kind WindowKind, localNow time.Time) (Window, bool) {
	today := timezone.StartOfDay(localNow)

	var from, to time.Time
	switch kind {
	case WindowToday:
		from, to = today, today
	case WindowWeek:
		// semana começa na segunda
		offset := (int(today.Weekday()) + 6) % 7
		from = today.AddDate(0, 0, -offset)
		to = from.AddDate(0, 0, 6)
	case WindowMonth:
		from = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		to = from.AddDate(0, 1, -1)
	case WindowTrailing30:
		from = today.AddDate(0, 0, -29)
		to = today
	default:
		return Window{}, false
	}

	return Window{
		Kind: kind,
		From: timezone.FormatDate(from),
		To:   timezone.FormatDate(to),
	}, true
}

func ParseWindowKind(s string) (WindowKind, bool) {
	k := WindowKind(s)
	_, ok := WindowFor(k, time.Now())
	return k, ok
}
