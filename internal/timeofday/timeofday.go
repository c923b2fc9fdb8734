package timeofday

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// TimeOfDay são minutos desde a meia-noite, no fuso local da loja.
type TimeOfDay int

const (
	Midnight TimeOfDay = 0
	EndOfDay TimeOfDay = 24 * 60
)

var ErrInvalid = errors.New("invalid time of day")

// Parse aceita "HH:MM" (24h).
func Parse(hm string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalid, hm)
	}
	return New(t.Hour(), t.Minute()), nil
}

func MustParse(hm string) TimeOfDay {
	t, err := Parse(hm)
	if err != nil {
		panic(err)
	}
	return t
}

func New(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// Of extrai o horário de t no próprio fuso de t.
func Of(t time.Time) TimeOfDay {
	return New(t.Hour(), t.Minute())
}

func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// On combina a data de day com o horário, no fuso de day.
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location())
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Set de horários (ex.: horários já ocupados).
type Set map[TimeOfDay]struct{}

func NewSet(times ...TimeOfDay) Set {
	s := make(Set, len(times))
	for _, t := range times {
		s[t] = struct{}{}
	}
	return s
}

func (s Set) Has(t TimeOfDay) bool {
	_, ok := s[t]
	return ok
}

// Sorted devolve os horários em ordem crescente.
func (s Set) Sorted() []TimeOfDay {
	out := make([]TimeOfDay, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}
