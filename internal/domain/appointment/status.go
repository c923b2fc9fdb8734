package appointment

import (
	"slices"

	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

type transition struct {
	From Status
	To   Status
}

var validTransitions = map[transition]bool{
	{StatusPending, StatusConfirmed}:   true,
	{StatusPending, StatusCanceled}:    true,
	{StatusConfirmed, StatusCompleted}: true,
	{StatusConfirmed, StatusCanceled}:  true,
}

// ===============================
// Validations
// ===============================

// ParseStatus aceita apenas a grafia canônica.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled:
		return st, nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// OccupiesSlot: tudo que não é cancelado segura o horário.
func (s Status) OccupiesSlot() bool {
	return s != StatusCanceled
}

// CountsForCommission: só concluídos geram receita.
func (s Status) CountsForCommission() bool {
	return s == StatusCompleted
}

func CanTransition(from, to Status) error {
	if !validTransitions[transition{from, to}] {
		return httperr.ErrInvalidTransition(string(from), string(to))
	}
	return nil
}

// TransitionsFrom lista os destinos válidos, em ordem estável.
func TransitionsFrom(from Status) []Status {
	out := make([]Status, 0, 2)
	for t := range validTransitions {
		if t.From == from {
			out = append(out, t.To)
		}
	}
	slices.Sort(out)
	return out
}

func InitialStatus() Status {
	return StatusPending
}
