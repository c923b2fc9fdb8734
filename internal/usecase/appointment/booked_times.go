package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/agenda-pro/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/timeofday"
	"github.com/BruksfildServices01/agenda-pro/internal/validators"
)

type BookedTimes struct {
	repo domain.Repository
}

func NewBookedTimes(repo domain.Repository) *BookedTimes {
	return &BookedTimes{repo: repo}
}

// Execute devolve os horários ocupados (status != canceled) do
// profissional na data.
func (uc *BookedTimes) Execute(
	ctx context.Context,
	tenantID uint,
	professionalID uint,
	date string,
) (timeofday.Set, error) {

	if !validators.IsDate(date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// garante que o profissional é da loja
	if _, err := uc.repo.GetProfessional(ctx, tenantID, professionalID); err != nil {
		return nil, err
	}

	raw, err := uc.repo.ListBookedTimes(ctx, professionalID, date)
	if err != nil {
		return nil, err
	}

	booked := make(timeofday.Set, len(raw))
	for _, hm := range raw {
		t, err := timeofday.Parse(hm)
		if err != nil {
			continue
		}
		booked[t] = struct{}{}
	}
	return booked, nil
}
