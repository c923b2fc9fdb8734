package appointment

import (
	"context"

	"github.com/BruksfildServices01/agenda-pro/internal/domain/availability"
)

type AvailabilityResult struct {
	Date        string              `json:"date"`
	DurationMin int                 `json:"duration_min"`
	Slots       []availability.Slot `json:"slots"`
}

// GetAvailability monta o quadro de horários: resolvidos menos ocupados.
type GetAvailability struct {
	resolve *ResolveSlots
	booked  *BookedTimes
}

func NewGetAvailability(resolve *ResolveSlots, booked *BookedTimes) *GetAvailability {
	return &GetAvailability{resolve: resolve, booked: booked}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*AvailabilityResult, error) {

	res, err := uc.resolve.Execute(ctx, in)
	if err != nil {
		return nil, err
	}

	booked, err := uc.booked.Execute(ctx, in.TenantID, in.ProfessionalID, in.Date)
	if err != nil {
		return nil, err
	}

	return &AvailabilityResult{
		Date:        in.Date,
		DurationMin: res.Service.DurationMin,
		Slots:       availability.Board(res.Slots, booked, res.Service.DurationMin),
	}, nil
}
