package availability

import "github.com/BruksfildServices01/agenda-pro/internal/timeofday"

type Slot struct {
	Start     timeofday.TimeOfDay `json:"start"`
	End       timeofday.TimeOfDay `json:"end"`
	Available bool                `json:"available"`
}

// Board cruza os horários resolvidos com os já ocupados.
func Board(slots []timeofday.TimeOfDay, booked timeofday.Set, durationMin int) []Slot {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		out = append(out, Slot{
			Start:     s,
			End:       s.Add(durationMin),
			Available: !booked.Has(s),
		})
	}
	return out
}
