package capacity

import (
	"sort"

	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

// SurplusCount = max(0, active - limit). limit nil = ilimitado.
func SurplusCount(active int, limit *int) int {
	if limit == nil {
		return 0
	}
	if n := active - *limit; n > 0 {
		return n
	}
	return 0
}

// SelectSurplus escolhe os profissionais ativos mais antigos que
// excedem o limite (ordem de criação, id como desempate).
func SelectSurplus(active []models.Professional, limit *int) []models.Professional {
	n := SurplusCount(len(active), limit)
	if n == 0 {
		return nil
	}

	sorted := make([]models.Professional, len(active))
	copy(sorted, active)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	return sorted[:n]
}

func IDs(pros []models.Professional) []uint {
	ids := make([]uint, 0, len(pros))
	for _, p := range pros {
		ids = append(ids, p.ID)
	}
	return ids
}
