package timezone

import (
	"time"

	"github.com/BruksfildServices01/agenda-pro/internal/models"
)

const DefaultTimezone = "America/Sao_Paulo"

const DateLayout = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ForTenant resolve o fuso oficial da loja
func ForTenant(t *models.Tenant) *time.Location {
	if t == nil {
		return Location("")
	}
	return Location(t.Timezone)
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// In converte now para o fuso da loja.
func In(t *models.Tenant, now time.Time) time.Time {
	return now.In(ForTenant(t))
}

// ParseDate interpreta "YYYY-MM-DD" como meia-noite local da loja.
func ParseDate(t *models.Tenant, date string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, ForTenant(t))
}

// StartOfDay devolve a meia-noite de t no fuso de t.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
