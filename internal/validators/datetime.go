package validators

import (
	"time"

	"github.com/BruksfildServices01/agenda-pro/internal/timeofday"
)

func IsDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func IsTimeOfDay(s string) bool {
	_, err := timeofday.Parse(s)
	return err == nil
}

// IsWindow: início estritamente antes do fim.
func IsWindow(start, end string) bool {
	s, err := timeofday.Parse(start)
	if err != nil {
		return false
	}
	e, err := timeofday.Parse(end)
	if err != nil {
		return false
	}
	return s < e
}
