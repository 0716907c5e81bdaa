package relevance

import (
	"fmt"
	"time"

	"github.com/kwarula/discover-diani-explorer-sub001/internal/models"
)

// ParseClock acepta "HH:MM:SS" (y "HH:MM" como cortesía) como hora del día.
func ParseClock(value string) (time.Time, error) {
	layouts := []string{"15:04:05", "15:04"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time format: %s", value)
}

// Matches decide si un POI es relevante para la hora dada y los tags
// requeridos. Semántica del procedimiento:
//   - sin horario (opening/closing nil) el POI se considera siempre visitable
//   - la ventana es inclusiva en ambos extremos
//   - closing < opening se interpreta como ventana nocturna (cruza medianoche)
//   - todos los required tags deben estar en activity_tags
func Matches(poi models.PointOfInterest, now time.Time, requiredTags []string) bool {
	if !withinWindow(poi.OpeningTime, poi.ClosingTime, now) {
		return false
	}
	return hasAllTags(poi.ActivityTags, requiredTags)
}

func withinWindow(opening, closing *string, now time.Time) bool {
	if opening == nil || closing == nil {
		return true
	}
	from, errFrom := ParseClock(*opening)
	to, errTo := ParseClock(*closing)
	if errFrom != nil || errTo != nil {
		// horario malformado en el store: mejor excluirlo que inventar ventana
		return false
	}

	current := clockOf(now)
	start := clockOf(from)
	end := clockOf(to)

	if end.Before(start) {
		end = end.Add(24 * time.Hour)
		if current.Before(start) {
			current = current.Add(24 * time.Hour)
		}
	}
	return !current.Before(start) && !current.After(end)
}

// clockOf normaliza a una fecha fija para comparar solo horas del día.
func clockOf(t time.Time) time.Time {
	return time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

func hasAllTags(available, required []string) bool {
	if len(required) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(available))
	for _, tag := range available {
		set[tag] = struct{}{}
	}
	for _, tag := range required {
		if _, ok := set[tag]; !ok {
			return false
		}
	}
	return true
}
