package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/provinciareal/dashboard/internal/entity"
	gerr "github.com/provinciareal/dashboard/internal/errors"
	"github.com/provinciareal/dashboard/internal/timezone"
)

// Period presets accepted by Query.Preset.
const (
	PresetToday     = "today"
	PresetYesterday = "yesterday"
	PresetLast7     = "last7"
	PresetLast30    = "last30"
	PresetMonth     = "month"
)

var presetLabels = map[string]string{
	PresetToday:     "Hoje",
	PresetYesterday: "Ontem",
	PresetLast7:     "Últimos 7 dias",
	PresetLast30:    "Últimos 30 dias",
	PresetMonth:     "Este mês",
}

// Query selects the period and display timezone of a dashboard request.
// Explicit dates win over Preset; with neither the period is today.
type Query struct {
	From     string
	To       string
	Preset   string
	Timezone string
}

// resolve turns q into a concrete period observed in the returned zone.
func (s *Service) resolve(q Query) (entity.TimeRange, timezone.Zone, error) {
	zone, err := timezone.ParseZone(q.Timezone, s.zone)
	if err != nil {
		return entity.TimeRange{}, "", err
	}

	from, to := strings.TrimSpace(q.From), strings.TrimSpace(q.To)
	if from != "" || to != "" {
		if from == "" {
			return entity.TimeRange{}, "", fmt.Errorf("%w: to given without from", gerr.ErrInvalidPeriod)
		}
		if to == "" {
			to = from
		}
		r, err := timezone.DateRange(from, to, zone)
		if err != nil {
			return entity.TimeRange{}, "", err
		}
		label := from
		if to != from {
			label = from + " a " + to
		}
		return entity.TimeRange{From: r.Start, To: r.End, Label: label}, zone, nil
	}

	preset := strings.ToLower(strings.TrimSpace(q.Preset))
	if preset == "" {
		preset = PresetToday
	}
	label, ok := presetLabels[preset]
	if !ok {
		return entity.TimeRange{}, "", fmt.Errorf("%w: unknown preset %q", gerr.ErrInvalidPeriod, q.Preset)
	}

	now := s.tz.Now()
	today := timezone.DayRange(now, zone)
	var r timezone.Range
	switch preset {
	case PresetToday:
		r = today
	case PresetYesterday:
		r = timezone.DayRange(today.Start.Add(-time.Hour), zone)
	case PresetLast7:
		r = timezone.Range{Start: today.Start.AddDate(0, 0, -6), End: today.End}
	case PresetLast30:
		r = timezone.Range{Start: today.Start.AddDate(0, 0, -29), End: today.End}
	case PresetMonth:
		start := time.Date(today.Start.Year(), today.Start.Month(), 1, 0, 0, 0, 0, zone.Location())
		r = timezone.Range{Start: start, End: today.End}
	}
	return entity.TimeRange{From: r.Start, To: r.End, Label: label}, zone, nil
}
