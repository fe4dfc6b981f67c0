// Package timezone projects source timestamps into the two dashboard zones and
// computes calendar-day boundaries in them using fixed UTC offsets.
package timezone

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	gerr "github.com/provinciareal/dashboard/internal/errors"
)

// Zone is a dashboard display timezone.
type Zone string

const (
	// LA is Los Angeles, where the ad account reports, at UTC-8.
	LA Zone = "LA"
	// BR is São Paulo, where the storefront reports, at UTC-3.
	BR Zone = "BR"
)

var zones = map[Zone]struct {
	offset int
	label  string
}{
	LA: {offset: -8, label: "Los Angeles • UTC-8"},
	BR: {offset: -3, label: "São Paulo • UTC-3"},
}

// ParseZone accepts "LA" or "BR" in any case. An empty string yields def.
func ParseZone(s string, def Zone) (Zone, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return def, nil
	}
	z := Zone(s)
	if _, ok := zones[z]; !ok {
		return "", fmt.Errorf("%w: %q", gerr.ErrInvalidTimezone, s)
	}
	return z, nil
}

// Offset is the zone's fixed distance from UTC.
func (z Zone) Offset() time.Duration {
	return time.Duration(zones[z].offset) * time.Hour
}

// Location returns a fixed-offset location, independent of the tz database.
func (z Zone) Location() *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%d", zones[z].offset), zones[z].offset*3600)
}

func (z Zone) Label() string {
	return zones[z].label
}

func (z Zone) Valid() bool {
	_, ok := zones[z]
	return ok
}

// Range is an inclusive [Start, End] pair of instants.
type Range struct {
	Start time.Time
	End   time.Time
}

// layouts accepted for source timestamps, tried in order. Layouts without an
// offset are read in the normalizer's source zone.
var layouts = []struct {
	layout    string
	hasOffset bool
}{
	{time.RFC3339Nano, true},
	{"2006-01-02T15:04:05-0700", true},
	{"2006-01-02T15:04:05.000-0700", true},
	{"2006-01-02 15:04:05-07:00", true},
	{"2006-01-02 15:04:05-07", true},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02 15:04:05", false},
	{"2006-01-02", false},
}

// Normalizer reads source timestamps and projects them into display zones.
type Normalizer struct {
	source Zone
	now    func() time.Time
}

// New returns a normalizer reading offset-less timestamps in source.
func New(source Zone) *Normalizer {
	return &Normalizer{source: source, now: time.Now}
}

// WithClock returns a copy using now as the current instant.
func (n *Normalizer) WithClock(now func() time.Time) *Normalizer {
	return &Normalizer{source: n.source, now: now}
}

func (n *Normalizer) Now() time.Time {
	return n.now()
}

// ToZone parses ts and returns the same instant with z's wall clock. An empty
// or unparseable timestamp logs a warning and yields the current instant.
func (n *Normalizer) ToZone(ts string, z Zone) time.Time {
	t, err := n.Parse(ts)
	if err != nil {
		slog.Default().WarnContext(context.Background(), "can't parse timestamp, using now",
			slog.String("timestamp", ts),
			slog.String("err", err.Error()),
		)
		t = n.now()
	}
	return t.In(z.Location())
}

// Parse reads ts in one of the accepted layouts.
func (n *Normalizer) Parse(ts string) (time.Time, error) {
	ts = strings.TrimSpace(ts)
	if ts == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, l := range layouts {
		if l.hasOffset {
			if t, err := time.Parse(l.layout, ts); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.ParseInLocation(l.layout, ts, n.source.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unknown timestamp format %q", ts)
}

// TodayRange bounds the current calendar day in z.
func (n *Normalizer) TodayRange(z Zone) Range {
	return DayRange(n.now(), z)
}

// DayRange bounds the calendar day, as observed in z, that contains t:
// 00:00:00.000 to 23:59:59.999 zone-local.
func DayRange(t time.Time, z Zone) Range {
	local := t.In(z.Location())
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, z.Location())
	return Range{
		Start: start,
		End:   start.Add(24*time.Hour - time.Millisecond),
	}
}

// DateRange bounds the calendar dates from..to (inclusive, YYYY-MM-DD) in z.
func DateRange(from, to string, z Zone) (Range, error) {
	f, err := time.ParseInLocation(time.DateOnly, from, z.Location())
	if err != nil {
		return Range{}, fmt.Errorf("%w: bad from date %q", gerr.ErrInvalidPeriod, from)
	}
	t, err := time.ParseInLocation(time.DateOnly, to, z.Location())
	if err != nil {
		return Range{}, fmt.Errorf("%w: bad to date %q", gerr.ErrInvalidPeriod, to)
	}
	if t.Before(f) {
		return Range{}, fmt.Errorf("%w: %s is before %s", gerr.ErrInvalidPeriod, to, from)
	}
	return Range{Start: f, End: t.Add(24*time.Hour - time.Millisecond)}, nil
}

// Dates lists the calendar dates (YYYY-MM-DD) in z touched by r.
func (r Range) Dates(z Zone) []string {
	var out []string
	d := DayRange(r.Start, z).Start
	for !d.After(r.End) {
		out = append(out, d.Format(time.DateOnly))
		d = d.AddDate(0, 0, 1)
	}
	return out
}
