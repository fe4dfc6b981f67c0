package timezone

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	gerr "github.com/provinciareal/dashboard/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frozen(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestParseZone(t *testing.T) {
	z, err := ParseZone("la", BR)
	require.NoError(t, err)
	assert.Equal(t, LA, z)

	z, err = ParseZone("", BR)
	require.NoError(t, err)
	assert.Equal(t, BR, z)

	_, err = ParseZone("NY", BR)
	assert.ErrorIs(t, err, gerr.ErrInvalidTimezone)
}

func TestTodayRangeLA(t *testing.T) {
	// 2026-02-20 03:00 UTC is still 2026-02-19 in Los Angeles.
	n := New(BR).WithClock(frozen(time.Date(2026, 2, 20, 3, 0, 0, 0, time.UTC)))

	r := n.TodayRange(LA)
	assert.Equal(t, time.Date(2026, 2, 19, 8, 0, 0, 0, time.UTC), r.Start.UTC())
	assert.Equal(t, time.Date(2026, 2, 20, 7, 59, 59, int(999*time.Millisecond), time.UTC), r.End.UTC())
}

func TestTodayRangeBR(t *testing.T) {
	n := New(BR).WithClock(frozen(time.Date(2026, 2, 20, 3, 0, 0, 0, time.UTC)))

	r := n.TodayRange(BR)
	assert.Equal(t, time.Date(2026, 2, 20, 3, 0, 0, 0, time.UTC), r.Start.UTC())
	assert.Equal(t, time.Date(2026, 2, 21, 2, 59, 59, int(999*time.Millisecond), time.UTC), r.End.UTC())
}

func TestToZone(t *testing.T) {
	now := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)
	n := New(BR).WithClock(frozen(now))

	tests := []struct {
		name string
		ts   string
		zone Zone
		want time.Time
	}{
		{"rfc3339 utc", "2026-02-20T02:59:59Z", BR, time.Date(2026, 2, 20, 2, 59, 59, 0, time.UTC)},
		{"storefront offset", "2026-02-19T23:59:59-0300", LA, time.Date(2026, 2, 20, 2, 59, 59, 0, time.UTC)},
		{"no offset read in source zone", "2026-02-19 23:59:59", LA, time.Date(2026, 2, 20, 2, 59, 59, 0, time.UTC)},
		{"empty falls back to now", "", LA, now},
		{"garbage falls back to now", "yesterday-ish", BR, now},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.ToZone(tt.ts, tt.zone)
			assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
			_, off := got.Zone()
			assert.Equal(t, int(tt.zone.Offset().Seconds()), off)
		})
	}
}

func TestLateEveningCrossesDay(t *testing.T) {
	n := New(BR)
	// 23:59:59 in São Paulo is 18:59:59 the same day in Los Angeles,
	// but 23:59:59 in Los Angeles is already the next day in São Paulo.
	laLate := n.ToZone("2026-02-19T23:59:59-08:00", BR)
	assert.Equal(t, 20, laLate.Day())

	brLate := n.ToZone("2026-02-19T23:59:59-03:00", LA)
	assert.Equal(t, 19, brLate.Day())
}

func TestDateRange(t *testing.T) {
	r, err := DateRange("2026-02-01", "2026-02-03", LA)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC), r.Start.UTC())
	assert.Equal(t, time.Date(2026, 2, 4, 7, 59, 59, int(999*time.Millisecond), time.UTC), r.End.UTC())
	assert.Equal(t, []string{"2026-02-01", "2026-02-02", "2026-02-03"}, r.Dates(LA))

	_, err = DateRange("2026-02-03", "2026-02-01", LA)
	assert.ErrorIs(t, err, gerr.ErrInvalidPeriod)

	_, err = DateRange("02/01/2026", "2026-02-01", LA)
	assert.ErrorIs(t, err, gerr.ErrInvalidPeriod)
}

func TestDayRangesTileTheTimeline(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	for _, z := range []Zone{LA, BR} {
		z := z
		properties.Property(string(z)+" day ranges are contiguous and span 24h", prop.ForAll(
			func(sec int64) bool {
				r := DayRange(time.Unix(sec, 0), z)
				next := DayRange(r.End.Add(time.Millisecond), z)
				return r.End.Sub(r.Start) == 24*time.Hour-time.Millisecond &&
					next.Start.Equal(r.End.Add(time.Millisecond)) &&
					!time.Unix(sec, 0).Before(r.Start) && !time.Unix(sec, 0).After(r.End)
			},
			gen.Int64Range(0, 4102444800),
		))
	}

	properties.TestingRun(t)
}
