package metrics

import (
	"testing"
	"time"

	"github.com/provinciareal/dashboard/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestTargetProgress(t *testing.T) {
	p := TargetProgress(dec("2500"), dec("5000"), dec("0.25"))
	assertDec(t, "50", p.Percentage)
	assertDec(t, "2500", p.Remaining)
	assertDec(t, "1250", p.Expected)
	assert.True(t, p.OnPace)
	assert.False(t, p.Met)

	p = TargetProgress(dec("6000"), dec("5000"), dec("1"))
	assertDec(t, "0", p.Remaining)
	assert.True(t, p.Met)

	p = TargetProgress(dec("10"), dec("0"), dec("0.5"))
	assertDec(t, "0", p.Percentage)
	assert.False(t, p.Met)
}

func TestElapsedFraction(t *testing.T) {
	from := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	period := entity.TimeRange{From: from, To: from.Add(24 * time.Hour)}

	assertDec(t, "0", elapsedFraction(period, from.Add(-time.Hour)))
	assertDec(t, "0.5", elapsedFraction(period, from.Add(12*time.Hour)))
	assertDec(t, "1", elapsedFraction(period, from.Add(48*time.Hour)))
}

func TestPeriodDays(t *testing.T) {
	from := time.Date(2026, 2, 1, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(1), periodDays(entity.TimeRange{From: from, To: from.Add(24*time.Hour - time.Millisecond)}))
	assert.Equal(t, int64(7), periodDays(entity.TimeRange{From: from, To: from.Add(7*24*time.Hour - time.Millisecond)}))
}
