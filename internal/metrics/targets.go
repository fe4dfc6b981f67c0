package metrics

import (
	"time"

	"github.com/provinciareal/dashboard/internal/entity"
	"github.com/shopspring/decimal"
)

// Targets are the business goals the cockpit and progress sections compare against.
type Targets struct {
	ROAS           float64 `mapstructure:"roas"`
	AOV            float64 `mapstructure:"aov"`
	NetMarginPct   float64 `mapstructure:"net_margin"`
	LtvCac         float64 `mapstructure:"ltv_cac"`
	ConversionRate float64 `mapstructure:"conversion"`
	GatewayFeePct  float64 `mapstructure:"gateway_fee_pct"`
	DailyRevenue   float64 `mapstructure:"daily_revenue"`
	DailyProfit    float64 `mapstructure:"daily_profit"`
	// AmberFraction is the share of a target below which a cockpit row turns red.
	AmberFraction float64 `mapstructure:"amber_fraction"`
}

func DefaultTargets() Targets {
	return Targets{
		ROAS:           4.0,
		AOV:            100,
		NetMarginPct:   25,
		LtvCac:         3.0,
		ConversionRate: 3.0,
		GatewayFeePct:  3.3,
		DailyRevenue:   5000,
		DailyProfit:    1000,
		AmberFraction:  0.8,
	}
}

// TargetProgress compares current against target when elapsed (0..1) of the
// period has passed.
func TargetProgress(current, target, elapsed decimal.Decimal) entity.TargetProgress {
	remaining := target.Sub(current)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	expected := target.Mul(elapsed)
	return entity.TargetProgress{
		Current:    round(current),
		Target:     round(target),
		Percentage: round(safeDiv(current, target).Mul(hundred)),
		Remaining:  round(remaining),
		Expected:   round(expected),
		OnPace:     current.GreaterThanOrEqual(expected),
		Met:        target.IsPositive() && current.GreaterThanOrEqual(target),
	}
}

// elapsedFraction is how much of period has passed at now, clamped to [0, 1].
func elapsedFraction(period entity.TimeRange, now time.Time) decimal.Decimal {
	switch {
	case !now.After(period.From):
		return decimal.Zero
	case !now.Before(period.To):
		return decimal.NewFromInt(1)
	}
	span := period.To.Sub(period.From)
	return decimal.NewFromInt(int64(now.Sub(period.From))).Div(decimal.NewFromInt(int64(span)))
}

// periodDays counts the calendar days a period spans, at least one.
func periodDays(period entity.TimeRange) int64 {
	d := int64(period.To.Sub(period.From)/(24*time.Hour)) + 1
	if d < 1 {
		return 1
	}
	return d
}

func (e *Engine) targetsProgress(t totals, period entity.TimeRange, now time.Time) entity.TargetsProgress {
	days := decimal.NewFromInt(periodDays(period))
	elapsed := elapsedFraction(period, now)
	return entity.TargetsProgress{
		Revenue: TargetProgress(t.paid, decimal.NewFromFloat(e.targets.DailyRevenue).Mul(days), elapsed),
		Profit:  TargetProgress(t.netProfit, decimal.NewFromFloat(e.targets.DailyProfit).Mul(days), elapsed),
	}
}
