package metrics

import (
	"math"
	"time"

	"github.com/provinciareal/dashboard/internal/entity"
	"github.com/shopspring/decimal"
)

// ComputeRetention summarizes per-customer lifetime records as of now.
//
// Average recency divides by every customer, including those without a last
// order date, which contribute nothing to the sum.
func ComputeRetention(records []entity.CustomerLifetime, now time.Time) entity.RetentionMetrics {
	out := entity.RetentionMetrics{
		AvgLtv:         decimal.Zero,
		RetentionRate:  decimal.Zero,
		ChurnRate:      decimal.Zero,
		AvgFrequency:   decimal.Zero,
		AvgRecencyDays: decimal.Zero,
	}
	n := len(records)
	if n == 0 {
		return out
	}

	revenue := decimal.Zero
	repeat, repeatOrders := 0, 0
	var recencyDays int64
	for _, r := range records {
		revenue = revenue.Add(r.LifetimeRevenue)
		if r.OrderCount > 1 {
			repeat++
			repeatOrders += r.OrderCount
		}
		if r.LastOrderAt != nil {
			recencyDays += int64(math.Floor(now.Sub(*r.LastOrderAt).Hours() / 24))
		}
	}

	total := decimal.NewFromInt(int64(n))
	retention := pct(repeat, n)

	out.TotalCustomers = n
	out.RepeatCustomers = repeat
	out.AvgLtv = round(revenue.Div(total))
	out.RetentionRate = round(retention)
	out.ChurnRate = round(hundred.Sub(retention))
	if repeat > 0 {
		out.AvgFrequency = round(decimal.NewFromInt(int64(repeatOrders)).Div(decimal.NewFromInt(int64(repeat))))
	}
	out.AvgRecencyDays = round(decimal.NewFromInt(recencyDays).Div(total))
	return out
}
