// Package alerts checks configured thresholds against a dashboard result.
package alerts

import (
	"sort"
	"strings"

	"github.com/provinciareal/dashboard/internal/currency"
	"github.com/provinciareal/dashboard/internal/entity"
	"github.com/shopspring/decimal"
)

// Metric names an alert can watch.
const (
	MetricPaidRevenue  = "paid_revenue"
	MetricNetProfit    = "net_profit"
	MetricROAS         = "roas"
	MetricROI          = "roi"
	MetricAdSpend      = "ad_spend"
	MetricPaidOrders   = "paid_orders"
	MetricAOV          = "aov"
	MetricNetMarginPct = "net_margin_pct"
)

// Report is the outcome of one evaluation.
type Report struct {
	Alerts   []entity.ActiveAlert       `json:"alerts"`
	Count    int                        `json:"alerts_count"`
	Snapshot map[string]decimal.Decimal `json:"metrics_snapshot"`
}

// Snapshot extracts the watchable metric values from m.
func Snapshot(m *entity.DashboardMetrics) map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		MetricPaidRevenue:  m.Revenue.Paid,
		MetricNetProfit:    m.Profit.Net,
		MetricROAS:         m.ROAS,
		MetricROI:          m.ROI,
		MetricAdSpend:      m.Costs.AdSpend,
		MetricPaidOrders:   decimal.NewFromInt(int64(m.Orders.Paid)),
		MetricAOV:          m.Traction.AOV,
		MetricNetMarginPct: m.Profitability.NetMarginPct,
	}
}

var severityRank = map[entity.AlertSeverity]int{
	entity.AlertSeverityCritical: 0,
	entity.AlertSeverityWarning:  1,
	entity.AlertSeverityInfo:     2,
}

// Evaluate returns the enabled configs whose condition holds for m, most
// severe first. Configs watching an unknown metric never fire.
func Evaluate(configs []entity.AlertConfig, m *entity.DashboardMetrics) Report {
	snap := Snapshot(m)
	active := []entity.ActiveAlert{}

	for _, ac := range configs {
		if !ac.Enabled {
			continue
		}
		v, ok := snap[ac.Metric]
		if !ok || !holds(ac.Condition, v, ac.Threshold) {
			continue
		}
		active = append(active, entity.ActiveAlert{
			AlertId:   ac.Id,
			Name:      ac.Name,
			Metric:    ac.Metric,
			Severity:  ac.Severity,
			Value:     v,
			Threshold: ac.Threshold,
			Message:   render(&ac, v),
		})
	}

	sort.SliceStable(active, func(i, j int) bool {
		ri, rj := severityRank[active[i].Severity], severityRank[active[j].Severity]
		if ri != rj {
			return ri < rj
		}
		return active[i].AlertId < active[j].AlertId
	})

	return Report{
		Alerts:   active,
		Count:    len(active),
		Snapshot: snap,
	}
}

func holds(c entity.AlertCondition, v, threshold decimal.Decimal) bool {
	switch c {
	case entity.AlertConditionLessThan:
		return v.LessThan(threshold)
	case entity.AlertConditionGreaterThan:
		return v.GreaterThan(threshold)
	case entity.AlertConditionEquals:
		return v.Equal(threshold)
	default:
		return false
	}
}

func render(ac *entity.AlertConfig, v decimal.Decimal) string {
	tmpl := ac.MessageTemplate
	if strings.TrimSpace(tmpl) == "" {
		tmpl = ac.Name + ": " + ac.Metric + " = {value} (limite {threshold})"
	}
	return strings.NewReplacer(
		"{value_brl}", currency.Format(v, currency.BRL),
		"{threshold_brl}", currency.Format(ac.Threshold, currency.BRL),
		"{value}", currency.Round2(v).String(),
		"{threshold}", currency.Round2(ac.Threshold).String(),
	).Replace(tmpl)
}
