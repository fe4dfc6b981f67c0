package alerts

import (
	"testing"

	"github.com/provinciareal/dashboard/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cfg(id int, metric string, cond entity.AlertCondition, threshold string, sev entity.AlertSeverity) entity.AlertConfig {
	return entity.AlertConfig{
		Id: id,
		AlertConfigInsert: entity.AlertConfigInsert{
			Name:      metric,
			Metric:    metric,
			Condition: cond,
			Threshold: decimal.RequireFromString(threshold),
			Severity:  sev,
			Enabled:   true,
		},
	}
}

func testMetrics() *entity.DashboardMetrics {
	m := &entity.DashboardMetrics{
		ROAS: decimal.RequireFromString("1.5"),
		ROI:  decimal.RequireFromString("-12.34"),
	}
	m.Revenue.Paid = decimal.NewFromInt(300)
	m.Profit.Net = decimal.NewFromInt(-40)
	m.Costs.AdSpend = decimal.NewFromInt(200)
	m.Orders.Paid = 3
	m.Traction.AOV = decimal.NewFromInt(100)
	m.Profitability.NetMarginPct = decimal.RequireFromString("-13.33")
	return m
}

func TestEvaluate(t *testing.T) {
	configs := []entity.AlertConfig{
		cfg(1, MetricROAS, entity.AlertConditionLessThan, "2", entity.AlertSeverityWarning),
		cfg(2, MetricNetProfit, entity.AlertConditionLessThan, "0", entity.AlertSeverityCritical),
		cfg(3, MetricAdSpend, entity.AlertConditionGreaterThan, "500", entity.AlertSeverityCritical),
		cfg(4, MetricPaidOrders, entity.AlertConditionEquals, "3", entity.AlertSeverityInfo),
		cfg(5, "sessions", entity.AlertConditionGreaterThan, "0", entity.AlertSeverityInfo),
	}
	disabled := cfg(6, MetricAOV, entity.AlertConditionLessThan, "1000", entity.AlertSeverityCritical)
	disabled.Enabled = false
	configs = append(configs, disabled)

	r := Evaluate(configs, testMetrics())

	require.Equal(t, 3, r.Count)
	ids := []int{}
	for _, a := range r.Alerts {
		ids = append(ids, a.AlertId)
	}
	assert.Equal(t, []int{2, 1, 4}, ids)
	assert.Equal(t, "net_profit: net_profit = -40 (limite 0)", r.Alerts[0].Message)
	assert.True(t, decimal.RequireFromString("-13.33").Equal(r.Snapshot[MetricNetMarginPct]))
	assert.Len(t, r.Snapshot, 8)
}

func TestEvaluateRendersTemplate(t *testing.T) {
	c := cfg(1, MetricROAS, entity.AlertConditionLessThan, "2.5", entity.AlertSeverityWarning)
	c.MessageTemplate = "ROAS em {value}, abaixo da meta de {threshold}"

	r := Evaluate([]entity.AlertConfig{c}, testMetrics())
	require.Len(t, r.Alerts, 1)
	assert.Equal(t, "ROAS em 1.5, abaixo da meta de 2.5", r.Alerts[0].Message)
}

func TestEvaluateNothingFires(t *testing.T) {
	r := Evaluate(nil, &entity.DashboardMetrics{})
	assert.Equal(t, 0, r.Count)
	assert.NotNil(t, r.Alerts)
	assert.True(t, r.Snapshot[MetricPaidOrders].IsZero())
}

func TestEvaluateRendersMoney(t *testing.T) {
	c := cfg(1, MetricAdSpend, entity.AlertConditionGreaterThan, "1000", entity.AlertSeverityWarning)
	c.MessageTemplate = "Gasto {value_brl} acima de {threshold_brl}"
	m := testMetrics()
	m.Costs.AdSpend = decimal.RequireFromString("1234.5")

	r := Evaluate([]entity.AlertConfig{c}, m)
	require.Len(t, r.Alerts, 1)
	assert.Equal(t, "Gasto R$ 1.234,50 acima de R$ 1.000,00", r.Alerts[0].Message)
}
