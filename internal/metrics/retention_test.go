package metrics

import (
	"testing"
	"time"

	"github.com/provinciareal/dashboard/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestComputeRetentionRepeatCustomers(t *testing.T) {
	r := ComputeRetention([]entity.CustomerLifetime{
		{OrderCount: 3, LifetimeRevenue: dec("300")},
		{OrderCount: 1, LifetimeRevenue: dec("100")},
		{OrderCount: 1, LifetimeRevenue: dec("50")},
	}, testNow)

	assert.Equal(t, 3, r.TotalCustomers)
	assert.Equal(t, 1, r.RepeatCustomers)
	assertDec(t, "33.33", r.RetentionRate)
	assertDec(t, "66.67", r.ChurnRate)
	assertDec(t, "3", r.AvgFrequency)
	assertDec(t, "150", r.AvgLtv)
}

func TestComputeRetentionRecency(t *testing.T) {
	tenDays := testNow.Add(-10*24*time.Hour - time.Hour)
	twoDays := testNow.Add(-47 * time.Hour)

	r := ComputeRetention([]entity.CustomerLifetime{
		{OrderCount: 2, LifetimeRevenue: dec("10"), LastOrderAt: &tenDays},
		{OrderCount: 4, LifetimeRevenue: dec("10"), LastOrderAt: &twoDays},
		{OrderCount: 1, LifetimeRevenue: dec("10")},
	}, testNow)

	// (10 + 1) / 3: the customer without a last order only widens the denominator.
	assertDec(t, "3.67", r.AvgRecencyDays)
	assertDec(t, "3", r.AvgFrequency)
	assertDec(t, "66.67", r.RetentionRate)
}

func TestComputeRetentionEmpty(t *testing.T) {
	r := ComputeRetention(nil, testNow)
	assert.Equal(t, 0, r.TotalCustomers)
	assert.True(t, r.AvgLtv.IsZero())
	assert.True(t, r.RetentionRate.IsZero())
	assert.True(t, r.ChurnRate.IsZero())
	assert.True(t, r.AvgFrequency.IsZero())
	assert.True(t, r.AvgRecencyDays.IsZero())
}

func TestComputeRetentionOneTimeBuyersOnly(t *testing.T) {
	r := ComputeRetention([]entity.CustomerLifetime{
		{OrderCount: 1, LifetimeRevenue: dec("80")},
		{OrderCount: 1, LifetimeRevenue: dec("120")},
	}, testNow)
	assertDec(t, "0", r.RetentionRate)
	assertDec(t, "100", r.ChurnRate)
	assertDec(t, "0", r.AvgFrequency)
	assertDec(t, "100", r.AvgLtv)
}
