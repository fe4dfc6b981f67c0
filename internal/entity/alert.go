package entity

import (
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
	gerr "github.com/provinciareal/dashboard/internal/errors"
	"github.com/shopspring/decimal"
)

type AlertCondition string

const (
	AlertConditionLessThan    AlertCondition = "less_than"
	AlertConditionGreaterThan AlertCondition = "greater_than"
	AlertConditionEquals      AlertCondition = "equals"
)

type AlertSeverity string

const (
	AlertSeverityInfo     AlertSeverity = "info"
	AlertSeverityWarning  AlertSeverity = "warning"
	AlertSeverityCritical AlertSeverity = "critical"
)

type AlertConfig struct {
	Id        int       `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
	AlertConfigInsert
}

type AlertConfigInsert struct {
	Name            string          `db:"name" json:"name" valid:"required,stringlength(1|100)"`
	Metric          string          `db:"metric" json:"metric" valid:"required,in(paid_revenue|net_profit|roas|roi|ad_spend|paid_orders|aov|net_margin_pct)"`
	Condition       AlertCondition  `db:"alert_condition" json:"condition" valid:"required,in(less_than|greater_than|equals)"`
	Threshold       decimal.Decimal `db:"threshold" json:"threshold" valid:"-"`
	Severity        AlertSeverity   `db:"severity" json:"severity" valid:"required,in(info|warning|critical)"`
	Enabled         bool            `db:"enabled" json:"enabled" valid:"-"`
	MessageTemplate string          `db:"message_template" json:"message_template" valid:"stringlength(0|255)"`
}

// Validate checks the config's fields, wrapping failures in ErrInvalidAlert.
func (ac *AlertConfigInsert) Validate() error {
	if _, err := govalidator.ValidateStruct(ac); err != nil {
		return fmt.Errorf("%w: %v", gerr.ErrInvalidAlert, err)
	}
	return nil
}

// ActiveAlert is a config whose condition holds for the current metrics.
type ActiveAlert struct {
	AlertId   int             `json:"alert_id"`
	Name      string          `json:"name"`
	Metric    string          `json:"metric"`
	Severity  AlertSeverity   `json:"severity"`
	Value     decimal.Decimal `json:"value"`
	Threshold decimal.Decimal `json:"threshold"`
	Message   string          `json:"message"`
}
