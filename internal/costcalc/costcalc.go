// Package costcalc estimates cost of goods from free-text product names.
package costcalc

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/provinciareal/dashboard/internal/entity"
	"github.com/shopspring/decimal"
)

const (
	DefaultPotCost = 16
	DefaultBarCost = 8
)

type Config struct {
	PotUnitCost float64 `mapstructure:"pot"`
	BarUnitCost float64 `mapstructure:"bar"`
}

func DefaultConfig() Config {
	return Config{
		PotUnitCost: DefaultPotCost,
		BarUnitCost: DefaultBarCost,
	}
}

var (
	potCountRe = regexp.MustCompile(`(\d+)\s*potes?`)
	potWordRe  = regexp.MustCompile(`potes?|pot([^\p{L}]|$)`)
	barCountRe = regexp.MustCompile(`(\d+)\s*barras?`)
	barWordRe  = regexp.MustCompile(`barras?`)
)

// Breakdown is the estimated unit content of one product name.
type Breakdown struct {
	Pots int
	Bars int
}

// Classified reports whether the name matched at least one unit keyword.
func (b Breakdown) Classified() bool {
	return b.Pots > 0 || b.Bars > 0
}

// Classify counts pots and bars named in a product title. A keyword without a
// leading quantity counts as one unit. Both keywords may match the same name.
func Classify(name string) Breakdown {
	lower := strings.ToLower(name)
	return Breakdown{
		Pots: count(lower, potCountRe, potWordRe),
		Bars: count(lower, barCountRe, barWordRe),
	}
}

func count(name string, withQty, word *regexp.Regexp) int {
	if m := withQty.FindStringSubmatch(name); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return n
		}
	}
	if word.MatchString(name) {
		return 1
	}
	return 0
}

// Calculator prices breakdowns with the configured unit costs.
type Calculator struct {
	pot decimal.Decimal
	bar decimal.Decimal
}

func New(c Config) *Calculator {
	return &Calculator{
		pot: decimal.NewFromFloat(c.PotUnitCost),
		bar: decimal.NewFromFloat(c.BarUnitCost),
	}
}

// Cost is pots × pot cost + bars × bar cost.
func (c *Calculator) Cost(b Breakdown) decimal.Decimal {
	return c.pot.Mul(decimal.NewFromInt(int64(b.Pots))).
		Add(c.bar.Mul(decimal.NewFromInt(int64(b.Bars))))
}

// ProductCost estimates the cost of one product name.
func (c *Calculator) ProductCost(name string) decimal.Decimal {
	return c.Cost(Classify(name))
}

// OrderCost sums the estimated cost of an order's line items, one estimate per
// line item. unclassified counts the items that matched no keyword and
// contributed zero.
func (c *Calculator) OrderCost(items []entity.LineItem) (cost decimal.Decimal, unclassified int) {
	cost = decimal.Zero
	for _, it := range items {
		b := Classify(it.Name)
		if !b.Classified() {
			unclassified++
			continue
		}
		cost = cost.Add(c.Cost(b))
	}
	return cost, unclassified
}
