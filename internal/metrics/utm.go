package metrics

import (
	"sort"
	"strings"

	"github.com/provinciareal/dashboard/internal/campaignkey"
	"github.com/provinciareal/dashboard/internal/entity"
	"github.com/shopspring/decimal"
)

type bucketSet struct {
	order []string
	byVal map[string]*entity.UTMBucket
}

func newBucketSet() *bucketSet {
	return &bucketSet{byVal: map[string]*entity.UTMBucket{}}
}

func (s *bucketSet) add(value string, count int, total decimal.Decimal, paid bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		value = entity.DirectLabel
	}
	b, ok := s.byVal[value]
	if !ok {
		b = &entity.UTMBucket{Value: value, Total: decimal.Zero, PaidTotal: decimal.Zero}
		s.byVal[value] = b
		s.order = append(s.order, value)
	}
	b.Count += count
	b.Total = b.Total.Add(total)
	if paid {
		b.PaidCount += count
		b.PaidTotal = b.PaidTotal.Add(total)
	}
}

// sorted returns buckets by paid value, then count, descending.
func (s *bucketSet) sorted() []entity.UTMBucket {
	out := make([]entity.UTMBucket, 0, len(s.order))
	for _, v := range s.order {
		b := *s.byVal[v]
		b.Total = round(b.Total)
		b.PaidTotal = round(b.PaidTotal)
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].PaidTotal.Equal(out[j].PaidTotal) {
			return out[i].PaidTotal.GreaterThan(out[j].PaidTotal)
		}
		return out[i].Count > out[j].Count
	})
	return out
}

// UTMAnalysis groups orders by each UTM dimension and by product. Campaign
// values are cleaned of encoding and vendor suffixes; products are counted by
// quantity and valued at price × quantity.
func UTMAnalysis(orders []entity.Order, period entity.TimeRange) entity.UTMAnalysis {
	sources, mediums, campaigns := newBucketSet(), newBucketSet(), newBucketSet()
	contents, terms, products := newBucketSet(), newBucketSet(), newBucketSet()

	for _, o := range orders {
		paid := o.IsPaid()
		sources.add(o.UTM.Source, 1, o.Total, paid)
		mediums.add(o.UTM.Medium, 1, o.Total, paid)
		campaigns.add(campaignkey.Clean(o.UTM.Campaign), 1, o.Total, paid)
		contents.add(o.UTM.Content, 1, o.Total, paid)
		terms.add(o.UTM.Term, 1, o.Total, paid)
		for _, it := range o.Products {
			qty := it.Quantity
			if qty <= 0 {
				qty = 1
			}
			products.add(it.Name, qty, it.Price.Mul(decimal.NewFromInt(int64(qty))), paid)
		}
	}

	return entity.UTMAnalysis{
		Period:    period,
		Sources:   sources.sorted(),
		Mediums:   mediums.sorted(),
		Campaigns: campaigns.sorted(),
		Contents:  contents.sorted(),
		Terms:     terms.sorted(),
		Products:  products.sorted(),
	}
}
