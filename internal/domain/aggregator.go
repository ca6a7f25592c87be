package domain

import (
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/davidbz/spendwatch/internal/observability"
)

// Aggregation is the result of summarizing cost rows. A degraded aggregation
// carries a zero summary and the cause in Err.
type Aggregation struct {
	Summary CostSummary
	Err     error
}

// Degraded reports whether aggregation fell back to a zero summary.
func (a Aggregation) Degraded() bool {
	return a.Err != nil
}

// CostAggregator folds cost rows into a per-service summary.
type CostAggregator struct{}

// NewCostAggregator creates a new cost aggregator (DI constructor).
func NewCostAggregator() *CostAggregator {
	return &CostAggregator{}
}

// Summarize totals the rows, settles the currency and orders services by cost
// descending. The settled currency is the one reported by the last row; mixed
// currencies are not reconciled. Summarize never fails: a bad row degrades the
// result to a zero summary.
func (a *CostAggregator) Summarize(ctx context.Context, rows []CostRow) Aggregation {
	currency := DefaultCurrency

	summary, err := a.fold(rows, &currency)
	if err != nil {
		observability.FromContext(ctx).Warn("cost aggregation degraded to zero summary",
			observability.Error(err),
			observability.Int("rows", len(rows)),
			observability.String("currency", currency),
		)

		return Aggregation{
			Summary: CostSummary{
				TotalCost: decimal.Zero,
				Currency:  currency,
				Services:  []ServiceCost{},
			},
			Err: err,
		}
	}

	return Aggregation{Summary: summary, Err: nil}
}

func (a *CostAggregator) fold(rows []CostRow, currency *string) (summary CostSummary, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("summarize rows: %v", r)
		}
	}()

	total := decimal.Zero
	services := make([]ServiceCost, 0, len(rows))

	for i, row := range rows {
		if row.Currency == "" {
			return CostSummary{}, fmt.Errorf("row %d (%q): %w: missing currency", i, row.ServiceName, ErrMalformedRow)
		}

		total = total.Add(row.Cost)
		*currency = row.Currency

		name := row.ServiceName
		if name == "" {
			name = UnknownServiceName
		}
		services = append(services, ServiceCost{Name: name, Cost: row.Cost})
	}

	// Sources already order by cost; sorting again keeps the contract independent of them.
	slices.SortStableFunc(services, func(x, y ServiceCost) int {
		return y.Cost.Cmp(x.Cost)
	})

	return CostSummary{
		TotalCost: total,
		Currency:  *currency,
		Services:  services,
	}, nil
}
