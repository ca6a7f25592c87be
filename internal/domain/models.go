package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used on query and display boundaries.
const DateLayout = "2006-01-02"

// DefaultCurrency is the settlement currency assumed before any row is seen.
const DefaultCurrency = "JPY"

// UnknownServiceName replaces an absent service description.
const UnknownServiceName = "Unknown Service"

// DateRange is a half-open range of calendar dates: Start inclusive, End exclusive.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// StartString formats the inclusive start date.
func (r DateRange) StartString() string {
	return r.Start.Format(DateLayout)
}

// EndString formats the exclusive end date.
func (r DateRange) EndString() string {
	return r.End.Format(DateLayout)
}

// Period is a resolved billing period: the query range plus its display label.
type Period struct {
	Year  int
	Month time.Month
	Range DateRange
	// DisplayEnd is the end date shown to users. For month-to-date periods it is
	// today, one day before Range.End.
	DisplayEnd time.Time
	ToDate     bool
}

// CostRow is one pre-grouped (service, currency) cost record from a billing source.
type CostRow struct {
	ServiceName string          `json:"service_name"`
	Cost        decimal.Decimal `json:"cost"`
	Currency    string          `json:"currency"`
}

// ServiceCost is the cost attributed to a single service.
type ServiceCost struct {
	Name string          `json:"name"`
	Cost decimal.Decimal `json:"cost"`
}

// CostSummary is the aggregator output for a set of rows.
type CostSummary struct {
	TotalCost decimal.Decimal `json:"total_cost"`
	Currency  string          `json:"currency"`
	Services  []ServiceCost   `json:"services"`
}

// BillingSummary is a CostSummary labelled with its billing period.
type BillingSummary struct {
	Year      int             `json:"year"`
	Month     time.Month      `json:"month"`
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`
	ToDate    bool            `json:"to_date"`
	TotalCost decimal.Decimal `json:"total_cost"`
	Currency  string          `json:"currency"`
	Services  []ServiceCost   `json:"services"`
}

// NewBillingSummary labels a cost summary with the period it was computed for.
func NewBillingSummary(period Period, summary CostSummary) BillingSummary {
	return BillingSummary{
		Year:      period.Year,
		Month:     period.Month,
		StartDate: period.Range.Start,
		EndDate:   period.DisplayEnd,
		ToDate:    period.ToDate,
		TotalCost: summary.TotalCost,
		Currency:  summary.Currency,
		Services:  summary.Services,
	}
}

// NotificationPayload is a rendered chat embed.
type NotificationPayload struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Color       int     `json:"color"`
	Fields      []Field `json:"fields"`
	Footer      Footer  `json:"footer"`
}

// Field is a named value inside a notification payload.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Footer is the fixed trailer of a notification payload.
type Footer struct {
	Text string `json:"text"`
}

// InvocationRequest selects the billing period for one invocation.
// An absent UseCurrentMonth means true.
type InvocationRequest struct {
	UseCurrentMonth  *bool `json:"use_current_month,omitempty"`
	UsePreviousMonth bool  `json:"use_previous_month,omitempty"`
	Year             int   `json:"year,omitempty"`
	Month            int   `json:"month,omitempty"`
}

// CurrentMonth reports whether the month-to-date branch is requested.
func (r InvocationRequest) CurrentMonth() bool {
	if r.UseCurrentMonth == nil {
		return true
	}
	return *r.UseCurrentMonth
}

// Selector names the requested period for logging, following the same
// priority the notifier applies.
func (r InvocationRequest) Selector() string {
	switch {
	case r.CurrentMonth():
		return "current_month"
	case r.UsePreviousMonth:
		return "previous_month"
	case r.Year != 0 && r.Month != 0:
		return fmt.Sprintf("%04d-%02d", r.Year, r.Month)
	default:
		return "none"
	}
}

// Outcome is the structured result of an invocation.
type Outcome struct {
	StatusCode int         `json:"status_code"`
	Body       OutcomeBody `json:"body"`
}

// OutcomeBody carries either a success message or an error description.
type OutcomeBody struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Preview is a rendered notification that was not delivered.
type Preview struct {
	Content string              `json:"content"`
	Embed   NotificationPayload `json:"embed"`
	Summary BillingSummary      `json:"summary"`
}
