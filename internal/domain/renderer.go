package domain

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/davidbz/spendwatch/internal/observability"
)

const (
	// MaxFields is the embed field ceiling enforced by Discord.
	MaxFields = 25

	// AccentColor is the embed accent (Google blue).
	AccentColor = 0x4285F4

	// FooterText labels every notification.
	FooterText = "GCP Billing Notifier"

	// CurrencyGlyph prefixes every displayed amount.
	CurrencyGlyph = "¥"

	displayCurrency = "JPY"
	minFields       = 2
)

// Renderer turns billing summaries into notification payloads.
type Renderer struct {
	rate      decimal.Decimal
	maxFields int
}

// NewRenderer creates a renderer that converts non-JPY amounts with rate and
// caps payloads at maxFields fields. maxFields outside 2..25 falls back to 25.
func NewRenderer(rate decimal.Decimal, maxFields int) *Renderer {
	if maxFields < minFields || maxFields > MaxFields {
		maxFields = MaxFields
	}

	return &Renderer{
		rate:      rate,
		maxFields: maxFields,
	}
}

// Render builds the notification payload for a summary. Rendering the same
// summary twice yields identical payloads.
func (r *Renderer) Render(ctx context.Context, summary BillingSummary) NotificationPayload {
	fields := make([]Field, 0, len(summary.Services))
	for _, service := range summary.Services {
		fields = append(fields, Field{
			Name:   service.Name,
			Value:  r.formatAmount(summary.Currency, service.Cost),
			Inline: true,
		})
	}

	if len(fields) == 0 {
		fields = append(fields, Field{
			Name:   "No service usage",
			Value:  "No billing information found.",
			Inline: false,
		})
	}

	if len(fields) > r.maxFields {
		observability.FromContext(ctx).Warn("too many fields for notification, truncating",
			observability.Int("fields", len(fields)),
			observability.Int("max_fields", r.maxFields),
		)

		// The omitted services stay in the total; they are not re-aggregated.
		fields = append(fields[:r.maxFields-1:r.maxFields-1], Field{
			Name:   "Others",
			Value:  "Many more services used...",
			Inline: false,
		})
	}

	return NotificationPayload{
		Title:       fmt.Sprintf("%d年%d月 GCP Billing Information", summary.Year, int(summary.Month)),
		Description: fmt.Sprintf("Total amount: **%s**", r.formatAmount(summary.Currency, summary.TotalCost)),
		Color:       AccentColor,
		Fields:      fields,
		Footer:      Footer{Text: FooterText},
	}
}

// Headline builds the plain-text line that accompanies the payload.
func (r *Renderer) Headline(summary BillingSummary) string {
	if summary.ToDate {
		return fmt.Sprintf("%d年%d月のGCP請求情報（%s〜%s）",
			summary.Year, int(summary.Month),
			summary.StartDate.Format(DateLayout), summary.EndDate.Format(DateLayout))
	}

	return fmt.Sprintf("%d年%d月のGCP請求情報", summary.Year, int(summary.Month))
}

// Display converts an amount in currency into the display currency.
func (r *Renderer) Display(currency string, amount decimal.Decimal) decimal.Decimal {
	if currency == displayCurrency {
		return amount
	}
	return amount.Mul(r.rate)
}

// formatAmount rounds half away from zero and adds thousands separators.
func (r *Renderer) formatAmount(currency string, amount decimal.Decimal) string {
	rounded := r.Display(currency, amount).Round(0)
	return CurrencyGlyph + humanize.Comma(rounded.IntPart())
}
