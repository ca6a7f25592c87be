package domain_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/spendwatch/internal/domain"
)

func juneSummary(currency string, services ...domain.ServiceCost) domain.BillingSummary {
	total := decimal.Zero
	for _, service := range services {
		total = total.Add(service.Cost)
	}

	return domain.BillingSummary{
		Year:      2025,
		Month:     time.June,
		StartDate: date(2025, time.June, 1),
		EndDate:   date(2025, time.July, 1),
		TotalCost: total,
		Currency:  currency,
		Services:  services,
	}
}

func service(name, cost string) domain.ServiceCost {
	return domain.ServiceCost{Name: name, Cost: decimal.RequireFromString(cost)}
}

func manyServices(n int) []domain.ServiceCost {
	services := make([]domain.ServiceCost, 0, n)
	for i := 0; i < n; i++ {
		services = append(services, service(fmt.Sprintf("svc-%02d", i), fmt.Sprintf("%d", 1000-i)))
	}
	return services
}

func TestRenderer_Render(t *testing.T) {
	ctx := context.Background()
	renderer := domain.NewRenderer(decimal.NewFromInt(150), domain.MaxFields)

	t.Run("fixed title, color and footer", func(t *testing.T) {
		payload := renderer.Render(ctx, juneSummary("JPY", service("Compute Engine", "12000"), service("Cloud Storage", "345")))

		require.Equal(t, "2025年6月 GCP Billing Information", payload.Title)
		require.Equal(t, "Total amount: **¥12,345**", payload.Description)
		require.Equal(t, 0x4285F4, payload.Color)
		require.Equal(t, "GCP Billing Notifier", payload.Footer.Text)
		require.Equal(t, []domain.Field{
			{Name: "Compute Engine", Value: "¥12,000", Inline: true},
			{Name: "Cloud Storage", Value: "¥345", Inline: true},
		}, payload.Fields)
	})

	t.Run("non-JPY amounts are converted at the rate", func(t *testing.T) {
		payload := renderer.Render(ctx, juneSummary("USD", service("BigQuery", "10")))

		require.Equal(t, "¥1,500", payload.Fields[0].Value)
		require.Equal(t, "Total amount: **¥1,500**", payload.Description)
	})

	t.Run("rounds half away from zero", func(t *testing.T) {
		payload := renderer.Render(ctx, juneSummary("JPY",
			service("A", "2.5"),
			service("B", "1.4"),
			service("C", "0.5"),
		))

		require.Equal(t, "¥3", payload.Fields[0].Value)
		require.Equal(t, "¥1", payload.Fields[1].Value)
		require.Equal(t, "¥1", payload.Fields[2].Value)
		require.Equal(t, "Total amount: **¥4**", payload.Description)
	})

	t.Run("thousands separators on large amounts", func(t *testing.T) {
		payload := renderer.Render(ctx, juneSummary("JPY", service("Compute Engine", "1234567.49")))

		require.Equal(t, "¥1,234,567", payload.Fields[0].Value)
	})

	t.Run("no services yields a single placeholder field", func(t *testing.T) {
		payload := renderer.Render(ctx, juneSummary("JPY"))

		require.Equal(t, "Total amount: **¥0**", payload.Description)
		require.Equal(t, []domain.Field{
			{Name: "No service usage", Value: "No billing information found.", Inline: false},
		}, payload.Fields)
	})

	t.Run("exactly 25 services are all shown", func(t *testing.T) {
		payload := renderer.Render(ctx, juneSummary("JPY", manyServices(25)...))

		require.Len(t, payload.Fields, 25)
		require.Equal(t, "svc-24", payload.Fields[24].Name)
		require.True(t, payload.Fields[24].Inline)
	})

	t.Run("26 services collapse the tail into Others", func(t *testing.T) {
		summary := juneSummary("JPY", manyServices(26)...)
		payload := renderer.Render(ctx, summary)

		require.Len(t, payload.Fields, 25)
		require.Equal(t, "svc-23", payload.Fields[23].Name)
		require.Equal(t, domain.Field{Name: "Others", Value: "Many more services used...", Inline: false}, payload.Fields[24])
		require.Equal(t, fmt.Sprintf("Total amount: **¥%s**", "25,675"), payload.Description)
		require.Len(t, summary.Services, 26)
	})

	t.Run("rendering is idempotent", func(t *testing.T) {
		summary := juneSummary("USD", manyServices(30)...)

		require.Equal(t, renderer.Render(ctx, summary), renderer.Render(ctx, summary))
	})

	t.Run("custom field ceiling", func(t *testing.T) {
		small := domain.NewRenderer(decimal.NewFromInt(150), 3)
		payload := small.Render(ctx, juneSummary("JPY", manyServices(5)...))

		require.Len(t, payload.Fields, 3)
		require.Equal(t, "Others", payload.Fields[2].Name)
	})

	t.Run("out of range ceiling falls back to 25", func(t *testing.T) {
		wide := domain.NewRenderer(decimal.NewFromInt(150), 100)
		payload := wide.Render(ctx, juneSummary("JPY", manyServices(30)...))

		require.Len(t, payload.Fields, 25)
	})
}

func TestRenderer_Headline(t *testing.T) {
	renderer := domain.NewRenderer(decimal.NewFromInt(150), domain.MaxFields)

	t.Run("closed month has no range", func(t *testing.T) {
		require.Equal(t, "2025年6月のGCP請求情報", renderer.Headline(juneSummary("JPY")))
	})

	t.Run("month to date shows the range through today", func(t *testing.T) {
		period := domain.ResolveMonthToDate(date(2025, time.July, 15))
		summary := domain.NewBillingSummary(period, domain.CostSummary{TotalCost: decimal.Zero, Currency: "JPY"})

		require.Equal(t, "2025年7月のGCP請求情報（2025-07-01〜2025-07-15）", renderer.Headline(summary))
	})
}

func TestRenderer_Display(t *testing.T) {
	renderer := domain.NewRenderer(decimal.RequireFromString("151.5"), domain.MaxFields)

	require.True(t, renderer.Display("JPY", decimal.NewFromInt(10)).Equal(decimal.NewFromInt(10)))
	require.True(t, renderer.Display("USD", decimal.NewFromInt(10)).Equal(decimal.NewFromInt(1515)))
	require.True(t, renderer.Display("EUR", decimal.NewFromInt(2)).Equal(decimal.NewFromInt(303)))
}
