package console_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/spendwatch/internal/domain"
	"github.com/davidbz/spendwatch/internal/notify/console"
)

func TestPrinter_Send(t *testing.T) {
	var out bytes.Buffer
	printer := console.NewPrinter(&out)

	payload := domain.NotificationPayload{
		Title:       "2025年6月 GCP Billing Information",
		Description: "Total amount: **¥12,345**",
		Color:       domain.AccentColor,
		Fields: []domain.Field{
			{Name: "Compute Engine", Value: "¥12,000", Inline: true},
			{Name: "Cloud Storage", Value: "¥345", Inline: true},
		},
		Footer: domain.Footer{Text: domain.FooterText},
	}

	ok := printer.Send(context.Background(), "2025年6月のGCP請求情報", payload)
	require.True(t, ok)

	printed := out.String()
	require.Contains(t, printed, "2025年6月のGCP請求情報")
	require.Contains(t, printed, "Total amount: **¥12,345**")
	require.Contains(t, printed, "Compute Engine")
	require.Contains(t, printed, "¥345")
	require.Contains(t, printed, domain.FooterText)
	require.Equal(t, console.SinkName, printer.Name())
}
