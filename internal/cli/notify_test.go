package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/spendwatch/internal/cli"
	"github.com/davidbz/spendwatch/internal/domain"
)

func parse(t *testing.T, args ...string) domain.InvocationRequest {
	t.Helper()

	cmd := cli.NewCommand()
	require.NoError(t, cmd.ParseFlags(args))

	req, err := cli.ParseRequest(cmd)
	require.NoError(t, err)
	return req
}

func TestParseRequest(t *testing.T) {
	t.Run("no flags keeps month-to-date default", func(t *testing.T) {
		req := parse(t)
		require.Nil(t, req.UseCurrentMonth)
		require.Equal(t, "current_month", req.Selector())
	})

	t.Run("previous turns current off", func(t *testing.T) {
		req := parse(t, "--previous")
		require.Equal(t, "previous_month", req.Selector())
	})

	t.Run("year and month turn current off", func(t *testing.T) {
		req := parse(t, "--year", "2025", "--month", "6")
		require.Equal(t, "2025-06", req.Selector())
	})

	t.Run("explicit current wins", func(t *testing.T) {
		req := parse(t, "--current=true", "--previous")
		require.Equal(t, "current_month", req.Selector())
		require.True(t, req.UsePreviousMonth)
	})

	t.Run("event file with flag override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "event.json")
		require.NoError(t, os.WriteFile(path,
			[]byte(`{"use_current_month": false, "year": 2024, "month": 3}`), 0o600))

		req := parse(t, "--event-file", path, "--month", "4")
		require.Equal(t, 2024, req.Year)
		require.Equal(t, 4, req.Month)
		require.False(t, req.CurrentMonth())
	})

	t.Run("missing event file", func(t *testing.T) {
		cmd := cli.NewCommand()
		require.NoError(t, cmd.ParseFlags([]string{"--event-file", filepath.Join(t.TempDir(), "none.json")}))

		_, err := cli.ParseRequest(cmd)
		require.Error(t, err)
	})
}

func TestPrintOutcome(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var out bytes.Buffer
		err := cli.PrintOutcome(&out, domain.Outcome{
			StatusCode: 200,
			Body:       domain.OutcomeBody{Message: "Billing information sent successfully"},
		})
		require.NoError(t, err)
		require.Contains(t, out.String(), "Billing information sent successfully")
	})

	t.Run("failure returns error", func(t *testing.T) {
		var out bytes.Buffer
		err := cli.PrintOutcome(&out, domain.Outcome{
			StatusCode: 400,
			Body:       domain.OutcomeBody{Error: "invalid event parameters"},
		})
		require.Error(t, err)
		require.Contains(t, out.String(), "invalid event parameters")
	})
}
