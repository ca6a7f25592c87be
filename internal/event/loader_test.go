package event_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/spendwatch/internal/domain"
	"github.com/davidbz/spendwatch/internal/event"
)

func writeEvent(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadRequest(t *testing.T) {
	t.Run("json specific month keeps current month default", func(t *testing.T) {
		path := writeEvent(t, "event.json", `{"year": 2025, "month": 6}`)

		req, err := event.LoadRequest(path)
		require.NoError(t, err)
		require.Nil(t, req.UseCurrentMonth)
		require.True(t, req.CurrentMonth())
		require.Equal(t, 2025, req.Year)
		require.Equal(t, 6, req.Month)
	})

	t.Run("yaml previous month", func(t *testing.T) {
		path := writeEvent(t, "event.yaml", "use_current_month: false\nuse_previous_month: true\n")

		req, err := event.LoadRequest(path)
		require.NoError(t, err)
		require.False(t, req.CurrentMonth())
		require.True(t, req.UsePreviousMonth)
		require.Equal(t, "previous_month", req.Selector())
	})

	t.Run("yml extension", func(t *testing.T) {
		path := writeEvent(t, "event.YML", "use_current_month: true\n")

		req, err := event.LoadRequest(path)
		require.NoError(t, err)
		require.True(t, req.CurrentMonth())
	})

	t.Run("toml specific month", func(t *testing.T) {
		path := writeEvent(t, "event.toml", "use_current_month = false\nyear = 2024\nmonth = 12\n")

		req, err := event.LoadRequest(path)
		require.NoError(t, err)
		require.False(t, req.CurrentMonth())
		require.Equal(t, 2024, req.Year)
		require.Equal(t, 12, req.Month)
		require.Equal(t, "2024-12", req.Selector())
	})

	t.Run("toml with wrong types", func(t *testing.T) {
		path := writeEvent(t, "event.toml", "year = \"2024\"\n")

		_, err := event.LoadRequest(path)
		require.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeEvent(t, "event.json", `{"year": `)

		_, err := event.LoadRequest(path)
		require.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeEvent(t, "event.ini", "year=2025")

		_, err := event.LoadRequest(path)
		require.Error(t, err)
		require.Contains(t, err.Error(), "unsupported event file format")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := event.LoadRequest(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := event.LoadRequest(t.TempDir())
		require.Error(t, err)
		require.Contains(t, err.Error(), "is a directory")
	})
}
