package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/spendwatch/internal/domain"
	handlers "github.com/davidbz/spendwatch/internal/http"
	"github.com/davidbz/spendwatch/internal/mocks"
)

var fixedNow = time.Date(2025, time.July, 15, 9, 0, 0, 0, time.UTC)

func newHandler(source domain.BillingSource, sink domain.NotificationSink) *handlers.Handler {
	notifier := domain.NewNotifier(
		source,
		sink,
		domain.NewCostAggregator(),
		domain.NewRenderer(decimal.NewFromInt(150), domain.MaxFields),
		domain.WithClock(func() time.Time { return fixedNow }),
	)
	return handlers.NewHandler(notifier)
}

func juneRows() []domain.CostRow {
	return []domain.CostRow{
		{ServiceName: "Compute Engine", Cost: decimal.NewFromInt(12000), Currency: "JPY"},
		{ServiceName: "Cloud Storage", Cost: decimal.NewFromInt(345), Currency: "JPY"},
	}
}

func TestHandleNotify_SpecificMonth(t *testing.T) {
	mockSource := mocks.NewMockBillingSource(t)
	mockSink := mocks.NewMockNotificationSink(t)
	handler := newHandler(mockSource, mockSink)

	june := domain.DateRange{
		Start: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
	}

	mockSink.EXPECT().Name().Return("discord").Maybe()
	mockSource.EXPECT().
		Fetch(mock.Anything, june).
		Return(juneRows(), nil)

	var sent domain.NotificationPayload
	mockSink.EXPECT().
		Send(mock.Anything, "2025年6月のGCP請求情報", mock.Anything).
		Run(func(_ context.Context, _ string, payload domain.NotificationPayload) {
			sent = payload
		}).
		Return(true)

	body := `{"use_current_month": false, "year": 2025, "month": 6}`
	httpReq := httptest.NewRequest(http.MethodPost, "/v1/billing/notify", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleNotify(w, httpReq)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response domain.OutcomeBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Equal(t, "Billing information sent successfully", response.Message)
	require.Empty(t, response.Error)

	require.Equal(t, "Total amount: **¥12,345**", sent.Description)
	require.Len(t, sent.Fields, 2)
}

func TestHandleNotify_EmptyBodyUsesMonthToDate(t *testing.T) {
	mockSource := mocks.NewMockBillingSource(t)
	mockSink := mocks.NewMockNotificationSink(t)
	handler := newHandler(mockSource, mockSink)

	monthToDate := domain.DateRange{
		Start: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.July, 16, 0, 0, 0, 0, time.UTC),
	}

	mockSink.EXPECT().Name().Return("discord").Maybe()
	mockSource.EXPECT().Fetch(mock.Anything, monthToDate).Return(nil, nil)
	mockSink.EXPECT().
		Send(mock.Anything, "2025年7月のGCP請求情報（2025-07-01〜2025-07-15）", mock.Anything).
		Return(true)

	httpReq := httptest.NewRequest(http.MethodPost, "/v1/billing/notify", http.NoBody)
	w := httptest.NewRecorder()

	handler.HandleNotify(w, httpReq)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestHandleNotify_InvalidJSON(t *testing.T) {
	handler := newHandler(mocks.NewMockBillingSource(t), mocks.NewMockNotificationSink(t))

	httpReq := httptest.NewRequest(http.MethodPost, "/v1/billing/notify", strings.NewReader(`{"year":`))
	w := httptest.NewRecorder()

	handler.HandleNotify(w, httpReq)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var response domain.OutcomeBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Equal(t, "invalid event parameters", response.Error)
}

func TestHandleNotify_MethodNotAllowed(t *testing.T) {
	handler := newHandler(mocks.NewMockBillingSource(t), mocks.NewMockNotificationSink(t))

	w := httptest.NewRecorder()
	handler.HandleNotify(w, httptest.NewRequest(http.MethodGet, "/v1/billing/notify", nil))

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHandleNotify_NoPeriod(t *testing.T) {
	mockSink := mocks.NewMockNotificationSink(t)
	mockSink.EXPECT().Name().Return("discord").Maybe()
	handler := newHandler(mocks.NewMockBillingSource(t), mockSink)

	body, _ := json.Marshal(map[string]any{"use_current_month": false})
	w := httptest.NewRecorder()
	handler.HandleNotify(w, httptest.NewRequest(http.MethodPost, "/v1/billing/notify", bytes.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, w.Code)

	var response domain.OutcomeBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Equal(t, "invalid event parameters", response.Error)
}

func TestHandleNotify_SourceFailure(t *testing.T) {
	mockSource := mocks.NewMockBillingSource(t)
	mockSink := mocks.NewMockNotificationSink(t)
	handler := newHandler(mockSource, mockSink)

	mockSink.EXPECT().Name().Return("discord").Maybe()
	mockSource.EXPECT().
		Fetch(mock.Anything, mock.Anything).
		Return(nil, errors.New("googleapi: Error 403: Access Denied"))

	w := httptest.NewRecorder()
	handler.HandleNotify(w, httptest.NewRequest(http.MethodPost, "/v1/billing/notify",
		strings.NewReader(`{"use_previous_month": true, "use_current_month": false}`)))

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var response domain.OutcomeBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Equal(t, "An unexpected error occurred", response.Error)
	require.NotContains(t, w.Body.String(), "Access Denied")
}

func TestHandlePreview(t *testing.T) {
	t.Run("returns rendered payload without sending", func(t *testing.T) {
		mockSource := mocks.NewMockBillingSource(t)
		mockSink := mocks.NewMockNotificationSink(t)
		handler := newHandler(mockSource, mockSink)

		mockSource.EXPECT().Fetch(mock.Anything, mock.Anything).Return(juneRows(), nil)

		w := httptest.NewRecorder()
		handler.HandlePreview(w, httptest.NewRequest(http.MethodPost, "/v1/billing/preview",
			strings.NewReader(`{"use_current_month": false, "year": 2025, "month": 6}`)))

		require.Equal(t, http.StatusOK, w.Code)

		var preview domain.Preview
		require.NoError(t, json.NewDecoder(w.Body).Decode(&preview))
		require.Equal(t, "2025年6月のGCP請求情報", preview.Content)
		require.Equal(t, "2025年6月 GCP Billing Information", preview.Embed.Title)
		require.True(t, preview.Summary.TotalCost.Equal(decimal.NewFromInt(12345)))
		mockSink.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("maps errors to outcomes", func(t *testing.T) {
		handler := newHandler(mocks.NewMockBillingSource(t), mocks.NewMockNotificationSink(t))

		w := httptest.NewRecorder()
		handler.HandlePreview(w, httptest.NewRequest(http.MethodPost, "/v1/billing/preview",
			strings.NewReader(`{"use_current_month": false, "year": 2025, "month": 13}`)))

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleHealth(t *testing.T) {
	handler := newHandler(mocks.NewMockBillingSource(t), mocks.NewMockNotificationSink(t))

	w := httptest.NewRecorder()
	handler.HandleHealth(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}
