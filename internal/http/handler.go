package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/davidbz/spendwatch/internal/domain"
	"github.com/davidbz/spendwatch/internal/observability"
)

const maxRequestBodyBytes = 1 << 20

// Handler handles HTTP requests.
type Handler struct {
	notifier *domain.Notifier
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(notifier *domain.Notifier) *Handler {
	return &Handler{
		notifier: notifier,
	}
}

// HandleNotify runs one billing notification and writes its outcome.
func (h *Handler) HandleNotify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, err := decodeRequest(r)
	if err != nil {
		observability.FromContext(ctx).Warn("invalid request body", observability.Error(err))
		writeJSON(w, r, http.StatusBadRequest, domain.OutcomeBody{Error: domain.ErrInvalidRequest.Error()})
		return
	}

	observability.FromContext(ctx).Info("notify request received",
		observability.String("period", req.Selector()))

	outcome := h.notifier.Notify(ctx, req)
	writeJSON(w, r, outcome.StatusCode, outcome.Body)
}

// HandlePreview renders the notification for the requested period without
// delivering it.
func (h *Handler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, err := decodeRequest(r)
	if err != nil {
		observability.FromContext(ctx).Warn("invalid request body", observability.Error(err))
		writeJSON(w, r, http.StatusBadRequest, domain.OutcomeBody{Error: domain.ErrInvalidRequest.Error()})
		return
	}

	ctx = observability.WithPeriod(ctx, req.Selector())

	preview, err := h.notifier.Preview(ctx, req)
	if err != nil {
		outcome := domain.OutcomeFor(ctx, err)
		writeJSON(w, r, outcome.StatusCode, outcome.Body)
		return
	}

	writeJSON(w, r, http.StatusOK, preview)
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	}); err != nil {
		// Already written status, can't change it.
		return
	}
}

// decodeRequest parses the invocation request. An empty body selects the defaults.
func decodeRequest(r *http.Request) (domain.InvocationRequest, error) {
	var req domain.InvocationRequest

	if r.Body == nil {
		return req, nil
	}

	err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes)).Decode(&req)
	if errors.Is(err, io.EOF) {
		return domain.InvocationRequest{}, nil
	}
	if err != nil {
		return domain.InvocationRequest{}, fmt.Errorf("decode request: %w", err)
	}

	return req, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		observability.FromContext(r.Context()).Error("failed to encode response", observability.Error(err))
	}
}
