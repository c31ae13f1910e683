package webhook

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/garagemleilao/caixa/internal/logger"
	"github.com/garagemleilao/caixa/internal/webhook"
)

const maxBodyBytes = 1 << 20

// Processor is the pipeline behind the endpoint.
type Processor interface {
	Handle(ctx context.Context, payload map[string]any) webhook.Result
}

type Handler struct {
	svc Processor
}

func NewHandler(svc Processor) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.receive)
}

// receive always answers 200: the gateway only needs an acknowledgement, the
// outcome travels in the body.
func (h *Handler) receive(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&payload); err != nil {
		log := logger.FromContext(r.Context())
		log.Error().Err(err).Msg("failed to read webhook payload")
		writeResult(w, r, webhook.Result{Status: webhook.StatusError})

		return
	}

	if payload == nil {
		log := logger.FromContext(r.Context())
		log.Error().Msg("webhook payload is not a JSON object")
		writeResult(w, r, webhook.Result{Status: webhook.StatusError})

		return
	}

	// The gateway may hang up during a slow model call; the message is still saved.
	writeResult(w, r, h.svc.Handle(context.WithoutCancel(r.Context()), payload))
}

func writeResult(w http.ResponseWriter, r *http.Request, res webhook.Result) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(res); err != nil {
		log := logger.FromContext(r.Context())
		log.Error().Err(err).Msg("failed to encode response")
	}
}
