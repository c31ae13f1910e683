package webhook

import (
	"context"
	"strings"

	"github.com/garagemleilao/caixa/internal/extraction"
	"github.com/garagemleilao/caixa/internal/logger"
	"github.com/garagemleilao/caixa/internal/transaction"
)

type Status string

const (
	StatusIgnored   Status = "ignored"
	StatusError     Status = "error"
	StatusProcessed Status = "processed"
)

const ReasonNoText = "no_text"

// Result is the acknowledgement returned to the gateway.
type Result struct {
	Status  Status `json:"status"`
	Reason  string `json:"reason,omitempty"`
	Details string `json:"details,omitempty"`
}

// Recorder persists records on behalf of an author.
type Recorder interface {
	Record(ctx context.Context, author string, records []transaction.Record) (int, error)
}

type Service struct {
	extractor    extraction.Extractor
	recorder     Recorder
	allowedGroup string
}

// NewService wires the pipeline. An empty allowedGroup lets every conversation through.
func NewService(extractor extraction.Extractor, recorder Recorder, allowedGroup string) *Service {
	return &Service{
		extractor:    extractor,
		recorder:     recorder,
		allowedGroup: allowedGroup,
	}
}

// Allowed reports whether a conversation id passes the group gate.
func (s *Service) Allowed(conversationID string) bool {
	return strings.Contains(conversationID, s.allowedGroup)
}

// Handle runs one delivery through the pipeline. It never returns an error:
// every failure is logged and folded into the Result.
func (s *Service) Handle(ctx context.Context, payload map[string]any) Result {
	log := logger.FromContext(ctx)

	msg := ParseMessage(payload)
	if msg.Text == "" {
		return Result{Status: StatusIgnored, Reason: ReasonNoText}
	}

	log.Info().
		Str("remote_jid", msg.ConversationID).
		Str("sender", msg.Sender).
		Str("text", msg.Text).
		Msg("message received")

	if !s.Allowed(msg.ConversationID) {
		log.Warn().Str("remote_jid", msg.ConversationID).Msg("message ignored: group not allowed")
		return Result{Status: StatusIgnored}
	}

	raw, err := s.extractor.Extract(ctx, msg.Text)
	if err != nil {
		return s.fail(ctx, "extraction failed", err)
	}

	records, shape, err := extraction.Normalize(raw)
	if err != nil {
		log.Debug().Str("raw", raw).Msg("unusable model output")
		return s.fail(ctx, "normalizing model output failed", err)
	}

	log.Debug().Stringer("shape", shape).Int("records", len(records)).Msg("model output normalized")

	if saved, err := s.recorder.Record(ctx, msg.Sender, records); err != nil {
		log.Warn().Int("saved", saved).Int("total", len(records)).Msg("records partially saved")
		return s.fail(ctx, "saving records failed", err)
	}

	return Result{Status: StatusProcessed}
}

func (s *Service) fail(ctx context.Context, msg string, err error) Result {
	log := logger.FromContext(ctx)
	log.Error().Err(err).Msg(msg)

	return Result{Status: StatusError, Details: err.Error()}
}
