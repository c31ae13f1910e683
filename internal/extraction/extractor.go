package extraction

import (
	"context"
	"errors"
)

var ErrEmptyResponse = errors.New("model returned an empty response")

// Extractor sends message text to a language model along with SystemPrompt and
// returns the model's raw text output.
//
//go:generate mockgen -source=extractor.go -destination=extractor_mock.go -package=extraction
type Extractor interface {
	Extract(ctx context.Context, text string) (string, error)
}
