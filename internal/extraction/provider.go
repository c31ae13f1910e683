package extraction

import (
	"context"
	"fmt"

	"github.com/garagemleilao/caixa/internal/config"
)

// FromConfig builds the extractor for the configured provider.
func FromConfig(ctx context.Context, cfg *config.Config) (Extractor, error) {
	switch cfg.Provider() {
	case config.ProviderOpenAI:
		return NewOpenAI(cfg.OpenAI.APIKey, cfg.OpenAI.Model), nil
	case config.ProviderGemini:
		g, err := NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			return nil, err
		}

		return g, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownProvider, cfg.Extractor.Provider)
	}
}
