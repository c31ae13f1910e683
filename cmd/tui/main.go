package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/garagemleilao/caixa/cmd/tui/internal/view"
	"github.com/garagemleilao/caixa/internal/config"
	"github.com/garagemleilao/caixa/internal/extraction"
	"github.com/garagemleilao/caixa/internal/logger"
)

func main() {
	_ = godotenv.Load()

	log := logger.New("info", "console")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// The preview never writes, so only the extractor settings matter here.
	ext, err := extraction.FromConfig(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create extractor")
	}

	p := tea.NewProgram(view.NewPreviewModel(ext))
	if _, err := p.Run(); err != nil {
		log.Fatal().Err(err).Msg("failed to run TUI")
	}
}
