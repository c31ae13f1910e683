package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/garagemleilao/caixa/internal/http/health"
	reqlog "github.com/garagemleilao/caixa/internal/http/middleware"
	"github.com/garagemleilao/caixa/internal/http/webhook"
)

func New(
	log zerolog.Logger,
	allowedOrigins []string,
	webhookH *webhook.Handler,
	healthH *health.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(reqlog.Logger(log))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	router.Route("/webhook", webhookH.Routes)
	router.Route("/health", healthH.Routes)

	return router
}
