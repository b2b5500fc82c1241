package wire

import (
	"board-game-reviews/internal/adaptor"
	"board-game-reviews/internal/data/repository"
	"board-game-reviews/internal/usecase"
	"board-game-reviews/pkg/middleware"
	"board-game-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring builds services and handlers on top of the repositories.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)

	return &App{
		Router: NewRouter(service, config, logger),
	}
}

// NewRouter registers every route and the global middleware chain.
func NewRouter(service *usecase.Service, config *utils.Config, logger *zap.Logger) *chi.Mux {
	handler := adaptor.NewHandler(service, logger)

	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	if config.Metrics.Enabled {
		r.Use(middleware.Metrics())
	}
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	r.Get("/api", handler.API.GetAPI)

	wireCategory(r, handler.Category)
	wireReview(r, handler.Review)
	wireComment(r, handler.Comment)
	wireUser(r, handler.User)

	if config.Metrics.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	// A known path with an unsupported method is reported like an unknown path.
	r.NotFound(handler.Errors.RouteNotFound)
	r.MethodNotAllowed(handler.Errors.RouteNotFound)

	return r
}
