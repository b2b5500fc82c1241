package adaptor

import (
	"net/http"
	"sort"
	"strings"

	"board-game-reviews/internal/dto/response"
	"board-game-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type APIHandler struct {
	log *zap.Logger
}

func NewAPIHandler(log *zap.Logger) *APIHandler {
	return &APIHandler{
		log: log.With(zap.String("handler", "api")),
	}
}

// GetAPI handles GET /api. It lists the routes registered on the router that
// served the request.
func (h *APIHandler) GetAPI(w http.ResponseWriter, r *http.Request) {
	endpoints := make([]response.Endpoint, 0)

	if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.Routes != nil {
		walk := func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			if !strings.HasPrefix(route, "/api") {
				return nil
			}
			endpoints = append(endpoints, response.Endpoint{Method: method, Path: route})
			return nil
		}
		if err := chi.Walk(rctx.Routes, walk); err != nil {
			h.log.Warn("Failed to walk routes", zap.Error(err))
		}
	}

	sort.Slice(endpoints, func(i, j int) bool {
		if endpoints[i].Path != endpoints[j].Path {
			return endpoints[i].Path < endpoints[j].Path
		}
		return endpoints[i].Method < endpoints[j].Method
	})

	utils.ResponseJSON(w, http.StatusOK, response.APIStatus{
		Message:   "all ok",
		Endpoints: endpoints,
	})
}
