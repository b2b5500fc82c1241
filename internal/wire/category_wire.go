package wire

import (
	"board-game-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCategory(r chi.Router, categoryHandler *adaptor.CategoryHandler) {
	// GET /api/categories - List all categories
	r.Get("/api/categories", categoryHandler.GetCategories)
}
