package wire

import (
	"board-game-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	// GET /api/users - List all users
	r.Get("/api/users", userHandler.GetUsers)
}
