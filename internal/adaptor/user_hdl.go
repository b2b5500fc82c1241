package adaptor

import (
	"net/http"

	"board-game-reviews/internal/usecase"
	"board-game-reviews/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	errs    *ErrorHandler
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, errs *ErrorHandler, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		errs:    errs,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetUsers handles GET /api/users
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetUsers(r.Context())
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	utils.ResponseSuccess(w, "users", users)
}
