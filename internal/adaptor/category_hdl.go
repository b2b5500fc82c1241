package adaptor

import (
	"net/http"

	"board-game-reviews/internal/usecase"
	"board-game-reviews/pkg/utils"

	"go.uber.org/zap"
)

type CategoryHandler struct {
	service usecase.CategoryService
	errs    *ErrorHandler
	log     *zap.Logger
}

func NewCategoryHandler(service usecase.CategoryService, errs *ErrorHandler, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		errs:    errs,
		log:     log.With(zap.String("handler", "category")),
	}
}

// GetCategories handles GET /api/categories
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetCategories(r.Context())
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	utils.ResponseSuccess(w, "categories", categories)
}
