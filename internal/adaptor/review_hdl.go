package adaptor

import (
	"net/http"

	"board-game-reviews/internal/dto/request"
	"board-game-reviews/internal/usecase"
	"board-game-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Path identifiers are handed to the service as the raw string; the store
// decides whether they are valid integers.
type ReviewHandler struct {
	service usecase.ReviewService
	errs    *ErrorHandler
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, errs *ErrorHandler, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		errs:    errs,
		log:     log.With(zap.String("handler", "review")),
	}
}

// GetReviews handles GET /api/reviews?category=&sort_by=&order=
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListReviewsRequest{
		Category: query.Get("category"),
		SortBy:   query.Get("sort_by"),
		Order:    query.Get("order"),
	}

	reviews, err := h.service.GetReviews(r.Context(), req)
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	utils.ResponseSuccess(w, "reviews", reviews)
}

// GetReviewByID handles GET /api/reviews/{review_id}
func (h *ReviewHandler) GetReviewByID(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "review_id")

	review, err := h.service.GetReviewByID(r.Context(), reviewID)
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	utils.ResponseSuccess(w, "review", review)
}

// UpdateVotes handles PATCH /api/reviews/{review_id}
func (h *ReviewHandler) UpdateVotes(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "review_id")

	var req request.UpdateVotesRequest
	if err := decodeJSON(r, &req); err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	review, err := h.service.UpdateVotes(r.Context(), reviewID, &req)
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	utils.ResponseSuccess(w, "review", review)
}
