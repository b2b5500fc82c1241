package adaptor

import (
	"net/http"

	"board-game-reviews/internal/dto/request"
	"board-game-reviews/internal/dto/response"
	"board-game-reviews/internal/usecase"
	"board-game-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CommentHandler struct {
	service usecase.CommentService
	errs    *ErrorHandler
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, errs *ErrorHandler, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		errs:    errs,
		log:     log.With(zap.String("handler", "comment")),
	}
}

// GetCommentsByReviewID handles GET /api/reviews/{review_id}/comments
func (h *CommentHandler) GetCommentsByReviewID(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "review_id")

	comments, err := h.service.GetCommentsByReviewID(r.Context(), reviewID)
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	utils.ResponseSuccess(w, "comments", comments)
}

// CreateComment handles POST /api/reviews/{review_id}/comments
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "review_id")

	var req request.CreateCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	comment, err := h.service.CreateComment(r.Context(), reviewID, &req)
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	utils.ResponseCreated(w, "comment", response.CommentToPosted(comment))
}

// DeleteComment handles DELETE /api/comments/{comment_id}
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID := chi.URLParam(r, "comment_id")

	if err := h.service.DeleteComment(r.Context(), commentID); err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	h.log.Info("Comment deleted", zap.String("comment_id", commentID))
	utils.ResponseNoContent(w)
}
