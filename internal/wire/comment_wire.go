package wire

import (
	"board-game-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireComment(r chi.Router, commentHandler *adaptor.CommentHandler) {
	// GET /api/reviews/{review_id}/comments - Comments on a review, newest first
	r.Get("/api/reviews/{review_id}/comments", commentHandler.GetCommentsByReviewID)

	// POST /api/reviews/{review_id}/comments - Add a comment {username, body}
	r.Post("/api/reviews/{review_id}/comments", commentHandler.CreateComment)

	// DELETE /api/comments/{comment_id} - Remove a comment
	r.Delete("/api/comments/{comment_id}", commentHandler.DeleteComment)
}
