package wire

import (
	"board-game-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	// GET /api/reviews?category=&sort_by=&order= - List reviews with comment counts
	r.Get("/api/reviews", reviewHandler.GetReviews)

	// GET /api/reviews/{review_id} - Review with its comment count
	r.Get("/api/reviews/{review_id}", reviewHandler.GetReviewByID)

	// PATCH /api/reviews/{review_id} - Increment or decrement votes {inc_votes}
	r.Patch("/api/reviews/{review_id}", reviewHandler.UpdateVotes)
}
