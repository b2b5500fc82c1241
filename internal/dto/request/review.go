package request

// ListReviewsRequest carries the raw query string of GET /api/reviews.
// Values are not checked here; the repository falls back to defaults.
type ListReviewsRequest struct {
	Category string
	SortBy   string
	Order    string
}

// UpdateVotesRequest is the body of PATCH /api/reviews/{review_id}.
type UpdateVotesRequest struct {
	IncVotes *int `json:"inc_votes" validate:"required"`
}
