package request

// CreateCommentRequest is the body of POST /api/reviews/{review_id}/comments.
// Unknown keys are ignored by the decoder.
type CreateCommentRequest struct {
	Username string `json:"username"`
	Body     string `json:"body" validate:"required"`
}
