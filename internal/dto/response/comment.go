package response

import "board-game-reviews/internal/data/entity"

// PostedComment echoes the caller's own input back; generated columns are
// not part of it.
type PostedComment struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

func CommentToPosted(c *entity.Comment) PostedComment {
	return PostedComment{
		Username: c.Author,
		Body:     c.Body,
	}
}
