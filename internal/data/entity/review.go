package entity

import (
	"time"
)

type Review struct {
	ReviewID     int       `db:"review_id" json:"review_id"`
	Title        string    `db:"title" json:"title"`
	Designer     *string   `db:"designer" json:"designer"`
	Owner        string    `db:"owner" json:"owner"`
	ReviewImgURL *string   `db:"review_img_url" json:"review_img_url"`
	ReviewBody   string    `db:"review_body" json:"review_body"`
	Category     string    `db:"category" json:"category"`
	Votes        int       `db:"votes" json:"votes"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// ReviewWithCount is a review row joined with the number of comments that
// reference it.
type ReviewWithCount struct {
	Review
	CommentCount int `db:"comment_count" json:"comment_count"`
}
