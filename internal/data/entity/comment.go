package entity

import (
	"time"
)

type Comment struct {
	CommentID int       `db:"comment_id" json:"comment_id"`
	ReviewID  int       `db:"review_id" json:"review_id"`
	Author    string    `db:"author" json:"author"`
	Body      string    `db:"body" json:"body"`
	Votes     int       `db:"votes" json:"votes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
