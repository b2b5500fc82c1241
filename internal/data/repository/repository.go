package repository

import (
	"board-game-reviews/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Category CategoryRepository
	Review   ReviewRepository
	Comment  CommentRepository
	User     UserRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Category: NewCategoryRepository(db, log),
		Review:   NewReviewRepository(db, log),
		Comment:  NewCommentRepository(db, log),
		User:     NewUserRepository(db, log),
	}
}
