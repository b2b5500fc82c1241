package usecase

import (
	"board-game-reviews/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Category CategoryService
	Review   ReviewService
	Comment  CommentService
	User     UserService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Category: NewCategoryService(repo.Category, log),
		Review:   NewReviewService(repo, log),
		Comment:  NewCommentService(repo, log),
		User:     NewUserService(repo.User, log),
	}
}
