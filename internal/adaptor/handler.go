package adaptor

import (
	"board-game-reviews/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	API      *APIHandler
	Category *CategoryHandler
	Review   *ReviewHandler
	Comment  *CommentHandler
	User     *UserHandler
	Errors   *ErrorHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	errs := NewErrorHandler(log)

	return &Handler{
		API:      NewAPIHandler(log),
		Category: NewCategoryHandler(service.Category, errs, log),
		Review:   NewReviewHandler(service.Review, errs, log),
		Comment:  NewCommentHandler(service.Comment, errs, log),
		User:     NewUserHandler(service.User, errs, log),
		Errors:   errs,
	}
}
