package usecase

import (
	"context"
	"fmt"

	"board-game-reviews/internal/apperror"
	"board-game-reviews/internal/data/entity"
	"board-game-reviews/internal/data/repository"
	"board-game-reviews/internal/dto/request"
	"board-game-reviews/pkg/utils"

	"go.uber.org/zap"
)

type CommentService interface {
	GetCommentsByReviewID(ctx context.Context, reviewID string) ([]*entity.Comment, error)
	CreateComment(ctx context.Context, reviewID string, req *request.CreateCommentRequest) (*entity.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
}

type commentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCommentService(repo *repository.Repository, log *zap.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With(zap.String("service", "comment")),
	}
}

// GetCommentsByReviewID tells a missing review (not found) apart from a
// review without comments (empty slice) with an explicit existence check.
func (s *commentService) GetCommentsByReviewID(ctx context.Context, reviewID string) ([]*entity.Comment, error) {
	if err := s.requireReview(ctx, reviewID); err != nil {
		return nil, err
	}

	comments, err := s.repo.Comment.FindByReviewID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("get comments: %w", err)
	}

	return comments, nil
}

// CreateComment runs its checks in order: body present, review exists,
// author exists. Only then is the row inserted.
func (s *commentService) CreateComment(ctx context.Context, reviewID string, req *request.CreateCommentRequest) (*entity.Comment, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create comment validation failed",
			zap.String("review_id", reviewID),
			zap.String("errors", utils.FormatValidationErrors(errs)),
		)
		return nil, apperror.BadRequest(apperror.MsgBodyMissing)
	}

	if err := s.requireReview(ctx, reviewID); err != nil {
		return nil, err
	}

	exists, err := s.repo.User.Exists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	if !exists {
		s.log.Warn("Comment author not found", zap.String("username", req.Username))
		return nil, apperror.NotFound(apperror.EntityUsername)
	}

	comment, err := s.repo.Comment.Create(ctx, reviewID, req.Username, req.Body)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return comment, nil
}

func (s *commentService) DeleteComment(ctx context.Context, commentID string) error {
	exists, err := s.repo.Comment.Exists(ctx, commentID)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if !exists {
		s.log.Warn("Comment not found", zap.String("comment_id", commentID))
		return apperror.NotFound(apperror.EntityComment)
	}

	deleted, err := s.repo.Comment.Delete(ctx, commentID)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if !deleted {
		s.log.Warn("Comment removed before delete", zap.String("comment_id", commentID))
		return apperror.NotFound(apperror.EntityComment)
	}

	return nil
}

func (s *commentService) requireReview(ctx context.Context, reviewID string) error {
	exists, err := s.repo.Review.Exists(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("check review: %w", err)
	}
	if !exists {
		s.log.Warn("Review not found", zap.String("review_id", reviewID))
		return apperror.NotFound(apperror.EntityReview)
	}
	return nil
}
