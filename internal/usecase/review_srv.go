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

type ReviewService interface {
	GetReviewByID(ctx context.Context, reviewID string) (*entity.ReviewWithCount, error)
	GetReviews(ctx context.Context, req *request.ListReviewsRequest) ([]*entity.ReviewWithCount, error)
	UpdateVotes(ctx context.Context, reviewID string, req *request.UpdateVotesRequest) (*entity.Review, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) GetReviewByID(ctx context.Context, reviewID string) (*entity.ReviewWithCount, error) {
	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	if review == nil {
		s.log.Warn("Review not found", zap.String("review_id", reviewID))
		return nil, apperror.NotFound(apperror.EntityReview)
	}

	count, err := s.repo.Review.CountComments(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("get review comment count: %w", err)
	}

	return &entity.ReviewWithCount{
		Review:       *review,
		CommentCount: count,
	}, nil
}

func (s *reviewService) GetReviews(ctx context.Context, req *request.ListReviewsRequest) ([]*entity.ReviewWithCount, error) {
	reviews, err := s.repo.Review.FindAll(ctx, repository.ReviewFilter{
		Category: req.Category,
		SortBy:   req.SortBy,
		Order:    req.Order,
	})
	if err != nil {
		return nil, fmt.Errorf("get reviews: %w", err)
	}

	s.log.Debug("Reviews retrieved",
		zap.String("category", req.Category),
		zap.String("sort_by", req.SortBy),
		zap.String("order", req.Order),
		zap.Int("count", len(reviews)),
	)
	return reviews, nil
}

// UpdateVotes checks the review exists, then applies the increment. The two
// statements are not in one transaction; a review deleted in between is
// still reported as not found because the update matches no row.
func (s *reviewService) UpdateVotes(ctx context.Context, reviewID string, req *request.UpdateVotesRequest) (*entity.Review, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update votes validation failed",
			zap.String("review_id", reviewID),
			zap.String("errors", utils.FormatValidationErrors(errs)),
		)
		return nil, apperror.BadRequest(apperror.MsgIncVotesMissing)
	}

	exists, err := s.repo.Review.Exists(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("update votes: %w", err)
	}
	if !exists {
		s.log.Warn("Review not found", zap.String("review_id", reviewID))
		return nil, apperror.NotFound(apperror.EntityReview)
	}

	review, err := s.repo.Review.IncrementVotes(ctx, reviewID, *req.IncVotes)
	if err != nil {
		return nil, fmt.Errorf("update votes: %w", err)
	}
	if review == nil {
		s.log.Warn("Review removed before votes update", zap.String("review_id", reviewID))
		return nil, apperror.NotFound(apperror.EntityReview)
	}

	s.log.Info("Review votes updated",
		zap.String("review_id", reviewID),
		zap.Int("inc_votes", *req.IncVotes),
		zap.Int("votes", review.Votes),
	)
	return review, nil
}
