package usecase

import (
	"context"
	"errors"
	"testing"

	"board-game-reviews/internal/apperror"
	"board-game-reviews/internal/data/entity"
	"board-game-reviews/internal/data/repository"
	"board-game-reviews/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func intPtr(v int) *int { return &v }

func TestReviewService_GetReviewByID(t *testing.T) {
	ctx := context.Background()

	t.Run("joins comment count", func(t *testing.T) {
		repo := &repository.Repository{Review: stubReviewRepo{
			findByID: func(_ context.Context, id string) (*entity.Review, error) {
				return &entity.Review{ReviewID: 2, Title: "Jenga", Votes: 5}, nil
			},
			countComments: func(_ context.Context, id string) (int, error) {
				assert.Equal(t, "2", id)
				return 3, nil
			},
		}}

		got, err := NewReviewService(repo, zaptest.NewLogger(t)).GetReviewByID(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, 2, got.ReviewID)
		assert.Equal(t, "Jenga", got.Title)
		assert.Equal(t, 3, got.CommentCount)
	})

	t.Run("missing review", func(t *testing.T) {
		repo := &repository.Repository{Review: stubReviewRepo{
			findByID: func(context.Context, string) (*entity.Review, error) { return nil, nil },
			countComments: func(context.Context, string) (int, error) {
				t.Fatal("count must not run for a missing review")
				return 0, nil
			},
		}}

		_, err := NewReviewService(repo, zaptest.NewLogger(t)).GetReviewByID(ctx, "9999")
		assert.ErrorIs(t, err, apperror.NotFound(apperror.EntityReview))
	})

	t.Run("storage errors are wrapped, not replaced", func(t *testing.T) {
		storageErr := errors.New("invalid input syntax")
		repo := &repository.Repository{Review: stubReviewRepo{
			findByID: func(context.Context, string) (*entity.Review, error) { return nil, storageErr },
		}}

		_, err := NewReviewService(repo, zaptest.NewLogger(t)).GetReviewByID(ctx, "dog")
		assert.ErrorIs(t, err, storageErr)
	})
}

func TestReviewService_GetReviews_PassesFilterThrough(t *testing.T) {
	var got repository.ReviewFilter
	repo := &repository.Repository{Review: stubReviewRepo{
		findAll: func(_ context.Context, filter repository.ReviewFilter) ([]*entity.ReviewWithCount, error) {
			got = filter
			return []*entity.ReviewWithCount{}, nil
		},
	}}

	reviews, err := NewReviewService(repo, zaptest.NewLogger(t)).GetReviews(context.Background(),
		&request.ListReviewsRequest{Category: "dexterity", SortBy: "votes", Order: "dogs"})
	require.NoError(t, err)
	assert.Empty(t, reviews)
	assert.Equal(t, repository.ReviewFilter{Category: "dexterity", SortBy: "votes", Order: "dogs"}, got)
}

func TestReviewService_UpdateVotes(t *testing.T) {
	ctx := context.Background()

	t.Run("applies negative delta without clamping", func(t *testing.T) {
		repo := &repository.Repository{Review: stubReviewRepo{
			exists: func(context.Context, string) (bool, error) { return true, nil },
			incrementVotes: func(_ context.Context, id string, delta int) (*entity.Review, error) {
				assert.Equal(t, "1", id)
				return &entity.Review{ReviewID: 1, Votes: 1 + delta}, nil
			},
		}}

		got, err := NewReviewService(repo, zaptest.NewLogger(t)).UpdateVotes(ctx, "1",
			&request.UpdateVotesRequest{IncVotes: intPtr(-100)})
		require.NoError(t, err)
		assert.Equal(t, -99, got.Votes)
	})

	t.Run("missing inc_votes", func(t *testing.T) {
		repo := &repository.Repository{Review: stubReviewRepo{
			exists: func(context.Context, string) (bool, error) {
				t.Fatal("existence check must not run without inc_votes")
				return false, nil
			},
		}}

		_, err := NewReviewService(repo, zaptest.NewLogger(t)).UpdateVotes(ctx, "1", &request.UpdateVotesRequest{})
		assert.ErrorIs(t, err, apperror.BadRequest(apperror.MsgIncVotesMissing))
	})

	t.Run("zero increment is allowed", func(t *testing.T) {
		repo := &repository.Repository{Review: stubReviewRepo{
			exists: func(context.Context, string) (bool, error) { return true, nil },
			incrementVotes: func(_ context.Context, _ string, delta int) (*entity.Review, error) {
				return &entity.Review{ReviewID: 1, Votes: 1 + delta}, nil
			},
		}}

		got, err := NewReviewService(repo, zaptest.NewLogger(t)).UpdateVotes(ctx, "1",
			&request.UpdateVotesRequest{IncVotes: intPtr(0)})
		require.NoError(t, err)
		assert.Equal(t, 1, got.Votes)
	})

	t.Run("missing review", func(t *testing.T) {
		repo := &repository.Repository{Review: stubReviewRepo{
			exists: func(context.Context, string) (bool, error) { return false, nil },
			incrementVotes: func(context.Context, string, int) (*entity.Review, error) {
				t.Fatal("update must not run for a missing review")
				return nil, nil
			},
		}}

		_, err := NewReviewService(repo, zaptest.NewLogger(t)).UpdateVotes(ctx, "9999",
			&request.UpdateVotesRequest{IncVotes: intPtr(1)})
		assert.ErrorIs(t, err, apperror.NotFound(apperror.EntityReview))
	})

	t.Run("review deleted between check and update", func(t *testing.T) {
		repo := &repository.Repository{Review: stubReviewRepo{
			exists:         func(context.Context, string) (bool, error) { return true, nil },
			incrementVotes: func(context.Context, string, int) (*entity.Review, error) { return nil, nil },
		}}

		_, err := NewReviewService(repo, zaptest.NewLogger(t)).UpdateVotes(ctx, "1",
			&request.UpdateVotesRequest{IncVotes: intPtr(1)})
		assert.ErrorIs(t, err, apperror.NotFound(apperror.EntityReview))
	})
}
