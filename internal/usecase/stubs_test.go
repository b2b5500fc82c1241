package usecase

import (
	"context"

	"board-game-reviews/internal/data/entity"
	"board-game-reviews/internal/data/repository"
)

type stubCategoryRepo struct {
	findAll func(ctx context.Context) ([]*entity.Category, error)
}

func (s stubCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	return s.findAll(ctx)
}

type stubReviewRepo struct {
	findByID       func(ctx context.Context, id string) (*entity.Review, error)
	findAll        func(ctx context.Context, filter repository.ReviewFilter) ([]*entity.ReviewWithCount, error)
	exists         func(ctx context.Context, id string) (bool, error)
	countComments  func(ctx context.Context, id string) (int, error)
	incrementVotes func(ctx context.Context, id string, delta int) (*entity.Review, error)
}

func (s stubReviewRepo) FindByID(ctx context.Context, id string) (*entity.Review, error) {
	return s.findByID(ctx, id)
}

func (s stubReviewRepo) FindAll(ctx context.Context, filter repository.ReviewFilter) ([]*entity.ReviewWithCount, error) {
	return s.findAll(ctx, filter)
}

func (s stubReviewRepo) Exists(ctx context.Context, id string) (bool, error) {
	return s.exists(ctx, id)
}

func (s stubReviewRepo) CountComments(ctx context.Context, id string) (int, error) {
	return s.countComments(ctx, id)
}

func (s stubReviewRepo) IncrementVotes(ctx context.Context, id string, delta int) (*entity.Review, error) {
	return s.incrementVotes(ctx, id, delta)
}

type stubCommentRepo struct {
	findByReviewID func(ctx context.Context, reviewID string) ([]*entity.Comment, error)
	exists         func(ctx context.Context, id string) (bool, error)
	create         func(ctx context.Context, reviewID, author, body string) (*entity.Comment, error)
	delete         func(ctx context.Context, id string) (bool, error)
}

func (s stubCommentRepo) FindByReviewID(ctx context.Context, reviewID string) ([]*entity.Comment, error) {
	return s.findByReviewID(ctx, reviewID)
}

func (s stubCommentRepo) Exists(ctx context.Context, id string) (bool, error) {
	return s.exists(ctx, id)
}

func (s stubCommentRepo) Create(ctx context.Context, reviewID, author, body string) (*entity.Comment, error) {
	return s.create(ctx, reviewID, author, body)
}

func (s stubCommentRepo) Delete(ctx context.Context, id string) (bool, error) {
	return s.delete(ctx, id)
}

type stubUserRepo struct {
	findAll func(ctx context.Context) ([]*entity.User, error)
	exists  func(ctx context.Context, username string) (bool, error)
}

func (s stubUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	return s.findAll(ctx)
}

func (s stubUserRepo) Exists(ctx context.Context, username string) (bool, error) {
	return s.exists(ctx, username)
}
