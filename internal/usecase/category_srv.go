package usecase

import (
	"context"
	"fmt"

	"board-game-reviews/internal/data/entity"
	"board-game-reviews/internal/data/repository"

	"go.uber.org/zap"
)

type CategoryService interface {
	GetCategories(ctx context.Context) ([]*entity.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	log          *zap.Logger
}

func NewCategoryService(categoryRepo repository.CategoryRepository, log *zap.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		log:          log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) GetCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}

	s.log.Debug("Categories retrieved", zap.Int("count", len(categories)))
	return categories, nil
}
