package usecase

import (
	"context"
	"fmt"

	"board-game-reviews/internal/data/entity"
	"board-game-reviews/internal/data/repository"

	"go.uber.org/zap"
)

type UserService interface {
	GetUsers(ctx context.Context) ([]*entity.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := us.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	us.log.Debug("Users retrieved", zap.Int("count", len(users)))
	return users, nil
}
