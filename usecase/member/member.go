package member

import (
	"context"

	"go.uber.org/zap"

	"github.com/membersbook/backend/domain"
	"github.com/membersbook/backend/repository"
)

type UseCase struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func New(users repository.UserRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:  users,
		logger: logger,
	}
}

// Ranking lists all members ordered by experience points, descending.
func (uc *UseCase) Ranking(ctx context.Context) ([]domain.UserProfile, error) {
	return uc.users.List(ctx)
}

func (uc *UseCase) Profile(ctx context.Context, id string) (*domain.UserProfile, error) {
	return uc.users.GetByID(ctx, id)
}
