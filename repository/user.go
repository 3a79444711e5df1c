package repository

import (
	"context"

	"github.com/membersbook/backend/domain"
)

type UserRepository interface {
	// List returns all users ordered by experience points, descending.
	List(ctx context.Context) ([]domain.UserProfile, error)
	// ListPending returns users awaiting admin approval.
	ListPending(ctx context.Context) ([]domain.UserProfile, error)
	GetByID(ctx context.Context, id string) (*domain.UserProfile, error)
	FindByEmail(ctx context.Context, email string) (*domain.UserProfile, error)
	FindByEmailAndPassword(ctx context.Context, email, password string) (*domain.UserProfile, error)
	// Create assigns an id and persists the profile. Status defaults to
	// pending and experience points to zero unless set by the caller.
	Create(ctx context.Context, user *domain.UserProfile) error
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
	UpdateClasse(ctx context.Context, id string, classe domain.Classe) error
	// AddExperiencePoints increments the stored counter in place; the
	// embedded engine serializes concurrent increments.
	AddExperiencePoints(ctx context.Context, id string, delta int) error
}
