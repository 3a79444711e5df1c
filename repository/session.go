package repository

import (
	"context"

	"github.com/membersbook/backend/domain"
)

type SessionRepository interface {
	// Current returns the persisted session, or domain.ErrSessionNotFound
	// when nobody is logged in.
	Current(ctx context.Context) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	Clear(ctx context.Context) error
}
