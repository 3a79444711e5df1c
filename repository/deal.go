package repository

import (
	"context"

	"github.com/membersbook/backend/domain"
)

type DealRepository interface {
	// List returns all deals ordered by creation time, descending.
	List(ctx context.Context) ([]domain.BusinessDeal, error)
	// Insert assigns id and createdAt and persists the deal with the
	// status provided by the caller.
	Insert(ctx context.Context, deal *domain.BusinessDeal) error
	// UpdateStatus applies the workflow transition: approved updates the
	// row in place, rejected deletes it outright. Unknown ids are a
	// silent no-op.
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
	// Approve marks the deal approved and credits reward points to both
	// parties within a single transaction.
	Approve(ctx context.Context, id string, reward int) error
}
