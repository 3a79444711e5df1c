package feed

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/membersbook/backend/domain"
	"github.com/membersbook/backend/repository"
)

type UseCase struct {
	deals  repository.DealRepository
	users  repository.UserRepository
	logger *zap.Logger
}

func New(deals repository.DealRepository, users repository.UserRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		deals:  deals,
		users:  users,
		logger: logger,
	}
}

// Feed returns the member-facing feed: approved deals only, newest first.
func (uc *UseCase) Feed(ctx context.Context) ([]domain.BusinessDeal, error) {
	all, err := uc.deals.List(ctx)
	if err != nil {
		return nil, err
	}

	feed := make([]domain.BusinessDeal, 0, len(all))
	for _, deal := range all {
		if deal.Status == domain.StatusApproved {
			feed = append(feed, deal)
		}
	}
	return feed, nil
}

// SubmitInput is the validated boundary payload for announcing a deal.
type SubmitInput struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Value        string `json:"value"`
	Image        string `json:"image"`
	CounterParty string `json:"counterPartyId"`
}

func (in SubmitInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return domain.NewError(domain.ErrCodeInvalid, "a title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return domain.NewError(domain.ErrCodeInvalid, "a description is required")
	}
	if strings.TrimSpace(in.Category) == "" {
		return domain.NewError(domain.ErrCodeInvalid, "a category is required")
	}
	if strings.TrimSpace(in.Value) == "" {
		return domain.NewError(domain.ErrCodeInvalid, "a deal value is required")
	}
	if strings.TrimSpace(in.CounterParty) == "" {
		return domain.NewError(domain.ErrCodeInvalid, "a counterparty is required")
	}
	return nil
}

// Submit announces a closed deal between the author and the chosen
// counterparty. Party snapshots are captured from the current profiles;
// the deal always enters the approval queue as pending with zeroed
// engagement counters.
func (uc *UseCase) Submit(ctx context.Context, authorID string, in SubmitInput) (*domain.BusinessDeal, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	author, err := uc.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	counterparty, err := uc.users.GetByID(ctx, in.CounterParty)
	if err != nil {
		return nil, err
	}

	deal := &domain.BusinessDeal{
		PartyOne: author.PartySnapshot(),
		PartyTwo: counterparty.PartySnapshot(),
		Deal: domain.DealInfo{
			Title:       in.Title,
			Description: in.Description,
			Category:    in.Category,
			Value:       in.Value,
			Image:       in.Image,
		},
		Stats:  domain.DealStats{},
		Status: domain.StatusPending,
	}

	if err := uc.deals.Insert(ctx, deal); err != nil {
		return nil, err
	}

	uc.logger.Info("deal submitted for review",
		zap.String("deal_id", deal.ID),
		zap.String("author_id", author.ID),
		zap.String("counterparty_id", counterparty.ID))
	return deal, nil
}
