package approval

import (
	"context"

	"go.uber.org/zap"

	"github.com/membersbook/backend/domain"
	"github.com/membersbook/backend/repository"
)

// ApprovalReward is credited to each party of a deal when an admin
// approves it. Rejection never awards points.
const ApprovalReward = 100

// UseCase drives the two admin approval queues.
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

// PendingDeals returns the deal approval queue.
func (uc *UseCase) PendingDeals(ctx context.Context) ([]domain.BusinessDeal, error) {
	all, err := uc.deals.List(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]domain.BusinessDeal, 0, len(all))
	for _, deal := range all {
		if deal.IsPending() {
			pending = append(pending, deal)
		}
	}
	return pending, nil
}

// PendingUsers returns the user approval queue.
func (uc *UseCase) PendingUsers(ctx context.Context) ([]domain.UserProfile, error) {
	return uc.users.ListPending(ctx)
}

// ApproveDeal publishes the deal and credits both parties. The repository
// performs the whole transition in one transaction.
func (uc *UseCase) ApproveDeal(ctx context.Context, dealID string) error {
	if err := uc.deals.Approve(ctx, dealID, ApprovalReward); err != nil {
		return err
	}
	uc.logger.Info("deal approved", zap.String("deal_id", dealID), zap.Int("reward", ApprovalReward))
	return nil
}

// RejectDeal removes the deal entirely. Rejected deals are not retained,
// unlike rejected users.
func (uc *UseCase) RejectDeal(ctx context.Context, dealID string) error {
	if err := uc.deals.UpdateStatus(ctx, dealID, domain.StatusRejected); err != nil {
		return err
	}
	uc.logger.Info("deal rejected and removed", zap.String("deal_id", dealID))
	return nil
}

// ApproveUser confirms the membership: the admin-chosen classe is applied
// first (it may differ from the one requested at signup), then the status.
func (uc *UseCase) ApproveUser(ctx context.Context, userID string, classe domain.Classe) error {
	if !classe.Valid() {
		return domain.NewError(domain.ErrCodeInvalid, "classe must be one of membro, infinity or sócio")
	}
	if err := uc.users.UpdateClasse(ctx, userID, classe); err != nil {
		return err
	}
	if err := uc.users.UpdateStatus(ctx, userID, domain.StatusApproved); err != nil {
		return err
	}
	uc.logger.Info("user approved", zap.String("user_id", userID), zap.String("classe", string(classe)))
	return nil
}

// RejectUser flags the account as rejected. The row is retained as a
// record of the application.
func (uc *UseCase) RejectUser(ctx context.Context, userID string) error {
	if err := uc.users.UpdateStatus(ctx, userID, domain.StatusRejected); err != nil {
		return err
	}
	uc.logger.Info("user rejected", zap.String("user_id", userID))
	return nil
}
