package approval_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/membersbook/backend/domain"
	sqliteInfra "github.com/membersbook/backend/internal/infrastructure/sqlite"
	"github.com/membersbook/backend/repository"
	sqliteRepo "github.com/membersbook/backend/repository/sqlite"
	"github.com/membersbook/backend/usecase/approval"
)

type approvalEnv struct {
	uc    *approval.UseCase
	deals repository.DealRepository
	users repository.UserRepository
}

func newApprovalEnv(t *testing.T) approvalEnv {
	t.Helper()

	db, err := sqlx.Open("sqlite", "file:"+filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqliteInfra.EnsureSchema(context.Background(), db, true, nil))

	deals := sqliteRepo.NewDealRepository(db)
	users := sqliteRepo.NewUserRepository(db)
	return approvalEnv{
		uc:    approval.New(deals, users, nil),
		deals: deals,
		users: users,
	}
}

func experiencePoints(t *testing.T, users repository.UserRepository, id string) int {
	t.Helper()
	user, err := users.GetByID(context.Background(), id)
	require.NoError(t, err)
	return user.ExperiencePoints
}

func TestPendingDeals_OnlyPendingInQueue(t *testing.T) {
	env := newApprovalEnv(t)

	queue, err := env.uc.PendingDeals(context.Background())
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, "3", queue[0].ID)
}

func TestApproveDeal_CreditsBothParties(t *testing.T) {
	env := newApprovalEnv(t)
	ctx := context.Background()

	// Deal "3" is between Ana ("2", 980 points) and Carlos ("1", 1250).
	require.NoError(t, env.uc.ApproveDeal(ctx, "3"))

	assert.Equal(t, 980+approval.ApprovalReward, experiencePoints(t, env.users, "2"))
	assert.Equal(t, 1250+approval.ApprovalReward, experiencePoints(t, env.users, "1"))

	queue, err := env.uc.PendingDeals(ctx)
	require.NoError(t, err)
	assert.Empty(t, queue)

	deals, err := env.deals.List(ctx)
	require.NoError(t, err)
	require.Len(t, deals, 3)
	assert.Equal(t, domain.StatusApproved, deals[0].Status)
}

func TestApproveDeal_UnknownDealAwardsNothing(t *testing.T) {
	env := newApprovalEnv(t)
	ctx := context.Background()

	err := env.uc.ApproveDeal(ctx, "deal_missing")
	assert.ErrorIs(t, err, domain.ErrDealNotFound)

	assert.Equal(t, 980, experiencePoints(t, env.users, "2"))
	assert.Equal(t, 1250, experiencePoints(t, env.users, "1"))
}

func TestRejectDeal_RemovesRecordWithoutReward(t *testing.T) {
	env := newApprovalEnv(t)
	ctx := context.Background()

	require.NoError(t, env.uc.RejectDeal(ctx, "3"))

	deals, err := env.deals.List(ctx)
	require.NoError(t, err)
	assert.Len(t, deals, 2)

	assert.Equal(t, 980, experiencePoints(t, env.users, "2"))
	assert.Equal(t, 1250, experiencePoints(t, env.users, "1"))
}

func TestApproveUser_AppliesClasseAndStatus(t *testing.T) {
	env := newApprovalEnv(t)
	ctx := context.Background()

	applicant := domain.UserProfile{
		Email: "nova@example.com", Password: "x", Name: "Nova",
		Role: domain.RoleMember, Classe: domain.ClasseMembro,
	}
	require.NoError(t, env.users.Create(ctx, &applicant))

	// The admin may grant a different classe than the one requested.
	require.NoError(t, env.uc.ApproveUser(ctx, applicant.ID, domain.ClasseSocio))

	approved, err := env.users.GetByID(ctx, applicant.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, approved.Status)
	assert.Equal(t, domain.ClasseSocio, approved.Classe)

	queue, err := env.uc.PendingUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, queue)
}

func TestApproveUser_InvalidClasse(t *testing.T) {
	env := newApprovalEnv(t)

	err := env.uc.ApproveUser(context.Background(), "1", "platinum")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestRejectUser_FlagsButRetainsRecord(t *testing.T) {
	env := newApprovalEnv(t)
	ctx := context.Background()

	applicant := domain.UserProfile{
		Email: "nova@example.com", Password: "x", Name: "Nova",
		Role: domain.RoleMember, Classe: domain.ClasseMembro,
	}
	require.NoError(t, env.users.Create(ctx, &applicant))

	require.NoError(t, env.uc.RejectUser(ctx, applicant.ID))

	rejected, err := env.users.GetByID(ctx, applicant.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, rejected.Status)

	queue, err := env.uc.PendingUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, queue)
}

func TestPendingUsers_ListsApplicants(t *testing.T) {
	env := newApprovalEnv(t)
	ctx := context.Background()

	applicant := domain.UserProfile{
		Email: "nova@example.com", Password: "x", Name: "Nova",
		Role: domain.RoleMember, Classe: domain.ClasseMembro,
	}
	require.NoError(t, env.users.Create(ctx, &applicant))

	queue, err := env.uc.PendingUsers(ctx)
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, applicant.ID, queue[0].ID)
}
