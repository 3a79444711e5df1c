package member_test

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
	sqliteRepo "github.com/membersbook/backend/repository/sqlite"
	"github.com/membersbook/backend/usecase/member"
)

func newMemberUseCase(t *testing.T) *member.UseCase {
	t.Helper()

	db, err := sqlx.Open("sqlite", "file:"+filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqliteInfra.EnsureSchema(context.Background(), db, true, nil))

	return member.New(sqliteRepo.NewUserRepository(db), nil)
}

func TestRanking_OrdersByExperiencePoints(t *testing.T) {
	uc := newMemberUseCase(t)

	ranking, err := uc.Ranking(context.Background())
	require.NoError(t, err)
	require.Len(t, ranking, 5)

	assert.Equal(t, "Roberto Lima", ranking[0].Name)
	assert.Equal(t, "Carlos Silva", ranking[1].Name)
	assert.Equal(t, "Ana Costa", ranking[2].Name)
	for i := 1; i < len(ranking); i++ {
		assert.GreaterOrEqual(t, ranking[i-1].ExperiencePoints, ranking[i].ExperiencePoints)
	}
}

func TestProfile(t *testing.T) {
	uc := newMemberUseCase(t)
	ctx := context.Background()

	profile, err := uc.Profile(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Ana Costa", profile.Name)
	assert.Equal(t, "Inovare Consultoria", profile.Company)

	_, err = uc.Profile(ctx, "user_missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
