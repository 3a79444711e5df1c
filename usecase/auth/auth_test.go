package auth_test

import (
	"context"
	"path/filepath"
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/membersbook/backend/domain"
	sqliteInfra "github.com/membersbook/backend/internal/infrastructure/sqlite"
	"github.com/membersbook/backend/repository"
	boltRepo "github.com/membersbook/backend/repository/bolt"
	sqliteRepo "github.com/membersbook/backend/repository/sqlite"
	"github.com/membersbook/backend/usecase/auth"
)

const testSecret = "test-secret"

type authEnv struct {
	uc       *auth.UseCase
	users    repository.UserRepository
	sessions *boltRepo.Store
	db       *sqlx.DB
}

func newAuthEnv(t *testing.T, seed bool) authEnv {
	t.Helper()

	dir := t.TempDir()
	db, err := sqlx.Open("sqlite", "file:"+filepath.Join(dir, "app.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqliteInfra.EnsureSchema(context.Background(), db, seed, nil))

	sessions, err := boltRepo.Open(filepath.Join(dir, "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sessions.Close() })

	users := sqliteRepo.NewUserRepository(db)
	uc := auth.New(users, sessions, auth.Config{
		JWTSecret: testSecret,
		JWTIssuer: "membersbook-test",
	}, nil)

	return authEnv{uc: uc, users: users, sessions: sessions, db: db}
}

func validSignup(email string) auth.SignupInput {
	return auth.SignupInput{
		Email:    email,
		Password: "secret",
		Name:     "Alice",
		Company:  "Acme",
		Classe:   domain.ClasseMembro,
	}
}

func TestSignup_NewEmailEntersApprovalQueue(t *testing.T) {
	env := newAuthEnv(t, false)
	ctx := context.Background()

	created, err := env.uc.Signup(ctx, validSignup("alice@x.com"))
	require.NoError(t, err)

	found, err := env.users.FindByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, domain.StatusPending, found.Status)
	assert.Equal(t, 0, found.ExperiencePoints)
	assert.Equal(t, domain.RoleMember, found.Role)

	// Signup never auto-authenticates.
	_, err = env.sessions.Current(ctx)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSignup_DuplicateEmailIsRejected(t *testing.T) {
	env := newAuthEnv(t, false)
	ctx := context.Background()

	_, err := env.uc.Signup(ctx, validSignup("alice@x.com"))
	require.NoError(t, err)

	// The pre-check is case-insensitive.
	_, err = env.uc.Signup(ctx, validSignup("ALICE@X.com"))
	assert.ErrorIs(t, err, domain.ErrEmailInUse)

	users, err := env.users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestSignup_Validation(t *testing.T) {
	env := newAuthEnv(t, false)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*auth.SignupInput)
	}{
		{"missing email", func(in *auth.SignupInput) { in.Email = "" }},
		{"malformed email", func(in *auth.SignupInput) { in.Email = "not-an-email" }},
		{"missing password", func(in *auth.SignupInput) { in.Password = "" }},
		{"missing name", func(in *auth.SignupInput) { in.Name = "  " }},
		{"invalid classe", func(in *auth.SignupInput) { in.Classe = "platinum" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validSignup("valid@x.com")
			tc.mutate(&in)
			_, err := env.uc.Signup(ctx, in)
			assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
		})
	}
}

func TestLogin_ApprovedSeedUser(t *testing.T) {
	env := newAuthEnv(t, true)
	ctx := context.Background()

	user, token, err := env.uc.Login(ctx, "email@gmail.com", "123")
	require.NoError(t, err)
	assert.Equal(t, "Carlos Silva", user.Name)
	assert.Equal(t, domain.RoleAdmin, user.Role)

	parsed, err := jwtlib.Parse(token, func(*jwtlib.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwtlib.MapClaims)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, "admin", claims["role"])

	session, err := env.sessions.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.UserID)
}

func TestLogin_WrongCredentials(t *testing.T) {
	env := newAuthEnv(t, true)
	ctx := context.Background()

	_, _, err := env.uc.Login(ctx, "email@gmail.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrLoginFailed)

	_, _, err = env.uc.Login(ctx, "nobody@x.com", "123")
	assert.ErrorIs(t, err, domain.ErrLoginFailed)
}

func TestLogin_PendingUserUntilApproved(t *testing.T) {
	env := newAuthEnv(t, false)
	ctx := context.Background()

	alice, err := env.uc.Signup(ctx, validSignup("alice@x.com"))
	require.NoError(t, err)

	// Correct credentials, but the account is still pending.
	_, _, err = env.uc.Login(ctx, "alice@x.com", "secret")
	assert.ErrorIs(t, err, domain.ErrLoginFailed)

	require.NoError(t, env.users.UpdateStatus(ctx, alice.ID, domain.StatusApproved))

	logged, _, err := env.uc.Login(ctx, "alice@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, logged.ID)
	assert.Equal(t, "Alice", logged.Name)
	assert.Equal(t, "Acme", logged.Company)
}

func TestLogout_ClearsSession(t *testing.T) {
	env := newAuthEnv(t, true)
	ctx := context.Background()

	_, _, err := env.uc.Login(ctx, "email@gmail.com", "123")
	require.NoError(t, err)

	require.NoError(t, env.uc.Logout(ctx))

	_, err = env.sessions.Current(ctx)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRestore_ResolvesPersistedSession(t *testing.T) {
	env := newAuthEnv(t, true)
	ctx := context.Background()

	user, _, err := env.uc.Login(ctx, "ana@inovare.com", "123")
	require.NoError(t, err)

	restored, err := env.uc.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, restored.ID)
}

func TestRestore_WithoutSession(t *testing.T) {
	env := newAuthEnv(t, true)

	_, err := env.uc.Restore(context.Background())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRestore_DoesNotRevalidateStatus(t *testing.T) {
	env := newAuthEnv(t, true)
	ctx := context.Background()

	user, _, err := env.uc.Login(ctx, "ana@inovare.com", "123")
	require.NoError(t, err)

	// Rejected after login: restore still resolves until explicit logout.
	require.NoError(t, env.users.UpdateStatus(ctx, user.ID, domain.StatusRejected))

	restored, err := env.uc.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, restored.Status)
}
