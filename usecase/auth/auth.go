package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/membersbook/backend/domain"
	"github.com/membersbook/backend/repository"
)

// Config carries token-signing settings for the HTTP surface.
type Config struct {
	JWTSecret string
	JWTIssuer string
	TokenTTL  time.Duration
}

type UseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	cfg      Config
	logger   *zap.Logger
}

func New(users repository.UserRepository, sessions repository.SessionRepository, cfg Config, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	return &UseCase{
		users:    users,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

// Login authenticates by exact email+password match. Only approved accounts
// may log in; bad credentials and unapproved accounts fail identically.
// On success the session pointer is persisted and a signed token issued.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*domain.UserProfile, string, error) {
	user, err := uc.users.FindByEmailAndPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrLoginFailed
		}
		return nil, "", err
	}
	if !user.IsApproved() {
		return nil, "", domain.ErrLoginFailed
	}

	if err := uc.sessions.Save(ctx, &domain.Session{UserID: user.ID, CreatedAt: time.Now()}); err != nil {
		return nil, "", err
	}

	token, err := uc.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	uc.logger.Info("user logged in", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, token, nil
}

// Logout clears the persisted session pointer.
func (uc *UseCase) Logout(ctx context.Context) error {
	return uc.sessions.Clear(ctx)
}

// Restore resolves the persisted session to a profile. The stored status is
// not re-validated here: a user rejected after a prior approval stays
// restorable until explicit logout. That gap is surfaced as a warning
// instead of silently changing the behavior.
func (uc *UseCase) Restore(ctx context.Context) (*domain.UserProfile, error) {
	session, err := uc.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}

	user, err := uc.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Stale pointer, e.g. after a database reset.
			_ = uc.sessions.Clear(ctx)
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	if !user.IsApproved() {
		uc.logger.Warn("restored session for a user that is no longer approved",
			zap.String("user_id", user.ID), zap.String("status", string(user.Status)))
	}
	return user, nil
}

// SignupInput is the validated boundary payload for registration.
type SignupInput struct {
	Email       string        `json:"email"`
	Password    string        `json:"password"`
	Name        string        `json:"name"`
	Company     string        `json:"company"`
	Location    string        `json:"location"`
	Sector      string        `json:"sector"`
	Avatar      string        `json:"avatar"`
	Bio         string        `json:"bio"`
	Revenue     string        `json:"revenue"`
	Age         int           `json:"age"`
	HasChildren bool          `json:"hasChildren"`
	Hobbies     string        `json:"hobbies"`
	Experience  string        `json:"experience"`
	Brands      string        `json:"brands"`
	Classe      domain.Classe `json:"classe"`
}

func (in SignupInput) Validate() error {
	if strings.TrimSpace(in.Email) == "" || !strings.Contains(in.Email, "@") {
		return domain.NewError(domain.ErrCodeInvalid, "a valid email address is required")
	}
	if in.Password == "" {
		return domain.NewError(domain.ErrCodeInvalid, "a password is required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return domain.NewError(domain.ErrCodeInvalid, "a name is required")
	}
	if !in.Classe.Valid() {
		return domain.NewError(domain.ErrCodeInvalid, "classe must be one of membro, infinity or sócio")
	}
	return nil
}

// Signup registers a new member. The account enters the admin approval
// queue (status pending, zero experience points) and is never
// auto-authenticated. Duplicate emails are rejected by a case-insensitive
// pre-check rather than by relying on the unique constraint.
func (uc *UseCase) Signup(ctx context.Context, in SignupInput) (*domain.UserProfile, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	existing, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailInUse
	}

	user := &domain.UserProfile{
		Email:            in.Email,
		Password:         in.Password,
		Name:             in.Name,
		Company:          in.Company,
		Location:         in.Location,
		Sector:           in.Sector,
		Avatar:           in.Avatar,
		Bio:              in.Bio,
		Revenue:          in.Revenue,
		Age:              in.Age,
		HasChildren:      in.HasChildren,
		Hobbies:          in.Hobbies,
		Experience:       in.Experience,
		Brands:           in.Brands,
		Role:             domain.RoleMember,
		Classe:           in.Classe,
		ExperiencePoints: 0,
		Status:           domain.StatusPending,
	}

	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("signup submitted for review", zap.String("user_id", user.ID))
	return user, nil
}

func (uc *UseCase) issueToken(user *domain.UserProfile) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"iss":     uc.cfg.JWTIssuer,
		"iat":     now.Unix(),
		"exp":     now.Add(uc.cfg.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(uc.cfg.JWTSecret))
}
