package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/membersbook/backend/domain"
	"github.com/membersbook/backend/repository"
)

const userColumns = `id, email, password, name, company, location, sector, avatar, bio, revenue,
	age, hasChildren, hobbies, experience, brands, role, classe, experiencePoints, status`

type userRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewUserRepository instantiates a SQLite-backed user repository.
func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db, now: time.Now}
}

func (r *userRepository) List(ctx context.Context) ([]domain.UserProfile, error) {
	query := fmt.Sprintf("SELECT %s FROM users ORDER BY experiencePoints DESC", userColumns)

	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	users := make([]domain.UserProfile, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toDomain())
	}
	return users, nil
}

func (r *userRepository) ListPending(ctx context.Context) ([]domain.UserProfile, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE status = ?", userColumns)

	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, query, string(domain.StatusPending)); err != nil {
		return nil, err
	}

	users := make([]domain.UserProfile, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toDomain())
	}
	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = ?", userColumns)
	return r.getOne(ctx, query, id)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE email = ?", userColumns)
	return r.getOne(ctx, query, strings.ToLower(email))
}

func (r *userRepository) FindByEmailAndPassword(ctx context.Context, email, password string) (*domain.UserProfile, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE email = ? AND password = ?", userColumns)
	return r.getOne(ctx, query, strings.ToLower(email), password)
}

func (r *userRepository) getOne(ctx context.Context, query string, args ...interface{}) (*domain.UserProfile, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	user := row.toDomain()
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.UserProfile) error {
	if user == nil {
		return domain.ErrInvalidPayload
	}

	user.ID = fmt.Sprintf("user_%d", r.now().UnixMilli())
	user.Email = strings.ToLower(user.Email)
	if user.Status == "" {
		user.Status = domain.StatusPending
	}

	query := fmt.Sprintf(`INSERT INTO users (%s)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, userColumns)

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.Password, user.Name, user.Company,
		user.Location, user.Sector, user.Avatar, user.Bio, user.Revenue,
		user.Age, boolToInt(user.HasChildren), user.Hobbies, user.Experience,
		user.Brands, string(user.Role), string(user.Classe),
		user.ExperiencePoints, string(user.Status),
	)
	return err
}

func (r *userRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	_, err := r.db.ExecContext(ctx, "UPDATE users SET status = ? WHERE id = ?", string(status), id)
	return err
}

func (r *userRepository) UpdateClasse(ctx context.Context, id string, classe domain.Classe) error {
	_, err := r.db.ExecContext(ctx, "UPDATE users SET classe = ? WHERE id = ?", string(classe), id)
	return err
}

func (r *userRepository) AddExperiencePoints(ctx context.Context, id string, delta int) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET experiencePoints = experiencePoints + ? WHERE id = ?", delta, id)
	return err
}
