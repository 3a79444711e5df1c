package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/membersbook/backend/domain"
	"github.com/membersbook/backend/repository"
)

const dealColumns = `id, partyOne, partyTwo, title, description, category, value, image,
	congrats, shares, status, createdAt`

type dealRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewDealRepository instantiates a SQLite-backed deal repository.
func NewDealRepository(db *sqlx.DB) repository.DealRepository {
	return &dealRepository{db: db, now: time.Now}
}

func (r *dealRepository) List(ctx context.Context) ([]domain.BusinessDeal, error) {
	query := fmt.Sprintf("SELECT %s FROM deals ORDER BY createdAt DESC", dealColumns)

	var rows []dealRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	deals := make([]domain.BusinessDeal, 0, len(rows))
	for _, row := range rows {
		deal, err := row.toDomain()
		if err != nil {
			// This repository is the only writer, so stored snapshots
			// should always decode.
			return nil, err
		}
		deals = append(deals, deal)
	}
	return deals, nil
}

func (r *dealRepository) Insert(ctx context.Context, deal *domain.BusinessDeal) error {
	if deal == nil {
		return domain.ErrInvalidPayload
	}

	now := r.now().UnixMilli()
	deal.ID = fmt.Sprintf("deal_%d", now)
	deal.CreatedAt = now

	partyOne, err := json.Marshal(deal.PartyOne)
	if err != nil {
		return err
	}
	partyTwo, err := json.Marshal(deal.PartyTwo)
	if err != nil {
		return err
	}

	query := fmt.Sprintf("INSERT INTO deals (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)", dealColumns)
	_, err = r.db.ExecContext(ctx, query,
		deal.ID, string(partyOne), string(partyTwo),
		deal.Deal.Title, deal.Deal.Description, deal.Deal.Category,
		deal.Deal.Value, deal.Deal.Image,
		deal.Stats.Congrats, deal.Stats.Shares,
		string(deal.Status), deal.CreatedAt,
	)
	return err
}

// UpdateStatus applies the asymmetric workflow transition: approval keeps
// the row, rejection removes it. Zero affected rows are not treated as an
// error.
func (r *dealRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	switch status {
	case domain.StatusApproved:
		_, err := r.db.ExecContext(ctx, "UPDATE deals SET status = ? WHERE id = ?", string(status), id)
		return err
	case domain.StatusRejected:
		_, err := r.db.ExecContext(ctx, "DELETE FROM deals WHERE id = ?", id)
		return err
	default:
		return domain.NewError(domain.ErrCodeInvalid, fmt.Sprintf("unsupported deal status transition: %s", status))
	}
}

// Approve credits reward points to both parties and marks the deal
// approved in a single transaction, so the side effects are never
// partially applied.
func (r *dealRepository) Approve(ctx context.Context, id string, reward int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var row struct {
		PartyOne string `db:"partyOne"`
		PartyTwo string `db:"partyTwo"`
	}
	if err := tx.GetContext(ctx, &row, "SELECT partyOne, partyTwo FROM deals WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrDealNotFound
		}
		return err
	}

	var partyOne, partyTwo domain.Party
	if err := json.Unmarshal([]byte(row.PartyOne), &partyOne); err != nil {
		return fmt.Errorf("decode partyOne of deal %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(row.PartyTwo), &partyTwo); err != nil {
		return fmt.Errorf("decode partyTwo of deal %s: %w", id, err)
	}

	for _, partyID := range []string{partyOne.ID, partyTwo.ID} {
		if _, err := tx.ExecContext(ctx,
			"UPDATE users SET experiencePoints = experiencePoints + ? WHERE id = ?", reward, partyID); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE deals SET status = ? WHERE id = ?", string(domain.StatusApproved), id); err != nil {
		return err
	}

	return tx.Commit()
}
