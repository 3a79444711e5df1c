package sqlite

import (
	"encoding/json"
	"fmt"

	"github.com/membersbook/backend/domain"
)

// userRow mirrors the users table layout. hasChildren is stored as an
// integer column and converted at this boundary.
type userRow struct {
	ID               string `db:"id"`
	Email            string `db:"email"`
	Password         string `db:"password"`
	Name             string `db:"name"`
	Company          string `db:"company"`
	Location         string `db:"location"`
	Sector           string `db:"sector"`
	Avatar           string `db:"avatar"`
	Bio              string `db:"bio"`
	Revenue          string `db:"revenue"`
	Age              int    `db:"age"`
	HasChildren      int    `db:"hasChildren"`
	Hobbies          string `db:"hobbies"`
	Experience       string `db:"experience"`
	Brands           string `db:"brands"`
	Role             string `db:"role"`
	Classe           string `db:"classe"`
	ExperiencePoints int    `db:"experiencePoints"`
	Status           string `db:"status"`
}

func (r userRow) toDomain() domain.UserProfile {
	return domain.UserProfile{
		ID:               r.ID,
		Email:            r.Email,
		Password:         r.Password,
		Name:             r.Name,
		Company:          r.Company,
		Location:         r.Location,
		Sector:           r.Sector,
		Avatar:           r.Avatar,
		Bio:              r.Bio,
		Revenue:          r.Revenue,
		Age:              r.Age,
		HasChildren:      r.HasChildren == 1,
		Hobbies:          r.Hobbies,
		Experience:       r.Experience,
		Brands:           r.Brands,
		Role:             domain.Role(r.Role),
		Classe:           domain.Classe(r.Classe),
		ExperiencePoints: r.ExperiencePoints,
		Status:           domain.Status(r.Status),
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// dealRow mirrors the deals table layout. Party snapshots are JSON text
// columns.
type dealRow struct {
	ID          string `db:"id"`
	PartyOne    string `db:"partyOne"`
	PartyTwo    string `db:"partyTwo"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Category    string `db:"category"`
	Value       string `db:"value"`
	Image       string `db:"image"`
	Congrats    int    `db:"congrats"`
	Shares      int    `db:"shares"`
	Status      string `db:"status"`
	CreatedAt   int64  `db:"createdAt"`
}

func (r dealRow) toDomain() (domain.BusinessDeal, error) {
	deal := domain.BusinessDeal{
		ID: r.ID,
		Deal: domain.DealInfo{
			Title:       r.Title,
			Description: r.Description,
			Category:    r.Category,
			Value:       r.Value,
			Image:       r.Image,
		},
		Stats:     domain.DealStats{Congrats: r.Congrats, Shares: r.Shares},
		Status:    domain.Status(r.Status),
		CreatedAt: r.CreatedAt,
	}
	if err := json.Unmarshal([]byte(r.PartyOne), &deal.PartyOne); err != nil {
		return deal, fmt.Errorf("decode partyOne of deal %s: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(r.PartyTwo), &deal.PartyTwo); err != nil {
		return deal, fmt.Errorf("decode partyTwo of deal %s: %w", r.ID, err)
	}
	return deal, nil
}
