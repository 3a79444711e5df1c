package domain

// Role is the access-level category gating which actions are available.
type Role string

const (
	// RoleGuest is the virtual role of an unauthenticated session. It is
	// never persisted.
	RoleGuest  Role = "guest"
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Classe is the membership tier, self-declared at signup and confirmable
// by an admin. Distinct from Role.
type Classe string

const (
	ClasseMembro   Classe = "membro"
	ClasseInfinity Classe = "infinity"
	ClasseSocio    Classe = "sócio"
)

func (c Classe) Valid() bool {
	switch c {
	case ClasseMembro, ClasseInfinity, ClasseSocio:
		return true
	}
	return false
}

// Status is the workflow state applied independently to users and deals.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// UserProfile represents a registered participant or administrator.
type UserProfile struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`

	Name        string `json:"name"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Sector      string `json:"sector"`
	Avatar      string `json:"avatar"`
	Bio         string `json:"bio"`
	Revenue     string `json:"revenue"`
	Age         int    `json:"age"`
	HasChildren bool   `json:"hasChildren"`
	Hobbies     string `json:"hobbies"`
	Experience  string `json:"experience"`
	Brands      string `json:"brands"`

	Role             Role   `json:"role"`
	Classe           Classe `json:"classe"`
	ExperiencePoints int    `json:"experiencePoints"`
	Status           Status `json:"status"`
}

// IsApproved reports whether the user may authenticate.
func (u *UserProfile) IsApproved() bool {
	return u != nil && u.Status == StatusApproved
}

func (u *UserProfile) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// PartySnapshot returns the denormalized view of the user embedded in deals
// at creation time. Later profile edits do not change historical deal cards.
func (u *UserProfile) PartySnapshot() Party {
	return Party{
		ID:      u.ID,
		Name:    u.Name,
		Company: u.Company,
		Avatar:  u.Avatar,
	}
}
