package domain

// Party is a snapshot of one side of a deal, captured at creation time.
type Party struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Avatar  string `json:"avatar"`
}

// DealInfo is the announced payload of a closed transaction.
type DealInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Value       string `json:"value"`
	Image       string `json:"image,omitempty"`
}

// DealStats holds display-only engagement counters.
type DealStats struct {
	Congrats int `json:"congrats"`
	Shares   int `json:"shares"`
}

// BusinessDeal is a posted announcement of a closed business transaction
// between two parties, subject to admin approval before appearing in the
// public feed.
type BusinessDeal struct {
	ID        string    `json:"id"`
	PartyOne  Party     `json:"partyOne"`
	PartyTwo  Party     `json:"partyTwo"`
	Deal      DealInfo  `json:"deal"`
	Stats     DealStats `json:"stats"`
	Status    Status    `json:"status"`
	CreatedAt int64     `json:"createdAt"`
}

func (d *BusinessDeal) IsPending() bool {
	return d != nil && d.Status == StatusPending
}
