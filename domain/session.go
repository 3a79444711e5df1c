package domain

import "time"

// Session is the persisted pointer to the logged-in user. The store keeps a
// single session under a fixed key, mirroring the device-local storage of
// the mobile client.
type Session struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
