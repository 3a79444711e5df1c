package monitor

import "time"

type Status struct {
	Database  bool      `json:"database"`
	Sessions  bool      `json:"sessions"`
	LastCheck time.Time `json:"last_check"`
}
