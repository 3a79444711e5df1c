package monitor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/membersbook/backend/domain"
	"github.com/membersbook/backend/repository/bolt"
)

// Monitor periodically snapshots the health of the embedded stores so the
// health endpoint never blocks on a stalled check.
type Monitor struct {
	db       *sqlx.DB
	sessions *bolt.Store

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	logger   *zap.Logger
}

func New(db *sqlx.DB, sessions *bolt.Store, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		db:       db,
		sessions: sessions,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	close(m.stopCh)
}

func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Database && m.status.Sessions
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.refresh()
	for {
		select {
		case <-ticker.C:
			m.refresh()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) refresh() {
	status := Status{
		Database:  m.checkDatabase(),
		Sessions:  m.checkSessions(),
		LastCheck: time.Now(),
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}

func (m *Monitor) checkDatabase() bool {
	if m.db == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := m.db.PingContext(ctx); err != nil {
		m.logger.Warn("database health check failed", zap.Error(err))
		return false
	}
	return true
}

func (m *Monitor) checkSessions() bool {
	if m.sessions == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := m.sessions.Current(ctx)
	// "Nobody logged in" still proves the store is reachable.
	if err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		m.logger.Warn("session store health check failed", zap.Error(err))
		return false
	}
	return true
}
