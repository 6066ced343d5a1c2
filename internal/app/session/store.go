package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"storefront/internal/app/view"

	"github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("session not found")

// Store хранит состояние сессий просмотра. Состояние эфемерно и истекает по TTL
type Store interface {
	// Get возвращает ErrNotFound, если сессии нет или она истекла, и продлевает TTL найденной
	Get(ctx context.Context, id string) (view.State, error)
	// Update атомарно читает состояние (или берет init), применяет fn и сохраняет результат
	Update(ctx context.Context, id string, init view.State, fn func(*view.State)) (view.State, error)
}

type memoryEntry struct {
	state     view.State
	expiresAt time.Time
}

// MemoryStore - хранилище сессий в памяти процесса
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get продлевает срок жизни сессии: TTL отсчитывается от последнего обращения
func (m *MemoryStore) Get(_ context.Context, id string) (view.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[id]
	if !ok || m.expired(e) {
		delete(m.entries, id)
		return view.State{}, ErrNotFound
	}
	e.expiresAt = m.now().Add(m.ttl)
	m.entries[id] = e
	return e.state, nil
}

func (m *MemoryStore) Update(ctx context.Context, id string, init view.State, fn func(*view.State)) (view.State, error) {
	if err := ctx.Err(); err != nil {
		return view.State{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	state := init
	if e, ok := m.entries[id]; ok && !m.expired(e) {
		state = e.state
	}
	fn(&state)

	m.entries[id] = memoryEntry{
		state:     state,
		expiresAt: m.now().Add(m.ttl),
	}
	return state, nil
}

// Len - число хранимых сессий, включая еще не удаленные истекшие
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Sweep удаляет истекшие сессии и возвращает их количество
func (m *MemoryStore) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, e := range m.entries {
		if m.expired(e) {
			delete(m.entries, id)
			removed++
		}
	}
	return removed
}

// RunJanitor периодически вызывает Sweep до отмены контекста
func (m *MemoryStore) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				logrus.WithField("removed", n).Debug("expired view sessions swept")
			}
		}
	}
}

func (m *MemoryStore) expired(e memoryEntry) bool {
	return m.ttl > 0 && !m.now().Before(e.expiresAt)
}
