package storage

import (
	"context"
	"fmt"
	"sync"

	"pcb-partgraph/internal/domain/entity"
	"pcb-partgraph/internal/domain/port"
)

// MemorySessionRepository хранит сессии бота в памяти.
// Наружу отдаются копии, поэтому изменения видны только после Save.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[int64]entity.Session
}

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[int64]entity.Session),
	}
}

// Get возвращает копию сессии пользователя; новая сессия создаётся в главном меню.
func (r *MemorySessionRepository) Get(ctx context.Context, userID, chatID int64) (*entity.Session, error) {
	r.mu.RLock()
	session, ok := r.sessions[userID]
	r.mu.RUnlock()
	if ok {
		return &session, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// другой обработчик мог создать сессию между блокировками
	if session, ok := r.sessions[userID]; ok {
		return &session, nil
	}
	created := entity.NewSession(userID, chatID)
	r.sessions[userID] = *created
	return created, nil
}

func (r *MemorySessionRepository) Save(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	r.sessions[session.UserID] = *session
	r.mu.Unlock()

	return nil
}

// UpdateState меняет состояние существующей сессии.
func (r *MemorySessionRepository) UpdateState(ctx context.Context, userID int64, state entity.SessionState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[userID]
	if !ok {
		return fmt.Errorf("%w: no session for user %d", entity.ErrLookup, userID)
	}
	session.SetState(state)
	r.sessions[userID] = session
	return nil
}

var _ port.SessionRepository = (*MemorySessionRepository)(nil)
