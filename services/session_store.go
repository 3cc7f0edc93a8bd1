package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionStore owns every open session. Open is the only way state is created and Close
// the only way it is torn down.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	deps     SessionDeps
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewSessionStore(deps SessionDeps) *SessionStore {
	ctx, cancel := context.WithCancel(context.Background())
	return &SessionStore{
		sessions: map[string]*Session{},
		deps:     deps.withDefaults(),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Open seeds and registers a new session
func (st *SessionStore) Open(ctx context.Context) (*Session, error) {
	id := uuid.NewString()
	session, err := NewSession(ctx, st.ctx, id, st.deps)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	st.sessions[id] = session
	st.mu.Unlock()

	st.deps.Logger.Info("✅ Session opened", zap.String("session", id))
	return session, nil
}

func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Close tears down id and reports whether it was open
func (st *SessionStore) Close(id string) bool {
	st.mu.Lock()
	s, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()

	if !ok {
		return false
	}
	s.Close()
	st.deps.Logger.Info("👋 Session closed", zap.String("session", id))
	return true
}

// CloseAll tears down every session; used on shutdown
func (st *SessionStore) CloseAll() {
	st.mu.Lock()
	sessions := st.sessions
	st.sessions = map[string]*Session{}
	st.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
	st.cancel()
}

func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
