package services

import (
	"context"
	"sync"
	"time"

	"heartwave_server/apperrors"
	"heartwave_server/metrics"
	"heartwave_server/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is one page client's state: a deck and the board it feeds.
type Session struct {
	ID        string
	CreatedAt time.Time
	Deck      *SwipeDeck
	Board     *MatchBoard

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// LastSeen is the time the session was last fetched.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// SessionStore creates and tracks sessions, each seeded from the catalog.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	catalog  *CatalogService
	bus      *EventBus
	deckOpts []DeckOption
	idleTTL  time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

// SessionStoreOption customizes a SessionStore.
type SessionStoreOption func(*SessionStore)

// WithDeckOptions applies opts to every deck the store creates.
func WithDeckOptions(opts ...DeckOption) SessionStoreOption {
	return func(s *SessionStore) { s.deckOpts = append(s.deckOpts, opts...) }
}

func WithIdleTTL(ttl time.Duration) SessionStoreOption {
	return func(s *SessionStore) { s.idleTTL = ttl }
}

func WithSessionClock(now func() time.Time) SessionStoreOption {
	return func(s *SessionStore) { s.now = now }
}

func NewSessionStore(catalog *CatalogService, bus *EventBus, logger *zap.Logger, opts ...SessionStoreOption) *SessionStore {
	s := &SessionStore{
		sessions: make(map[string]*Session),
		catalog:  catalog,
		bus:      bus,
		idleTTL:  30 * time.Minute,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// Create starts a session with a fresh deck over the whole catalog.
func (s *SessionStore) Create() *Session {
	now := s.now()
	session := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		lastSeen:  now,
	}
	logger := s.logger.With(zap.String("sessionId", session.ID))

	session.Board = NewMatchBoard(logger, WithClock(s.now))
	session.Board.Subscribe(func(snap models.BoardSnapshot) {
		s.publish(Event{SessionID: session.ID, Name: models.EventBoard, Payload: snap})
	})

	observer := func(profile models.Profile, action models.SwipeAction) {
		s.publish(Event{
			SessionID: session.ID,
			Name:      models.EventSwipe,
			Payload:   models.SwipeEvent{SessionID: session.ID, Profile: profile, Action: action},
		})
		session.Board.RecordAction(profile, action)
	}

	deckOpts := append(append([]DeckOption(nil), s.deckOpts...), WithSwipeObserver(observer))
	session.Deck = NewSwipeDeck(s.catalog.Profiles(), logger, deckOpts...)

	s.mu.Lock()
	s.sessions[session.ID] = session
	count := len(s.sessions)
	s.mu.Unlock()

	metrics.SessionsActive.Set(float64(count))
	logger.Info("session created", zap.Int("deckSize", s.catalog.Len()))
	return session
}

func (s *SessionStore) publish(e Event) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}

// Get returns a live session and marks it as seen.
func (s *SessionStore) Get(id string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, apperrors.SessionNotFound(id)
	}
	session.touch(s.now())
	return session, nil
}

// Delete drops a session.
func (s *SessionStore) Delete(id string) error {
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	count := len(s.sessions)
	s.mu.Unlock()

	if !ok {
		return apperrors.SessionNotFound(id)
	}
	metrics.SessionsActive.Set(float64(count))
	s.logger.Info("session deleted", zap.String("sessionId", id))
	return nil
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep evicts sessions idle for longer than the TTL and returns how many went.
func (s *SessionStore) Sweep() int {
	cutoff := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	evicted := 0
	for id, session := range s.sessions {
		if session.LastSeen().Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}
	count := len(s.sessions)
	s.mu.Unlock()

	if evicted > 0 {
		metrics.SessionsActive.Set(float64(count))
		s.logger.Info("idle sessions evicted", zap.Int("evicted", evicted), zap.Int("remaining", count))
	}
	return evicted
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *SessionStore) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
