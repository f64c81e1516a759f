package services

import (
	"sync"
	"time"

	"heartwave_server/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxActivityEntries bounds the recent-activity log.
const MaxActivityEntries = 6

// MatchBoard aggregates resolved swipes into likes, sparks and an activity log.
type MatchBoard struct {
	mu      sync.Mutex
	likes   []models.Profile
	sparks  []models.Profile
	history []models.ActivityEntry

	subscribers []func(models.BoardSnapshot)
	now         func() time.Time
	newID       func() string
	logger      *zap.Logger
}

// BoardOption customizes a MatchBoard.
type BoardOption func(*MatchBoard)

// WithClock sets the clock that stamps activity entries.
func WithClock(now func() time.Time) BoardOption {
	return func(b *MatchBoard) { b.now = now }
}

func NewMatchBoard(logger *zap.Logger, opts ...BoardOption) *MatchBoard {
	b := &MatchBoard{
		now:    time.Now,
		newID:  uuid.NewString,
		logger: logger,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = zap.NewNop()
	}
	return b
}

// Subscribe registers fn to receive a snapshot after every recorded action.
func (b *MatchBoard) Subscribe(fn func(models.BoardSnapshot)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

// RecordAction applies one resolved swipe.
func (b *MatchBoard) RecordAction(profile models.Profile, action models.SwipeAction) {
	b.mu.Lock()
	switch action {
	case models.SwipeLike:
		b.likes = upsertFront(b.likes, profile)
	case models.SwipeSuper:
		b.sparks = upsertFront(b.sparks, profile)
	}

	entry := models.ActivityEntry{
		ID:      b.newID(),
		Profile: profile,
		Action:  action,
		At:      b.now(),
	}
	history := make([]models.ActivityEntry, 0, MaxActivityEntries)
	history = append(history, entry)
	history = append(history, b.history...)
	if len(history) > MaxActivityEntries {
		history = history[:MaxActivityEntries]
	}
	b.history = history

	snap := b.snapshotLocked()
	subscribers := append(([]func(models.BoardSnapshot))(nil), b.subscribers...)
	b.mu.Unlock()

	b.logger.Debug("activity recorded",
		zap.String("profileId", profile.ID),
		zap.String("action", string(action)),
		zap.Int("likes", len(snap.Likes)),
		zap.Int("sparks", len(snap.Sparks)),
	)

	for _, fn := range subscribers {
		fn(snap)
	}
}

// Snapshot copies the current collections and log.
func (b *MatchBoard) Snapshot() models.BoardSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

func (b *MatchBoard) snapshotLocked() models.BoardSnapshot {
	return models.BoardSnapshot{
		Likes:   append([]models.Profile{}, b.likes...),
		Sparks:  append([]models.Profile{}, b.sparks...),
		History: append([]models.ActivityEntry{}, b.history...),
	}
}

// upsertFront puts p at the head of list, dropping any older copy with the same id.
func upsertFront(list []models.Profile, p models.Profile) []models.Profile {
	out := make([]models.Profile, 0, len(list)+1)
	out = append(out, p)
	for _, existing := range list {
		if existing.ID != p.ID {
			out = append(out, existing)
		}
	}
	return out
}
