package services

import (
	"sync"
	"time"

	"heartwave_server/metrics"
	"heartwave_server/models"

	"go.uber.org/zap"
)

const (
	// SwipeThreshold is the drag distance a release must exceed to count as a judgment.
	SwipeThreshold = 120.0

	// DefaultExitDuration is how long the departing card animates before the deck unlocks.
	DefaultExitDuration = 260 * time.Millisecond

	maxTrophies = 3
)

// SwipeObserver is told about every resolved card, exactly once per card.
type SwipeObserver func(profile models.Profile, action models.SwipeAction)

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// SwipeDeck owns the ordered remaining profiles and the transition lock.
type SwipeDeck struct {
	mu            sync.Mutex
	deck          []models.Profile
	animating     bool
	exitDirection models.SwipeAction

	exitDuration time.Duration
	scheduler    Scheduler
	onSwipe      SwipeObserver
	logger       *zap.Logger
}

// DeckOption customizes a SwipeDeck.
type DeckOption func(*SwipeDeck)

func WithScheduler(s Scheduler) DeckOption {
	return func(d *SwipeDeck) { d.scheduler = s }
}

func WithExitDuration(duration time.Duration) DeckOption {
	return func(d *SwipeDeck) { d.exitDuration = duration }
}

func WithSwipeObserver(observer SwipeObserver) DeckOption {
	return func(d *SwipeDeck) { d.onSwipe = observer }
}

// NewSwipeDeck creates a deck over a copy of profiles, front to back.
func NewSwipeDeck(profiles []models.Profile, logger *zap.Logger, opts ...DeckOption) *SwipeDeck {
	deck := make([]models.Profile, len(profiles))
	copy(deck, profiles)

	d := &SwipeDeck{
		deck:          deck,
		exitDirection: models.SwipeLike,
		exitDuration:  DefaultExitDuration,
		scheduler:     timerScheduler{},
		logger:        logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = zap.NewNop()
	}
	return d
}

// SubmitAction judges the active card. It returns false, changing nothing,
// when the deck is empty, a transition is still running, or the action is unknown.
func (d *SwipeDeck) SubmitAction(action models.SwipeAction) bool {
	if !action.Valid() {
		metrics.SwipesIgnored.WithLabelValues(metrics.IgnoredInvalidAction).Inc()
		return false
	}

	d.mu.Lock()
	if len(d.deck) == 0 {
		d.mu.Unlock()
		metrics.SwipesIgnored.WithLabelValues(metrics.IgnoredEmptyDeck).Inc()
		return false
	}
	if d.animating {
		d.mu.Unlock()
		metrics.SwipesIgnored.WithLabelValues(metrics.IgnoredInTransition).Inc()
		d.logger.Debug("action ignored while card is leaving", zap.String("action", string(action)))
		return false
	}

	profile := d.deck[0]
	d.deck = d.deck[1:]
	d.animating = true
	d.exitDirection = action
	observer := d.onSwipe
	remaining := len(d.deck)
	d.mu.Unlock()

	d.logger.Info("card resolved",
		zap.String("profileId", profile.ID),
		zap.String("action", string(action)),
		zap.Int("remaining", remaining),
	)
	metrics.SwipesTotal.WithLabelValues(string(action)).Inc()

	// observer runs unlocked so it may read the deck back
	if observer != nil {
		observer(profile, action)
	}

	d.scheduler.AfterFunc(d.exitDuration, d.ResolveTransition)
	return true
}

// ResolveTransition clears the transition lock once the exit animation is over.
func (d *SwipeDeck) ResolveTransition() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.animating = false
}

// ClassifyGesture maps a drag release offset to a judgment. Horizontal
// movement is checked first, so a release past both thresholds is a like or
// nope, never a super.
func ClassifyGesture(offsetX, offsetY float64) (models.SwipeAction, bool) {
	switch {
	case offsetX > SwipeThreshold:
		return models.SwipeLike, true
	case offsetX < -SwipeThreshold:
		return models.SwipeNope, true
	case offsetY < -SwipeThreshold:
		return models.SwipeSuper, true
	}
	return "", false
}

// Release handles the end of a drag. The returned action is empty when the
// card springs back; accepted reports whether the deck advanced.
func (d *SwipeDeck) Release(offsetX, offsetY float64) (action models.SwipeAction, accepted bool) {
	if d.CaughtUp() {
		metrics.SwipesIgnored.WithLabelValues(metrics.IgnoredEmptyDeck).Inc()
		return "", false
	}
	action, ok := ClassifyGesture(offsetX, offsetY)
	if !ok {
		metrics.SwipesIgnored.WithLabelValues(metrics.IgnoredNoGesture).Inc()
		return "", false
	}
	return action, d.SubmitAction(action)
}

// Snapshot copies the current deck state.
func (d *SwipeDeck) Snapshot() models.DeckSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	snap := models.DeckSnapshot{
		Remaining:     len(d.deck),
		Animating:     d.animating,
		ExitDirection: d.exitDirection,
	}
	if len(d.deck) > 0 {
		active := d.deck[0]
		snap.Active = &active
	}
	if len(d.deck) > 1 {
		next := d.deck[1]
		snap.Next = &next
	}
	return snap
}

// Active returns the card being judged.
func (d *SwipeDeck) Active() (models.Profile, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.deck) == 0 {
		return models.Profile{}, false
	}
	return d.deck[0], true
}

// Remaining returns the profiles still in the deck, front first.
func (d *SwipeDeck) Remaining() []models.Profile {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.Profile, len(d.deck))
	copy(out, d.deck)
	return out
}

func (d *SwipeDeck) Animating() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.animating
}

func (d *SwipeDeck) ExitDirection() models.SwipeAction {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.exitDirection
}

// CaughtUp reports whether every card has been judged.
func (d *SwipeDeck) CaughtUp() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.deck) == 0
}

// Trophies returns the active card's first three interests.
func (d *SwipeDeck) Trophies() []string {
	active, ok := d.Active()
	if !ok {
		return nil
	}
	return Trophies(active)
}

// Trophies returns up to the first three interests of p, in order.
func Trophies(p models.Profile) []string {
	n := len(p.Interests)
	if n > maxTrophies {
		n = maxTrophies
	}
	out := make([]string, n)
	copy(out, p.Interests[:n])
	return out
}
