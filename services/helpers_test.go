package services

import (
	"fmt"
	"sync"
	"time"

	"heartwave_server/models"
)

// manualScheduler queues callbacks until the test fires them.
type manualScheduler struct {
	mu      sync.Mutex
	pending []func()
	delays  []time.Duration
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, f)
	s.delays = append(s.delays, d)
}

// FireAll runs every queued callback and returns how many ran.
func (s *manualScheduler) FireAll() int {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, f := range pending {
		f()
	}
	return len(pending)
}

func (s *manualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

type swipeRecord struct {
	Profile models.Profile
	Action  models.SwipeAction
}

type swipeRecorder struct {
	mu      sync.Mutex
	records []swipeRecord
}

func (r *swipeRecorder) observe(p models.Profile, a models.SwipeAction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, swipeRecord{Profile: p, Action: a})
}

func (r *swipeRecorder) Records() []swipeRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]swipeRecord(nil), r.records...)
}

func testProfile(id string, interests ...string) models.Profile {
	return models.Profile{
		ID:            id,
		Name:          "Name " + id,
		Age:           25,
		JobTitle:      "Engineer",
		Company:       "Acme",
		Location:      "Brooklyn, NY",
		Compatibility: 90,
		Avatar:        "https://img.example/" + id + ".jpg",
		Interests:     interests,
	}
}

func testProfiles(n int) []models.Profile {
	out := make([]models.Profile, n)
	for i := range out {
		out[i] = testProfile(fmt.Sprintf("p%d", i))
	}
	return out
}

func fixedClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	current := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Second)
		return current
	}
}
