package ledger

import (
	"log"
	"sync"
	"time"

	"teamscore/internal/badges"

	"github.com/google/uuid"
)

// Persister is the durable store invoked synchronously after each mutation.
// A nil Persister means the ledger is in-memory only.
type Persister interface {
	UpsertScore(s Score) error
	AwardBadge(userID, badgeID, unlockID string, at time.Time) error
}

type entry struct {
	mu    sync.Mutex
	score Score
}

// Store holds one record per user. The outer mutex guards the map; each
// record carries its own mutex so updates to the same user serialize while
// different users proceed independently.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	catalog badges.Catalog

	// Persist, when set, receives every mutated record. Assigned once
	// during startup, before the store is shared.
	Persist Persister
}

func NewStore(catalog badges.Catalog) *Store {
	return &Store{
		entries: make(map[string]*entry),
		catalog: catalog,
	}
}

// Catalog returns the badge set the store evaluates against.
func (s *Store) Catalog() badges.Catalog {
	return s.catalog
}

func zeroScore(userID string) Score {
	return Score{
		UserID:       userID,
		Level:        badges.Level(0),
		Badges:       []string{},
		Achievements: []string{},
	}
}

// get returns the entry for userID, lazily creating a zero-valued record.
func (s *Store) get(userID string) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[userID]
	if !ok {
		e = &entry{score: zeroScore(userID)}
		s.entries[userID] = e
	}
	return e
}

func copyScore(sc Score) Score {
	out := sc
	out.Badges = append([]string{}, sc.Badges...)
	out.Achievements = append([]string{}, sc.Achievements...)
	return out
}

// Get returns the user's record, creating a zero-valued one on first access.
// Repeated reads have no side effects.
func (s *Store) Get(userID string) Score {
	e := s.get(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return copyScore(e.score)
}

// UpdateStats merges the delta into the user's stats, unlocks any badges the
// merged stats now satisfy, adds their points, recomputes the level and
// persists the record. All derived fields are recomputed before this call
// returns. The returned unlocks are only the badges earned by this update.
func (s *Store) UpdateStats(userID string, delta StatsDelta) (Score, []badges.Unlock) {
	e := s.get(userID)
	e.mu.Lock()
	defer e.mu.Unlock()

	delta.apply(&e.score.Stats)

	now := time.Now()
	unlocks := s.catalog.NewlyUnlocked(e.score.Stats, e.score.Badges, now)
	for _, u := range unlocks {
		e.score.Badges = append(e.score.Badges, u.Badge.ID)
		e.score.TotalPoints += u.Badge.Points
	}
	e.score.Level = badges.Level(e.score.TotalPoints)
	e.score.LastUpdated = now

	if s.Persist != nil {
		if err := s.Persist.UpsertScore(copyScore(e.score)); err != nil {
			log.Printf("[Ledger] UpsertScore error: %v\n", err)
		}
		for _, u := range unlocks {
			if err := s.Persist.AwardBadge(userID, u.Badge.ID, uuid.New().String(), u.UnlockedAt); err != nil {
				log.Printf("[Ledger] AwardBadge error: %v\n", err)
			}
		}
	}

	return copyScore(e.score), unlocks
}

// UserBadges returns the catalog definitions of the user's unlocked badges,
// in unlock order.
func (s *Store) UserBadges(userID string) []badges.Badge {
	sc := s.Get(userID)
	out := make([]badges.Badge, 0, len(sc.Badges))
	for _, id := range sc.Badges {
		if b, ok := s.catalog.Get(id); ok {
			out = append(out, b)
		}
	}
	return out
}

// AvailableBadges returns the still-locked badges for the user, in catalog
// order.
func (s *Store) AvailableBadges(userID string) []badges.Badge {
	sc := s.Get(userID)
	have := make(map[string]bool, len(sc.Badges))
	for _, id := range sc.Badges {
		have[id] = true
	}
	out := make([]badges.Badge, 0, len(s.catalog))
	for _, b := range s.catalog {
		if !have[b.ID] {
			out = append(out, b)
		}
	}
	return out
}

// Snapshot returns copies of every record, for derived views.
func (s *Store) Snapshot() []Score {
	s.mu.Lock()
	entries := make([]*entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	s.mu.Unlock()

	scores := make([]Score, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		scores = append(scores, copyScore(e.score))
		e.mu.Unlock()
	}
	return scores
}

// Load seeds the store with previously persisted records. Intended for
// startup, before the store is shared.
func (s *Store) Load(scores []Score) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sc := range scores {
		if sc.Badges == nil {
			sc.Badges = []string{}
		}
		if sc.Achievements == nil {
			sc.Achievements = []string{}
		}
		s.entries[sc.UserID] = &entry{score: sc}
	}
}
