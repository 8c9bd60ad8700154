package rank

import (
	"math"
	"sort"

	"teamscore/internal/ledger"
)

// Resolver decorates leaderboard entries with human-readable identity. The
// engine itself only knows opaque user ids.
type Resolver interface {
	Resolve(userID string) (name, color string, ok bool)
}

type Entry struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	Color       string `json:"color,omitempty"`
	TotalPoints int    `json:"totalPoints"`
	Level       int    `json:"level"`
	BadgesCount int    `json:"badgesCount"`
	Rank        int    `json:"rank"`
}

type GlobalStats struct {
	TotalUsers   int     `json:"totalUsers"`
	TotalPoints  int     `json:"totalPoints"`
	TotalBadges  int     `json:"totalBadges"`
	AverageLevel float64 `json:"averageLevel"`
}

// Builder derives ranked and aggregate views from ledger snapshots.
type Builder struct {
	Ledger   *ledger.Store
	Resolver Resolver // nil: entries keep the raw user id as display name
}

// Leaderboard returns up to limit entries sorted by points descending.
// Equal scores are ordered by ascending user id so ranking is stable across
// runs. limit <= 0 returns every entry.
func (b *Builder) Leaderboard(limit int) []Entry {
	scores := b.Ledger.Snapshot()
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].TotalPoints != scores[j].TotalPoints {
			return scores[i].TotalPoints > scores[j].TotalPoints
		}
		return scores[i].UserID < scores[j].UserID
	})

	if limit > 0 && len(scores) > limit {
		scores = scores[:limit]
	}

	entries := make([]Entry, 0, len(scores))
	rank := 1
	for _, sc := range scores {
		e := Entry{
			UserID:      sc.UserID,
			DisplayName: sc.UserID,
			TotalPoints: sc.TotalPoints,
			Level:       sc.Level,
			BadgesCount: len(sc.Badges),
			Rank:        rank,
		}
		if b.Resolver != nil {
			if name, color, ok := b.Resolver.Resolve(sc.UserID); ok {
				e.DisplayName = name
				e.Color = color
			}
		}
		rank++
		entries = append(entries, e)
	}
	return entries
}

// GlobalStats aggregates counts and averages across every ledger entry.
// AverageLevel is rounded to one decimal and 0 when there are no users.
func (b *Builder) GlobalStats() GlobalStats {
	scores := b.Ledger.Snapshot()

	stats := GlobalStats{TotalUsers: len(scores)}
	if len(scores) == 0 {
		return stats
	}

	levelSum := 0
	for _, sc := range scores {
		stats.TotalPoints += sc.TotalPoints
		stats.TotalBadges += len(sc.Badges)
		levelSum += sc.Level
	}
	stats.AverageLevel = math.Round(float64(levelSum)/float64(len(scores))*10) / 10
	return stats
}
