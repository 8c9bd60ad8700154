package rank

import (
	"testing"

	"teamscore/internal/badges"
	"teamscore/internal/ledger"
)

func intp(v int) *int { return &v }

func seedStore(t *testing.T) *ledger.Store {
	t.Helper()
	s := ledger.NewStore(badges.Default())
	s.UpdateStats("alice", ledger.StatsDelta{TasksCompleted: intp(100)}) // 760 pts
	s.UpdateStats("bob", ledger.StatsDelta{TasksCompleted: intp(10)})    // 60 pts
	s.UpdateStats("carol", ledger.StatsDelta{TasksCompleted: intp(1)})   // 10 pts
	return s
}

func TestLeaderboard_Ordering(t *testing.T) {
	b := &Builder{Ledger: seedStore(t)}
	entries := b.Leaderboard(0)

	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].TotalPoints < entries[i].TotalPoints {
			t.Errorf("entry %d (%d pts) ranked above entry %d (%d pts)",
				i-1, entries[i-1].TotalPoints, i, entries[i].TotalPoints)
		}
	}
	if entries[0].UserID != "alice" || entries[0].Rank != 1 {
		t.Errorf("top entry = %s rank %d, want alice rank 1", entries[0].UserID, entries[0].Rank)
	}
}

func TestLeaderboard_RanksAreOneBasedSequential(t *testing.T) {
	b := &Builder{Ledger: seedStore(t)}
	for i, e := range b.Leaderboard(0) {
		if e.Rank != i+1 {
			t.Errorf("entry %d has rank %d, want %d", i, e.Rank, i+1)
		}
	}
}

func TestLeaderboard_TieBreakByUserID(t *testing.T) {
	s := ledger.NewStore(badges.Default())
	s.UpdateStats("zoe", ledger.StatsDelta{TasksCompleted: intp(1)})
	s.UpdateStats("adam", ledger.StatsDelta{TasksCompleted: intp(1)})

	b := &Builder{Ledger: s}
	entries := b.Leaderboard(0)
	if entries[0].UserID != "adam" || entries[1].UserID != "zoe" {
		t.Errorf("tie order = %s, %s; want adam, zoe", entries[0].UserID, entries[1].UserID)
	}
}

func TestLeaderboard_Limit(t *testing.T) {
	b := &Builder{Ledger: seedStore(t)}
	entries := b.Leaderboard(2)
	if len(entries) != 2 {
		t.Errorf("entries = %d, want 2", len(entries))
	}
}

func TestLeaderboard_BadgeCounts(t *testing.T) {
	b := &Builder{Ledger: seedStore(t)}
	entries := b.Leaderboard(0)
	if entries[0].BadgesCount != 4 {
		t.Errorf("alice BadgesCount = %d, want 4", entries[0].BadgesCount)
	}
	if entries[2].BadgesCount != 1 {
		t.Errorf("carol BadgesCount = %d, want 1", entries[2].BadgesCount)
	}
}

type staticResolver map[string][2]string

func (r staticResolver) Resolve(id string) (string, string, bool) {
	v, ok := r[id]
	return v[0], v[1], ok
}

func TestLeaderboard_ResolverDecoration(t *testing.T) {
	b := &Builder{
		Ledger:   seedStore(t),
		Resolver: staticResolver{"alice": {"Alice Martin", "#ff0000"}},
	}
	entries := b.Leaderboard(0)

	if entries[0].DisplayName != "Alice Martin" || entries[0].Color != "#ff0000" {
		t.Errorf("alice entry = %+v, want resolved name and color", entries[0])
	}
	// Unresolved users fall back to the raw id.
	if entries[1].DisplayName != "bob" {
		t.Errorf("bob DisplayName = %q, want raw id fallback", entries[1].DisplayName)
	}
}

func TestGlobalStats_Empty(t *testing.T) {
	b := &Builder{Ledger: ledger.NewStore(badges.Default())}
	stats := b.GlobalStats()
	if stats.TotalUsers != 0 || stats.TotalPoints != 0 || stats.TotalBadges != 0 {
		t.Errorf("empty stats = %+v, want zeros", stats)
	}
	if stats.AverageLevel != 0 {
		t.Errorf("AverageLevel = %v, want 0 with no users", stats.AverageLevel)
	}
}

func TestGlobalStats_Aggregates(t *testing.T) {
	b := &Builder{Ledger: seedStore(t)}
	stats := b.GlobalStats()

	if stats.TotalUsers != 3 {
		t.Errorf("TotalUsers = %d, want 3", stats.TotalUsers)
	}
	if stats.TotalPoints != 830 {
		t.Errorf("TotalPoints = %d, want 830", stats.TotalPoints)
	}
	if stats.TotalBadges != 7 {
		t.Errorf("TotalBadges = %d, want 7", stats.TotalBadges)
	}
	// Levels are 8, 1, 1 -> mean 3.333 -> 3.3
	if stats.AverageLevel != 3.3 {
		t.Errorf("AverageLevel = %v, want 3.3", stats.AverageLevel)
	}
}

func TestGlobalStats_AverageRounding(t *testing.T) {
	s := ledger.NewStore(badges.Default())
	s.UpdateStats("a", ledger.StatsDelta{TasksCompleted: intp(100)}) // level 8
	s.Get("b")                                                       // level 1

	b := &Builder{Ledger: s}
	if got := b.GlobalStats().AverageLevel; got != 4.5 {
		t.Errorf("AverageLevel = %v, want 4.5", got)
	}
}
