package badges

import (
	"testing"
	"time"
)

func TestNewlyUnlocked_FirstTask(t *testing.T) {
	unlocks := Default().NewlyUnlocked(Stats{TasksCompleted: 1}, nil, time.Now())
	if !hasUnlock(unlocks, "premier_pas") {
		t.Error("should unlock premier_pas with 1 task completed")
	}
	if hasUnlock(unlocks, "productif") {
		t.Error("should not unlock productif with 1 task completed")
	}
}

func TestNewlyUnlocked_NothingAtZero(t *testing.T) {
	unlocks := Default().NewlyUnlocked(Stats{}, nil, time.Now())
	if len(unlocks) != 0 {
		t.Errorf("zero stats should unlock nothing, got %d", len(unlocks))
	}
}

func TestNewlyUnlocked_SkipsAlreadyUnlocked(t *testing.T) {
	unlocks := Default().NewlyUnlocked(Stats{TasksCompleted: 10}, []string{"premier_pas"}, time.Now())
	if hasUnlock(unlocks, "premier_pas") {
		t.Error("premier_pas should not unlock twice")
	}
	if !hasUnlock(unlocks, "productif") {
		t.Error("should unlock productif with 10 tasks completed")
	}
}

func TestNewlyUnlocked_AllTaskBadgesAtOnce(t *testing.T) {
	unlocks := Default().NewlyUnlocked(Stats{TasksCompleted: 100}, nil, time.Now())

	for _, id := range []string{"premier_pas", "productif", "acharne", "maitre_des_taches"} {
		if !hasUnlock(unlocks, id) {
			t.Errorf("should unlock %s with 100 tasks completed", id)
		}
	}

	points := 0
	for _, u := range unlocks {
		points += u.Badge.Points
	}
	if points != 760 {
		t.Errorf("cumulative reward = %d, want 760", points)
	}
}

func TestNewlyUnlocked_CatalogOrder(t *testing.T) {
	unlocks := Default().NewlyUnlocked(Stats{TasksCompleted: 100}, nil, time.Now())
	if len(unlocks) < 2 {
		t.Fatalf("expected multiple unlocks, got %d", len(unlocks))
	}
	if unlocks[0].Badge.ID != "premier_pas" || unlocks[1].Badge.ID != "productif" {
		t.Errorf("unlocks not in catalog order: %s, %s", unlocks[0].Badge.ID, unlocks[1].Badge.ID)
	}
}

func TestNewlyUnlocked_StampsTime(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	unlocks := Default().NewlyUnlocked(Stats{TasksCompleted: 1}, nil, now)
	if len(unlocks) == 0 {
		t.Fatal("expected an unlock")
	}
	if !unlocks[0].UnlockedAt.Equal(now) {
		t.Errorf("UnlockedAt = %v, want %v", unlocks[0].UnlockedAt, now)
	}
}

func TestNewlyUnlocked_AllRequirementsRequired(t *testing.T) {
	// polyvalent needs tasks 25 AND comments 25 AND tags 10
	stats := Stats{TasksCompleted: 25, CommentsMade: 25}
	unlocks := Default().NewlyUnlocked(stats, nil, time.Now())
	if hasUnlock(unlocks, "polyvalent") {
		t.Error("polyvalent should stay locked with one requirement unmet")
	}

	stats.TagsCreated = 10
	unlocks = Default().NewlyUnlocked(stats, nil, time.Now())
	if !hasUnlock(unlocks, "polyvalent") {
		t.Error("polyvalent should unlock once every requirement is met")
	}
}

func TestMet_ExactThreshold(t *testing.T) {
	b, _ := Default().Get("productif")
	if !Met(b, Stats{TasksCompleted: 10}) {
		t.Error("requirement should be met at exactly the target")
	}
	if Met(b, Stats{TasksCompleted: 9}) {
		t.Error("requirement should not be met below the target")
	}
}

func TestStatValue_UnknownTypeIsZero(t *testing.T) {
	stats := Stats{TasksCompleted: 100, QualityScore: 100}
	if v := StatValue(stats, RequirementType("reviews_approved")); v != 0 {
		t.Errorf("unknown requirement type value = %d, want 0", v)
	}
}

func TestNewlyUnlocked_UnknownTypeNeverSatisfies(t *testing.T) {
	c := Catalog{{
		ID: "future", Name: "Future", Points: 10,
		Category: CategorySpecial, Rarity: RarityCommon,
		Requirements: []Requirement{{Type: RequirementType("reviews_approved"), Target: 1}},
	}}
	unlocks := c.NewlyUnlocked(Stats{TasksCompleted: 1000}, nil, time.Now())
	if len(unlocks) != 0 {
		t.Error("a badge with an unknown requirement type should never unlock")
	}
}

func hasUnlock(unlocks []Unlock, id string) bool {
	for _, u := range unlocks {
		if u.Badge.ID == id {
			return true
		}
	}
	return false
}
