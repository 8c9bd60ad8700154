package badges

import "testing"

func TestProgress_ZeroStats(t *testing.T) {
	b, _ := Default().Get("productif")
	if got := Progress(b, Stats{}); got != 0 {
		t.Errorf("Progress = %d, want 0", got)
	}
}

func TestProgress_Half(t *testing.T) {
	b, _ := Default().Get("productif") // 10 tasks
	if got := Progress(b, Stats{TasksCompleted: 5}); got != 50 {
		t.Errorf("Progress = %d, want 50", got)
	}
}

func TestProgress_CappedAtHundred(t *testing.T) {
	b, _ := Default().Get("productif")
	if got := Progress(b, Stats{TasksCompleted: 1000}); got != 100 {
		t.Errorf("Progress = %d, want 100", got)
	}
}

func TestProgress_BlendedAcrossRequirements(t *testing.T) {
	// One requirement fully met, the other untouched: blended estimate is
	// 50% even though the badge stays locked.
	b := Badge{
		ID: "two", Name: "Two", Points: 10,
		Requirements: []Requirement{
			{Type: ReqTasksCompleted, Target: 10},
			{Type: ReqCommentsMade, Target: 10},
		},
	}
	stats := Stats{TasksCompleted: 10}
	if got := Progress(b, stats); got != 50 {
		t.Errorf("Progress = %d, want 50", got)
	}
	if Met(b, stats) {
		t.Error("badge should still be locked at 50% blended progress")
	}
}

func TestProgress_Rounding(t *testing.T) {
	b := Badge{
		ID: "third", Name: "Third", Points: 10,
		Requirements: []Requirement{{Type: ReqTasksCompleted, Target: 3}},
	}
	// 1/3 -> 33.33 -> 33
	if got := Progress(b, Stats{TasksCompleted: 1}); got != 33 {
		t.Errorf("Progress = %d, want 33", got)
	}
	// 2/3 -> 66.67 -> 67
	if got := Progress(b, Stats{TasksCompleted: 2}); got != 67 {
		t.Errorf("Progress = %d, want 67", got)
	}
}

func TestProgress_NoRequirements(t *testing.T) {
	b := Badge{ID: "malformed", Name: "Malformed", Points: 10}
	if got := Progress(b, Stats{TasksCompleted: 100}); got != 0 {
		t.Errorf("Progress on malformed badge = %d, want 0", got)
	}
}

func TestProgress_Bounds(t *testing.T) {
	for _, b := range Default() {
		for _, stats := range []Stats{
			{},
			{TasksCompleted: 50, CommentsMade: 25, StreakDays: 400},
			{TasksCompleted: 100000, TimeLogged: 100000, CommentsMade: 100000, TagsCreated: 100000,
				WorkflowsCreated: 100000, StreakDays: 100000, TeamHelps: 100000, QualityScore: 100},
		} {
			got := Progress(b, stats)
			if got < 0 || got > 100 {
				t.Errorf("Progress(%s) = %d, want within [0, 100]", b.ID, got)
			}
		}
	}
}
