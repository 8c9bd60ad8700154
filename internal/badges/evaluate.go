package badges

import "time"

// Stats holds the raw activity counters a user has accumulated. Values are
// supplied by external producers; the engine never derives them itself.
type Stats struct {
	TasksCompleted   int `json:"tasksCompleted"`
	TimeLogged       int `json:"timeLogged"` // minutes
	CommentsMade     int `json:"commentsMade"`
	TagsCreated      int `json:"tagsCreated"`
	WorkflowsCreated int `json:"workflowsCreated"`
	StreakDays       int `json:"streakDays"`
	TeamHelps        int `json:"teamHelps"`
	QualityScore     int `json:"qualityScore"` // 0-100
}

// Unlock records a badge earned during an evaluation pass.
type Unlock struct {
	Badge      Badge     `json:"badge"`
	UnlockedAt time.Time `json:"unlockedAt"`
}

// StatValue returns the counter backing a requirement type. Unrecognized
// types resolve to 0 so they can never satisfy a requirement.
func StatValue(stats Stats, t RequirementType) int {
	switch t {
	case ReqTasksCompleted:
		return stats.TasksCompleted
	case ReqTimeLogged:
		return stats.TimeLogged
	case ReqCommentsMade:
		return stats.CommentsMade
	case ReqTagsCreated:
		return stats.TagsCreated
	case ReqWorkflowsCreated:
		return stats.WorkflowsCreated
	case ReqStreakDays:
		return stats.StreakDays
	case ReqTeamHelp:
		return stats.TeamHelps
	case ReqQualityScore:
		return stats.QualityScore
	default:
		return 0
	}
}

// Met reports whether every requirement of the badge is satisfied.
func Met(b Badge, stats Stats) bool {
	for _, req := range b.Requirements {
		if StatValue(stats, req.Type) < req.Target {
			return false
		}
	}
	return true
}

// NewlyUnlocked returns the badges that are fully satisfied by stats and not
// already unlocked, in catalog order, each stamped with now.
func (c Catalog) NewlyUnlocked(stats Stats, unlocked []string, now time.Time) []Unlock {
	have := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		have[id] = true
	}

	var earned []Unlock
	for _, b := range c {
		if have[b.ID] {
			continue
		}
		if Met(b, stats) {
			earned = append(earned, Unlock{Badge: b, UnlockedAt: now})
		}
	}
	return earned
}
