package ledger

import (
	"time"

	"teamscore/internal/badges"
)

// Score is the durable per-user record: cumulative points, derived level,
// unlocked badge ids and the latest stats snapshot. Achievements is a
// reserved extension point; the unlock path never writes it but consumers
// already see the field.
type Score struct {
	UserID       string       `json:"userId"`
	TotalPoints  int          `json:"totalPoints"`
	Level        int          `json:"level"`
	Badges       []string     `json:"badges"`
	Achievements []string     `json:"achievements"`
	Stats        badges.Stats `json:"stats"`
	LastUpdated  time.Time    `json:"lastUpdated"`
}

// StatsDelta is a partial stats update. Present fields overwrite the stored
// counter; callers wanting cumulative counts must read-modify-write.
type StatsDelta struct {
	TasksCompleted   *int `json:"tasksCompleted,omitempty"`
	TimeLogged       *int `json:"timeLogged,omitempty"`
	CommentsMade     *int `json:"commentsMade,omitempty"`
	TagsCreated      *int `json:"tagsCreated,omitempty"`
	WorkflowsCreated *int `json:"workflowsCreated,omitempty"`
	StreakDays       *int `json:"streakDays,omitempty"`
	TeamHelps        *int `json:"teamHelps,omitempty"`
	QualityScore     *int `json:"qualityScore,omitempty"`
}

func (d StatsDelta) apply(s *badges.Stats) {
	if d.TasksCompleted != nil {
		s.TasksCompleted = *d.TasksCompleted
	}
	if d.TimeLogged != nil {
		s.TimeLogged = *d.TimeLogged
	}
	if d.CommentsMade != nil {
		s.CommentsMade = *d.CommentsMade
	}
	if d.TagsCreated != nil {
		s.TagsCreated = *d.TagsCreated
	}
	if d.WorkflowsCreated != nil {
		s.WorkflowsCreated = *d.WorkflowsCreated
	}
	if d.StreakDays != nil {
		s.StreakDays = *d.StreakDays
	}
	if d.TeamHelps != nil {
		s.TeamHelps = *d.TeamHelps
	}
	if d.QualityScore != nil {
		s.QualityScore = *d.QualityScore
	}
}
