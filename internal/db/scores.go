package db

import (
	"fmt"

	"teamscore/internal/ledger"
)

func (d *DB) UpsertScore(s ledger.Score) error {
	_, err := d.conn.Exec(`
		INSERT INTO user_scores (
			user_id, total_points, level,
			tasks_completed, time_logged, comments_made, tags_created,
			workflows_created, streak_days, team_helps, quality_score,
			last_updated
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id) DO UPDATE SET
			total_points = $2, level = $3,
			tasks_completed = $4, time_logged = $5, comments_made = $6,
			tags_created = $7, workflows_created = $8, streak_days = $9,
			team_helps = $10, quality_score = $11, last_updated = $12
	`, s.UserID, s.TotalPoints, s.Level,
		s.Stats.TasksCompleted, s.Stats.TimeLogged, s.Stats.CommentsMade, s.Stats.TagsCreated,
		s.Stats.WorkflowsCreated, s.Stats.StreakDays, s.Stats.TeamHelps, s.Stats.QualityScore,
		s.LastUpdated)
	if err != nil {
		return fmt.Errorf("upserting score: %w", err)
	}
	return nil
}

// LoadScores returns every persisted record with its awarded badge ids, for
// seeding the ledger at startup.
func (d *DB) LoadScores() ([]ledger.Score, error) {
	rows, err := d.conn.Query(`
		SELECT user_id, total_points, level,
			tasks_completed, time_logged, comments_made, tags_created,
			workflows_created, streak_days, team_helps, quality_score,
			last_updated
		FROM user_scores
	`)
	if err != nil {
		return nil, fmt.Errorf("loading scores: %w", err)
	}
	defer rows.Close()

	byUser := make(map[string]*ledger.Score)
	var order []string
	for rows.Next() {
		var s ledger.Score
		if err := rows.Scan(&s.UserID, &s.TotalPoints, &s.Level,
			&s.Stats.TasksCompleted, &s.Stats.TimeLogged, &s.Stats.CommentsMade, &s.Stats.TagsCreated,
			&s.Stats.WorkflowsCreated, &s.Stats.StreakDays, &s.Stats.TeamHelps, &s.Stats.QualityScore,
			&s.LastUpdated); err != nil {
			return nil, err
		}
		s.Badges = []string{}
		s.Achievements = []string{}
		byUser[s.UserID] = &s
		order = append(order, s.UserID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	badgeRows, err := d.conn.Query(`
		SELECT user_id, badge_id FROM user_badges ORDER BY awarded_at
	`)
	if err != nil {
		return nil, fmt.Errorf("loading awarded badges: %w", err)
	}
	defer badgeRows.Close()

	for badgeRows.Next() {
		var userID, badgeID string
		if err := badgeRows.Scan(&userID, &badgeID); err != nil {
			return nil, err
		}
		if s, ok := byUser[userID]; ok {
			s.Badges = append(s.Badges, badgeID)
		}
	}
	if err := badgeRows.Err(); err != nil {
		return nil, err
	}

	scores := make([]ledger.Score, 0, len(order))
	for _, id := range order {
		scores = append(scores, *byUser[id])
	}
	return scores, nil
}
