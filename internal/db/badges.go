package db

import (
	"encoding/json"
	"fmt"
	"time"

	"teamscore/internal/badges"
)

func (d *DB) AwardBadge(userID, badgeID, unlockID string, at time.Time) error {
	_, err := d.conn.Exec(`
		INSERT INTO user_badges (id, user_id, badge_id, awarded_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, badge_id) DO NOTHING
	`, unlockID, userID, badgeID, at)
	if err != nil {
		return fmt.Errorf("awarding badge: %w", err)
	}
	return nil
}

func (d *DB) GetUserBadges(userID string) ([]string, error) {
	rows, err := d.conn.Query(`
		SELECT badge_id FROM user_badges WHERE user_id = $1 ORDER BY awarded_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("getting badges: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// LoadBadgeOverrides returns operator-provided badge definitions that overlay
// the built-in catalog at startup.
func (d *DB) LoadBadgeOverrides() ([]badges.Badge, error) {
	rows, err := d.conn.Query(`
		SELECT id, name, description, icon, category, rarity, points, requirements
		FROM badge_overrides
	`)
	if err != nil {
		return nil, fmt.Errorf("loading badge overrides: %w", err)
	}
	defer rows.Close()

	var out []badges.Badge
	for rows.Next() {
		var b badges.Badge
		var reqs []byte
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.Icon,
			&b.Category, &b.Rarity, &b.Points, &reqs); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(reqs, &b.Requirements); err != nil {
			return nil, fmt.Errorf("decoding requirements for %s: %w", b.ID, err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
