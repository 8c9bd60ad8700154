package db

import (
	"fmt"

	"teamscore/internal/directory"
)

func (d *DB) UpsertMember(m directory.Member) error {
	_, err := d.conn.Exec(`
		INSERT INTO members (id, name, color)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = $2, color = $3
	`, m.ID, m.Name, m.Color)
	if err != nil {
		return fmt.Errorf("upserting member: %w", err)
	}
	return nil
}

func (d *DB) ListMembers() ([]directory.Member, error) {
	rows, err := d.conn.Query(`
		SELECT id, name, color FROM members ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	defer rows.Close()

	var members []directory.Member
	for rows.Next() {
		var m directory.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Color); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
