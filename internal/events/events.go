package events

import "time"

// UnlockEvent announces a badge a user just earned.
type UnlockEvent struct {
	UserID      string    `json:"userId"`
	BadgeID     string    `json:"badgeId"`
	BadgeName   string    `json:"badgeName"`
	Points      int       `json:"points"`
	TotalPoints int       `json:"totalPoints"`
	Level       int       `json:"level"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

type Bus struct {
	Unlocks chan UnlockEvent
}

func NewBus() *Bus {
	return &Bus{
		Unlocks: make(chan UnlockEvent, 10),
	}
}
