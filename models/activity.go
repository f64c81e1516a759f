package models

import "time"

// ActivityEntry records one resolved judgment.
type ActivityEntry struct {
	ID      string      `json:"id"`
	Profile Profile     `json:"profile"`
	Action  SwipeAction `json:"action"`
	At      time.Time   `json:"at"`
}

// BoardSnapshot is a copy of the match collections and activity log, newest first.
type BoardSnapshot struct {
	Likes   []Profile       `json:"likes"`
	Sparks  []Profile       `json:"sparks"`
	History []ActivityEntry `json:"history"`
}

// DeckSnapshot is a copy of the swipe deck state.
type DeckSnapshot struct {
	Active        *Profile    `json:"active,omitempty"`
	Next          *Profile    `json:"next,omitempty"`
	Remaining     int         `json:"remaining"`
	Animating     bool        `json:"animating"`
	ExitDirection SwipeAction `json:"exitDirection"`
}

// CaughtUp reports the terminal empty-deck state.
func (d DeckSnapshot) CaughtUp() bool {
	return d.Active == nil
}

// SwipeEvent is published once per resolved card.
type SwipeEvent struct {
	SessionID string      `json:"sessionId"`
	Profile   Profile     `json:"profile"`
	Action    SwipeAction `json:"action"`
}
