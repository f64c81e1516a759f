// Package views projects deck and board state into what the panels display.
// Nothing here holds state; every builder is a pure function of a snapshot.
package views

import (
	"fmt"
	"time"

	"heartwave_server/models"
)

const avatarStripSize = 3

type EmptyState struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

type ConnectionBadge struct {
	ProfileID string `json:"profileId"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	Subtitle  string `json:"subtitle"`
	Tone      string `json:"tone"`
	Label     string `json:"label"`
}

type MatchSection struct {
	Title  string            `json:"title"`
	Badges []ConnectionBadge `json:"badges"`
	Empty  *EmptyState       `json:"empty,omitempty"`
}

type Avatar struct {
	ProfileID string `json:"profileId"`
	Name      string `json:"name"`
	URL       string `json:"url"`
}

// MatchesPanel is the "Connections" side panel.
type MatchesPanel struct {
	Title   string       `json:"title"`
	Total   int          `json:"total"`
	Summary string       `json:"summary"`
	Avatars []Avatar     `json:"avatars"`
	Sparks  MatchSection `json:"sparks"`
	Likes   MatchSection `json:"likes"`
}

// BuildMatchesPanel lists sparks and likes, newest first, as the board holds them.
func BuildMatchesPanel(board models.BoardSnapshot) MatchesPanel {
	total := len(board.Likes) + len(board.Sparks)
	panel := MatchesPanel{
		Title:   "Connections",
		Total:   total,
		Summary: fmt.Sprintf("%d curated for you", total),
		Avatars: []Avatar{},
		Sparks: MatchSection{
			Title:  "Sparked Tonight",
			Badges: badges(board.Sparks, "spark", "Spark"),
		},
		Likes: MatchSection{
			Title:  "Recent Likes",
			Badges: badges(board.Likes, "like", "Liked"),
		},
	}

	for _, p := range append(append([]models.Profile{}, board.Sparks...), board.Likes...) {
		if len(panel.Avatars) == avatarStripSize {
			break
		}
		panel.Avatars = append(panel.Avatars, Avatar{ProfileID: p.ID, Name: p.Name, URL: p.Avatar})
	}

	if len(board.Sparks) == 0 {
		panel.Sparks.Empty = &EmptyState{
			Label:       "No spark matches yet",
			Description: "Try the spark button to send a super-charged intro.",
		}
	}
	if len(board.Likes) == 0 {
		panel.Likes.Empty = &EmptyState{
			Label:       "No likes yet",
			Description: "Tap the heart when you feel the vibe.",
		}
	}
	return panel
}

func badges(profiles []models.Profile, tone, label string) []ConnectionBadge {
	out := make([]ConnectionBadge, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, ConnectionBadge{
			ProfileID: p.ID,
			Name:      p.Name,
			Avatar:    p.Avatar,
			Subtitle:  fmt.Sprintf("%s · %s", p.Location, p.JobTitle),
			Tone:      tone,
			Label:     label,
		})
	}
	return out
}

type HistoryItem struct {
	ID        string             `json:"id"`
	ProfileID string             `json:"profileId"`
	Text      string             `json:"text"`
	Action    models.SwipeAction `json:"action"`
	Label     string             `json:"label"`
	At        time.Time          `json:"at"`
}

// HistoryPanel is the "Activity Pulse" feed.
type HistoryPanel struct {
	Title   string        `json:"title"`
	Entries []HistoryItem `json:"entries"`
	Empty   string        `json:"empty,omitempty"`
}

func BuildHistoryPanel(board models.BoardSnapshot) HistoryPanel {
	panel := HistoryPanel{
		Title:   "Activity Pulse",
		Entries: make([]HistoryItem, 0, len(board.History)),
	}
	for _, entry := range board.History {
		panel.Entries = append(panel.Entries, HistoryItem{
			ID:        entry.ID,
			ProfileID: entry.Profile.ID,
			Text:      fmt.Sprintf("%s · %d", entry.Profile.Name, entry.Profile.Age),
			Action:    entry.Action,
			Label:     entry.Action.Label(),
			At:        entry.At,
		})
	}
	if len(panel.Entries) == 0 {
		panel.Empty = "Swipe right or spark someone to see them appear here in your live feed."
	}
	return panel
}
