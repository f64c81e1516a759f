package views

import (
	"fmt"

	"heartwave_server/models"
)

// Card is a profile as drawn on the deck.
type Card struct {
	models.Profile
	VibeMatch string   `json:"vibeMatch"`
	Trophies  []string `json:"trophies"`
	Muted     bool     `json:"muted"`
}

// DeckView is what the swipe area shows: an active card or the caught-up state.
type DeckView struct {
	CaughtUp      bool                  `json:"caughtUp"`
	Title         string                `json:"title,omitempty"`
	Message       string                `json:"message,omitempty"`
	Active        *Card                 `json:"active,omitempty"`
	Next          *Card                 `json:"next,omitempty"`
	Remaining     int                   `json:"remaining"`
	Animating     bool                  `json:"animating"`
	ExitDirection models.SwipeAction    `json:"exitDirection"`
	Exit          models.ExitTrajectory `json:"exit"`
}

// BuildDeckView projects a deck snapshot. trophies picks the chips for the active card.
func BuildDeckView(deck models.DeckSnapshot, trophies func(models.Profile) []string) DeckView {
	view := DeckView{
		Remaining:     deck.Remaining,
		Animating:     deck.Animating,
		ExitDirection: deck.ExitDirection,
		Exit:          models.ExitTrajectories[deck.ExitDirection],
	}

	if deck.CaughtUp() {
		view.CaughtUp = true
		view.Title = "You're all caught up!"
		view.Message = "New vibes are being curated for you. Check back soon or adjust your preferences to unlock more connections."
		return view
	}

	view.Active = &Card{
		Profile:   *deck.Active,
		VibeMatch: fmt.Sprintf("%d%% vibe match", deck.Active.Compatibility),
		Trophies:  trophies(*deck.Active),
	}
	if deck.Next != nil {
		view.Next = &Card{
			Profile:   *deck.Next,
			VibeMatch: fmt.Sprintf("%d%% vibe match", deck.Next.Compatibility),
			Trophies:  []string{},
			Muted:     true,
		}
	}
	return view
}
