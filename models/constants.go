package models

import "strings"

// SwipeAction is a judgment on a card.
type SwipeAction string

// Swipe actions, named as the client sends them.
const (
	SwipeNope  SwipeAction = "nope"
	SwipeLike  SwipeAction = "like"
	SwipeSuper SwipeAction = "super"
)

// Valid reports whether a is one of the three judgments.
func (a SwipeAction) Valid() bool {
	switch a {
	case SwipeNope, SwipeLike, SwipeSuper:
		return true
	}
	return false
}

// Label is the activity feed wording for the action.
func (a SwipeAction) Label() string {
	switch a {
	case SwipeLike:
		return "Liked"
	case SwipeSuper:
		return "Sparked"
	case SwipeNope:
		return "Passed"
	}
	return ""
}

// ParseSwipeAction accepts the wire names plus a few spellings older clients used.
func ParseSwipeAction(raw string) (SwipeAction, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "nope", "dismiss", "pass":
		return SwipeNope, true
	case "like":
		return SwipeLike, true
	case "super", "super-like", "superlike", "spark":
		return SwipeSuper, true
	}
	return "", false
}

// ExitTrajectory is where a departing card animates to.
type ExitTrajectory struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Rotate  float64 `json:"rotate"`
	Opacity float64 `json:"opacity"`
}

// ExitTrajectories maps each action to its exit animation target.
var ExitTrajectories = map[SwipeAction]ExitTrajectory{
	SwipeLike:  {X: 500, Rotate: 20},
	SwipeNope:  {X: -500, Rotate: -15},
	SwipeSuper: {Y: -500},
}

// Event names published on the event bus and forwarded over Socket.IO
const (
	EventSwipe = "swipe"
	EventBoard = "board"
)
