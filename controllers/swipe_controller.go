package controllers

import (
	"net/http"

	"heartwave_server/apperrors"
	"heartwave_server/models"
	"heartwave_server/services"
	"heartwave_server/utils"
	"heartwave_server/views"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// SwipeController handles session, deck and panel requests
type SwipeController struct {
	Sessions *services.SessionStore
	Logger   *zap.Logger
}

// NewSwipeController creates a new SwipeController instance
func NewSwipeController(sessions *services.SessionStore, logger *zap.Logger) *SwipeController {
	return &SwipeController{Sessions: sessions, Logger: logger}
}

type actionResponse struct {
	Accepted bool               `json:"accepted"`
	Action   models.SwipeAction `json:"action,omitempty"`
	Deck     views.DeckView     `json:"deck"`
}

func deckView(session *services.Session) views.DeckView {
	return views.BuildDeckView(session.Deck.Snapshot(), services.Trophies)
}

func (c *SwipeController) session(w http.ResponseWriter, r *http.Request) (*services.Session, bool) {
	session, err := c.Sessions.Get(mux.Vars(r)["sessionId"])
	if err != nil {
		utils.WriteError(w, c.Logger, err)
		return nil, false
	}
	return session, true
}

// CreateSession starts a new deck over the full catalog
func (c *SwipeController) CreateSession(w http.ResponseWriter, r *http.Request) {
	session := c.Sessions.Create()
	utils.WriteJSONResponse(w, http.StatusCreated, map[string]interface{}{
		"sessionId": session.ID,
		"deck":      deckView(session),
	})
}

// DeleteSession drops a session
func (c *SwipeController) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := c.Sessions.Delete(mux.Vars(r)["sessionId"]); err != nil {
		utils.WriteError(w, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetDeck returns the active/next cards or the caught-up state
func (c *SwipeController) GetDeck(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, deckView(session))
}

// HandleAction processes a button press: nope, like or super
func (c *SwipeController) HandleAction(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)
	if !ok {
		return
	}

	var request struct {
		Action string `json:"action"`
	}
	if err := utils.DecodeJSON(r, &request); err != nil {
		utils.WriteError(w, c.Logger, err)
		return
	}

	action, valid := models.ParseSwipeAction(request.Action)
	if !valid {
		utils.WriteError(w, c.Logger, apperrors.InvalidRequest("action must be one of nope, like, super"))
		return
	}

	accepted := session.Deck.SubmitAction(action)
	utils.WriteJSONResponse(w, http.StatusOK, actionResponse{
		Accepted: accepted,
		Action:   action,
		Deck:     deckView(session),
	})
}

// HandleGesture processes the end of a drag
func (c *SwipeController) HandleGesture(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)
	if !ok {
		return
	}

	var request struct {
		OffsetX *float64 `json:"offsetX"`
		OffsetY *float64 `json:"offsetY"`
	}
	if err := utils.DecodeJSON(r, &request); err != nil {
		utils.WriteError(w, c.Logger, err)
		return
	}
	if request.OffsetX == nil || request.OffsetY == nil {
		utils.WriteError(w, c.Logger, apperrors.InvalidRequest("offsetX and offsetY are required"))
		return
	}

	action, accepted := session.Deck.Release(*request.OffsetX, *request.OffsetY)
	utils.WriteJSONResponse(w, http.StatusOK, actionResponse{
		Accepted: accepted,
		Action:   action,
		Deck:     deckView(session),
	})
}

// GetMatches returns the Connections panel
func (c *SwipeController) GetMatches(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, views.BuildMatchesPanel(session.Board.Snapshot()))
}

// GetHistory returns the Activity Pulse panel
func (c *SwipeController) GetHistory(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, views.BuildHistoryPanel(session.Board.Snapshot()))
}
