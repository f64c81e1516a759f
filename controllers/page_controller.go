package controllers

import (
	"bytes"
	"net/http"

	"heartwave_server/apperrors"
	"heartwave_server/models"
	"heartwave_server/services"
	"heartwave_server/utils"
	"heartwave_server/views"

	"go.uber.org/zap"
)

// SessionCookie ties a browser to its page session
const SessionCookie = "heartwave_session"

// PageController serves the server-rendered page and its form posts
type PageController struct {
	Sessions *services.SessionStore
	Logger   *zap.Logger
}

func NewPageController(sessions *services.SessionStore, logger *zap.Logger) *PageController {
	return &PageController{Sessions: sessions, Logger: logger}
}

// cookieSession returns the live session named by the cookie, if any.
func (c *PageController) cookieSession(r *http.Request) (*services.Session, bool) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return nil, false
	}
	session, err := c.Sessions.Get(cookie.Value)
	if err != nil {
		return nil, false
	}
	return session, true
}

// sessionFor reuses the cookie session or starts a new one.
func (c *PageController) sessionFor(w http.ResponseWriter, r *http.Request) *services.Session {
	if session, ok := c.cookieSession(r); ok {
		return session
	}

	session := c.Sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return session
}

// Index renders hero, deck and both panels
func (c *PageController) Index(w http.ResponseWriter, r *http.Request) {
	session := c.sessionFor(w, r)
	board := session.Board.Snapshot()

	var buf bytes.Buffer
	err := views.RenderPage(&buf, views.Page{
		SessionID: session.ID,
		Hero:      views.BuildHero(),
		Deck:      deckView(session),
		Matches:   views.BuildMatchesPanel(board),
		History:   views.BuildHistoryPanel(board),
	})
	if err != nil {
		utils.WriteError(w, c.Logger, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// Swipe handles the Nope / Like / Spark buttons of the page. A post from a
// page whose session is gone only redirects; the card it showed no longer exists.
func (c *PageController) Swipe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.WriteError(w, c.Logger, apperrors.InvalidRequest("Invalid form payload"))
		return
	}
	action, ok := models.ParseSwipeAction(r.PostFormValue("action"))
	if !ok {
		utils.WriteError(w, c.Logger, apperrors.InvalidRequest("action must be one of nope, like, super"))
		return
	}

	session, ok := c.cookieSession(r)
	if !ok {
		c.Logger.Info("form swipe without a live session, reloading page")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	session.Deck.SubmitAction(action)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
