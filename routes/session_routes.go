package routes

import (
	"heartwave_server/controllers"
	"heartwave_server/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterSessionRoutes sets up deck and panel routes under /api/sessions
func RegisterSessionRoutes(r *mux.Router, sessions *services.SessionStore, logger *zap.Logger) {
	controller := controllers.NewSwipeController(sessions, logger)

	sessionRouter := r.PathPrefix("/api/sessions").Subrouter()

	sessionRouter.HandleFunc("", controller.CreateSession).Methods("POST")
	sessionRouter.HandleFunc("/{sessionId}", controller.DeleteSession).Methods("DELETE")
	sessionRouter.HandleFunc("/{sessionId}/deck", controller.GetDeck).Methods("GET")
	sessionRouter.HandleFunc("/{sessionId}/action", controller.HandleAction).Methods("POST")
	sessionRouter.HandleFunc("/{sessionId}/gesture", controller.HandleGesture).Methods("POST")
	sessionRouter.HandleFunc("/{sessionId}/matches", controller.GetMatches).Methods("GET")
	sessionRouter.HandleFunc("/{sessionId}/history", controller.GetHistory).Methods("GET")
}

// RegisterPageRoutes sets up the HTML page and its form endpoint
func RegisterPageRoutes(r *mux.Router, sessions *services.SessionStore, logger *zap.Logger) {
	controller := controllers.NewPageController(sessions, logger)

	r.HandleFunc("/", controller.Index).Methods("GET")
	r.HandleFunc("/swipe", controller.Swipe).Methods("POST")
}
