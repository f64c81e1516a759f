package socket

import (
	"heartwave_server/services"

	socketio "github.com/googollee/go-socket.io"
	"go.uber.org/zap"
)

const namespace = "/"

// Broadcaster is the part of the Socket.IO server the bridge publishes through.
type Broadcaster interface {
	BroadcastToRoom(namespace, room, event string, args ...interface{}) bool
}

// RoomMember is the part of a socket connection the join handler needs.
type RoomMember interface {
	ID() string
	Emit(eventName string, v ...interface{})
	Join(room string)
}

// joinHandler puts a connection in its session's room, or emits "error"
// when the session is unknown.
func joinHandler(sessions *services.SessionStore, logger *zap.Logger) func(c RoomMember, sessionID string) {
	return func(c RoomMember, sessionID string) {
		if _, err := sessions.Get(sessionID); err != nil {
			logger.Warn("socket join for unknown session", zap.String("socketId", c.ID()), zap.String("sessionId", sessionID))
			c.Emit("error", err.Error())
			return
		}
		c.Join(sessionID)
		logger.Info("socket joined session", zap.String("socketId", c.ID()), zap.String("sessionId", sessionID))
	}
}

// NewSocketServer initializes and returns a new Socket.IO server. Clients
// emit "join" with their session id and then receive that session's events.
func NewSocketServer(sessions *services.SessionStore, logger *zap.Logger) *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect(namespace, func(c socketio.Conn) error {
		logger.Debug("socket connected", zap.String("socketId", c.ID()))
		return nil
	})

	join := joinHandler(sessions, logger)
	server.OnEvent(namespace, "join", func(c socketio.Conn, sessionID string) {
		join(c, sessionID)
	})

	server.OnError(namespace, func(c socketio.Conn, err error) {
		logger.Warn("socket error", zap.Error(err))
	})

	server.OnDisconnect(namespace, func(c socketio.Conn, reason string) {
		logger.Debug("socket disconnected", zap.String("socketId", c.ID()), zap.String("reason", reason))
	})

	return server
}

// Bridge forwards every bus event to the room named after its session.
func Bridge(bus *services.EventBus, server Broadcaster) (unsubscribe func()) {
	return bus.Subscribe(func(e services.Event) {
		server.BroadcastToRoom(namespace, e.SessionID, e.Name, e.Payload)
	})
}
