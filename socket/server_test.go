package socket

import (
	"testing"

	"heartwave_server/models"
	"heartwave_server/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type broadcast struct {
	namespace, room, event string
	args                   []interface{}
}

type fakeBroadcaster struct {
	sent []broadcast
}

func (f *fakeBroadcaster) BroadcastToRoom(namespace, room, event string, args ...interface{}) bool {
	f.sent = append(f.sent, broadcast{namespace: namespace, room: room, event: event, args: args})
	return true
}

func TestBridge_ForwardsSessionEvents(t *testing.T) {
	catalog, err := services.NewCatalogService([]models.Profile{{ID: "ava", Name: "Ava"}, {ID: "noah", Name: "Noah"}})
	require.NoError(t, err)
	bus := services.NewEventBus()
	sessions := services.NewSessionStore(catalog, bus, zaptest.NewLogger(t))

	fake := &fakeBroadcaster{}
	unsubscribe := Bridge(bus, fake)

	session := sessions.Create()
	require.True(t, session.Deck.SubmitAction(models.SwipeLike))

	require.Len(t, fake.sent, 2)
	assert.Equal(t, "/", fake.sent[0].namespace)
	assert.Equal(t, session.ID, fake.sent[0].room)
	assert.Equal(t, models.EventSwipe, fake.sent[0].event)
	require.Len(t, fake.sent[0].args, 1)
	swipe := fake.sent[0].args[0].(models.SwipeEvent)
	assert.Equal(t, "ava", swipe.Profile.ID)
	assert.Equal(t, models.EventBoard, fake.sent[1].event)

	unsubscribe()
	session.Deck.ResolveTransition()
	require.True(t, session.Deck.SubmitAction(models.SwipeNope))
	assert.Len(t, fake.sent, 2)
}

func TestNewSocketServer(t *testing.T) {
	catalog, err := services.NewCatalogService(nil)
	require.NoError(t, err)
	sessions := services.NewSessionStore(catalog, services.NewEventBus(), zaptest.NewLogger(t))

	server := NewSocketServer(sessions, zaptest.NewLogger(t))
	require.NotNil(t, server)

	var _ Broadcaster = server
}

type fakeConn struct {
	id     string
	rooms  []string
	emits  []string
	errors []interface{}
}

func (f *fakeConn) ID() string { return f.id }

func (f *fakeConn) Emit(eventName string, v ...interface{}) {
	f.emits = append(f.emits, eventName)
	f.errors = append(f.errors, v...)
}

func (f *fakeConn) Join(room string) { f.rooms = append(f.rooms, room) }

func TestJoinHandler(t *testing.T) {
	catalog, err := services.NewCatalogService([]models.Profile{{ID: "ava", Name: "Ava"}})
	require.NoError(t, err)
	sessions := services.NewSessionStore(catalog, services.NewEventBus(), zaptest.NewLogger(t))
	session := sessions.Create()
	join := joinHandler(sessions, zaptest.NewLogger(t))

	t.Run("known session joins its room", func(t *testing.T) {
		conn := &fakeConn{id: "sock-1"}
		join(conn, session.ID)

		assert.Equal(t, []string{session.ID}, conn.rooms)
		assert.Empty(t, conn.emits)
	})

	t.Run("unknown session gets an error", func(t *testing.T) {
		conn := &fakeConn{id: "sock-2"}
		join(conn, "missing")

		assert.Empty(t, conn.rooms)
		assert.Equal(t, []string{"error"}, conn.emits)
		require.Len(t, conn.errors, 1)
		assert.Contains(t, conn.errors[0], "missing")
	})
}
