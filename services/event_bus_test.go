package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBus_PublishInOrderAndUnsubscribe(t *testing.T) {
	bus := NewEventBus()
	var got []string

	unsubscribeFirst := bus.Subscribe(func(e Event) { got = append(got, "first:"+e.Name) })
	bus.Subscribe(func(e Event) { got = append(got, "second:"+e.Name) })

	bus.Publish(Event{SessionID: "s1", Name: "swipe"})
	unsubscribeFirst()
	bus.Publish(Event{SessionID: "s1", Name: "board"})

	assert.Equal(t, []string{"first:swipe", "second:swipe", "second:board"}, got)
}
