package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcaster_PublishToAll(t *testing.T) {
	b := NewBroadcaster[int](1)
	a, cancelA := b.Subscribe()
	defer cancelA()
	c, cancelC := b.Subscribe()
	defer cancelC()

	b.Publish(7)

	assert.Equal(t, 7, <-a)
	assert.Equal(t, 7, <-c)
}

func TestBroadcaster_FullBufferKeepsNewest(t *testing.T) {
	b := NewBroadcaster[int](1)
	ch, cancel := b.Subscribe()
	defer cancel()

	b.Publish(1)
	b.Publish(2)
	b.Publish(3)

	assert.Equal(t, 3, <-ch)
	select {
	case v := <-ch:
		t.Fatalf("unexpected value %d", v)
	default:
	}
}

func TestBroadcaster_Cancel(t *testing.T) {
	b := NewBroadcaster[string](0)
	ch, cancel := b.Subscribe()
	require.Equal(t, 1, b.Len())

	cancel()
	cancel()

	assert.Equal(t, 0, b.Len())
	_, ok := <-ch
	assert.False(t, ok)

	b.Publish("after cancel")
}
