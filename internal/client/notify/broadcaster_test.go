package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for value")
	}
	var zero T
	return zero
}

func TestSubscribe_NoValueBeforePublish(t *testing.T) {
	b := NewBroadcaster[int]()
	ch := b.Subscribe(t.Context())

	select {
	case v := <-ch:
		t.Fatalf("unexpected value %d", v)
	default:
	}
}

func TestSubscribe_ReplaysLatest(t *testing.T) {
	b := NewBroadcaster[string]()
	b.Publish("a")
	b.Publish("b")

	ch := b.Subscribe(t.Context())
	assert.Equal(t, "b", recv(t, ch))
}

func TestPublish_SlowSubscriberSeesLatest(t *testing.T) {
	b := NewBroadcaster[int]()
	ch := b.Subscribe(t.Context())

	for i := 1; i <= 5; i++ {
		b.Publish(i)
	}
	assert.Equal(t, 5, recv(t, ch))

	select {
	case v := <-ch:
		t.Fatalf("unexpected extra value %d", v)
	default:
	}
}

func TestPublish_FansOut(t *testing.T) {
	b := NewBroadcaster[int]()
	a := b.Subscribe(t.Context())
	c := b.Subscribe(t.Context())

	b.Publish(7)
	assert.Equal(t, 7, recv(t, a))
	assert.Equal(t, 7, recv(t, c))
}

func TestSubscribe_ClosedOnCancel(t *testing.T) {
	b := NewBroadcaster[int]()
	ctx, cancel := context.WithCancel(context.Background())
	ch := b.Subscribe(ctx)
	require.Equal(t, 1, b.Subscribers())

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-ch:
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, b.Subscribers())

	// publishing after the subscriber left must not panic
	b.Publish(1)
}

func TestLatest(t *testing.T) {
	b := NewBroadcaster[int]()
	_, ok := b.Latest()
	assert.False(t, ok)

	b.Publish(3)
	v, ok := b.Latest()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}
