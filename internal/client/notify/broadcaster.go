// Package notify fans values out to any number of subscribers. Every
// subscriber channel holds at most one value: a slow reader skips
// intermediate values and always sees the latest one.
package notify

import (
	"context"
	"sync"
)

type Broadcaster[T any] struct {
	mu     sync.Mutex
	subs   map[chan T]struct{}
	last   T
	hasVal bool
}

func NewBroadcaster[T any]() *Broadcaster[T] {
	return &Broadcaster[T]{subs: make(map[chan T]struct{})}
}

// Subscribe returns a channel that first carries the latest published
// value, if any, and then every subsequent one. It is closed once ctx is
// done.
func (b *Broadcaster[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	if b.hasVal {
		ch <- b.last
	}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subs, ch)
		close(ch)
		b.mu.Unlock()
	}()

	return ch
}

// Publish records v as the latest value and offers it to every subscriber,
// replacing anything they have not read yet.
func (b *Broadcaster[T]) Publish(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.last = v
	b.hasVal = true
	for ch := range b.subs {
		replace(ch, v)
	}
}

// Latest returns the last published value.
func (b *Broadcaster[T]) Latest() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last, b.hasVal
}

func (b *Broadcaster[T]) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func replace[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}
