package feed

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophstore/internal/logging"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu      sync.Mutex
	execs   []string
	notes   chan *pgconn.Notification
	waitErr error
	execErr error
	closed  bool
}

func (c *fakeConn) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.execs = append(c.execs, sql)
	return pgconn.CommandTag{}, c.execErr
}

func (c *fakeConn) WaitForNotification(ctx context.Context) (*pgconn.Notification, error) {
	if c.waitErr != nil {
		return nil, c.waitErr
	}
	select {
	case n := <-c.notes:
		return n, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *fakeConn) Close(ctx context.Context) error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return nil
}

func TestListener_ForwardsPayloadToHub(t *testing.T) {
	hub := NewHub()
	ch, cancelSub := hub.Subscribe("u1")
	defer cancelSub()

	conn := &fakeConn{notes: make(chan *pgconn.Notification, 2)}
	l := NewListener("dsn", "products_changed", hub, logging.Discard())
	l.connect = func(ctx context.Context, dsn string) (notificationConn, error) { return conn, nil }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()

	conn.notes <- &pgconn.Notification{Channel: "products_changed", Payload: ""}
	conn.notes <- &pgconn.Notification{Channel: "products_changed", Payload: "u1"}

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("no signal forwarded")
	}

	cancel()
	<-done

	conn.mu.Lock()
	defer conn.mu.Unlock()
	require.NotEmpty(t, conn.execs)
	assert.Equal(t, `LISTEN "products_changed"`, conn.execs[0])
	assert.True(t, conn.closed)
}

func TestListener_ReconnectsAfterFailure(t *testing.T) {
	l := NewListener("dsn", "products_changed", NewHub(), logging.Discard())
	l.retryDelay = time.Millisecond

	var mu sync.Mutex
	attempts := 0
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l.connect = func(ctx context.Context, dsn string) (notificationConn, error) {
		mu.Lock()
		defer mu.Unlock()
		attempts++
		if attempts >= 3 {
			cancel()
		}
		return nil, errors.New("refused")
	}

	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not stop")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.GreaterOrEqual(t, attempts, 3)
}

func TestListener_ListenFailureClosesConn(t *testing.T) {
	conn := &fakeConn{execErr: errors.New("permission denied")}
	l := NewListener("dsn", "products_changed", NewHub(), logging.Discard())
	l.connect = func(ctx context.Context, dsn string) (notificationConn, error) { return conn, nil }

	err := l.listen(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
	assert.True(t, conn.closed)
}
