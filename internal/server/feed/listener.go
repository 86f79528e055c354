package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophstore/internal/logging"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// notificationConn is the subset of *pgx.Conn the listener needs.
type notificationConn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
	Close(ctx context.Context) error
}

// Listener forwards PostgreSQL NOTIFY payloads of a channel to a Hub. The
// payload is the owner id of the changed product.
type Listener struct {
	dsn        string
	channel    string
	hub        *Hub
	log        logging.Logger
	retryDelay time.Duration

	connect func(ctx context.Context, dsn string) (notificationConn, error)
}

func NewListener(dsn, channel string, hub *Hub, log logging.Logger) *Listener {
	return &Listener{
		dsn:        dsn,
		channel:    channel,
		hub:        hub,
		log:        log,
		retryDelay: 5 * time.Second,
		connect: func(ctx context.Context, dsn string) (notificationConn, error) {
			return pgx.Connect(ctx, dsn)
		},
	}
}

// Run listens until ctx is cancelled, reconnecting after failures.
func (l *Listener) Run(ctx context.Context) {
	for {
		err := l.listen(ctx)
		if ctx.Err() != nil {
			return
		}
		l.log.Warn(ctx, "notification listener stopped, reconnecting", "error", err, "delay", l.retryDelay)

		select {
		case <-ctx.Done():
			return
		case <-time.After(l.retryDelay):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.connect(ctx, l.dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = conn.Close(closeCtx)
	}()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	l.log.Info(ctx, "listening for product changes", "channel", l.channel)

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}
		if n.Payload == "" {
			continue
		}
		l.hub.Publish(n.Payload)
	}
}
