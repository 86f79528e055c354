// Package feed keeps the live, owner-filtered list of products shown on
// the main screen.
package feed

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophstore/internal/client/client"
	"github.com/dmitrijs2005/gophstore/internal/client/models"
	"github.com/dmitrijs2005/gophstore/internal/client/notify"
	"github.com/dmitrijs2005/gophstore/internal/logging"
)

var ErrNoUser = errors.New("feed requires a signed-in user")

type Watcher interface {
	WatchProducts(ctx context.Context) (client.ProductStream, error)
}

type Feed struct {
	watcher Watcher
	userID  string
	retry   time.Duration
	log     logging.Logger

	mu    sync.RWMutex
	items []models.Product
	err   error

	updates *notify.Broadcaster[struct{}]
}

func New(w Watcher, userID string, retry time.Duration, log logging.Logger) (*Feed, error) {
	if userID == "" {
		return nil, ErrNoUser
	}
	return &Feed{
		watcher: w,
		userID:  userID,
		retry:   retry,
		log:     log.With("user_id", userID),
		updates: notify.NewBroadcaster[struct{}](),
	}, nil
}

// Run holds one subscription open until ctx is done, reopening it after
// the retry interval whenever it fails. A rejected session cannot recover
// by retrying: Run records it and returns client.ErrUnauthorized.
func (f *Feed) Run(ctx context.Context) error {
	for {
		err := f.watch(ctx)
		if ctx.Err() != nil {
			return nil
		}
		f.fail(ctx, err)
		if errors.Is(err, client.ErrUnauthorized) {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(f.retry):
		}
	}
}

func (f *Feed) watch(ctx context.Context) error {
	stream, err := f.watcher.WatchProducts(ctx)
	if err != nil {
		return err
	}
	for {
		snap, err := stream.Recv()
		if err != nil {
			return err
		}
		f.apply(snap)
	}
}

// apply replaces the list wholesale with the user's products from snap,
// newest first. Products created at the same instant keep their delivery
// order.
func (f *Feed) apply(snap []models.Product) {
	items := make([]models.Product, 0, len(snap))
	for _, p := range snap {
		if p.OwnerID == f.userID {
			items = append(items, p)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	f.mu.Lock()
	f.items = items
	f.err = nil
	f.mu.Unlock()

	f.updates.Publish(struct{}{})
}

func (f *Feed) fail(ctx context.Context, err error) {
	f.log.Warn(ctx, "product feed interrupted", "error", err, "retry_in", f.retry)

	f.mu.Lock()
	f.err = err
	f.mu.Unlock()

	f.updates.Publish(struct{}{})
}

// Items returns a copy of the current list.
func (f *Feed) Items() []models.Product {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]models.Product(nil), f.items...)
}

// Err is the last subscription error, cleared by the next delivery.
func (f *Feed) Err() error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.err
}

// Updates signals after every delivery or failure.
func (f *Feed) Updates(ctx context.Context) <-chan struct{} {
	return f.updates.Subscribe(ctx)
}
