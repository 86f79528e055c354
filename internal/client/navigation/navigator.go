// Package navigation is the CLI's screen stack.
package navigation

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophstore/internal/client/notify"
)

type Route string

const (
	RouteSplash      Route = "splash"
	RouteLogin       Route = "login"
	RouteRegister    Route = "register"
	RouteMain        Route = "main"
	RouteAdd         Route = "add"
	RouteEditProfile Route = "editProfile"
)

// Authenticated reports whether r belongs to the signed-in area.
func (r Route) Authenticated() bool {
	switch r {
	case RouteMain, RouteAdd, RouteEditProfile:
		return true
	}
	return false
}

// Navigator publishes route changes in the order the stack was written.
type Navigator struct {
	mu      sync.Mutex
	stack   []Route
	changes *notify.Broadcaster[Route]
}

// NewNavigator starts on the splash route.
func NewNavigator() *Navigator {
	n := &Navigator{
		stack:   []Route{RouteSplash},
		changes: notify.NewBroadcaster[Route](),
	}
	n.changes.Publish(RouteSplash)
	return n
}

func (n *Navigator) Current() Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack[len(n.stack)-1]
}

// Stack returns a copy of the history, bottom first.
func (n *Navigator) Stack() []Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Route(nil), n.stack...)
}

// Reset replaces the whole history with r.
func (n *Navigator) Reset(r Route) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stack = []Route{r}
	n.changes.Publish(r)
}

func (n *Navigator) Push(r Route) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stack = append(n.stack, r)
	n.changes.Publish(r)
}

// Back pops the current route. It returns false, leaving the stack alone,
// when there is nothing to go back to.
func (n *Navigator) Back() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.stack) < 2 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	n.changes.Publish(n.stack[len(n.stack)-1])
	return true
}

// Subscribe streams the current route and every later change.
func (n *Navigator) Subscribe(ctx context.Context) <-chan Route {
	return n.changes.Subscribe(ctx)
}
