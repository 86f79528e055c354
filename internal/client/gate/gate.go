// Package gate routes the app away from the splash screen once the session
// is known. Later session changes are routed by the screens that cause them.
package gate

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophstore/internal/client/models"
	"github.com/dmitrijs2005/gophstore/internal/client/navigation"
)

// Navigator is the navigation capability the gate needs.
type Navigator interface {
	Current() navigation.Route
	Reset(r navigation.Route)
}

type Gate struct {
	nav   Navigator
	delay time.Duration
}

func New(nav Navigator, delay time.Duration) *Gate {
	return &Gate{nav: nav, delay: delay}
}

// Run consumes sessions while the splash screen is shown. Each session
// schedules a reset to main (user present) or login after the minimum
// delay; a newer session replaces a reset that has not fired yet. Run
// returns once the app has left splash, when ctx is done or when the
// channel is closed. A pending reset is dropped when Run returns.
func (g *Gate) Run(ctx context.Context, sessions <-chan models.Session) {
	timer := time.NewTimer(g.delay)
	timer.Stop()
	defer timer.Stop()

	var pending models.Session

	for {
		select {
		case <-ctx.Done():
			return

		case s, ok := <-sessions:
			if !ok {
				return
			}
			pending = s
			timer.Reset(g.delay)

		case <-timer.C:
			if g.nav.Current() == navigation.RouteSplash {
				g.nav.Reset(Route(pending))
			}
			return
		}
	}
}

// Route is where a session belongs.
func Route(s models.Session) navigation.Route {
	if s.UserID != "" {
		return navigation.RouteMain
	}
	return navigation.RouteLogin
}
