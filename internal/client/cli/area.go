package cli

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophstore/internal/client/feed"
	"github.com/dmitrijs2005/gophstore/internal/client/models"
	"github.com/dmitrijs2005/gophstore/internal/client/navigation"
	"github.com/dmitrijs2005/gophstore/internal/client/products"
	"github.com/dmitrijs2005/gophstore/internal/client/profile"
)

// mainArea is what lives while an authenticated route is shown: the live
// feed and the profile loaded for this mount.
type mainArea struct {
	session models.Session
	cancel  context.CancelFunc
	feed    *feed.Feed

	mu      sync.Mutex
	profile *profile.Result
}

func (m *mainArea) setProfile(r profile.Result) {
	m.mu.Lock()
	m.profile = &r
	m.mu.Unlock()
}

func (m *mainArea) getProfile() *profile.Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile
}

// followRoutes mounts the main area on entering the authenticated routes
// and tears it down on leaving them.
func (a *App) followRoutes(ctx context.Context) {
	for r := range a.nav.Subscribe(ctx) {
		if r.Authenticated() {
			a.mount(ctx)
		} else {
			a.unmount()
		}
	}
}

func (a *App) mount(ctx context.Context) {
	s := a.sessions.Current()

	a.mu.Lock()
	if a.area != nil && a.area.session.UserID == s.UserID {
		a.mu.Unlock()
		return
	}
	old := a.area
	a.area = nil
	a.mu.Unlock()

	if old != nil {
		old.cancel()
	}

	f, err := feed.New(a.watcher, s.UserID, a.config.FeedRetryInterval, a.log)
	if err != nil {
		a.log.Warn(ctx, "main area without session", "error", err)
		a.nav.Reset(navigation.RouteLogin)
		return
	}

	actx, cancel := context.WithCancel(ctx)
	area := &mainArea{session: s, cancel: cancel, feed: f}

	a.mu.Lock()
	a.area = area
	a.mu.Unlock()

	go func() {
		if err := f.Run(actx); err != nil && actx.Err() == nil {
			a.expire(ctx, err)
		}
	}()
	go func() {
		r := a.profiles.Load(actx, s)
		if actx.Err() == nil {
			area.setProfile(r)
		}
	}()
}

// expire ends a session the server no longer accepts.
func (a *App) expire(ctx context.Context, cause error) {
	a.log.Warn(ctx, "session rejected by server, signing out", "error", cause)
	if err := a.sessions.SignOut(ctx); err != nil {
		a.log.Warn(ctx, "sign out after rejected session", "error", err)
	}
	a.nav.Reset(navigation.RouteLogin)
}

func (a *App) unmount() {
	a.mu.Lock()
	area := a.area
	a.area = nil
	a.form = products.Form{}
	a.mu.Unlock()

	if area != nil {
		area.cancel()
	}
}

func (a *App) mounted() *mainArea {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.area
}
