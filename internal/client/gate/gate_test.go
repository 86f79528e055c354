package gate

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophstore/internal/client/models"
	"github.com/dmitrijs2005/gophstore/internal/client/navigation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNav struct {
	mu      sync.Mutex
	current navigation.Route
	resets  []navigation.Route
	at      []time.Time
}

func newRecordingNav() *recordingNav {
	return &recordingNav{current: navigation.RouteSplash}
}

func (r *recordingNav) Current() navigation.Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

func (r *recordingNav) Reset(route navigation.Route) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = route
	r.resets = append(r.resets, route)
	r.at = append(r.at, time.Now())
}

func (r *recordingNav) snapshot() []navigation.Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]navigation.Route(nil), r.resets...)
}

func TestRoute(t *testing.T) {
	assert.Equal(t, navigation.RouteMain, Route(models.Session{UserID: "u1", IsAuthenticated: true}))
	assert.Equal(t, navigation.RouteLogin, Route(models.Session{}))
}

func TestRun_RoutesAfterDelay(t *testing.T) {
	nav := newRecordingNav()
	g := New(nav, 30*time.Millisecond)
	sessions := make(chan models.Session, 1)

	go g.Run(t.Context(), sessions)

	start := time.Now()
	sessions <- models.Session{UserID: "u1", IsAuthenticated: true}

	require.Eventually(t, func() bool { return len(nav.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []navigation.Route{navigation.RouteMain}, nav.snapshot())

	nav.mu.Lock()
	elapsed := nav.at[0].Sub(start)
	nav.mu.Unlock()
	assert.GreaterOrEqual(t, elapsed, 30*time.Millisecond)
}

func TestRun_LatestSessionWins(t *testing.T) {
	nav := newRecordingNav()
	g := New(nav, 50*time.Millisecond)
	sessions := make(chan models.Session)

	go g.Run(t.Context(), sessions)

	sessions <- models.Session{UserID: "u1", IsAuthenticated: true}
	sessions <- models.Session{}

	require.Eventually(t, func() bool { return len(nav.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, []navigation.Route{navigation.RouteLogin}, nav.snapshot())
}

func TestRun_ReturnsAfterLeavingSplash(t *testing.T) {
	nav := newRecordingNav()
	g := New(nav, 10*time.Millisecond)
	sessions := make(chan models.Session, 1)

	done := make(chan struct{})
	go func() {
		g.Run(t.Context(), sessions)
		close(done)
	}()

	sessions <- models.Session{}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run kept listening after routing away from splash")
	}
	assert.Equal(t, []navigation.Route{navigation.RouteLogin}, nav.snapshot())
}

func TestRun_LaterSessionsDoNotOverrideNavigation(t *testing.T) {
	nav := navigation.NewNavigator()
	sessions := make(chan models.Session)
	g := New(nav, 50*time.Millisecond)

	done := make(chan struct{})
	go func() {
		g.Run(t.Context(), sessions)
		close(done)
	}()

	sessions <- models.Session{UserID: "u1", IsAuthenticated: true}
	require.Eventually(t, func() bool { return nav.Current() == navigation.RouteMain }, time.Second, 2*time.Millisecond)
	<-done

	// sign out, then open registration before the splash delay would elapse
	select {
	case sessions <- models.Session{}:
		t.Fatal("gate still consumes sessions after leaving splash")
	default:
	}
	nav.Reset(navigation.RouteLogin)
	nav.Push(navigation.RouteRegister)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, []navigation.Route{navigation.RouteLogin, navigation.RouteRegister}, nav.Stack())
}

func TestRun_SkipsResetWhenSplashAlreadyLeft(t *testing.T) {
	nav := newRecordingNav()
	g := New(nav, 30*time.Millisecond)
	sessions := make(chan models.Session, 1)

	done := make(chan struct{})
	go func() {
		g.Run(t.Context(), sessions)
		close(done)
	}()

	sessions <- models.Session{UserID: "u1"}
	nav.Reset(navigation.RouteLogin)

	<-done
	assert.Equal(t, []navigation.Route{navigation.RouteLogin}, nav.snapshot())
}

func TestRun_CancelDropsPendingRoute(t *testing.T) {
	nav := newRecordingNav()
	g := New(nav, 40*time.Millisecond)
	sessions := make(chan models.Session)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		g.Run(ctx, sessions)
		close(done)
	}()

	sessions <- models.Session{UserID: "u1"}
	cancel()
	<-done

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, nav.snapshot())
}

func TestRun_ReturnsWhenSessionsClosed(t *testing.T) {
	g := New(newRecordingNav(), time.Millisecond)
	sessions := make(chan models.Session)
	close(sessions)

	done := make(chan struct{})
	go func() {
		g.Run(context.Background(), sessions)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return")
	}
}
