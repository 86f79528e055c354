package navigation

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNavigator_StartsOnSplash(t *testing.T) {
	n := NewNavigator()
	assert.Equal(t, RouteSplash, n.Current())
	assert.Equal(t, []Route{RouteSplash}, n.Stack())
}

func TestPushAndBack(t *testing.T) {
	n := NewNavigator()
	n.Reset(RouteMain)
	n.Push(RouteAdd)
	assert.Equal(t, RouteAdd, n.Current())

	require.True(t, n.Back())
	assert.Equal(t, RouteMain, n.Current())

	assert.False(t, n.Back())
	assert.Equal(t, RouteMain, n.Current())
}

func TestReset_ClearsHistory(t *testing.T) {
	n := NewNavigator()
	n.Reset(RouteMain)
	n.Push(RouteEditProfile)

	n.Reset(RouteLogin)
	assert.Equal(t, []Route{RouteLogin}, n.Stack())
	assert.False(t, n.Back())

	for _, r := range n.Stack() {
		assert.False(t, r.Authenticated(), "authenticated route %q reachable after reset", r)
	}
}

func TestRoute_Authenticated(t *testing.T) {
	for _, r := range []Route{RouteMain, RouteAdd, RouteEditProfile} {
		assert.True(t, r.Authenticated(), r)
	}
	for _, r := range []Route{RouteSplash, RouteLogin, RouteRegister} {
		assert.False(t, r.Authenticated(), r)
	}
}

func TestSubscribe_DeliversChanges(t *testing.T) {
	n := NewNavigator()
	ch := n.Subscribe(t.Context())
	assert.Equal(t, RouteSplash, <-ch)

	n.Push(RouteRegister)
	select {
	case r := <-ch:
		assert.Equal(t, RouteRegister, r)
	case <-time.After(time.Second):
		t.Fatal("no route change delivered")
	}
}

func TestConcurrentResets_LastPublishedIsCurrent(t *testing.T) {
	routes := []Route{RouteLogin, RouteMain, RouteRegister, RouteAdd}

	for round := 0; round < 50; round++ {
		n := NewNavigator()
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func(r Route) {
				defer wg.Done()
				n.Reset(r)
				n.Push(RouteEditProfile)
				n.Back()
			}(routes[i%len(routes)])
		}
		wg.Wait()

		last, ok := n.changes.Latest()
		require.True(t, ok)
		require.Equal(t, n.Current(), last, "round %d: stack %v", round, n.Stack())
	}
}
