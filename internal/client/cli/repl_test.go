package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophstore/internal/client/navigation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	r     navigation.Route
	calls []string
}

func (f *fakeExec) route() navigation.Route { return f.r }

func (f *fakeExec) call(name string, next navigation.Route) error {
	f.calls = append(f.calls, name)
	if next != "" {
		f.r = next
	}
	return nil
}

func (f *fakeExec) Register(ctx context.Context) error { return f.call("register", navigation.RouteLogin) }
func (f *fakeExec) Login(ctx context.Context) error    { return f.call("login", navigation.RouteMain) }
func (f *fakeExec) Logout(ctx context.Context) error   { return f.call("logout", navigation.RouteLogin) }
func (f *fakeExec) Add(ctx context.Context) error      { return f.call("add", "") }
func (f *fakeExec) List(ctx context.Context) error     { return f.call("list", "") }
func (f *fakeExec) Sold(ctx context.Context, id string) error {
	return f.call("sold "+id, "")
}
func (f *fakeExec) Profile(ctx context.Context) error     { return f.call("profile", "") }
func (f *fakeExec) EditProfile(ctx context.Context) error { return f.call("editprofile", "") }
func (f *fakeExec) Back(ctx context.Context) error        { return f.call("back", "") }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_FollowsRoutes(t *testing.T) {
	out := captureOutput(t)

	input := strings.Join([]string{
		"help",
		"add",
		"login",
		"list",
		"add",
		"sold p1",
		"sold",
		"profile",
		"logout",
		"list",
		"foobar",
		"exit",
		"login",
	}, "\n")

	exec := &fakeExec{r: navigation.RouteLogin}
	runREPL(context.Background(), exec, func() string { return "status" }, rdr(input))

	assert.Equal(t, []string{"login", "list", "add", "sold p1", "profile", "logout"}, exec.calls)
	assert.Contains(t, *out, "Usage: sold <id>")
	assert.Contains(t, *out, "Bye!")
}

func TestRunREPL_QuitAndEOF(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{r: navigation.RouteMain}
	runREPL(context.Background(), exec, func() string { return "s" }, rdr("quit\nlist\n"))
	assert.Empty(t, exec.calls)

	exec = &fakeExec{r: navigation.RouteMain}
	runREPL(context.Background(), exec, func() string { return "s" }, rdr("list"))
	assert.Equal(t, []string{"list"}, exec.calls)
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	captureOutput(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{r: navigation.RouteMain}
	runREPL(ctx, exec, func() string { return "s" }, rdr("list\n"))
	assert.Empty(t, exec.calls)
}

func TestCommandsFor(t *testing.T) {
	for _, r := range []navigation.Route{navigation.RouteLogin, navigation.RouteRegister, navigation.RouteSplash} {
		for _, c := range commandsFor(r) {
			name, _, _ := strings.Cut(c, " ")
			require.NotContains(t, []string{"list", "add", "sold", "profile", "editprofile", "logout"}, name,
				"route %q offers authenticated command %q", r, c)
		}
	}
	assert.True(t, allowed(navigation.RouteMain, "sold"))
	assert.False(t, allowed(navigation.RouteLogin, "sold"))
	assert.True(t, allowed(navigation.RouteSplash, "exit"))
}
