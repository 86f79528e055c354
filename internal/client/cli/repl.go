package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dmitrijs2005/gophstore/internal/client/navigation"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. App satisfies it;
// tests use a stub.
type execIface interface {
	route() navigation.Route
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Add(ctx context.Context) error
	List(ctx context.Context) error
	Sold(ctx context.Context, id string) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Back(ctx context.Context) error
}

// commandsFor lists what can be typed on route r.
func commandsFor(r navigation.Route) []string {
	var cmds []string
	switch r {
	case navigation.RouteLogin:
		cmds = []string{"login", "register"}
	case navigation.RouteRegister:
		cmds = []string{"register", "back"}
	case navigation.RouteMain:
		cmds = []string{"list", "add", "sold <id>", "profile", "editprofile", "logout"}
	case navigation.RouteAdd:
		cmds = []string{"add", "back"}
	case navigation.RouteEditProfile:
		cmds = []string{"editprofile", "back"}
	}
	return append(cmds, "help", "exit")
}

func allowed(r navigation.Route, cmd string) bool {
	return slices.ContainsFunc(commandsFor(r), func(c string) bool {
		name, _, _ := strings.Cut(c, " ")
		return name == cmd
	})
}

// runREPL reads commands line by line and dispatches them to a, offering
// only the commands that make sense on the current route. It returns on
// EOF, on "exit"/"quit" or when ctx is done. Command errors are reported by
// the commands themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for ctx.Err() == nil {
		printlnFn(fmt.Sprintf("gs %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		if cmd == "quit" {
			cmd = "exit"
		}

		r := a.route()
		if !allowed(r, cmd) {
			printlnFn(fmt.Sprintf("Unknown command %q here. %s", cmd, help(r)))
			continue
		}

		switch cmd {
		case "help":
			printlnFn(help(r))
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "add":
			_ = a.Add(ctx)
		case "list":
			_ = a.List(ctx)
		case "sold":
			if len(args) == 0 {
				printlnFn("Usage: sold <id>")
				continue
			}
			_ = a.Sold(ctx, args[0])
		case "profile":
			_ = a.Profile(ctx)
		case "editprofile":
			_ = a.EditProfile(ctx)
		case "back":
			_ = a.Back(ctx)
		case "exit":
			printlnFn("Bye!")
			return
		}
	}
}
