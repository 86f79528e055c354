// Package cli is the interactive gophstore client.
//
// The REPL follows the navigation stack: on the login screen only login
// and register are offered, on the main screen the product and profile
// commands. A session gate moves between the two whenever the session
// changes. Entering the main screen mounts the live product feed and
// loads the profile; leaving it tears both down. A background watcher
// pings the server and shows online/offline in the prompt.
//
// NewApp wires everything from config; App.Run blocks until the user exits.
package cli
