// Package config loads runtime configuration for the gophstore CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Short command-line flags.
//
// Flags
//
//	-a string   address:port of the server gRPC endpoint
//	-i int      online status check interval (seconds)
//	-f string   local SQLite file holding the saved session
//	-l int      minimum splash delay before routing (milliseconds)
//	-y int      delay before a failed product feed is reopened (seconds)
//
// # JSON schema
//
// Durations use timex.Duration, so "1500ms" and integer nanoseconds both work:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "database_path": "gophstore.db",
//	  "splash_delay": "1500ms",
//	  "feed_retry_interval": "5s"
//	}
package config
